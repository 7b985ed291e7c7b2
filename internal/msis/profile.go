package msis

import (
	"fmt"
	"math"
)

const (
	gasConstant = 831.4
	// Upper bound applied to every exponent argument before math.Exp.
	maxExponent = 50.0
)

// zeta is the geopotential height of z above zl.
func (e *evaluation) zeta(z, zl float64) float64 {
	return (z - zl) * (e.re + zl) / (e.re + z)
}

func (e *evaluation) gravity(z float64) float64 {
	return e.gsurf / math.Pow(1+z/e.re, 2)
}

// scaleHeight is the pressure scale height (km) for molecular mass xm.
func (e *evaluation) scaleHeight(alt, xm, temp float64) float64 {
	return gasConstant * temp / (e.gravity(alt) * xm)
}

// ccor is the chemistry/dissociation correction factor.
func ccor(alt, r, h1, zh float64) float64 {
	ex := (alt - zh) / h1
	switch {
	case ex > 70:
		return 1
	case ex < -70:
		return math.Exp(r)
	}
	return math.Exp(r / (1 + math.Exp(ex)))
}

// ccor2 is ccor with two scale heights.
func ccor2(alt, r, h1, zh, h2 float64) float64 {
	e1 := (alt - zh) / h1
	e2 := (alt - zh) / h2
	if e1 > 70 || e2 > 70 {
		return 1
	}
	if e1 < -70 && e2 < -70 {
		return math.Exp(r)
	}
	return math.Exp(r / (1 + 0.5*(math.Exp(e1)+math.Exp(e2))))
}

// dnet blends the diffusive density dd with the fully mixed density dm.
// zhm is the transition scale, xmm the mean mass and xm the species mass.
func dnet(dd, dm, zhm, xmm, xm float64) (float64, error) {
	if dd <= 0 || dm <= 0 {
		switch {
		case dd <= 0 && dm <= 0:
			return 0, fmt.Errorf("%w: dnet with non-positive densities dd=%g dm=%g (mass %g)", ErrMath, dd, dm, xm)
		case dm <= 0:
			return dd, nil
		default:
			return dm, nil
		}
	}

	a := zhm / (xmm - xm)
	ylog := a * math.Log(dm/dd)
	if ylog < -10 {
		return dd, nil
	}
	if ylog > 10 {
		return dm, nil
	}
	return dd * math.Pow(1+math.Exp(ylog), 1/a), nil
}

// profileSpline fits 1/T over a node chain in normalised geopotential
// coordinates and evaluates it at alt. It returns the nodes and fit so
// callers can integrate the same profile.
type profileSpline struct {
	xs, ys, y2 []float64
	x          float64
	zgdif      float64
	z1, t1     float64
}

func (e *evaluation) fitProfile(alt float64, zn, tn []float64, tgn [2]float64) (profileSpline, float64, error) {
	n := len(zn)
	z1, z2 := zn[0], zn[n-1]
	t1, t2 := tn[0], tn[n-1]
	zg := e.zeta(alt, z1)
	zgdif := e.zeta(z2, z1)

	ps := profileSpline{
		xs:    make([]float64, n),
		ys:    make([]float64, n),
		zgdif: zgdif,
		z1:    z1,
		t1:    t1,
	}
	for k := range zn {
		ps.xs[k] = e.zeta(zn[k], z1) / zgdif
		ps.ys[k] = 1 / tn[k]
	}
	yd1 := -tgn[0] / (t1 * t1) * zgdif
	yd2 := -tgn[1] / (t2 * t2) * zgdif * math.Pow((e.re+z2)/(e.re+z1), 2)

	y2, err := splineFit(ps.xs, ps.ys, yd1, yd2)
	if err != nil {
		return ps, 0, err
	}
	ps.y2 = y2
	ps.x = zg / zgdif
	y, err := splineEval(ps.xs, ps.ys, ps.y2, ps.x)
	if err != nil {
		return ps, 0, err
	}
	return ps, 1 / y, nil
}

// integrate returns the barometric exponent for mass xm from the top of
// the chain down to the fitted altitude, clamped to maxExponent.
func (e *evaluation) integrate(ps profileSpline, xm float64) float64 {
	glb := e.gravity(ps.z1)
	gamm := xm * glb * ps.zgdif / gasConstant
	return math.Min(gamm*splineIntegral(ps.xs, ps.ys, ps.y2, ps.x), maxExponent)
}

// densu returns the density at alt for a species of mass xm (or, with
// xm == 0, the temperature) using a Bates profile above the first
// thermosphere node and the node spline below it. tz receives the
// temperature at alt. Node 0 of the thermosphere chain is overwritten
// with the Bates temperature and gradient at the joining altitude.
func (e *evaluation) densu(alt, dlb, tinf, tlb, xm, alpha float64, tz *float64, zlb, s2 float64) (float64, error) {
	za := thermoNodes[0]
	z := math.Max(alt, za)
	zg2 := e.zeta(z, zlb)

	tt := tinf - (tinf-tlb)*math.Exp(-s2*zg2)
	*tz = tt
	result := tt

	var ps profileSpline
	below := alt < za
	if below {
		e.tgn1[0] = (tinf - tt) * s2 * math.Pow((e.re+zlb)/(e.re+za), 2)
		e.tn1[0] = tt
		z = math.Max(alt, thermoNodes[len(thermoNodes)-1])

		var (
			t   float64
			err error
		)
		ps, t, err = e.fitProfile(z, thermoNodes[:], e.tn1[:], e.tgn1)
		if err != nil {
			return 0, err
		}
		*tz = t
		result = t
	}
	if xm == 0 {
		return result, nil
	}

	glb := e.gravity(zlb)
	gamma := xm * glb / (s2 * gasConstant * tinf)
	expl := math.Exp(-s2 * gamma * zg2)
	if expl > maxExponent || tt <= 0 {
		expl = maxExponent
	}
	densa := dlb * math.Pow(tlb/tt, 1+alpha+gamma) * expl
	if !below {
		return densa, nil
	}

	expl = e.integrate(ps, xm)
	if *tz <= 0 {
		expl = maxExponent
	}
	return densa * math.Pow(ps.t1 / *tz, 1+alpha) * math.Exp(-expl), nil
}

// densm returns the density at alt (or the temperature when xm == 0)
// below the mesosphere node, integrating down the mesosphere and then the
// stratosphere chain from d0 at the top.
func (e *evaluation) densm(alt, d0, xm float64, tz *float64) (float64, error) {
	density := d0
	if alt > mesoNodes[0] {
		if xm == 0 {
			return *tz, nil
		}
		return d0, nil
	}

	z := math.Max(alt, mesoNodes[len(mesoNodes)-1])
	ps, t, err := e.fitProfile(z, mesoNodes[:], e.tn2[:], e.tgn2)
	if err != nil {
		return 0, err
	}
	*tz = t
	if xm != 0 {
		density *= (ps.t1 / t) * math.Exp(-e.integrate(ps, xm))
	}
	if alt > strataNodes[0] {
		if xm == 0 {
			return *tz, nil
		}
		return density, nil
	}

	ps, t, err = e.fitProfile(alt, strataNodes[:], e.tn3[:], e.tgn3)
	if err != nil {
		return 0, err
	}
	*tz = t
	if xm == 0 {
		return t, nil
	}
	return density * (ps.t1 / t) * math.Exp(-e.integrate(ps, xm)), nil
}
