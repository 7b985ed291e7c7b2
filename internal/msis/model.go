// Package msis implements the NRLMSISE-00 empirical model of neutral
// atmosphere temperature and composition from the ground to the exosphere.
package msis

import (
	"fmt"
	"math"
)

// Output density slots.
const (
	DensHe = iota
	DensO
	DensN2
	DensO2
	DensAr
	// DensTotal is the total mass density (g/cm^3 or kg/m^3).
	DensTotal
	DensH
	DensN
	DensAnomalousO
)

// Output temperature slots.
const (
	TempExo = iota
	TempAlt
)

const (
	// Altitude where the thermosphere joins the mesosphere profile.
	mesosphereTop = 72.5
	// Bottom of the linear transition to full mixing.
	mixingBottom = 62.5

	boltzmann        = 1.3806e-19
	pressureTol      = 0.00043
	pressureMaxSteps = 12
)

// Input describes one model evaluation.
type Input struct {
	Year  int     // unused by the model
	DOY   int     // day of year
	Sec   float64 // seconds in day (UT)
	Alt   float64 // altitude, km
	GLat  float64 // geodetic latitude, degrees
	GLong float64 // geodetic longitude, degrees; below -1000 disables longitude terms
	LST   float64 // local apparent solar time, hours
	F107A float64 // 81-day average F10.7 centered on DOY
	F107  float64 // daily F10.7 for the previous day
	Ap    float64 // daily magnetic index

	// ApArray is the lagged Ap history used when SwitchDailyAp is
	// StormTime: daily Ap, current 3h Ap, 3h Ap at -3h, -6h and -9h,
	// the mean of eight 3h values from -12h to -33h and the mean of eight
	// from -36h to -57h.
	ApArray [7]float64
}

// checkFinite rejects NaN or infinite drivers. Alt is skipped when the
// caller solves for it.
func (in Input) checkFinite(withAlt bool) error {
	names := [...]string{"latitude", "F10.7", "F10.7 average", "altitude"}
	vals := []float64{in.GLat, in.F107, in.F107A, in.Alt}
	if !withAlt {
		vals = vals[:3]
	}
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is %g", ErrMath, names[i], v)
		}
	}
	return nil
}

// Output holds number densities in D (cm^-3 or m^-3), the total mass
// density at D[DensTotal], and the exospheric and local temperatures (K).
type Output struct {
	D [9]float64
	T [2]float64
}

// Model evaluates NRLMSISE-00 under a fixed switch configuration. Each
// call builds its own working state, so one Model may be used from many
// goroutines.
type Model struct {
	switches Switches
}

// New validates the switches and returns a Model.
func New(sw Switches) (*Model, error) {
	if err := sw.Validate(); err != nil {
		return nil, err
	}
	return &Model{switches: sw}, nil
}

// Switches returns the model configuration.
func (m *Model) Switches() Switches {
	return m.switches
}

// GTD7 returns densities and temperatures at in.Alt. Total mass density
// excludes anomalous oxygen.
func (m *Model) GTD7(in Input) (Output, error) {
	if err := in.checkFinite(true); err != nil {
		return Output{}, err
	}
	e := newEvaluation(m.switches, in)
	return e.gtd7()
}

// GTD7D is GTD7 with anomalous oxygen included in the total mass density,
// the form used for drag.
func (m *Model) GTD7D(in Input) (Output, error) {
	if err := in.checkFinite(true); err != nil {
		return Output{}, err
	}
	e := newEvaluation(m.switches, in)
	out, err := e.gtd7()
	if err != nil {
		return out, err
	}
	out.D[DensTotal] = totalMass(&out, true)
	if m.switches.SI() {
		out.D[DensTotal] /= 1000
	}
	return out, nil
}

// GHP7 finds the altitude at which the pressure equals press (mb), ignoring
// in.Alt. It returns the altitude together with the model output there.
func (m *Model) GHP7(in Input, press float64) (float64, Output, error) {
	if !(press > 0) || math.IsInf(press, 1) {
		return 0, Output{}, fmt.Errorf("%w: pressure must be positive and finite, got %g", ErrMath, press)
	}
	if err := in.checkFinite(false); err != nil {
		return 0, Output{}, err
	}
	si := m.switches.SI()
	pl := math.Log10(press)
	z := initialPressureAltitude(pl, in.GLat, in.DOY)

	for l := 1; ; l++ {
		in.Alt = z
		e := newEvaluation(m.switches, in)
		out, err := e.gtd7()
		if err != nil {
			return z, out, err
		}

		xn := out.D[DensHe] + out.D[DensO] + out.D[DensN2] + out.D[DensO2] + out.D[DensAr] + out.D[DensH] + out.D[DensN]
		p := boltzmann * xn * out.T[TempAlt]
		if si {
			p *= 1e-6
		}
		diff := pl - math.Log10(p)
		if math.Abs(diff) < pressureTol {
			return z, out, nil
		}
		if l == pressureMaxSteps {
			return z, out, fmt.Errorf("%w: pressure %g not converged after %d iterations (diff %g)", ErrMath, press, l, diff)
		}

		xm := out.D[DensTotal] / xn / amu
		if si {
			xm *= 1e3
		}
		sh := gasConstant * out.T[TempAlt] / (xm * e.gravity(z))
		if l < 6 {
			z -= sh * diff * 2.302
		} else {
			z -= sh * diff
		}
		if math.IsNaN(z) || math.IsInf(z, 0) {
			return z, out, fmt.Errorf("%w: pressure %g diverged after %d iterations", ErrMath, press, l)
		}
	}
}

// initialPressureAltitude is the starting altitude guess for GHP7 from an
// empirical fit to log10 pressure, latitude and season.
func initialPressureAltitude(pl, lat float64, doy int) float64 {
	if pl < -5 {
		return 22*math.Pow(pl+4, 2) + 110
	}

	var zi float64
	switch {
	case pl > 2.5:
		zi = 18.06 * (3.00 - pl)
	case pl > 0.075:
		zi = 14.98 * (3.08 - pl)
	case pl > -1:
		zi = 17.80 * (2.72 - pl)
	case pl > -2:
		zi = 14.28 * (3.64 - pl)
	case pl > -4:
		zi = 12.72 * (4.32 - pl)
	default:
		zi = 25.3 * (0.11 - pl)
	}

	cl := lat / 90
	var cd float64
	if doy < 182 {
		cd = (1 - float64(doy)) / 91.25
	} else {
		cd = float64(doy)/91.25 - 3
	}

	var ca float64
	switch {
	case pl > -0.23:
		ca = (2.79 - pl) / (2.79 + 0.23)
	case pl > -1.11:
		ca = 1
	case pl > -3:
		ca = (-2.93 - pl) / (-2.93 + 1.11)
	}
	return zi - 4.87*cl*cd*ca - 1.64*cl*cl*ca + 0.31*ca*cl
}

func (e *evaluation) gtd7() (Output, error) {
	in := e.in
	sw := &e.sw
	xmm := pdm[pdmN2][4]

	// The thermosphere is always evaluated at or above the join altitude.
	e.in.Alt = math.Max(in.Alt, mesosphereTop)
	thermo, err := e.thermosphere()
	e.in.Alt = in.Alt
	if err != nil {
		return Output{}, err
	}

	dm28m := e.dm28
	if sw[SwitchUnits] != 0 {
		dm28m *= 1e6
	}

	out := Output{T: thermo.T}
	if in.Alt >= mesosphereTop {
		out.D = thermo.D
		return out, nil
	}

	if err := e.mesosphereNodes(); err != nil {
		return out, err
	}
	// densm walks the stratosphere chain at the 32.5 km node itself.
	if in.Alt <= strataNodes[0] {
		if err := e.stratosphereNodes(); err != nil {
			return out, err
		}
	}

	var dmc float64
	if in.Alt > mixingBottom {
		dmc = 1 - (mesosphereTop-in.Alt)/(mesosphereTop-mixingBottom)
	}
	dz28 := thermo.D[DensN2]

	var tz float64
	dmr := thermo.D[DensN2]/dm28m - 1
	n2, err := e.densm(in.Alt, dm28m, xmm, &tz)
	if err != nil {
		return out, err
	}
	out.D[DensN2] = n2 * (1 + dmr*dmc)

	for _, sp := range []struct{ slot, pdmRow int }{
		{DensHe, pdmHe},
		{DensO2, pdmO2},
		{DensAr, pdmAr},
	} {
		ratio := pdm[sp.pdmRow][1]
		dmr := thermo.D[sp.slot]/(dz28*ratio) - 1
		out.D[sp.slot] = out.D[DensN2] * ratio * (1 + dmr*dmc)
	}
	// O, H, N and anomalous O are negligible below the mesopause.

	out.D[DensTotal] = totalMass(&out, false)
	if sw[SwitchUnits] != 0 {
		out.D[DensTotal] /= 1000
	}

	if _, err := e.densm(in.Alt, 1, 0, &tz); err != nil {
		return out, err
	}
	out.T[TempAlt] = tz
	return out, nil
}

// mesosphereNodes fills the 72.5 to 32.5 km node chain.
func (e *evaluation) mesosphereNodes() error {
	sw := &e.sw
	var v [4]float64
	for i, row := range []int{pmaMeso55, pmaMeso45, pmaMeso325, pmaGrad325} {
		g, err := e.glob7s(&pma[row])
		if err != nil {
			return err
		}
		v[i] = g
	}

	ws := sw[SwitchUpperStratoTemp]
	wl := sw[SwitchUpperStratoTemp] * sw[SwitchLowerMesoTemp]
	e.tgn2[0] = e.tgn1[1]
	e.tn2[0] = e.tn1[4]
	e.tn2[1] = pma[pmaMeso55][0] * pavgm[pmaMeso55] / (1 - ws*v[0])
	e.tn2[2] = pma[pmaMeso45][0] * pavgm[pmaMeso45] / (1 - ws*v[1])
	e.tn2[3] = pma[pmaMeso325][0] * pavgm[pmaMeso325] / (1 - wl*v[2])
	e.tgn2[1] = pavgm[pmaGrad725] * pma[pmaGrad325][0] * (1 + wl*v[3]) * e.tn2[3] * e.tn2[3] /
		math.Pow(pma[pmaMeso325][0]*pavgm[pmaMeso325], 2)
	e.tn3[0] = e.tn2[3]
	return nil
}

// stratosphereNodes fills the 32.5 to 0 km node chain.
func (e *evaluation) stratosphereNodes() error {
	w := e.sw[SwitchLowerMesoTemp]
	e.tgn3[0] = e.tgn2[1]
	for i, row := range []int{pmaStrat20, pmaStrat15, pmaStrat10, pmaStrat0} {
		g, err := e.glob7s(&pma[row])
		if err != nil {
			return err
		}
		e.tn3[i+1] = pma[row][0] * pavgm[row] / (1 - w*g)
	}
	g, err := e.glob7s(&pma[pmaGrad0])
	if err != nil {
		return err
	}
	e.tgn3[1] = pma[pmaGrad0][0] * pavgm[pmaGrad0] * (1 + w*g) * e.tn3[4] * e.tn3[4] /
		math.Pow(pma[pmaStrat0][0]*pavgm[pmaStrat0], 2)
	return nil
}
