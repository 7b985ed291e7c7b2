package msis

import (
	"fmt"
	"math"
)

const (
	degToRad  = 1.74533e-2
	doyToRad  = 1.72142e-2
	hourToRad = 0.2618
	secToRad  = 7.2722e-5

	// Longitude below this value disables every longitude and UT term.
	longitudeUnset = -1000.0

	lowerAtmosphereSet = 2.0
)

// evaluation carries everything one model call derives from its input:
// switch weights, Legendre and local-time harmonics, magnetic activity
// terms, gravity, and the node temperatures of the three profile chains.
// A fresh value is built per call, so a Model is safe to share.
type evaluation struct {
	in Input

	sw, swc [NumSwitches]float64

	plg [4][9]float64

	stloc, ctloc   float64
	s2tloc, c2tloc float64
	s3tloc, c3tloc float64

	dfa  float64
	apdf float64
	apt  float64

	gsurf float64
	re    float64

	// Mixed N2 density at the evaluation altitude, used to join the
	// thermosphere to the lower atmosphere.
	dm28 float64

	tn1  [5]float64
	tgn1 [2]float64
	tn2  [4]float64
	tgn2 [2]float64
	tn3  [5]float64
	tgn3 [2]float64
}

func newEvaluation(sw Switches, in Input) *evaluation {
	e := &evaluation{in: in}
	e.sw, e.swc = sw.weights()

	lat := in.GLat
	if e.sw[SwitchTimeIndependent] == 0 {
		lat = 45
	}
	e.gsurf, e.re = gravityAt(lat)
	e.legendre()
	e.localTime()
	e.dfa = in.F107A - 150
	return e
}

// gravityAt returns surface gravity (cm/s^2) and effective Earth radius
// (km) at a latitude.
func gravityAt(lat float64) (gsurf, re float64) {
	c2 := math.Cos(2 * degToRad * lat)
	gsurf = 980.616 * (1 - 0.0026373*c2)
	re = 2 * gsurf / (3.085462e-6 + 2.27e-9*c2) * 1e-5
	return gsurf, re
}

func (e *evaluation) legendre() {
	c := math.Sin(e.in.GLat * degToRad)
	s := math.Cos(e.in.GLat * degToRad)
	c2 := c * c
	c4 := c2 * c2
	s2 := s * s
	p := &e.plg

	p[0][1] = c
	p[0][2] = 0.5 * (3*c2 - 1)
	p[0][3] = 0.5 * (5*c*c2 - 3*c)
	p[0][4] = (35*c4 - 30*c2 + 3) / 8
	p[0][5] = (63*c2*c2*c - 70*c2*c + 15*c) / 8
	p[0][6] = (11*c*p[0][5] - 5*p[0][4]) / 6

	p[1][1] = s
	p[1][2] = 3 * c * s
	p[1][3] = 1.5 * (5*c2 - 1) * s
	p[1][4] = 2.5 * (7*c2*c - 3*c) * s
	p[1][5] = 1.875 * (21*c4 - 14*c2 + 1) * s
	p[1][6] = (11*c*p[1][5] - 6*p[1][4]) / 5

	p[2][2] = 3 * s2
	p[2][3] = 15 * s2 * c
	p[2][4] = 7.5 * (7*c2 - 1) * s2
	p[2][5] = 3*c*p[2][4] - 2*p[2][3]
	p[2][6] = (11*c*p[2][5] - 7*p[2][4]) / 4
	p[2][7] = (13*c*p[2][6] - 8*p[2][5]) / 5

	p[3][3] = 15 * s2 * s
	p[3][4] = 105 * s2 * s * c
	p[3][5] = (9*c*p[3][4] - 7*p[3][3]) / 2
	p[3][6] = (11*c*p[3][5] - 8*p[3][4]) / 3
}

func (e *evaluation) localTime() {
	tloc := e.in.LST
	e.stloc, e.ctloc = math.Sincos(hourToRad * tloc)
	e.s2tloc, e.c2tloc = math.Sincos(2 * hourToRad * tloc)
	e.s3tloc, e.c3tloc = math.Sincos(3 * hourToRad * tloc)
}

func (e *evaluation) doyCos(harmonic, phase float64) float64 {
	return math.Cos(harmonic * doyToRad * (float64(e.in.DOY) - phase))
}

// apTerm is the daily-Ap saturation function for one coefficient set.
func apTerm(p *[150]float64, ap float64) float64 {
	apd := ap - 4
	p44 := p[43]
	p45 := p[44]
	if p44 <= 0 {
		p44 = 1e-5
	}
	return apd + (p45-1)*(apd+(math.Exp(-p44*apd)-1)/p44)
}

func stormG0(a, p24, p25 float64) float64 {
	k := math.Abs(p24)
	return a - 4 + (p25-1)*(a-4+(math.Exp(-k*(a-4))-1)/k)
}

func stormSumex(ex float64) float64 {
	return 1 + (1-math.Pow(ex, 19))/(1-ex)*math.Sqrt(ex)
}

// stormG0Sum weights the lagged Ap history with a decaying memory.
func stormG0Sum(ex, p24, p25 float64, ap [7]float64) float64 {
	g := func(a float64) float64 { return stormG0(a, p24, p25) }
	return (g(ap[1]) + (g(ap[2])*ex + g(ap[3])*ex*ex + g(ap[4])*math.Pow(ex, 3) +
		(g(ap[5])*math.Pow(ex, 4)+g(ap[6])*math.Pow(ex, 12))*(1-math.Pow(ex, 8))/(1-ex))) / stormSumex(ex)
}

// globe7 evaluates the full harmonic expansion for one coefficient row.
// It also refreshes the magnetic-activity terms later reused by glob7s.
func (e *evaluation) globe7(p *[150]float64) float64 {
	var t [15]float64
	in := &e.in
	plg := &e.plg
	sw, swc := &e.sw, &e.swc

	cd32 := e.doyCos(1, p[31])
	cd18 := e.doyCos(2, p[17])
	cd14 := e.doyCos(1, p[13])
	cd39 := e.doyCos(2, p[38])

	df := in.F107 - in.F107A
	dfa := e.dfa
	t[0] = p[19]*df*(1+p[59]*dfa) + p[20]*df*df + p[21]*dfa + p[29]*dfa*dfa
	f1 := 1 + (p[47]*dfa+p[19]*df+p[20]*df*df)*swc[SwitchF107]
	f2 := 1 + (p[49]*dfa+p[19]*df+p[20]*df*df)*swc[SwitchF107]

	t[1] = (p[1]*plg[0][2] + p[2]*plg[0][4] + p[22]*plg[0][6]) +
		(p[14]*plg[0][2])*dfa*swc[SwitchF107] + p[26]*plg[0][1]
	t[2] = p[18] * cd32
	t[3] = (p[15] + p[16]*plg[0][2]) * cd18
	t[4] = f1 * (p[9]*plg[0][1] + p[10]*plg[0][3]) * cd14
	t[5] = p[37] * plg[0][1] * cd39

	if sw[SwitchDiurnal] != 0 {
		t71 := (p[11] * plg[1][2]) * cd14 * swc[SwitchAsymAnnual]
		t72 := (p[12] * plg[1][2]) * cd14 * swc[SwitchAsymAnnual]
		t[6] = f2 * ((p[3]*plg[1][1]+p[4]*plg[1][3]+p[27]*plg[1][5]+t71)*e.ctloc +
			(p[6]*plg[1][1]+p[7]*plg[1][3]+p[28]*plg[1][5]+t72)*e.stloc)
	}

	if sw[SwitchSemidiurnal] != 0 {
		t81 := (p[23]*plg[2][3] + p[35]*plg[2][5]) * cd14 * swc[SwitchAsymAnnual]
		t82 := (p[33]*plg[2][3] + p[36]*plg[2][5]) * cd14 * swc[SwitchAsymAnnual]
		t[7] = f2 * ((p[5]*plg[2][2]+p[41]*plg[2][4]+t81)*e.c2tloc +
			(p[8]*plg[2][2]+p[42]*plg[2][4]+t82)*e.s2tloc)
	}

	if sw[SwitchTerdiurnal] != 0 {
		t[13] = f2 * ((p[39]*plg[3][3]+(p[93]*plg[3][4]+p[46]*plg[3][6])*cd14*swc[SwitchAsymAnnual])*e.s3tloc +
			(p[40]*plg[3][3]+(p[94]*plg[3][4]+p[48]*plg[3][6])*cd14*swc[SwitchAsymAnnual])*e.c3tloc)
	}

	if sw[SwitchDailyAp] == -1 {
		if p[51] != 0 {
			exp1 := math.Exp(-10800 * math.Abs(p[51]) / (1 + p[138]*(45-math.Abs(in.GLat))))
			if exp1 > 0.99999 {
				exp1 = 0.99999
			}
			p24 := p[24]
			if p24 < 1e-4 {
				p24 = 1e-4
			}
			e.apt = stormG0Sum(exp1, p24, p[25], in.ApArray)
			t[8] = e.apt * (p[50] + p[96]*plg[0][2] + p[54]*plg[0][4] +
				(p[125]*plg[0][1]+p[126]*plg[0][3]+p[127]*plg[0][5])*cd14*swc[SwitchAsymAnnual] +
				(p[128]*plg[1][1]+p[129]*plg[1][3]+p[130]*plg[1][5])*swc[SwitchDiurnal]*
					math.Cos(hourToRad*(in.LST-p[131])))
		}
	} else {
		e.apdf = apTerm(p, in.Ap)
		if sw[SwitchDailyAp] != 0 {
			t[8] = e.apdf * (p[32] + p[45]*plg[0][2] + p[34]*plg[0][4] +
				(p[100]*plg[0][1]+p[101]*plg[0][3]+p[102]*plg[0][5])*cd14*swc[SwitchAsymAnnual] +
				(p[121]*plg[1][1]+p[122]*plg[1][3]+p[123]*plg[1][5])*swc[SwitchDiurnal]*
					math.Cos(hourToRad*(in.LST-p[124])))
		}
	}

	if sw[SwitchAllUTLong] != 0 && in.GLong > longitudeUnset {
		lonCos, lonSin := math.Cos(degToRad*in.GLong), math.Sin(degToRad*in.GLong)

		if sw[SwitchLongitudinal] != 0 {
			t[10] = (1 + p[80]*dfa*swc[SwitchF107]) *
				((p[64]*plg[1][2]+p[65]*plg[1][4]+p[66]*plg[1][6]+
					p[103]*plg[1][1]+p[104]*plg[1][3]+p[105]*plg[1][5]+
					swc[SwitchAsymAnnual]*(p[109]*plg[1][1]+p[110]*plg[1][3]+p[111]*plg[1][5])*cd14)*lonCos +
					(p[90]*plg[1][2]+p[91]*plg[1][4]+p[92]*plg[1][6]+
						p[106]*plg[1][1]+p[107]*plg[1][3]+p[108]*plg[1][5]+
						swc[SwitchAsymAnnual]*(p[112]*plg[1][1]+p[113]*plg[1][3]+p[114]*plg[1][5])*cd14)*lonSin)
		}

		if sw[SwitchUTMixed] != 0 {
			t[11] = (1 + p[95]*plg[0][1]) * (1 + p[81]*dfa*swc[SwitchF107]) *
				(1 + p[119]*plg[0][1]*swc[SwitchAsymAnnual]*cd14) *
				((p[68]*plg[0][1] + p[69]*plg[0][3] + p[70]*plg[0][5]) *
					math.Cos(secToRad*(in.Sec-p[71])))
			t[11] += swc[SwitchLongitudinal] *
				(p[76]*plg[2][3] + p[77]*plg[2][5] + p[78]*plg[2][7]) *
				math.Cos(secToRad*(in.Sec-p[79])+2*degToRad*in.GLong) * (1 + p[137]*dfa*swc[SwitchF107])
		}

		if sw[SwitchMixedApUTLong] != 0 {
			if sw[SwitchDailyAp] == -1 {
				if p[51] != 0 {
					t[12] = e.apt*swc[SwitchLongitudinal]*(1+p[132]*plg[0][1])*
						((p[52]*plg[1][2]+p[98]*plg[1][4]+p[67]*plg[1][6])*
							math.Cos(degToRad*(in.GLong-p[97]))) +
						e.apt*swc[SwitchLongitudinal]*swc[SwitchAsymAnnual]*
							(p[133]*plg[1][1]+p[134]*plg[1][3]+p[135]*plg[1][5])*
							cd14*math.Cos(degToRad*(in.GLong-p[136])) +
						e.apt*swc[SwitchUTMixed]*
							(p[55]*plg[0][1]+p[56]*plg[0][3]+p[57]*plg[0][5])*
							math.Cos(secToRad*(in.Sec-p[58]))
				}
			} else {
				t[12] = e.apdf*swc[SwitchLongitudinal]*(1+p[120]*plg[0][1])*
					((p[60]*plg[1][2]+p[61]*plg[1][4]+p[62]*plg[1][6])*
						math.Cos(degToRad*(in.GLong-p[63]))) +
					e.apdf*swc[SwitchLongitudinal]*swc[SwitchAsymAnnual]*
						(p[115]*plg[1][1]+p[116]*plg[1][3]+p[117]*plg[1][5])*
						cd14*math.Cos(degToRad*(in.GLong-p[118])) +
					e.apdf*swc[SwitchUTMixed]*
						(p[83]*plg[0][1]+p[84]*plg[0][3]+p[85]*plg[0][5])*
						math.Cos(secToRad*(in.Sec-p[75]))
			}
		}
	}

	total := p[30]
	for i := 0; i < 14; i++ {
		total += math.Abs(sw[i+1]) * t[i]
	}
	return total
}

// glob7s evaluates the reduced expansion used for the lower thermosphere
// and middle atmosphere node temperatures. Rows must carry the lower
// atmosphere parameter-set tag at index 99 (zero is read as the tag).
func (e *evaluation) glob7s(p *[100]float64) (float64, error) {
	if tag := p[99]; tag != 0 && tag != lowerAtmosphereSet {
		return 0, fmt.Errorf("%w: parameter set %g, want %g", ErrInvalidConfiguration, tag, lowerAtmosphereSet)
	}

	var t [14]float64
	in := &e.in
	plg := &e.plg
	sw, swc := &e.sw, &e.swc

	cd32 := e.doyCos(1, p[31])
	cd18 := e.doyCos(2, p[17])
	cd14 := e.doyCos(1, p[13])
	cd39 := e.doyCos(2, p[38])

	t[0] = p[21] * e.dfa
	t[1] = p[1]*plg[0][2] + p[2]*plg[0][4] + p[22]*plg[0][6] + p[26]*plg[0][1] + p[14]*plg[0][3] + p[59]*plg[0][5]
	t[2] = (p[18] + p[47]*plg[0][2] + p[29]*plg[0][4]) * cd32
	t[3] = (p[15] + p[16]*plg[0][2] + p[30]*plg[0][4]) * cd18
	t[4] = (p[9]*plg[0][1] + p[10]*plg[0][3] + p[20]*plg[0][5]) * cd14
	t[5] = (p[37] * plg[0][1]) * cd39

	if sw[SwitchDiurnal] != 0 {
		t71 := p[11] * plg[1][2] * cd14 * swc[SwitchAsymAnnual]
		t72 := p[12] * plg[1][2] * cd14 * swc[SwitchAsymAnnual]
		t[6] = (p[3]*plg[1][1]+p[4]*plg[1][3]+t71)*e.ctloc + (p[6]*plg[1][1]+p[7]*plg[1][3]+t72)*e.stloc
	}

	if sw[SwitchSemidiurnal] != 0 {
		t81 := (p[23]*plg[2][3] + p[35]*plg[2][5]) * cd14 * swc[SwitchAsymAnnual]
		t82 := (p[33]*plg[2][3] + p[36]*plg[2][5]) * cd14 * swc[SwitchAsymAnnual]
		t[7] = (p[5]*plg[2][2]+p[41]*plg[2][4]+t81)*e.c2tloc + (p[8]*plg[2][2]+p[42]*plg[2][4]+t82)*e.s2tloc
	}

	if sw[SwitchTerdiurnal] != 0 {
		t[13] = p[39]*plg[3][3]*e.s3tloc + p[40]*plg[3][3]*e.c3tloc
	}

	switch sw[SwitchDailyAp] {
	case 1:
		t[8] = e.apdf * (p[32] + p[45]*plg[0][2]*swc[SwitchTimeIndependent])
	case -1:
		t[8] = p[50]*e.apt + p[96]*plg[0][2]*e.apt*swc[SwitchTimeIndependent]
	}

	if sw[SwitchAllUTLong] != 0 && sw[SwitchLongitudinal] != 0 && in.GLong > longitudeUnset {
		t[10] = (1 + plg[0][1]*(p[80]*swc[SwitchAsymAnnual]*e.doyCos(1, p[81])+
			p[85]*swc[SwitchAsymSemiannual]*e.doyCos(2, p[86])) +
			p[83]*swc[SwitchSymAnnual]*e.doyCos(1, p[84]) +
			p[87]*swc[SwitchSymSemiannual]*e.doyCos(2, p[88])) *
			((p[64]*plg[1][2]+p[65]*plg[1][4]+p[66]*plg[1][6]+
				p[74]*plg[1][1]+p[75]*plg[1][3]+p[76]*plg[1][5])*math.Cos(degToRad*in.GLong) +
				(p[90]*plg[1][2]+p[91]*plg[1][4]+p[92]*plg[1][6]+
					p[77]*plg[1][1]+p[78]*plg[1][3]+p[79]*plg[1][5])*math.Sin(degToRad*in.GLong))
	}

	var total float64
	for i := 0; i < 14; i++ {
		total += math.Abs(sw[i+1]) * t[i]
	}
	return total, nil
}
