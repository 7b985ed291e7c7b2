package msis

import "math"

const (
	massHe = 4.0
	massO  = 16.0
	massN2 = 28.0
	massO2 = 32.0
	massAr = 40.0
	massH  = 1.0
	massN  = 14.0

	amu = 1.66e-24

	// Altitude (km) above which the lower thermosphere node temperatures
	// are held at their averages.
	lowerThermoCutoff = 300.0
)

// mixedSpecies describes the turbopause mixing of one minor species.
type mixedSpecies struct {
	slot   int
	pdRow  int
	pdmRow int
	mass   float64
	// strict selects alt < cutoff instead of alt <= cutoff.
	strict bool
}

// thermosphere assembles species densities and temperatures with the
// Bates/spline profile. It is valid from 72.5 km upward; below that the
// dispatcher only keeps the pieces needed to join the lower atmosphere.
func (e *evaluation) thermosphere() (Output, error) {
	var out Output
	in := &e.in
	sw := &e.sw
	alt := in.Alt

	tinf := ptm[0] * pt[0]
	if alt > thermoNodes[0] {
		tinf *= 1 + sw[SwitchExoTemp]*e.globe7(&pt)
	}
	out.T[TempExo] = tinf

	g0 := ptm[3] * ps[0]
	if alt > thermoNodes[4] {
		g0 *= 1 + sw[SwitchGrad120]*e.globe7(&ps)
	}
	tlb := ptm[1] * (1 + sw[SwitchTemp120]*e.globe7(&pd[pdTLB])) * pd[pdTLB][0]
	s := g0 / (tinf - tlb)

	if err := e.lowerThermoNodes(alt); err != nil {
		return out, err
	}

	zlb := ptm[5]
	zhf := pdl[1][24] * (1 + sw[SwitchAsymAnnual]*pdl[0][24]*math.Sin(degToRad*in.GLat)*e.doyCos(1, pt[13]))
	xmm := pdm[pdmN2][4]
	z := alt

	// N2 first: every other species mixes towards it.
	g28 := sw[SwitchDensity120] * e.globe7(&pd[pdN2])
	db28 := pdm[pdmN2][0] * math.Exp(g28) * pd[pdN2][0]
	var err error
	out.D[DensN2], err = e.densu(z, db28, tinf, tlb, massN2, thermalDiffusion[DensN2], &out.T[TempAlt], zlb, s)
	if err != nil {
		return out, err
	}
	zh28 := pdm[pdmN2][2] * zhf
	zhm28 := pdm[pdmN2][3] * pdl[1][5]
	var tz float64
	b28, err := e.densu(zh28, db28, tinf, tlb, massN2-xmm, thermalDiffusion[DensN2]-1, &tz, zlb, s)
	if err != nil {
		return out, err
	}
	// Without departures the lower atmosphere joins the diffusive profile.
	e.dm28 = out.D[DensN2]
	if sw[SwitchDepartures] != 0 && z <= mixingCutoff[DensN2] {
		e.dm28, err = e.densu(z, b28, tinf, tlb, xmm, thermalDiffusion[DensN2], &tz, zlb, s)
		if err != nil {
			return out, err
		}
		out.D[DensN2], err = dnet(out.D[DensN2], e.dm28, zhm28, xmm, massN2)
		if err != nil {
			return out, err
		}
	}

	species := []struct {
		mixedSpecies
		correct func(d, b float64) float64
	}{
		{
			mixedSpecies{slot: DensHe, pdRow: pdHe, pdmRow: pdmHe, mass: massHe, strict: true},
			func(d, b float64) float64 {
				rl := math.Log(b28 * pdm[pdmHe][1] / b)
				return d * ccor(z, rl, pdm[pdmHe][5]*pdl[1][1], pdm[pdmHe][4]*pdl[1][0])
			},
		},
		{
			mixedSpecies{slot: DensO, pdRow: pdO, pdmRow: pdmO, mass: massO},
			func(d, _ float64) float64 {
				rl := pdm[pdmO][1] * pdl[1][16] * (1 + sw[SwitchF107]*pdl[0][23]*(in.F107A-150))
				d *= ccor2(z, rl, pdm[pdmO][5]*pdl[1][3], pdm[pdmO][4]*pdl[1][2], pdm[pdmO][5]*pdl[1][4])
				return d * ccor(z, pdm[pdmO][3]*pdl[1][14], pdm[pdmO][7]*pdl[1][13], pdm[pdmO][6]*pdl[1][12])
			},
		},
		{
			mixedSpecies{slot: DensO2, pdRow: pdO2, pdmRow: pdmO2, mass: massO2},
			func(d, b float64) float64 {
				rl := math.Log(b28 * pdm[pdmO2][1] / b)
				return d * ccor(z, rl, pdm[pdmO2][5]*pdl[1][7], pdm[pdmO2][4]*pdl[1][6])
			},
		},
		{
			mixedSpecies{slot: DensAr, pdRow: pdAr, pdmRow: pdmAr, mass: massAr},
			func(d, b float64) float64 {
				rl := math.Log(b28 * pdm[pdmAr][1] / b)
				return d * ccor(z, rl, pdm[pdmAr][5]*pdl[1][9], pdm[pdmAr][4]*pdl[1][8])
			},
		},
		{
			mixedSpecies{slot: DensH, pdRow: pdH, pdmRow: pdmH, mass: massH},
			func(d, b float64) float64 {
				rl := math.Log(b28 * pdm[pdmH][1] * math.Abs(pdl[1][17]) / b)
				d *= ccor(z, rl, pdm[pdmH][5]*pdl[1][11], pdm[pdmH][4]*pdl[1][10])
				return d * ccor(z, pdm[pdmH][3]*pdl[1][20], pdm[pdmH][7]*pdl[1][19], pdm[pdmH][6]*pdl[1][18])
			},
		},
		{
			mixedSpecies{slot: DensN, pdRow: pdN, pdmRow: pdmN, mass: massN},
			func(d, b float64) float64 {
				rl := math.Log(b28 * pdm[pdmN][1] * math.Abs(pdl[0][2]) / b)
				d *= ccor(z, rl, pdm[pdmN][5]*pdl[0][1], pdm[pdmN][4]*pdl[0][0])
				return d * ccor(z, pdm[pdmN][3]*pdl[0][5], pdm[pdmN][7]*pdl[0][4], pdm[pdmN][6]*pdl[0][3])
			},
		},
	}

	for _, sp := range species {
		g := sw[SwitchDensity120] * e.globe7(&pd[sp.pdRow])
		db := pdm[sp.pdmRow][0] * math.Exp(g) * pd[sp.pdRow][0]
		alpha := thermalDiffusion[sp.slot]

		d, err := e.densu(z, db, tinf, tlb, sp.mass, alpha, &out.T[TempAlt], zlb, s)
		if err != nil {
			return out, err
		}

		cutoff := mixingCutoff[sp.slot]
		below := z <= cutoff
		if sp.strict {
			below = z < cutoff
		}
		if sw[SwitchDepartures] != 0 && below {
			b, err := e.densu(pdm[sp.pdmRow][2], db, tinf, tlb, sp.mass-xmm, alpha-1, &out.T[TempAlt], zlb, s)
			if err != nil {
				return out, err
			}
			dm, err := e.densu(z, b, tinf, tlb, xmm, 0, &out.T[TempAlt], zlb, s)
			if err != nil {
				return out, err
			}
			if d, err = dnet(d, dm, zhm28, xmm, sp.mass); err != nil {
				return out, err
			}
			d = sp.correct(d, b)
		}

		// O2 also departs from diffusive equilibrium above the turbopause.
		if sp.slot == DensO2 && sw[SwitchDepartures] != 0 {
			rc32 := pdm[pdmO2][3] * pdl[1][23] * (1 + sw[SwitchF107]*pdl[0][23]*(in.F107A-150))
			d *= ccor2(z, rc32, pdm[pdmO2][7]*pdl[1][22], pdm[pdmO2][6]*pdl[1][21], pdm[pdmO2][7]*pdl[0][22])
		}
		out.D[sp.slot] = d
	}

	// Anomalous (hot) oxygen.
	g16h := sw[SwitchDensity120] * e.globe7(&pd[pdHotO])
	db16h := pdm[pdmHotO][0] * math.Exp(g16h) * pd[pdHotO][0]
	tho := pdm[pdmHotO][9] * pdl[0][6]
	dd, err := e.densu(z, db16h, tho, tho, massO, thermalDiffusion[DensAnomalousO], &out.T[TempAlt], zlb, s)
	if err != nil {
		return out, err
	}
	zsht := pdm[pdmHotO][5]
	zmho := pdm[pdmHotO][4]
	zsho := e.scaleHeight(zmho, massO, tho)
	out.D[DensAnomalousO] = dd * math.Exp(-zsht/zsho*(math.Exp(-(z-zmho)/zsht)-1))

	out.D[DensTotal] = totalMass(&out, false)

	if _, err := e.densu(math.Abs(alt), 1, tinf, tlb, 0, 0, &out.T[TempAlt], zlb, s); err != nil {
		return out, err
	}

	if sw[SwitchUnits] != 0 {
		for i := range out.D {
			out.D[i] *= 1e6
		}
		out.D[DensTotal] /= 1000
	}
	return out, nil
}

// lowerThermoNodes fills the 110, 100, 90 and 72.5 km node temperatures
// and the 72.5 km gradient.
func (e *evaluation) lowerThermoNodes(alt float64) error {
	sw := &e.sw
	var v [5]float64
	if alt < lowerThermoCutoff {
		rows := []*[100]float64{&ptl[0], &ptl[1], &ptl[2], &ptl[3], &pma[pmaGrad725]}
		for i, row := range rows {
			g, err := e.glob7s(row)
			if err != nil {
				return err
			}
			v[i] = g
		}
	}

	wt := sw[SwitchLowerThermoTemp]
	wm := sw[SwitchLowerThermoTemp] * sw[SwitchUpperStratoTemp]
	e.tn1[1] = ptm[6] * ptl[0][0] / (1 - wt*v[0])
	e.tn1[2] = ptm[2] * ptl[1][0] / (1 - wt*v[1])
	e.tn1[3] = ptm[7] * ptl[2][0] / (1 - wt*v[2])
	e.tn1[4] = ptm[4] * ptl[3][0] / (1 - wm*v[3])
	e.tgn1[1] = ptm[8] * pma[pmaGrad725][0] * (1 + wm*v[4]) * e.tn1[4] * e.tn1[4] / math.Pow(ptm[4]*ptl[3][0], 2)
	return nil
}

// totalMass is the mass density from the number densities in out, in the
// same unit system before any SI scaling of the total.
func totalMass(out *Output, withAnomalousO bool) float64 {
	d := &out.D
	sum := massHe*d[DensHe] + massO*d[DensO] + massN2*d[DensN2] + massO2*d[DensO2] +
		massAr*d[DensAr] + massH*d[DensH] + massN*d[DensN]
	if withAnomalousO {
		sum += massO * d[DensAnomalousO]
	}
	return amu * sum
}
