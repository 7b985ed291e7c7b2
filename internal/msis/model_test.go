package msis

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"
)

func referenceInput() Input {
	return Input{
		DOY:   172,
		Sec:   29000,
		Alt:   400,
		GLat:  60,
		GLong: -70,
		LST:   16,
		F107A: 150,
		F107:  150,
		Ap:    4,
	}
}

func newTestModel(t *testing.T, sw Switches) *Model {
	t.Helper()
	m, err := New(sw)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func relDiff(got, want float64) float64 {
	if want == 0 {
		return math.Abs(got)
	}
	return math.Abs(got-want) / math.Abs(want)
}

func TestGTD7Reference(t *testing.T) {
	quiet := newTestModel(t, DefaultSwitches())
	sw := DefaultSwitches()
	sw[SwitchDailyAp] = StormTime
	storm := newTestModel(t, sw)

	stormHistory := [7]float64{100, 100, 100, 100, 100, 100, 100}
	tests := []struct {
		name    string
		modify  func(in *Input)
		storm   bool
		wantExo float64
	}{
		{"400 km", func(in *Input) {}, false, 1.250540e+03},
		{"equinox", func(in *Input) { in.DOY = 81 }, false, 1.166754e+03},
		{"1000 km evening", func(in *Input) { in.Sec = 75000; in.Alt = 1000 }, false, 1.239892e+03},
		{"100 km", func(in *Input) { in.Alt = 100 }, false, 1.027318e+03},
		{"equator", func(in *Input) { in.GLat = 0 }, false, 1.212396e+03},
		{"greenwich", func(in *Input) { in.GLong = 0 }, false, 1.220146e+03},
		{"early morning", func(in *Input) { in.LST = 4 }, false, 1.116385e+03},
		{"low solar average", func(in *Input) { in.F107A = 70 }, false, 1.031247e+03},
		{"high daily flux", func(in *Input) { in.F107 = 180 }, false, 1.306052e+03},
		{"active", func(in *Input) { in.Ap = 40 }, false, 1.361868e+03},
		{"sea level", func(in *Input) { in.Alt = 0 }, false, 1.027318e+03},
		{"10 km", func(in *Input) { in.Alt = 10 }, false, 1.027318e+03},
		{"30 km", func(in *Input) { in.Alt = 30 }, false, 1.027318e+03},
		{"50 km", func(in *Input) { in.Alt = 50 }, false, 1.027318e+03},
		{"70 km", func(in *Input) { in.Alt = 70 }, false, 1.027318e+03},
		{"storm 400 km", func(in *Input) {}, true, 1.426412e+03},
		{"storm 100 km", func(in *Input) { in.Alt = 100 }, true, 1.027318e+03},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := referenceInput()
			tt.modify(&in)
			m := quiet
			if tt.storm {
				m = storm
				in.ApArray = stormHistory
			}
			got, err := m.GTD7(in)
			if err != nil {
				t.Fatalf("GTD7: %v", err)
			}
			if d := relDiff(got.T[TempExo], tt.wantExo); d > 1e-6 {
				t.Errorf("T[%d] = %.6e, want %.6e", TempExo, got.T[TempExo], tt.wantExo)
			}
		})
	}
}

func TestGTD7IsothermalAtAltitude(t *testing.T) {
	m := newTestModel(t, DefaultSwitches())
	in := referenceInput()
	in.Sec = 75000
	in.Alt = 1000
	got, err := m.GTD7(in)
	if err != nil {
		t.Fatalf("GTD7: %v", err)
	}
	if d := relDiff(got.T[TempAlt], 1.239891e+03); d > 1e-6 {
		t.Errorf("T[%d] = %.6e, want %.6e", TempAlt, got.T[TempAlt], 1.239891e+03)
	}
}

func TestParameterTablesAreWellFormed(t *testing.T) {
	rows := map[string]*[150]float64{"pt": &pt, "ps": &ps}
	for i := range pd {
		rows[fmt.Sprintf("pd[%d]", i)] = &pd[i]
	}
	for name, row := range rows {
		if row[43] <= 0 {
			t.Errorf("%s[43] = %v, want a positive activity decay rate", name, row[43])
		}
	}
	for i := range ptl {
		if ptl[i][99] != lowerAtmosphereSet {
			t.Errorf("ptl[%d][99] = %v, want %v", i, ptl[i][99], lowerAtmosphereSet)
		}
	}
	for i := range pma {
		if pma[i][99] != lowerAtmosphereSet {
			t.Errorf("pma[%d][99] = %v, want %v", i, pma[i][99], lowerAtmosphereSet)
		}
	}
	if got := ptm[0] * pt[0]; relDiff(got, 1.027318e+03) > 1e-6 {
		t.Errorf("quiet exospheric temperature = %v, want 1027.318", got)
	}
}

func TestMixingCutoffsAreContinuous(t *testing.T) {
	m := newTestModel(t, DefaultSwitches())
	for _, slot := range []int{DensO, DensN2, DensO2, DensAr, DensH, DensN} {
		cutoff := mixingCutoff[slot]
		below := referenceInput()
		below.Alt = cutoff - 0.01
		above := referenceInput()
		above.Alt = cutoff + 0.01

		a, err := m.GTD7(above)
		if err != nil {
			t.Fatalf("GTD7(%v): %v", above.Alt, err)
		}
		b, err := m.GTD7(below)
		if err != nil {
			t.Fatalf("GTD7(%v): %v", below.Alt, err)
		}
		if d := relDiff(b.D[slot], a.D[slot]); d > 5e-3 {
			t.Errorf("D[%d] across %v km: below %e above %e", slot, cutoff, b.D[slot], a.D[slot])
		}
	}
}

func TestNonFiniteInputsRejected(t *testing.T) {
	m := newTestModel(t, DefaultSwitches())
	nan, inf := math.NaN(), math.Inf(1)

	tests := []struct {
		name   string
		modify func(in *Input)
	}{
		{"NaN altitude", func(in *Input) { in.Alt = nan }},
		{"infinite altitude", func(in *Input) { in.Alt = inf }},
		{"NaN latitude", func(in *Input) { in.GLat = nan }},
		{"infinite F10.7", func(in *Input) { in.F107 = -inf }},
		{"NaN F10.7 average", func(in *Input) { in.F107A = nan }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := referenceInput()
			tt.modify(&in)
			if _, err := m.GTD7(in); !errors.Is(err, ErrMath) {
				t.Errorf("GTD7 err = %v, want ErrMath", err)
			}
			if _, err := m.GTD7D(in); !errors.Is(err, ErrMath) {
				t.Errorf("GTD7D err = %v, want ErrMath", err)
			}
		})
	}

	// GHP7 solves for altitude, so only the other drivers are checked.
	in := referenceInput()
	in.Alt = 100
	out, err := m.GTD7(in)
	if err != nil {
		t.Fatalf("GTD7: %v", err)
	}
	xn := out.D[DensHe] + out.D[DensO] + out.D[DensN2] + out.D[DensO2] + out.D[DensAr] + out.D[DensH] + out.D[DensN]
	press := boltzmann * xn * out.T[TempAlt]

	in.Alt = nan
	if _, _, err := m.GHP7(in, press); err != nil {
		t.Errorf("GHP7 with NaN starting altitude: %v", err)
	}
	in.GLat = nan
	if _, _, err := m.GHP7(in, press); !errors.Is(err, ErrMath) {
		t.Errorf("GHP7 NaN latitude err = %v, want ErrMath", err)
	}
}

func TestTotalMassIsWeightedSum(t *testing.T) {
	m := newTestModel(t, DefaultSwitches())
	for _, alt := range []float64{0, 20, 50, 72.5, 100, 250, 600} {
		in := referenceInput()
		in.Alt = alt
		out, err := m.GTD7(in)
		if err != nil {
			t.Fatalf("GTD7(%v): %v", alt, err)
		}
		want := totalMass(&out, false)
		if relDiff(out.D[DensTotal], want) > 1e-12 {
			t.Errorf("alt %v: total = %e, weighted sum = %e", alt, out.D[DensTotal], want)
		}
	}
}

func TestGTD7DIncludesAnomalousOxygen(t *testing.T) {
	m := newTestModel(t, DefaultSwitches())
	in := referenceInput()
	in.Alt = 800

	plain, err := m.GTD7(in)
	if err != nil {
		t.Fatalf("GTD7: %v", err)
	}
	drag, err := m.GTD7D(in)
	if err != nil {
		t.Fatalf("GTD7D: %v", err)
	}
	want := plain.D[DensTotal] + amu*massO*plain.D[DensAnomalousO]
	if relDiff(drag.D[DensTotal], want) > 1e-12 {
		t.Errorf("GTD7D total = %e, want %e", drag.D[DensTotal], want)
	}
	if drag.D[DensO] != plain.D[DensO] {
		t.Errorf("GTD7D changed species densities")
	}
}

func TestSIScaling(t *testing.T) {
	cgs := newTestModel(t, DefaultSwitches())
	siSwitches := DefaultSwitches()
	siSwitches[SwitchUnits] = On
	si := newTestModel(t, siSwitches)

	for _, alt := range []float64{10, 90, 400} {
		in := referenceInput()
		in.Alt = alt
		a, err := cgs.GTD7(in)
		if err != nil {
			t.Fatalf("GTD7 cgs: %v", err)
		}
		b, err := si.GTD7(in)
		if err != nil {
			t.Fatalf("GTD7 si: %v", err)
		}
		for i := range a.D {
			want := a.D[i] * 1e6
			if i == DensTotal {
				want = a.D[i] * 1e3
			}
			if relDiff(b.D[i], want) > 1e-9 {
				t.Errorf("alt %v D[%d]: si = %e, want %e", alt, i, b.D[i], want)
			}
		}
		if a.T != b.T {
			t.Errorf("alt %v: temperatures differ between unit systems: %v vs %v", alt, a.T, b.T)
		}
	}
}

func TestProfileJoinsAreContinuous(t *testing.T) {
	m := newTestModel(t, DefaultSwitches())
	const eps = 1e-6

	for _, join := range []float64{mesosphereTop, strataNodes[0]} {
		above := referenceInput()
		above.Alt = join
		below := referenceInput()
		below.Alt = join - eps

		a, err := m.GTD7(above)
		if err != nil {
			t.Fatalf("GTD7(%v): %v", above.Alt, err)
		}
		b, err := m.GTD7(below)
		if err != nil {
			t.Fatalf("GTD7(%v): %v", below.Alt, err)
		}
		for _, slot := range []int{DensHe, DensN2, DensO2, DensAr} {
			if d := relDiff(b.D[slot], a.D[slot]); d > 1e-4 {
				t.Errorf("join %v km D[%d]: above %e below %e", join, slot, a.D[slot], b.D[slot])
			}
		}
		if d := relDiff(b.T[TempAlt], a.T[TempAlt]); d > 1e-4 {
			t.Errorf("join %v km temperature: above %v below %v", join, a.T[TempAlt], b.T[TempAlt])
		}
	}
}

func TestDensityDecreasesWithAltitude(t *testing.T) {
	m := newTestModel(t, DefaultSwitches())
	prev := math.Inf(1)
	for alt := 0.0; alt <= 1000; alt += 25 {
		in := referenceInput()
		in.Alt = alt
		out, err := m.GTD7(in)
		if err != nil {
			t.Fatalf("GTD7(%v): %v", alt, err)
		}
		rho := out.D[DensTotal]
		if math.IsNaN(rho) || rho <= 0 {
			t.Fatalf("alt %v: total density %v", alt, rho)
		}
		if rho >= prev {
			t.Errorf("alt %v: density %e not below %e", alt, rho, prev)
		}
		prev = rho
	}
}

func TestGHP7InvertsPressure(t *testing.T) {
	m := newTestModel(t, DefaultSwitches())

	for _, alt := range []float64{5, 40, 100, 150} {
		in := referenceInput()
		in.Alt = alt
		out, err := m.GTD7(in)
		if err != nil {
			t.Fatalf("GTD7(%v): %v", alt, err)
		}
		xn := out.D[DensHe] + out.D[DensO] + out.D[DensN2] + out.D[DensO2] + out.D[DensAr] + out.D[DensH] + out.D[DensN]
		press := boltzmann * xn * out.T[TempAlt]

		in.Alt = -1
		got, _, err := m.GHP7(in, press)
		if err != nil {
			t.Fatalf("GHP7(%e): %v", press, err)
		}
		if math.Abs(got-alt) > 0.1 {
			t.Errorf("GHP7(%e) = %v km, want %v km", press, got, alt)
		}
	}
}

func TestGHP7RejectsNonPositivePressure(t *testing.T) {
	m := newTestModel(t, DefaultSwitches())
	for _, p := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, _, err := m.GHP7(referenceInput(), p); !errors.Is(err, ErrMath) {
			t.Errorf("GHP7(%v) err = %v, want ErrMath", p, err)
		}
	}
}

func TestSwitchesValidate(t *testing.T) {
	storm := DefaultSwitches()
	storm[SwitchDailyAp] = StormTime

	misplaced := DefaultSwitches()
	misplaced[SwitchF107] = StormTime

	unknown := DefaultSwitches()
	unknown[SwitchTerdiurnal] = Switch(7)

	tests := []struct {
		name    string
		sw      Switches
		wantErr bool
	}{
		{"defaults", DefaultSwitches(), false},
		{"storm time on daily ap", storm, false},
		{"storm time elsewhere", misplaced, true},
		{"unknown value", unknown, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.sw)
			if tt.wantErr && !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("New err = %v, want ErrInvalidConfiguration", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("New: %v", err)
			}
		})
	}
}

func TestSwitchWeights(t *testing.T) {
	sw := DefaultSwitches()
	sw[SwitchDailyAp] = StormTime
	sw[SwitchTerdiurnal] = Off

	main, cross := sw.weights()
	if main[SwitchDailyAp] != -1 || cross[SwitchDailyAp] != -1 {
		t.Errorf("storm-time weight = %v/%v, want -1/-1", main[SwitchDailyAp], cross[SwitchDailyAp])
	}
	if main[SwitchTerdiurnal] != 0 {
		t.Errorf("off weight = %v, want 0", main[SwitchTerdiurnal])
	}
	if main[SwitchUnits] != 0 || main[SwitchF107] != 1 {
		t.Errorf("weights = %v", main)
	}
}

func TestStormTimeUsesApHistory(t *testing.T) {
	daily := newTestModel(t, DefaultSwitches())
	sw := DefaultSwitches()
	sw[SwitchDailyAp] = StormTime
	storm := newTestModel(t, sw)

	in := referenceInput()
	in.ApArray = [7]float64{100, 100, 100, 100, 100, 100, 100}

	a, err := daily.GTD7(in)
	if err != nil {
		t.Fatalf("GTD7 daily: %v", err)
	}
	b, err := storm.GTD7(in)
	if err != nil {
		t.Fatalf("GTD7 storm: %v", err)
	}
	if b.T[TempExo] <= a.T[TempExo] {
		t.Errorf("storm exospheric temperature %v, want above quiet %v", b.T[TempExo], a.T[TempExo])
	}
	for i, d := range b.D {
		if math.IsNaN(d) {
			t.Errorf("D[%d] is NaN", i)
		}
	}
}

func TestGlob7sRejectsForeignParameterSet(t *testing.T) {
	e := newEvaluation(DefaultSwitches(), referenceInput())
	row := pma[pmaMeso55]
	row[99] = 3
	if _, err := e.glob7s(&row); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("glob7s err = %v, want ErrInvalidConfiguration", err)
	}
}

func TestModelIsSafeForConcurrentUse(t *testing.T) {
	m := newTestModel(t, DefaultSwitches())
	want, err := m.GTD7(referenceInput())
	if err != nil {
		t.Fatalf("GTD7: %v", err)
	}

	var wg sync.WaitGroup
	results := make([]Output, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := referenceInput()
			if i%2 == 1 {
				// Interleave a different altitude to exercise per-call state.
				in.Alt = 50
				_, _ = m.GTD7(in)
				in.Alt = 400
			}
			results[i], _ = m.GTD7(in)
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if got != want {
			t.Errorf("goroutine %d: got %v, want %v", i, got, want)
		}
	}
}
