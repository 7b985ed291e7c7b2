package msis

import (
	"errors"
	"math"
	"testing"
)

func TestDnet(t *testing.T) {
	tests := []struct {
		name    string
		dd, dm  float64
		zhm     float64
		want    float64
		wantErr bool
	}{
		{name: "mixed dominates", dd: 1, dm: 1e10, zhm: 28, want: 1e10},
		{name: "diffusive dominates", dd: 1e10, dm: 1, zhm: 28, want: 1e10},
		{name: "zero mixed returns diffusive", dd: 5, dm: 0, zhm: 28, want: 5},
		{name: "zero diffusive returns mixed", dd: 0, dm: 7, zhm: 28, want: 7},
		{name: "both non-positive", dd: 0, dm: -1, zhm: 28, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// xmm - xm = 28.95 - 4 keeps a positive.
			got, err := dnet(tt.dd, tt.dm, tt.zhm, 28.95, 4)
			if tt.wantErr {
				if !errors.Is(err, ErrMath) {
					t.Fatalf("dnet(%v, %v) err = %v, want ErrMath", tt.dd, tt.dm, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("dnet(%v, %v): %v", tt.dd, tt.dm, err)
			}
			if got != tt.want {
				t.Errorf("dnet(%v, %v) = %v, want %v", tt.dd, tt.dm, got, tt.want)
			}
		})
	}
}

func TestDnetBlendsBetweenEndpoints(t *testing.T) {
	dd, dm := 1e8, 2e8
	got, err := dnet(dd, dm, 28, 28.95, 16)
	if err != nil {
		t.Fatalf("dnet: %v", err)
	}
	if got <= dm || math.IsNaN(got) {
		t.Errorf("dnet(%v, %v) = %v, want a blend above the larger input", dd, dm, got)
	}
}

func TestCcorLimits(t *testing.T) {
	if got := ccor(1000, 2, 1, 100); got != 1 {
		t.Errorf("ccor far above = %v, want 1", got)
	}
	if got := ccor(0, 2, 1, 100); got != math.Exp(2) {
		t.Errorf("ccor far below = %v, want e^2", got)
	}
	if got := ccor2(1000, 2, 1, 100, 1); got != 1 {
		t.Errorf("ccor2 far above = %v, want 1", got)
	}
	if got := ccor2(0, 2, 1, 100, 1); got != math.Exp(2) {
		t.Errorf("ccor2 far below = %v, want e^2", got)
	}
}

func TestGravityAt(t *testing.T) {
	g45, re45 := gravityAt(45)
	if math.Abs(g45-980.616) > 1e-3 {
		t.Errorf("gravity at 45 = %v, want 980.616", g45)
	}
	if re45 < 6300 || re45 > 6400 {
		t.Errorf("effective radius at 45 = %v, want about 6356 km", re45)
	}
	gPole, _ := gravityAt(90)
	if gPole <= g45 {
		t.Errorf("gravity at pole %v should exceed gravity at 45 %v", gPole, g45)
	}
}

func TestDensuTemperatureAboveJoin(t *testing.T) {
	e := newEvaluation(DefaultSwitches(), Input{GLat: 45, DOY: 172, F107: 150, F107A: 150, Ap: 4})
	var tz float64
	got, err := e.densu(1000, 1, 1000, 400, 0, 0, &tz, 120, 0.02)
	if err != nil {
		t.Fatalf("densu: %v", err)
	}
	if got != tz {
		t.Errorf("densu with zero mass returned %v, temperature %v", got, tz)
	}
	if tz < 999 || tz > 1000 {
		t.Errorf("temperature at 1000 km = %v, want close to exospheric 1000", tz)
	}
}

func TestDensuBelowJoin(t *testing.T) {
	e := newEvaluation(DefaultSwitches(), referenceInput())
	if err := e.lowerThermoNodes(100); err != nil {
		t.Fatalf("lowerThermoNodes: %v", err)
	}
	const (
		tinf = 1000.0
		tlb  = 380.0
		s    = 0.02
		dlb  = 1e11
	)
	zlb := ptm[5]

	var tzAbove, tzBelow float64
	above, err := e.densu(thermoNodes[0], dlb, tinf, tlb, massN2, 0, &tzAbove, zlb, s)
	if err != nil {
		t.Fatalf("densu at join: %v", err)
	}
	below, err := e.densu(thermoNodes[0]-1e-6, dlb, tinf, tlb, massN2, 0, &tzBelow, zlb, s)
	if err != nil {
		t.Fatalf("densu below join: %v", err)
	}
	if d := relDiff(below, above); d > 1e-5 {
		t.Errorf("density across join: below %e above %e", below, above)
	}
	if d := relDiff(tzBelow, tzAbove); d > 1e-5 {
		t.Errorf("temperature across join: below %v above %v", tzBelow, tzAbove)
	}

	// The node spline passes through its node temperatures.
	for i := 1; i < len(thermoNodes); i++ {
		var tz float64
		got, err := e.densu(thermoNodes[i], dlb, tinf, tlb, 0, 0, &tz, zlb, s)
		if err != nil {
			t.Fatalf("densu(%v): %v", thermoNodes[i], err)
		}
		if d := relDiff(got, e.tn1[i]); d > 1e-9 {
			t.Errorf("temperature at %v km = %v, want node %v", thermoNodes[i], got, e.tn1[i])
		}
	}

	var tz float64
	d100, err := e.densu(100, dlb, tinf, tlb, massN2, 0, &tz, zlb, s)
	if err != nil {
		t.Fatalf("densu(100): %v", err)
	}
	if d100 <= above {
		t.Errorf("density at 100 km %e not above density at 120 km %e", d100, above)
	}
}

func TestDensuNaNAltitude(t *testing.T) {
	e := newEvaluation(DefaultSwitches(), referenceInput())
	var tz float64
	got, err := e.densu(math.NaN(), 1e11, 1000, 380, massN2, 0, &tz, ptm[5], 0.02)
	if err == nil && !math.IsNaN(got) {
		t.Errorf("densu(NaN) = %v, want NaN or an error", got)
	}
}

func TestDensmAtStratosphereNode(t *testing.T) {
	join := strataNodes[0]
	in := referenceInput()
	in.Alt = join
	e := newEvaluation(DefaultSwitches(), in)
	if _, err := e.gtd7(); err != nil {
		t.Fatalf("gtd7: %v", err)
	}

	var tz float64
	got, err := e.densm(join, 1, 0, &tz)
	if err != nil {
		t.Fatalf("densm temperature: %v", err)
	}
	want := e.tn2[len(e.tn2)-1]
	if d := relDiff(got, want); d > 1e-9 {
		t.Errorf("temperature at %v km = %v, want node %v", join, got, want)
	}

	at, err := e.densm(join, 1, massN2, &tz)
	if err != nil {
		t.Fatalf("densm at node: %v", err)
	}
	above, err := e.densm(join+1e-7, 1, massN2, &tz)
	if err != nil {
		t.Fatalf("densm above node: %v", err)
	}
	if d := relDiff(at, above); d > 1e-5 {
		t.Errorf("density at node %e, just above %e", at, above)
	}
}
