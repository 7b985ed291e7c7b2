package atmos

import (
	"errors"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/lox/geoatmos/internal/msis"
	"github.com/lox/geoatmos/internal/spaceweather"
)

func newTestEvaluator(t *testing.T, cfg ModelConfig) *Evaluator {
	t.Helper()
	ev, err := NewEvaluator(cfg)
	if err != nil {
		t.Fatalf("NewEvaluator: %v", err)
	}
	return ev
}

func testPosition(altM float64) Geodetic {
	return Geodetic{
		Time: time.Date(2023, 12, 31, 6, 0, 0, 0, time.UTC),
		Lat:  35,
		Lon:  135,
		Alt:  altM,
	}
}

func TestNewInput(t *testing.T) {
	pos := Geodetic{
		Time: time.Date(2024, 6, 20, 8, 3, 20, 0, time.UTC),
		Lat:  60,
		Lon:  -70,
		Alt:  400e3,
	}
	in := NewInput(pos, 150, 140)

	if in.Year != 2024 || in.DOY != 172 {
		t.Errorf("Year/DOY = %d/%d, want 2024/172", in.Year, in.DOY)
	}
	if in.Sec != 29000 {
		t.Errorf("Sec = %v, want 29000", in.Sec)
	}
	if in.Alt != 400 {
		t.Errorf("Alt = %v km, want 400", in.Alt)
	}
	wantLST := 29000.0/3600 - 70.0/15
	if math.Abs(in.LST-wantLST) > 1e-12 {
		t.Errorf("LST = %v, want %v", in.LST, wantLST)
	}
	if in.F107A != 150 || in.F107 != 140 {
		t.Errorf("F107A/F107 = %v/%v", in.F107A, in.F107)
	}

	lst := 16.0
	pos.LST = &lst
	if got := NewInput(pos, 150, 150).LST; got != 16 {
		t.Errorf("LST override = %v, want 16", got)
	}
}

func TestEvaluateMatchesModel(t *testing.T) {
	ev := newTestEvaluator(t, DefaultModelConfig())
	pos := testPosition(400e3)

	got, err := ev.Evaluate(pos, 150, 150, 4)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	m, err := msis.New(msis.DefaultSwitches())
	if err != nil {
		t.Fatalf("msis.New: %v", err)
	}
	in := NewInput(pos, 150, 150)
	in.Ap = 4
	out, err := m.GTD7(in)
	if err != nil {
		t.Fatalf("GTD7: %v", err)
	}

	if got.Density.Total != out.D[msis.DensTotal] || got.Density.AtomicOxygen != out.D[msis.DensO] {
		t.Errorf("density = %+v, model = %v", got.Density, out.D)
	}
	if got.Density.AtomicHydrogen != out.D[msis.DensH] || got.Density.AnomalousOxygen != out.D[msis.DensAnomalousO] {
		t.Errorf("species mapping wrong: %+v", got.Density)
	}
	if got.Temperature.Altitude != out.T[msis.TempAlt] {
		t.Errorf("temperature = %v, want %v", got.Temperature.Altitude, out.T[msis.TempAlt])
	}
}

func TestUnits(t *testing.T) {
	cgs := newTestEvaluator(t, DefaultModelConfig())

	siCfg := DefaultModelConfig()
	siCfg.DensityUnit = KgPerM3
	siCfg.TemperatureUnit = Celsius
	si := newTestEvaluator(t, siCfg)

	pos := testPosition(120e3)
	a, err := cgs.Evaluate(pos, 150, 150, 4)
	if err != nil {
		t.Fatalf("Evaluate cgs: %v", err)
	}
	b, err := si.Evaluate(pos, 150, 150, 4)
	if err != nil {
		t.Fatalf("Evaluate si: %v", err)
	}

	if r := b.Density.Total / a.Density.Total; math.Abs(r-1000) > 1e-6 {
		t.Errorf("total density ratio = %v, want 1000", r)
	}
	if r := b.Density.MolecularNitrogen / a.Density.MolecularNitrogen; math.Abs(r-1e6) > 1e-3 {
		t.Errorf("N2 ratio = %v, want 1e6", r)
	}
	if d := a.Temperature.Altitude - b.Temperature.Altitude; math.Abs(d-273.15) > 1e-9 {
		t.Errorf("Celsius offset = %v, want 273.15", d)
	}
}

func TestParseUnits(t *testing.T) {
	for _, s := range []string{"si", "KG/M3", "kg/m^3"} {
		u, err := ParseDensityUnit(s)
		if err != nil || !u.si() {
			t.Errorf("ParseDensityUnit(%q) = %v, %v", s, u, err)
		}
	}
	if _, err := ParseDensityUnit("furlongs"); err == nil {
		t.Error("ParseDensityUnit accepted furlongs")
	}
	if u, err := ParseTemperatureUnit("Celsius"); err != nil || u != Celsius {
		t.Errorf("ParseTemperatureUnit = %v, %v", u, err)
	}
}

func TestInvalidSwitchesRejected(t *testing.T) {
	cfg := DefaultModelConfig()
	cfg.Switches[msis.SwitchF107] = msis.StormTime
	if _, err := NewEvaluator(cfg); !errors.Is(err, msis.ErrInvalidConfiguration) {
		t.Errorf("NewEvaluator err = %v, want ErrInvalidConfiguration", err)
	}

	// Storm time on the Ap switch is fine; the scalar path treats it as On.
	cfg = DefaultModelConfig()
	cfg.Switches[msis.SwitchDailyAp] = msis.StormTime
	ev := newTestEvaluator(t, cfg)
	if _, err := ev.Evaluate(testPosition(300e3), 150, 150, 10); err != nil {
		t.Errorf("Evaluate: %v", err)
	}
}

func testTable(t *testing.T) *spaceweather.Table {
	t.Helper()
	lines := []string{
		"2023-12-28,2595,27,0,0,0,0,0,0,0,0,0,1,1,1,1,1,1,1,1,1,0.0,0,90,125.0,126.0,OBS,138.0,139.0,140.0,141.0",
		"2023-12-29,2596,1,3,3,3,3,3,3,3,3,24,2,2,2,2,2,2,2,2,2,0.1,0,100,130.0,131.0,OBS,140.0,141.0,142.0,143.0",
		"2023-12-30,2596,2,7,7,7,7,7,7,7,7,56,3,3,3,3,3,3,3,3,3,0.2,1,110,135.0,136.0,OBS,145.0,146.0,147.0,148.0",
		"2023-12-31,2596,3,10,13,17,20,23,27,30,33,173,4,5,6,7,9,12,15,18,10,0.5,2,120,140.0,141.0,OBS,150.0,151.0,152.0,153.0",
	}
	table, err := spaceweather.Parse(strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return table
}

func TestEvaluateSpaceWeather(t *testing.T) {
	ev := newTestEvaluator(t, DefaultModelConfig())
	table := testTable(t)
	pos := testPosition(400e3) // Dec 31 06:00, bucket 2

	got, err := ev.EvaluateSpaceWeather(pos, table)
	if err != nil {
		t.Fatalf("EvaluateSpaceWeather: %v", err)
	}

	ap := MagneticIndex{10, 6, 5, 4, 3, (7*3 + 2) / 8.0, (7*2 + 1) / 8.0}
	want, err := ev.EvaluateStorm(pos, 150, 135, ap)
	if err != nil {
		t.Fatalf("EvaluateStorm: %v", err)
	}
	if got != want {
		t.Errorf("EvaluateSpaceWeather = %+v, want %+v", got, want)
	}
}

func TestEvaluateSpaceWeatherFallback(t *testing.T) {
	ev := newTestEvaluator(t, DefaultModelConfig())
	table := testTable(t)
	pos := testPosition(400e3)
	pos.Time = time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	got, err := ev.EvaluateSpaceWeather(pos, table)
	if err != nil {
		t.Fatalf("EvaluateSpaceWeather: %v", err)
	}
	want, err := ev.EvaluateStorm(pos, FallbackF107, FallbackF107, DefaultMagneticIndex())
	if err != nil {
		t.Fatalf("EvaluateStorm: %v", err)
	}
	if got != want {
		t.Errorf("fallback = %+v, want %+v", got, want)
	}

	if _, err := ev.EvaluateSpaceWeather(pos, nil); err != nil {
		t.Errorf("nil table should fall back, got %v", err)
	}
}

func TestPressure(t *testing.T) {
	ev := newTestEvaluator(t, DefaultModelConfig())
	alt, params, err := ev.Pressure(testPosition(0), 150, 150, 4, 1013.25)
	if err != nil {
		t.Fatalf("Pressure: %v", err)
	}
	if alt < -2 || alt > 2 {
		t.Errorf("altitude of 1013.25 mb = %v km, want near sea level", alt)
	}
	if params.Density.Total <= 0 {
		t.Errorf("density at pressure level = %v", params.Density.Total)
	}

	if _, _, err := ev.Pressure(testPosition(0), 150, 150, 4, 0); !errors.Is(err, msis.ErrMath) {
		t.Errorf("Pressure(0) err = %v, want ErrMath", err)
	}
}

func TestRegime(t *testing.T) {
	tests := []struct {
		alt  float64
		want string
	}{
		{400, "thermosphere"},
		{72.5, "thermosphere"},
		{50, "mesosphere"},
		{10, "stratosphere"},
	}
	for _, tt := range tests {
		if got := Regime(tt.alt); got != tt.want {
			t.Errorf("Regime(%v) = %q, want %q", tt.alt, got, tt.want)
		}
	}
}

func TestEvaluatorConcurrentUse(t *testing.T) {
	ev := newTestEvaluator(t, DefaultModelConfig())
	table := testTable(t)

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := ev.EvaluateSpaceWeather(testPosition(float64(i)*20e3), table)
			if err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent evaluation: %v", err)
	}
}

func TestEvaluateStormDocumentedCase(t *testing.T) {
	ev := newTestEvaluator(t, DefaultModelConfig())
	ap := MagneticIndex{0, 3, 0, 4, 4, (3 + 5 + 9 + 4 + 9 + 5 + 3 + 3) / 8.0, (3 + 0 + 6 + 4 + 5 + 5 + 9 + 6) / 8.0}

	tests := []struct {
		alt            float64 // m
		exo            float64
		minRho, maxRho float64
	}{
		{0, 1.027318e+03, 1e-4, 1e-2},
		{400e3, 8.768004e+02, 1e-16, 1e-14},
	}
	for _, tt := range tests {
		pos := Geodetic{Time: time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), Lat: 35, Lon: 135, Alt: tt.alt}
		got, err := ev.EvaluateStorm(pos, 155.1, 135.1, ap)
		if err != nil {
			t.Fatalf("EvaluateStorm(%v m): %v", tt.alt, err)
		}
		if rel := math.Abs(got.Temperature.Exosphere-tt.exo) / tt.exo; rel > 1e-6 {
			t.Errorf("%v m: exospheric temperature = %v, want %v", tt.alt, got.Temperature.Exosphere, tt.exo)
		}
		if rho := got.Density.Total; rho < tt.minRho || rho > tt.maxRho {
			t.Errorf("%v m: total density = %v g/cm^3, want within [%v, %v]", tt.alt, rho, tt.minRho, tt.maxRho)
		}
		if tt.alt >= 400e3 {
			if rel := math.Abs(got.Temperature.Altitude-got.Temperature.Exosphere) / got.Temperature.Exosphere; rel > 1e-3 {
				t.Errorf("%v m: temperature %v not near exospheric %v", tt.alt, got.Temperature.Altitude, got.Temperature.Exosphere)
			}
		}
	}
}

func TestNonFiniteOutputIsMathError(t *testing.T) {
	tests := []struct {
		name string
		out  msis.Output
		ok   bool
	}{
		{"finite", msis.Output{D: [9]float64{1, 2, 3}, T: [2]float64{1000, 900}}, true},
		{"nan density", msis.Output{D: [9]float64{0, 0, 0, 0, 0, 0, 0, 0, math.NaN()}}, false},
		{"inf temperature", msis.Output{T: [2]float64{math.Inf(1), 900}}, false},
	}
	for _, tt := range tests {
		err := checkFinite(tt.out)
		if tt.ok && err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
		}
		if !tt.ok && !errors.Is(err, msis.ErrMath) {
			t.Errorf("%s: err = %v, want ErrMath", tt.name, err)
		}
	}

	ev := newTestEvaluator(t, DefaultModelConfig())
	if _, err := ev.Evaluate(testPosition(math.NaN()), 150, 150, 4); !errors.Is(err, msis.ErrMath) {
		t.Errorf("Evaluate(NaN altitude) err = %v, want ErrMath", err)
	}
}
