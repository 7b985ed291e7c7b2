package atmos

import (
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/lox/geoatmos/internal/metrics"
	"github.com/lox/geoatmos/internal/msis"
	"github.com/lox/geoatmos/internal/spaceweather"
)

// Fallback indices used when a date is outside the space-weather table.
const (
	FallbackF107 = 150.0
	FallbackAp   = 4.0
)

// Evaluator runs the model under one configuration. It holds no mutable
// state and may be shared between goroutines.
type Evaluator struct {
	config ModelConfig
	daily  *msis.Model
	storm  *msis.Model
}

// NewEvaluator validates cfg and prepares the daily-Ap and storm-time
// variants of the model.
func NewEvaluator(cfg ModelConfig) (*Evaluator, error) {
	sw := cfg.Switches
	sw[msis.SwitchUnits] = msis.Off
	if cfg.DensityUnit.si() {
		sw[msis.SwitchUnits] = msis.On
	}

	dailySw := sw
	if dailySw[msis.SwitchDailyAp] == msis.StormTime {
		dailySw[msis.SwitchDailyAp] = msis.On
	}
	daily, err := msis.New(dailySw)
	if err != nil {
		return nil, err
	}

	stormSw := sw
	stormSw[msis.SwitchDailyAp] = msis.StormTime
	storm, err := msis.New(stormSw)
	if err != nil {
		return nil, err
	}

	cfg.Switches = sw
	return &Evaluator{config: cfg, daily: daily, storm: storm}, nil
}

// Config returns the configuration with the unit switch resolved.
func (e *Evaluator) Config() ModelConfig {
	return e.config
}

// Evaluate uses a scalar daily Ap.
func (e *Evaluator) Evaluate(pos Position, f107avg, f107daily, ap float64) (Parameters, error) {
	in := NewInput(pos, f107avg, f107daily)
	in.Ap = ap
	return e.run(e.daily, in)
}

// EvaluateStorm uses the 7-element Ap history.
func (e *Evaluator) EvaluateStorm(pos Position, f107avg, f107daily float64, ap MagneticIndex) (Parameters, error) {
	in := NewInput(pos, f107avg, f107daily)
	in.ApArray = ap
	in.Ap = ap[0]
	return e.run(e.storm, in)
}

// EvaluateSpaceWeather takes F10.7 and Ap from table. The daily F10.7 is
// the observed value of the previous day and the average is the observed
// 81-day centred mean. Dates outside the table fall back to F10.7 = 150
// and a quiet Ap history.
func (e *Evaluator) EvaluateSpaceWeather(pos Position, table *spaceweather.Table) (Parameters, error) {
	f107avg, f107daily, ap, err := Indices(table, pos.Epoch())
	if err != nil {
		return Parameters{}, err
	}
	return e.EvaluateStorm(pos, f107avg, f107daily, ap)
}

// Indices looks up the model drivers for t, substituting the fallback
// values when t is outside the table.
func Indices(table *spaceweather.Table, t time.Time) (f107avg, f107daily float64, ap MagneticIndex, err error) {
	f107avg, f107daily, ap, err = lookup(table, t)
	if errors.Is(err, spaceweather.ErrDateOutOfRange) {
		log.Printf("atmos: space weather unavailable for %s, using defaults: %v", t.UTC().Format(time.RFC3339), err)
		metrics.SpaceWeatherFallbacks.Inc()
		return FallbackF107, FallbackF107, DefaultMagneticIndex(), nil
	}
	return f107avg, f107daily, ap, err
}

func lookup(table *spaceweather.Table, t time.Time) (f107avg, f107daily float64, ap MagneticIndex, err error) {
	if table == nil {
		return 0, 0, ap, fmt.Errorf("%w: no table loaded", spaceweather.ErrDateOutOfRange)
	}
	if f107daily, err = table.F107Obs(t, -1); err != nil {
		return
	}
	if f107avg, err = table.F107ObsCenter81(t); err != nil {
		return
	}
	raw, err := table.MagneticIndex(t)
	if err != nil {
		return
	}
	return f107avg, f107daily, MagneticIndex(raw), nil
}

// Pressure finds the altitude (km) where the pressure equals press (mb)
// using a daily Ap. The position's altitude is ignored.
func (e *Evaluator) Pressure(pos Position, f107avg, f107daily, ap, press float64) (float64, Parameters, error) {
	in := NewInput(pos, f107avg, f107daily)
	in.Ap = ap
	start := time.Now()
	alt, out, err := e.daily.GHP7(in, press)
	if err == nil {
		err = checkFinite(out)
	}
	observe(alt, start, err)
	if err != nil {
		return alt, Parameters{}, fmt.Errorf("pressure %g mb: %w", press, err)
	}
	return alt, newParameters(out, e.config.TemperatureUnit), nil
}

func (e *Evaluator) run(m *msis.Model, in msis.Input) (Parameters, error) {
	start := time.Now()
	out, err := m.GTD7(in)
	if err == nil {
		err = checkFinite(out)
	}
	observe(in.Alt, start, err)
	if err != nil {
		return Parameters{}, fmt.Errorf("evaluate at %.3f km: %w", in.Alt, err)
	}
	return newParameters(out, e.config.TemperatureUnit), nil
}

// checkFinite reports NaN or infinite model output as msis.ErrMath.
func checkFinite(out msis.Output) error {
	for i, d := range out.D {
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return fmt.Errorf("%w: density slot %d is %g", msis.ErrMath, i, d)
		}
	}
	for i, t := range out.T {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return fmt.Errorf("%w: temperature slot %d is %g", msis.ErrMath, i, t)
		}
	}
	return nil
}

// NewInput converts a position and solar indices to model input. Local
// solar time is seconds/3600 + longitude/15 unless the position carries
// an override.
func NewInput(pos Position, f107avg, f107daily float64) msis.Input {
	t := pos.Epoch().UTC()
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	sec := t.Sub(midnight).Seconds()

	in := msis.Input{
		Year:  t.Year(),
		DOY:   t.YearDay(),
		Sec:   sec,
		Alt:   pos.Altitude() * 1e-3,
		GLat:  pos.Latitude(),
		GLong: pos.Longitude(),
		LST:   sec/3600 + pos.Longitude()/15,
		F107A: f107avg,
		F107:  f107daily,
	}
	if o, ok := pos.(interface{ LocalSolarTime() (float64, bool) }); ok {
		if lst, set := o.LocalSolarTime(); set {
			in.LST = lst
		}
	}
	return in
}

// Regime names the altitude band an evaluation falls in.
func Regime(altKm float64) string {
	switch {
	case altKm >= 72.5:
		return "thermosphere"
	case altKm >= 32.5:
		return "mesosphere"
	default:
		return "stratosphere"
	}
}

func observe(altKm float64, start time.Time, err error) {
	regime := Regime(altKm)
	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.EvaluationsTotal.WithLabelValues(regime, status).Inc()
	metrics.EvaluationLatency.WithLabelValues(regime).Observe(time.Since(start).Seconds())
}
