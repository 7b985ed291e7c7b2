// Package export produces altitude profiles and writes them as CSV or
// Parquet.
package export

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/lox/geoatmos/internal/atmos"
	"github.com/lox/geoatmos/internal/spaceweather"
)

// MaxPoints bounds a single sweep.
const MaxPoints = 100000

var ErrInvalidRequest = errors.New("invalid profile request")

// Drivers are explicit solar and geomagnetic indices.
type Drivers struct {
	F107Avg   float64
	F107Daily float64
	Ap        float64
}

// Request describes a vertical sweep at one place and time. Altitudes are
// in km. When Drivers is nil the indices come from Table, falling back to
// quiet defaults outside it.
type Request struct {
	Time time.Time
	Lat  float64
	Lon  float64

	From float64
	To   float64
	Step float64

	Drivers *Drivers
	Table   *spaceweather.Table
}

// Point is one level of a profile.
type Point struct {
	Altitude   float64          `json:"altitude_km"`
	Parameters atmos.Parameters `json:"parameters"`
}

// Count is the number of levels the request spans, including both ends.
func (r Request) Count() (int, error) {
	if r.Step <= 0 || math.IsNaN(r.Step) {
		return 0, fmt.Errorf("%w: step must be positive", ErrInvalidRequest)
	}
	if r.To < r.From {
		return 0, fmt.Errorf("%w: to %g is below from %g", ErrInvalidRequest, r.To, r.From)
	}
	n := int(math.Floor((r.To-r.From)/r.Step+1e-9)) + 1
	if n > MaxPoints {
		return 0, fmt.Errorf("%w: %d levels exceeds %d", ErrInvalidRequest, n, MaxPoints)
	}
	return n, nil
}

// Profile evaluates every level of req.
func Profile(ev *atmos.Evaluator, req Request) ([]Point, error) {
	n, err := req.Count()
	if err != nil {
		return nil, err
	}

	f107avg, f107daily := 0.0, 0.0
	var ap atmos.MagneticIndex
	if req.Drivers == nil {
		if f107avg, f107daily, ap, err = atmos.Indices(req.Table, req.Time); err != nil {
			return nil, err
		}
	}

	points := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		alt := req.From + float64(i)*req.Step
		pos := atmos.Geodetic{Time: req.Time, Lat: req.Lat, Lon: req.Lon, Alt: alt * 1e3}

		var p atmos.Parameters
		if d := req.Drivers; d != nil {
			p, err = ev.Evaluate(pos, d.F107Avg, d.F107Daily, d.Ap)
		} else {
			p, err = ev.EvaluateStorm(pos, f107avg, f107daily, ap)
		}
		if err != nil {
			return points, err
		}
		points = append(points, Point{Altitude: alt, Parameters: p})
	}
	return points, nil
}
