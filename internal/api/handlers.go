package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/lox/geoatmos/internal/atmos"
	"github.com/lox/geoatmos/internal/export"
	"github.com/lox/geoatmos/internal/msis"
	"github.com/lox/geoatmos/internal/spaceweather"
)

var errBadRequest = errors.New("bad request")

func writeJSON(w http.ResponseWriter, code int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.Printf("api: encode response: %v", err)
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("api: write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errBadRequest), errors.Is(err, export.ErrInvalidRequest):
		code = http.StatusBadRequest
	case errors.Is(err, msis.ErrMath):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, spaceweather.ErrDateOutOfRange):
		code = http.StatusNotFound
	}
	writeJSON(w, code, map[string]string{"error": err.Error()})
}

// params decodes query values, keeping the first error.
type params struct {
	q   url.Values
	err error
}

func (p *params) float(name string, def *float64) float64 {
	raw := p.q.Get(name)
	if raw == "" {
		if def == nil {
			p.fail("missing %s", name)
			return 0
		}
		return *def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		p.fail("invalid %s %q", name, raw)
	}
	return v
}

func (p *params) time(name string) time.Time {
	raw := p.q.Get(name)
	if raw == "" {
		p.fail("missing %s", name)
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t.UTC()
		}
	}
	p.fail("invalid %s %q", name, raw)
	return time.Time{}
}

func (p *params) fail(format string, args ...any) {
	if p.err == nil {
		p.err = fmt.Errorf("%w: %s", errBadRequest, fmt.Sprintf(format, args...))
	}
}

func (p *params) latLon() (lat, lon float64) {
	lat = p.float("lat", nil)
	lon = p.float("lon", nil)
	if lat < -90 || lat > 90 {
		p.fail("lat %g outside [-90, 90]", lat)
	}
	return lat, lon
}

// drivers returns explicit indices when any of f107a, f107 or ap is given,
// and nil when all are absent.
func (p *params) drivers() *export.Drivers {
	if p.q.Get("f107a") == "" && p.q.Get("f107") == "" && p.q.Get("ap") == "" {
		return nil
	}
	return &export.Drivers{
		F107Avg:   p.float("f107a", nil),
		F107Daily: p.float("f107", nil),
		Ap:        p.float("ap", nil),
	}
}

type Indices struct {
	F107Avg   float64              `json:"f107a"`
	F107Daily float64              `json:"f107"`
	Ap        float64              `json:"ap"`
	ApHistory *atmos.MagneticIndex `json:"ap_history,omitempty"`
}

type DensityResponse struct {
	Time       time.Time        `json:"time"`
	Latitude   float64          `json:"lat"`
	Longitude  float64          `json:"lon"`
	AltitudeKm float64          `json:"alt_km"`
	Regime     string           `json:"regime"`
	Units      Units            `json:"units"`
	Indices    Indices          `json:"indices"`
	Parameters atmos.Parameters `json:"parameters"`
}

type Units struct {
	Density     string `json:"density"`
	Temperature string `json:"temperature"`
}

func (s *Server) units() Units {
	cfg := s.evaluator.Config()
	return Units{Density: cfg.DensityUnit.String(), Temperature: cfg.TemperatureUnit.String()}
}

func (s *Server) handleDensity(w http.ResponseWriter, r *http.Request) {
	p := &params{q: r.URL.Query()}
	at := p.time("time")
	lat, lon := p.latLon()
	alt := p.float("alt", nil)
	d := p.drivers()
	if p.err != nil {
		writeError(w, p.err)
		return
	}

	pos := atmos.Geodetic{Time: at, Lat: lat, Lon: lon, Alt: alt * 1e3}
	resp := DensityResponse{
		Time: at, Latitude: lat, Longitude: lon, AltitudeKm: alt,
		Regime: atmos.Regime(alt),
		Units:  s.units(),
	}

	var err error
	if d != nil {
		resp.Indices = Indices{F107Avg: d.F107Avg, F107Daily: d.F107Daily, Ap: d.Ap}
		resp.Parameters, err = s.evaluator.Evaluate(pos, d.F107Avg, d.F107Daily, d.Ap)
	} else {
		var ap atmos.MagneticIndex
		resp.Indices.F107Avg, resp.Indices.F107Daily, ap, err = atmos.Indices(s.spaceWeather(), at)
		if err == nil {
			resp.Indices.Ap = ap[0]
			resp.Indices.ApHistory = &ap
			resp.Parameters, err = s.evaluator.EvaluateStorm(pos, resp.Indices.F107Avg, resp.Indices.F107Daily, ap)
		}
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

type ProfileResponse struct {
	Time      time.Time      `json:"time"`
	Latitude  float64        `json:"lat"`
	Longitude float64        `json:"lon"`
	Units     Units          `json:"units"`
	Points    []export.Point `json:"points"`
}

// handleProfile answers with JSON by default, or CSV or Parquet when
// format says so.
func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	p := &params{q: r.URL.Query()}
	lo, hi, step := 0.0, 1000.0, 10.0
	req := export.Request{
		Time: p.time("time"),
		From: p.float("from", &lo),
		To:   p.float("to", &hi),
		Step: p.float("step", &step),
	}
	req.Lat, req.Lon = p.latLon()
	req.Drivers = p.drivers()
	format := p.q.Get("format")
	if format != "" && format != "json" && format != "csv" && format != "parquet" {
		p.fail("unknown format %q", format)
	}
	if p.err != nil {
		writeError(w, p.err)
		return
	}
	req.Table = s.spaceWeather()

	points, err := export.Profile(s.evaluator, req)
	if err != nil {
		writeError(w, err)
		return
	}

	switch format {
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		if err := export.WriteCSV(w, points, s.evaluator.Config()); err != nil {
			log.Printf("api: write csv: %v", err)
		}
	case "parquet":
		var buf bytes.Buffer
		if err := export.WriteParquet(&buf, points); err != nil {
			writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.apache.parquet")
		w.Header().Set("Content-Disposition", `attachment; filename="profile.parquet"`)
		w.Write(buf.Bytes())
	default:
		writeJSON(w, http.StatusOK, ProfileResponse{
			Time: req.Time, Latitude: req.Lat, Longitude: req.Lon,
			Units:  s.units(),
			Points: points,
		})
	}
}

type PressureResponse struct {
	PressureMb float64          `json:"pressure_mb"`
	AltitudeKm float64          `json:"alt_km"`
	Units      Units            `json:"units"`
	Indices    Indices          `json:"indices"`
	Parameters atmos.Parameters `json:"parameters"`
}

func (s *Server) handlePressure(w http.ResponseWriter, r *http.Request) {
	p := &params{q: r.URL.Query()}
	at := p.time("time")
	lat, lon := p.latLon()
	press := p.float("pressure", nil)
	d := p.drivers()
	if p.err != nil {
		writeError(w, p.err)
		return
	}

	var idx Indices
	if d != nil {
		idx = Indices{F107Avg: d.F107Avg, F107Daily: d.F107Daily, Ap: d.Ap}
	} else {
		avg, daily, ap, err := atmos.Indices(s.spaceWeather(), at)
		if err != nil {
			writeError(w, err)
			return
		}
		idx = Indices{F107Avg: avg, F107Daily: daily, Ap: ap[0]}
	}

	pos := atmos.Geodetic{Time: at, Lat: lat, Lon: lon}
	alt, out, err := s.evaluator.Pressure(pos, idx.F107Avg, idx.F107Daily, idx.Ap, press)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, PressureResponse{
		PressureMb: press,
		AltitudeKm: alt,
		Units:      s.units(),
		Indices:    idx,
		Parameters: out,
	})
}

type RecordResponse struct {
	Date            string               `json:"date"`
	BSRN            int                  `json:"bsrn"`
	ND              int                  `json:"nd"`
	Kp              [8]int               `json:"kp"`
	KpSum           int                  `json:"kp_sum"`
	Ap              [8]int               `json:"ap"`
	ApAvg           int                  `json:"ap_avg"`
	Cp              float64              `json:"cp"`
	C9              int                  `json:"c9"`
	ISN             int                  `json:"isn"`
	F107Obs         float64              `json:"f107_obs"`
	F107Adj         float64              `json:"f107_adj"`
	F107Type        string               `json:"f107_type"`
	F107ObsCenter81 float64              `json:"f107_obs_center81"`
	F107ObsLast81   float64              `json:"f107_obs_last81"`
	F107AdjCenter81 float64              `json:"f107_adj_center81"`
	F107AdjLast81   float64              `json:"f107_adj_last81"`
	MagneticIndex   *atmos.MagneticIndex `json:"magnetic_index,omitempty"`
}

// handleSpaceWeather returns the stored day containing time, plus the Ap
// history the model would use at that instant when it is available.
func (s *Server) handleSpaceWeather(w http.ResponseWriter, r *http.Request) {
	p := &params{q: r.URL.Query()}
	at := p.time("time")
	if p.err != nil {
		writeError(w, p.err)
		return
	}

	table := s.spaceWeather()
	if table == nil {
		writeError(w, fmt.Errorf("%w: no space weather loaded", spaceweather.ErrDateOutOfRange))
		return
	}
	rec, err := table.Record(at)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := RecordResponse{
		Date: rec.Date.Format("2006-01-02"),
		BSRN: rec.BSRN, ND: rec.ND,
		Kp: rec.Kp, KpSum: rec.KpSum,
		Ap: rec.Ap, ApAvg: rec.ApAvg,
		Cp: rec.Cp, C9: rec.C9, ISN: rec.ISN,
		F107Obs:         rec.F107Obs,
		F107Adj:         rec.F107Adj,
		F107Type:        rec.F107Type.String(),
		F107ObsCenter81: rec.F107ObsCenter81,
		F107ObsLast81:   rec.F107ObsLast81,
		F107AdjCenter81: rec.F107AdjCenter81,
		F107AdjLast81:   rec.F107AdjLast81,
	}
	if mi, err := table.MagneticIndex(at); err == nil {
		ap := atmos.MagneticIndex(mi)
		resp.MagneticIndex = &ap
	}
	writeJSON(w, http.StatusOK, resp)
}
