// Package spaceweather holds the daily geomagnetic and solar flux indices
// published by CelesTrak and answers the time-lagged queries the
// atmosphere model needs.
package spaceweather

import (
	"errors"
	"time"
)

// ErrDateOutOfRange is returned when a query falls outside the loaded days.
var ErrDateOutOfRange = errors.New("spaceweather: date out of range")

// F107Type records where the F10.7 value of a day came from.
type F107Type int

const (
	F107Observed F107Type = iota
	F107Predicted
	F107Mixed
)

func (t F107Type) String() string {
	switch t {
	case F107Observed:
		return "OBS"
	case F107Predicted:
		return "PRD"
	case F107Mixed:
		return "PRM"
	}
	return "unknown"
}

// ParseF107Type maps the CSV token: "OBS" is observed, everything else
// predicted.
func ParseF107Type(s string) F107Type {
	if s == "OBS" {
		return F107Observed
	}
	return F107Predicted
}

// Record is one day of indices.
type Record struct {
	Date  time.Time // UTC midnight
	BSRN  int       // Bartels solar rotation number
	ND    int       // day within the Bartels rotation
	Kp    [8]int    // 3-hourly Kp, tenths
	KpSum int
	Ap    [8]int // 3-hourly Ap
	ApAvg int
	Cp    float64
	C9    int
	ISN   int // international sunspot number

	F107Obs  float64
	F107Adj  float64
	F107Type F107Type

	F107ObsCenter81 float64
	F107ObsLast81   float64
	F107AdjCenter81 float64
	F107AdjLast81   float64
}

// Day truncates t to its UTC calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
