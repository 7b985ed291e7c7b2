package msis

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration reports a switch or coefficient set the model
	// cannot run with.
	ErrInvalidConfiguration = errors.New("msis: invalid configuration")
	// ErrMath reports a numerical failure inside the model, such as a
	// degenerate spline or a non-positive density passed to a logarithm.
	ErrMath = errors.New("msis: math error")
)

// Switch enables or disables one term group of the model.
type Switch int

const (
	Off Switch = iota
	On
	// StormTime selects the 7-element Ap history instead of daily Ap. It is
	// only valid at SwitchDailyAp.
	StormTime
)

func (s Switch) String() string {
	switch s {
	case Off:
		return "off"
	case On:
		return "on"
	case StormTime:
		return "storm-time"
	}
	return fmt.Sprintf("Switch(%d)", int(s))
}

// Switch indices.
const (
	SwitchUnits = iota
	SwitchF107
	SwitchTimeIndependent
	SwitchSymAnnual
	SwitchSymSemiannual
	SwitchAsymAnnual
	SwitchAsymSemiannual
	SwitchDiurnal
	SwitchSemidiurnal
	SwitchDailyAp
	SwitchAllUTLong
	SwitchLongitudinal
	SwitchUTMixed
	SwitchMixedApUTLong
	SwitchTerdiurnal
	SwitchDepartures
	SwitchExoTemp
	SwitchTemp120
	SwitchLowerThermoTemp
	SwitchGrad120
	SwitchUpperStratoTemp
	SwitchDensity120
	SwitchLowerMesoTemp
	SwitchTurbopause

	NumSwitches
)

// Switches holds one Switch per term group. SwitchUnits On selects SI
// output (m^-3, kg/m^3); Off selects CGS (cm^-3, g/cm^3).
type Switches [NumSwitches]Switch

// DefaultSwitches returns every switch On with CGS output.
func DefaultSwitches() Switches {
	var s Switches
	for i := range s {
		s[i] = On
	}
	s[SwitchUnits] = Off
	return s
}

// Validate reports ErrInvalidConfiguration for unknown values and for
// StormTime anywhere but SwitchDailyAp.
func (s Switches) Validate() error {
	for i, v := range s {
		switch v {
		case Off, On:
		case StormTime:
			if i != SwitchDailyAp {
				return fmt.Errorf("%w: storm-time only valid for switch %d, got it at %d", ErrInvalidConfiguration, SwitchDailyAp, i)
			}
		default:
			return fmt.Errorf("%w: switch %d has value %d", ErrInvalidConfiguration, i, int(v))
		}
	}
	return nil
}

// SI reports whether output is in SI units.
func (s Switches) SI() bool {
	return s[SwitchUnits] == On
}

// weights derives the main and cross-term weights. The daily Ap switch
// maps StormTime to -1 in both; every other switch is 1 when On.
func (s Switches) weights() (sw, swc [NumSwitches]float64) {
	for i, v := range s {
		if i == SwitchDailyAp {
			w := 0.0
			switch v {
			case On:
				w = 1
			case StormTime:
				w = -1
			}
			sw[i], swc[i] = w, w
			continue
		}
		if v == On {
			sw[i], swc[i] = 1, 1
		}
	}
	return sw, swc
}
