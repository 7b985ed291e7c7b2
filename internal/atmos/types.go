// Package atmos evaluates NRLMSISE-00 at a position and time, taking solar
// and geomagnetic indices either explicitly or from a space-weather table.
package atmos

import (
	"fmt"
	"strings"
	"time"

	"github.com/lox/geoatmos/internal/msis"
)

// Position is a point in space and time. Altitude is in metres above the
// ellipsoid; latitude and longitude are geodetic degrees.
type Position interface {
	Altitude() float64
	Latitude() float64
	Longitude() float64
	Epoch() time.Time
}

// Geodetic is the concrete Position.
type Geodetic struct {
	Time time.Time
	Lat  float64
	Lon  float64
	Alt  float64 // m

	// LST overrides the local solar time (hours) derived from longitude.
	LST *float64
}

func (g Geodetic) Altitude() float64  { return g.Alt }
func (g Geodetic) Latitude() float64  { return g.Lat }
func (g Geodetic) Longitude() float64 { return g.Lon }
func (g Geodetic) Epoch() time.Time   { return g.Time }

// LocalSolarTime returns the override, if any.
func (g Geodetic) LocalSolarTime() (float64, bool) {
	if g.LST == nil {
		return 0, false
	}
	return *g.LST, true
}

// MagneticIndex is the storm-time Ap history: daily Ap, 3-hour Ap now and
// at -3h, -6h, -9h, then the means over -12..-33h and -36..-57h.
type MagneticIndex [7]float64

// DefaultMagneticIndex is the quiet-time history used when no data is
// available.
func DefaultMagneticIndex() MagneticIndex {
	return MagneticIndex{4, 4, 4, 4, 4, 4, 4}
}

// DensityUnit selects the unit system of densities.
type DensityUnit int

const (
	GramPerCm3 DensityUnit = iota
	KgPerM3
	CGS
	SI
)

func (u DensityUnit) si() bool {
	return u == KgPerM3 || u == SI
}

func (u DensityUnit) String() string {
	if u.si() {
		return "kg/m^3"
	}
	return "g/cm^3"
}

// ParseDensityUnit accepts cgs, si, g/cm3 and kg/m3 in any case.
func ParseDensityUnit(s string) (DensityUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "cgs", "g/cm3", "g/cm^3":
		return CGS, nil
	case "si", "kg/m3", "kg/m^3":
		return SI, nil
	}
	return CGS, fmt.Errorf("unknown density unit %q", s)
}

// TemperatureUnit selects how temperatures are reported.
type TemperatureUnit int

const (
	Kelvin TemperatureUnit = iota
	Celsius
)

func (u TemperatureUnit) String() string {
	if u == Celsius {
		return "deg C"
	}
	return "K"
}

// ParseTemperatureUnit accepts k, kelvin, c and celsius in any case.
func ParseTemperatureUnit(s string) (TemperatureUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "k", "kelvin":
		return Kelvin, nil
	case "c", "celsius":
		return Celsius, nil
	}
	return Kelvin, fmt.Errorf("unknown temperature unit %q", s)
}

const kelvinOffset = 273.15

func (u TemperatureUnit) convert(k float64) float64 {
	if u == Celsius {
		return k - kelvinOffset
	}
	return k
}

// ModelConfig is the switch set plus output units. The unit switch of
// Switches is ignored in favour of DensityUnit.
type ModelConfig struct {
	Switches        msis.Switches
	DensityUnit     DensityUnit
	TemperatureUnit TemperatureUnit
}

// DefaultModelConfig has every term enabled, CGS densities and Kelvin.
func DefaultModelConfig() ModelConfig {
	return ModelConfig{Switches: msis.DefaultSwitches()}
}

// Density holds number densities (cm^-3 or m^-3) and the total mass
// density (g/cm^3 or kg/m^3).
type Density struct {
	AtomicHydrogen    float64 `json:"h"`
	AtomicHelium      float64 `json:"he"`
	AtomicNitrogen    float64 `json:"n"`
	AtomicOxygen      float64 `json:"o"`
	AtomicArgon       float64 `json:"ar"`
	MolecularNitrogen float64 `json:"n2"`
	MolecularOxygen   float64 `json:"o2"`
	AnomalousOxygen   float64 `json:"anomalous_o"`
	Total             float64 `json:"total"`
}

// Temperature holds the exospheric and local temperatures.
type Temperature struct {
	Exosphere float64 `json:"exosphere"`
	Altitude  float64 `json:"altitude"`
}

// Parameters is the result of one evaluation.
type Parameters struct {
	Density     Density     `json:"density"`
	Temperature Temperature `json:"temperature"`
}

func newParameters(out msis.Output, unit TemperatureUnit) Parameters {
	d := out.D
	return Parameters{
		Density: Density{
			AtomicHydrogen:    d[msis.DensH],
			AtomicHelium:      d[msis.DensHe],
			AtomicNitrogen:    d[msis.DensN],
			AtomicOxygen:      d[msis.DensO],
			AtomicArgon:       d[msis.DensAr],
			MolecularNitrogen: d[msis.DensN2],
			MolecularOxygen:   d[msis.DensO2],
			AnomalousOxygen:   d[msis.DensAnomalousO],
			Total:             d[msis.DensTotal],
		},
		Temperature: Temperature{
			Exosphere: unit.convert(out.T[msis.TempExo]),
			Altitude:  unit.convert(out.T[msis.TempAlt]),
		},
	}
}
