package navmath

import (
	"fmt"
	"math"
)

// Kind identifies which quantity a Result carries.
type Kind string

const (
	KindDistance Kind = "Distance"
	KindSpeed    Kind = "Speed"
	KindTime     Kind = "Time"
	KindFuel     Kind = "Fuel"
	KindSlip     Kind = "Slip"
	KindETA      Kind = "ETA"
	KindSFOC     Kind = "SFOC"
)

// Units reported in Result.Unit.
const (
	UnitNauticalMiles = "nm"
	UnitKnots         = "knots"
	UnitHours         = "hours"
	UnitTons          = "tons"
	UnitPercent       = "%"
	UnitGramsPerKWh   = "g/kWh"
)

// Auxiliary field keys.
const (
	AuxDuration         = "duration"
	AuxDailyConsumption = "daily_consumption"
	AuxVoyageDuration   = "voyage_duration"
	AuxEngineSpeed      = "engine_speed"
	AuxObservedSpeed    = "observed_speed"
	AuxFuelFlow         = "fuel_flow"
	AuxEnginePower      = "engine_power"
	AuxDeparture        = "departure"
	AuxArrival          = "arrival"
	AuxSteamingTime     = "steaming_time"
)

// Result is the outcome of a single calculation.
//
// Value keeps full precision; Display and Aux are rounded to two decimals.
type Result struct {
	Kind    Kind              `json:"kind" yaml:"kind"`
	Value   float64           `json:"value" yaml:"value"`
	Unit    string            `json:"unit" yaml:"unit"`
	Display string            `json:"display" yaml:"display"`
	Aux     map[string]string `json:"aux,omitempty" yaml:"aux,omitempty"`

	// Degenerate is set when a zero divisor forced the sentinel value 0.
	Degenerate bool `json:"degenerate,omitempty" yaml:"degenerate,omitempty"`
}

func newResult(kind Kind, value float64, unit string) Result {
	return Result{
		Kind:    kind,
		Value:   value,
		Unit:    unit,
		Display: formatQuantity(value, unit),
	}
}

func (r *Result) setAux(key, value string) {
	if r.Aux == nil {
		r.Aux = make(map[string]string)
	}
	r.Aux[key] = value
}

// formatQuantity renders v to two decimals followed by unit. Percentages are
// written without a separating space.
func formatQuantity(v float64, unit string) string {
	if unit == UnitPercent {
		return fmt.Sprintf("%.2f%%", v)
	}
	return fmt.Sprintf("%.2f %s", v, unit)
}

// FormatDuration renders a span of hours as H:MM:SS with total hours in the
// first field. Sub-second precision is truncated after rounding to the
// microsecond, so 1/3 hour prints as 0:20:00 rather than 0:19:59.
// The arithmetic stays in float64 so spans of any finite length print.
func FormatDuration(hours float64) string {
	signed := math.Round(hours*3600*1e6) / 1e6
	secs := math.Floor(math.Abs(signed))

	sign := ""
	if signed < 0 && secs > 0 {
		sign = "-"
	}

	h := math.Floor(secs / 3600)
	m := math.Floor(math.Mod(secs, 3600) / 60)
	s := math.Mod(secs, 60)
	return fmt.Sprintf("%s%.0f:%02.0f:%02.0f", sign, h, m, s)
}
