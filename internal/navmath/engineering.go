package navmath

import (
	"fmt"
	"math"
)

// DefaultBaseSpeed is the reference speed (knots) for base consumption when
// none is given.
const DefaultBaseSpeed = 15.0

// FeetPerNauticalMile converts propeller advance in feet to nautical miles.
const FeetPerNauticalMile = 6080.0

// FuelInput describes a cube-law fuel estimate.
type FuelInput struct {
	Speed           float64 // intended speed, knots
	Distance        float64 // voyage distance, nm
	BaseConsumption float64 // consumption at BaseSpeed, tons/day
	BaseSpeed       float64 // knots; 0 selects DefaultBaseSpeed
}

// EstimateFuel applies the cube law: daily consumption scales with
// (speed/base_speed)^3, and the voyage lasts distance/speed/24 days.
// Value is the total fuel for the voyage.
func EstimateFuel(in FuelInput) (Result, error) {
	if err := checkFinite(
		finiteField{"speed", in.Speed},
		finiteField{"distance", in.Distance},
		finiteField{"base_consumption", in.BaseConsumption},
		finiteField{"base_speed", in.BaseSpeed},
	); err != nil {
		return Result{}, err
	}
	if in.Speed <= 0 {
		return Result{}, newInvalidInputError("speed", in.Speed)
	}
	base := in.BaseSpeed
	if base == 0 {
		base = DefaultBaseSpeed
	}
	if base < 0 {
		return Result{}, newInvalidInputError("base_speed", base)
	}

	ratio := in.Speed / base
	daily := in.BaseConsumption * ratio * ratio * ratio
	days := in.Distance / in.Speed / 24
	total := daily * days
	if math.IsInf(daily, 0) || math.IsInf(days, 0) {
		return Result{}, newOverflowError(KindFuel)
	}

	res, err := finiteResult(newResult(KindFuel, total, UnitTons))
	if err != nil {
		return Result{}, err
	}
	res.setAux(AuxDailyConsumption, fmt.Sprintf("%.2f tons/day", daily))
	res.setAux(AuxVoyageDuration, fmt.Sprintf("%.2f days", days))
	return res, nil
}

// EngineSpeed is the theoretical advance speed in knots of a propeller with
// the given pitch (feet) turning at rpm.
func EngineSpeed(pitch, rpm float64) float64 {
	return pitch * rpm * 60 / FeetPerNauticalMile
}

// Slip returns propeller slip as a percentage of engine speed.
//
// When the engine speed is exactly zero the slip is reported as 0 with
// Degenerate set. That is a sentinel, not a measurement.
func Slip(pitch, rpm, actualSpeed float64) Result {
	engine := EngineSpeed(pitch, rpm)

	var slip float64
	degenerate := engine == 0
	if !degenerate {
		slip = (engine - actualSpeed) / engine * 100
	}

	res := newResult(KindSlip, slip, UnitPercent)
	res.Degenerate = degenerate
	res.setAux(AuxEngineSpeed, formatQuantity(engine, UnitKnots))
	res.setAux(AuxObservedSpeed, formatQuantity(actualSpeed, UnitKnots))
	return res
}

// SFOC returns specific fuel oil consumption in g/kWh from a fuel flow in
// kg/h and engine power in kW. Power <= 0 yields the sentinel 0 with
// Degenerate set.
func SFOC(flowKgPerHour, powerKW float64) Result {
	var sfoc float64
	degenerate := powerKW <= 0
	if !degenerate {
		sfoc = flowKgPerHour * 1000 / powerKW
	}

	res := newResult(KindSFOC, sfoc, UnitGramsPerKWh)
	res.Degenerate = degenerate
	res.setAux(AuxFuelFlow, fmt.Sprintf("%.2f kg/h", flowKgPerHour))
	res.setAux(AuxEnginePower, fmt.Sprintf("%.2f kW", powerKW))
	return res
}
