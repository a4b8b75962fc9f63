package navmath

import "math"

// STDInput carries the speed/time/distance triple. A nil field means the
// value was not provided; a pointer to 0 is a provided zero.
type STDInput struct {
	Speed    *float64 // knots
	Time     *float64 // hours
	Distance *float64 // nautical miles
}

// Float returns a pointer to v, for building STDInput literals.
func Float(v float64) *float64 {
	return &v
}

func (in STDInput) provided() int {
	n := 0
	for _, p := range []*float64{in.Speed, in.Time, in.Distance} {
		if p != nil {
			n++
		}
	}
	return n
}

func (in STDInput) present() []finiteField {
	var fields []finiteField
	for _, f := range []struct {
		name string
		v    *float64
	}{{"speed", in.Speed}, {"time", in.Time}, {"distance", in.Distance}} {
		if f.v != nil {
			fields = append(fields, finiteField{f.name, *f.v})
		}
	}
	return fields
}

// ResolveSTD computes whichever of speed, time and distance is missing.
//
// Exactly two inputs must be present. Speed and time give distance,
// distance and time give speed, distance and speed give time (with an
// H:MM:SS duration in Aux). Dividing by a time or speed that is not
// strictly positive, or passing NaN or an infinity, is an INVALID_INPUT
// error.
func ResolveSTD(in STDInput) (Result, error) {
	if n := in.provided(); n != 2 {
		return Result{}, newInsufficientInputError(n)
	}
	if err := checkFinite(in.present()...); err != nil {
		return Result{}, err
	}

	switch {
	case in.Speed != nil && in.Time != nil:
		speed, hours := *in.Speed, *in.Time
		return finiteResult(newResult(KindDistance, speed*hours, UnitNauticalMiles))

	case in.Distance != nil && in.Time != nil:
		if *in.Time <= 0 {
			return Result{}, newInvalidInputError("time", *in.Time)
		}
		distance, hours := *in.Distance, *in.Time
		return finiteResult(newResult(KindSpeed, distance/hours, UnitKnots))

	default:
		if *in.Speed <= 0 {
			return Result{}, newInvalidInputError("speed", *in.Speed)
		}
		hours := *in.Distance / *in.Speed
		if math.IsInf(hours, 0) {
			return Result{}, newOverflowError(KindTime)
		}
		res := newResult(KindTime, hours, UnitHours)
		res.setAux(AuxDuration, FormatDuration(hours))
		return res, nil
	}
}
