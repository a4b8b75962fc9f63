package navmath

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// DepartureLayout is the only accepted departure format (YYYY-MM-DD HH:MM).
const DepartureLayout = "2006-01-02 15:04"

// ParseDeparture parses a departure timestamp in DepartureLayout.
//
// The result is a naive wall-clock time labelled UTC, so adding steaming
// hours never shifts across a DST boundary.
func ParseDeparture(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DepartureLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, newInvalidFormatError(s)
	}
	return t, nil
}

// WallClock strips the zone from t, keeping its wall-clock reading.
// Use it to turn time.Now() into a departure comparable with ParseDeparture.
func WallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// maxArrivalYear is the last year DepartureLayout can render.
const maxArrivalYear = 9999

// ProjectETA adds distance/speed hours to departure.
// Value is the steaming time in hours.
//
// Whole days are added on the calendar and only the remainder as a
// Duration, so passages longer than time.Duration can hold still land on
// the right date. An arrival after year 9999 is an INVALID_INPUT error.
func ProjectETA(distance, speed float64, departure time.Time) (Result, error) {
	if err := checkFinite(finiteField{"distance", distance}, finiteField{"speed", speed}); err != nil {
		return Result{}, err
	}
	if speed <= 0 {
		return Result{}, newInvalidInputError("speed", speed)
	}

	hours := distance / speed
	arrival, ok := addHours(departure, hours)
	if !ok {
		return Result{}, newArrivalRangeError(hours)
	}

	res := newResult(KindETA, hours, UnitHours)
	res.Display = arrival.Format(DepartureLayout)
	res.setAux(AuxDeparture, departure.Format(DepartureLayout))
	res.setAux(AuxSteamingTime, fmt.Sprintf("%.2f hours", hours))
	res.setAux(AuxArrival, arrival.Format(DepartureLayout))
	return res, nil
}

// maxSpanDays bounds the day count before it is converted to int. Any span
// this long from a four-digit year is past maxArrivalYear.
const maxSpanDays = 366 * (maxArrivalYear + 1)

// addHours adds a span of hours to t at microsecond resolution. It reports
// false when the result falls outside years 1 to maxArrivalYear.
func addHours(t time.Time, hours float64) (time.Time, bool) {
	days := math.Floor(hours / 24)
	if math.IsInf(hours, 0) || math.Abs(days) > maxSpanDays {
		return time.Time{}, false
	}
	rem := hours - days*24
	out := t.AddDate(0, 0, int(days)).Add(time.Duration(math.Round(rem*3600*1e6)) * time.Microsecond)
	if out.Year() < 1 || out.Year() > maxArrivalYear {
		return time.Time{}, false
	}
	return out, true
}
