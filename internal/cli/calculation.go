package cli

import (
	"errors"
	"time"

	"github.com/roach88/navcalc/internal/navmath"
)

// calculation is one validated navmath operation plus the report it renders.
// Batch commands and the interactive session both run calculations through
// execute, so validation, logging and output behave the same in both modes.
type calculation interface {
	name() string
	evaluate() (navmath.Result, error)
	report(res navmath.Result) Report
}

// execute validates calc, evaluates it and writes the report or error
// through f. Returned errors are always reported ExitErrors.
func execute(opts *RootOptions, f *OutputFormatter, calc calculation) error {
	logger := opts.logger().With("op", calc.name())

	if err := inputValidator.Validate(calc); err != nil {
		logger.Debug("input rejected", "error", err)
		if ferr := f.Error(ErrCodeValidation, err.Error(), nil); ferr != nil {
			return ferr
		}
		return reportedExitError(ExitCommandError, "invalid input", err)
	}

	res, err := calc.evaluate()
	if err != nil {
		logger.Debug("calculation failed", "error", err)
		code, message := ErrCodeGeneric, err.Error()
		var details interface{}
		var ce *navmath.CalcError
		if errors.As(err, &ce) {
			code, message = string(ce.Code), ce.Message
			if ce.Field != "" {
				details = map[string]string{"field": ce.Field}
			}
		}
		if ferr := f.Error(code, message, details); ferr != nil {
			return ferr
		}
		return reportedExitError(ExitFailure, "calculation failed", err)
	}

	if res.Degenerate {
		logger.Warn("zero divisor, sentinel result reported", "kind", res.Kind)
	}
	logger.Debug("calculation complete", "kind", res.Kind, "value", res.Value, "unit", res.Unit)

	return f.Report(calc.report(res))
}

type stdCalc struct {
	Speed    *float64 `flag:"speed" validate:"omitnil,finite,gte=0"`
	Time     *float64 `flag:"time" validate:"omitnil,finite,gte=0"`
	Distance *float64 `flag:"distance" validate:"omitnil,finite,gte=0"`
}

func (c stdCalc) name() string { return "std" }

func (c stdCalc) evaluate() (navmath.Result, error) {
	return navmath.ResolveSTD(navmath.STDInput{Speed: c.Speed, Time: c.Time, Distance: c.Distance})
}

func (c stdCalc) report(res navmath.Result) Report {
	rows := []ReportRow{{Metric: string(res.Kind), Value: res.Display}}
	if d, ok := res.Aux[navmath.AuxDuration]; ok {
		rows = append(rows, ReportRow{Metric: "Duration", Value: d})
	}
	return Report{Title: "STD Result", Rows: rows, Result: res}
}

type distCalc struct {
	Lat1 float64 `flag:"lat1" validate:"finite"`
	Lon1 float64 `flag:"lon1" validate:"finite"`
	Lat2 float64 `flag:"lat2" validate:"finite"`
	Lon2 float64 `flag:"lon2" validate:"finite"`
}

func (c distCalc) name() string { return "dist" }

func (c distCalc) evaluate() (navmath.Result, error) {
	return navmath.Haversine(
		navmath.Position{Lat: c.Lat1, Lon: c.Lon1},
		navmath.Position{Lat: c.Lat2, Lon: c.Lon2},
	), nil
}

func (c distCalc) report(res navmath.Result) Report {
	return Report{
		Title:  "Navigation",
		Rows:   []ReportRow{{Metric: "Great Circle Distance", Value: res.Display}},
		Result: res,
	}
}

type fuelCalc struct {
	Speed       float64 `flag:"speed" validate:"finite,gt=0"`
	Distance    float64 `flag:"distance" validate:"finite,gte=0"`
	Consumption float64 `flag:"cons" validate:"finite,gte=0"`
	BaseSpeed   float64 `flag:"base-speed" validate:"finite,gt=0"`
}

func (c fuelCalc) name() string { return "fuel" }

func (c fuelCalc) evaluate() (navmath.Result, error) {
	return navmath.EstimateFuel(navmath.FuelInput{
		Speed:           c.Speed,
		Distance:        c.Distance,
		BaseConsumption: c.Consumption,
		BaseSpeed:       c.BaseSpeed,
	})
}

func (c fuelCalc) report(res navmath.Result) Report {
	return Report{
		Title: "Fuel Estimation",
		Rows: []ReportRow{
			{Metric: "Total Fuel Required", Value: res.Display},
			{Metric: "Daily Consumption", Value: res.Aux[navmath.AuxDailyConsumption]},
			{Metric: "Voyage Duration", Value: res.Aux[navmath.AuxVoyageDuration]},
		},
		Result: res,
	}
}

type slipCalc struct {
	Pitch float64 `flag:"pitch" validate:"finite,gte=0"`
	RPM   float64 `flag:"rpm" validate:"finite,gte=0"`
	Speed float64 `flag:"speed" validate:"finite,gte=0"`
}

func (c slipCalc) name() string { return "slip" }

func (c slipCalc) evaluate() (navmath.Result, error) {
	return navmath.Slip(c.Pitch, c.RPM, c.Speed), nil
}

func (c slipCalc) report(res navmath.Result) Report {
	return Report{
		Title: "Propeller Slip Analysis",
		Rows: []ReportRow{
			{Metric: "Engine Speed", Value: res.Aux[navmath.AuxEngineSpeed]},
			{Metric: "Observed Speed", Value: res.Aux[navmath.AuxObservedSpeed]},
			{Metric: "Calculated Slip", Value: res.Display},
		},
		Result: res,
	}
}

type sfocCalc struct {
	Flow  float64 `flag:"flow" validate:"finite,gte=0"`
	Power float64 `flag:"power" validate:"finite"`
}

func (c sfocCalc) name() string { return "sfoc" }

func (c sfocCalc) evaluate() (navmath.Result, error) {
	return navmath.SFOC(c.Flow, c.Power), nil
}

func (c sfocCalc) report(res navmath.Result) Report {
	return Report{
		Title: "Specific Fuel Oil Consumption",
		Rows: []ReportRow{
			{Metric: "Fuel Flow", Value: res.Aux[navmath.AuxFuelFlow]},
			{Metric: "Engine Power", Value: res.Aux[navmath.AuxEnginePower]},
			{Metric: "SFOC", Value: res.Display},
		},
		Result: res,
	}
}

// etaCalc parses Departure lazily so a malformed timestamp surfaces as an
// INVALID_FORMAT calculation error before any arithmetic.
type etaCalc struct {
	Distance  float64 `flag:"distance" validate:"finite,gte=0"`
	Speed     float64 `flag:"speed" validate:"finite,gt=0"`
	Departure string  `flag:"departure"`

	now time.Time
}

func (c etaCalc) name() string { return "eta" }

func (c etaCalc) evaluate() (navmath.Result, error) {
	dep := navmath.WallClock(c.now)
	if c.Departure != "" {
		parsed, err := navmath.ParseDeparture(c.Departure)
		if err != nil {
			return navmath.Result{}, err
		}
		dep = parsed
	}
	return navmath.ProjectETA(c.Distance, c.Speed, dep)
}

func (c etaCalc) report(res navmath.Result) Report {
	return Report{
		Title: "Passage Planning (ETA)",
		Rows: []ReportRow{
			{Metric: "Departure", Value: res.Aux[navmath.AuxDeparture]},
			{Metric: "Steaming Time", Value: res.Aux[navmath.AuxSteamingTime]},
			{Metric: "ETA (Arrival)", Value: res.Aux[navmath.AuxArrival]},
		},
		Result: res,
	}
}
