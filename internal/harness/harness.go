package harness

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/navcalc/internal/navmath"
	"github.com/roach88/navcalc/internal/testutil"
)

// Harness evaluates scenario cases against navmath.
type Harness struct {
	clock  *testutil.FixedClock
	logger *slog.Logger
}

// New creates a harness reading clock for default ETA departures.
// A nil logger discards output.
func New(clock *testutil.FixedClock, logger *slog.Logger) *Harness {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Harness{clock: clock, logger: logger}
}

// Run executes a scenario with a clock set from scenario.Now.
//
// Case failures are reported in the Result; the returned error is reserved
// for scenarios that cannot run at all.
func Run(scenario *Scenario) (*Result, error) {
	return RunWithLogger(scenario, nil)
}

// RunWithLogger is Run with per-case debug records written to logger.
func RunWithLogger(scenario *Scenario, logger *slog.Logger) (*Result, error) {
	now := scenario.Now
	if now == "" {
		now = DefaultNow
	}
	start, err := navmath.ParseDeparture(now)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: now: %w", scenario.Name, err)
	}
	return New(testutil.NewFixedClock(start), logger).Run(scenario), nil
}

// Run evaluates every case in order.
func (h *Harness) Run(scenario *Scenario) *Result {
	result := NewResult()
	for _, c := range scenario.Cases {
		o := h.runCase(c)
		h.logger.Debug("case evaluated",
			"scenario", scenario.Name,
			"case", c.Name,
			"op", c.Op,
			"pass", o.Passed(),
		)
		result.AddOutcome(o)
	}
	return result
}

func (h *Harness) runCase(c Case) Outcome {
	o := Outcome{Case: c.Name, Op: c.Op}

	res, err := h.evaluate(c.Op, args(c.Args))
	if err != nil {
		code := navmath.CodeOf(err)
		if code == "" {
			// Argument problems are scenario bugs, not calculation errors.
			o.Failures = []string{err.Error()}
			return o
		}
		o.ErrorCode = string(code)
	} else {
		o.Result = res
	}

	o.Failures = checkExpect(c.Expect, o)
	return o
}

func (h *Harness) evaluate(op string, a args) (navmath.Result, error) {
	switch op {
	case OpSTD:
		in := navmath.STDInput{}
		var err error
		if in.Speed, err = a.optional("speed"); err != nil {
			return navmath.Result{}, err
		}
		if in.Time, err = a.optional("time"); err != nil {
			return navmath.Result{}, err
		}
		if in.Distance, err = a.optional("distance"); err != nil {
			return navmath.Result{}, err
		}
		return navmath.ResolveSTD(in)

	case OpDist:
		v, err := a.required("lat1", "lon1", "lat2", "lon2")
		if err != nil {
			return navmath.Result{}, err
		}
		return navmath.Haversine(
			navmath.Position{Lat: v[0], Lon: v[1]},
			navmath.Position{Lat: v[2], Lon: v[3]},
		), nil

	case OpFuel:
		v, err := a.required("speed", "distance", "cons")
		if err != nil {
			return navmath.Result{}, err
		}
		base, err := a.optional("base_speed")
		if err != nil {
			return navmath.Result{}, err
		}
		in := navmath.FuelInput{Speed: v[0], Distance: v[1], BaseConsumption: v[2]}
		if base != nil {
			in.BaseSpeed = *base
		}
		return navmath.EstimateFuel(in)

	case OpSlip:
		v, err := a.required("pitch", "rpm", "speed")
		if err != nil {
			return navmath.Result{}, err
		}
		return navmath.Slip(v[0], v[1], v[2]), nil

	case OpSFOC:
		v, err := a.required("flow", "power")
		if err != nil {
			return navmath.Result{}, err
		}
		return navmath.SFOC(v[0], v[1]), nil

	case OpETA:
		v, err := a.required("distance", "speed")
		if err != nil {
			return navmath.Result{}, err
		}
		dep := navmath.WallClock(h.clock.Now())
		if s, ok := a["departure"]; ok {
			text, ok := s.(string)
			if !ok {
				return navmath.Result{}, fmt.Errorf("departure: expected string, got %T", s)
			}
			if dep, err = navmath.ParseDeparture(text); err != nil {
				return navmath.Result{}, err
			}
		}
		return navmath.ProjectETA(v[0], v[1], dep)
	}

	return navmath.Result{}, fmt.Errorf("unknown op %q", op)
}

// args is a case's argument map as decoded from YAML.
type args map[string]interface{}

func (a args) optional(key string) (*float64, error) {
	raw, ok := a[key]
	if !ok {
		return nil, nil
	}
	switch v := raw.(type) {
	case int:
		f := float64(v)
		return &f, nil
	case float64:
		return &v, nil
	}
	return nil, fmt.Errorf("%s: expected number, got %T", key, raw)
}

func (a args) required(keys ...string) ([]float64, error) {
	values := make([]float64, len(keys))
	for i, key := range keys {
		v, err := a.optional(key)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return nil, fmt.Errorf("%s: argument is required", key)
		}
		values[i] = *v
	}
	return values, nil
}
