// Package harness runs conformance scenarios against the navmath formulas.
//
// A scenario is a YAML file listing named cases. Each case names an
// operation, its arguments and the expected outcome: either a result
// (value within tolerance, unit, display string, auxiliary fields,
// degenerate flag) or an error code.
//
// # Scenario Format
//
//	name: passage
//	description: "Speed/time/distance and ETA for a short passage"
//	now: "2024-03-10 06:00"
//	cases:
//	  - name: distance_from_speed_and_time
//	    op: std
//	    args: { speed: 12, time: 5 }
//	    expect:
//	      value: 60
//	      unit: nm
//	      display: "60.00 nm"
//	  - name: all_three_given
//	    op: std
//	    args: { speed: 10, time: 2, distance: 20 }
//	    expect:
//	      error: INSUFFICIENT_INPUT
//
// Scenarios are decoded strictly (unknown fields are rejected) and then
// checked against a CUE schema, so a misspelt op or error code fails at
// load time rather than as a confusing case failure.
//
// # Operations
//
//   - std: speed, time, distance (any two)
//   - dist: lat1, lon1, lat2, lon2
//   - fuel: speed, distance, cons, base_speed (optional)
//   - slip: pitch, rpm, speed
//   - sfoc: flow, power
//   - eta: distance, speed, departure (optional, defaults to the scenario clock)
//
// # Deterministic Testing
//
// ETA cases without a departure read a testutil.FixedClock set from the
// scenario's now field (DefaultNow when absent), so outcomes are stable for
// golden snapshot comparison.
//
// # Usage
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/passage.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := harness.Run(scenario)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Pass {
//	    for _, e := range result.Errors {
//	        log.Println(e)
//	    }
//	}
package harness
