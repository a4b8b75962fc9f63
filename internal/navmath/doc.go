// Package navmath implements the navigation and marine-engineering formulas
// behind navcalc.
//
// Every function is pure: it takes scalar inputs and returns a Result (or a
// *CalcError) that depends on nothing but those inputs. Nothing here logs,
// prints, reads the clock, or exits the process. The CLI and the interactive
// session are thin adapters over this package.
//
// # Units
//
//   - distance: nautical miles (nm)
//   - speed: knots
//   - time: hours
//   - fuel: whatever mass unit the base consumption is given in (tons/day by convention)
//   - propeller pitch: feet
//
// # Degenerate inputs
//
// Slip and SFOC return a sentinel 0 when their divisor is zero instead of an
// error. Such results carry Degenerate=true so callers can tell "no slip"
// apart from "slip could not be computed".
//
// Divisions by speed or time (STD, fuel, ETA) are never masked: zero or
// negative divisors return an INVALID_INPUT error.
package navmath
