package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/navcalc/internal/navmath"
)

const menuText = `
NavCalc Pro - maritime navigation & engineering
  1) Speed / time / distance
  2) Great circle distance
  3) Fuel estimate (cube law)
  4) Propeller slip
  5) Specific fuel oil consumption (SFOC)
  6) ETA
  q) Quit
`

// errBlank is returned by the required-number prompt for an empty answer.
var errBlank = errors.New("a value is required")

// session is the interactive read-evaluate-print loop. It blocks on input,
// runs one calculation per menu choice and loops until quit or EOF.
//
// Menu and prompts go to out, which is stderr for json and yaml so that
// stdout carries only the response envelopes.
type session struct {
	opts      *RootOptions
	in        *bufio.Scanner
	out       io.Writer
	formatter *OutputFormatter
}

func runInteractive(opts *RootOptions, cmd *cobra.Command) error {
	s := &session{
		opts:      opts,
		in:        bufio.NewScanner(cmd.InOrStdin()),
		out:       cmd.OutOrStdout(),
		formatter: opts.formatter(cmd),
	}
	if s.formatter.Format != "text" {
		s.out = cmd.ErrOrStderr()
	}
	opts.logger().Debug("interactive session started")
	return s.loop()
}

func (s *session) loop() error {
	for {
		fmt.Fprint(s.out, menuText)
		choice, err := s.ask("Select")
		if err != nil {
			return s.finish(err)
		}

		var calc calculation
		switch strings.ToLower(choice) {
		case "":
			continue
		case "q", "quit", "exit":
			s.formatter.Message("Fair winds.")
			return nil
		case "1", "std":
			calc, err = s.promptSTD()
		case "2", "dist":
			calc, err = s.promptDist()
		case "3", "fuel":
			calc, err = s.promptFuel()
		case "4", "slip":
			calc, err = s.promptSlip()
		case "5", "sfoc":
			calc, err = s.promptSFOC()
		case "6", "eta":
			calc, err = s.promptETA()
		default:
			s.formatter.Message("Unknown option %q", choice)
			continue
		}

		if errors.Is(err, io.EOF) {
			return s.finish(err)
		}
		if err != nil {
			if ferr := s.formatter.Error(ErrCodeInvalidNumber, err.Error(), nil); ferr != nil {
				return ferr
			}
			continue
		}

		// Failures are already reported; the loop carries on.
		if err := execute(s.opts, s.formatter, calc); err != nil && !IsReported(err) {
			return err
		}
	}
}

func (s *session) finish(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(s.out)
		return nil
	}
	return err
}

// ask prints a prompt and returns the NFKC-normalised, trimmed answer.
func (s *session) ask(label string) (string, error) {
	fmt.Fprintf(s.out, "%s: ", label)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(norm.NFKC.String(s.in.Text())), nil
}

// askOptional returns nil for a blank answer.
func (s *session) askOptional(label string) (*float64, error) {
	answer, err := s.ask(label)
	if err != nil {
		return nil, err
	}
	if answer == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(answer, 64)
	if err != nil {
		return nil, fmt.Errorf("%s: %q is not a number", label, answer)
	}
	return &v, nil
}

func (s *session) askFloat(label string) (float64, error) {
	v, err := s.askOptional(label)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return 0, fmt.Errorf("%s: %w", label, errBlank)
	}
	return *v, nil
}

func (s *session) askFloats(labels ...string) ([]float64, error) {
	values := make([]float64, len(labels))
	for i, label := range labels {
		v, err := s.askFloat(label)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func (s *session) promptSTD() (calculation, error) {
	fmt.Fprintln(s.out, "Enter two of the three values; leave the unknown blank.")
	var c stdCalc
	var err error
	if c.Speed, err = s.askOptional("Speed (knots)"); err != nil {
		return nil, err
	}
	if c.Time, err = s.askOptional("Time (hours)"); err != nil {
		return nil, err
	}
	if c.Distance, err = s.askOptional("Distance (nm)"); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *session) promptDist() (calculation, error) {
	v, err := s.askFloats("Latitude start", "Longitude start", "Latitude end", "Longitude end")
	if err != nil {
		return nil, err
	}
	return distCalc{Lat1: v[0], Lon1: v[1], Lat2: v[2], Lon2: v[3]}, nil
}

func (s *session) promptFuel() (calculation, error) {
	v, err := s.askFloats("Intended speed (knots)", "Distance (nm)", "Base consumption (tons/day)")
	if err != nil {
		return nil, err
	}
	base, err := s.askOptional(fmt.Sprintf("Base speed (knots) [%g]", navmath.DefaultBaseSpeed))
	if err != nil {
		return nil, err
	}
	c := fuelCalc{Speed: v[0], Distance: v[1], Consumption: v[2], BaseSpeed: navmath.DefaultBaseSpeed}
	if base != nil {
		c.BaseSpeed = *base
	}
	return c, nil
}

func (s *session) promptSlip() (calculation, error) {
	v, err := s.askFloats("Propeller pitch (ft)", "Engine RPM", "Speed over ground (knots)")
	if err != nil {
		return nil, err
	}
	return slipCalc{Pitch: v[0], RPM: v[1], Speed: v[2]}, nil
}

func (s *session) promptSFOC() (calculation, error) {
	v, err := s.askFloats("Fuel flow (kg/h)", "Engine power (kW)")
	if err != nil {
		return nil, err
	}
	return sfocCalc{Flow: v[0], Power: v[1]}, nil
}

func (s *session) promptETA() (calculation, error) {
	v, err := s.askFloats("Distance (nm)", "Speed (knots)")
	if err != nil {
		return nil, err
	}
	dep, err := s.ask("Departure (YYYY-MM-DD HH:MM) [now]")
	if err != nil {
		return nil, err
	}
	return etaCalc{Distance: v[0], Speed: v[1], Departure: dep, now: s.opts.now()}, nil
}
