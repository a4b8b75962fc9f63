package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewDistCommand creates the dist command.
//
// Flag parsing is done by hand so that southern and western coordinates
// such as -33.86 are taken as positional values rather than shorthand flags.
func NewDistCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dist <lat1> <lon1> <lat2> <lon2>",
		Short: "Great circle distance between coordinates",
		Long: `Great circle (haversine) distance in nautical miles between two points.

Coordinates are signed decimal degrees: positive north and east, negative
south and west. Ranges are not checked.

Example:
  navcalc dist 51.5074 -0.1278 40.7128 -74.0060
  navcalc dist -33.8688 151.2093 -36.8485 174.7633 --format json`,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDist(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runDist(opts *RootOptions, args []string, cmd *cobra.Command) error {
	coords, rest := splitCoordinateArgs(args)
	if err := cmd.Flags().Parse(rest); err != nil {
		return err
	}
	if help, _ := cmd.Flags().GetBool("help"); help {
		return cmd.Help()
	}
	if extra := cmd.Flags().Args(); len(extra) > 0 {
		return fmt.Errorf("invalid coordinate %q", extra[0])
	}
	if len(coords) != 4 {
		return fmt.Errorf("accepts 4 arg(s), received %d", len(coords))
	}
	// Global flags were only parsed just now.
	if err := opts.prepare(cmd); err != nil {
		return err
	}

	calc := distCalc{Lat1: coords[0], Lon1: coords[1], Lat2: coords[2], Lon2: coords[3]}
	return execute(opts, opts.formatter(cmd), calc)
}

// splitCoordinateArgs separates numeric arguments from flags and anything
// else, preserving order within each group.
func splitCoordinateArgs(args []string) ([]float64, []string) {
	var coords []float64
	var rest []string
	for _, arg := range args {
		if v, err := strconv.ParseFloat(arg, 64); err == nil {
			coords = append(coords, v)
			continue
		}
		rest = append(rest, arg)
	}
	return coords, rest
}
