package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ETAOptions holds flags for the eta command.
type ETAOptions struct {
	*RootOptions
	Distance  float64
	Speed     float64
	Departure string
}

// NewETACommand creates the eta command.
func NewETACommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ETAOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "eta",
		Short: "Calculate estimated time of arrival",
		Long: `Project arrival time from distance, speed and departure.

Departure must be "YYYY-MM-DD HH:MM" and defaults to now. --dep and -dep
are accepted as aliases of --departure.

Example:
  navcalc eta -d 100 -s 10 --departure "2024-01-01 00:00"`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runETA(opts, cmd)
		},
	}

	cmd.Flags().Float64VarP(&opts.Distance, "distance", "d", 0, "distance in nm")
	cmd.Flags().Float64VarP(&opts.Speed, "speed", "s", 0, "speed in knots")
	cmd.Flags().StringVar(&opts.Departure, "departure", "", "departure (YYYY-MM-DD HH:MM), defaults to now")
	cmd.SetGlobalNormalizationFunc(departureAlias)
	_ = cmd.MarkFlagRequired("distance")
	_ = cmd.MarkFlagRequired("speed")

	return cmd
}

func runETA(opts *ETAOptions, cmd *cobra.Command) error {
	calc := etaCalc{
		Distance:  opts.Distance,
		Speed:     opts.Speed,
		Departure: opts.Departure,
		now:       opts.now(),
	}
	return execute(opts.RootOptions, opts.formatter(cmd), calc)
}

func departureAlias(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "dep" {
		name = "departure"
	}
	return pflag.NormalizedName(name)
}

// NormalizeArgs rewrites the single-dash -dep spelling, which pflag would
// otherwise read as the shorthands -d -e -p, to --departure.
func NormalizeArgs(args []string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		switch {
		case arg == "-dep":
			arg = "--departure"
		case strings.HasPrefix(arg, "-dep="):
			arg = "--departure=" + strings.TrimPrefix(arg, "-dep=")
		}
		out[i] = arg
	}
	return out
}
