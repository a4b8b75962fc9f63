package cli

import (
	"github.com/spf13/cobra"
)

// STDOptions holds flags for the std command.
type STDOptions struct {
	*RootOptions
	Speed    float64
	Time     float64
	Distance float64
}

// NewSTDCommand creates the std command.
func NewSTDCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &STDOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "std",
		Short: "Speed/Time/Distance calculations",
		Long: `Resolve the missing one of speed, time and distance.

Give exactly two of --speed, --time and --distance. A flag that is given
counts as provided even when its value is 0.

Example:
  navcalc std -s 12 -t 5       # distance
  navcalc std -d 250 -t 20     # speed
  navcalc std -d 100 -s 40     # time and H:MM:SS duration`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSTD(opts, cmd)
		},
	}

	cmd.Flags().Float64VarP(&opts.Speed, "speed", "s", 0, "speed in knots")
	cmd.Flags().Float64VarP(&opts.Time, "time", "t", 0, "time in hours")
	cmd.Flags().Float64VarP(&opts.Distance, "distance", "d", 0, "distance in nautical miles")

	return cmd
}

func runSTD(opts *STDOptions, cmd *cobra.Command) error {
	calc := stdCalc{
		Speed:    changedFloat(cmd, "speed", opts.Speed),
		Time:     changedFloat(cmd, "time", opts.Time),
		Distance: changedFloat(cmd, "distance", opts.Distance),
	}
	return execute(opts.RootOptions, opts.formatter(cmd), calc)
}

// changedFloat returns &v if the named flag was set on the command line.
func changedFloat(cmd *cobra.Command, name string, v float64) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &v
}
