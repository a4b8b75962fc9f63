package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/navcalc/internal/navmath"
)

// FuelOptions holds flags for the fuel command.
type FuelOptions struct {
	*RootOptions
	Speed       float64
	Distance    float64
	Consumption float64
	BaseSpeed   float64
}

// NewFuelCommand creates the fuel command.
func NewFuelCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FuelOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "fuel",
		Short: "Maritime fuel consumption (cube law)",
		Long: `Estimate voyage fuel with the cube law: daily consumption scales with
the cube of speed relative to the speed the base consumption was measured at.

Example:
  navcalc fuel -s 12 -d 1200 -c 30
  navcalc fuel -s 14 -d 3000 -c 40 -b 16`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFuel(opts, cmd)
		},
	}

	cmd.Flags().Float64VarP(&opts.Speed, "speed", "s", 0, "intended speed in knots")
	cmd.Flags().Float64VarP(&opts.Distance, "distance", "d", 0, "total distance in nm")
	cmd.Flags().Float64VarP(&opts.Consumption, "cons", "c", 0, "base consumption (tons/day)")
	cmd.Flags().Float64VarP(&opts.BaseSpeed, "base-speed", "b", navmath.DefaultBaseSpeed, "speed for base consumption in knots")
	_ = cmd.MarkFlagRequired("speed")
	_ = cmd.MarkFlagRequired("distance")
	_ = cmd.MarkFlagRequired("cons")

	return cmd
}

func runFuel(opts *FuelOptions, cmd *cobra.Command) error {
	calc := fuelCalc{
		Speed:       opts.Speed,
		Distance:    opts.Distance,
		Consumption: opts.Consumption,
		BaseSpeed:   opts.BaseSpeed,
	}
	return execute(opts.RootOptions, opts.formatter(cmd), calc)
}
