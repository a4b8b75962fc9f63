package cli

import (
	"github.com/spf13/cobra"
)

// SFOCOptions holds flags for the sfoc command.
type SFOCOptions struct {
	*RootOptions
	Flow  float64
	Power float64
}

// NewSFOCCommand creates the sfoc command.
func NewSFOCCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SFOCOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "sfoc",
		Short: "Specific fuel oil consumption",
		Long: `Specific fuel oil consumption in g/kWh from fuel flow (kg/h) and engine
power (kW). Zero or negative power reports 0, flagged as a sentinel.

Example:
  navcalc sfoc -f 1250.5 -w 7000`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSFOC(opts, cmd)
		},
	}

	cmd.Flags().Float64VarP(&opts.Flow, "flow", "f", 0, "fuel flow (kg/h)")
	cmd.Flags().Float64VarP(&opts.Power, "power", "w", 0, "engine power (kW)")
	_ = cmd.MarkFlagRequired("flow")
	_ = cmd.MarkFlagRequired("power")

	return cmd
}

func runSFOC(opts *SFOCOptions, cmd *cobra.Command) error {
	calc := sfocCalc{Flow: opts.Flow, Power: opts.Power}
	return execute(opts.RootOptions, opts.formatter(cmd), calc)
}
