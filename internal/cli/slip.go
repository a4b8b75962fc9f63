package cli

import (
	"github.com/spf13/cobra"
)

// SlipOptions holds flags for the slip command.
type SlipOptions struct {
	*RootOptions
	Pitch float64
	RPM   float64
	Speed float64
}

// NewSlipCommand creates the slip command.
func NewSlipCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SlipOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "slip",
		Short: "Propeller slip calculation",
		Long: `Compare the propeller's theoretical advance (pitch x RPM) with the
observed speed over ground.

A zero pitch or RPM gives an engine speed of 0; slip is then reported as 0
and flagged as a sentinel.

Example:
  navcalc slip -p 18 -r 100 -s 15`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSlip(opts, cmd)
		},
	}

	cmd.Flags().Float64VarP(&opts.Pitch, "pitch", "p", 0, "propeller pitch (ft)")
	cmd.Flags().Float64VarP(&opts.RPM, "rpm", "r", 0, "engine RPM")
	cmd.Flags().Float64VarP(&opts.Speed, "speed", "s", 0, "actual speed over ground (knots)")
	_ = cmd.MarkFlagRequired("pitch")
	_ = cmd.MarkFlagRequired("rpm")
	_ = cmd.MarkFlagRequired("speed")

	return cmd
}

func runSlip(opts *SlipOptions, cmd *cobra.Command) error {
	calc := slipCalc{Pitch: opts.Pitch, RPM: opts.RPM, Speed: opts.Speed}
	return execute(opts.RootOptions, opts.formatter(cmd), calc)
}
