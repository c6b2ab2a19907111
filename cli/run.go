package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"advdiff/calculator"
	"advdiff/model"
)

func newRunCommand(opts *options, logger *log.Logger) *cobra.Command {
	var flagged model.Parameters
	cmd := &cobra.Command{
		Use:   "run",
		Short: "March the temperature field to steady state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadParameters(cmd, opts, &flagged, logger)
			if err != nil {
				return err
			}
			c, err := calculator.NewCalculator(p, calculator.WithLogger(logger))
			if err != nil {
				return err
			}
			res, err := c.Run(context.Background())
			if err != nil {
				return err
			}

			table := c.Table()
			fmt.Fprintf(cmd.OutOrStdout(), "# steps %d, residual %.2e\n", res.Steps, res.Residual)
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "node\tx\tvolume\ttemperature")
			for i := 0; i < table.Size(); i++ {
				fmt.Fprintf(w, "%d\t%.6f\t%.6f\t%.6f\n", i, table.Coordinate[i], table.Volume[i], table.TemperatureN[i])
			}
			return w.Flush()
		},
	}
	addParameterFlags(cmd, &flagged)
	return cmd
}
