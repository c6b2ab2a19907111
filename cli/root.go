// Package cli implements the advdiff command line: `run` marches one
// simulation to steady state in the terminal, `serve` streams runs to
// websocket viewers.
package cli

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"advdiff/calculator"
	"advdiff/model"
)

type options struct {
	config  string
	verbose bool
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func NewRootCommand() *cobra.Command {
	opts := &options{}
	logger := log.New()

	root := &cobra.Command{
		Use:           "advdiff",
		Short:         "1D advection-diffusion solver on a stretched control-volume mesh",
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetOutput(cmd.ErrOrStderr())
			if opts.verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
	}
	root.PersistentFlags().StringVarP(&opts.config, "config", "c", "conf/config.ini", "parameter file (.ini or .yaml), empty for defaults")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newRunCommand(opts, logger))
	root.AddCommand(newServeCommand(opts, logger))
	return root
}

// loadParameters reads the config file and applies the flags the user set.
func loadParameters(cmd *cobra.Command, opts *options, flagged *model.Parameters, logger log.FieldLogger) (model.Parameters, error) {
	path := opts.config
	if !cmd.Flags().Changed("config") {
		if _, err := os.Stat(path); err != nil {
			logger.WithField("path", path).Debug("no config file, using defaults")
			path = ""
		}
	}
	p, err := calculator.LoadConfig(path)
	if err != nil {
		return model.Parameters{}, err
	}

	changed := cmd.Flags().Changed
	if changed("nodes") {
		p.NumberOfNodes = flagged.NumberOfNodes
	}
	if changed("stretch") {
		p.StretchFactor = flagged.StretchFactor
	}
	if changed("viscosity") {
		p.Viscosity = flagged.Viscosity
	}
	if changed("density") {
		p.Density = flagged.Density
	}
	if changed("cfl") {
		p.CFL = flagged.CFL
	}
	if changed("tolerance") {
		p.Tolerance = flagged.Tolerance
	}
	if changed("max-iterations") {
		p.MaxIterations = flagged.MaxIterations
	}
	if changed("report-every") {
		p.ReportEvery = flagged.ReportEvery
	}
	if err := p.Validate(); err != nil {
		return model.Parameters{}, fmt.Errorf("parameters: %w", err)
	}
	return p, nil
}

// addParameterFlags binds the per-run overrides into p.
func addParameterFlags(cmd *cobra.Command, p *model.Parameters) {
	d := model.DefaultParameters()
	f := cmd.Flags()
	f.IntVar(&p.NumberOfNodes, "nodes", d.NumberOfNodes, "number of nodes")
	f.Float64Var(&p.StretchFactor, "stretch", d.StretchFactor, "geometric stretch factor between intervals")
	f.Float64Var(&p.Viscosity, "viscosity", d.Viscosity, "diffusivity")
	f.Float64Var(&p.Density, "density", d.Density, "density")
	f.Float64Var(&p.CFL, "cfl", d.CFL, "CFL safety factor")
	f.Float64Var(&p.Tolerance, "tolerance", d.Tolerance, "convergence tolerance on the max residual")
	f.IntVar(&p.MaxIterations, "max-iterations", d.MaxIterations, "iteration cap, 0 for none")
	f.IntVar(&p.ReportEvery, "report-every", d.ReportEvery, "log every n-th step, 0 to silence")
}
