package commands

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bcdannyboy/bsmparity/charts"
	"github.com/bcdannyboy/bsmparity/config"
)

type chartFlags struct {
	xAxis   string
	yAxis   string
	xStart  float64
	xEnd    float64
	samples int
	saveTo  string
	csvTo   string
}

func (f *chartFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.xAxis, "x-axis", "x", "", "Input to sweep, e.g. stock_price.")
	cmd.Flags().StringVarP(&f.yAxis, "y-axis", "y", "", "Output to chart, e.g. price.")
	cmd.Flags().Float64Var(&f.xStart, "x-start", 0, "First value of the swept input.")
	cmd.Flags().Float64Var(&f.xEnd, "x-end", 0, "Last value of the swept input. A value below x-start inverts the axis.")
	cmd.Flags().IntVarP(&f.samples, "samples", "n", 0, "Number of evenly spaced samples.")
	cmd.Flags().StringVarP(&f.saveTo, "out", "o", "", "Image path; the format follows the extension (png, svg, pdf).")
	cmd.Flags().StringVar(&f.csvTo, "csv", "", "Optional CSV path for the sampled values.")
}

// apply overrides the chart block with any flag the user set.
func (f *chartFlags) apply(cmd *cobra.Command, chart *config.ChartYAML) {
	if cmd.Flags().Changed("x-axis") {
		chart.XAxis = f.xAxis
	}
	if cmd.Flags().Changed("y-axis") {
		chart.YAxis = f.yAxis
	}
	if cmd.Flags().Changed("x-start") {
		chart.XStart = f.xStart
	}
	if cmd.Flags().Changed("x-end") {
		chart.XEnd = f.xEnd
	}
	if cmd.Flags().Changed("samples") {
		chart.XSamples = f.samples
	}
	if cmd.Flags().Changed("out") {
		chart.SaveTo = f.saveTo
	}
	if cmd.Flags().Changed("csv") {
		chart.CSVTo = f.csvTo
	}
}

func newPlotCmd() *cobra.Command {
	var flags chartFlags
	var configPath string

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Sweep one input across a range and chart one output",
		Long: `Sweeps one input of every configured option across a range, reads one output
at each sample and draws one line per option: solid for calls, dashed for puts.
Without --config the default run charts price against stock_price for three
calls of decreasing maturity and their parity puts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				if loaded.Chart == nil {
					loaded.Chart = cfg.Chart
				}
				cfg = loaded
			}
			flags.apply(cmd, cfg.Chart)
			if err := cfg.Validate(); err != nil {
				return err
			}

			options, err := cfg.Build()
			if err != nil {
				return err
			}

			log.Infof("Sweeping %s over [%g, %g] with %d samples for %d options", cfg.Chart.XAxis, cfg.Chart.XStart, cfg.Chart.XEnd, cfg.Chart.XSamples, len(options))
			result, err := charts.Plot(cfg.SweepRequest(options), cfg.Chart.SaveTo)
			if err != nil {
				return err
			}
			log.Infof("Saved chart to %s", cfg.Chart.SaveTo)

			if cfg.Chart.CSVTo != "" {
				if err := charts.WriteCSV(result, cfg.Chart.CSVTo); err != nil {
					return err
				}
				log.Infof("Exported %d samples to %s", len(result.X)*len(result.Series), cfg.Chart.CSVTo)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML run config with options and a chart block.")

	return cmd
}
