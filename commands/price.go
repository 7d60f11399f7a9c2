package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/xhhuango/json"

	"github.com/bcdannyboy/bsmparity/config"
	"github.com/bcdannyboy/bsmparity/models"
)

type optionFlags struct {
	optionType string
	params     models.Params
	parity     bool
}

func (f *optionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.optionType, "type", "t", string(models.Call), "Option type, CALL or PUT.")
	cmd.Flags().Float64VarP(&f.params.Strike, "strike", "k", 10, "Strike price.")
	cmd.Flags().Float64VarP(&f.params.Dividend, "dividend", "q", 0.05, "Continuous dividend yield.")
	cmd.Flags().Float64VarP(&f.params.Volatility, "volatility", "v", 0.5, "Annualized volatility.")
	cmd.Flags().Float64VarP(&f.params.StockPrice, "stock-price", "s", 10, "Spot price of the underlying.")
	cmd.Flags().Float64VarP(&f.params.InterestRate, "interest-rate", "r", 0.02, "Continuous risk-free rate.")
	cmd.Flags().Float64VarP(&f.params.TimeToMaturity, "time-to-maturity", "T", 0.5, "Time to maturity in years.")
	cmd.Flags().BoolVarP(&f.parity, "parity", "p", true, "Also report the put-call parity counterpart.")
}

func (f *optionFlags) runConfig() (config.RunConfig, error) {
	optionType, err := models.ParseOptionType(f.optionType)
	if err != nil {
		return config.RunConfig{}, err
	}
	p := f.params
	p.Type = optionType
	cfg := config.RunConfig{Options: []config.OptionYAML{{Params: p, WithParity: f.parity}}}
	return cfg, cfg.Validate()
}

func newPriceCmd() *cobra.Command {
	var flags optionFlags
	var configPath string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "price",
		Short: "Print the price and Greeks of one or more options",
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg config.RunConfig
			var err error
			if configPath != "" {
				cfg, err = config.Load(configPath)
			} else {
				cfg, err = flags.runConfig()
			}
			if err != nil {
				return err
			}

			options, err := cfg.Build()
			if err != nil {
				return err
			}

			if asJSON {
				return writeGreeksJSON(cmd.OutOrStdout(), options)
			}
			writeGreeksTable(cmd.OutOrStdout(), options)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML run config; overrides the option flags.")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table.")

	return cmd
}

type greeksRow struct {
	Params models.Params `json:"params"`
	Greeks models.Greeks `json:"greeks"`
}

func writeGreeksJSON(w io.Writer, options []*models.Option) error {
	rows := make([]greeksRow, 0, len(options))
	for _, o := range options {
		rows = append(rows, greeksRow{Params: o.Params(), Greeks: o.Greeks()})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("error marshalling greeks: %w", err)
	}
	return nil
}

func writeGreeksTable(w io.Writer, options []*models.Option) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "type", "K", "q", "sigma", "S", "r", "T", "d1", "d2", "price", "delta", "gamma", "vega", "theta"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for i, o := range options {
		g := o.Greeks()
		table.Append([]string{
			strconv.Itoa(i + 1),
			string(o.Type()),
			formatFloat(o.Strike()),
			formatFloat(o.Dividend()),
			formatFloat(o.Volatility()),
			formatFloat(o.StockPrice()),
			formatFloat(o.InterestRate()),
			formatFloat(o.TimeToMaturity()),
			formatFloat(g.D1),
			formatFloat(g.D2),
			formatFloat(g.Price),
			formatFloat(g.Delta),
			formatFloat(g.Gamma),
			formatFloat(g.Vega),
			formatFloat(g.Theta),
		})
	}

	table.Render()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
