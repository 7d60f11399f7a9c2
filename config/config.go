package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/bcdannyboy/bsmparity/charts"
	"github.com/bcdannyboy/bsmparity/models"
)

const (
	DefaultAddr     = ":8080"
	DefaultLogLevel = "info"
)

type OptionYAML struct {
	models.Params `yaml:",inline"`
	WithParity    bool `yaml:"with_parity"`
}

type ChartYAML struct {
	XAxis    string  `yaml:"x_axis"`
	YAxis    string  `yaml:"y_axis"`
	XStart   float64 `yaml:"x_start"`
	XEnd     float64 `yaml:"x_end"`
	XSamples int     `yaml:"x_samples"`
	SaveTo   string  `yaml:"save_to"`
	CSVTo    string  `yaml:"csv_to,omitempty"`
}

// RunConfig describes a set of options and, optionally, the chart to draw
// from them.
type RunConfig struct {
	Options []OptionYAML `yaml:"options"`
	Chart   *ChartYAML   `yaml:"chart,omitempty"`
}

// Env holds the settings read from the process environment.
type Env struct {
	LogLevel      string
	Addr          string
	SlackAppToken string
	SlackBotToken string
}

// Default mirrors the reference run: three at-the-money calls of decreasing
// maturity and their parity puts, priced across spot 0..20.
func Default() RunConfig {
	var opts []OptionYAML
	for _, maturity := range []float64{0.5, 0.25, 0.05} {
		opts = append(opts, OptionYAML{
			Params: models.Params{
				Type:           models.Call,
				Strike:         10.00,
				Dividend:       0.05,
				Volatility:     0.5,
				StockPrice:     10.00,
				InterestRate:   0.02,
				TimeToMaturity: maturity,
			},
			WithParity: true,
		})
	}
	return RunConfig{
		Options: opts,
		Chart: &ChartYAML{
			XAxis:    string(models.FieldStockPrice),
			YAxis:    string(models.FieldPrice),
			XStart:   0,
			XEnd:     20,
			XSamples: 500,
			SaveTo:   "images/test.png",
		},
	}
}

func Parse(data []byte) (RunConfig, error) {
	var cfg RunConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunConfig{}, fmt.Errorf("failed to unmarshal run config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return RunConfig{}, err
	}
	return cfg, nil
}

func Load(path string) (RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunConfig{}, fmt.Errorf("failed to read run config: %w", err)
	}
	return Parse(data)
}

func (c RunConfig) Validate() error {
	if len(c.Options) == 0 {
		return fmt.Errorf("run config: no options defined")
	}
	for i, o := range c.Options {
		if err := o.Params.Validate(); err != nil {
			return fmt.Errorf("run config: option %d: %w", i+1, err)
		}
	}
	if c.Chart != nil {
		if _, err := models.ParseInputField(c.Chart.XAxis); err != nil {
			return fmt.Errorf("run config: chart: %w", err)
		}
		if _, err := models.ParseOutputField(c.Chart.YAxis); err != nil {
			return fmt.Errorf("run config: chart: %w", err)
		}
		if c.Chart.XSamples < 1 {
			return fmt.Errorf("run config: chart: %w", charts.ErrNoSamples)
		}
		if c.Chart.SaveTo == "" {
			return fmt.Errorf("run config: chart: save_to is required")
		}
	}
	return nil
}

// Build constructs the configured options, each followed by its parity
// mirror when requested.
func (c RunConfig) Build() ([]*models.Option, error) {
	var out []*models.Option
	for i, o := range c.Options {
		option, err := models.NewOption(o.Params)
		if err != nil {
			return nil, fmt.Errorf("option %d: %w", i+1, err)
		}
		out = append(out, option)
		if o.WithParity {
			out = append(out, option.Parity())
		}
	}
	return out, nil
}

func (c RunConfig) SweepRequest(options []*models.Option) charts.SweepRequest {
	return charts.SweepRequest{
		Options: options,
		XAxis:   c.Chart.XAxis,
		YAxis:   c.Chart.YAxis,
		Start:   c.Chart.XStart,
		End:     c.Chart.XEnd,
		Samples: c.Chart.XSamples,
	}
}

// LoadEnv reads envFile if it exists and then the process environment.
func LoadEnv(envFile string) Env {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			log.Debugf("no env file loaded from %s: %v", envFile, err)
		}
	}
	return Env{
		LogLevel:      getenv("LOG_LEVEL", DefaultLogLevel),
		Addr:          getenv("BSM_ADDR", DefaultAddr),
		SlackAppToken: os.Getenv("SLACK_APP_TOKEN"),
		SlackBotToken: os.Getenv("SLACK_BOT_TOKEN"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// SetupLogging configures the global logrus logger.
func SetupLogging(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	return nil
}
