package commands

import (
	"github.com/spf13/cobra"

	"github.com/bcdannyboy/bsmparity/config"
)

var env config.Env

func NewRootCmd() *cobra.Command {
	var envFile, logLevel string

	rootCmd := &cobra.Command{
		Use:   "bsmparity",
		Short: "Prices European options and their put-call parity counterparts",
		Long: `bsmparity prices European options with the Black-Scholes-Merton model under a
continuous dividend yield, reports the Greeks of each option and of its
put-call parity counterpart, and charts any output against any input.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			env = config.LoadEnv(envFile)
			if cmd.Flags().Changed("log-level") {
				env.LogLevel = logLevel
			}
			return config.SetupLogging(env.LogLevel)
		},
	}

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Optional .env file to load settings from.")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error). Overrides LOG_LEVEL.")

	rootCmd.AddCommand(
		newPriceCmd(),
		newPlotCmd(),
		newServeCmd(),
		newSlackCmd(),
	)

	return rootCmd
}
