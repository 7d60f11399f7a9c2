package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	bsmslack "github.com/bcdannyboy/bsmparity/slack"
)

func newSlackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slack",
		Short: "Answer /bsm slash commands over Slack socket mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			if env.SlackAppToken == "" || env.SlackBotToken == "" {
				return fmt.Errorf("SLACK_APP_TOKEN and SLACK_BOT_TOKEN must be set")
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			bot := bsmslack.NewSlackBot(env.SlackAppToken, env.SlackBotToken, log.IsLevelEnabled(log.DebugLevel))
			return bot.Start(ctx)
		},
	}
}
