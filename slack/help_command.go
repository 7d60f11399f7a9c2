package bsmslack

import (
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"
)

const helpText = "Available commands:\n" +
	"/help - Show this help message\n" +
	"/bsm type=<CALL|PUT> strike=<K> dividend=<q> volatility=<sigma> stock_price=<S> interest_rate=<r> time_to_maturity=<T> - Price an option and its parity counterpart"

type HelpHandler struct{}

func NewHelpHandler() *HelpHandler {
	return &HelpHandler{}
}

func (h *HelpHandler) HandleCommand(data slack.SlashCommand, client *socketmode.Client) error {
	_, _, err := client.PostMessage(data.ChannelID,
		slack.MsgOptionText(helpText, false))
	return err
}
