package bsmslack

import (
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"
)

type Handler struct {
	helpHandler *HelpHandler
	bsmHandler  *BSMHandler
}

func NewHandler() *Handler {
	return &Handler{
		helpHandler: NewHelpHandler(),
		bsmHandler:  NewBSMHandler(),
	}
}

func (h *Handler) Handle(evt *socketmode.Event, client *socketmode.Client) error {
	data, ok := evt.Data.(slack.SlashCommand)
	if !ok {
		return nil
	}
	if evt.Request != nil {
		client.Ack(*evt.Request)
	}

	switch data.Command {
	case "/help":
		return h.helpHandler.HandleCommand(data, client)
	case "/bsm":
		return h.bsmHandler.HandleCommand(data, client)
	}
	return nil
}
