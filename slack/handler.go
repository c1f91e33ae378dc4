package bsvizslack

import (
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"
)

type Handler struct {
	helpHandler  *HelpHandler
	priceHandler *PriceHandler
	sweepHandler *SweepHandler
}

func NewHandler() *Handler {
	return &Handler{
		helpHandler:  NewHelpHandler(),
		priceHandler: NewPriceHandler(),
		sweepHandler: NewSweepHandler(),
	}
}

func (h *Handler) Handle(evt *socketmode.Event, client *socketmode.Client) error {
	data := evt.Data.(slack.SlashCommand)
	switch data.Command {
	case "/bshelp":
		err := h.helpHandler.HandleCommand(evt, client)
		if err != nil {
			return err
		}
	case "/bsprice":
		err := h.priceHandler.HandleCommand(evt, client)
		if err != nil {
			return err
		}
	case "/bssweep":
		err := h.sweepHandler.HandleCommand(evt, client)
		if err != nil {
			return err
		}
	}

	client.Ack(*evt.Request)
	return nil
}
