package bsvizslack

import (
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"
)

type HelpHandler struct{}

func NewHelpHandler() *HelpHandler {
	return &HelpHandler{}
}

func (h *HelpHandler) HandleCommand(evt *socketmode.Event, client *socketmode.Client) error {
	data := evt.Data.(slack.SlashCommand)
	helpText := "Available commands:\n" +
		"/bshelp - Show this help message\n" +
		"/bsprice <spot> <strike> <maturity> <rate> <vol> - Price a European call and put\n" +
		"/bssweep <spot> <strike> <maturity> <rate> <vol> <minSpot> <maxSpot> <minVol> <maxVol> - Sweep prices over spot and volatility ranges"

	_, _, err := client.PostMessage(data.ChannelID,
		slack.MsgOptionText(helpText, false))
	return err
}
