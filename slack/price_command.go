package bsvizslack

import (
	"fmt"
	"strings"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"

	"github.com/bcdannyboy/bsviz/pricing"
)

const priceUsage = "Usage: /bsprice <spot> <strike> <maturity> <rate> <vol>"

type PriceHandler struct{}

func NewPriceHandler() *PriceHandler {
	return &PriceHandler{}
}

func (h *PriceHandler) HandleCommand(evt *socketmode.Event, client *socketmode.Client) error {
	data := evt.Data.(slack.SlashCommand)
	args := strings.Fields(data.Text)

	params, err := parseMarketParameters(args)
	if err != nil {
		_, _, postErr := client.PostMessage(data.ChannelID,
			slack.MsgOptionText(err.Error()+"\n"+priceUsage, false))
		return postErr
	}

	result, err := pricing.Price(params)
	if err != nil {
		_, _, postErr := client.PostMessage(data.ChannelID,
			slack.MsgOptionText(err.Error(), false))
		return postErr
	}

	text := fmt.Sprintf("Black-Scholes price for spot=%g strike=%g maturity=%gy rate=%g vol=%g\nCall Value: %.4f\nPut Value: %.4f",
		params.Spot, params.Strike, params.Maturity, params.Rate, params.Volatility,
		result.Call, result.Put)
	_, _, err = client.PostMessage(data.ChannelID, slack.MsgOptionText(text, false))
	return err
}
