package bsvizslack

import (
	"fmt"
	"strings"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"
	"gonum.org/v1/gonum/floats"

	"github.com/bcdannyboy/bsviz/pricing"
	"github.com/bcdannyboy/bsviz/stats"
	"github.com/bcdannyboy/bsviz/sweep"
)

const sweepUsage = "Usage: /bssweep <spot> <strike> <maturity> <rate> <vol> <minSpot> <maxSpot> <minVol> <maxVol>"

type SweepHandler struct{}

func NewSweepHandler() *SweepHandler {
	return &SweepHandler{}
}

func (h *SweepHandler) HandleCommand(evt *socketmode.Event, client *socketmode.Client) error {
	data := evt.Data.(slack.SlashCommand)
	args := strings.Fields(data.Text)

	params, spotRange, volRange, err := parseSweepRequest(args)
	if err != nil {
		_, _, postErr := client.PostMessage(data.ChannelID,
			slack.MsgOptionText(err.Error()+"\n"+sweepUsage, false))
		return postErr
	}

	// Send initial message
	_, ts, err := client.PostMessage(data.ChannelID,
		slack.MsgOptionText("Starting price sweep...", false))
	if err != nil {
		return err
	}

	go runSweepWithProgress(client, data.ChannelID, ts, params, spotRange, volRange)

	return nil
}

func runSweepWithProgress(client *socketmode.Client, channelID, timestamp string, params pricing.MarketParameters, spotRange, volRange sweep.Range) {
	progressChan := make(chan int)
	resultChan := make(chan string)

	go func() {
		result, err := sweep.Sweep(params, spotRange, volRange,
			sweep.WithProgress(func(done, total int) {
				progressChan <- done * 100 / total
			}))
		if err != nil {
			resultChan <- err.Error()
			return
		}
		resultChan <- summarize(result)
	}()

	nextQuarter := 25
	for {
		select {
		case progress := <-progressChan:
			if progress >= nextQuarter && nextQuarter < 100 {
				client.PostMessage(channelID,
					slack.MsgOptionText(fmt.Sprintf("Sweep %d%% complete...", nextQuarter), false),
					slack.MsgOptionTS(timestamp))
				nextQuarter += 25
			}
		case result := <-resultChan:
			client.PostMessage(channelID,
				slack.MsgOptionText(result, false),
				slack.MsgOptionTS(timestamp))
			return
		}
	}
}

func summarize(result *sweep.Result) string {
	calls := result.CallGrid.Flatten()
	puts := result.PutGrid.Flatten()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Sweep complete: %d volatilities x %d spot prices\n",
		len(result.VolatilityAxis), len(result.SpotAxis))
	fmt.Fprintf(&sb, "Call prices: %.4f - %.4f", floats.Min(calls), floats.Max(calls))
	if hist, err := stats.FromGrid(result.CallGrid, 10); err == nil {
		lo, hi := hist.Peak()
		fmt.Fprintf(&sb, " (most between %.4f and %.4f)", lo, hi)
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Put prices: %.4f - %.4f", floats.Min(puts), floats.Max(puts))
	if hist, err := stats.FromGrid(result.PutGrid, 10); err == nil {
		lo, hi := hist.Peak()
		fmt.Fprintf(&sb, " (most between %.4f and %.4f)", lo, hi)
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "At base volatility the call spans %.4f - %.4f across the spot axis",
		result.SpotSlice[0].Call, result.SpotSlice[len(result.SpotSlice)-1].Call)
	return sb.String()
}
