package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	mpb "github.com/vbauerster/mpb/v7"
	"github.com/vbauerster/mpb/v7/decor"
	"github.com/xhhuango/json"

	"github.com/bcdannyboy/bsviz/pricing"
	bsvizslack "github.com/bcdannyboy/bsviz/slack"
	"github.com/bcdannyboy/bsviz/stats"
	"github.com/bcdannyboy/bsviz/sweep"
)

const histogramBins = 10

type sweepOutput struct {
	Parameters    pricing.MarketParameters
	Price         pricing.OptionPrice
	Sweep         *sweep.Result
	CallHistogram stats.Histogram
	PutHistogram  stats.Histogram
}

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("no .env file loaded, falling back to environment and defaults")
	}

	appToken := os.Getenv("SLACK_APP_TOKEN")
	botToken := os.Getenv("SLACK_BOT_TOKEN")
	if appToken != "" && botToken != "" {
		bot := bsvizslack.NewSlackBot(appToken, botToken)
		log.Fatal(bot.Start())
	}

	base := pricing.MarketParameters{
		Spot:       envFloat("BSVIZ_SPOT", 100),
		Strike:     envFloat("BSVIZ_STRIKE", 100),
		Maturity:   envFloat("BSVIZ_MATURITY", 1),
		Rate:       envFloat("BSVIZ_RATE", 0.05),
		Volatility: envFloat("BSVIZ_VOL", 0.2),
	}
	spotRange := sweep.Range{
		Min:     envFloat("BSVIZ_MIN_SPOT", 80),
		Max:     envFloat("BSVIZ_MAX_SPOT", 120),
		Samples: envInt("BSVIZ_SPOT_SAMPLES", 10),
	}
	volRange := sweep.Range{
		Min:     envFloat("BSVIZ_MIN_VOL", 0.1),
		Max:     envFloat("BSVIZ_MAX_VOL", 0.3),
		Samples: envInt("BSVIZ_VOL_SAMPLES", 10),
	}

	headline, err := pricing.Price(base)
	if err != nil {
		log.Fatalf("pricing failed: %s", err)
	}
	fmt.Printf("Spot: %.2f, Strike: %.2f, Maturity: %.2fy, Rate: %.4f, Volatility: %.4f\n",
		base.Spot, base.Strike, base.Maturity, base.Rate, base.Volatility)
	fmt.Printf("Call Value: %.4f\n", headline.Call)
	fmt.Printf("Put Value: %.4f\n", headline.Put)

	if err := spotRange.Validate(); err != nil {
		log.Fatalf("bad spot range: %s", err)
	}
	if err := volRange.Validate(); err != nil {
		log.Fatalf("bad volatility range: %s", err)
	}

	// The row count is known up front: the swept samples plus the base
	// volatility when it is not already a sample.
	totalRows := len(sweep.VolatilityAxis(volRange, base.Volatility))

	p := mpb.New(mpb.WithWidth(64))
	bar := p.AddBar(int64(totalRows),
		mpb.PrependDecorators(
			decor.Name("Sweep"),
			decor.Percentage(decor.WCSyncSpace),
		),
		mpb.AppendDecorators(
			decor.CountersNoUnit("(%d / %d)", decor.WCSyncSpace),
		),
	)

	result, err := sweep.Sweep(base, spotRange, volRange,
		sweep.WithProgress(func(done, total int) {
			bar.SetCurrent(int64(done))
		}))
	if err != nil {
		log.Fatalf("sweep failed: %s", err)
	}
	p.Wait()

	callHist, err := stats.FromGrid(result.CallGrid, histogramBins)
	if err != nil {
		log.Fatalf("call histogram failed: %s", err)
	}
	putHist, err := stats.FromGrid(result.PutGrid, histogramBins)
	if err != nil {
		log.Fatalf("put histogram failed: %s", err)
	}

	out, err := json.Marshal(sweepOutput{
		Parameters:    base,
		Price:         headline,
		Sweep:         result,
		CallHistogram: callHist,
		PutHistogram:  putHist,
	})
	if err != nil {
		log.Fatalf("error marshalling sweep output: %s", err)
	}

	f := "bsviz.json"
	err = ioutil.WriteFile(f, out, 0644)
	if err != nil {
		log.Fatalf("error writing to file %s: %s", f, err)
	}

	fmt.Printf("Successfully wrote %dx%d sweep to %s\n",
		len(result.VolatilityAxis), len(result.SpotAxis), f)
}

func envFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Fatalf("invalid value for %s: %s", key, raw)
	}
	return v
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("invalid value for %s: %s", key, raw)
	}
	return v
}
