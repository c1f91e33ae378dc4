package bsvizslack

import (
	"fmt"
	"strconv"

	"github.com/bcdannyboy/bsviz/pricing"
	"github.com/bcdannyboy/bsviz/sweep"
)

// The sweep surface uses the same fixed sampling density as the one-shot
// tool.
const sweepSamples = 10

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %q is not a number", arg)
		}
		out[i] = v
	}
	return out, nil
}

// parseMarketParameters reads <spot> <strike> <maturity> <rate> <vol>.
func parseMarketParameters(args []string) (pricing.MarketParameters, error) {
	if len(args) != 5 {
		return pricing.MarketParameters{}, fmt.Errorf("expected 5 arguments, got %d", len(args))
	}
	v, err := parseFloats(args)
	if err != nil {
		return pricing.MarketParameters{}, err
	}
	return pricing.MarketParameters{
		Spot:       v[0],
		Strike:     v[1],
		Maturity:   v[2],
		Rate:       v[3],
		Volatility: v[4],
	}, nil
}

// parseSweepRequest reads the five market parameters followed by
// <minSpot> <maxSpot> <minVol> <maxVol>.
func parseSweepRequest(args []string) (pricing.MarketParameters, sweep.Range, sweep.Range, error) {
	if len(args) != 9 {
		return pricing.MarketParameters{}, sweep.Range{}, sweep.Range{}, fmt.Errorf("expected 9 arguments, got %d", len(args))
	}
	params, err := parseMarketParameters(args[:5])
	if err != nil {
		return pricing.MarketParameters{}, sweep.Range{}, sweep.Range{}, err
	}
	v, err := parseFloats(args[5:])
	if err != nil {
		return pricing.MarketParameters{}, sweep.Range{}, sweep.Range{}, err
	}
	spotRange := sweep.Range{Min: v[0], Max: v[1], Samples: sweepSamples}
	volRange := sweep.Range{Min: v[2], Max: v[3], Samples: sweepSamples}
	return params, spotRange, volRange, nil
}
