package pricing

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter marks market parameters outside their valid domain.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrDegenerateInput marks inputs where the closed form is singular.
	ErrDegenerateInput = errors.New("degenerate input")
	// ErrInvalidRange marks a malformed sweep range.
	ErrInvalidRange = errors.New("invalid range")
)

// MarketParameters holds one complete set of Black-Scholes inputs.
// Maturity is in years, Rate and Volatility are annualized.
type MarketParameters struct {
	Spot       float64
	Strike     float64
	Maturity   float64
	Rate       float64
	Volatility float64
}

// OptionPrice is the result of one pricing pass.
type OptionPrice struct {
	Call float64
	Put  float64
}

// Validate rejects parameters before any formula evaluation. Zero maturity
// or volatility makes d1/d2 undefined, so both are reported as degenerate
// rather than being priced to NaN.
func (p MarketParameters) Validate() error {
	if p.Spot <= 0 {
		return fmt.Errorf("%w: spot must be > 0, got %g", ErrInvalidParameter, p.Spot)
	}
	if p.Strike <= 0 {
		return fmt.Errorf("%w: strike must be > 0, got %g", ErrInvalidParameter, p.Strike)
	}
	if p.Maturity < 0 {
		return fmt.Errorf("%w: maturity must be >= 0, got %g", ErrInvalidParameter, p.Maturity)
	}
	if p.Rate < 0 {
		return fmt.Errorf("%w: rate must be >= 0, got %g", ErrInvalidParameter, p.Rate)
	}
	if p.Volatility < 0 {
		return fmt.Errorf("%w: volatility must be >= 0, got %g", ErrInvalidParameter, p.Volatility)
	}
	if p.Maturity == 0 {
		return fmt.Errorf("%w: maturity must be strictly positive", ErrDegenerateInput)
	}
	if p.Volatility == 0 {
		return fmt.Errorf("%w: volatility must be strictly positive", ErrDegenerateInput)
	}
	return nil
}

// WithSpot returns a copy with the spot price replaced.
func (p MarketParameters) WithSpot(spot float64) MarketParameters {
	p.Spot = spot
	return p
}

// WithVolatility returns a copy with the volatility replaced.
func (p MarketParameters) WithVolatility(vol float64) MarketParameters {
	p.Volatility = vol
	return p
}
