package pricing

import "math"

// Price evaluates the Black-Scholes closed form for a European call and put
// at the given parameters. Inputs are validated first; maturity or volatility
// of exactly zero is rejected as degenerate instead of propagating NaN.
func Price(p MarketParameters) (OptionPrice, error) {
	if err := p.Validate(); err != nil {
		return OptionPrice{}, err
	}

	sqrtT := math.Sqrt(p.Maturity)
	d1 := (math.Log(p.Spot/p.Strike) + (p.Rate+0.5*p.Volatility*p.Volatility)*p.Maturity) / (p.Volatility * sqrtT)
	d2 := d1 - p.Volatility*sqrtT

	discount := math.Exp(-p.Rate * p.Maturity)
	call := p.Spot*normCDF(d1) - p.Strike*discount*normCDF(d2)
	put := p.Strike*discount*normCDF(-d2) - p.Spot*normCDF(-d1)

	return OptionPrice{Call: call, Put: put}, nil
}

func normCDF(x float64) float64 {
	return 0.5 * (1 + math.Erf(x/math.Sqrt2))
}
