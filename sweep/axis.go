package sweep

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/bcdannyboy/bsviz/pricing"
)

// Two axis values closer than this are treated as the same sample.
const axisEpsilon = 1e-9

// Range describes one swept dimension: Samples uniform values from Min to
// Max inclusive.
type Range struct {
	Min     float64
	Max     float64
	Samples int
}

func (r Range) Validate() error {
	if r.Min > r.Max {
		return fmt.Errorf("%w: min %g > max %g", pricing.ErrInvalidRange, r.Min, r.Max)
	}
	if r.Samples < 1 {
		return fmt.Errorf("%w: sample count must be >= 1, got %d", pricing.ErrInvalidRange, r.Samples)
	}
	return nil
}

// Axis returns the uniform linear samples for the range.
func (r Range) Axis() []float64 {
	if r.Samples == 1 {
		return []float64{r.Min}
	}
	return floats.Span(make([]float64, r.Samples), r.Min, r.Max)
}

// VolatilityAxis samples the range uniformly and guarantees the base
// volatility appears exactly once: a sample within epsilon of the base is
// snapped to the exact base value, otherwise the base is inserted, then the
// axis is re-sorted and deduplicated.
func VolatilityAxis(r Range, base float64) []float64 {
	axis := r.Axis()

	snapped := false
	for i, v := range axis {
		if math.Abs(v-base) < axisEpsilon {
			axis[i] = base
			snapped = true
		}
	}
	if !snapped {
		axis = append(axis, base)
	}

	sort.Float64s(axis)
	return dedupe(axis)
}

func dedupe(sorted []float64) []float64 {
	out := sorted[:1]
	for _, v := range sorted[1:] {
		if v-out[len(out)-1] < axisEpsilon {
			continue
		}
		out = append(out, v)
	}
	return out
}
