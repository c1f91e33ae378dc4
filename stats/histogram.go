package stats

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/bcdannyboy/bsviz/pricing"
	"github.com/bcdannyboy/bsviz/sweep"
)

// Histogram holds equal-width bin edges and the number of grid cells that
// fall into each bin. Dividers has one more entry than Counts.
type Histogram struct {
	Dividers []float64
	Counts   []float64
}

// FromGrid bins every cell of a price surface into the given number of
// equal-width buckets over the observed price range.
func FromGrid(g *sweep.Grid, bins int) (Histogram, error) {
	if bins < 1 {
		return Histogram{}, fmt.Errorf("%w: bin count must be >= 1, got %d", pricing.ErrInvalidRange, bins)
	}

	values := g.Flatten()
	sort.Float64s(values)

	lo := floats.Min(values)
	hi := floats.Max(values)
	if lo == hi {
		// A flat surface still gets one well-formed bucket.
		hi = lo + 1
	}

	dividers := floats.Span(make([]float64, bins+1), lo, hi)
	// The top divider must sit strictly above the largest value so the
	// maximum lands in the final bucket.
	dividers[bins] = math.Nextafter(hi, math.Inf(1))

	return Histogram{
		Dividers: dividers,
		Counts:   stat.Histogram(nil, dividers, values, nil),
	}, nil
}

// Peak returns the lower and upper edge of the fullest bucket.
func (h Histogram) Peak() (lo, hi float64) {
	best := 0
	for i, c := range h.Counts {
		if c > h.Counts[best] {
			best = i
		}
	}
	return h.Dividers[best], h.Dividers[best+1]
}
