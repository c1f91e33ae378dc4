package sweep

import (
	"runtime"
	"sync"

	"github.com/shirou/gopsutil/cpu"

	"github.com/bcdannyboy/bsviz/pricing"
)

// Result bundles everything one sweep produces. Row i of the grids matches
// VolatilityAxis[i] and column j matches SpotAxis[j]; consumers can rely on
// that alignment without re-deriving it.
type Result struct {
	SpotAxis        []float64
	VolatilityAxis  []float64
	CallGrid        *Grid
	PutGrid         *Grid
	SpotSlice       []pricing.OptionPrice
	VolatilitySlice []pricing.OptionPrice
}

type Option func(*config)

type config struct {
	progress func(done, total int)
	workers  int
}

// WithProgress registers a callback invoked after each completed grid row.
// Calls are serialized and done is monotonic.
func WithProgress(fn func(done, total int)) Option {
	return func(c *config) { c.progress = fn }
}

// WithWorkers overrides the worker count used for grid evaluation.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

func defaultWorkerCount() int {
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// Sweep evaluates the pricing function over every combination of the spot
// and volatility axes, holding strike, maturity and rate fixed at the base
// parameters. Every cell routes through pricing.Price; the base volatility
// is always a member of the volatility axis. Validation happens before any
// grid construction, so a bad parameter or range never yields a partial
// result.
func Sweep(base pricing.MarketParameters, spotRange, volRange Range, opts ...Option) (*Result, error) {
	cfg := config{workers: defaultWorkerCount()}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := base.Validate(); err != nil {
		return nil, err
	}
	if err := spotRange.Validate(); err != nil {
		return nil, err
	}
	if err := volRange.Validate(); err != nil {
		return nil, err
	}

	spotAxis := spotRange.Axis()
	volAxis := VolatilityAxis(volRange, base.Volatility)

	// A degenerate value anywhere in the swept ranges is rejected with the
	// same error the pricing function itself would raise.
	for _, s := range spotAxis {
		if err := base.WithSpot(s).Validate(); err != nil {
			return nil, err
		}
	}
	for _, v := range volAxis {
		if err := base.WithVolatility(v).Validate(); err != nil {
			return nil, err
		}
	}

	rows, cols := len(volAxis), len(spotAxis)
	callGrid := newGrid(rows, cols)
	putGrid := newGrid(rows, cols)

	workers := cfg.workers
	if workers > rows {
		workers = rows
	}

	jobs := make(chan int, rows)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error
	done := 0

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				rowErr := evaluateRow(base, volAxis[i], spotAxis, i, callGrid, putGrid)

				mu.Lock()
				if rowErr != nil && firstErr == nil {
					firstErr = rowErr
				}
				done++
				if cfg.progress != nil {
					cfg.progress(done, rows)
				}
				mu.Unlock()
			}
		}()
	}

	for i := 0; i < rows; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	spotSlice, err := slice(base, spotAxis, pricing.MarketParameters.WithSpot)
	if err != nil {
		return nil, err
	}
	volSlice, err := slice(base, volAxis, pricing.MarketParameters.WithVolatility)
	if err != nil {
		return nil, err
	}

	return &Result{
		SpotAxis:        spotAxis,
		VolatilityAxis:  volAxis,
		CallGrid:        callGrid,
		PutGrid:         putGrid,
		SpotSlice:       spotSlice,
		VolatilitySlice: volSlice,
	}, nil
}

// evaluateRow prices one volatility row. Workers write disjoint cells, so no
// locking is needed around the grids themselves.
func evaluateRow(base pricing.MarketParameters, vol float64, spotAxis []float64, row int, callGrid, putGrid *Grid) error {
	params := base.WithVolatility(vol)
	for j, spot := range spotAxis {
		result, err := pricing.Price(params.WithSpot(spot))
		if err != nil {
			return err
		}
		callGrid.set(row, j, result.Call)
		putGrid.set(row, j, result.Put)
	}
	return nil
}

func slice(base pricing.MarketParameters, axis []float64, with func(pricing.MarketParameters, float64) pricing.MarketParameters) ([]pricing.OptionPrice, error) {
	out := make([]pricing.OptionPrice, len(axis))
	for i, v := range axis {
		result, err := pricing.Price(with(base, v))
		if err != nil {
			return nil, err
		}
		out[i] = result
	}
	return out, nil
}
