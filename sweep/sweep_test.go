package sweep

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bcdannyboy/bsviz/pricing"
)

var baseParams = pricing.MarketParameters{
	Spot:       100,
	Strike:     100,
	Maturity:   1,
	Rate:       0.05,
	Volatility: 0.2,
}

func TestSweepGridShapeAndAlignment(t *testing.T) {
	spotRange := Range{Min: 80, Max: 120, Samples: 10}
	volRange := Range{Min: 0.1, Max: 0.3, Samples: 10}

	result, err := Sweep(baseParams, spotRange, volRange)
	require.NoError(t, err)

	rows, cols := result.CallGrid.Dims()
	assert.Equal(t, len(result.VolatilityAxis), rows)
	assert.Equal(t, len(result.SpotAxis), cols)

	putRows, putCols := result.PutGrid.Dims()
	assert.Equal(t, rows, putRows)
	assert.Equal(t, cols, putCols)

	// Every cell must equal a direct single-point evaluation: same formula,
	// same inputs, bit for bit.
	for i, vol := range result.VolatilityAxis {
		for j, spot := range result.SpotAxis {
			want, err := pricing.Price(baseParams.WithSpot(spot).WithVolatility(vol))
			require.NoError(t, err)
			assert.Equal(t, want.Call, result.CallGrid.At(i, j), "call cell [%d][%d]", i, j)
			assert.Equal(t, want.Put, result.PutGrid.At(i, j), "put cell [%d][%d]", i, j)
		}
	}
}

func TestSweepCallGridMonotoneAlongSpot(t *testing.T) {
	result, err := Sweep(baseParams,
		Range{Min: 80, Max: 120, Samples: 10},
		Range{Min: 0.1, Max: 0.3, Samples: 10})
	require.NoError(t, err)

	rows, cols := result.CallGrid.Dims()
	for i := 0; i < rows; i++ {
		for j := 1; j < cols; j++ {
			assert.Greater(t, result.CallGrid.At(i, j), result.CallGrid.At(i, j-1),
				"call row %d must increase along the spot axis", i)
		}
	}
}

func TestSweepBaseVolatilityPresentExactlyOnce(t *testing.T) {
	// 0.2 is not one of the 10 uniform samples of [0.13, 0.33].
	result, err := Sweep(baseParams,
		Range{Min: 80, Max: 120, Samples: 5},
		Range{Min: 0.13, Max: 0.33, Samples: 10})
	require.NoError(t, err)

	assert.Equal(t, 1, countOccurrences(result.VolatilityAxis, baseParams.Volatility))
	assert.Len(t, result.VolatilityAxis, 11)
	assertAscending(t, result.VolatilityAxis)

	// 0.2 is an exact sample of [0.1, 0.3] with 11 points; no duplicate
	// may be inserted.
	result, err = Sweep(baseParams,
		Range{Min: 80, Max: 120, Samples: 5},
		Range{Min: 0.1, Max: 0.3, Samples: 11})
	require.NoError(t, err)

	assert.Equal(t, 1, countOccurrences(result.VolatilityAxis, baseParams.Volatility))
	assert.Len(t, result.VolatilityAxis, 11)
	assertAscending(t, result.VolatilityAxis)
}

func TestSweepSlicesMatchSinglePointEvaluations(t *testing.T) {
	result, err := Sweep(baseParams,
		Range{Min: 80, Max: 120, Samples: 10},
		Range{Min: 0.1, Max: 0.3, Samples: 10})
	require.NoError(t, err)

	require.Len(t, result.SpotSlice, len(result.SpotAxis))
	for j, spot := range result.SpotAxis {
		want, err := pricing.Price(baseParams.WithSpot(spot))
		require.NoError(t, err)
		assert.Equal(t, want, result.SpotSlice[j])
	}

	require.Len(t, result.VolatilitySlice, len(result.VolatilityAxis))
	for i, vol := range result.VolatilityAxis {
		want, err := pricing.Price(baseParams.WithVolatility(vol))
		require.NoError(t, err)
		assert.Equal(t, want, result.VolatilitySlice[i])
	}

	// The spot slice is row-equivalent to the grid row at the base
	// volatility.
	baseRow := indexOf(result.VolatilityAxis, baseParams.Volatility)
	require.GreaterOrEqual(t, baseRow, 0)
	for j := range result.SpotAxis {
		assert.Equal(t, result.CallGrid.At(baseRow, j), result.SpotSlice[j].Call)
		assert.Equal(t, result.PutGrid.At(baseRow, j), result.SpotSlice[j].Put)
	}
}

func TestSweepRejectsDegenerateVolatilityRange(t *testing.T) {
	_, err := Sweep(baseParams,
		Range{Min: 80, Max: 120, Samples: 10},
		Range{Min: 0, Max: 0.3, Samples: 10})
	require.Error(t, err)
	assert.True(t, errors.Is(err, pricing.ErrDegenerateInput), "want ErrDegenerateInput, got %v", err)

	degenerateBase := baseParams
	degenerateBase.Volatility = 0
	_, err = Sweep(degenerateBase,
		Range{Min: 80, Max: 120, Samples: 10},
		Range{Min: 0.1, Max: 0.3, Samples: 10})
	require.Error(t, err)
	assert.True(t, errors.Is(err, pricing.ErrDegenerateInput))
}

func TestSweepRejectsInvalidRanges(t *testing.T) {
	_, err := Sweep(baseParams,
		Range{Min: 120, Max: 80, Samples: 10},
		Range{Min: 0.1, Max: 0.3, Samples: 10})
	require.Error(t, err)
	assert.True(t, errors.Is(err, pricing.ErrInvalidRange))

	_, err = Sweep(baseParams,
		Range{Min: 80, Max: 120, Samples: 10},
		Range{Min: 0.1, Max: 0.3, Samples: 0})
	require.Error(t, err)
	assert.True(t, errors.Is(err, pricing.ErrInvalidRange))
}

func TestSweepProgressReachesTotal(t *testing.T) {
	var last, total int
	_, err := Sweep(baseParams,
		Range{Min: 80, Max: 120, Samples: 4},
		Range{Min: 0.1, Max: 0.3, Samples: 4},
		WithWorkers(2),
		WithProgress(func(done, n int) {
			assert.Greater(t, done, last, "done must be monotonic")
			last, total = done, n
		}))
	require.NoError(t, err)
	assert.Equal(t, total, last)
}

func countOccurrences(values []float64, target float64) int {
	n := 0
	for _, v := range values {
		if v == target {
			n++
		}
	}
	return n
}

func indexOf(values []float64, target float64) int {
	for i, v := range values {
		if v == target {
			return i
		}
	}
	return -1
}

func assertAscending(t *testing.T, values []float64) {
	t.Helper()
	for i := 1; i < len(values); i++ {
		assert.Greater(t, values[i], values[i-1], "axis must be strictly ascending")
	}
}
