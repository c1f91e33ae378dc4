package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAxisSinglePoint(t *testing.T) {
	axis := Range{Min: 80, Max: 120, Samples: 1}.Axis()
	assert.Equal(t, []float64{80}, axis)
}

func TestAxisEndpointsInclusive(t *testing.T) {
	axis := Range{Min: 80, Max: 120, Samples: 10}.Axis()
	require.Len(t, axis, 10)
	assert.Equal(t, 80.0, axis[0])
	assert.Equal(t, 120.0, axis[len(axis)-1])
}

func TestVolatilityAxisCollapsedRange(t *testing.T) {
	// Min == Max == base: every sample collapses onto the base value.
	axis := VolatilityAxis(Range{Min: 0.2, Max: 0.2, Samples: 10}, 0.2)
	assert.Equal(t, []float64{0.2}, axis)
}

func TestVolatilityAxisInsertsBase(t *testing.T) {
	axis := VolatilityAxis(Range{Min: 0.13, Max: 0.33, Samples: 10}, 0.2)
	require.Len(t, axis, 11)
	assert.Equal(t, 1, countOccurrences(axis, 0.2))
	assertAscending(t, axis)
}
