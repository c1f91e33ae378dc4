package sweep

import (
	"github.com/xhhuango/json"
	"gonum.org/v1/gonum/mat"
)

// Grid is a fixed-shape price surface indexed by (volatility row, spot
// column). It is built once per sweep and never mutated afterwards.
type Grid struct {
	m *mat.Dense
}

func newGrid(rows, cols int) *Grid {
	return &Grid{m: mat.NewDense(rows, cols, nil)}
}

func (g *Grid) Dims() (rows, cols int) {
	return g.m.Dims()
}

func (g *Grid) At(i, j int) float64 {
	return g.m.At(i, j)
}

func (g *Grid) set(i, j int, v float64) {
	g.m.Set(i, j, v)
}

// Rows returns a row-major copy of the surface.
func (g *Grid) Rows() [][]float64 {
	rows, _ := g.m.Dims()
	out := make([][]float64, rows)
	for i := range out {
		out[i] = mat.Row(nil, i, g.m)
	}
	return out
}

// Flatten returns every cell in row-major order.
func (g *Grid) Flatten() []float64 {
	rows, cols := g.m.Dims()
	out := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		mat.Row(out[i*cols:(i+1)*cols], i, g.m)
	}
	return out
}

func (g *Grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Rows())
}
