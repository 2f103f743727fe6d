// SPDX-License-Identifier: MIT

package matrix_test

import (
	"github.com/katalvlaran/lvsparse/matrix"
)

// gridMatrix is a minimal non-Sparse Matrix used to drive the full-grid
// paths of the facades.
type gridMatrix struct {
	r, c int
	data []int
}

var _ matrix.Matrix = (*gridMatrix)(nil)

func newGrid(r, c int, vals ...int) *gridMatrix {
	g := &gridMatrix{r: r, c: c, data: make([]int, r*c)}
	copy(g.data, vals)
	return g
}

func (g *gridMatrix) Rows() int { return g.r }
func (g *gridMatrix) Cols() int { return g.c }

func (g *gridMatrix) At(i, j int) (int, error) {
	if i < 0 || i >= g.r || j < 0 || j >= g.c {
		return 0, matrix.ErrOutOfRange
	}
	return g.data[i*g.c+j], nil
}

func (g *gridMatrix) Set(i, j int, v int) error {
	if i < 0 || i >= g.r || j < 0 || j >= g.c {
		return matrix.ErrOutOfRange
	}
	g.data[i*g.c+j] = v
	return nil
}

func (g *gridMatrix) IsSymmetric() bool {
	if g.r != g.c {
		return false
	}
	for i := 0; i < g.r; i++ {
		for j := i + 1; j < g.c; j++ {
			if g.data[i*g.c+j] != g.data[j*g.c+i] {
				return false
			}
		}
	}
	return true
}

func (g *gridMatrix) CreateMatrix(rows, cols int) (matrix.Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, matrix.ErrInvalidDimensions
	}
	return newGrid(rows, cols), nil
}
