// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvsparse/matrix"
	"github.com/stretchr/testify/require"
)

// sampleSkew returns a 4×4 skew matrix with three stored entries:
// (0,1)=2, (1,3)=5, (0,2)=-7.
func sampleSkew(t *testing.T) *matrix.SkewSymmetricSparseMatrix {
	t.Helper()
	m := mustSkew(t, 4)
	require.NoError(t, m.Set(0, 1, 2))
	require.NoError(t, m.Set(3, 1, 5))
	require.NoError(t, m.Set(2, 0, -7))
	return m
}

func TestZerosLike(t *testing.T) {
	m := sampleSkew(t)
	z, err := matrix.ZerosLike(m)
	require.NoError(t, err)
	require.IsType(t, &matrix.SkewSymmetricSparseMatrix{}, z)
	require.Equal(t, 4, z.Rows())
	require.True(t, z.IsSymmetric())

	_, err = matrix.ZerosLike(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTranspose_SkewEqualsNegate(t *testing.T) {
	m := sampleSkew(t)
	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	require.IsType(t, &matrix.SkewSymmetricSparseMatrix{}, tr)

	neg, err := matrix.Negate(m)
	require.NoError(t, err)

	eq, err := matrix.Equal(tr, neg)
	require.NoError(t, err)
	require.True(t, eq)

	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			require.Equal(t, at(t, m, y, x), at(t, tr, x, y))
		}
	}
}

func TestTranspose_Rectangular(t *testing.T) {
	m, err := matrix.NewSparseMatrix(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 2, 4))
	require.NoError(t, m.Set(1, 0, 1))

	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 2, tr.Cols())
	require.Equal(t, 4, at(t, tr, 2, 0))
	require.Equal(t, 1, at(t, tr, 0, 1))
	require.Equal(t, 2, tr.(matrix.Sparse).NumberOfEntries())
}

func TestTranspose_Grid(t *testing.T) {
	g := newGrid(2, 3, 1, 2, 3, 4, 5, 6)
	tr, err := matrix.Transpose(g)
	require.NoError(t, err)
	require.Equal(t, newGrid(3, 2, 1, 4, 2, 5, 3, 6), tr)
}

func TestNegate_Skew(t *testing.T) {
	m := sampleSkew(t)
	neg, err := matrix.Negate(m)
	require.NoError(t, err)
	require.IsType(t, &matrix.SkewSymmetricSparseMatrix{}, neg)

	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			require.Equal(t, -at(t, m, x, y), at(t, neg, x, y))
		}
	}
	require.Equal(t, -2, at(t, neg, 0, 1))
	require.Equal(t, 5, at(t, neg, 3, 1))
	require.Equal(t, 3, neg.(matrix.Sparse).NumberOfEntries())
}

func TestNegate_Symmetric(t *testing.T) {
	m, err := matrix.NewSymmetricSparseMatrix(3)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 2, 3))
	require.NoError(t, m.Set(1, 1, -4))

	neg, err := matrix.Negate(m)
	require.NoError(t, err)
	require.Equal(t, -3, at(t, neg, 2, 0))
	require.Equal(t, 4, at(t, neg, 1, 1))
	require.Equal(t, 2, neg.(matrix.Sparse).NumberOfEntries())
}

func TestEqual_AcrossVariants(t *testing.T) {
	skew := sampleSkew(t)
	plain, err := matrix.NewSparseMatrix(4, 4)
	require.NoError(t, err)
	for _, w := range []struct{ i, j, v int }{
		{0, 1, 2}, {1, 0, -2}, {1, 3, 5}, {3, 1, -5}, {0, 2, -7}, {2, 0, 7},
	} {
		require.NoError(t, plain.Set(w.i, w.j, w.v))
	}

	eq, err := matrix.Equal(skew, plain)
	require.NoError(t, err)
	require.True(t, eq)

	require.NoError(t, plain.Set(2, 3, 1))
	eq, err = matrix.Equal(skew, plain)
	require.NoError(t, err)
	require.False(t, eq)
}

func TestEqual_Errors(t *testing.T) {
	a := mustSkew(t, 2)
	b := mustSkew(t, 3)
	_, err := matrix.Equal(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Equal(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Equal(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestCountNonZero(t *testing.T) {
	m := sampleSkew(t)
	n, err := matrix.CountNonZero(m)
	require.NoError(t, err)
	require.Equal(t, 6, n) // three stored entries, both halves

	require.NoError(t, m.Set(1, 2, 0)) // stored zero does not count
	n, err = matrix.CountNonZero(m)
	require.NoError(t, err)
	require.Equal(t, 6, n)

	n, err = matrix.CountNonZero(newGrid(2, 2, 0, 1, 1, 0))
	require.NoError(t, err)
	require.Equal(t, 2, n)

	_, err = matrix.CountNonZero(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
