// SPDX-License-Identifier: MIT

// Package matrix - skew-symmetric (anti-symmetric) sparse integer matrix.
//
// Purpose:
//   - Halve memory versus a general sparse matrix: only the half with
//     row < column is stored; the mirrored half is derived by negation.
//   - Hold the diagonal at zero by construction: it is never stored and a
//     non-zero write onto it is rejected.
//
// Storage layout:
//   - A logical cell (x, y) with x != y lives at physical
//     (row = min(x,y), col = max(x,y)).
//   - The physical value equals the logical value of (min, max); the logical
//     value of (max, min) is its negation. Hence At(y,x) == -At(x,y) always.
//   - Set stores v at (min, max) as given, for either orientation. A write
//     at x > y therefore reads back negated: Set(3,1,1) yields At(3,1) == -1
//     and At(1,3) == 1.
//   - Row storage grows to min(x,y)+1, the row that actually receives the write.
//
// Inherited metadata (NonEmptyRows, NonEmptyEntryIDs, NumberOfEntries)
// reports only the stored half; callers iterating those views must not
// expect the mirrored entries.

package matrix

import "fmt"

const kindSkew = "SkewSymmetricSparseMatrix"

// SkewSymmetricSparseMatrix is a square integer matrix with
// M[y,x] == -M[x,y] and a zero diagonal.
// The embedded SparseMatrix provides Rows, Cols and the stored-entry views.
//
// Off-diagonal writes at a negative index have no storage row and fail with
// ErrOutOfRange; every other off-diagonal coordinate is accepted under the
// default lenient policy.
type SkewSymmetricSparseMatrix struct {
	SparseMatrix
}

var (
	_ Sparse       = (*SkewSymmetricSparseMatrix)(nil)
	_ fmt.Stringer = (*SkewSymmetricSparseMatrix)(nil)
	_ upperStored  = (*SkewSymmetricSparseMatrix)(nil)
)

// NewSkewSymmetricSparseMatrix creates an empty n×n skew-symmetric matrix.
// No rows are allocated until the first off-diagonal write.
//
// Errors:
//   - ErrInvalidDimensions if n < 0.
func NewSkewSymmetricSparseMatrix(n int, opts ...Option) (*SkewSymmetricSparseMatrix, error) {
	if err := validateShape(n, n); err != nil {
		return nil, matrixErrorf("NewSkewSymmetricSparseMatrix", err)
	}

	return &SkewSymmetricSparseMatrix{
		SparseMatrix: newSparseStorage(n, n, gatherOptions(opts...)),
	}, nil
}

// At returns the logical value at (x, y).
//   - x < y: the stored value at row x, column y.
//   - x > y: the negated stored value at row y, column x.
//   - x == y: 0, storage is not consulted.
//
// Missing rows or columns read as 0. Under the default policy this also holds
// for coordinates outside the declared shape.
//
// Errors:
//   - ErrOutOfRange only under WithStrictBounds.
//
// Complexity: O(1).
func (m *SkewSymmetricSparseMatrix) At(x, y int) (int, error) {
	if err := m.checkBounds(kindSkew, ctxAt, x, y); err != nil {
		return 0, err
	}
	switch {
	case x < y:
		v, _ := m.lookup(x, y)
		return v, nil
	case x > y:
		v, _ := m.lookup(y, x)
		return -v, nil // minus for anti-symmetry
	default:
		return 0, nil
	}
}

// Set stores v in the physical cell of (x, y).
//
// Behavior highlights:
//   - Diagonal: v == 0 is a no-op; v != 0 fails and nothing is mutated.
//   - x < y: grows row storage to x+1 and stores row x, column y = v;
//     afterwards At(x, y) == v and At(y, x) == -v.
//   - x > y: grows row storage to y+1 and stores row y, column x = v;
//     afterwards At(y, x) == v and At(x, y) == -v.
//   - A zero v is stored as written.
//
// Errors:
//   - ErrNonZeroDiagonal for x == y and v != 0.
//   - ErrOutOfRange for negative off-diagonal indices, or outside the shape
//     under WithStrictBounds.
//
// Complexity: O(1) amortized + O(Δrows) on growth.
func (m *SkewSymmetricSparseMatrix) Set(x, y int, v int) error {
	if err := m.checkBounds(kindSkew, ctxSet, x, y); err != nil {
		return err
	}
	if x == y {
		if v == 0 {
			return nil // already satisfied
		}
		return cellErrorf(kindSkew, ctxSet, x, y, ErrNonZeroDiagonal)
	}
	if x < 0 || y < 0 {
		return cellErrorf(kindSkew, ctxSet, x, y, ErrOutOfRange)
	}
	m.store(min(x, y), max(x, y), v)

	return nil
}

// IsSymmetric is true only when every stored entry is zero: a skew-symmetric
// matrix with any non-zero off-diagonal cell is never symmetric.
// Only the stored half is scanned. Complexity: O(E).
func (m *SkewSymmetricSparseMatrix) IsSymmetric() bool {
	for i, row := range m.rowList {
		for j := range row {
			if v, _ := m.At(i, j); v != 0 {
				return false
			}
		}
	}

	return true
}

// CreateMatrix returns a new empty *SkewSymmetricSparseMatrix of size
// rows×rows with the same bounds policy.
//
// Errors:
//   - ErrNonSquare if rows != cols.
//   - ErrInvalidDimensions if rows < 0.
func (m *SkewSymmetricSparseMatrix) CreateMatrix(rows, cols int) (Matrix, error) {
	if err := validateSquareShape(rows, cols); err != nil {
		return nil, matrixErrorf(kindSkew+".CreateMatrix", err)
	}

	return NewSkewSymmetricSparseMatrix(rows, m.opts.asOptions()...)
}

func (m *SkewSymmetricSparseMatrix) upperOnly() {}

// String implements fmt.Stringer over the stored half.
func (m *SkewSymmetricSparseMatrix) String() string {
	return formatEntries(kindSkew, m.rows, m.cols, m.NonEmptyEntryIDs(), m.lookup)
}
