// SPDX-License-Identifier: MIT

// Package matrix - symmetric sparse integer matrix.
// Stores only (min(x,y), max(x,y)); the mirrored half reads the same cell.
// The diagonal is stored like any other cell.

package matrix

import "fmt"

const kindSym = "SymmetricSparseMatrix"

// SymmetricSparseMatrix is a square integer matrix with M[y,x] == M[x,y].
// Like the skew variant, its stored-entry views report only row <= col.
type SymmetricSparseMatrix struct {
	SparseMatrix
}

var (
	_ Sparse       = (*SymmetricSparseMatrix)(nil)
	_ fmt.Stringer = (*SymmetricSparseMatrix)(nil)
	_ upperStored  = (*SymmetricSparseMatrix)(nil)
)

// NewSymmetricSparseMatrix creates an empty n×n symmetric matrix.
func NewSymmetricSparseMatrix(n int, opts ...Option) (*SymmetricSparseMatrix, error) {
	if err := validateShape(n, n); err != nil {
		return nil, matrixErrorf("NewSymmetricSparseMatrix", err)
	}

	return &SymmetricSparseMatrix{
		SparseMatrix: newSparseStorage(n, n, gatherOptions(opts...)),
	}, nil
}

// At returns the value at (x, y), identical to the value at (y, x).
func (m *SymmetricSparseMatrix) At(x, y int) (int, error) {
	if err := m.checkBounds(kindSym, ctxAt, x, y); err != nil {
		return 0, err
	}
	v, _ := m.lookup(min(x, y), max(x, y))

	return v, nil
}

// Set writes v at both (x, y) and (y, x) by storing it once at (min, max).
func (m *SymmetricSparseMatrix) Set(x, y int, v int) error {
	if err := m.checkBounds(kindSym, ctxSet, x, y); err != nil {
		return err
	}
	if x < 0 || y < 0 {
		return cellErrorf(kindSym, ctxSet, x, y, ErrOutOfRange)
	}
	m.store(min(x, y), max(x, y), v)

	return nil
}

// IsSymmetric is always true.
func (m *SymmetricSparseMatrix) IsSymmetric() bool { return true }

// CreateMatrix returns a new empty *SymmetricSparseMatrix; rows must equal cols.
func (m *SymmetricSparseMatrix) CreateMatrix(rows, cols int) (Matrix, error) {
	if err := validateSquareShape(rows, cols); err != nil {
		return nil, matrixErrorf(kindSym+".CreateMatrix", err)
	}

	return NewSymmetricSparseMatrix(rows, m.opts.asOptions()...)
}

func (m *SymmetricSparseMatrix) upperOnly() {}

func (m *SymmetricSparseMatrix) String() string {
	return formatEntries(kindSym, m.rows, m.cols, m.NonEmptyEntryIDs(), m.lookup)
}
