// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by every sparse variant.
// This file contains ONLY the public capability interface and the coordinate
// type. Errors and options live in dedicated files (errors.go, options.go).
package matrix

// EntryID is a physically stored (row, column) coordinate.
// Symmetric and skew-symmetric variants report only the half they store
// (Row < Col for skew-symmetric, Row <= Col for symmetric), never the
// mirrored counterpart.
type EntryID struct {
	Row int // storage row index
	Col int // storage column index
}

// Matrix is the capability set consumed by generic algorithms.
// Implementations differ in storage layout and in how the mirrored half is
// derived; callers select a variant by constructor and use it through this
// interface.
//
// Complexity notes: At/Set are O(1) amortized; IsSymmetric is O(stored).
type Matrix interface {
	// Rows returns the declared number of rows.
	Rows() int

	// Cols returns the declared number of columns.
	Cols() int

	// At returns the logical value at (i, j).
	// Under the default lenient policy any coordinate outside the declared
	// range reads as 0 with a nil error.
	At(i, j int) (int, error)

	// Set writes v at (i, j). Half-storage variants write the (min, max)
	// cell as given; see SkewSymmetricSparseMatrix.Set for the sign below
	// the diagonal.
	Set(i, j int, v int) error

	// IsSymmetric reports whether At(i, j) == At(j, i) for all stored entries.
	IsSymmetric() bool

	// CreateMatrix returns a new, empty matrix of the same concrete type
	// with the requested shape.
	CreateMatrix(rows, cols int) (Matrix, error)
}

// Sparse is the metadata view over the stored entries of a variant.
// Everything it reports is the physical content only: callers iterating a
// symmetric or skew-symmetric matrix must derive the mirrored half themselves.
type Sparse interface {
	Matrix

	// NonEmptyRows returns the ascending row indices holding at least one entry.
	NonEmptyRows() []int

	// NonEmptyEntryIDs returns every stored coordinate in ascending (row, col) order.
	NonEmptyEntryIDs() []EntryID

	// NumberOfEntries returns the number of stored coordinates.
	NumberOfEntries() int
}
