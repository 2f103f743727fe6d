// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Every public method
// returns one of these (optionally wrapped with call-site context via %w) and
// tests match them with errors.Is. No method panics on user input.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs.
var (
	// ErrInvalidDimensions indicates that requested dimensions are negative.
	// Zero-sized matrices are legal: storage is lazy, nothing is allocated.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates a coordinate that cannot be addressed: a negative
	// index on Set, or any index outside the declared shape under strict bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonZeroDiagonal signals a non-zero write onto the diagonal of a
	// skew-symmetric matrix.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal must be zero")

	// ErrNonSquare signals that a square shape was required but not given.
	ErrNonSquare = errors.New("matrix: matrix must be square")

	// ErrDimensionMismatch indicates incompatible shapes between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix was passed in.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// cellErrorf wraps err with the receiver type, method and coordinates,
// e.g. "SkewSymmetricSparseMatrix.Set(2,2): matrix: diagonal must be zero".
func cellErrorf(kind, method string, row, col int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", kind, method, row, col, err)
}

// matrixErrorf wraps err with a call-site tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
