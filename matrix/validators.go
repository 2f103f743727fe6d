// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for shape, nil and coordinate checks.
//   - Return plain sentinel errors (wrapped with the validator tag) so call
//     sites can wrap uniformly.
//
// All checks are pure, deterministic and allocate nothing.

package matrix

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return matrixErrorf(tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	return validateSquareShape(m.Rows(), m.Cols())
}

// validateSquareShape is ValidateSquare for bare dimensions (used by factories).
func validateSquareShape(rows, cols int) error {
	if rows != cols {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// validateShape rejects negative dimensions.
func validateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return ErrInvalidDimensions
	}

	return nil
}

// inShape reports whether (i, j) lies inside [0,rows)×[0,cols).
func inShape(i, j, rows, cols int) bool {
	return i >= 0 && i < rows && j >= 0 && j < cols
}
