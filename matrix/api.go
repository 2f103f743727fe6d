// SPDX-License-Identifier: MIT
// Package matrix — generic facades over the Matrix capability set.
//
// Purpose:
//   - Give algorithms that do not know the concrete variant a way to build
//     same-shaped matrices (CreateMatrix) and walk logical values.
//   - Use the stored-entry views when the input implements Sparse, so work
//     is O(E) instead of O(rc); mirrored cells of square inputs are derived
//     from the stored half, never assumed to be stored.
//
// Determinism:
//   - Coordinates are visited in ascending (row, col) order.

package matrix

import "slices"

// ZerosLike returns a new empty matrix of the same concrete type and shape as m.
func ZerosLike(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return m.CreateMatrix(m.Rows(), m.Cols())
}

// Transpose returns mᵀ as a new matrix built by m.CreateMatrix(cols, rows).
// For a skew-symmetric input this equals Negate(m).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Transpose", err)
	}
	out, err := m.CreateMatrix(m.Cols(), m.Rows())
	if err != nil {
		return nil, matrixErrorf("Transpose", err)
	}
	assign := logicalWriter(out)
	err = forEachNonZero(m, func(i, j, v int) error {
		return assign(j, i, v)
	})
	if err != nil {
		return nil, matrixErrorf("Transpose", err)
	}

	return out, nil
}

// Negate returns -m as a new matrix of the same concrete type.
func Negate(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Negate", err)
	}
	out, err := m.CreateMatrix(m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf("Negate", err)
	}
	assign := logicalWriter(out)
	err = forEachNonZero(m, func(i, j, v int) error {
		return assign(i, j, -v)
	})
	if err != nil {
		return nil, matrixErrorf("Negate", err)
	}

	return out, nil
}

// Equal reports whether a and b hold the same logical values.
// Concrete types may differ: a skew matrix equals a plain one holding the
// same explicit mirrored values.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func Equal(a, b Matrix) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf("Equal", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf("Equal", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf("Equal", err)
	}
	for _, pair := range [][2]Matrix{{a, b}, {b, a}} {
		x, y := pair[0], pair[1]
		for _, id := range support(x) {
			vx, err := x.At(id.Row, id.Col)
			if err != nil {
				return false, matrixErrorf("Equal", err)
			}
			vy, err := y.At(id.Row, id.Col)
			if err != nil {
				return false, matrixErrorf("Equal", err)
			}
			if vx != vy {
				return false, nil
			}
		}
	}

	return true, nil
}

// CountNonZero returns the number of logical cells of m holding a non-zero
// value, counting both halves of symmetric and skew-symmetric inputs.
func CountNonZero(m Matrix) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf("CountNonZero", err)
	}
	n := 0
	err := forEachNonZero(m, func(_, _, _ int) error {
		n++
		return nil
	})
	if err != nil {
		return 0, matrixErrorf("CountNonZero", err)
	}

	return n, nil
}

// upperStored marks variants keeping one physical cell at (min, max) per
// unordered pair. Their Set stores v into that cell as given, so a write at
// row > col does not read back as v.
type upperStored interface {
	upperOnly()
}

// logicalWriter returns a function that makes out.At(i, j) == v.
// For upperStored outputs only cells with i <= j are written: they fix the
// mirrored cell as well, and the mirrored visit is skipped.
func logicalWriter(out Matrix) func(i, j, v int) error {
	if _, ok := out.(upperStored); !ok {
		return out.Set
	}

	return func(i, j, v int) error {
		if i > j {
			return nil
		}
		return out.Set(i, j, v)
	}
}

// forEachNonZero calls fn for every logical non-zero cell of m in
// ascending (row, col) order and stops at the first error.
func forEachNonZero(m Matrix, fn func(i, j, v int) error) error {
	for _, id := range support(m) {
		v, err := m.At(id.Row, id.Col)
		if err != nil {
			return err
		}
		if v == 0 {
			continue
		}
		if err = fn(id.Row, id.Col, v); err != nil {
			return err
		}
	}

	return nil
}

// support returns a sorted, duplicate-free superset of the coordinates of m
// that may hold a non-zero value.
//   - Sparse inputs: stored entries plus, for square shapes, their mirrors.
//   - Anything else: the full rows×cols grid.
func support(m Matrix) []EntryID {
	sp, ok := m.(Sparse)
	if !ok {
		out := make([]EntryID, 0, m.Rows()*m.Cols())
		for i := 0; i < m.Rows(); i++ {
			for j := 0; j < m.Cols(); j++ {
				out = append(out, EntryID{Row: i, Col: j})
			}
		}
		return out
	}

	ids := sp.NonEmptyEntryIDs()
	if m.Rows() != m.Cols() {
		return ids
	}
	seen := make(map[EntryID]struct{}, 2*len(ids))
	out := make([]EntryID, 0, 2*len(ids))
	for _, id := range ids {
		for _, c := range [2]EntryID{id, {Row: id.Col, Col: id.Row}} {
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	slices.SortFunc(out, compareEntryIDs)

	return out
}

// compareEntryIDs orders coordinates by row, then column.
func compareEntryIDs(a, b EntryID) int {
	if a.Row != b.Row {
		return a.Row - b.Row
	}

	return a.Col - b.Col
}
