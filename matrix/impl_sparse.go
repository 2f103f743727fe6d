// SPDX-License-Identifier: MIT

// Package matrix - row-indexed sparse storage & lenient accessors.
//
// Purpose:
//   - Store only explicitly written cells: one map[col]value per row, with the
//     row slice growing lazily up to the highest row written.
//   - Provide the metadata views (NonEmptyRows, NonEmptyEntryIDs) that
//     half-storage variants inherit by embedding.
//   - Keep algorithmic determinism: every exported listing is sorted, never
//     in map iteration order.
//
// Complexity quicksheet:
//   - NewSparseMatrix: O(1); At: O(1); Set: O(1) amortized + O(Δrows) growth;
//     NonEmptyRows: O(R); NonEmptyEntryIDs: O(E log E).

package matrix

import (
	"fmt"
	"slices"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	kindPlain = "SparseMatrix"
)

// SparseMatrix is a general rows×cols integer matrix storing only the cells
// that were written. Unwritten cells read as 0.
//
// It is not safe for concurrent mutation: a Set may grow the row slice, so
// callers sharing a matrix across goroutines must synchronize externally.
type SparseMatrix struct {
	rows, cols int           // declared shape (>= 0)
	rowList    []map[int]int // rowList[i][j] = stored value; len grows lazily
	opts       Options       // bounds policy, replayed by CreateMatrix
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Sparse       = (*SparseMatrix)(nil)
	_ fmt.Stringer = (*SparseMatrix)(nil)
)

// NewSparseMatrix creates an empty rows×cols sparse matrix.
// No row storage is allocated until the first write.
//
// Errors:
//   - ErrInvalidDimensions if rows < 0 or cols < 0.
func NewSparseMatrix(rows, cols int, opts ...Option) (*SparseMatrix, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, matrixErrorf("NewSparseMatrix", err)
	}
	m := newSparseStorage(rows, cols, gatherOptions(opts...))

	return &m, nil
}

// newSparseStorage builds the value embedded by the half-storage variants.
// Shape must already be validated.
func newSparseStorage(rows, cols int, o Options) SparseMatrix {
	return SparseMatrix{rows: rows, cols: cols, opts: o}
}

// Rows returns the declared number of rows.
func (m *SparseMatrix) Rows() int { return m.rows }

// Cols returns the declared number of columns.
func (m *SparseMatrix) Cols() int { return m.cols }

// checkBounds enforces the strict policy; in lenient mode it accepts anything.
func (m *SparseMatrix) checkBounds(kind, method string, i, j int) error {
	if m.opts.strictBounds && !inShape(i, j, m.rows, m.cols) {
		return cellErrorf(kind, method, i, j, ErrOutOfRange)
	}

	return nil
}

// lookup returns the stored value at physical (i, j).
// Rows that were never allocated, and negative indices, read as absent.
func (m *SparseMatrix) lookup(i, j int) (int, bool) {
	if i < 0 || i >= len(m.rowList) {
		return 0, false
	}
	v, ok := m.rowList[i][j]

	return v, ok
}

// ensureRow appends empty row maps until row i exists and returns it.
// Growth is irreversible; the slice never shrinks.
func (m *SparseMatrix) ensureRow(i int) map[int]int {
	for len(m.rowList) <= i {
		m.rowList = append(m.rowList, make(map[int]int))
	}

	return m.rowList[i]
}

// store writes v at physical (i, j). Both indices must be non-negative.
// Zero values are stored as written; nothing is pruned.
func (m *SparseMatrix) store(i, j, v int) {
	m.ensureRow(i)[j] = v
}

// At returns the value at (i, j), or 0 when nothing was stored there.
//
// Errors:
//   - ErrOutOfRange only under WithStrictBounds.
func (m *SparseMatrix) At(i, j int) (int, error) {
	if err := m.checkBounds(kindPlain, ctxAt, i, j); err != nil {
		return 0, err
	}
	v, _ := m.lookup(i, j)

	return v, nil
}

// Set stores v at (i, j), growing row storage up to row i.
//
// Errors:
//   - ErrOutOfRange for negative indices, or outside the shape under WithStrictBounds.
func (m *SparseMatrix) Set(i, j int, v int) error {
	if err := m.checkBounds(kindPlain, ctxSet, i, j); err != nil {
		return err
	}
	if i < 0 || j < 0 {
		return cellErrorf(kindPlain, ctxSet, i, j, ErrOutOfRange)
	}
	m.store(i, j, v)

	return nil
}

// IsSymmetric reports whether the matrix is square and every stored (i, j)
// equals the value at (j, i). Complexity: O(E).
func (m *SparseMatrix) IsSymmetric() bool {
	if m.rows != m.cols {
		return false
	}
	for i, row := range m.rowList {
		for j, v := range row {
			mirror, _ := m.lookup(j, i)
			if mirror != v {
				return false
			}
		}
	}

	return true
}

// CreateMatrix returns a new empty *SparseMatrix of the given shape with the
// same bounds policy.
func (m *SparseMatrix) CreateMatrix(rows, cols int) (Matrix, error) {
	return NewSparseMatrix(rows, cols, m.opts.asOptions()...)
}

// NonEmptyRows returns the ascending indices of rows with at least one
// stored entry. Lazily allocated but still empty rows are skipped.
func (m *SparseMatrix) NonEmptyRows() []int {
	out := make([]int, 0, len(m.rowList))
	for i, row := range m.rowList {
		if len(row) > 0 {
			out = append(out, i)
		}
	}

	return out
}

// NonEmptyEntryIDs returns every stored coordinate ordered by row, then column.
func (m *SparseMatrix) NonEmptyEntryIDs() []EntryID {
	out := make([]EntryID, 0, m.NumberOfEntries())
	for i, row := range m.rowList {
		start := len(out)
		for j := range row {
			out = append(out, EntryID{Row: i, Col: j})
		}
		// map order is random; sort this row's slice segment by column
		slices.SortFunc(out[start:], func(a, b EntryID) int { return a.Col - b.Col })
	}

	return out
}

// NumberOfEntries returns the number of stored coordinates.
func (m *SparseMatrix) NumberOfEntries() int {
	n := 0
	for _, row := range m.rowList {
		n += len(row)
	}

	return n
}

// String implements fmt.Stringer: the shape followed by stored entries,
// e.g. "SparseMatrix(3x3){(0,2)=5}".
func (m *SparseMatrix) String() string {
	return formatEntries(kindPlain, m.rows, m.cols, m.NonEmptyEntryIDs(), m.lookup)
}

// formatEntries renders shape and stored entries in NonEmptyEntryIDs order.
func formatEntries(kind string, rows, cols int, ids []EntryID, lookup func(i, j int) (int, bool)) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s(%dx%d){", kind, rows, cols)
	for k, id := range ids {
		if k > 0 {
			sb.WriteString(", ")
		}
		v, _ := lookup(id.Row, id.Col)
		fmt.Fprintf(&sb, "(%d,%d)=%d", id.Row, id.Col, v)
	}
	sb.WriteString("}")

	return sb.String()
}
