// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for storage internals.
// Exposes the physical row count so black-box tests in matrix_test can check
// lazy growth without widening the production API.

// StoredRowCount_TestOnly returns len(rowList) of any variant, or -1 for
// unknown implementations.
func StoredRowCount_TestOnly(m Matrix) int {
	switch t := m.(type) {
	case *SparseMatrix:
		return len(t.rowList)
	case *SkewSymmetricSparseMatrix:
		return len(t.rowList)
	case *SymmetricSparseMatrix:
		return len(t.rowList)
	default:
		return -1
	}
}

// RawLookup_TestOnly reads physical storage at (i, j), bypassing sign logic.
func RawLookup_TestOnly(m *SkewSymmetricSparseMatrix, i, j int) (int, bool) {
	return m.lookup(i, j)
}
