// Package lvsparse is a small library of memory-lean sparse integer matrices
// for recommender-style workloads, where pairwise scores are often
// anti-symmetric (a preference of i over j is the negated preference of j
// over i).
//
// Everything lives in the matrix subpackage:
//
//	matrix/ — SparseMatrix, SymmetricSparseMatrix, SkewSymmetricSparseMatrix
//	          and generic facades over the Matrix interface
//
// Quick example:
//
//	m, _ := matrix.NewSkewSymmetricSparseMatrix(5)
//	_ = m.Set(1, 3, 1)
//	v, _ := m.At(3, 1) // -1
//
//	go get github.com/katalvlaran/lvsparse
package lvsparse
