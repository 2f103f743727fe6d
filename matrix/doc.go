// SPDX-License-Identifier: MIT

// Package matrix offers row-indexed sparse integer matrices.
//
// The matrix package provides:
//
//   - SparseMatrix, a general rows×cols matrix storing one map per row,
//     with rows allocated lazily on first write.
//   - SkewSymmetricSparseMatrix, which stores only the row < column half and
//     derives M[y,x] = -M[x,y]; the diagonal is always zero.
//   - SymmetricSparseMatrix, which stores the same half and mirrors reads.
//   - Generic facades (ZerosLike, Transpose, Negate, Equal, CountNonZero)
//     that work through the Matrix interface and its CreateMatrix factory.
//
// NonEmptyRows and NonEmptyEntryIDs report physical storage only. For
// SkewSymmetricSparseMatrix that means entries with row < column; for
// SymmetricSparseMatrix, row <= column (its diagonal is stored). The mirrored
// counterparts are never listed.
//
// A skew-symmetric Set stores its value in the (min, max) cell as given, so a
// write below the diagonal reads back negated: after Set(3, 1, 1),
// At(3, 1) == -1 and At(1, 3) == 1.
//
// Reads outside the declared shape return 0 by default, consistent with lazy
// growth. Pass WithStrictBounds to reject them with ErrOutOfRange instead.
//
// None of the types are safe for concurrent mutation.
package matrix
