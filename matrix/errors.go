// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Every constructor and
// operator returns one of these (wrapped with an operation tag) and tests
// MUST check them via errors.Is. The error-returning API never panics on
// user input; panics are reserved for the Must* helpers and for option
// constructors given nonsensical values.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so it greps well in logs.
// Kernels wrap these sentinels as "<Op>: <detail>: matrix: ..." via
// matrixErrorf; callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> empty -> ragged -> NaN/Inf policy -> dimension mismatch.

var (
	// ErrEmpty is returned when a constructor receives no rows, or when an
	// operand has no rows (the zero Matrix value). Zero columns are allowed.
	ErrEmpty = errors.New("matrix: no rows")

	// ErrRagged is returned when the rows passed to a constructor differ in
	// length. The wrapping message carries the offending row index, its
	// length and the expected length.
	ErrRagged = errors.New("matrix: ragged rows")

	// ErrDimensionMismatch indicates incompatible operand shapes:
	// Add/Sub with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrInvalidDimensions indicates requested dimensions outside rows > 0, cols >= 0,
	// or a zero-width matrix handed to gonum, which has no such shape.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Matrix was used as an operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value under the finite-only numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
