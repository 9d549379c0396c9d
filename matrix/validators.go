// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep constructors and kernels minimal by delegating shape/nil/policy checks here.
//   - Return sentinel errors wrapped with a validator tag so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure and deterministic; rows are scanned in index order
//     so the FIRST offending row is the one reported.
//
// Note:
//   - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package matrix

import (
	"fmt"

	"github.com/chewxy/math32"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateRows checks that rows can form a matrix and returns the column
// count derived from row 0.
//
// Implementation:
//   - Stage 1: reject zero rows (ErrEmpty). An empty row 0 is fine: the
//     result is n×0, and every other row must be empty too.
//   - Stage 2: scan rows 0..n-1 and stop at the first length != cols (ErrRagged).
//
// Inputs:
//   - rows: candidate matrix data.
//
// Returns:
//   - cols: len(rows[0]) on success.
//
// Errors:
//   - ErrEmpty, ErrRagged (message carries "row i has X columns, expected C").
//
// Complexity:
//   - Time O(r), Space O(1).
func ValidateRows(rows []Row) (int, error) {
	if len(rows) == 0 {
		return 0, validatorErrorf("ValidateRows", ErrEmpty)
	}
	cols := len(rows[0])
	for i, row := range rows {
		if len(row) != cols {
			return 0, fmt.Errorf("ValidateRows: row %d has %d columns, expected %d: %w",
				i, len(row), cols, ErrRagged)
		}
	}

	return cols, nil
}

// ValidateOperand – Composite: NotNil → at least one row.
// The zero Matrix value has no rows and is rejected with ErrEmpty.
//
// Errors: ErrNilMatrix, ErrEmpty.
// Complexity: O(1).
func ValidateOperand(m *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r == 0 {
		return validatorErrorf("ValidateOperand", ErrEmpty)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are non-nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: Operand(a) → Operand(b) → SameShape.
//
// Errors: ErrNilMatrix, ErrEmpty, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b *Matrix) error {
	if err := ValidateOperand(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateOperand(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil and non-empty.
//
// Errors: ErrNilMatrix, ErrEmpty, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Matrix) error {
	if err := ValidateOperand(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateOperand(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// validateFinite scans a row-major buffer of width cols and reports the
// first NaN/±Inf with its coordinates.
// Complexity: O(len(data)).
func validateFinite(data []float32, cols int) error {
	for idx, v := range data {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return fmt.Errorf("validateFinite: (%d,%d)=%g: %w", idx/cols, idx%cols, v, ErrNaNInf)
		}
	}

	return nil
}
