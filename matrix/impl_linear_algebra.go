// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels: element-wise addition and
// subtraction, matrix multiplication, and scalar scaling. All functions
// perform strict fail-fast validation and return clear errors on dimension
// mismatches.
//
// Purpose:
//   - Define the canonical kernels and the operation tags used for error reporting.
//   - Never mutate operands; every kernel allocates exactly one result buffer.
//
// Notes:
//   - Operands are read-only. A result never aliases an operand, so callers may
//     keep using (or sharing) the inputs after the call.
//   - The result inherits the numeric policy of the left matrix operand.

package matrix

import "fmt"

// ZeroSum is the initial accumulator value for dot products in Mul.
const ZeroSum float32 = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opMulScalar = "MulScalar"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// shapeErrorf decorates a validation failure with both operand shapes when
// they are available, e.g. "cannot add 2x2 and 3x2 matrices: ...".
func shapeErrorf(verb string, a, b *Matrix, err error) error {
	if a == nil || b == nil {
		return fmt.Errorf("cannot %s matrices: %w", verb, err)
	}

	return fmt.Errorf("cannot %s %dx%d and %dx%d matrices: %w", verb, a.r, a.c, b.r, b.c, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation and the flat loop.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: single flat loop 0..n-1 over the row-major buffers.
//   - Stage 3: hand the buffer to newFromBuffer (shape re-check, numeric policy).
//
// Errors:
//   - ErrNilMatrix, ErrEmpty, ErrDimensionMismatch, ErrNaNInf (policy ON and overflow).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b *Matrix, sign float32, opTag, verb string) (*Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, shapeErrorf(verb, a, b, err))
	}

	n := a.r * a.c
	buf := make([]float32, n)
	for idx := 0; idx < n; idx++ {
		buf[idx] = a.data[idx] + float32(sign*b.data[idx])
	}

	return newFromBuffer(opTag, a.r, a.c, buf, a.validateNaNInf)
}

// Add computes the element-wise sum C = A + B and returns a fresh Matrix.
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: Single flat loop over the row-major data.
//
// Returns:
//   - *Matrix: C[i,j] = A[i,j] + B[i,j], same shape as A and B.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch),
//     ErrNaNInf (finite-only policy and a non-finite sum).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b *Matrix) (*Matrix, error) { return addSub(a, b, +1, opAdd, "add") }

// Sub computes the element-wise difference C = A - B and returns a fresh Matrix.
// Order matters: Sub(a, b) is a - b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (same as Add).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b *Matrix) (*Matrix, error) { return addSub(a, b, -1, opSub, "subtract") }

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→j→k triple loop; each C[i,j] starts from ZeroSum and
//     accumulates A[i,k]*B[k,j] in increasing k.
//
// Behavior highlights:
//   - The summation order is fixed, so results are bit-for-bit reproducible.
//   - No zero-skipping: 0*Inf still yields NaN as IEEE-754 requires.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - *Matrix: new C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch), ErrNaNInf.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, shapeErrorf("multiply", a, b, err))
	}

	aRows, aCols, bCols := a.r, a.c, b.c
	buf := make([]float32, aRows*bCols)
	var (
		i, j, k    int
		rowOffsetA int
		sum        float32
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		for j = 0; j < bCols; j++ {
			sum = ZeroSum
			for k = 0; k < aCols; k++ {
				// float32(...) rounds the product, which forbids FMA fusion.
				sum += float32(a.data[rowOffsetA+k] * b.data[k*bCols+j])
			}
			buf[i*bCols+j] = sum
		}
	}

	return newFromBuffer(opMul, aRows, bCols, buf, a.validateNaNInf)
}

// scale is the shared kernel of Scale and MulScalar.
func scale(opTag string, alpha float32, m *Matrix) (*Matrix, error) {
	if err := ValidateOperand(m); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	n := m.r * m.c
	buf := make([]float32, n)
	for idx := 0; idx < n; idx++ {
		buf[idx] = alpha * m.data[idx]
	}

	return newFromBuffer(opTag, m.r, m.c, buf, m.validateNaNInf)
}

// Scale returns alpha*m (scalar on the left), same shape as m.
// Returns:
//   - *Matrix: elements alpha*m[i,j].
//
// Errors:
//   - ErrNilMatrix, ErrEmpty, ErrNaNInf (policy ON and overflow).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - alpha = 0 yields an explicit zero matrix with the same shape.
func Scale(alpha float32, m *Matrix) (*Matrix, error) { return scale(opScale, alpha, m) }

// MulScalar returns m*alpha. It is defined identically to Scale(alpha, m).
func MulScalar(m *Matrix, alpha float32) (*Matrix, error) { return scale(opMulScalar, alpha, m) }
