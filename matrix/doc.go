// Package matrix provides Matrix, an immutable dense matrix of float32 values.
//
// The matrix package provides:
//
//   - Validating construction from rows (New, FromRows, R) or a flat buffer
//     (NewFromData). Zero-row and ragged input is rejected with ErrEmpty/ErrRagged.
//   - Pure arithmetic: Add, Sub, Mul (matrix × matrix), Scale and MulScalar
//     (scalar × matrix in either order). Operands are never mutated and every
//     result is a fresh value.
//   - Exact structural equality (Equal) and tolerance-based comparison (ApproxEqual).
//   - JSON encoding and conversion to/from gonum's mat.Dense.
//
// Every constructor and operator returns (*Matrix, error); errors wrap the
// sentinels in errors.go and are matched with errors.Is. The Must* forms panic
// instead, for call sites where a shape mismatch is a programming error.
//
// A *Matrix is safe to share between goroutines: nothing ever writes to it
// after construction.
package matrix
