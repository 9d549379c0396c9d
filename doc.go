// Package matf32 is a small, dependency-light linear-algebra value type for Go:
// an immutable dense matrix of float32 values.
//
// 🚀 What is in the box?
//
//	matrix/   - the Matrix type: validating construction from rows, Add, Sub,
//	            Mul, Scale, exact and approximate equality, JSON encoding and
//	            gonum interoperability
//	examples/ - runnable programs (power iteration on an adjacency matrix)
//
// ✨ Guarantees
//
//   - Shape is checked once, at construction: empty and ragged input is rejected.
//   - Operators never mutate their operands and always return a fresh value.
//   - Every failure is an error wrapping a sentinel (errors.Is); Must* forms panic.
//
// Quick example:
//
//	a := matrix.MustFromRows(matrix.R(1, 2, 3), matrix.R(4, 5, 6))
//	b := matrix.MustFromRows(matrix.R(7, 8), matrix.R(9, 10), matrix.R(11, 12))
//	c, err := matrix.Mul(a, b) // [[58 64] [139 154]]
//
//	go get github.com/katalvlaran/matf32/matrix
package matf32
