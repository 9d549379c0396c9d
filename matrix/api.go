// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points with intention-revealing names.
//   - Provide Must* forms that panic instead of returning an error, for callers
//     that treat a shape mismatch as a programming error.
//   - Avoid logic duplication: each facade delegates to the canonical kernel.

package matrix

// Sum is an alias for Add: element-wise a + b.
// Complexity: O(rc).
func Sum(a, b *Matrix) (*Matrix, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
// Complexity: O(rc).
func Diff(a, b *Matrix) (*Matrix, error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
// Complexity: O(r*n*c).
func Product(a, b *Matrix) (*Matrix, error) { return Mul(a, b) }

// ScaleBy is an alias for MulScalar: m*alpha.
// Complexity: O(rc).
func ScaleBy(m *Matrix, alpha float32) (*Matrix, error) { return MulScalar(m, alpha) }

// ---------- Must forms ----------

// must panics on err and otherwise returns m.
func must(m *Matrix, err error) *Matrix {
	if err != nil {
		panic(err)
	}

	return m
}

// MustAdd is like Add but panics on error.
func MustAdd(a, b *Matrix) *Matrix { return must(Add(a, b)) }

// MustSub is like Sub but panics on error.
func MustSub(a, b *Matrix) *Matrix { return must(Sub(a, b)) }

// MustMul is like Mul but panics on error.
func MustMul(a, b *Matrix) *Matrix { return must(Mul(a, b)) }

// MustScale is like Scale but panics on error.
func MustScale(alpha float32, m *Matrix) *Matrix { return must(Scale(alpha, m)) }
