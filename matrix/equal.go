// SPDX-License-Identifier: MIT

package matrix

import "github.com/chewxy/math32"

// Equal reports structural equality: same shape and a[i,j] == b[i,j] for every
// cell. Comparison is exact float32 equality, so NaN never equals NaN.
// Two nil matrices are equal; nil and non-nil are not.
// The numeric policy is configuration, not value, and is ignored.
// Complexity: O(r*c) worst case, O(1) on shape mismatch.
func Equal(a, b *Matrix) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for idx := range a.data {
		if a.data[idx] != b.data[idx] {
			return false
		}
	}

	return true
}

// Equal is the method form of Equal(m, o).
func (m *Matrix) Equal(o *Matrix) bool { return Equal(m, o) }

// ApproxEqual reports whether a and b have the same shape and
// |a[i,j]-b[i,j]| ≤ eps for every cell. eps defaults to DefaultEpsilon and is
// set with WithEpsilon. Infinities compare equal only to the same infinity;
// NaN never compares equal.
// Complexity: O(r*c).
func ApproxEqual(a, b *Matrix, opts ...Option) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	eps := gatherOptions(opts...).eps
	var x, y float32
	for idx := range a.data {
		x, y = a.data[idx], b.data[idx]
		if x == y {
			continue // covers matching infinities
		}
		if math32.IsNaN(x) || math32.IsNaN(y) || math32.Abs(x-y) > eps {
			return false
		}
	}

	return true
}
