// SPDX-License-Identifier: MIT

// Package matrix - row-literal helpers.
//
// R collects values into a Row; FromRows collects rows into New. Neither does
// any validation of its own: shape checks happen once, in New.
//
//	m := matrix.MustFromRows(
//		matrix.R(1, 2),
//		matrix.R(3, 4),
//	)
package matrix

// R returns its arguments as a Row. The variadic slice is copied.
func R(values ...float32) Row {
	row := make(Row, len(values))
	copy(row, values)

	return row
}

// FromRows builds a Matrix from the given rows. It is New with variadic input.
func FromRows(rows ...Row) (*Matrix, error) { return New(rows) }

// MustFromRows is like FromRows but panics on error.
func MustFromRows(rows ...Row) *Matrix { return MustNew(rows) }
