// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY domain-facing types. Errors and options live in
// dedicated files (errors.go, options.go).
package matrix

// Row is an ordered sequence of float32 values; the index is the column position.
type Row []float32

// Matrix is an immutable rectangular grid of float32 values.
//   - r, c hold the shape (both > 0 for every constructed value).
//   - data is a flat row-major buffer of length r*c (offset = i*c + j).
//   - validateNaNInf is the numeric policy, inherited by results of operations.
//
// A *Matrix is never mutated after construction; every accessor that hands
// out a slice returns a copy. The zero value is not a valid matrix; use New.
type Matrix struct {
	r, c           int       // row and column counts
	data           []float32 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // reject NaN/Inf in construction and results
}
