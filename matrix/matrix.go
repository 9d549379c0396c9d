// SPDX-License-Identifier: MIT

// Package matrix - validating construction & read-only accessors.
//
// Purpose:
//   - Derive the shape from the input rows and reject zero-row or ragged data.
//     Rows of length 0 are valid and yield an n×0 matrix.
//   - Copy caller data into a private row-major buffer so the value is immutable.
//   - Guarantee safety at the public surface: At/Row return errors instead of panicking.
//
// Complexity quicksheet:
//   - New: O(r*c); At: O(1); Row: O(c); ToRows: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew     = "New"
	ctxNewData = "NewFromData"
	ctxAt      = "At"
	ctxRow     = "Row"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Compile-time assertions for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// New builds a Matrix from rows.
// MAIN DESCRIPTION:
//   - Row count is len(rows); column count is len(rows[0]).
//   - Every row must have exactly that many columns.
//
// Implementation:
//   - Stage 1: ValidateRows (ErrEmpty / ErrRagged, first offending row reported).
//   - Stage 2: copy rows into a flat row-major buffer.
//   - Stage 3: enforce the numeric policy when WithValidateNaNInf is given.
//
// Behavior highlights:
//   - Input slices are copied; mutating them afterwards does not affect the matrix.
//   - No panics on user errors; returns wrapped sentinels.
//
// Errors:
//   - ErrEmpty, ErrRagged, ErrNaNInf (all wrapped with "New").
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows []Row, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)

	cols, err := ValidateRows(rows)
	if err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}

	buf := make([]float32, 0, len(rows)*cols)
	for _, row := range rows {
		buf = append(buf, row...)
	}

	return newFromBuffer(ctxNew, len(rows), cols, buf, o.validateNaNInf)
}

// MustNew is like New but panics on error.
// Use it where malformed input is a programming error, e.g. literals in tests.
func MustNew(rows []Row, opts ...Option) *Matrix {
	m, err := New(rows, opts...)
	if err != nil {
		panic(err)
	}

	return m
}

// NewFromData builds a rows×cols Matrix from a flat row-major buffer.
// The buffer is copied.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<0.
//   - ErrDimensionMismatch when len(data) != rows*cols.
//   - ErrNaNInf under WithValidateNaNInf.
func NewFromData(rows, cols int, data []float32, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	if rows <= 0 || cols < 0 {
		return nil, matrixErrorf(ctxNewData, ErrInvalidDimensions)
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(ctxNewData,
			fmt.Errorf("got %d values for %dx%d: %w", len(data), rows, cols, ErrDimensionMismatch))
	}
	buf := make([]float32, len(data))
	copy(buf, data)

	return newFromBuffer(ctxNewData, rows, cols, buf, o.validateNaNInf)
}

// newFromBuffer is the single exit point of every constructor and kernel.
// It takes ownership of buf (no copy), re-checks the shape invariant
// (rows > 0, cols >= 0, len(buf) == rows*cols) and enforces the numeric policy.
func newFromBuffer(op string, rows, cols int, buf []float32, validateNaNInf bool) (*Matrix, error) {
	if rows <= 0 {
		return nil, matrixErrorf(op, ErrEmpty)
	}
	if cols < 0 || len(buf) != rows*cols {
		return nil, matrixErrorf(op,
			fmt.Errorf("buffer of %d values for %dx%d: %w", len(buf), rows, cols, ErrDimensionMismatch))
	}
	if validateNaNInf {
		if err := validateFinite(buf, cols); err != nil {
			return nil, matrixErrorf(op, err)
		}
	}

	return &Matrix{r: rows, c: cols, data: buf, validateNaNInf: validateNaNInf}, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Matrix) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Matrix) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix) Shape() (rows, cols int) { return m.r, m.c }

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (float32, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Matrix.%s(%d,%d): %w", ctxAt, row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// Row returns a copy of row i or ErrOutOfRange.
// Complexity: O(c).
func (m *Matrix) Row(i int) (Row, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", ctxRow, i, ErrOutOfRange)
	}
	out := make(Row, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// ToRows returns a deep copy of the data as rows.
// New(m.ToRows()) reproduces m.
// Complexity: O(r*c).
func (m *Matrix) ToRows() []Row {
	out := make([]Row, m.r)
	for i := 0; i < m.r; i++ {
		row := make(Row, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// String renders rows as lines of comma-separated values, e.g. "[1, 2]\n[3, 4]\n".
// An n×0 matrix renders as n lines of "[]".
// Intended for logs and debugging.
func (m *Matrix) String() string {
	if m == nil {
		return "<nil>"
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%g", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
