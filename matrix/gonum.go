// SPDX-License-Identifier: MIT

// Package matrix - gonum interoperability.
//
// Matrix stays float32; gonum works in float64. ToGonum widens exactly.
// FromGonum narrows with float32 rounding (values outside the float32 range
// become ±Inf, which the finite-only policy then rejects).
// gonum has no zero-length dimensions, so n×0 matrices do not cross over.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	ctxToGonum   = "ToGonum"
	ctxFromGonum = "FromGonum"
)

// ToGonum returns a new *mat.Dense holding m widened to float64.
// The result shares no storage with m.
//
// Errors:
//   - ErrNilMatrix, ErrEmpty (zero Matrix value).
//   - ErrInvalidDimensions for an n×0 matrix.
//
// Complexity: O(r*c).
func (m *Matrix) ToGonum() (*mat.Dense, error) {
	if err := ValidateOperand(m); err != nil {
		return nil, matrixErrorf(ctxToGonum, err)
	}
	if m.c == 0 {
		return nil, matrixErrorf(ctxToGonum, fmt.Errorf("dims %dx0: %w", m.r, ErrInvalidDimensions))
	}
	buf := make([]float64, len(m.data))
	for idx, v := range m.data {
		buf[idx] = float64(v)
	}

	return mat.NewDense(m.r, m.c, buf), nil
}

// FromGonum builds a Matrix from any gonum matrix, narrowing to float32.
//
// Errors:
//   - ErrNilMatrix when g is nil.
//   - ErrEmpty when g has no rows or no columns (the zero mat.Dense).
//   - ErrNaNInf under WithValidateNaNInf.
//
// Complexity: O(r*c).
func FromGonum(g mat.Matrix, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	if g == nil {
		return nil, matrixErrorf(ctxFromGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	if r == 0 || c == 0 {
		return nil, matrixErrorf(ctxFromGonum, fmt.Errorf("dims %dx%d: %w", r, c, ErrEmpty))
	}

	buf := make([]float32, r*c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			buf[i*c+j] = float32(g.At(i, j))
		}
	}

	return newFromBuffer(ctxFromGonum, r, c, buf, o.validateNaNInf)
}
