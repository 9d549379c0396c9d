// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/matf32/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateRows covers empty, ragged and rectangular inputs.
func TestValidateRows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rows     []matrix.Row
		wantCols int
		wantErr  error
	}{
		{"nil", nil, 0, matrix.ErrEmpty},
		{"empty first row", []matrix.Row{{}}, 0, nil},
		{"all rows empty", []matrix.Row{{}, {}}, 0, nil},
		{"empty first row, others not", []matrix.Row{{}, {1}}, 0, matrix.ErrRagged},
		{"ragged", []matrix.Row{{1, 2}, {3}}, 0, matrix.ErrRagged},
		{"ragged late", []matrix.Row{{1}, {2}, {3}, {}}, 0, matrix.ErrRagged},
		{"single", []matrix.Row{{1, 2, 3}}, 3, nil},
		{"rect", []matrix.Row{{1, 2}, {3, 4}, {5, 6}}, 2, nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			cols, err := matrix.ValidateRows(tc.rows)
			if tc.wantErr == nil {
				require.NoError(t, err)
				require.Equal(t, tc.wantCols, cols)
			} else {
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateSameShape covers matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	m23 := mustRows(t, []float32{1, 2, 3}, []float32{4, 5, 6})
	m33 := mustRows(t, []float32{1, 2, 3}, []float32{4, 5, 6}, []float32{7, 8, 9})
	m24 := mustRows(t, []float32{1, 2, 3, 4}, []float32{5, 6, 7, 8})

	tests := []struct {
		name    string
		a, b    *matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, m23, matrix.ErrNilMatrix},
		{"second nil", m23, nil, matrix.ErrNilMatrix},
		{"equal 2x3", m23, m23, nil},
		{"row mismatch", m23, m33, matrix.ErrDimensionMismatch},
		{"col mismatch", m23, m24, matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

// TestValidateMulCompatible checks the inner-dimension rule.
func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	m23 := mustRows(t, []float32{1, 2, 3}, []float32{4, 5, 6})
	m32 := mustRows(t, []float32{1, 2}, []float32{3, 4}, []float32{5, 6})

	require.NoError(t, matrix.ValidateMulCompatible(m23, m32))
	require.NoError(t, matrix.ValidateMulCompatible(m32, m23))
	require.ErrorIs(t, matrix.ValidateMulCompatible(m23, m23), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, m23), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateMulCompatible(m23, nil), matrix.ErrNilMatrix)
}

// TestValidateFinite reports the coordinates of the first non-finite value.
func TestValidateFinite(t *testing.T) {
	inf := float32(math.Inf(-1))

	require.NoError(t, matrix.ExportedValidateFinite([]float32{1, 2, 3, 4}, 2))

	err := matrix.ExportedValidateFinite([]float32{1, 2, 3, inf, inf}, 2)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.ErrorContains(t, err, "(1,1)")
}
