// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by construction, kernel and encoding tests.
//   • Keep random data integral where exact comparison is required.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/matf32/matrix"
	"github.com/stretchr/testify/require"
)

// mustRows builds a Matrix from nested literals or fails the test.
func mustRows(tb testing.TB, rows ...[]float32) *matrix.Matrix {
	tb.Helper()
	in := make([]matrix.Row, len(rows))
	for i, r := range rows {
		in[i] = matrix.Row(r)
	}
	m, err := matrix.New(in)
	require.NoError(tb, err)

	return m
}

// requireRows asserts that m has exactly the given rows (shape and values).
func requireRows(tb testing.TB, want [][]float32, m *matrix.Matrix) {
	tb.Helper()
	require.NotNil(tb, m)
	require.Equal(tb, len(want), m.Rows(), "row count")
	require.Equal(tb, len(want[0]), m.Cols(), "column count")
	for i := range want {
		got, err := m.Row(i)
		require.NoError(tb, err)
		require.Equal(tb, matrix.Row(want[i]), got, "row %d", i)
	}
}

// randIntMatrix fills an r×c matrix with integers in [-9, 9] from a seeded RNG.
// Integral float32 values keep sums and products exact for small shapes.
func randIntMatrix(tb testing.TB, rng *rand.Rand, r, c int) *matrix.Matrix {
	tb.Helper()
	data := make([]float32, r*c)
	for i := range data {
		data[i] = float32(rng.Intn(19) - 9)
	}
	m, err := matrix.NewFromData(r, c, data)
	require.NoError(tb, err)

	return m
}

// randMatrix fills an r×c matrix with uniform values in [-10, 10).
func randMatrix(tb testing.TB, rng *rand.Rand, r, c int) *matrix.Matrix {
	tb.Helper()
	data := make([]float32, r*c)
	for i := range data {
		data[i] = rng.Float32()*20 - 10
	}
	m, err := matrix.NewFromData(r, c, data)
	require.NoError(tb, err)

	return m
}
