// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/prodnet/matrix"
	"github.com/stretchr/testify/require"
)

// tol is the absolute tolerance used when comparing solved vectors.
const tol = 1e-9

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic (non-*Dense) code paths.
type hide struct{ matrix.Matrix }

// mustDenseFrom builds a *Dense from a literal or fails the test.
func mustDenseFrom(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(tb, err)

	return m
}

// randomDominant returns an n×n strictly diagonally dominant matrix
// (always non-singular) filled deterministically from seed.
func randomDominant(tb testing.TB, n int, seed int64) *matrix.Dense {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDense(n, n)
	require.NoError(tb, err)
	for i := 0; i < n; i++ {
		var row float64
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			v := rng.Float64()*2 - 1
			require.NoError(tb, m.Set(i, j, v))
			if v < 0 {
				v = -v
			}
			row += v
		}
		require.NoError(tb, m.Set(i, i, row+1))
	}

	return m
}

// randomVec returns n deterministic values in [-10, 10).
func randomVec(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()*20 - 10
	}

	return out
}
