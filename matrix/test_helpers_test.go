// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the validators and loaders.
//   • Keep all data finite unless a test targets the NaN/Inf policy.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmst/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use it to exercise the interface path instead of *Dense.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFrom copies rows into a *Dense or fails the test.
func MustFrom(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		t.Fatalf("NewDenseFrom: %v", err)
	}

	return m
}

// triangle is the 3-vertex weighted graph A–B(1), B–C(2), A–C(3).
func triangle() [][]float64 {
	return [][]float64{
		{0, 1, 3},
		{1, 0, 2},
		{3, 2, 0},
	}
}
