// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/lvmst/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows() and Cols() report the constructor shape.
func TestRowsCols(t *testing.T) {
	m := MustDense(t, 3, 4)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := MustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, 7.89))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
}

// TestSetNaNInfPolicy covers the default rejection and the opt-out.
func TestSetNaNInfPolicy(t *testing.T) {
	strict := MustDense(t, 1, 1)
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, strict.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)

	loose, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.Inf(1)))
}

// TestNewDenseFrom covers copy semantics, ragged rows and empty input.
func TestNewDenseFrom(t *testing.T) {
	rows := triangle()
	m := MustFrom(t, rows)
	rows[0][1] = 99 // the matrix must not alias the caller's slices

	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
	if diff := cmp.Diff(triangle(), m.ToRows()); diff != "" {
		t.Fatalf("ToRows mismatch (-want +got):\n%s", diff)
	}

	_, err = matrix.NewDenseFrom([][]float64{{0, 1}, {1}})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDenseFrom(nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDenseFrom([][]float64{{math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestCloneEqual verifies deep copy independence and bitwise equality.
func TestCloneEqual(t *testing.T) {
	m := MustFrom(t, triangle())
	c, ok := m.Clone().(*matrix.Dense)
	require.True(t, ok)
	require.True(t, m.Equal(c))

	require.NoError(t, c.Set(0, 0, 5))
	require.False(t, m.Equal(c))
	require.False(t, m.Equal(nil))
	require.False(t, m.Equal(MustDense(t, 3, 2)))
}

// TestEqualBitwise verifies Equal compares bit patterns, not float values.
func TestEqualBitwise(t *testing.T) {
	pos := MustDense(t, 1, 1)
	neg := MustDense(t, 1, 1)
	require.NoError(t, neg.Set(0, 0, math.Copysign(0, -1)))
	require.False(t, pos.Equal(neg), "-0 and +0 must differ")

	a, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, a.Set(0, 0, math.NaN()))
	b, ok := a.Clone().(*matrix.Dense)
	require.True(t, ok)
	require.True(t, a.Equal(b), "identical NaN bits are equal")
}

// TestString checks the bracketed row format.
func TestString(t *testing.T) {
	m := MustFrom(t, [][]float64{{0, 1.5}, {1.5, 0}})
	require.Equal(t, "[0, 1.5]\n[1.5, 0]\n", m.String())
}
