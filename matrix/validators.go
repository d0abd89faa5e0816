// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for weighted-graph input checks.
//   - Keep algorithms minimal by delegating shape/nil/symmetry/sign checks here.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Every check scans in fixed row-major order, so the first reported
//     violation is always the same for the same input.
//
// Note:
//   - Each composite validator follows a fixed sequence (NotNil → Square → ...).
//   - Single-purpose validators assume a non-nil, square matrix unless stated.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// cellErrorf tags a violation with the offending cell.
func cellErrorf(tag string, i, j int, v float64, err error) error {
	return fmt.Errorf("%s: (%d,%d)=%g: %w", tag, i, j, v, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense stored in a Matrix is treated as nil too.
//
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols) and non-empty.
//
// Errors: ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() || m.Rows() == 0 {
		return validatorErrorf("ValidateSquare",
			fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare))
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf entries.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	var i, j int
	var v float64
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j) // indices are in range by construction
			if isNonFinite(v) {
				return cellErrorf("ValidateFinite", i, j, v, ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateNonNegative rejects entries below zero.
// Complexity: O(r*c).
func ValidateNonNegative(m Matrix) error {
	var i, j int
	var v float64
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			if v < 0 {
				return cellErrorf("ValidateNonNegative", i, j, v, ErrNegativeWeight)
			}
		}
	}

	return nil
}

// ValidateEpsilon accepts a finite, non-negative tolerance and returns
// ErrInvalidEpsilon otherwise. Option constructors panic on the same condition.
func ValidateEpsilon(eps float64) error {
	if isNonFinite(eps) || eps < 0 {
		return fmt.Errorf("ValidateEpsilon: eps %g: %w", eps, ErrInvalidEpsilon)
	}

	return nil
}

// ValidateZeroDiagonal requires |A[i,i]| ≤ tol for every i.
// Complexity: O(n).
func ValidateZeroDiagonal(m Matrix, tol float64) error {
	var v float64
	for i := 0; i < m.Rows(); i++ {
		v, _ = m.At(i, i)
		if math.Abs(v) > tol {
			return cellErrorf("ValidateZeroDiagonal", i, i, v, ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateSymmetric checks A is symmetric within tolerance tol:
// |A[i,j] - A[j,i]| ≤ tol for all i<j.
//
// Inputs: Matrix m, tolerance tol ≥ 0 (negative tol is flipped to |tol|).
// Returns ErrNilMatrix/ErrNonSquare on structural issues, ErrNaNInf on bad tol,
// ErrAsymmetry on the first violation in row-major order.
// Complexity: O(n^2) on the strict upper triangle. Space: O(1).
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	if isNonFinite(tol) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	tol = math.Abs(tol)

	n := m.Rows()
	var (
		i, j     int
		aij, aji float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ { // scan only upper triangle
			aij, _ = m.At(i, j)
			aji, _ = m.At(j, i)
			if math.Abs(aij-aji) > tol {
				return fmt.Errorf("ValidateSymmetric: (%d,%d)=%g vs (%d,%d)=%g: %w",
					i, j, aij, j, i, aji, ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateWeightedGraph checks every precondition of an undirected weighted
// adjacency matrix: non-nil, square, finite, non-negative, zero diagonal
// and symmetric within eps (WithEpsilon; DefaultEpsilon otherwise).
//
// Every failure matches both ErrInvalidInput and the specific sentinel
// (ErrNilMatrix, ErrNonSquare, ErrNaNInf, ErrNegativeWeight,
// ErrNonZeroDiagonal, ErrAsymmetry), checked in that order.
//
// Connectivity is NOT checked here; MST builders report it themselves.
//
// Complexity: O(n^2) time, O(1) space.
func ValidateWeightedGraph(m Matrix, opts ...Option) error {
	o := gatherOptions(opts...)
	if err := validateWeightedGraph(m, o.eps); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return nil
}

// validateWeightedGraph runs the checks in priority order without the umbrella sentinel.
func validateWeightedGraph(m Matrix, eps float64) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if err := ValidateFinite(m); err != nil {
		return err
	}
	if err := ValidateNonNegative(m); err != nil {
		return err
	}
	if err := ValidateZeroDiagonal(m, eps); err != nil {
		return err
	}

	return ValidateSymmetric(m, eps)
}

// NewWeightedGraph copies rows into a *Dense and validates it as an undirected
// weighted adjacency matrix. Shape and NaN/Inf failures from the copy also
// match ErrInvalidInput.
func NewWeightedGraph(rows [][]float64, opts ...Option) (*Dense, error) {
	m, err := NewDenseFrom(rows, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err = ValidateWeightedGraph(m, opts...); err != nil {
		return nil, err
	}

	return m, nil
}
