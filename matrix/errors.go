// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Validators and loaders return these sentinels wrapped with call-site
// context; tests MUST check them via errors.Is.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Every failure a caller can trigger with bad input also matches
// ErrInvalidInput, so a single errors.Is check separates "caller handed us a
// bad graph" from everything else.
//
// ERROR PRIORITY (enforced in ValidateWeightedGraph, covered by tests):
// nil -> shape -> NaN/Inf -> negative weight -> diagonal -> symmetry.

var (
	// ErrInvalidInput is the umbrella sentinel for malformed weighted-graph input.
	// It is joined with a specific sentinel below, never returned alone.
	ErrInvalidInput = errors.New("matrix: invalid input")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrBadShape is returned when row data is ragged or empty.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// within the configured epsilon.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNonZeroDiagonal signals a self-loop weight on the diagonal.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero within eps")

	// ErrNegativeWeight signals an edge weight below zero.
	ErrNegativeWeight = errors.New("matrix: negative edge weight")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidEpsilon reports a tolerance that is NaN, ±Inf or negative.
	ErrInvalidEpsilon = errors.New("matrix: eps must be finite, non-negative")

	// ErrParse reports a CSV cell that is not a floating-point number.
	ErrParse = errors.New("matrix: cannot parse value")
)
