// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels (optionally wrapped with
// an operation tag) and tests MUST check them via errors.Is. No algorithm
// panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." for easy grepping across logs.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/index -> dimension mismatch -> numeric (singular, not SPD).

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<=0 or cols<=0)
	// or when a backing slice does not hold exactly rows*cols entries.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, they never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, Mul where a.Cols != b.Rows, or a
	// right-hand side whose length differs from the system order.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) or a nil
	// vector was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when a pivot is zero (or within the configured
	// pivot tolerance of zero) during LU or LDLT.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNotPositiveDefinite is returned by LLT when a diagonal pivot is not
	// strictly positive.
	ErrNotPositiveDefinite = errors.New("matrix: matrix is not positive definite")
)

// Operation tags for unified error wrapping.
const (
	opNewDense  = "NewDense"
	opAt        = "Dense.At"
	opSet       = "Dense.Set"
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opHadamard  = "Hadamard"
	opMatVec    = "MatVec"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opSum       = "Sum"
	opLU        = "LU"
	opLLT       = "LLT"
	opLDLT      = "LDLT"
	opSolve     = "Solve"
	opInverse   = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil; wrapping nil yields a non-nil error around a nil cause.
//
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
