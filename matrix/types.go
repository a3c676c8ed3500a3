// SPDX-License-Identifier: MIT

// Package matrix: element types.
// This file contains ONLY the Scalar contract that matrix entries must
// satisfy. Errors and options live in dedicated files (errors.go, options.go).
package matrix

// Scalar is the minimal algebra a matrix entry must provide.
//
// The zero value of T MUST be its additive identity; Lift builds any other
// constant from a float64, so kernels never need a literal of type T.
// Cmp orders values for pivot selection and sign tests and returns -1, 0, +1.
//
// Both jet.Float and every jet.Jet satisfy Scalar, so decompositions over
// Jet entries propagate derivatives through the solution automatically.
type Scalar[T any] interface {
	// Lift returns the constant c as a T. The receiver is ignored.
	Lift(c float64) T

	Add(y T) T
	Sub(y T) T
	Mul(y T) T
	Div(y T) T
	Neg() T

	// Abs and Sqrt are needed by pivot selection and Cholesky respectively.
	Abs() T
	Sqrt() T

	// Cmp compares receiver with y: -1 if less, 0 if equal, +1 if greater.
	Cmp(y T) int
}

// lift returns c as a T via the zero value's Lift.
func lift[T Scalar[T]](c float64) T {
	var zero T

	return zero.Lift(c)
}
