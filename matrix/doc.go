// Package matrix offers a generic dense matrix and the factorizations needed
// to solve small linear systems whose entries carry derivatives.
//
// The matrix package provides:
//
//   - Dense[T], a row-major matrix over any element type satisfying Scalar
//     (jet.Float, or any jet.Jet for automatic differentiation).
//   - Element-wise Add/Sub, Mul, MatVec, Transpose, Scale/ScaleLeft and Sum.
//   - LU with partial pivoting, LLT (Cholesky) and LDLT factorizations, each
//     with a Solve method, plus the Solve/SolveLLT/SolveLDLT/Inverse facades.
//
// All public entry points validate their operands and return sentinel
// errors (see errors.go) wrapped with the operation name; match them with
// errors.Is. Nothing in this package panics on data.
//
// When the entries are Jets, the solution's tangents are the derivatives of
// the solution with respect to whatever the entries were seeded with:
//
//	a, _ := matrix.NewDenseFrom(2, 2, []J{...})
//	x, err := matrix.SolveLLT(a, b)
//	// x[i].V[k] == ∂x_i/∂p_k
package matrix
