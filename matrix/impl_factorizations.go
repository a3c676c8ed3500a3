// SPDX-License-Identifier: MIT
// Package matrix: dense factorizations and linear solves over any Scalar.
//
// Purpose:
//   - LU with partial pivoting (PA = LU) for general square systems.
//   - LLT (Cholesky, A = L·Lᵀ) for symmetric positive-definite systems.
//   - LDLT (A = L·D·Lᵀ, unit L) for symmetric systems without square roots.
//
// Notes:
//   - LLT and LDLT read the lower triangle of A only; the upper triangle is
//     assumed to mirror it and is never referenced.
//   - Pivot decisions use Scalar.Cmp, so for Jet entries they depend on the
//     primal values alone and the derivative of the solution flows through
//     the same arithmetic as the solution itself.

package matrix

import "fmt"

// LUFactors holds PA = LU in compact form: the strictly lower triangle of lu
// is L (its unit diagonal is implicit), the upper triangle is U.
type LUFactors[T Scalar[T]] struct {
	lu   *Dense[T]
	piv  []int // row i of PA is row piv[i] of A
	sign int   // parity of the permutation: +1 or -1
}

// LU factorizes the square matrix m as PA = LU.
//
// Implementation:
//   - Stage 1: ValidateSquare(m); resolve options; copy m.
//   - Stage 2: for each column k, select the pivot row (largest |a[i,k]|
//     for i >= k when pivoting is on), swap it into place, reject a pivot
//     with |p| <= tol as ErrSingular, then eliminate below it.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LU[T Scalar[T]](m *Dense[T], opts ...Option) (*LUFactors[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts...)
	tol := lift[T](o.pivotTol)

	n := m.r
	a := m.Clone()
	piv := make([]int, n)
	for i := range piv {
		piv[i] = i
	}
	sign := 1

	var i, j, k, p int
	for k = 0; k < n; k++ {
		p = k
		if o.pivoting {
			best := a.at(k, k).Abs()
			for i = k + 1; i < n; i++ {
				if cand := a.at(i, k).Abs(); cand.Cmp(best) > 0 {
					p, best = i, cand
				}
			}
		}
		if p != k {
			swapRows(a, p, k)
			piv[p], piv[k] = piv[k], piv[p]
			sign = -sign
		}

		pivot := a.at(k, k)
		if isZeroPivot(pivot, tol) {
			return nil, matrixErrorf(opLU, fmt.Errorf("pivot %d: %w", k, ErrSingular))
		}

		for i = k + 1; i < n; i++ {
			l := a.at(i, k).Div(pivot)
			a.data[i*n+k] = l
			for j = k + 1; j < n; j++ {
				a.data[i*n+j] = a.at(i, j).Sub(l.Mul(a.at(k, j)))
			}
		}
	}

	return &LUFactors[T]{lu: a, piv: piv, sign: sign}, nil
}

// swapRows exchanges rows p and q of a in place.
func swapRows[T Scalar[T]](a *Dense[T], p, q int) {
	rp := a.data[p*a.c : (p+1)*a.c]
	rq := a.data[q*a.c : (q+1)*a.c]
	for j := range rp {
		rp[j], rq[j] = rq[j], rp[j]
	}
}

// L returns the unit lower-triangular factor.
func (f *LUFactors[T]) L() *Dense[T] {
	n := f.lu.r
	out := &Dense[T]{r: n, c: n, data: make([]T, n*n)}
	one := lift[T](1)
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			out.data[i*n+j] = f.lu.at(i, j)
		}
		out.data[i*n+i] = one
	}

	return out
}

// U returns the upper-triangular factor.
func (f *LUFactors[T]) U() *Dense[T] {
	n := f.lu.r
	out := &Dense[T]{r: n, c: n, data: make([]T, n*n)}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			out.data[i*n+j] = f.lu.at(i, j)
		}
	}

	return out
}

// Pivot returns a copy of the row permutation: row i of PA is row Pivot()[i] of A.
func (f *LUFactors[T]) Pivot() []int {
	out := make([]int, len(f.piv))
	copy(out, f.piv)

	return out
}

// Det returns det(A) = sign(P)·Π U[i,i].
func (f *LUFactors[T]) Det() T {
	det := lift[T](float64(f.sign))
	for i := 0; i < f.lu.r; i++ {
		det = det.Mul(f.lu.at(i, i))
	}

	return det
}

// Solve returns x with A·x = b.
//
// Errors:
//   - ErrNilMatrix (nil b), ErrDimensionMismatch (len(b) != n).
//
// Complexity:
//   - Time O(n²), Space O(n).
func (f *LUFactors[T]) Solve(b []T) ([]T, error) {
	n := f.lu.r
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	// Forward: L·y = P·b.
	x := make([]T, n)
	for i := 0; i < n; i++ {
		sum := b[f.piv[i]]
		for j := 0; j < i; j++ {
			sum = sum.Sub(f.lu.at(i, j).Mul(x[j]))
		}
		x[i] = sum
	}
	// Backward: U·x = y.
	for i := n - 1; i >= 0; i-- {
		sum := x[i]
		for j := i + 1; j < n; j++ {
			sum = sum.Sub(f.lu.at(i, j).Mul(x[j]))
		}
		x[i] = sum.Div(f.lu.at(i, i))
	}

	return x, nil
}

// LLTFactors holds the Cholesky factor L of A = L·Lᵀ.
type LLTFactors[T Scalar[T]] struct {
	l *Dense[T]
}

// LLT computes the Cholesky factorization of a symmetric positive-definite
// matrix, reading the lower triangle of m only.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrNotPositiveDefinite when a diagonal pivot is <= 0.
//
// Complexity:
//   - Time O(n³/3), Space O(n²).
func LLT[T Scalar[T]](m *Dense[T]) (*LLTFactors[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLLT, err)
	}

	n := m.r
	var zero T
	l := &Dense[T]{r: n, c: n, data: make([]T, n*n)}
	for j := 0; j < n; j++ {
		d := m.at(j, j)
		for k := 0; k < j; k++ {
			d = d.Sub(l.at(j, k).Mul(l.at(j, k)))
		}
		if d.Cmp(zero) <= 0 {
			return nil, matrixErrorf(opLLT, fmt.Errorf("pivot %d: %w", j, ErrNotPositiveDefinite))
		}
		ljj := d.Sqrt()
		l.data[j*n+j] = ljj

		for i := j + 1; i < n; i++ {
			s := m.at(i, j)
			for k := 0; k < j; k++ {
				s = s.Sub(l.at(i, k).Mul(l.at(j, k)))
			}
			l.data[i*n+j] = s.Div(ljj)
		}
	}

	return &LLTFactors[T]{l: l}, nil
}

// L returns a copy of the lower-triangular Cholesky factor.
func (f *LLTFactors[T]) L() *Dense[T] { return f.l.Clone() }

// Solve returns x with A·x = b via L·y = b, Lᵀ·x = y.
// Complexity: O(n²).
func (f *LLTFactors[T]) Solve(b []T) ([]T, error) {
	n := f.l.r
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	x := make([]T, n)
	for i := 0; i < n; i++ {
		sum := b[i]
		for k := 0; k < i; k++ {
			sum = sum.Sub(f.l.at(i, k).Mul(x[k]))
		}
		x[i] = sum.Div(f.l.at(i, i))
	}
	for i := n - 1; i >= 0; i-- {
		sum := x[i]
		for k := i + 1; k < n; k++ {
			sum = sum.Sub(f.l.at(k, i).Mul(x[k]))
		}
		x[i] = sum.Div(f.l.at(i, i))
	}

	return x, nil
}

// LDLTFactors holds A = L·D·Lᵀ with unit lower-triangular L and diagonal D.
type LDLTFactors[T Scalar[T]] struct {
	l *Dense[T] // strictly lower part; unit diagonal implicit
	d []T
}

// LDLT factorizes a symmetric matrix as L·D·Lᵀ without pivoting, reading
// the lower triangle of m only. Unlike LLT it accepts indefinite matrices,
// failing only on a zero pivot.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrSingular when |D[j]| <= the pivot tolerance.
//
// Complexity:
//   - Time O(n³/3), Space O(n²).
func LDLT[T Scalar[T]](m *Dense[T], opts ...Option) (*LDLTFactors[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLDLT, err)
	}
	tol := lift[T](gatherOptions(opts...).pivotTol)

	n := m.r
	l := &Dense[T]{r: n, c: n, data: make([]T, n*n)}
	d := make([]T, n)
	for j := 0; j < n; j++ {
		dj := m.at(j, j)
		for k := 0; k < j; k++ {
			dj = dj.Sub(l.at(j, k).Mul(l.at(j, k)).Mul(d[k]))
		}
		if isZeroPivot(dj, tol) {
			return nil, matrixErrorf(opLDLT, fmt.Errorf("pivot %d: %w", j, ErrSingular))
		}
		d[j] = dj

		for i := j + 1; i < n; i++ {
			s := m.at(i, j)
			for k := 0; k < j; k++ {
				s = s.Sub(l.at(i, k).Mul(l.at(j, k)).Mul(d[k]))
			}
			l.data[i*n+j] = s.Div(dj)
		}
	}

	return &LDLTFactors[T]{l: l, d: d}, nil
}

// L returns the unit lower-triangular factor.
func (f *LDLTFactors[T]) L() *Dense[T] {
	out := f.l.Clone()
	one := lift[T](1)
	for i := 0; i < out.r; i++ {
		out.data[i*out.c+i] = one
	}

	return out
}

// D returns a copy of the diagonal of D.
func (f *LDLTFactors[T]) D() []T {
	out := make([]T, len(f.d))
	copy(out, f.d)

	return out
}

// Solve returns x with A·x = b via L·y = b, D·z = y, Lᵀ·x = z.
// Complexity: O(n²).
func (f *LDLTFactors[T]) Solve(b []T) ([]T, error) {
	n := f.l.r
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	x := make([]T, n)
	for i := 0; i < n; i++ {
		sum := b[i]
		for k := 0; k < i; k++ {
			sum = sum.Sub(f.l.at(i, k).Mul(x[k]))
		}
		x[i] = sum
	}
	for i := 0; i < n; i++ {
		x[i] = x[i].Div(f.d[i])
	}
	for i := n - 1; i >= 0; i-- {
		sum := x[i]
		for k := i + 1; k < n; k++ {
			sum = sum.Sub(f.l.at(k, i).Mul(x[k]))
		}
		x[i] = sum
	}

	return x, nil
}

// Solve solves the square system A·x = b with LU and partial pivoting.
// Options are forwarded to LU.
func Solve[T Scalar[T]](a *Dense[T], b []T, opts ...Option) ([]T, error) {
	f, err := LU(a, opts...)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return f.Solve(b)
}

// SolveLLT solves the symmetric positive-definite system A·x = b via LLT.
func SolveLLT[T Scalar[T]](a *Dense[T], b []T) ([]T, error) {
	f, err := LLT(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return f.Solve(b)
}

// SolveLDLT solves the symmetric system A·x = b via LDLT.
func SolveLDLT[T Scalar[T]](a *Dense[T], b []T, opts ...Option) ([]T, error) {
	f, err := LDLT(a, opts...)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return f.Solve(b)
}

// Inverse returns A⁻¹ by solving A·X = I column by column with one LU.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse[T Scalar[T]](a *Dense[T], opts ...Option) (*Dense[T], error) {
	f, err := LU(a, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := a.r
	inv := &Dense[T]{r: n, c: n, data: make([]T, n*n)}
	e := make([]T, n)
	one := lift[T](1)
	var zero T
	for j := 0; j < n; j++ {
		for i := range e {
			e[i] = zero
		}
		e[j] = one
		col, err := f.Solve(e)
		if err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		for i := 0; i < n; i++ {
			inv.data[i*n+j] = col[i]
		}
	}

	return inv, nil
}
