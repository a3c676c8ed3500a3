// SPDX-License-Identifier: MIT
// Package matrix provides element-wise addition, subtraction and Hadamard
// products, matrix multiplication, matrix-vector products, transpose, scalar
// scaling and summation over any Dense[T]. All functions perform strict fail-fast
// validation and return wrapped sentinels on nil or mismatched operands.
//
// Notes:
//   - Every kernel allocates a fresh result; operands are never mutated.
//   - Loop orders are fixed (i→j→k), so results are deterministic for any
//     element type, including ones whose addition is not associative in
//     floating point.

package matrix

// addSub computes elementwise out = a + b or out = a - b.
// Internal helper for Add/Sub to share validation and allocation.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from ValidateSameShape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub[T Scalar[T]](a, b *Dense[T], subtract bool, opTag string) (*Dense[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	out := &Dense[T]{r: a.r, c: a.c, data: make([]T, len(a.data))}
	for i := range a.data {
		if subtract {
			out.data[i] = a.data[i].Sub(b.data[i])
		} else {
			out.data[i] = a.data[i].Add(b.data[i])
		}
	}

	return out, nil
}

// Add computes the element-wise sum C = A + B into a fresh Dense.
func Add[T Scalar[T]](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, false, opAdd) }

// Sub computes the element-wise difference C = A - B into a fresh Dense.
func Sub[T Scalar[T]](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, true, opSub) }

// Hadamard computes the element-wise product C[i,j] = A[i,j]·B[i,j].
// Complexity: O(r·c).
func Hadamard[T Scalar[T]](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	out := &Dense[T]{r: a.r, c: a.c, data: make([]T, len(a.data))}
	for i := range a.data {
		out.data[i] = a.data[i].Mul(b.data[i])
	}

	return out, nil
}

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: accumulate C[i,j] = Σ_k A[i,k]·B[k,j] in k order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r·n·c), Space O(r·c).
func Mul[T Scalar[T]](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	r, n, c := a.r, a.c, b.c
	out := &Dense[T]{r: r, c: c, data: make([]T, r*c)}
	var i, j, k int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			var sum T
			for k = 0; k < n; k++ {
				sum = sum.Add(a.data[i*n+k].Mul(b.data[k*c+j]))
			}
			out.data[i*c+j] = sum
		}
	}

	return out, nil
}

// MatVec computes y = M·x for a vector x of length M.Cols().
//
// Errors:
//   - ErrNilMatrix (nil m or nil x), ErrDimensionMismatch (len(x) != Cols).
//
// Complexity:
//   - Time O(r·c), Space O(r).
func MatVec[T Scalar[T]](m *Dense[T], x []T) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		var sum T
		for j := 0; j < m.c; j++ {
			sum = sum.Add(m.data[i*m.c+j].Mul(x[j]))
		}
		y[i] = sum
	}

	return y, nil
}

// Transpose returns Mᵀ as a fresh c×r Dense.
// Complexity: O(r·c).
func Transpose[T Scalar[T]](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	out := &Dense[T]{r: m.c, c: m.r, data: make([]T, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out, nil
}

// Scale returns the matrix with every entry multiplied by s on the right:
// C[i,j] = M[i,j]·s.
// Complexity: O(r·c).
func Scale[T Scalar[T]](m *Dense[T], s T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	out := &Dense[T]{r: m.r, c: m.c, data: make([]T, len(m.data))}
	for i, v := range m.data {
		out.data[i] = v.Mul(s)
	}

	return out, nil
}

// ScaleLeft returns C[i,j] = s·M[i,j]. It differs from Scale only for
// element types whose multiplication is not commutative.
func ScaleLeft[T Scalar[T]](s T, m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	out := &Dense[T]{r: m.r, c: m.c, data: make([]T, len(m.data))}
	for i, v := range m.data {
		out.data[i] = s.Mul(v)
	}

	return out, nil
}

// Sum returns the sum of all entries, accumulated in row-major order.
func Sum[T Scalar[T]](m *Dense[T]) (T, error) {
	var sum T
	if err := ValidateNotNil(m); err != nil {
		return sum, matrixErrorf(opSum, err)
	}
	for _, v := range m.data {
		sum = sum.Add(v)
	}

	return sum, nil
}
