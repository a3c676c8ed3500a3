// SPDX-License-Identifier: MIT
// Package matrix_test contains shared fixtures for the matrix tests.
//
// Purpose:
//   - Build small deterministic Dense matrices over jet.Float and over Jets.
//   - Fail fast with t.Fatalf-style helpers so test bodies stay flat.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvjet/jet"
	"github.com/katalvlaran/lvjet/matrix"
)

// F is the plain float64 element type.
type F = jet.Float

// J is a Jet with two tangent slots.
type J = jet.Jet[jet.Float, [2]jet.Float]

// kTolerance bounds element-wise mismatches in solves.
const kTolerance = 1e-12

func makeJet(a, v0, v1 float64) J {
	return jet.New[jet.Float, [2]jet.Float](F(a), [2]F{F(v0), F(v1)})
}

// MustDense allocates an r×c matrix from row-major data or fails the test.
func MustDense[T matrix.Scalar[T]](t *testing.T, r, c int, data ...T) *matrix.Dense[T] {
	t.Helper()
	if len(data) == 0 {
		m, err := matrix.NewDense[T](r, c)
		require.NoError(t, err)
		return m
	}
	m, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt[T matrix.Scalar[T]](t *testing.T, m *matrix.Dense[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// requireJetClose compares every component of two Jets within kTolerance.
func requireJetClose(t *testing.T, want, got J) {
	t.Helper()
	require.InDelta(t, float64(want.A), float64(got.A), kTolerance, "primal")
	for k := 0; k < want.Dim(); k++ {
		require.InDeltaf(t, float64(want.V[k]), float64(got.V[k]), kTolerance, "tangent %d", k)
	}
}

// requireFloatsClose compares two float vectors element-wise.
func requireFloatsClose(t *testing.T, want, got []F) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDeltaf(t, float64(want[i]), float64(got[i]), kTolerance, "entry %d", i)
	}
}

// jetSystem returns the n×n Jet matrix with primal identity and tangents
// A(i,j) = (δij ; i, j²), together with b(i) = (i ; i, i).
func jetSystem(t *testing.T, n int) (*matrix.Dense[J], []J) {
	t.Helper()
	a := MustDense[J](t, n, n)
	b := make([]J, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := makeJet(0, float64(i), float64(j*j))
			if i == j {
				v = makeJet(1, float64(i), float64(i*i))
			}
			require.NoError(t, a.Set(i, j, v))
		}
		b[i] = makeJet(float64(i), float64(i), float64(i))
	}

	return a, b
}

// symmetricJetSystem returns the n×n symmetric Jet matrix with primal
// 2·identity and tangents A(i,j) = (2δij ; i+j, i·j), with b(i) = (2i ; i, 1).
func symmetricJetSystem(t *testing.T, n int) (*matrix.Dense[J], []J) {
	t.Helper()
	a := MustDense[J](t, n, n)
	b := make([]J, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			p := 0.0
			if i == j {
				p = 2
			}
			require.NoError(t, a.Set(i, j, makeJet(p, float64(i+j), float64(i*j))))
		}
		b[i] = makeJet(float64(2*i), float64(i), 1)
	}

	return a, b
}
