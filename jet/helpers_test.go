// SPDX-License-Identifier: MIT
// Package jet_test contains shared fixtures for the Jet tests.

package jet_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/lvjet/jet"
)

// J is the workhorse instantiation: float64 components, two variables.
type J = jet.Jet[jet.Float, [2]jet.Float]

const (
	// kTolerance bounds Jet-to-Jet identity mismatches.
	kTolerance = 1e-13
	// kStep is the central-difference step.
	kStep = 1e-8
	// kNumericalTolerance bounds Jet-vs-finite-difference mismatches.
	kNumericalTolerance = 1e-6
)

// makeJet builds (a ; v0, v1).
func makeJet(a, v0, v1 float64) J {
	return jet.New[jet.Float, [2]jet.Float](jet.Float(a), [2]jet.Float{jet.Float(v0), jet.Float(v1)})
}

// constant builds (a ; 0, 0).
func constant(a float64) J {
	return jet.Const[jet.Float, [2]jet.Float](jet.Float(a))
}

// requireClose checks want ≈ got within tol, absolute or relative.
func requireClose(t *testing.T, want, got, tol float64) {
	t.Helper()
	require.Truef(t, scalar.EqualWithinAbsOrRel(want, got, tol, tol),
		"want %.17g, got %.17g (tol %g)", want, got, tol)
}

// requireJetsClose checks every component of two Jets within kTolerance.
func requireJetsClose(t *testing.T, want, got J) {
	t.Helper()
	requireClose(t, float64(want.A), float64(got.A), kTolerance)
	for i := 0; i < want.Dim(); i++ {
		requireClose(t, float64(want.V[i]), float64(got.V[i]), kTolerance)
	}
}

// numericalTest compares the Jet derivative of f at x with a central
// difference.
func numericalTest(t *testing.T, name string, f func(J) J, x float64) {
	t.Helper()
	exact := float64(f(makeJet(x, 1, 0)).V[0])
	estimated := float64(f(constant(x+kStep)).A-f(constant(x-kStep)).A) / (2 * kStep)
	require.Truef(t, scalar.EqualWithinAbsOrRel(exact, estimated, kNumericalTolerance, kNumericalTolerance),
		"%s(%g): exact dx %.17g, estimated dx %.17g", name, x, exact, estimated)
}

// numericalTest2 is numericalTest for a two-argument function; it also
// checks that each partial lands in whichever tangent slot was seeded.
func numericalTest2(t *testing.T, name string, f func(J, J) J, x, y float64) {
	t.Helper()
	exactDelta := f(makeJet(x, 1, 0), makeJet(y, 0, 1))
	exactDx, exactDy := exactDelta.V[0], exactDelta.V[1]

	require.Equal(t, exactDx, f(makeJet(x, 1, 0), makeJet(y, 0, 0)).V[0])
	require.Equal(t, exactDx, f(makeJet(x, 0, 1), makeJet(y, 0, 0)).V[1])
	require.Equal(t, exactDy, f(makeJet(x, 0, 0), makeJet(y, 1, 0)).V[0])
	require.Equal(t, exactDy, f(makeJet(x, 0, 0), makeJet(y, 0, 1)).V[1])

	estimatedDx := float64(f(constant(x+kStep), constant(y)).A-f(constant(x-kStep), constant(y)).A) / (2 * kStep)
	estimatedDy := float64(f(constant(x), constant(y+kStep)).A-f(constant(x), constant(y-kStep)).A) / (2 * kStep)
	require.Truef(t, scalar.EqualWithinAbsOrRel(float64(exactDx), estimatedDx, kNumericalTolerance, kNumericalTolerance),
		"%s(%g, %g): exact dx %.17g, estimated dx %.17g", name, x, y, float64(exactDx), estimatedDx)
	require.Truef(t, scalar.EqualWithinAbsOrRel(float64(exactDy), estimatedDy, kNumericalTolerance, kNumericalTolerance),
		"%s(%g, %g): exact dy %.17g, estimated dy %.17g", name, x, y, float64(exactDy), estimatedDy)
}

// Shared sample points.
var (
	sampleX = makeJet(2.3, -2.7, 1e-3)
	sampleY = makeJet(1.7, 0.5, 1e+2)
)
