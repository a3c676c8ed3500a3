// SPDX-License-Identifier: MIT

package jet_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvjet/jet"
)

func TestFunctions_InversePairs(t *testing.T) {
	t.Parallel()

	x := sampleX

	requireJetsClose(t, x, x.Exp().Log())
	requireJetsClose(t, x, x.Mul(x).Sqrt())
	requireJetsClose(t, sampleY, sampleY.Sqrt().Mul(sampleY.Sqrt()))
	requireJetsClose(t, x.Neg().Abs(), x.Mul(x).Sqrt())
	requireJetsClose(t, x, x.Atan().Tan())

	for _, a := range []J{makeJet(0.1, -2.7, 1e-3), makeJet(0.6, 0.5, 1e+2)} {
		requireJetsClose(t, a, a.Acos().Cos())
		requireJetsClose(t, a, a.Cos().Acos())
	}
	for _, a := range []J{makeJet(0.1, -2.7, 1e-3), makeJet(0.4, 0.5, 1e+2)} {
		requireJetsClose(t, a, a.Asin().Sin())
		requireJetsClose(t, a, a.Sin().Asin())
	}
}

func TestFunctions_TrigIdentities(t *testing.T) {
	t.Parallel()

	x := sampleX
	two := constant(2)

	// cos(2x) == cos²x − sin²x
	requireJetsClose(t, two.Mul(x).Cos(), x.Cos().Mul(x.Cos()).Sub(x.Sin().Mul(x.Sin())))
	// sin(2x) == 2·cos x·sin x
	requireJetsClose(t, two.Mul(x).Sin(), two.Mul(x.Cos()).Mul(x.Sin()))
	// cos²x + sin²x == 1
	requireJetsClose(t, constant(1), x.Cos().Mul(x.Cos()).Add(x.Sin().Mul(x.Sin())))
	// tan x == sin x / cos x
	requireJetsClose(t, x.Sin().Div(x.Cos()), x.Tan())
}

func TestFunctions_Atan2RecoversAngle(t *testing.T) {
	t.Parallel()

	theta := makeJet(0.7, -0.3, +1.5)
	r := makeJet(2.3, 0.13, -2.4)

	u := r.Mul(theta.Sin()).Atan2(r.Mul(theta.Cos()))
	requireJetsClose(t, theta, u)
}

func TestFunctions_HyperbolicIdentities(t *testing.T) {
	t.Parallel()

	x, y := sampleX, sampleY

	// cosh²x − sinh²x == 1
	requireJetsClose(t, constant(1), x.Cosh().Mul(x.Cosh()).Sub(x.Sinh().Mul(x.Sinh())))

	// tanh(x+y) == (tanh x + tanh y)/(1 + tanh x·tanh y)
	want := x.Tanh().Add(y.Tanh()).Div(constant(1).Add(x.Tanh().Mul(y.Tanh())))
	requireJetsClose(t, want, x.Add(y).Tanh())
}

func TestFunctions_CbrtExp2Log2(t *testing.T) {
	t.Parallel()

	x, y := sampleX, sampleY

	requireJetsClose(t, x, x.Mul(x).Mul(x).Cbrt())
	c := y.Cbrt()
	requireJetsClose(t, y, c.Mul(c).Mul(c))
	requireJetsClose(t, x.PowFloat(1.0/3.0), x.Cbrt())

	requireJetsClose(t, x.Mul(constant(2).Log()).Exp(), x.Exp2())
	requireJetsClose(t, x.Log().Div(constant(2).Log()), x.Log2())

	// Negative primals have a real cube root.
	n := makeJet(-8, 1, 0).Cbrt()
	require.Equal(t, jet.Float(-2), n.A)
	requireClose(t, 1.0/12.0, float64(n.V[0]), kTolerance)
}

func TestFunctions_HypotIdentities(t *testing.T) {
	t.Parallel()

	x, y := sampleX, sampleY

	requireJetsClose(t, x.Mul(x).Add(y.Mul(y)).Sqrt(), x.Hypot(y))
	requireJetsClose(t, constant(2).Sqrt().Mul(x.Abs()), x.Hypot(x))

	// The derivative is zero tangentially to the circle.
	h := makeJet(2, 1, 1).Hypot(makeJet(2, 1, -1))
	requireJetsClose(t, makeJet(math.Sqrt(8), math.Sqrt(2), 0), h)

	zero := makeJet(0, 2, 3.14)
	requireJetsClose(t, x, x.Hypot(zero))
	requireJetsClose(t, y, zero.Hypot(y))
}

func TestFunctions_HypotNoUnderflowOrOverflow(t *testing.T) {
	t.Parallel()

	dblMin := 0x1p-1022
	require.Equal(t, 0.0, dblMin*dblMin) // squaring underflows
	tiny := makeJet(dblMin, 2, 3.14)
	require.True(t, tiny.Equal(tiny.Hypot(constant(0))))

	huge := makeJet(math.MaxFloat64, 2, 3.14)
	sq := float64(huge.A) * float64(huge.A)
	require.True(t, math.IsInf(sq, 1)) // squaring overflows
	require.True(t, huge.Equal(huge.Hypot(constant(0))))
}

func TestFunctions_HypotAtOriginIsNonFinite(t *testing.T) {
	t.Parallel()

	h := makeJet(0, 1, 0).Hypot(makeJet(0, 0, 1))
	require.Equal(t, jet.Float(0), h.A)
	require.True(t, h.V[0].IsNaN())
	require.True(t, h.V[1].IsNaN())
}

func TestFunctions_Bessel(t *testing.T) {
	t.Parallel()

	zero := constant(0)
	requireJetsClose(t, constant(1), zero.J0())
	requireJetsClose(t, zero, zero.J1())
	requireJetsClose(t, zero, zero.Jn(2))
	requireJetsClose(t, zero, zero.Jn(3))

	z := makeJet(0.1, -2.7, 1e-3)
	requireJetsClose(t, z.J0(), z.Jn(0))
	requireJetsClose(t, z.J1(), z.Jn(1))
	// J0(z) + J2(z) == (2/z)·J1(z)
	requireJetsClose(t, z.J0().Add(z.Jn(2)), jet.ScalarDiv(2, z).Mul(z.J1()))
}

func TestFunctions_FloorCeilDiscardTangent(t *testing.T) {
	t.Parallel()

	for _, a := range []J{makeJet(0.1, -2.7, 1e-3), makeJet(-1.1, -2.7, 1e-3), makeJet(10.123, -2.7, 1e-3)} {
		require.Equal(t, constant(math.Floor(float64(a.A))), a.Floor())
		require.Equal(t, constant(math.Ceil(float64(a.A))), a.Ceil())
	}
}

func TestFunctions_ErfSaturates(t *testing.T) {
	t.Parallel()

	// e^(−a²) is ~1e-45 here: the primal saturates and the tangent all but
	// vanishes.
	a := makeJet(10.123, -2.7, 1e-3)
	erf, erfc := a.Erf(), a.Erfc()
	require.Equal(t, jet.Float(math.Erf(10.123)), erf.A)
	require.Equal(t, jet.Float(math.Erfc(10.123)), erfc.A)
	for i := 0; i < a.Dim(); i++ {
		require.InDelta(t, 0, float64(erf.V[i]), 1e-40)
		require.InDelta(t, 0, float64(erfc.V[i]), 1e-40)
	}
}

func TestFunctions_FmaxFmin(t *testing.T) {
	t.Parallel()

	x, y := sampleX, sampleY // x.A = 2.3 > y.A = 1.7

	requireJetsClose(t, x, x.Fmax(y))
	requireJetsClose(t, x, y.Fmax(x))
	requireJetsClose(t, x, x.FmaxScalar(y.A))
	requireJetsClose(t, constant(2.3), y.FmaxScalar(x.A))
	requireJetsClose(t, constant(2.3), jet.ScalarFmax(x.A, y))
	requireJetsClose(t, x, jet.ScalarFmax(y.A, x))

	requireJetsClose(t, y, x.Fmin(y))
	requireJetsClose(t, y, y.Fmin(x))
	requireJetsClose(t, constant(1.7), x.FminScalar(y.A))
	requireJetsClose(t, y, y.FminScalar(x.A))
	requireJetsClose(t, y, jet.ScalarFmin(x.A, y))
	requireJetsClose(t, constant(1.7), jet.ScalarFmin(y.A, x))
}

func TestFunctions_FmaxFminNaNAndTies(t *testing.T) {
	t.Parallel()

	nan := makeJet(math.NaN(), 1, 1)
	x := sampleX

	require.True(t, x.Fmax(nan).Equal(x))
	require.True(t, nan.Fmax(x).Equal(x))
	require.True(t, x.Fmin(nan).Equal(x))
	require.True(t, nan.Fmin(x).Equal(x))

	tie := makeJet(2.3, 9, 9)
	require.True(t, x.Fmax(tie).Equal(x))
	require.True(t, tie.Fmax(x).Equal(tie))
	require.True(t, x.Fmin(tie).Equal(x))
}

func TestFunctions_AbsFollowsSign(t *testing.T) {
	t.Parallel()

	require.Equal(t, makeJet(1.5, -2, 3), makeJet(-1.5, 2, -3).Abs())
	require.Equal(t, makeJet(1.5, 2, -3), makeJet(1.5, 2, -3).Abs())
}

func TestFunctions_MatchFiniteDifferences(t *testing.T) {
	t.Parallel()

	unary := []struct {
		name string
		f    func(J) J
		at   []float64
	}{
		{"exp", J.Exp, []float64{-1, 0, 0.5, 2}},
		{"log", J.Log, []float64{1e-3, 0.5, 1, 100}},
		{"sqrt", J.Sqrt, []float64{1e-5, 1}},
		{"cbrt", J.Cbrt, []float64{-1, -1e-5, 1e-5, 1}},
		{"exp2", J.Exp2, []float64{-1, -1e-5, -1e-200, 0, 1e-200, 1e-5, 1}},
		{"log2", J.Log2, []float64{1e-5, 1, 100}},
		{"sin", J.Sin, []float64{-2, 0, 0.7}},
		{"cos", J.Cos, []float64{-2, 0, 0.7}},
		{"tan", J.Tan, []float64{-1, 0, 0.7}},
		{"asin", J.Asin, []float64{-0.5, 0, 0.4}},
		{"acos", J.Acos, []float64{-0.5, 0, 0.4}},
		{"atan", J.Atan, []float64{-3, 0, 2}},
		{"sinh", J.Sinh, []float64{-1, 0, 1.5}},
		{"cosh", J.Cosh, []float64{-1, 0.3, 1.5}},
		{"tanh", J.Tanh, []float64{-1, 0, 1.5}},
		{"erf", J.Erf, []float64{-1, 1e-5, 0.5, 100}},
		{"erfc", J.Erfc, []float64{-1, 1e-5, 0.5, 100}},
		{"j0", J.J0, []float64{0.1, 1, 5}},
		{"j1", J.J1, []float64{0.1, 1, 5}},
		{"j3", func(x J) J { return x.Jn(3) }, []float64{0.5, 2, 7}},
	}
	for _, tc := range unary {
		for _, x := range tc.at {
			numericalTest(t, tc.name, tc.f, x)
		}
	}

	hypot := []struct{ x, y float64 }{
		{0, 1e-5}, {-1e-5, 0}, {1e-5, 1e-5}, {0, 1}, {1e-3, 1},
		{1e-3, -1}, {-1e-3, 1}, {-1e-3, -1}, {1, 2},
	}
	for _, p := range hypot {
		numericalTest2(t, "hypot", J.Hypot, p.x, p.y)
	}
	numericalTest2(t, "atan2", J.Atan2, 0.3, -1.2)
	numericalTest2(t, "pow", J.Pow, 1.7, 2.3)
	numericalTest2(t, "div", J.Div, 1.7, -2.3)
}
