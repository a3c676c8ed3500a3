// SPDX-License-Identifier: MIT

package jet

import "math"

// Every function f below maps (a, v) to (f(a), f'(a)·v) unless noted.
// Domain errors are not reported: they surface as NaN/±Inf components.

// Exp returns eˣ.
func (x Jet[T, D]) Exp() Jet[T, D] {
	e := x.A.Exp()
	return x.scaleTangent(e, e)
}

// Exp2 returns 2ˣ.
func (x Jet[T, D]) Exp2() Jet[T, D] {
	e := x.A.Exp2()
	return x.scaleTangent(e, e.Scale(Ln2))
}

// Log returns ln x.
func (x Jet[T, D]) Log() Jet[T, D] {
	return x.scaleTangent(x.A.Log(), lift[T](1).Div(x.A))
}

// Log2 returns log₂ x.
func (x Jet[T, D]) Log2() Jet[T, D] {
	return x.scaleTangent(x.A.Log2(), lift[T](1).Div(x.A.Scale(Ln2)))
}

// Sqrt returns √x. At a zero primal the tangent is ±Inf or NaN.
func (x Jet[T, D]) Sqrt() Jet[T, D] {
	s := x.A.Sqrt()
	return x.scaleTangent(s, lift[T](1).Div(s.Scale(2)))
}

// Cbrt returns the real cube root of x; negative primals are allowed.
func (x Jet[T, D]) Cbrt() Jet[T, D] {
	c := x.A.Cbrt()
	return x.scaleTangent(c, lift[T](1).Div(c.Mul(c).Scale(3)))
}

func (x Jet[T, D]) Sin() Jet[T, D] {
	return x.scaleTangent(x.A.Sin(), x.A.Cos())
}

func (x Jet[T, D]) Cos() Jet[T, D] {
	return x.scaleTangent(x.A.Cos(), x.A.Sin().Neg())
}

// Tan returns tan x with derivative 1 + tan²x.
func (x Jet[T, D]) Tan() Jet[T, D] {
	t := x.A.Tan()
	return x.scaleTangent(t, lift[T](1).Add(t.Mul(t)))
}

// Asin returns asin x with derivative 1/√(1−x²).
func (x Jet[T, D]) Asin() Jet[T, D] {
	one := lift[T](1)
	return x.scaleTangent(x.A.Asin(), one.Div(one.Sub(x.A.Mul(x.A)).Sqrt()))
}

// Acos returns acos x with derivative −1/√(1−x²).
func (x Jet[T, D]) Acos() Jet[T, D] {
	one := lift[T](1)
	return x.scaleTangent(x.A.Acos(), one.Div(one.Sub(x.A.Mul(x.A)).Sqrt()).Neg())
}

// Atan returns atan x with derivative 1/(1+x²).
func (x Jet[T, D]) Atan() Jet[T, D] {
	one := lift[T](1)
	return x.scaleTangent(x.A.Atan(), one.Div(one.Add(x.A.Mul(x.A))))
}

// Atan2 returns atan2(y, x) where y is the receiver. Both operands
// contribute: ∂/∂y = x/(x²+y²), ∂/∂x = −y/(x²+y²).
func (y Jet[T, D]) Atan2(x Jet[T, D]) Jet[T, D] {
	inv := lift[T](1).Div(x.A.Mul(x.A).Add(y.A.Mul(y.A)))
	out := Jet[T, D]{A: y.A.Atan2(x.A)}
	for i := 0; i < len(y.V); i++ {
		out.V[i] = inv.Mul(x.A.Mul(y.V[i]).Sub(y.A.Mul(x.V[i])))
	}

	return out
}

func (x Jet[T, D]) Sinh() Jet[T, D] {
	return x.scaleTangent(x.A.Sinh(), x.A.Cosh())
}

func (x Jet[T, D]) Cosh() Jet[T, D] {
	return x.scaleTangent(x.A.Cosh(), x.A.Sinh())
}

// Tanh returns tanh x with derivative 1 − tanh²x.
func (x Jet[T, D]) Tanh() Jet[T, D] {
	t := x.A.Tanh()
	return x.scaleTangent(t, lift[T](1).Sub(t.Mul(t)))
}

// Abs returns -x when the primal is negative and x otherwise, so the
// tangent is multiplied by sign(a).
func (x Jet[T, D]) Abs() Jet[T, D] {
	if x.Float() < 0 {
		return x.Neg()
	}

	return x
}

// Floor returns floor(a) with a zero tangent: incoming derivative
// information is discarded.
func (x Jet[T, D]) Floor() Jet[T, D] { return Jet[T, D]{A: x.A.Floor()} }

// Ceil returns ceil(a) with a zero tangent.
func (x Jet[T, D]) Ceil() Jet[T, D] { return Jet[T, D]{A: x.A.Ceil()} }

// Erf returns the error function with derivative (2/√π)·e^(−x²).
func (x Jet[T, D]) Erf() Jet[T, D] {
	return x.scaleTangent(x.A.Erf(), x.A.Mul(x.A).Neg().Exp().Scale(TwoOverSqrtPi))
}

// Erfc returns the complementary error function, derivative −(2/√π)·e^(−x²).
func (x Jet[T, D]) Erfc() Jet[T, D] {
	return x.scaleTangent(x.A.Erfc(), x.A.Mul(x.A).Neg().Exp().Scale(-TwoOverSqrtPi))
}

// J0 is the order-zero Bessel function of the first kind; J0′ = −J1.
func (x Jet[T, D]) J0() Jet[T, D] {
	return x.scaleTangent(x.A.J0(), x.A.J1().Neg())
}

// J1 is the order-one Bessel function of the first kind; J1′ = ½(J0 − J2).
func (x Jet[T, D]) J1() Jet[T, D] {
	return x.scaleTangent(x.A.J1(), x.A.J0().Sub(x.A.Jn(2)).Scale(0.5))
}

// Jn is the order-n Bessel function of the first kind;
// Jn′ = ½(Jₙ₋₁ − Jₙ₊₁).
func (x Jet[T, D]) Jn(n int) Jet[T, D] {
	return x.scaleTangent(x.A.Jn(n), x.A.Jn(n-1).Sub(x.A.Jn(n+1)).Scale(0.5))
}

// Hypot returns √(x²+y²) without intermediate overflow or underflow; the
// primal comes from the component Hypot. The tangent is x/h·dx + y/h·dy,
// which is NaN when both primals are zero.
func (x Jet[T, D]) Hypot(y Jet[T, D]) Jet[T, D] {
	h := x.A.Hypot(y.A)
	dx, dy := x.A.Div(h), y.A.Div(h)
	out := Jet[T, D]{A: h}
	for i := 0; i < len(x.V); i++ {
		out.V[i] = dx.Mul(x.V[i]).Add(dy.Mul(y.V[i]))
	}

	return out
}

// Fmax returns whichever argument has the greater primal, whole. If exactly
// one primal is NaN the other argument is returned; ties return x.
func (x Jet[T, D]) Fmax(y Jet[T, D]) Jet[T, D] {
	a, b := x.Float(), y.Float()
	switch {
	case math.IsNaN(a):
		return y
	case math.IsNaN(b):
		return x
	case a < b:
		return y
	}

	return x
}

// Fmin returns whichever argument has the lesser primal, whole. NaN and
// tie handling mirror Fmax.
func (x Jet[T, D]) Fmin(y Jet[T, D]) Jet[T, D] {
	a, b := x.Float(), y.Float()
	switch {
	case math.IsNaN(a):
		return y
	case math.IsNaN(b):
		return x
	case b < a:
		return y
	}

	return x
}

// FmaxScalar returns fmax(x, s); a winning s has a zero tangent.
func (x Jet[T, D]) FmaxScalar(s T) Jet[T, D] { return x.Fmax(Jet[T, D]{A: s}) }

// FminScalar returns fmin(x, s); a winning s has a zero tangent.
func (x Jet[T, D]) FminScalar(s T) Jet[T, D] { return x.Fmin(Jet[T, D]{A: s}) }

// ScalarFmax returns fmax(s, x).
func ScalarFmax[T Real[T], D Tangent[T]](s T, x Jet[T, D]) Jet[T, D] {
	return Jet[T, D]{A: s}.Fmax(x)
}

// ScalarFmin returns fmin(s, x).
func ScalarFmin[T Real[T], D Tangent[T]](s T, x Jet[T, D]) Jet[T, D] {
	return Jet[T, D]{A: s}.Fmin(x)
}
