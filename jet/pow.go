// SPDX-License-Identifier: MIT

package jet

import "math"

// Pow returns xʸ with both operands differentiable.
//
// The generic rule d(xʸ) = y·xʸ⁻¹·dx + xʸ·ln x·dy needs ln x, so the
// primal of the base selects a branch:
//
//	x > 0                 general rule
//	x == 0, y > 1         0 with a zero tangent
//	x == 0, y == 1        x unchanged
//	x == 0, y < 1         general rule; tangent is non-finite (0ʸ with
//	                      y ≤ 0 also has a non-finite or unit primal)
//	x < 0,  y integral    xʸ with the base contribution y·xʸ⁻¹·dx; slots
//	                      where dy ≠ 0 are NaN
//	x < 0,  y fractional  general rule; everything is NaN
func (x Jet[T, D]) Pow(y Jet[T, D]) Jet[T, D] {
	f, g := x.Float(), y.Float()
	if f == 0 && g >= 1 {
		if g > 1 {
			return Jet[T, D]{}
		}
		return x
	}

	one := lift[T](1)
	p := x.A.Pow(y.A)
	dx := y.A.Mul(x.A.Pow(y.A.Sub(one)))

	if f < 0 && g == math.Floor(g) {
		out := x.scaleTangent(p, dx)
		var zero T
		for i := 0; i < len(y.V); i++ {
			if !y.V[i].Equal(zero) {
				out.V[i] = lift[T](math.NaN())
			}
		}
		return out
	}

	dy := p.Mul(x.A.Log())
	out := Jet[T, D]{A: p}
	for i := 0; i < len(x.V); i++ {
		out.V[i] = dx.Mul(x.V[i]).Add(dy.Mul(y.V[i]))
	}

	return out
}

// PowScalar returns xᵍ for a constant exponent g: (xᵍ, g·xᵍ⁻¹·v).
// A zero base with g == 1 returns x unchanged; with g > 1 the tangent is
// zero. Other zero-base and negative-base cases follow IEEE pow.
func (x Jet[T, D]) PowScalar(g T) Jet[T, D] {
	f, e := x.Float(), g.Float()
	if f == 0 && e >= 1 {
		if e > 1 {
			return Jet[T, D]{}
		}
		return x
	}

	return x.scaleTangent(x.A.Pow(g), g.Mul(x.A.Pow(g.Sub(lift[T](1)))))
}

// PowFloat returns xᵖ for a plain float64 exponent.
func (x Jet[T, D]) PowFloat(p float64) Jet[T, D] { return x.PowScalar(lift[T](p)) }

// PowScalarBase returns fʸ for a constant base f: (fʸ, fʸ·ln f·v).
//
// A zero base with a positive exponent yields 0 with a zero tangent. A
// negative base with an integral exponent yields the real power, with NaN
// in every slot the exponent depends on. Everything else follows the
// generic rule, so a zero base with y ≤ 0 or a negative base with a
// fractional exponent gives non-finite components.
func PowScalarBase[T Real[T], D Tangent[T]](f T, y Jet[T, D]) Jet[T, D] {
	b, g := f.Float(), y.Float()
	if b == 0 && g > 0 {
		return Jet[T, D]{}
	}

	p := f.Pow(y.A)
	if b < 0 && g == math.Floor(g) {
		out := Jet[T, D]{A: p}
		var zero T
		for i := 0; i < len(y.V); i++ {
			if !y.V[i].Equal(zero) {
				out.V[i] = lift[T](math.NaN())
			}
		}
		return out
	}

	return y.scaleTangent(p, f.Log().Mul(p))
}
