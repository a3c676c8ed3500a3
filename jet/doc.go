// SPDX-License-Identifier: MIT

// Package jet implements forward-mode automatic differentiation with a
// dual-number scalar called a Jet.
//
// 🚀 What is a Jet?
//
//	A Jet carries a primal value a and a fixed-length tangent vector v:
//
//	    x = a + v·ε,   εᵢ·εⱼ = 0
//
//	Every arithmetic operation and elementary function applied to a Jet
//	updates v by the chain rule, so after evaluating an expression the
//	tangent holds the exact partial derivatives of the result with respect
//	to the seeded independent variables. No expression graph is recorded.
//
// ✨ Key features:
//   - value semantics: the tangent is an array type parameter ([N]T), so a
//     Jet never allocates and N is fixed at instantiation
//   - full function library: exp/log/sqrt/cbrt/exp2/log2, trigonometric,
//     hyperbolic, erf/erfc, Bessel J0/J1/Jn, hypot, atan2, pow, fmin/fmax
//   - IEEE-754 error policy: invalid inputs produce NaN/±Inf in the primal
//     and/or tangent, never a panic; inspect with IsFinite/IsNaN/IsInf
//   - nesting: Jet[T, D] is itself a Real, so Jet-of-Jet gives second and
//     higher order derivatives
//   - drop-in scalar for the generic lvjet/matrix decompositions
//
// ⚙️ Usage:
//
//	type J = jet.Jet[jet.Float, [2]jet.Float]
//
//	x := jet.Variable[jet.Float, [2]jet.Float](2.3, 0) // ∂/∂x seed
//	y := jet.Variable[jet.Float, [2]jet.Float](1.7, 1) // ∂/∂y seed
//	z := x.Mul(y).Sin()                                // z.V = ∇sin(xy)
//
// Mixed arithmetic with a plain component value uses the …Scalar methods
// (x.AddScalar(1)) or the Scalar… functions for the scalar-on-the-left
// position (jet.ScalarSub(1, x)).
package jet
