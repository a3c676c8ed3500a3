// SPDX-License-Identifier: MIT

package jet

// Add returns x + y.
func (x Jet[T, D]) Add(y Jet[T, D]) Jet[T, D] {
	out := Jet[T, D]{A: x.A.Add(y.A)}
	for i := 0; i < len(x.V); i++ {
		out.V[i] = x.V[i].Add(y.V[i])
	}

	return out
}

// Sub returns x - y.
func (x Jet[T, D]) Sub(y Jet[T, D]) Jet[T, D] {
	out := Jet[T, D]{A: x.A.Sub(y.A)}
	for i := 0; i < len(x.V); i++ {
		out.V[i] = x.V[i].Sub(y.V[i])
	}

	return out
}

// Mul returns x·y by the product rule: (a·b, a·v + b·u).
func (x Jet[T, D]) Mul(y Jet[T, D]) Jet[T, D] {
	out := Jet[T, D]{A: x.A.Mul(y.A)}
	for i := 0; i < len(x.V); i++ {
		out.V[i] = x.A.Mul(y.V[i]).Add(y.A.Mul(x.V[i]))
	}

	return out
}

// Div returns x/y by the quotient rule: (a/b, (u - (a/b)·v)/b).
// Division by a zero primal follows IEEE semantics per component.
func (x Jet[T, D]) Div(y Jet[T, D]) Jet[T, D] {
	inv := lift[T](1).Div(y.A)
	q := x.A.Div(y.A)
	out := Jet[T, D]{A: q}
	for i := 0; i < len(x.V); i++ {
		out.V[i] = x.V[i].Sub(q.Mul(y.V[i])).Mul(inv)
	}

	return out
}

// Neg returns -x.
func (x Jet[T, D]) Neg() Jet[T, D] {
	out := Jet[T, D]{A: x.A.Neg()}
	for i := 0; i < len(x.V); i++ {
		out.V[i] = x.V[i].Neg()
	}

	return out
}

// Scale returns c·x for a plain float64 c.
func (x Jet[T, D]) Scale(c float64) Jet[T, D] {
	out := Jet[T, D]{A: x.A.Scale(c)}
	for i := 0; i < len(x.V); i++ {
		out.V[i] = x.V[i].Scale(c)
	}

	return out
}

// scaleTangent returns (a, s·x.V).
func (x Jet[T, D]) scaleTangent(a, s T) Jet[T, D] {
	out := Jet[T, D]{A: a}
	for i := 0; i < len(x.V); i++ {
		out.V[i] = s.Mul(x.V[i])
	}

	return out
}

// ---------- Jet ∘ scalar ----------

// AddScalar returns x + s.
func (x Jet[T, D]) AddScalar(s T) Jet[T, D] {
	x.A = x.A.Add(s)
	return x
}

// SubScalar returns x - s.
func (x Jet[T, D]) SubScalar(s T) Jet[T, D] {
	x.A = x.A.Sub(s)
	return x
}

// MulScalar returns x·s.
func (x Jet[T, D]) MulScalar(s T) Jet[T, D] {
	return x.scaleTangent(x.A.Mul(s), s)
}

// DivScalar returns x/s.
func (x Jet[T, D]) DivScalar(s T) Jet[T, D] {
	inv := lift[T](1).Div(s)
	return x.scaleTangent(x.A.Mul(inv), inv)
}

// ---------- scalar ∘ Jet ----------

// ScalarAdd returns s + x.
func ScalarAdd[T Real[T], D Tangent[T]](s T, x Jet[T, D]) Jet[T, D] {
	x.A = s.Add(x.A)
	return x
}

// ScalarSub returns s - x.
func ScalarSub[T Real[T], D Tangent[T]](s T, x Jet[T, D]) Jet[T, D] {
	out := x.Neg()
	out.A = s.Sub(x.A)

	return out
}

// ScalarMul returns s·x.
func ScalarMul[T Real[T], D Tangent[T]](s T, x Jet[T, D]) Jet[T, D] {
	return x.scaleTangent(s.Mul(x.A), s)
}

// ScalarDiv returns s/x: (s/a, -s/a²·v).
func ScalarDiv[T Real[T], D Tangent[T]](s T, x Jet[T, D]) Jet[T, D] {
	inv := lift[T](1).Div(x.A)
	return x.scaleTangent(s.Mul(inv), s.Neg().Mul(inv).Mul(inv))
}

// ---------- compound assignment ----------

// AddAssign sets *x = *x + y.
func (x *Jet[T, D]) AddAssign(y Jet[T, D]) { *x = x.Add(y) }

// SubAssign sets *x = *x - y.
func (x *Jet[T, D]) SubAssign(y Jet[T, D]) { *x = x.Sub(y) }

// MulAssign sets *x = *x · y.
func (x *Jet[T, D]) MulAssign(y Jet[T, D]) { *x = x.Mul(y) }

// DivAssign sets *x = *x / y.
func (x *Jet[T, D]) DivAssign(y Jet[T, D]) { *x = x.Div(y) }

func (x *Jet[T, D]) AddAssignScalar(s T) { *x = x.AddScalar(s) }
func (x *Jet[T, D]) SubAssignScalar(s T) { *x = x.SubScalar(s) }
func (x *Jet[T, D]) MulAssignScalar(s T) { *x = x.MulScalar(s) }
func (x *Jet[T, D]) DivAssignScalar(s T) { *x = x.DivScalar(s) }
