// SPDX-License-Identifier: MIT

package jet

// The predicates below inspect the whole value: the primal and every
// tangent component, recursively for nested Jets. IsNaN and IsInf are
// independent and may both hold at once.

// IsNaN reports whether any component is NaN.
func (x Jet[T, D]) IsNaN() bool {
	if x.A.IsNaN() {
		return true
	}
	for i := 0; i < len(x.V); i++ {
		if x.V[i].IsNaN() {
			return true
		}
	}

	return false
}

// IsInf reports whether any component is ±Inf.
func (x Jet[T, D]) IsInf() bool {
	if x.A.IsInf() {
		return true
	}
	for i := 0; i < len(x.V); i++ {
		if x.V[i].IsInf() {
			return true
		}
	}

	return false
}

// IsFinite reports whether every component is finite, i.e. neither IsNaN
// nor IsInf holds.
func (x Jet[T, D]) IsFinite() bool {
	if !x.A.IsFinite() {
		return false
	}
	for i := 0; i < len(x.V); i++ {
		if !x.V[i].IsFinite() {
			return false
		}
	}

	return true
}

// IsNormal reports whether every component is a normal float: non-zero,
// not subnormal, finite.
func (x Jet[T, D]) IsNormal() bool {
	if !x.A.IsNormal() {
		return false
	}
	for i := 0; i < len(x.V); i++ {
		if !x.V[i].IsNormal() {
			return false
		}
	}

	return true
}
