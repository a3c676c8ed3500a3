// SPDX-License-Identifier: MIT

package jet

import (
	"cmp"
	"fmt"
	"strings"
)

// panicVariableIndex is raised by Variable for an out-of-range seed index.
const panicVariableIndex = "jet: Variable: seed index %d out of range [0,%d)"

// Jet is a dual number a + v·ε with an N-dimensional tangent, where N is
// the length of the array type D. T is the component scalar: Float for
// first-order derivatives, another Jet for higher orders.
//
// The zero value is the constant 0. Jets are plain values; copying one
// copies its tangent.
type Jet[T Real[T], D Tangent[T]] struct {
	A T // primal value
	V D // tangent: V[i] = ∂A/∂xᵢ
}

// Const returns the constant a with an all-zero tangent.
func Const[T Real[T], D Tangent[T]](a T) Jet[T, D] {
	return Jet[T, D]{A: a}
}

// Variable returns a seeded as independent variable k: V[k] = 1 and every
// other tangent component is zero. Panics if k is not in [0, N).
func Variable[T Real[T], D Tangent[T]](a T, k int) Jet[T, D] {
	x := Jet[T, D]{A: a}
	if k < 0 || k >= len(x.V) {
		panic(fmt.Sprintf(panicVariableIndex, k, len(x.V)))
	}
	x.V[k] = lift[T](1)

	return x
}

// New returns the Jet with primal a and tangent v.
func New[T Real[T], D Tangent[T]](a T, v D) Jet[T, D] {
	return Jet[T, D]{A: a, V: v}
}

// Dim returns N, the number of tangent components.
func (x Jet[T, D]) Dim() int { return len(x.V) }

// Lift returns the constant c with an all-zero tangent.
func (_ Jet[T, D]) Lift(c float64) Jet[T, D] {
	return Jet[T, D]{A: lift[T](c)}
}

// Float returns the innermost float64 primal value.
func (x Jet[T, D]) Float() float64 { return x.A.Float() }

// Equal reports whether the primal and every tangent component are
// exactly equal. No tolerance is applied.
func (x Jet[T, D]) Equal(y Jet[T, D]) bool {
	if !x.A.Equal(y.A) {
		return false
	}
	for i := 0; i < len(x.V); i++ {
		if !x.V[i].Equal(y.V[i]) {
			return false
		}
	}

	return true
}

// Cmp compares primal values only; tangents never influence ordering.
func (x Jet[T, D]) Cmp(y Jet[T, D]) int { return cmp.Compare(x.Float(), y.Float()) }

// CmpScalar compares the primal of x with s.
func (x Jet[T, D]) CmpScalar(s T) int { return cmp.Compare(x.Float(), s.Float()) }

func (x Jet[T, D]) Less(y Jet[T, D]) bool      { return x.Float() < y.Float() }
func (x Jet[T, D]) LessEq(y Jet[T, D]) bool    { return x.Float() <= y.Float() }
func (x Jet[T, D]) Greater(y Jet[T, D]) bool   { return x.Float() > y.Float() }
func (x Jet[T, D]) GreaterEq(y Jet[T, D]) bool { return x.Float() >= y.Float() }

func (x Jet[T, D]) LessScalar(s T) bool      { return x.Float() < s.Float() }
func (x Jet[T, D]) LessEqScalar(s T) bool    { return x.Float() <= s.Float() }
func (x Jet[T, D]) GreaterScalar(s T) bool   { return x.Float() > s.Float() }
func (x Jet[T, D]) GreaterEqScalar(s T) bool { return x.Float() >= s.Float() }

// String renders the Jet as "[a ; v0, v1, …]" for diagnostics. The format
// is not meant to be parsed.
func (x Jet[T, D]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(x.A.String())
	sb.WriteString(" ; ")
	for i := 0; i < len(x.V); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(x.V[i].String())
	}
	sb.WriteByte(']')

	return sb.String()
}
