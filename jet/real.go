// SPDX-License-Identifier: MIT

package jet

import "math"

// Constants used by the derivative rules.
const (
	// E is Euler's number.
	E = math.E

	// Ln2 is the natural logarithm of 2 (d/dx 2ˣ = Ln2·2ˣ).
	Ln2 = math.Ln2

	// TwoOverSqrtPi is 2/√π (d/dx erf(x) = TwoOverSqrtPi·e^(−x²)).
	TwoOverSqrtPi = 2 / math.SqrtPi

	// minNormal is the smallest positive normal float64.
	minNormal = 0x1p-1022
)

// Real is the capability set shared by every scalar the Jet machinery can
// operate on. Float implements it for float64 and every Jet[T, D]
// implements it for itself, which is what makes nesting work.
//
// The zero value of a Real must be its additive identity.
type Real[T any] interface {
	// Lift returns the constant c. The receiver is only a type witness.
	Lift(c float64) T
	// Float returns the innermost float64 primal value.
	Float() float64

	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Neg() T
	// Scale multiplies every component by the plain constant c.
	Scale(c float64) T

	// Equal reports exact component-wise equality.
	Equal(T) bool
	// Cmp orders by primal value only.
	Cmp(T) int

	Exp() T
	Exp2() T
	Log() T
	Log2() T
	Sqrt() T
	Cbrt() T
	Sin() T
	Cos() T
	Tan() T
	Asin() T
	Acos() T
	Atan() T
	// Atan2 returns atan2(receiver, x).
	Atan2(x T) T
	Sinh() T
	Cosh() T
	Tanh() T
	Abs() T
	Floor() T
	Ceil() T
	Erf() T
	Erfc() T
	J0() T
	J1() T
	Jn(n int) T
	Hypot(T) T
	Pow(T) T

	IsNaN() bool
	IsInf() bool
	IsFinite() bool
	IsNormal() bool

	String() string
}

// Tangent is the set of fixed-length arrays usable as a tangent vector.
type Tangent[T any] interface {
	~[1]T | ~[2]T | ~[3]T | ~[4]T | ~[5]T | ~[6]T | ~[7]T | ~[8]T |
		~[9]T | ~[10]T | ~[11]T | ~[12]T | ~[13]T | ~[14]T | ~[15]T | ~[16]T
}

// lift returns the constant c as a T.
func lift[T Real[T]](c float64) T {
	var z T
	return z.Lift(c)
}

var (
	_ Real[Float]                = Float(0)
	_ Real[Jet[Float, [2]Float]] = Jet[Float, [2]Float]{}
)
