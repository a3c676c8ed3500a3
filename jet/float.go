// SPDX-License-Identifier: MIT

package jet

import (
	"cmp"
	"math"
	"strconv"
)

// Float is the float64 leaf scalar of every Jet. It is a thin method set
// over the math package so that float64 satisfies Real.
type Float float64

func (Float) Lift(c float64) Float { return Float(c) }
func (f Float) Float() float64     { return float64(f) }

func (f Float) Add(g Float) Float     { return f + g }
func (f Float) Sub(g Float) Float     { return f - g }
func (f Float) Mul(g Float) Float     { return f * g }
func (f Float) Div(g Float) Float     { return f / g }
func (f Float) Neg() Float            { return -f }
func (f Float) Scale(c float64) Float { return f * Float(c) }

func (f Float) Equal(g Float) bool { return f == g }

// Cmp follows cmp.Compare: NaN sorts before every other value.
func (f Float) Cmp(g Float) int { return cmp.Compare(f, g) }

func (f Float) Exp() Float          { return Float(math.Exp(float64(f))) }
func (f Float) Exp2() Float         { return Float(math.Exp2(float64(f))) }
func (f Float) Log() Float          { return Float(math.Log(float64(f))) }
func (f Float) Log2() Float         { return Float(math.Log2(float64(f))) }
func (f Float) Sqrt() Float         { return Float(math.Sqrt(float64(f))) }
func (f Float) Cbrt() Float         { return Float(math.Cbrt(float64(f))) }
func (f Float) Sin() Float          { return Float(math.Sin(float64(f))) }
func (f Float) Cos() Float          { return Float(math.Cos(float64(f))) }
func (f Float) Tan() Float          { return Float(math.Tan(float64(f))) }
func (f Float) Asin() Float         { return Float(math.Asin(float64(f))) }
func (f Float) Acos() Float         { return Float(math.Acos(float64(f))) }
func (f Float) Atan() Float         { return Float(math.Atan(float64(f))) }
func (f Float) Atan2(x Float) Float { return Float(math.Atan2(float64(f), float64(x))) }
func (f Float) Sinh() Float         { return Float(math.Sinh(float64(f))) }
func (f Float) Cosh() Float         { return Float(math.Cosh(float64(f))) }
func (f Float) Tanh() Float         { return Float(math.Tanh(float64(f))) }
func (f Float) Abs() Float          { return Float(math.Abs(float64(f))) }
func (f Float) Floor() Float        { return Float(math.Floor(float64(f))) }
func (f Float) Ceil() Float         { return Float(math.Ceil(float64(f))) }
func (f Float) Erf() Float          { return Float(math.Erf(float64(f))) }
func (f Float) Erfc() Float         { return Float(math.Erfc(float64(f))) }
func (f Float) J0() Float           { return Float(math.J0(float64(f))) }
func (f Float) J1() Float           { return Float(math.J1(float64(f))) }
func (f Float) Jn(n int) Float      { return Float(math.Jn(n, float64(f))) }
func (f Float) Hypot(g Float) Float { return Float(math.Hypot(float64(f), float64(g))) }
func (f Float) Pow(g Float) Float   { return Float(math.Pow(float64(f), float64(g))) }

func (f Float) IsNaN() bool    { return math.IsNaN(float64(f)) }
func (f Float) IsInf() bool    { return math.IsInf(float64(f), 0) }
func (f Float) IsFinite() bool { return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0) }

// IsNormal reports whether f is a normal float: not zero, subnormal,
// infinite or NaN.
func (f Float) IsNormal() bool {
	a := math.Abs(float64(f))
	return a >= minNormal && a <= math.MaxFloat64
}

func (f Float) String() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }
