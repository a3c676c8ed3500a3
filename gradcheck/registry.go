// SPDX-License-Identifier: MIT

package gradcheck

import "github.com/katalvlaran/lvjet/jet"

// J is the Jet every probe runs on: float64 components, two tangent slots,
// one per argument of a binary function.
type J = jet.Jet[jet.Float, [2]jet.Float]

// Unary is a differentiable function of one Jet.
type Unary func(x J) J

// Binary is a differentiable function of two Jets.
type Binary func(x, y J) J

// Functions returns a fresh name → function map of every unary function
// in package jet. Names follow the C math library.
func Functions() map[string]Unary {
	return map[string]Unary{
		"exp":   J.Exp,
		"exp2":  J.Exp2,
		"log":   J.Log,
		"log2":  J.Log2,
		"sqrt":  J.Sqrt,
		"cbrt":  J.Cbrt,
		"sin":   J.Sin,
		"cos":   J.Cos,
		"tan":   J.Tan,
		"asin":  J.Asin,
		"acos":  J.Acos,
		"atan":  J.Atan,
		"sinh":  J.Sinh,
		"cosh":  J.Cosh,
		"tanh":  J.Tanh,
		"abs":   J.Abs,
		"floor": J.Floor,
		"ceil":  J.Ceil,
		"erf":   J.Erf,
		"erfc":  J.Erfc,
		"j0":    J.J0,
		"j1":    J.J1,
		"j2":    func(x J) J { return x.Jn(2) },
		"j3":    func(x J) J { return x.Jn(3) },
		"neg":   J.Neg,
		"sq":    func(x J) J { return x.Mul(x) },
		"inv":   func(x J) J { return jet.ScalarDiv(1, x) },
	}
}

// Binaries returns a fresh name → function map of every two-argument
// function in package jet. atan2 takes (y, x) like its C namesake.
func Binaries() map[string]Binary {
	return map[string]Binary{
		"add":   J.Add,
		"sub":   J.Sub,
		"mul":   J.Mul,
		"div":   J.Div,
		"pow":   J.Pow,
		"atan2": J.Atan2,
		"hypot": J.Hypot,
		"fmin":  J.Fmin,
		"fmax":  J.Fmax,
	}
}
