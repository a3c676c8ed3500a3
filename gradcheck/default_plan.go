// SPDX-License-Identifier: MIT

package gradcheck

// DefaultPlan returns the reference probe set: every registered function at
// points that stress small arguments, both signs and saturation, chosen
// away from discontinuities and ties. It uses the default step and
// tolerance.
func DefaultPlan() Plan {
	return Plan{
		Probes: []Probe{
			{Fn: "exp", At: []float64{-1, 0, 0.5, 2}},
			{Fn: "log", At: []float64{1e-3, 0.5, 1, 100}},
			{Fn: "sqrt", At: []float64{1e-5, 1}},
			{Fn: "cbrt", At: []float64{-1, -1e-5, 1e-5, 1}},
			{Fn: "exp2", At: []float64{-1, -1e-5, -1e-200, 0, 1e-200, 1e-5, 1}},
			{Fn: "log2", At: []float64{1e-5, 1, 100}},
			{Fn: "sin", At: []float64{-2, 0, 0.7}},
			{Fn: "cos", At: []float64{-2, 0, 0.7}},
			{Fn: "tan", At: []float64{-1, 0, 0.7}},
			{Fn: "asin", At: []float64{-0.5, 0, 0.4}},
			{Fn: "acos", At: []float64{-0.5, 0, 0.4}},
			{Fn: "atan", At: []float64{-3, 0, 2}},
			{Fn: "sinh", At: []float64{-1, 0, 1.5}},
			{Fn: "cosh", At: []float64{-1, 0.3, 1.5}},
			{Fn: "tanh", At: []float64{-1, 0, 1.5}},
			{Fn: "abs", At: []float64{-2, 3}},
			{Fn: "floor", At: []float64{-1.5, 0.5}},
			{Fn: "ceil", At: []float64{-1.5, 0.5}},
			{Fn: "erf", At: []float64{-1, 1e-5, 0.5, 100}},
			{Fn: "erfc", At: []float64{-1, 1e-5, 0.5, 100}},
			{Fn: "j0", At: []float64{0.1, 1, 5}},
			{Fn: "j1", At: []float64{0.1, 1, 5}},
			{Fn: "j2", At: []float64{0.5, 2, 7}},
			{Fn: "j3", At: []float64{0.5, 2, 7}},
			{Fn: "neg", At: []float64{-1, 2}},
			{Fn: "sq", At: []float64{-1.5, 3}},
			{Fn: "inv", At: []float64{-4, 2}},

			{
				Fn:   "hypot",
				At:   []float64{0, -1e-5, 1e-5, 0, 1e-3, 1e-3, -1e-3, -1e-3, 1},
				With: []float64{1e-5, 0, 1e-5, 1, 1, -1, 1, -1, 2},
			},
			{Fn: "atan2", At: []float64{0.3, -0.3}, With: []float64{-1.2, 2}},
			{Fn: "pow", At: []float64{1.7, 0.5}, With: []float64{2.3, -1.5}},
			{Fn: "add", At: []float64{1.5}, With: []float64{-2}},
			{Fn: "sub", At: []float64{1.5}, With: []float64{-2}},
			{Fn: "mul", At: []float64{1.5}, With: []float64{-2}},
			{Fn: "div", At: []float64{1.7}, With: []float64{-2.3}},
			{Fn: "fmin", At: []float64{1, 3}, With: []float64{2, -1}},
			{Fn: "fmax", At: []float64{1, 3}, With: []float64{2, -1}},
		},
	}
}
