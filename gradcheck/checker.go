// SPDX-License-Identifier: MIT

package gradcheck

import (
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/lvjet/jet"
)

const (
	opCheckUnary  = "CheckUnary"
	opCheckBinary = "CheckBinary"
	opCheckAll    = "CheckAll"
	opLoadPlan    = "LoadPlan"
)

// Result is the outcome of one probe.
type Result struct {
	Fn        string
	At        []float64 // x, or x and y
	Exact     []float64 // Jet partials, one per argument
	Estimated []float64 // central-difference partials, one per argument
	OK        bool
}

// Checker compares Jet derivatives with central differences. It holds no
// mutable state and is safe for concurrent use.
type Checker struct {
	opts options
}

// New returns a Checker configured by opts.
func New(opts ...Option) *Checker {
	return &Checker{opts: gatherOptions(opts...)}
}

func seeded(a float64, k int) J { return jet.Variable[jet.Float, [2]jet.Float](jet.Float(a), k) }

func constant(a float64) J { return jet.Const[jet.Float, [2]jet.Float](jet.Float(a)) }

// central estimates g'(x) with gonum's central-difference formula.
func (c *Checker) central(g func(float64) float64, x float64) float64 {
	return fd.Derivative(g, x, &fd.Settings{Formula: fd.Central, Step: c.opts.step})
}

func (c *Checker) within(exact, estimated float64) bool {
	return scalar.EqualWithinAbsOrRel(exact, estimated, c.opts.tolerance, c.opts.tolerance)
}

// CheckUnary probes f at x. A derivative outside the tolerance yields a
// *MismatchError; the Result is returned either way.
func (c *Checker) CheckUnary(name string, f Unary, x float64) (Result, error) {
	exact := float64(f(seeded(x, 0)).V[0])
	estimated := c.central(func(v float64) float64 { return float64(f(constant(v)).A) }, x)

	res := Result{
		Fn:        name,
		At:        []float64{x},
		Exact:     []float64{exact},
		Estimated: []float64{estimated},
		OK:        c.within(exact, estimated),
	}
	c.log(res)
	if !res.OK {
		return res, gradcheckErrorf(opCheckUnary, &MismatchError{
			Fn: name, At: res.At, Arg: 0,
			Exact: exact, Estimated: estimated, Tolerance: c.opts.tolerance,
		})
	}

	return res, nil
}

// CheckBinary probes f at (x, y). Besides comparing both partials with
// central differences it verifies that ∂f/∂x and ∂f/∂y come out bit-for-bit
// identical whichever tangent slot the seed occupies.
func (c *Checker) CheckBinary(name string, f Binary, x, y float64) (Result, error) {
	both := f(seeded(x, 0), seeded(y, 1))
	dx, dy := both.V[0], both.V[1]

	res := Result{Fn: name, At: []float64{x, y}, Exact: []float64{float64(dx), float64(dy)}}

	slots := [4]struct {
		got, want jet.Float
		label     string
	}{
		{f(seeded(x, 0), constant(y)).V[0], dx, "∂/∂x in slot 0"},
		{f(seeded(x, 1), constant(y)).V[1], dx, "∂/∂x in slot 1"},
		{f(constant(x), seeded(y, 0)).V[0], dy, "∂/∂y in slot 0"},
		{f(constant(x), seeded(y, 1)).V[1], dy, "∂/∂y in slot 1"},
	}
	for _, s := range slots {
		if !sameFloat(s.got, s.want) {
			c.log(res)
			return res, gradcheckErrorf(opCheckBinary,
				fmt.Errorf("%s(%g, %g): %s: got %.17g, want %.17g: %w", name, x, y, s.label, s.got, s.want, ErrSlotAsymmetry))
		}
	}

	estDx := c.central(func(v float64) float64 { return float64(f(constant(v), constant(y)).A) }, x)
	estDy := c.central(func(v float64) float64 { return float64(f(constant(x), constant(v)).A) }, y)
	res.Estimated = []float64{estDx, estDy}
	res.OK = c.within(float64(dx), estDx) && c.within(float64(dy), estDy)
	c.log(res)

	if !c.within(float64(dx), estDx) {
		return res, gradcheckErrorf(opCheckBinary, &MismatchError{
			Fn: name, At: res.At, Arg: 0,
			Exact: float64(dx), Estimated: estDx, Tolerance: c.opts.tolerance,
		})
	}
	if !c.within(float64(dy), estDy) {
		return res, gradcheckErrorf(opCheckBinary, &MismatchError{
			Fn: name, At: res.At, Arg: 1,
			Exact: float64(dy), Estimated: estDy, Tolerance: c.opts.tolerance,
		})
	}

	return res, nil
}

// sameFloat is exact equality that also treats NaN as equal to NaN.
func sameFloat(a, b jet.Float) bool {
	return a == b || (a.IsNaN() && b.IsNaN())
}

func (c *Checker) log(res Result) {
	fields := []zap.Field{
		zap.String("fn", res.Fn),
		zap.Float64s("x", res.At),
		zap.Float64s("exact", res.Exact),
		zap.Float64s("estimated", res.Estimated),
	}
	if res.OK {
		c.opts.logger.Debug("gradcheck probe", fields...)
		return
	}
	c.opts.logger.Warn("gradcheck mismatch", fields...)
}
