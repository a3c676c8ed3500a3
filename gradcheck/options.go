// SPDX-License-Identifier: MIT
// Package gradcheck: functional options for Checker.
//
// Policy:
//   - Step h is the central-difference half-width: f'(x) ≈ (f(x+h) - f(x-h)) / 2h.
//   - A probe passes when exact and estimated agree within Tolerance either
//     absolutely or relative to the larger magnitude.
//   - Concurrency bounds the number of probes CheckAll evaluates at once.

package gradcheck

import (
	"math"
	"runtime"

	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultStep is the central-difference step.
	DefaultStep = 1e-8

	// DefaultTolerance bounds exact-vs-estimated derivative mismatches.
	DefaultTolerance = 1e-6
)

// DefaultConcurrency is the CheckAll fan-out limit when none is given.
var DefaultConcurrency = runtime.GOMAXPROCS(0)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicStepInvalid        = "gradcheck: WithStep: step must be finite, positive"
	panicToleranceInvalid   = "gradcheck: WithTolerance: tol must be finite, non-negative"
	panicConcurrencyInvalid = "gradcheck: WithConcurrency: n must be >= 1"
	panicLoggerNil          = "gradcheck: WithLogger: logger must be non-nil"
)

// Option mutates a Checker's configuration. Constructors panic only on
// nonsensical values (programmer error).
type Option func(*options)

type options struct {
	step        float64
	tolerance   float64
	concurrency int
	logger      *zap.Logger
}

// WithStep sets the central-difference step h.
func WithStep(h float64) Option {
	if math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
		panic(panicStepInvalid)
	}

	return func(o *options) { o.step = h }
}

// WithTolerance sets the absolute-or-relative acceptance tolerance.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.tolerance = tol }
}

// WithConcurrency bounds how many probes CheckAll runs at once.
func WithConcurrency(n int) Option {
	if n < 1 {
		panic(panicConcurrencyInvalid)
	}

	return func(o *options) { o.concurrency = n }
}

// WithLogger routes probe diagnostics to l: every probe at debug level,
// mismatches at warn.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *options) { o.logger = l }
}

// gatherOptions applies user setters on top of the defaults (last-writer-wins).
func gatherOptions(user ...Option) options {
	o := options{
		step:        DefaultStep,
		tolerance:   DefaultTolerance,
		concurrency: DefaultConcurrency,
		logger:      zap.NewNop(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
