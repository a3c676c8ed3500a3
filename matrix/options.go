// SPDX-License-Identifier: MIT
// Package matrix: functional options for factorizations.
//
// Purpose:
//   - Centralize the numeric policy of LU, LDLT and Solve in one Options value.
//   - Keep defaults as documented constants (single source of truth).
//
// Policy:
//   - Pivoting: LU selects, in each column, the row whose entry has the
//     largest magnitude under Scalar.Cmp (partial pivoting). With pivoting
//     disabled the natural row order is kept and a zero pivot is ErrSingular.
//   - Pivot tolerance: a pivot p counts as zero when |p| <= tol. The default
//     tolerance is 0, i.e. only an exact zero is singular.
//   - For Jet entries every comparison looks at the primal value only, so
//     pivoting decisions never depend on derivatives.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivoting enables partial (row) pivoting in LU.
	DefaultPivoting = true

	// DefaultPivotTolerance is the magnitude at or below which a pivot is
	// treated as zero.
	DefaultPivotTolerance = 0.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPivotToleranceInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates Options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	pivoting bool    // DefaultPivoting
	pivotTol float64 // >= 0; DefaultPivotTolerance
}

// ---------- Constructors (WithX) ----------

// WithPivoting enables partial pivoting in LU (the default).
func WithPivoting() Option {
	return func(o *Options) { o.pivoting = true }
}

// WithNoPivoting keeps the natural row order in LU. Any zero pivot is then
// reported as ErrSingular even when a row exchange would have avoided it.
// Useful for reproducing textbook Doolittle results.
func WithNoPivoting() Option {
	return func(o *Options) { o.pivoting = false }
}

// WithPivotTolerance sets the magnitude at or below which a pivot counts as
// zero in LU and LDLT.
//
// Inputs:
//   - tol: finite, non-negative tolerance.
//
// Errors:
//   - Panics with a stable message when tol is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// --------------------------- Option Resolution ---------------------------

// NewMatrixOptions resolves option setters against documented defaults.
// Pure function; last-writer-wins.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Pivoting reports whether partial pivoting is enabled.
func (o Options) Pivoting() bool { return o.pivoting }

// PivotTolerance returns the zero-pivot threshold.
func (o Options) PivotTolerance() float64 { return o.pivotTol }

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry in the factorization layer.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		pivoting: DefaultPivoting,
		pivotTol: DefaultPivotTolerance,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// isZeroPivot reports whether |p| <= tol.
func isZeroPivot[T Scalar[T]](p T, tol T) bool {
	return p.Abs().Cmp(tol) <= 0
}
