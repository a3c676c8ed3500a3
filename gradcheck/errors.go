// SPDX-License-Identifier: MIT

package gradcheck

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrUnknownFunction is returned when a probe names a function missing
	// from the registry.
	ErrUnknownFunction = errors.New("gradcheck: unknown function")

	// ErrMismatch is wrapped by every *MismatchError.
	ErrMismatch = errors.New("gradcheck: derivative mismatch")

	// ErrSlotAsymmetry is returned when a binary function's partial
	// derivative depends on which tangent slot was seeded.
	ErrSlotAsymmetry = errors.New("gradcheck: tangent slot asymmetry")

	// ErrEmptyPlan is returned by CheckAll and LoadPlan for a plan without probes.
	ErrEmptyPlan = errors.New("gradcheck: plan has no probes")

	// ErrBadPlan is returned for malformed plans: unreadable YAML, probes
	// without points, or binary/unary argument counts that do not match.
	ErrBadPlan = errors.New("gradcheck: malformed plan")
)

// MismatchError reports a probe whose exact and estimated derivatives
// disagree beyond the tolerance.
type MismatchError struct {
	Fn        string
	At        []float64 // x, or x and y
	Arg       int       // index of the partial: 0 for ∂/∂x, 1 for ∂/∂y
	Exact     float64
	Estimated float64
	Tolerance float64
}

// Error renders "gradcheck: fn(x, y): ∂/∂x exact … estimated …".
func (e *MismatchError) Error() string {
	args := make([]string, len(e.At))
	for i, v := range e.At {
		args[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	wrt := "x"
	if e.Arg == 1 {
		wrt = "y"
	}

	return fmt.Sprintf("%s: %s(%s): ∂/∂%s exact %.17g, estimated %.17g (tol %g)",
		ErrMismatch, e.Fn, strings.Join(args, ", "), wrt, e.Exact, e.Estimated, e.Tolerance)
}

// Unwrap exposes ErrMismatch to errors.Is.
func (e *MismatchError) Unwrap() error { return ErrMismatch }

// gradcheckErrorf wraps err with an operation tag.
func gradcheckErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
