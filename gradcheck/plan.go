// SPDX-License-Identifier: MIT

package gradcheck

import (
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Probe evaluates one function at a list of points. Unary probes set At
// only; binary probes pair At[i] with With[i].
type Probe struct {
	Fn   string    `yaml:"fn"`
	At   []float64 `yaml:"at"`
	With []float64 `yaml:"with,omitempty"`
}

// Plan is a batch of probes. Step and Tolerance, when non-zero, override
// the Checker's own for this plan only.
type Plan struct {
	Step      float64 `yaml:"step,omitempty"`
	Tolerance float64 `yaml:"tolerance,omitempty"`
	Probes    []Probe `yaml:"probes"`
}

// LoadPlan decodes a single YAML document into a Plan and validates it.
// Unknown keys are rejected.
func LoadPlan(r io.Reader) (Plan, error) {
	var p Plan
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return Plan{}, gradcheckErrorf(opLoadPlan, ErrEmptyPlan)
		}
		return Plan{}, gradcheckErrorf(opLoadPlan, fmt.Errorf("%w: %v", ErrBadPlan, err))
	}
	if err := p.Validate(); err != nil {
		return Plan{}, gradcheckErrorf(opLoadPlan, err)
	}

	return p, nil
}

// Validate checks that every probe names a registered function with the
// right number of arguments and that the overrides are sane.
func (p Plan) Validate() error {
	if len(p.Probes) == 0 {
		return ErrEmptyPlan
	}
	if p.Step < 0 || p.Tolerance < 0 {
		return fmt.Errorf("%w: negative step or tolerance", ErrBadPlan)
	}
	unary, binary := Functions(), Binaries()
	for i, pr := range p.Probes {
		if len(pr.At) == 0 {
			return fmt.Errorf("%w: probe %d (%s) has no points", ErrBadPlan, i, pr.Fn)
		}
		if _, ok := unary[pr.Fn]; ok {
			if len(pr.With) != 0 {
				return fmt.Errorf("%w: probe %d: %s takes one argument", ErrBadPlan, i, pr.Fn)
			}
			continue
		}
		if _, ok := binary[pr.Fn]; ok {
			if len(pr.With) != len(pr.At) {
				return fmt.Errorf("%w: probe %d: %s needs len(with) == len(at)", ErrBadPlan, i, pr.Fn)
			}
			continue
		}
		return fmt.Errorf("probe %d: %q: %w", i, pr.Fn, ErrUnknownFunction)
	}

	return nil
}

// task is one point of one probe.
type task struct {
	fn     string
	x, y   float64
	binary bool
}

func (p Plan) tasks() []task {
	unary := Functions()
	var out []task
	for _, pr := range p.Probes {
		_, isUnary := unary[pr.Fn]
		for i, x := range pr.At {
			t := task{fn: pr.Fn, x: x, binary: !isUnary}
			if !isUnary {
				t.y = pr.With[i]
			}
			out = append(out, t)
		}
	}

	return out
}

// CheckAll validates plan and runs every point of every probe, at most
// the configured concurrency at a time. Results come back in plan order.
//
// A cancelled ctx aborts the run and returns ctx.Err(). Otherwise all
// points are evaluated; failed ones are marked !OK and their errors are
// joined into the returned error, so errors.Is(err, ErrMismatch) reports
// whether anything failed.
func (c *Checker) CheckAll(ctx context.Context, plan Plan) ([]Result, error) {
	if err := plan.Validate(); err != nil {
		return nil, gradcheckErrorf(opCheckAll, err)
	}

	run := *c
	if plan.Step > 0 {
		run.opts.step = plan.Step
	}
	if plan.Tolerance > 0 {
		run.opts.tolerance = plan.Tolerance
	}

	unary, binary := Functions(), Binaries()
	tasks := plan.tasks()
	results := make([]Result, len(tasks))
	failures := make([]error, len(tasks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(run.opts.concurrency)
	for i, t := range tasks {
		i, t := i, t
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if t.binary {
				results[i], failures[i] = run.CheckBinary(t.fn, binary[t.fn], t.x, t.y)
			} else {
				results[i], failures[i] = run.CheckUnary(t.fn, unary[t.fn], t.x)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, gradcheckErrorf(opCheckAll, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, gradcheckErrorf(opCheckAll, err)
	}

	return results, errors.Join(failures...)
}
