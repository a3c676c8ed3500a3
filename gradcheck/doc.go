// Package gradcheck verifies Jet derivatives against central finite
// differences.
//
// 🔍 What is it?
//
//	A Checker evaluates a function once with seeded Jets (the exact
//	derivative) and twice more on plain constants at x±h (the estimate),
//	then accepts the probe when the two agree within an absolute-or-relative
//	tolerance.
//
// ✨ Key features:
//   - Unary and binary probes; binary probes additionally verify that each
//     partial derivative lands in whichever tangent slot was seeded.
//   - A registry of every elementary function in package jet by name.
//   - Batch checking with bounded concurrency (CheckAll) and YAML probe plans.
//   - Structured logging through go.uber.org/zap; silent by default.
//
// ⚙️ Defaults:
//   - Step 1e-8, tolerance 1e-6, concurrency GOMAXPROCS.
//
// Usage:
//
//	c := gradcheck.New(gradcheck.WithLogger(logger))
//	res, err := c.CheckAll(ctx, gradcheck.DefaultPlan())
//	if errors.Is(err, gradcheck.ErrMismatch) { ... }
package gradcheck
