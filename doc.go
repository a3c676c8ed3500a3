// Package lvjet is a forward-mode automatic differentiation toolkit: exact
// derivatives of ordinary numeric Go code, no symbolic algebra and no
// finite differences.
//
// 🚀 What is lvjet?
//
//	A small, dependency-light set of packages built around one value type:
//		• jet:       the Jet dual-number scalar, its arithmetic and the full
//		             elementary/special function library, nestable for
//		             higher-order derivatives
//		• matrix:    a generic dense matrix with LU, LLT and LDLT solves, so
//		             derivatives flow through linear systems too
//		• gradcheck: finite-difference verification of Jet derivatives, with
//		             YAML probe plans and structured logging
//
// ✨ Why choose lvjet?
//
//   - Value semantics – a Jet is a plain struct with an array tangent; no
//     allocation, no tape, safe to copy and share
//   - IEEE-754 all the way – invalid inputs yield NaN/±Inf, never panics
//   - Generic – one function library serves float64 and Jet-of-Jet alike
//
// Under the hood:
//
//	jet/       — Real interface, Float, Jet[T, D], functions, classification
//	matrix/    — Dense[T], Mul/MatVec/Transpose/Scale/Sum, LU/LLT/LDLT
//	gradcheck/ — Checker, function registry, probe plans, CheckAll
//
// Quick example, ∂/∂x and ∂/∂y of sin(x·y):
//
//	x := jet.Variable[jet.Float, [2]jet.Float](2.3, 0)
//	y := jet.Variable[jet.Float, [2]jet.Float](1.7, 1)
//	z := x.Mul(y).Sin() // z.V == [y·cos(xy), x·cos(xy)]
//
//	go get github.com/katalvlaran/lvjet
package lvjet
