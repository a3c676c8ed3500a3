// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvjet/jet"
	"github.com/katalvlaran/lvjet/matrix"
)

// ExampleSolveLLT solves a 2×2 system whose first diagonal entry depends on
// a parameter p; the solution's tangent is ∂x/∂p.
func ExampleSolveLLT() {
	type J = jet.Jet[jet.Float, [1]jet.Float]
	c := func(v float64) J { return jet.Const[jet.Float, [1]jet.Float](jet.Float(v)) }

	p := jet.Variable[jet.Float, [1]jet.Float](4, 0)
	a, _ := matrix.NewDenseFrom(2, 2, []J{
		p, c(0),
		c(0), c(4),
	})
	x, err := matrix.SolveLLT(a, []J{c(8), c(4)})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(x[0], x[1])

	// Output:
	// [2 ; -0.5] [1 ; 0]
}

// ExampleLU shows the factors of a matrix that needs a row exchange.
func ExampleLU() {
	a, _ := matrix.NewDenseFrom(2, 2, []jet.Float{
		0, 1,
		2, 3,
	})
	f, err := matrix.LU(a)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(f.L())
	fmt.Print(f.U())
	fmt.Println("pivot:", f.Pivot(), "det:", f.Det())

	// Output:
	// [1, 0]
	// [0, 1]
	// [2, 3]
	// [0, 1]
	// pivot: [1 0] det: -2
}
