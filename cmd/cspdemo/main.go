// Command cspdemo exercises the csp core end to end: it builds two small
// problems directly against the builder API (no model-building convenience
// package, matching how the teacher's own cmd/example and examples/* mains
// call primitives directly) and solves each with the forward-checking
// solver; the plain backtracking solver is not run.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gitrdm/cspsolve/pkg/csp"
)

func main() {
	lib := csp.Init()
	defer lib.Finalize()

	fmt.Println("=== N-Queens (8) ===")
	runQueens(8)

	fmt.Println()
	fmt.Println("=== 4x4 Latin square (partially filled) ===")
	runLatinSquare()
}

// notEqual is a binary predicate: the two scope variables must differ.
func notEqual(c *csp.Constraint, a []int, data any) bool {
	return a[c.ScopeVariable(0)] != a[c.ScopeVariable(1)]
}

// queensNoAttack builds the N-queens binary predicate for a fixed pair of
// columns (coli, colj): the two queens placed in those columns (one row
// value per column, held in the scope) must not share a row or a diagonal.
// Capturing the columns in the closure keeps the per-pair geometry out of
// the shared caller-data parameter, which is reserved for state genuinely
// common to every constraint in the problem.
func queensNoAttack(coli, colj int) csp.Predicate {
	colDist := colj - coli
	if colDist < 0 {
		colDist = -colDist
	}
	return func(c *csp.Constraint, a []int, data any) bool {
		ri, rj := a[c.ScopeVariable(0)], a[c.ScopeVariable(1)]
		if ri == rj {
			return false
		}
		rowDist := ri - rj
		if rowDist < 0 {
			rowDist = -rowDist
		}
		return rowDist != colDist
	}
}

func runQueens(n int) {
	numPairs := n * (n - 1) / 2
	p := csp.NewProblem(n, numPairs)
	for i := 0; i < n; i++ {
		p.SetDomain(i, n)
	}

	slot := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			c := csp.NewConstraint(2, queensNoAttack(i, j))
			c.SetScopeVariable(0, i)
			c.SetScopeVariable(1, j)
			p.Install(slot, c)
			slot++
		}
	}

	out := make([]int, n)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	opt := &csp.SearchOptions{Cancel: csp.NewCancelTokenFromContext(ctx)}

	start := time.Now()
	if csp.SolveForwardCheck(p, out, nil, opt) {
		fmt.Printf("solved in %s: %v\n", time.Since(start), out)
	} else {
		fmt.Println("no solution found (or cancelled)")
	}
}

func runLatinSquare() {
	const n = 4
	prefilled := map[[2]int]int{
		{0, 0}: 0,
		{1, 2}: 3,
	}

	numVars := n * n
	cell := func(r, c int) int { return r*n + c }

	numPairs := 0
	for r := 0; r < n; r++ {
		numPairs += n * (n - 1) / 2
	}
	for c := 0; c < n; c++ {
		numPairs += n * (n - 1) / 2
	}
	numUnary := len(prefilled)

	p := csp.NewProblem(numVars, numPairs+numUnary)
	for i := 0; i < numVars; i++ {
		p.SetDomain(i, n)
	}

	slot := 0
	for r := 0; r < n; r++ {
		for c1 := 0; c1 < n; c1++ {
			for c2 := c1 + 1; c2 < n; c2++ {
				c := csp.NewConstraint(2, notEqual)
				c.SetScopeVariable(0, cell(r, c1))
				c.SetScopeVariable(1, cell(r, c2))
				p.Install(slot, c)
				slot++
			}
		}
	}
	for c := 0; c < n; c++ {
		for r1 := 0; r1 < n; r1++ {
			for r2 := r1 + 1; r2 < n; r2++ {
				con := csp.NewConstraint(2, notEqual)
				con.SetScopeVariable(0, cell(r1, c))
				con.SetScopeVariable(1, cell(r2, c))
				p.Install(slot, con)
				slot++
			}
		}
	}
	for pos, v := range prefilled {
		v := v
		c := csp.NewConstraint(1, func(c *csp.Constraint, a []int, data any) bool {
			return a[c.ScopeVariable(0)] == v
		})
		c.SetScopeVariable(0, cell(pos[0], pos[1]))
		p.Install(slot, c)
		slot++
	}

	out := make([]int, numVars)
	if csp.SolveForwardCheck(p, out, nil, nil) {
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				fmt.Printf("%d ", out[cell(r, c)])
			}
			fmt.Println()
		}
	} else {
		fmt.Println("no solution found")
	}
}
