package csp

import "testing"

func notEqual(c *Constraint, a []int, data any) bool {
	return a[c.ScopeVariable(0)] != a[c.ScopeVariable(1)]
}

// TestScenario1SingleVariableAlwaysTrueUnary covers spec scenario 1: a
// single variable with an always-true unary constraint and domain 3.
// Backtrack tries values in ascending order, so it yields 0.
func TestScenario1SingleVariableAlwaysTrueUnary(t *testing.T) {
	p := NewProblem(1, 1)
	p.SetDomain(0, 3)
	c := NewConstraint(1, alwaysTrue)
	c.SetScopeVariable(0, 0)
	p.Install(0, c)

	out := make([]int, 1)
	if !SolveBacktrack(p, out, nil) {
		t.Fatal("expected SolveBacktrack to succeed")
	}
	if out[0] != 0 {
		t.Fatalf("out[0] = %d, want 0", out[0])
	}
}

// TestScenario2TwoVariablesNotEqual covers spec scenario 2.
func TestScenario2TwoVariablesNotEqual(t *testing.T) {
	p := NewProblem(2, 1)
	p.SetDomain(0, 2)
	p.SetDomain(1, 2)
	c := NewConstraint(2, notEqual)
	c.SetScopeVariable(0, 0)
	c.SetScopeVariable(1, 1)
	p.Install(0, c)

	out := make([]int, 2)
	if !SolveBacktrack(p, out, nil) {
		t.Fatal("expected SolveBacktrack to succeed")
	}
	if out[0] == out[1] {
		t.Fatalf("out = %v violates A[0] != A[1]", out)
	}
	if out[0] != 0 || out[1] != 1 {
		t.Fatalf("out = %v, want (0,1)", out)
	}
}

// TestScenario3UnsatisfiableSingletonDomains covers spec scenario 3.
func TestScenario3UnsatisfiableSingletonDomains(t *testing.T) {
	p := NewProblem(2, 1)
	p.SetDomain(0, 1)
	p.SetDomain(1, 1)
	c := NewConstraint(2, notEqual)
	c.SetScopeVariable(0, 0)
	c.SetScopeVariable(1, 1)
	p.Install(0, c)

	out := make([]int, 2)
	if SolveBacktrack(p, out, nil) {
		t.Fatal("expected SolveBacktrack to fail (UNSAT)")
	}
	if SolveForwardCheck(p, out, nil, nil) {
		t.Fatal("expected SolveForwardCheck to fail (UNSAT)")
	}
}

// TestScenario4ChainOfDisequalities covers spec scenario 4.
func TestScenario4ChainOfDisequalities(t *testing.T) {
	p := NewProblem(3, 2)
	for i := 0; i < 3; i++ {
		p.SetDomain(i, 3)
	}
	c01 := NewConstraint(2, notEqual)
	c01.SetScopeVariable(0, 0)
	c01.SetScopeVariable(1, 1)
	p.Install(0, c01)

	c12 := NewConstraint(2, notEqual)
	c12.SetScopeVariable(0, 1)
	c12.SetScopeVariable(1, 2)
	p.Install(1, c12)

	out := make([]int, 3)
	if !SolveBacktrack(p, out, nil) {
		t.Fatal("expected SolveBacktrack to succeed")
	}
	if out[0] == out[1] || out[1] == out[2] {
		t.Fatalf("out = %v violates a disequality", out)
	}
}

// TestScenario5SumConstraintWithCallerData covers spec scenario 5.
func TestScenario5SumConstraintWithCallerData(t *testing.T) {
	sumAtMost := func(c *Constraint, a []int, data any) bool {
		max := data.(int)
		return a[c.ScopeVariable(0)]+a[c.ScopeVariable(1)] <= max
	}

	p := NewProblem(2, 1)
	p.SetDomain(0, 3)
	p.SetDomain(1, 3)
	c := NewConstraint(2, sumAtMost)
	c.SetScopeVariable(0, 0)
	c.SetScopeVariable(1, 1)
	p.Install(0, c)

	out := make([]int, 2)
	if !SolveBacktrack(p, out, 3) {
		t.Fatal("expected SolveBacktrack to succeed")
	}
	if out[0] != 0 || out[1] != 0 {
		t.Fatalf("out = %v, want (0,0)", out)
	}
}

func TestSolveBacktrackZeroConstraintsAnyAssignmentSolves(t *testing.T) {
	p := NewProblem(2, 0)
	p.SetDomain(0, 2)
	p.SetDomain(1, 2)

	out := make([]int, 2)
	if !SolveBacktrack(p, out, nil) {
		t.Fatal("a problem with zero constraints must always be solvable")
	}
}

func TestSolveBacktrackSoundness(t *testing.T) {
	p := NewProblem(4, 3)
	for i := 0; i < 4; i++ {
		p.SetDomain(i, 4)
	}
	pairs := [][2]int{{0, 1}, {1, 2}, {2, 3}}
	for slot, pair := range pairs {
		c := NewConstraint(2, notEqual)
		c.SetScopeVariable(0, pair[0])
		c.SetScopeVariable(1, pair[1])
		p.Install(slot, c)
	}

	out := make([]int, 4)
	if !SolveBacktrack(p, out, nil) {
		t.Fatal("expected a solution to exist")
	}
	for slot := 0; slot < p.NumConstraints(); slot++ {
		c := p.ConstraintAt(slot)
		if !c.Predicate()(c, out, nil) {
			t.Fatalf("constraint %d violated by solution %v", slot, out)
		}
	}
}
