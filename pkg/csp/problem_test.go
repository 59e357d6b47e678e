package csp

import "testing"

func alwaysTrue(c *Constraint, a []int, data any) bool { return true }

func TestProblemBuilderAccessors(t *testing.T) {
	p := NewProblem(3, 1)
	p.SetDomain(0, 2)
	p.SetDomain(1, 3)
	p.SetDomain(2, 1)

	if got := p.NumVariables(); got != 3 {
		t.Fatalf("NumVariables() = %d, want 3", got)
	}
	if got := p.Domain(1); got != 3 {
		t.Fatalf("Domain(1) = %d, want 3", got)
	}

	c := NewConstraint(2, alwaysTrue)
	c.SetScopeVariable(0, 0)
	c.SetScopeVariable(1, 2)
	p.Install(0, c)

	if got := p.ConstraintAt(0); got != c {
		t.Fatalf("ConstraintAt(0) = %v, want %v", got, c)
	}
	if got := c.Arity(); got != 2 {
		t.Fatalf("Arity() = %d, want 2", got)
	}
	if got := c.ScopeVariable(1); got != 2 {
		t.Fatalf("ScopeVariable(1) = %d, want 2", got)
	}
}

func TestInstallPanicsOnOutOfRangeScope(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic installing a constraint whose scope exceeds N")
		}
	}()

	p := NewProblem(2, 1)
	c := NewConstraint(1, alwaysTrue)
	c.SetScopeVariable(0, 5)
	p.Install(0, c)
}

func TestNewConstraintPanicsOnZeroArity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic creating a zero-arity constraint")
		}
	}()
	NewConstraint(0, alwaysTrue)
}

func TestSetDomainPanicsOnOutOfRangeVariable(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic setting the domain of an out-of-range variable")
		}
	}()
	p := NewProblem(2, 0)
	p.SetDomain(5, 3)
}
