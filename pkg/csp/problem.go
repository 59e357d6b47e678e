package csp

import "fmt"

// Predicate evaluates whether a constraint is satisfied by the given
// assignment. It must read only positions within c's scope, must not mutate
// a, and must not call back into the solver. Returning false means
// "violated."
type Predicate func(c *Constraint, a []int, data any) bool

// Constraint is an immutable-after-install record of an arity, an ordered
// scope of variable identifiers, and a predicate over the scope.
type Constraint struct {
	arity     int
	scope     []int
	predicate Predicate
}

// NewConstraint creates a constraint with the given arity and predicate. The
// scope is zero-initialized and must be filled in with SetScopeVariable
// before the constraint is installed.
//
// NewConstraint panics if k is less than 1 or predicate is nil: both are
// contract violations, not runtime failures (see §7 of the specification).
func NewConstraint(k int, predicate Predicate) *Constraint {
	if k < 1 {
		panic(fmt.Sprintf("csp: constraint arity %d must be >= 1", k))
	}
	if predicate == nil {
		panic("csp: constraint predicate must not be nil")
	}
	return &Constraint{
		arity:     k,
		scope:     make([]int, k),
		predicate: predicate,
	}
}

// Arity returns the constraint's arity.
func (c *Constraint) Arity() int { return c.arity }

// Predicate returns the constraint's predicate.
func (c *Constraint) Predicate() Predicate { return c.predicate }

// SetScopeVariable sets the variable identifier at the given scope position.
// It panics if position is out of [0, Arity()) — a contract violation.
func (c *Constraint) SetScopeVariable(position, varID int) {
	if position < 0 || position >= c.arity {
		panic(fmt.Sprintf("csp: scope position %d out of range [0,%d)", position, c.arity))
	}
	c.scope[position] = varID
}

// ScopeVariable returns the variable identifier at the given scope position.
// It panics if position is out of [0, Arity()).
func (c *Constraint) ScopeVariable(position int) int {
	if position < 0 || position >= c.arity {
		panic(fmt.Sprintf("csp: scope position %d out of range [0,%d)", position, c.arity))
	}
	return c.scope[position]
}

// Scope returns the constraint's scope as a read-only slice. Callers must
// not mutate the returned slice.
func (c *Constraint) Scope() []int { return c.scope }

// maxScopeVar returns the largest variable identifier referenced by the
// scope, or -1 if the scope is empty (which NewConstraint never produces).
func (c *Constraint) maxScopeVar() int {
	max := -1
	for _, v := range c.scope {
		if v > max {
			max = v
		}
	}
	return max
}

// Problem is a fixed-size ordered collection of N variables with their
// domain sizes, and M constraint slots filled once by the builder. A
// Problem is logically immutable once search starts: nothing in this
// package mutates a *Problem after NewContext or a Solve* call has been
// made against it, but the type itself does not enforce that — callers are
// expected to treat it as read-only past that point, per §5.
type Problem struct {
	domains     []int
	constraints []*Constraint
}

// NewProblem creates a problem with n variables (all domains 0) and m empty
// constraint slots.
func NewProblem(n, m int) *Problem {
	if n < 0 {
		panic(fmt.Sprintf("csp: negative variable count %d", n))
	}
	if m < 0 {
		panic(fmt.Sprintf("csp: negative constraint slot count %d", m))
	}
	return &Problem{
		domains:     make([]int, n),
		constraints: make([]*Constraint, m),
	}
}

// NumVariables returns the number of variables N.
func (p *Problem) NumVariables() int { return len(p.domains) }

// NumConstraints returns the number of constraint slots M.
func (p *Problem) NumConstraints() int { return len(p.constraints) }

// SetDomain sets the domain size of variable i to d, meaning its legal
// values are [0, d). It panics if i is out of range or d is negative.
func (p *Problem) SetDomain(i, d int) {
	p.checkVar(i)
	if d < 0 {
		panic(fmt.Sprintf("csp: negative domain size %d for variable %d", d, i))
	}
	p.domains[i] = d
}

// Domain returns the domain size of variable i.
func (p *Problem) Domain(i int) int {
	p.checkVar(i)
	return p.domains[i]
}

// Install fills constraint slot with c, after validating that every
// variable in c's scope is < NumVariables(). It panics on violation — a
// contract violation per §7, validated eagerly so a malformed problem never
// reaches search.
func (p *Problem) Install(slot int, c *Constraint) {
	if slot < 0 || slot >= len(p.constraints) {
		panic(fmt.Sprintf("csp: constraint slot %d out of range [0,%d)", slot, len(p.constraints)))
	}
	if c == nil {
		panic("csp: installed constraint must not be nil")
	}
	if max := c.maxScopeVar(); max >= len(p.domains) {
		panic(fmt.Sprintf("csp: constraint scope variable %d >= %d variables", max, len(p.domains)))
	}
	p.constraints[slot] = c
}

// ConstraintAt returns the constraint installed at slot, or nil if the slot
// has not been filled.
func (p *Problem) ConstraintAt(slot int) *Constraint {
	if slot < 0 || slot >= len(p.constraints) {
		panic(fmt.Sprintf("csp: constraint slot %d out of range [0,%d)", slot, len(p.constraints)))
	}
	return p.constraints[slot]
}

func (p *Problem) checkVar(i int) {
	if i < 0 || i >= len(p.domains) {
		panic(fmt.Sprintf("csp: variable %d out of range [0,%d)", i, len(p.domains)))
	}
}
