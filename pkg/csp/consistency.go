package csp

// Consistent returns true iff every constraint installed in p whose scope
// lies entirely in [0, frontier) is satisfied by a under data. Constraints
// with any scope variable >= frontier are skipped, not treated as failing.
//
// Constraints are evaluated in installation order and evaluation stops at
// the first failing constraint, matching the reference implementation's
// tie-break: cheap incremental consistency after each assignment in the
// plain backtrack.
func Consistent(p *Problem, a []int, data any, frontier int) bool {
	for slot := 0; slot < p.NumConstraints(); slot++ {
		c := p.ConstraintAt(slot)
		if c == nil {
			continue
		}
		if !scopeWithin(c, frontier) {
			continue
		}
		if !c.predicate(c, a, data) {
			return false
		}
	}
	return true
}

// scopeWithin reports whether every variable in c's scope is < frontier.
func scopeWithin(c *Constraint, frontier int) bool {
	for _, v := range c.scope {
		if v >= frontier {
			return false
		}
	}
	return true
}
