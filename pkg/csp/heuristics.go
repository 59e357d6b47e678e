package csp

// SelectMRV implements the Minimum Remaining Values heuristic (§4.5): it
// returns the identifier of the unassigned variable with the fewest live
// values, breaking ties by lowest identifier. Its behavior is undefined
// when every variable is assigned; it returns -1 defensively rather than
// indexing out of range, but callers must not rely on that value as a
// meaningful result — the driver never calls SelectMRV in that state.
func SelectMRV(ctx *Context) int {
	best := -1
	bestCount := -1
	for i := 0; i < ctx.p.NumVariables(); i++ {
		if ctx.IsAssigned(i) {
			continue
		}
		count := ctx.LiveCount(i)
		if best == -1 || count < bestCount {
			best = i
			bestCount = count
		}
	}
	return best
}

// binaryNeighbor returns the other endpoint of a binary constraint's scope
// if c has arity 2 and x is one of its two scope variables, and -1
// otherwise.
func binaryNeighbor(c *Constraint, x int) int {
	if c.Arity() != 2 {
		return -1
	}
	a, b := c.ScopeVariable(0), c.ScopeVariable(1)
	switch x {
	case a:
		return b
	case b:
		return a
	default:
		return -1
	}
}

// OrderLCV implements the Least Constraining Value heuristic (§4.6): it
// returns x's live values sorted ascending by conflict score, where the
// conflict score of candidate u is the number of (binary-constraint
// neighbor, neighbor value) pairs that u would eliminate. Ties are broken
// by ascending value identifier via a stable sort.
//
// OrderLCV speculatively overwrites a[x] and, for each neighbor scored,
// a[neighbor], but restores both to their entry values before returning —
// it never leaves an observable change in a, ctx's masks, or ctx's flags.
func OrderLCV(p *Problem, ctx *Context, a []int, data any, x int) []int {
	values := ctx.LiveValues(x)
	scores := make([]int, len(values))

	savedX := a[x]
	for i, u := range values {
		a[x] = u
		scores[i] = conflictScore(p, ctx, a, data, x)
	}
	a[x] = savedX

	stableSortByScore(values, scores)
	return values
}

// conflictScore computes score(u) from §4.6 for the value currently set in
// a[x], summing over every binary constraint whose scope is {x, y} with y
// unassigned.
func conflictScore(p *Problem, ctx *Context, a []int, data any, x int) int {
	score := 0
	for slot := 0; slot < p.NumConstraints(); slot++ {
		c := p.ConstraintAt(slot)
		if c == nil {
			continue
		}
		y := binaryNeighbor(c, x)
		if y < 0 || ctx.IsAssigned(y) {
			continue
		}
		savedY := a[y]
		for _, w := range ctx.LiveValues(y) {
			a[y] = w
			if !c.predicate(c, a, data) {
				score++
			}
		}
		a[y] = savedY
	}
	return score
}

// stableSortByScore sorts values ascending by the parallel scores slice,
// using insertion sort (stable, and cheap at the small N this solver
// targets), matching the reference implementation's choice noted in §4.6.
func stableSortByScore(values, scores []int) {
	for i := 1; i < len(values); i++ {
		vi, si := values[i], scores[i]
		j := i - 1
		for j >= 0 && scores[j] > si {
			values[j+1] = values[j]
			scores[j+1] = scores[j]
			j--
		}
		values[j+1] = vi
		scores[j+1] = si
	}
}

// pruneNeighbors implements §4.7: after a[x] has been assigned and x's
// assigned flag set, it walks every binary constraint whose scope contains
// x and one unassigned variable y, and for every live value w of y, tests
// the constraint with a[y] := w. Values that fail are cleared from y's live
// mask and recorded on ctx's shared prune stack so they can be restored by
// restore.
func pruneNeighbors(p *Problem, a []int, data any, ctx *Context, x int) {
	for slot := 0; slot < p.NumConstraints(); slot++ {
		c := p.ConstraintAt(slot)
		if c == nil {
			continue
		}
		y := binaryNeighbor(c, x)
		if y < 0 || ctx.IsAssigned(y) {
			continue
		}
		for _, w := range ctx.LiveValues(y) {
			a[y] = w
			if !c.predicate(c, a, data) {
				ctx.recordPrune(y, w)
			}
		}
	}
}
