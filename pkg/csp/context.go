package csp

// pruneEntry is one (variable, value) pair recorded when forward checking
// clears a live-mask bit. The entries for a single recursion frame occupy a
// contiguous run at the top of the shared prune stack, bounded below by the
// frame's watermark (see Design Notes §9 and §3's "Go realization of the
// prune log").
type pruneEntry struct {
	varID int
	value int
}

// Context is the forward-check context of §4.4 (L4a): for each variable i
// it owns a live-value mask of length Domain(i) and an "assigned" flag.
// Both are packed into flat slices with a per-variable offset table rather
// than the C original's per-variable pointer arrays, per Design Notes §9.
//
// A Context is owned by exactly one search and must not be shared across
// concurrent searches.
type Context struct {
	p        *Problem
	starts   []int // starts[i] = offset of variable i's live mask in live
	live     []bool
	assigned []bool
	prune    []pruneEntry
}

// NewContext allocates a Context for p with all masks fully true and all
// assigned flags false, then applies initial unary pruning: for every
// installed unary constraint over a variable x, every value that fails the
// predicate (evaluated with data = nil, per the Open Questions decision in
// SPEC_FULL.md §9) is cleared from x's live mask. If exactly one value
// survives for x, x's assigned flag is set. This lets pre-assigned cells in
// a puzzle-shaped problem collapse before search begins.
func NewContext(p *Problem) *Context {
	ctx := &Context{p: p}
	ctx.init()
	return ctx
}

// Reset reinitializes ctx in place for problem p, discarding all live-mask
// and assigned-flag state and re-running initial unary pruning. It lets a
// single Context allocation be reused across repeated searches.
func (ctx *Context) Reset(p *Problem) {
	ctx.p = p
	ctx.init()
}

func (ctx *Context) init() {
	n := ctx.p.NumVariables()
	ctx.starts = make([]int, n)
	total := 0
	for i := 0; i < n; i++ {
		ctx.starts[i] = total
		total += ctx.p.Domain(i)
	}
	ctx.live = make([]bool, total)
	for i := range ctx.live {
		ctx.live[i] = true
	}
	ctx.assigned = make([]bool, n)
	ctx.prune = ctx.prune[:0]

	scratch := make([]int, n)
	for i := 0; i < n; i++ {
		ctx.applyInitialUnaryPruning(i, scratch)
	}
}

// applyInitialUnaryPruning runs the unary-constraint pass of NewContext for
// a single variable x, using scratch as the snapshot array (so it never
// observes or mutates a caller-owned assignment).
func (ctx *Context) applyInitialUnaryPruning(x int, scratch []int) {
	hasUnary := false
	for slot := 0; slot < ctx.p.NumConstraints(); slot++ {
		c := ctx.p.ConstraintAt(slot)
		if c == nil || c.Arity() != 1 || c.ScopeVariable(0) != x {
			continue
		}
		hasUnary = true
		d := ctx.p.Domain(x)
		for v := 0; v < d; v++ {
			scratch[x] = v
			if !c.predicate(c, scratch, nil) {
				ctx.setLive(x, v, false)
			}
		}
	}
	if hasUnary && ctx.liveCount(x) == 1 {
		ctx.assigned[x] = true
	}
}

func (ctx *Context) offset(varID, value int) int {
	return ctx.starts[varID] + value
}

func (ctx *Context) liveHas(varID, value int) bool {
	return ctx.live[ctx.offset(varID, value)]
}

func (ctx *Context) setLive(varID, value int, live bool) {
	ctx.live[ctx.offset(varID, value)] = live
}

func (ctx *Context) liveCount(varID int) int {
	d := ctx.p.Domain(varID)
	start := ctx.starts[varID]
	count := 0
	for v := 0; v < d; v++ {
		if ctx.live[start+v] {
			count++
		}
	}
	return count
}

// LiveCount returns the number of values still live for variable varID.
func (ctx *Context) LiveCount(varID int) int { return ctx.liveCount(varID) }

// LiveHas reports whether value is still live for variable varID.
func (ctx *Context) LiveHas(varID, value int) bool { return ctx.liveHas(varID, value) }

// LiveValues returns the live values of varID in ascending order.
func (ctx *Context) LiveValues(varID int) []int {
	d := ctx.p.Domain(varID)
	start := ctx.starts[varID]
	values := make([]int, 0, ctx.liveCount(varID))
	for v := 0; v < d; v++ {
		if ctx.live[start+v] {
			values = append(values, v)
		}
	}
	return values
}

// IsAssigned reports whether varID's assigned flag is set.
func (ctx *Context) IsAssigned(varID int) bool { return ctx.assigned[varID] }

// SetAssigned sets varID's assigned flag.
func (ctx *Context) SetAssigned(varID int, assigned bool) { ctx.assigned[varID] = assigned }

// AllAssigned reports whether every variable's assigned flag is set.
func (ctx *Context) AllAssigned() bool {
	for _, a := range ctx.assigned {
		if !a {
			return false
		}
	}
	return true
}

// mark returns the current length of the shared prune stack: the watermark
// a frame must restore back down to on exit.
func (ctx *Context) mark() int {
	return len(ctx.prune)
}

// recordPrune clears live[varID][value] and pushes the pair onto the
// shared prune stack.
func (ctx *Context) recordPrune(varID, value int) {
	ctx.setLive(varID, value, false)
	ctx.prune = append(ctx.prune, pruneEntry{varID: varID, value: value})
}

// restore undoes every prune recorded since watermark, in reverse order,
// then truncates the shared prune stack back down to watermark. After this
// call ctx is indistinguishable from its state immediately before the
// frame's prune step — the stack-discipline invariant of §3.
func (ctx *Context) restore(watermark int) {
	for i := len(ctx.prune) - 1; i >= watermark; i-- {
		e := ctx.prune[i]
		ctx.setLive(e.varID, e.value, true)
	}
	ctx.prune = ctx.prune[:watermark]
}
