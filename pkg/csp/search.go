package csp

import "log"

// SearchOptions configures a forward-checking search, mirroring the
// reference implementation's SolverConfig / DefaultSolverConfig pattern
// (see SPEC_FULL.md §2.1).
type SearchOptions struct {
	// Cancel, if non-nil, is polled at the top of every recursion frame.
	// When it reports Requested(), the search unwinds (restoring every
	// already-pruned frame) and SolveForwardCheck returns false.
	Cancel *CancelToken

	// Logger, if non-nil, receives a line of trace output for each
	// variable assignment attempt and each backtrack. A nil Logger (the
	// default) emits nothing.
	Logger *log.Logger
}

// DefaultSearchOptions returns a SearchOptions with no cancellation token
// and no logger.
func DefaultSearchOptions() *SearchOptions {
	return &SearchOptions{}
}

func (o *SearchOptions) trace(format string, args ...any) {
	if o == nil || o.Logger == nil {
		return
	}
	o.Logger.Printf(format, args...)
}

func (o *SearchOptions) cancelRequested() bool {
	return o != nil && o.Cancel != nil && o.Cancel.Requested()
}

// searchResult is the internal tri-state outcome of one fcSearch frame.
type searchResult int

const (
	searchUnsatisfied searchResult = iota
	searchSolved
	searchCancelled
)

// SolveForwardCheck performs forward-checking search with MRV variable
// ordering and LCV value ordering (§4.9). On success it returns true and
// leaves the solution in out (which must have length p.NumVariables()). On
// failure — including cancellation via opt.Cancel — it returns false; a
// cancellation cannot be distinguished from unsatisfiability except by the
// caller separately inspecting opt.Cancel.
//
// opt may be nil, equivalent to DefaultSearchOptions().
func SolveForwardCheck(p *Problem, out []int, data any, opt *SearchOptions) bool {
	requireInitialized()
	if p == nil {
		panic("csp: nil problem")
	}
	if len(out) != p.NumVariables() {
		panic("csp: out has wrong length for problem")
	}
	if opt == nil {
		opt = DefaultSearchOptions()
	}

	ctx := NewContext(p)
	for i := 0; i < p.NumVariables(); i++ {
		if ctx.IsAssigned(i) {
			out[i] = ctx.LiveValues(i)[0]
		}
	}

	return fcSearch(p, out, data, ctx, opt) == searchSolved
}

// fcSearch is the recursive forward-checking driver of §4.9.
func fcSearch(p *Problem, a []int, data any, ctx *Context, opt *SearchOptions) searchResult {
	if opt.cancelRequested() {
		return searchCancelled
	}
	if ctx.AllAssigned() {
		// A problem whose variables are all pinned to a single value by
		// initial unary pruning alone (§4.4) never enters the loop below,
		// so binary and higher-arity constraints among those variables
		// would otherwise go unverified. fcConsistent here is a whole-scan
		// over already-fully-assigned scopes (the loop body's per-step
		// call below does the same scan incrementally); doing it once at
		// the terminal case keeps the fully-pre-assigned edge case sound.
		if fcConsistent(p, a, data, ctx) {
			return searchSolved
		}
		return searchUnsatisfied
	}

	x := SelectMRV(ctx)
	order := OrderLCV(p, ctx, a, data, x)

	for _, u := range order {
		a[x] = u
		ctx.SetAssigned(x, true)
		opt.trace("csp: try var=%d value=%d", x, u)

		if !fcConsistent(p, a, data, ctx) {
			ctx.SetAssigned(x, false)
			opt.trace("csp: reject var=%d value=%d (inconsistent)", x, u)
			continue
		}

		watermark := ctx.mark()
		pruneNeighbors(p, a, data, ctx, x)

		switch fcSearch(p, a, data, ctx, opt) {
		case searchSolved:
			return searchSolved
		case searchCancelled:
			ctx.restore(watermark)
			ctx.SetAssigned(x, false)
			return searchCancelled
		}

		ctx.restore(watermark)
		ctx.SetAssigned(x, false)
		opt.trace("csp: backtrack var=%d value=%d", x, u)
	}

	return searchUnsatisfied
}

// fcConsistent checks every constraint whose scope variables are all
// marked assigned in ctx (§4.9) — a set-membership test on assigned flags,
// not a comparison against a frontier index, since MRV can assign variables
// out of order.
func fcConsistent(p *Problem, a []int, data any, ctx *Context) bool {
	for slot := 0; slot < p.NumConstraints(); slot++ {
		c := p.ConstraintAt(slot)
		if c == nil {
			continue
		}
		if !scopeAllAssigned(c, ctx) {
			continue
		}
		if !c.predicate(c, a, data) {
			return false
		}
	}
	return true
}

func scopeAllAssigned(c *Constraint, ctx *Context) bool {
	for _, v := range c.Scope() {
		if !ctx.IsAssigned(v) {
			return false
		}
	}
	return true
}
