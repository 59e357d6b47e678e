package csp

// SolveBacktrack performs depth-first search with chronological
// backtracking and no pruning. Variables are tried in natural order
// 0..N-1; values within a variable's domain are tried in ascending order.
//
// On success it returns true and leaves the solution in out (which must
// have length p.NumVariables()). On failure it returns false and the
// contents of out are unspecified.
func SolveBacktrack(p *Problem, out []int, data any) bool {
	requireInitialized()
	if p == nil {
		panic("csp: nil problem")
	}
	if len(out) != p.NumVariables() {
		panic("csp: out has wrong length for problem")
	}
	return backtrack(p, out, data, 0)
}

func backtrack(p *Problem, a []int, data any, i int) bool {
	n := p.NumVariables()
	if i == n {
		return true
	}
	d := p.Domain(i)
	for v := 0; v < d; v++ {
		a[i] = v
		if Consistent(p, a, data, i+1) {
			if backtrack(p, a, data, i+1) {
				return true
			}
		}
	}
	return false
}
