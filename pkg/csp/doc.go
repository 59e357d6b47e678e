// Package csp implements the core search engine for finite-domain constraint
// satisfaction problems (CSPs): a plain backtracking solver and a
// forward-checking solver augmented with the Minimum Remaining Values (MRV)
// variable-ordering heuristic and the Least Constraining Value (LCV)
// value-ordering heuristic.
//
// # Building a problem
//
// A Problem is a fixed-size collection of variables, each with an integer
// domain [0, d), and a fixed number of constraint slots filled once by the
// builder API:
//
//	p := csp.NewProblem(2, 1)
//	p.SetDomain(0, 2)
//	p.SetDomain(1, 2)
//	c := csp.NewConstraint(2, notEqual)
//	c.SetScopeVariable(0, 0)
//	c.SetScopeVariable(1, 1)
//	p.Install(0, c)
//
// # Solving
//
// SolveBacktrack performs chronological backtracking with no pruning.
// SolveForwardCheck additionally prunes neighbor domains on every assignment
// and orders variables and values with MRV/LCV. Both return the first
// solution found, or false if the problem is unsatisfiable (or, for
// SolveForwardCheck, if a CancelToken was tripped mid-search).
package csp
