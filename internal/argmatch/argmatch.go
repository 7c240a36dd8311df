// Package argmatch implements the three-phase argument matcher from
// spec.md §4.2: named arguments bind by name, positional arguments
// fill what's left in order, and ellipsis arguments are collected
// separately for behaviors that opt in.
package argmatch

import "github.com/eisenwave/cowel-sub001/internal/ast"

// ArgumentStatus is the per-argument outcome of matching.
type ArgumentStatus int

const (
	ArgOK ArgumentStatus = iota
	ArgUnmatched
	ArgDuplicateNamed
)

// Param declares one named parameter a directive accepts, in
// declaration order.
type Param struct {
	Name string
}

// Result is the outcome of matching an invocation's arguments against
// a parameter list.
type Result struct {
	// ParamToArg maps each parameter's index to the bound argument's
	// index in the original invocation, or -1 if unbound.
	ParamToArg []int
	// ArgStatus holds, for every argument in invocation order, whether
	// it bound cleanly, was left unmatched, or duplicated a named slot.
	ArgStatus []ArgumentStatus
	// Ellipsis holds the indices of every ellipsis argument, in
	// invocation order, for behaviors that opt into variadic trailing
	// arguments.
	Ellipsis []int
}

// Match runs the three-phase algorithm from spec.md §4.2 over args
// against params.
func Match(params []Param, args []ast.Argument) Result {
	paramIndex := make(map[string]int, len(params))
	for i, p := range params {
		paramIndex[p.Name] = i
	}

	res := Result{
		ParamToArg: make([]int, len(params)),
		ArgStatus:  make([]ArgumentStatus, len(args)),
	}
	for i := range res.ParamToArg {
		res.ParamToArg[i] = -1
	}

	bound := make([]bool, len(params))

	// Phase 1: named arguments.
	for i, a := range args {
		if a.Kind != ast.ArgNamed {
			continue
		}
		pi, known := paramIndex[a.Name]
		if !known {
			res.ArgStatus[i] = ArgUnmatched
			continue
		}
		if bound[pi] {
			res.ArgStatus[i] = ArgDuplicateNamed
			continue
		}
		bound[pi] = true
		res.ParamToArg[pi] = i
		res.ArgStatus[i] = ArgOK
	}

	// Phase 2: positional arguments fill remaining unbound params,
	// left to right.
	nextParam := 0
	for i, a := range args {
		if a.Kind != ast.ArgPositional {
			continue
		}
		for nextParam < len(params) && bound[nextParam] {
			nextParam++
		}
		if nextParam >= len(params) {
			res.ArgStatus[i] = ArgUnmatched
			continue
		}
		bound[nextParam] = true
		res.ParamToArg[nextParam] = i
		res.ArgStatus[i] = ArgOK
		nextParam++
	}

	// Phase 3: ellipsis arguments are collected separately.
	for i, a := range args {
		if a.Kind == ast.ArgEllipsis {
			res.Ellipsis = append(res.Ellipsis, i)
			res.ArgStatus[i] = ArgOK
		}
	}

	return res
}

// Arg returns the argument bound to parameter index pi, if any.
func (r Result) Arg(args []ast.Argument, pi int) (ast.Argument, bool) {
	if pi < 0 || pi >= len(r.ParamToArg) {
		return ast.Argument{}, false
	}
	ai := r.ParamToArg[pi]
	if ai < 0 {
		return ast.Argument{}, false
	}
	return args[ai], true
}

// Unmatched returns the indices of arguments that did not bind to any
// parameter, for behaviors that want to warn about ignored extras.
func (r Result) Unmatched() []int {
	var out []int
	for i, s := range r.ArgStatus {
		if s == ArgUnmatched {
			out = append(out, i)
		}
	}
	return out
}

// Duplicates returns the indices of named arguments that collided with
// an already-bound parameter.
func (r Result) Duplicates() []int {
	var out []int
	for i, s := range r.ArgStatus {
		if s == ArgDuplicateNamed {
			out = append(out, i)
		}
	}
	return out
}
