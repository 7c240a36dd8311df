package argmatch

import (
	"testing"

	"github.com/eisenwave/cowel-sub001/internal/ast"
)

func TestMatchNamedThenPositional(t *testing.T) {
	params := []Param{{Name: "a"}, {Name: "b"}, {Name: "c"}}
	args := []ast.Argument{
		{Kind: ast.ArgNamed, Name: "b"},
		{Kind: ast.ArgPositional},
		{Kind: ast.ArgPositional},
	}
	res := Match(params, args)

	if res.ParamToArg[1] != 0 {
		t.Errorf("param b should bind to named arg 0, got %d", res.ParamToArg[1])
	}
	if res.ParamToArg[0] != 1 {
		t.Errorf("param a should bind to positional arg 1, got %d", res.ParamToArg[0])
	}
	if res.ParamToArg[2] != 2 {
		t.Errorf("param c should bind to positional arg 2, got %d", res.ParamToArg[2])
	}
}

func TestMatchDuplicateNamed(t *testing.T) {
	params := []Param{{Name: "a"}}
	args := []ast.Argument{
		{Kind: ast.ArgNamed, Name: "a"},
		{Kind: ast.ArgNamed, Name: "a"},
	}
	res := Match(params, args)
	if res.ArgStatus[0] != ArgOK {
		t.Errorf("first named arg should be OK")
	}
	if res.ArgStatus[1] != ArgDuplicateNamed {
		t.Errorf("second named arg should be flagged duplicate, got %v", res.ArgStatus[1])
	}
}

func TestMatchUnknownNamedIsUnmatched(t *testing.T) {
	params := []Param{{Name: "a"}}
	args := []ast.Argument{{Kind: ast.ArgNamed, Name: "nope"}}
	res := Match(params, args)
	if res.ArgStatus[0] != ArgUnmatched {
		t.Errorf("unknown named arg should be unmatched, got %v", res.ArgStatus[0])
	}
	if got := res.Unmatched(); len(got) != 1 || got[0] != 0 {
		t.Errorf("Unmatched() = %v, want [0]", got)
	}
}

func TestMatchExtraPositionalIsUnmatched(t *testing.T) {
	params := []Param{{Name: "a"}}
	args := []ast.Argument{
		{Kind: ast.ArgPositional},
		{Kind: ast.ArgPositional},
	}
	res := Match(params, args)
	if res.ArgStatus[0] != ArgOK {
		t.Errorf("first positional should bind")
	}
	if res.ArgStatus[1] != ArgUnmatched {
		t.Errorf("extra positional should be unmatched, got %v", res.ArgStatus[1])
	}
}

func TestMatchEllipsisCollected(t *testing.T) {
	params := []Param{{Name: "a"}}
	args := []ast.Argument{
		{Kind: ast.ArgPositional},
		{Kind: ast.ArgEllipsis},
		{Kind: ast.ArgEllipsis},
	}
	res := Match(params, args)
	if len(res.Ellipsis) != 2 || res.Ellipsis[0] != 1 || res.Ellipsis[1] != 2 {
		t.Errorf("Ellipsis = %v, want [1 2]", res.Ellipsis)
	}
}

func TestArgHelper(t *testing.T) {
	params := []Param{{Name: "a"}}
	args := []ast.Argument{{Kind: ast.ArgNamed, Name: "a"}}
	res := Match(params, args)
	got, ok := res.Arg(args, 0)
	if !ok || got.Name != "a" {
		t.Errorf("Arg(0) = %v, %v", got, ok)
	}
	_, ok = res.Arg(args, 5)
	if ok {
		t.Errorf("Arg(5) should report not found")
	}
}
