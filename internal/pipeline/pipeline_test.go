package pipeline_test

import (
	"testing"

	"github.com/lavender-lang/lavender/internal/operator"
	"github.com/lavender-lang/lavender/internal/pipeline"
)

// TestParseSourceDeclaresEveryTopLevelDef drives the whole front end
// over a small multi-function source.
func TestParseSourceDeclaresEveryTopLevelDef(t *testing.T) {
	// ParseSource owns its own fresh operator table (no external
	// evaluator's builtin set is injected), so these bodies only call
	// previously-declared user functions rather than infix builtins
	// like "+" that a real Lavender program would have preloaded.
	src := `def f(x) => x; def g(x, y) => f(x);`
	res := pipeline.ParseSource(src)
	if len(res.Errs) != 0 {
		t.Fatalf("ParseSource errs = %v, want none", res.Errs)
	}
	if len(res.Decls) != 2 {
		t.Fatalf("ParseSource decls = %d, want 2", len(res.Decls))
	}
	if res.Decls[0].Name != "f" || res.Decls[1].Name != "g" {
		t.Errorf("decl names = %q, %q, want f, g", res.Decls[0].Name, res.Decls[1].Name)
	}
	for _, op := range res.Decls {
		if !op.HasBody() {
			t.Errorf("operator %q should have a body installed after ExprProcessor runs", op.Name)
		}
	}
}

func TestParseSourceStopsAtFirstError(t *testing.T) {
	// The second declaration reuses a reserved keyword as its name, which
	// fails declaration; "+" is deliberately avoided since a fresh table
	// (see the comment above) has no builtin infix operators preloaded.
	src := `def f(x) => x; def def(x) => x;`
	res := pipeline.ParseSource(src)
	if len(res.Errs) != 1 {
		t.Fatalf("ParseSource errs = %d, want exactly 1", len(res.Errs))
	}
	if len(res.Decls) != 1 {
		t.Errorf("ParseSource decls = %d, want 1 (the valid decl before the error)", len(res.Decls))
	}
}

func TestParseSourceRegistersIntoSharedTable(t *testing.T) {
	src := `def f(x) => x;`
	res := pipeline.ParseSource(src)
	got, ok := res.Table.Get("f", operator.NSPrefix)
	if !ok || got != res.Decls[0] {
		t.Errorf("Table.Get(f) = %v, %v, want the declared operator", got, ok)
	}
}
