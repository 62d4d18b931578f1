package exprparser

import "github.com/lavender-lang/lavender/internal/operator"

// arityFor computes the base index for the implicit capture parameters
// injected when a function f declared somewhere in the lexical chain
// is referenced from scope s. A recursive reference sees s's own
// parameters but not its locals; a reference to a function declared in
// an outer scope skips the locals of every scope in between, since
// those indexes do not exist in f's parameter layout.
func arityFor(f *operator.Operator, s *operator.Operator) int {
	if s == nil {
		return 0
	}
	if f == s {
		return s.Arity()
	}
	skip := 0
	outer := s.Enclosing
	for outer != nil && outer != f {
		skip += outer.Locals
		outer = outer.Enclosing
	}
	if outer == nil {
		return s.Arity() + s.Locals
	}
	return s.Arity() - skip - outer.Locals
}
