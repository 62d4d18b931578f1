package exprparser

import (
	"strings"

	"github.com/lavender-lang/lavender/internal/operator"
)

// precedence is a comparison tuple: syntactic class first (prefix
// above value calls above infix), then the class keyed by the first
// byte of the simple name, then the "**" bonus.
type precedence struct {
	fixingClass int
	lexClass    int
	doubleStar  int
}

// funcCall2Precedence is the fixed precedence of a value call "(",
// between prefix functions and every infix operator.
var funcCall2Precedence = precedence{fixingClass: 1}

func precedenceOf(op *operator.Operator) precedence {
	if op.Fix == operator.Prefix {
		return precedence{fixingClass: 2}
	}
	name := simpleName(op.Name)
	p := precedence{fixingClass: 0, lexClass: lexicographicClass(name)}
	if strings.HasPrefix(name, "**") {
		p.doubleStar = 1
	}
	return p
}

// entryPrecedence handles the synthetic bracket-transposition entry,
// which binds like a prefix function.
func entryPrecedence(e *opsEntry) precedence {
	if e.op == nil {
		return precedence{fixingClass: 2}
	}
	return precedenceOf(e.op)
}

// simpleName returns the portion of a fully-qualified name after the
// last ':'.
func simpleName(fqn string) string {
	if i := strings.LastIndexByte(fqn, ':'); i >= 0 {
		return fqn[i+1:]
	}
	return fqn
}

// lexicographicClass keys on the first byte of the simple name.
func lexicographicClass(name string) int {
	if name == "" {
		return 0
	}
	switch name[0] {
	case '|':
		return 1
	case '^':
		return 2
	case '&':
		return 3
	case '!', '=':
		return 4
	case '>', '<':
		return 5
	case '#':
		return 6
	case '-', '+':
		return 7
	case '%', '/', '*':
		return 8
	case '~', '?':
		return 9
	default:
		return 0
	}
}

// cmp returns -1/0/1 comparing a to b lexicographically over the tuple.
func cmp(a, b precedence) int {
	if a.fixingClass != b.fixingClass {
		return sign(a.fixingClass - b.fixingClass)
	}
	if a.lexClass != b.lexClass {
		return sign(a.lexClass - b.lexClass)
	}
	return sign(a.doubleStar - b.doubleStar)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// shouldShuntBeforePush decides whether the pending entry top must be
// emitted before next goes onto the stack: a left-infix operator
// yields to greater-or-equal precedence (left association), while
// right-infix and prefix operators yield only to strictly greater, so
// chains of equal-precedence prefix functions nest instead of
// flushing each other.
func shouldShuntBeforePush(top *opsEntry, next *operator.Operator) bool {
	c := cmp(entryPrecedence(top), precedenceOf(next))
	if next.Fix == operator.LeftInfix {
		return c >= 0
	}
	return c > 0
}
