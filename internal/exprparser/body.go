package exprparser

import (
	"github.com/lavender-lang/lavender/internal/operator"
	"github.com/lavender-lang/lavender/internal/postfix"
	"github.com/lavender-lang/lavender/internal/textbuffer"
	"github.com/lavender-lang/lavender/internal/token"
)

// ParseBody parses a whole function body: one expression, or a
// piecewise chain of ";"-separated sub-expressions read as
// condition/value pairs with an optional trailing default. Each pair
// compiles to the condition, a BranchIfZero skipping the value when
// the condition is false, the value, and a Return; a false fall-through
// continues with the next pair.
func ParseBody(cur *token.Cursor, decl *operator.Operator, table *operator.Table, buf *textbuffer.Buffer) ([]postfix.Instr, error) {
	var pieces [][]postfix.Instr
	for {
		piece, err := ParseExpr(cur, decl, table, buf)
		if err != nil {
			return nil, err
		}
		pieces = append(pieces, piece)
		next := cur.Peek()
		if next.Type != token.LITERAL || next.Lexeme != ";" {
			break
		}
		// ";" is also the separator between declarations: one followed
		// by a fresh "def" (or nothing) closes this body instead of
		// starting another piece.
		la := cur.PeekAt(1)
		if la.Type == token.EOF || la.Lexeme == "def" ||
			(la.Type == token.LITERAL && la.Lexeme == "(" && cur.PeekAt(2).Lexeme == "def") {
			cur.Advance()
			break
		}
		cur.Advance()
	}
	if len(pieces) == 1 {
		return pieces[0], nil
	}

	var out []postfix.Instr
	for i := 0; i+1 < len(pieces); i += 2 {
		cond, val := pieces[i], pieces[i+1]
		out = append(out, cond...)
		out = append(out, postfix.BranchIfZero(len(val)+1))
		out = append(out, val...)
		out = append(out, postfix.Return())
	}
	if len(pieces)%2 == 1 {
		out = append(out, pieces[len(pieces)-1]...)
	}
	return out, nil
}
