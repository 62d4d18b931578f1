package declparser

import (
	"github.com/lavender-lang/lavender/internal/diagnostics"
	"github.com/lavender-lang/lavender/internal/operator"
	"github.com/lavender-lang/lavender/internal/token"
)

func isLit(t token.Token, s string) bool {
	return t.Type == token.LITERAL && t.Lexeme == s
}

// parseArity parses the formal parameter list: "(" params? ")" where
// each parameter is optionally marked by-name with a leading "=>" and
// the final parameter may be marked variadic with a leading "...".
// An adjacent "()" declares zero parameters. Returns the parameters,
// their count, the varargs flag, and a parallel by-name bitset.
func parseArity(cur *token.Cursor) ([]operator.Param, int, bool, []bool, error) {
	open := cur.Peek()
	if open.Type == token.EMPTY_ARGS {
		cur.Advance()
		return nil, 0, false, nil, nil
	}
	if !isLit(open, "(") {
		return nil, 0, false, nil, diagnostics.NewError(diagnostics.ErrExpectedArgs, open)
	}
	cur.Advance()

	var params []operator.Param
	var byName []bool
	varargs := false

	if isLit(cur.Peek(), ")") {
		cur.Advance()
		return params, 0, false, byName, nil
	}

	for {
		if varargs {
			// only the final parameter may be variadic
			return nil, 0, false, nil, diagnostics.NewError(diagnostics.ErrBadArgs, cur.Peek())
		}

		isByName := false
		if isLit(cur.Peek(), "=>") {
			isByName = true
			cur.Advance()
		}

		isVarargs := false
		if cur.Peek().Type == token.ELLIPSIS {
			isVarargs = true
			cur.Advance()
		}

		nameTok := cur.Peek()
		if nameTok.Type != token.IDENT {
			return nil, 0, false, nil, diagnostics.NewError(diagnostics.ErrBadArgs, nameTok)
		}
		cur.Advance()

		params = append(params, operator.Param{Name: nameTok.Lexeme, ByName: isByName})
		byName = append(byName, isByName)
		if isVarargs {
			varargs = true
		}

		if isLit(cur.Peek(), ",") {
			cur.Advance()
			continue
		}
		break
	}

	closeTok := cur.Peek()
	if !isLit(closeTok, ")") {
		return nil, 0, false, nil, diagnostics.NewError(diagnostics.ErrBadArgs, closeTok)
	}
	cur.Advance()

	return params, len(params), varargs, byName, nil
}

// parseLocals parses an optional "let" clause: a comma-separated list
// of IDENT "(" initializer ")" bindings. The initializer's tokens are
// captured but not parsed — parenthesis balance is tracked only to
// find where the initializer ends, and the tokens are held on the
// parameter slot for parsing once the body is defined.
func parseLocals(cur *token.Cursor) ([]operator.Param, error) {
	if cur.Peek().Lexeme != "let" {
		return nil, nil
	}
	cur.Advance()

	var locals []operator.Param
	for {
		nameTok := cur.Peek()
		if nameTok.Type != token.IDENT {
			return nil, diagnostics.NewError(diagnostics.ErrBadLocals, nameTok)
		}
		cur.Advance()

		if !isLit(cur.Peek(), "(") {
			return nil, diagnostics.NewError(diagnostics.ErrBadLocals, cur.Peek())
		}
		cur.Advance()

		start := cur.Mark()
		depth := 1
		for depth > 0 {
			t := cur.Peek()
			if t.Type == token.EOF {
				return nil, diagnostics.NewError(diagnostics.ErrUnterminatedExpr, t)
			}
			if isLit(t, "(") {
				depth++
			} else if isLit(t, ")") {
				depth--
				if depth == 0 {
					break
				}
			}
			cur.Advance()
		}
		end := cur.Mark()
		initTokens := make([]token.Token, 0, end-start)
		cur.Reset(start)
		for i := start; i < end; i++ {
			initTokens = append(initTokens, cur.Advance())
		}
		cur.Advance() // consume the closing ')'

		locals = append(locals, operator.Param{Name: nameTok.Lexeme, Initializer: initTokens})

		if isLit(cur.Peek(), ",") {
			cur.Advance()
			continue
		}
		break
	}

	return locals, nil
}
