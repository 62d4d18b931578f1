// Package declparser implements the declaration parser: it consumes a
// token stream beginning at "def", forward-declares the function —
// name, fixing, arity, varargs flag, by-name parameter flags, captured
// parameters inherited from the enclosing function, and let-bound
// locals — and registers the descriptor in the operator table, leaving
// the cursor at the first body token.
package declparser

import (
	"strings"

	"github.com/lavender-lang/lavender/internal/diagnostics"
	"github.com/lavender-lang/lavender/internal/operator"
	"github.com/lavender-lang/lavender/internal/token"
)

// maxParams caps the parameter count of a single declaration,
// including captures and locals.
const maxParams = 256

var reservedNames = map[string]bool{
	"def": true, "let": true, "do": true, "=>": true,
	"<-": true, "native": true, "_": true, ":": true,
}

// Declare consumes a token stream positioned optionally at "(", then
// "def", declares a forward-declared Operator and registers it in
// table under ns, and returns the operator plus whether the
// declaration was parenthesized (the caller owns the matching ")",
// which follows the body). On success the cursor is left at the first
// body token, past "=>".
func Declare(cur *token.Cursor, enclosing *operator.Operator, ns string, table *operator.Table) (*operator.Operator, bool, error) {
	wrapped := false
	if cur.Peek().Type == token.LITERAL && cur.Peek().Lexeme == "(" {
		cur.Advance()
		wrapped = true
	}

	defTok := cur.Peek()
	if defTok.Lexeme != "def" {
		return nil, false, diagnostics.NewError(diagnostics.ErrNotFunction, defTok)
	}
	cur.Advance()

	fix, simpleName, err := parseNameAndFixing(cur)
	if err != nil {
		return nil, false, err
	}

	fqn := simpleName
	if enclosing != nil {
		fqn = enclosing.Name + ":" + simpleName
	} else if ns != "" {
		fqn = ns + ":" + simpleName
	} else if simpleName == "" {
		// anonymous at global scope: the name is a bare ":"
		fqn = ":"
	}

	params, nonCaptured, varargs, byName, err := parseArity(cur)
	if err != nil {
		return nil, false, err
	}

	locals, err := parseLocals(cur)
	if err != nil {
		return nil, false, err
	}

	arrow := cur.Peek()
	if arrow.Type != token.LITERAL || arrow.Lexeme != "=>" {
		return nil, false, diagnostics.NewError(diagnostics.ErrMissingBody, arrow)
	}
	cur.Advance()

	if err := checkFixingArity(fix, len(params), arrow); err != nil {
		return nil, false, err
	}

	captureCount := 0
	fullParams := append([]operator.Param{}, params...)
	if enclosing != nil {
		captureCount = len(enclosing.Params)
		fullParams = append(fullParams, enclosing.Params...)
	}
	fullParams = append(fullParams, locals...)

	if len(fullParams) > maxParams {
		return nil, false, diagnostics.NewError(diagnostics.ErrTooManyParams, defTok)
	}

	fullByName := make([]bool, len(fullParams))
	copy(fullByName, byName)

	op := operator.New(fqn, fix, captureCount, nonCaptured, len(locals), fullParams, varargs, fullByName, enclosing)

	if !table.Add(op, operator.NamespaceFor(fix == operator.Prefix)) {
		return nil, false, diagnostics.NewError(diagnostics.ErrDuplicateDecl, defTok, fqn)
	}

	return op, wrapped, nil
}

// parseNameAndFixing determines fixing from an explicit u_/i_/r_ prefix
// or a FUNC_SYMBOL token's Fixing field, rewrites ':' to '#' inside the
// simple name so that ':' stays an unambiguous scope separator, and
// rejects reserved identifiers. An omitted name declares an anonymous
// function.
func parseNameAndFixing(cur *token.Cursor) (operator.Fixing, string, error) {
	tok := cur.Peek()
	fix := operator.Prefix
	name := tok.Lexeme

	// An omitted name (the parameter list follows directly) declares
	// an anonymous function.
	if isLit(tok, "(") || tok.Type == token.EMPTY_ARGS {
		return fix, "", nil
	}

	switch tok.Type {
	case token.FUNC_SYMBOL, token.FUNC_VAL, token.QUAL_FUNC_VAL:
		if tok.Fixing != token.NoFixing {
			fix = operator.Fixing(tok.Fixing)
		}
	case token.IDENT, token.SYMBOL, token.QUAL_IDENT, token.QUAL_SYMBOL:
		if len(name) > 2 && name[1] == '_' {
			switch name[0] {
			case 'u':
				fix, name = operator.Prefix, name[2:]
			case 'i':
				fix, name = operator.LeftInfix, name[2:]
			case 'r':
				fix, name = operator.RightInfix, name[2:]
			}
		}
	default:
		return 0, "", diagnostics.NewError(diagnostics.ErrNotFunction, tok)
	}
	cur.Advance()

	name = strings.ReplaceAll(name, ":", "#")

	if reservedNames[name] {
		return 0, "", diagnostics.NewError(diagnostics.ErrReservedIdentifier, tok, name)
	}

	return fix, name, nil
}

// checkFixingArity enforces the fixing/arity compatibility rules:
// prefix functions take any arity, infix functions need at least two
// parameters on either associativity. The violation is only detectable
// once the whole parameter list has been parsed, so the arrow token
// stands in as the offending token.
func checkFixingArity(fix operator.Fixing, arity int, tok token.Token) error {
	switch fix {
	case operator.LeftInfix, operator.RightInfix:
		if arity < 2 {
			return diagnostics.NewError(diagnostics.ErrBadFixing, tok)
		}
	}
	return nil
}
