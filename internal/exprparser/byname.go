package exprparser

import (
	"github.com/lavender-lang/lavender/internal/diagnostics"
	"github.com/lavender-lang/lavender/internal/operator"
	"github.com/lavender-lang/lavender/internal/postfix"
)

// byName handles "=>" directly after an opening bracket: the following
// sub-expression is parsed recursively and wrapped as a zero-argument
// thunk, to be evaluated lazily by whoever receives it. A single atom
// needs no wrapping.
func (p *Parser) byName() error {
	tok := p.cur.Peek()
	if !p.expectOperand || len(p.ops) == 0 || p.ops[len(p.ops)-1].kind != opsBracket {
		return diagnostics.NewError(diagnostics.ErrUnexpectedToken, tok)
	}
	p.cur.Advance()

	sub := &Parser{table: p.table, buf: p.buf, decl: p.decl, cur: p.cur, expectOperand: true}
	if err := sub.run(); err != nil {
		return err
	}

	if isTrivialAtom(sub.out) {
		p.pushValue(sub.out...)
		p.expectOperand = false
		return nil
	}

	anon := p.liftThunk(sub.out)
	p.pushFunctionValue(anon)
	p.expectOperand = false
	return nil
}

func isTrivialAtom(instrs []postfix.Instr) bool {
	if len(instrs) != 1 {
		return false
	}
	switch instrs[0].Op {
	case postfix.OpConst, postfix.OpParam:
		return true
	default:
		return false
	}
}

// liftThunk synthesizes a fresh anonymous operator around body. Every
// parameter and local of the enclosing function becomes a capture, so
// the body's Param references keep their indexes unchanged; the
// thunk's own callable arity is zero.
func (p *Parser) liftThunk(body []postfix.Instr) *operator.Operator {
	captureCount := 0
	name := ":"
	var params []operator.Param
	if p.decl != nil {
		captureCount = p.decl.Arity() + p.decl.Locals
		name = p.decl.Name + ":"
		params = append(params, p.decl.Params...)
	}
	offset := p.buf.AddExpr(body)
	anon := operator.New(name, operator.Prefix, captureCount, 0, 0, params, false, nil, p.decl)
	anon.Define(offset)
	p.table.Add(anon, operator.NSPrefix)
	return anon
}
