package exprparser

import (
	"github.com/lavender-lang/lavender/internal/declparser"
)

// nestedDef handles the keyword "def" in operand position: the nested
// function is declared and its body parsed recursively, then a
// FunctionValue referring to it becomes the operand. The nested
// function captures every parameter and local of the enclosing one, so
// its value is bound with a FuncCap like any other captured reference.
func (p *Parser) nestedDef() error {
	op, _, err := declparser.Declare(p.cur, p.decl, "", p.table)
	if err != nil {
		return err
	}
	body, err := ParseBody(p.cur, op, p.table, p.buf)
	if err != nil {
		return err
	}
	op.Define(p.buf.AddExpr(body))

	p.pushFunctionValue(op)
	p.expectOperand = false
	return nil
}
