package exprparser

import (
	"github.com/lavender-lang/lavender/internal/diagnostics"
	"github.com/lavender-lang/lavender/internal/postfix"
)

// openParen handles "(" in either operand position (plain grouping,
// which doubles as the argument list of a pending prefix function) or
// operator position, where it applies the preceding value to an
// explicit argument list. The value call binds like a left-infix
// operator: anything of greater or equal precedence is emitted first.
func (p *Parser) openParen() error {
	isCall2 := !p.expectOperand
	if isCall2 {
		for len(p.ops) > 0 {
			top := p.ops[len(p.ops)-1]
			if top.kind != opsOperator {
				break
			}
			if cmp(entryPrecedence(top), funcCall2Precedence) < 0 {
				break
			}
			p.ops = p.ops[:len(p.ops)-1]
			if err := p.shuntEntry(top); err != nil {
				return err
			}
		}
	}
	p.cur.Advance()
	p.ops = append(p.ops, &opsEntry{kind: opsBracket, bracket: '(', funcCall2: isCall2})
	p.depth++
	p.expectOperand = true
	return nil
}

// closeParen shunts pending operators until the matching "(", pops it,
// and delivers the group's contents: a value call emits FuncCall2
// counting the callee along with its arguments, while a plain group
// feeds its comma-separated items to the pending operator.
func (p *Parser) closeParen() error {
	tok := p.cur.Peek()
	entry, err := p.shuntToBracket('(')
	if err != nil {
		return err
	}
	if p.expectOperand && entry.sawAny {
		return diagnostics.NewError(diagnostics.ErrExpectPrefix, tok)
	}
	p.cur.Advance()
	p.depth--
	n := callArity(entry)
	if entry.funcCall2 {
		p.pushValue(postfix.FuncCall2(n + 1))
		p.expectOperand = false
		return nil
	}
	if err := p.feedGroup(n); err != nil {
		return err
	}
	p.markArgSeen()
	p.expectOperand = false
	return nil
}

// feedGroup delivers the n comma-separated items of a closed paren
// group. A single item is an ordinary operand; several items form the
// argument list of the pending function, which for an infix operator
// means extra right-hand arguments beyond the usual one.
func (p *Parser) feedGroup(n int) error {
	top := p.topOperator()
	if top != nil && cascadeEligible(top) {
		return p.feed(n)
	}
	if n <= 1 {
		return p.feed(n)
	}
	if top != nil && top.op != nil {
		top.fed += n - 1
		return nil
	}
	return diagnostics.NewError(diagnostics.ErrBadArity, p.cur.Peek())
}

// openBracket begins square-bracket argument transposition: the
// bracketed list supplies leading arguments for the pending function
// (or preceding value), whose final argument is the sub-expression
// following "]".
func (p *Parser) openBracket() error {
	if !p.expectOperand {
		return diagnostics.NewError(diagnostics.ErrExpectInfix, p.cur.Peek())
	}
	p.cur.Advance()
	p.ops = append(p.ops, &opsEntry{kind: opsBracket, bracket: '['})
	p.depth++
	p.expectOperand = true
	return nil
}

// closeBracket folds the bracket's argument count into whatever is
// pending beneath it: a still-open prefix operator has that many fewer
// operands left to await, and if nothing is pending — the brackets
// were applied directly to a value — a synthetic entry stands in for
// it. Either way the trailing sub-expression is mandatory, and its
// arrival is what completes the deferred call.
func (p *Parser) closeBracket() error {
	tok := p.cur.Peek()
	entry, err := p.shuntToBracket('[')
	if err != nil {
		return err
	}
	if p.expectOperand && entry.sawAny {
		return diagnostics.NewError(diagnostics.ErrExpectPrefix, tok)
	}
	p.cur.Advance()
	p.depth--
	n := callArity(entry)

	if top := p.topOperator(); top != nil && cascadeEligible(top) && top.op != nil {
		top.remaining -= n
		top.fed += n
		top.viaBracket = true
		if !top.op.Varargs && top.remaining <= 0 {
			// The trailing sub-expression is still to come; a bracket
			// list that already exhausts the arity leaves no room for
			// it.
			return diagnostics.NewError(diagnostics.ErrBadArity, tok)
		}
	} else {
		p.ops = append(p.ops, &opsEntry{
			kind:       opsOperator,
			remaining:  1,
			fed:        n,
			viaBracket: true,
		})
	}
	p.expectOperand = true
	return nil
}

// openBrace begins a vector literal.
func (p *Parser) openBrace() error {
	if !p.expectOperand {
		return diagnostics.NewError(diagnostics.ErrExpectInfix, p.cur.Peek())
	}
	p.cur.Advance()
	p.ops = append(p.ops, &opsEntry{kind: opsBracket, bracket: '{'})
	p.depth++
	p.expectOperand = true
	return nil
}

// closeBrace shunts until "{", pops it, and emits MakeVect with the
// element count; "{}" is the empty vector.
func (p *Parser) closeBrace() error {
	tok := p.cur.Peek()
	entry, err := p.shuntToBracket('{')
	if err != nil {
		return err
	}
	if p.expectOperand && entry.sawAny {
		return diagnostics.NewError(diagnostics.ErrExpectPrefix, tok)
	}
	p.cur.Advance()
	p.depth--
	p.pushValue(postfix.MakeVect(callArity(entry)))
	p.expectOperand = false
	return nil
}

// comma completes the current argument: pending operators are emitted
// down to the enclosing group, whose argument counter advances.
func (p *Parser) comma() error {
	tok := p.cur.Peek()
	if p.expectOperand {
		return diagnostics.NewError(diagnostics.ErrExpectPrefix, tok)
	}
	for len(p.ops) > 0 {
		top := p.ops[len(p.ops)-1]
		if top.kind == opsBracket {
			top.argCount++
			top.sawAny = true
			p.cur.Advance()
			p.expectOperand = true
			return nil
		}
		p.ops = p.ops[:len(p.ops)-1]
		if err := p.shuntEntry(top); err != nil {
			return err
		}
	}
	return diagnostics.NewError(diagnostics.ErrUnexpectedToken, tok)
}

// shuntToBracket pops operator entries to out until the matching
// bracket frame is found, then pops and returns that frame.
func (p *Parser) shuntToBracket(bracket byte) (*opsEntry, error) {
	for len(p.ops) > 0 {
		top := p.ops[len(p.ops)-1]
		if top.kind == opsBracket {
			if top.bracket != bracket {
				return nil, diagnostics.NewError(diagnostics.ErrUnmatchedBracket, p.cur.Peek())
			}
			p.ops = p.ops[:len(p.ops)-1]
			return top, nil
		}
		p.ops = p.ops[:len(p.ops)-1]
		if err := p.shuntEntry(top); err != nil {
			return nil, err
		}
	}
	return nil, diagnostics.NewError(diagnostics.ErrUnmatchedBracket, p.cur.Peek())
}

func callArity(e *opsEntry) int {
	if !e.sawAny {
		return 0
	}
	return e.argCount + 1
}
