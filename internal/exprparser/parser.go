// Package exprparser implements the modified shunting-yard expression
// parser: infix token streams become flat postfix instruction vectors.
// The modifications over the textbook algorithm are Lavender's bracket
// semantics (square-bracket argument transposition, brace vector
// literals, value calls), by-name thunk lifting, nested def in operand
// position, and implicit capture-parameter injection when an operator
// with captured parameters is emitted.
//
// Operators pending on the ops stack carry an operand countdown:
// a prefix operator is emitted as soon as its last operand arrives,
// so argument counts are validated by construction rather than by a
// separate per-group counter stack. Infix operators complete when a
// lower-precedence operator, a closing bracket, or the end of the
// expression forces them off the stack.
package exprparser

import (
	"strings"

	"github.com/lavender-lang/lavender/internal/algebra"
	"github.com/lavender-lang/lavender/internal/bigint"
	"github.com/lavender-lang/lavender/internal/diagnostics"
	"github.com/lavender-lang/lavender/internal/operator"
	"github.com/lavender-lang/lavender/internal/postfix"
	"github.com/lavender-lang/lavender/internal/textbuffer"
	"github.com/lavender-lang/lavender/internal/token"
	"github.com/lavender-lang/lavender/internal/value"
)

type opsKind int

const (
	opsOperator opsKind = iota
	opsBracket
)

type opsEntry struct {
	kind opsKind

	// Operator entries. op == nil marks a synthetic entry standing in
	// for a transposed bracket applied directly to a value rather than
	// to a named operator. remaining counts operands still awaited;
	// fed counts operands received (for infix, fed starts at 2: the
	// left operand plus the right one, adjusted if the right side is a
	// parenthesized argument group or an empty-args token).
	op        *operator.Operator
	remaining int
	fed       int

	// viaBracket marks an operator entry that absorbed a transposed
	// [...] argument list; a FuncCall opcode is emitted when it
	// completes.
	viaBracket bool

	// Bracket entries.
	bracket   byte // '(', '[', '{'
	funcCall2 bool
	argCount  int
	sawAny    bool
}

// Parser carries the out and ops stacks, the expectOperand state, and
// the scope/table/buffer context threaded through every step.
type Parser struct {
	table *operator.Table
	buf   *textbuffer.Buffer
	decl  *operator.Operator
	cur   *token.Cursor

	out           []postfix.Instr
	ops           []*opsEntry
	depth         int // open brackets on ops
	expectOperand bool
}

// ParseExpr consumes tokens starting at the first body token, in the
// context of the owning operator decl, and returns the postfix
// instruction vector, leaving the cursor at the first token after the
// expression (possibly ";", ",", a closing bracket, or EOF —
// terminators are not consumed).
func ParseExpr(cur *token.Cursor, decl *operator.Operator, table *operator.Table, buf *textbuffer.Buffer) ([]postfix.Instr, error) {
	p := &Parser{table: table, buf: buf, decl: decl, cur: cur, expectOperand: true}
	if err := p.run(); err != nil {
		return nil, err
	}
	return p.out, nil
}

func (p *Parser) run() error {
	for {
		tok := p.cur.Peek()
		if p.depth == 0 && isTerminator(tok) {
			break
		}
		if tok.Type == token.EOF {
			return diagnostics.NewError(diagnostics.ErrUnterminatedExpr, tok)
		}
		if err := p.step(tok); err != nil {
			return err
		}
	}
	if p.expectOperand {
		if len(p.out) == 0 && len(p.ops) == 0 {
			return diagnostics.NewError(diagnostics.ErrMissingBody, p.cur.Peek())
		}
		return diagnostics.NewError(diagnostics.ErrExpectPrefix, p.cur.Peek())
	}
	if err := p.flushAll(); err != nil {
		return err
	}
	if len(p.out) == 0 {
		return diagnostics.NewError(diagnostics.ErrMissingBody, p.cur.Peek())
	}
	return nil
}

// isTerminator reports whether tok ends the expression when no bracket
// is open: end of stream, ";", an unmatched closer, or a bare ",".
func isTerminator(tok token.Token) bool {
	if tok.Type == token.EOF {
		return true
	}
	if tok.Type == token.LITERAL {
		switch tok.Lexeme {
		case ";", ",", ")", "]", "}":
			return true
		}
	}
	return false
}

func (p *Parser) step(tok token.Token) error {
	if tok.Lexeme == "def" && p.expectOperand {
		return p.nestedDef()
	}
	switch tok.Type {
	case token.NUMBER:
		if !p.expectOperand {
			return diagnostics.NewError(diagnostics.ErrExpectInfix, tok)
		}
		p.cur.Advance()
		n, _ := tok.Literal.(float64)
		p.pushValue(postfix.Const(value.MakeNumber(n)))
		p.expectOperand = false
		return nil
	case token.INTEGER:
		if !p.expectOperand {
			return diagnostics.NewError(diagnostics.ErrExpectInfix, tok)
		}
		p.cur.Advance()
		switch lit := tok.Literal.(type) {
		case int64:
			p.pushValue(postfix.Const(value.MakeInteger(lit)))
		case *bigint.Int:
			// A literal too large for int64; normalization demotes it
			// if it turns out to fit after all.
			p.pushValue(postfix.Const(algebra.Normalize(value.MakeBigInt(lit))))
		}
		p.expectOperand = false
		return nil
	case token.STRING:
		if !p.expectOperand {
			return diagnostics.NewError(diagnostics.ErrExpectInfix, tok)
		}
		p.cur.Advance()
		raw, _ := tok.Literal.(string)
		p.pushValue(postfix.Const(value.MakeString(interpretEscapes(raw))))
		p.expectOperand = false
		return nil
	case token.EMPTY_ARGS:
		return p.emptyArgs(tok)
	case token.FUNC_VAL, token.QUAL_FUNC_VAL:
		return p.stepFuncVal(tok)
	case token.IDENT, token.QUAL_IDENT, token.SYMBOL, token.QUAL_SYMBOL:
		return p.stepName(tok)
	case token.LITERAL:
		return p.stepLiteral(tok)
	default:
		return diagnostics.NewError(diagnostics.ErrUnexpectedToken, tok)
	}
}

func (p *Parser) stepLiteral(tok token.Token) error {
	switch tok.Lexeme {
	case "(":
		return p.openParen()
	case ")":
		return p.closeParen()
	case "[":
		return p.openBracket()
	case "]":
		return p.closeBracket()
	case "{":
		return p.openBrace()
	case "}":
		return p.closeBrace()
	case ",":
		return p.comma()
	case "=>":
		return p.byName()
	default:
		return diagnostics.NewError(diagnostics.ErrUnexpectedToken, tok)
	}
}

// stepName resolves an identifier or symbol token: a parameter name of
// the current scope when an operand is expected, otherwise a function
// in the namespace selected by position (prefix in operand position,
// infix in operator position).
func (p *Parser) stepName(tok token.Token) error {
	if p.expectOperand {
		if idx, ok := p.resolveParam(tok.Lexeme); ok {
			p.cur.Advance()
			p.pushValue(postfix.Param(idx))
			p.expectOperand = false
			return nil
		}
	}

	ns := operator.NamespaceFor(p.expectOperand)
	op, ok := p.resolveOperatorForToken(tok, ns)
	if !ok {
		return diagnostics.NewError(diagnostics.ErrNameNotFound, tok, tok.Lexeme)
	}
	p.cur.Advance()

	if op.Arity() == 0 {
		// A niladic function is a value.
		p.pushValue(postfix.Const(value.MakeFunction(op)))
		p.expectOperand = false
		return nil
	}

	for len(p.ops) > 0 {
		top := p.ops[len(p.ops)-1]
		if top.kind != opsOperator {
			break
		}
		if !shouldShuntBeforePush(top, op) {
			break
		}
		p.ops = p.ops[:len(p.ops)-1]
		if err := p.shuntEntry(top); err != nil {
			return err
		}
	}

	entry := &opsEntry{kind: opsOperator, op: op}
	if op.Fix == operator.Prefix {
		entry.remaining = op.CallableArity()
	} else {
		// The left operand is already on out; one more is awaited.
		entry.remaining = 1
		entry.fed = 2
	}
	p.ops = append(p.ops, entry)

	// An operand follows unless the function completes the expression
	// on its own: after an infix operator or a prefix operator with
	// open slots the next token must begin an operand.
	p.expectOperand = true
	return nil
}

func (p *Parser) resolveParam(name string) (int, bool) {
	if p.decl == nil {
		return 0, false
	}
	for i, pr := range p.decl.Params {
		if pr.Name == name {
			return i, true
		}
	}
	return 0, false
}

// resolveOperator walks the chain of scope prefixes outward from
// innermost to outermost: the current operator's own fully-qualified
// name, then each prefix obtained by dropping its trailing segment,
// down to the unqualified global scope. A nested def's name already
// embeds its enclosing defs' names, so this single colon-split walk
// covers both module-level namespacing and lexical nesting.
func (p *Parser) resolveOperator(name string, ns operator.Namespace) (*operator.Operator, bool) {
	name = strings.ReplaceAll(name, ":", "#")
	scope := ""
	if p.decl != nil {
		scope = p.decl.Name
	}
	for {
		if op, ok := p.table.GetScoped(scope, name, ns); ok {
			return op, true
		}
		if scope == "" {
			return nil, false
		}
		if i := strings.LastIndexByte(scope, ':'); i >= 0 {
			scope = scope[:i]
		} else {
			scope = ""
		}
	}
}

// resolveOperatorForToken dispatches on token type: qualified names
// look up directly at their fully-qualified spelling (with colons in
// the simple-name portion rewritten to '#', mirroring declaration-time
// canonicalization), everything else walks the scope chain.
func (p *Parser) resolveOperatorForToken(tok token.Token, ns operator.Namespace) (*operator.Operator, bool) {
	if tok.Type == token.QUAL_IDENT || tok.Type == token.QUAL_SYMBOL || tok.Type == token.QUAL_FUNC_VAL {
		return p.table.Get(canonicalQualified(tok.Lexeme), ns)
	}
	return p.resolveOperator(tok.Lexeme, ns)
}

// canonicalQualified rewrites every ':' after the scope separator to
// '#', so that a qualified reference to a symbolic name containing
// colons matches its stored spelling.
func canonicalQualified(name string) string {
	i := strings.IndexByte(name, ':')
	if i < 0 {
		return name
	}
	return name[:i+1] + strings.ReplaceAll(name[i+1:], ":", "#")
}

// stepFuncVal handles a \name or \name\ token: always an operand, a
// FunctionValue referring to the named operator. The namespace comes
// from the trailing backslash rather than from expectOperand. Aliases
// whose entire arity is captured are rejected: applying one can never
// consume an argument.
func (p *Parser) stepFuncVal(tok token.Token) error {
	if !p.expectOperand {
		return diagnostics.NewError(diagnostics.ErrExpectInfix, tok)
	}
	ns := operator.NSPrefix
	if tok.Fixing == token.LeftInfix {
		ns = operator.NSInfix
	}
	op, ok := p.resolveOperatorForToken(tok, ns)
	if !ok {
		return diagnostics.NewError(diagnostics.ErrNameNotFound, tok, tok.Lexeme)
	}
	if op.CallableArity() == 0 {
		return diagnostics.NewError(diagnostics.ErrZeroArityAlias, tok, tok.Lexeme)
	}
	p.cur.Advance()
	p.pushFunctionValue(op)
	p.expectOperand = false
	return nil
}

// pushFunctionValue emits a FunctionValue operand. A function with
// captured parameters cannot float free of its environment: its
// capture values are bound immediately with a FuncCap, yielding a
// Capture value at run time instead of a bare function.
func (p *Parser) pushFunctionValue(op *operator.Operator) {
	cc := op.CaptureCount()
	if cc == 0 {
		p.pushValue(postfix.Const(value.MakeFunctionValue(op)))
		return
	}
	instrs := make([]postfix.Instr, 0, cc+2)
	base := arityFor(op, p.decl)
	for i := cc; i > 0; i-- {
		instrs = append(instrs, postfix.Param(base-i))
	}
	instrs = append(instrs, postfix.Const(value.MakeFunctionValue(op)))
	instrs = append(instrs, postfix.FuncCap())
	p.pushValue(instrs...)
}

// emptyArgs handles the "()" token. In operator position it is a
// zero-argument value call: the preceding value is applied to nothing.
// In operand position it explicitly closes the argument list of the
// pending function with zero arguments.
func (p *Parser) emptyArgs(tok token.Token) error {
	p.cur.Advance()
	if !p.expectOperand {
		p.pushValue(postfix.FuncCall2(1))
		return nil
	}
	top := p.topOperator()
	if top == nil || top.viaBracket {
		return diagnostics.NewError(diagnostics.ErrUnexpectedToken, tok)
	}
	if !cascadeEligible(top) {
		// Infix: the right-hand side is explicitly empty; only the
		// left operand counts.
		if top.fed != 2 {
			return diagnostics.NewError(diagnostics.ErrUnexpectedToken, tok)
		}
		top.fed = 1
		p.expectOperand = false
		p.markArgSeen()
		return nil
	}
	if top.fed != 0 {
		return diagnostics.NewError(diagnostics.ErrUnexpectedToken, tok)
	}
	p.expectOperand = false
	p.markArgSeen()
	p.ops = p.ops[:len(p.ops)-1]
	top.remaining = 0
	top.fed = 0
	if err := p.finishOperator(top); err != nil {
		return err
	}
	return p.feed(1)
}

// pushValue appends a completed operand to out and feeds it to any
// pending prefix operator whose operand count it may satisfy.
func (p *Parser) pushValue(instrs ...postfix.Instr) {
	p.out = append(p.out, instrs...)
	p.markArgSeen()
	// Operand arrival cannot fail arity checks by itself; feed only
	// returns an error for a completed operator whose count mismatches,
	// which the countdown construction rules out here.
	_ = p.feed(1)
}

// cascadeEligible reports whether an entry completes by operand count:
// prefix operators, and the synthetic entry a transposed bracket
// leaves behind when applied directly to a value.
func cascadeEligible(top *opsEntry) bool {
	if top.kind != opsOperator {
		return false
	}
	if top.op == nil {
		return top.viaBracket
	}
	return top.op.Fix == operator.Prefix
}

// completesAt is the remaining-count threshold at which an eligible
// entry finishes: a variadic function may stop one operand early,
// collecting an empty tail vector.
func completesAt(top *opsEntry) int {
	if top.op != nil && top.op.Varargs {
		return 1
	}
	return 0
}

// feed delivers n completed operands to the pending operator stack,
// finishing every operator whose count is satisfied; each finished
// operator is itself one operand for the next entry down.
func (p *Parser) feed(n int) error {
	for n > 0 {
		top := p.topOperator()
		if top == nil || !cascadeEligible(top) {
			return nil
		}
		top.remaining -= n
		top.fed += n
		n = 0
		if top.remaining > completesAt(top) {
			return nil
		}
		p.ops = p.ops[:len(p.ops)-1]
		if err := p.finishOperator(top); err != nil {
			return err
		}
		n = 1
	}
	return nil
}

// shuntEntry force-emits an entry popped for precedence or bracket
// reasons; an operand-counted operator popped before its operands all
// arrived is an arity error.
func (p *Parser) shuntEntry(top *opsEntry) error {
	if cascadeEligible(top) && top.remaining > completesAt(top) {
		return diagnostics.NewError(diagnostics.ErrBadArity, p.cur.Peek())
	}
	if err := p.finishOperator(top); err != nil {
		return err
	}
	return p.feed(1)
}

// finishOperator emits a completed entry: by-name argument lifting
// first, while the argument sub-expressions are still topmost on out;
// then the variadic tail collapse; then, for a transposed bracket
// call, the FuncCall opcode; then the implicit capture parameters; and
// finally the operator itself.
func (p *Parser) finishOperator(top *opsEntry) error {
	if top.op != nil {
		if err := p.checkFed(top); err != nil {
			return err
		}
		p.liftByNameArgs(top.op, top.fed)
	}
	ar := top.fed
	if top.op != nil && top.op.Varargs {
		fixed := top.op.CallableArity() - 1
		p.out = append(p.out, postfix.MakeVect(top.fed-fixed))
		ar = top.op.CallableArity()
	}
	if top.viaBracket {
		p.out = append(p.out, postfix.FuncCall(ar))
	}
	if top.op != nil {
		if cc := top.op.CaptureCount(); cc > 0 {
			base := arityFor(top.op, p.decl)
			for i := cc; i > 0; i-- {
				p.out = append(p.out, postfix.Param(base-i))
			}
		}
		p.out = append(p.out, postfix.Const(value.MakeFunction(top.op)))
	}
	return nil
}

// checkFed validates the source argument count against the operator's
// callable arity once the operator is about to be emitted.
func (p *Parser) checkFed(top *opsEntry) error {
	callable := top.op.CallableArity()
	if top.op.Varargs {
		if top.fed < callable-1 {
			return diagnostics.NewError(diagnostics.ErrBadArity, p.cur.Peek())
		}
		return nil
	}
	if top.fed != callable {
		return diagnostics.NewError(diagnostics.ErrBadArity, p.cur.Peek())
	}
	return nil
}

func (p *Parser) flushAll() error {
	for len(p.ops) > 0 {
		top := p.ops[len(p.ops)-1]
		p.ops = p.ops[:len(p.ops)-1]
		if top.kind != opsOperator {
			return diagnostics.NewError(diagnostics.ErrUnmatchedBracket, p.cur.Peek())
		}
		if err := p.shuntEntry(top); err != nil {
			return err
		}
	}
	return nil
}

// topOperator returns the operator entry at the top of ops, or nil if
// ops is empty or topped by a bracket frame.
func (p *Parser) topOperator() *opsEntry {
	if len(p.ops) == 0 {
		return nil
	}
	top := p.ops[len(p.ops)-1]
	if top.kind != opsOperator {
		return nil
	}
	return top
}

// markArgSeen flags the nearest enclosing bracket frame as having seen
// at least one operand since it opened, distinguishing a genuinely
// empty group from a one-argument one.
func (p *Parser) markArgSeen() {
	for i := len(p.ops) - 1; i >= 0; i-- {
		if p.ops[i].kind == opsBracket {
			p.ops[i].sawAny = true
			return
		}
	}
}
