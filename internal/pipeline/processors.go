package pipeline

import (
	"github.com/lavender-lang/lavender/internal/declparser"
	"github.com/lavender-lang/lavender/internal/diagnostics"
	"github.com/lavender-lang/lavender/internal/exprparser"
	"github.com/lavender-lang/lavender/internal/lexer"
	"github.com/lavender-lang/lavender/internal/token"
)

// LexProcessor runs the lexer over Source and installs the resulting
// cursor on the context. It runs once per file, ahead of the
// per-declaration stages.
type LexProcessor struct {
	Source string
}

func (p LexProcessor) Process(ctx *PipelineContext) *PipelineContext {
	toks, err := lexer.Lex(p.Source)
	if err != nil {
		ctx.Err = err
		return ctx
	}
	ctx.Cur = token.NewCursor(toks)
	return ctx
}

// DeclProcessor runs the declaration parser for exactly one function,
// leaving ctx.Cur positioned at the first body token and ctx.Op
// holding the forward-declared operator.
type DeclProcessor struct{}

func (DeclProcessor) Process(ctx *PipelineContext) *PipelineContext {
	op, wrapped, err := declparser.Declare(ctx.Cur, ctx.Enclosing, "", ctx.Table)
	if err != nil {
		ctx.Err = err
		return ctx
	}
	ctx.Op = op
	ctx.Wrapped = wrapped
	return ctx
}

// ExprProcessor runs the expression parser over ctx.Op's body, appends
// the resulting postfix vector to the shared text buffer, and installs
// its offset on ctx.Op, completing the forward declaration.
type ExprProcessor struct{}

func (ExprProcessor) Process(ctx *PipelineContext) *PipelineContext {
	body, err := exprparser.ParseBody(ctx.Cur, ctx.Op, ctx.Table, ctx.Buf)
	if err != nil {
		ctx.Err = err
		return ctx
	}
	if ctx.Wrapped {
		closer := ctx.Cur.Peek()
		if closer.Type != token.LITERAL || closer.Lexeme != ")" {
			ctx.Err = diagnostics.NewError(diagnostics.ErrUnmatchedBracket, closer)
			return ctx
		}
		ctx.Cur.Advance()
	}
	ctx.Op.Define(ctx.Buf.AddExpr(body))
	ctx.Body = body
	return ctx
}
