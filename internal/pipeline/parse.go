package pipeline

import (
	"github.com/lavender-lang/lavender/internal/operator"
	"github.com/lavender-lang/lavender/internal/textbuffer"
)

// Result is what ParseSource hands back: the populated operator table
// and text buffer, the top-level operators declared in source order,
// and every error encountered.
type Result struct {
	Table *operator.Table
	Buf   *textbuffer.Buffer
	Decls []*operator.Operator
	Errs  []error
}

// ParseSource drives the whole front end over a source file: lex once,
// then declare and define every top-level "def" in turn. Nested defs
// are handled recursively inside the expression parser and never reach
// this loop. The outer loop stops at the first failing declaration;
// there is no reliable token to resynchronize on past a malformed
// declaration, and resuming at a guessed point manufactures cascading
// errors for the declarations that follow.
func ParseSource(src string) *Result {
	table := operator.NewTable()
	buf := textbuffer.New()

	lexCtx := LexProcessor{Source: src}.Process(&PipelineContext{Table: table, Buf: buf})
	if lexCtx.Err != nil {
		return &Result{Table: table, Buf: buf, Errs: []error{lexCtx.Err}}
	}

	var decls []*operator.Operator
	var errs []error
	pipe := New(DeclProcessor{}, ExprProcessor{})

	for !lexCtx.Cur.AtEnd() {
		ctx := pipe.Run(&PipelineContext{Table: table, Buf: buf, Cur: lexCtx.Cur})
		if ctx.Err != nil {
			errs = append(errs, ctx.Err)
			break
		}
		decls = append(decls, ctx.Op)
	}

	return &Result{Table: table, Buf: buf, Decls: decls, Errs: errs}
}
