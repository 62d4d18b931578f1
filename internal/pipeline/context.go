package pipeline

import (
	"github.com/lavender-lang/lavender/internal/operator"
	"github.com/lavender-lang/lavender/internal/postfix"
	"github.com/lavender-lang/lavender/internal/textbuffer"
	"github.com/lavender-lang/lavender/internal/token"
)

// PipelineContext is threaded through every Processor in a run,
// carrying the shared operator table and text buffer plus the
// per-declaration state: the cursor, the operator currently being
// declared and defined, its parsed body, and any error a stage
// recorded.
type PipelineContext struct {
	Table *operator.Table
	Buf   *textbuffer.Buffer
	Cur   *token.Cursor

	// Enclosing is the operator a declaration is nested within, nil at
	// file scope.
	Enclosing *operator.Operator
	Op        *operator.Operator
	// Wrapped reports that the declaration was parenthesized, so a
	// trailing ")" follows the body.
	Wrapped bool
	Body    []postfix.Instr

	Err error
}

// Processor is one stage of a Pipeline: a single method that takes and
// returns a context, so stages compose by simple function application.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}
