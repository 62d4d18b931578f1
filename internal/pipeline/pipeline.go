package pipeline

// Pipeline chains the front end's stages over one shared context: a
// declaration runs Decl then Expr against the same operator table and
// text buffer.
type Pipeline struct {
	stages []Processor
}

func New(stages ...Processor) *Pipeline {
	return &Pipeline{stages: stages}
}

// Run threads ctx through each stage in order, stopping at the first
// recorded error; a later stage never sees a half-built declaration.
func (p *Pipeline) Run(ctx *PipelineContext) *PipelineContext {
	for _, stage := range p.stages {
		ctx = stage.Process(ctx)
		if ctx.Err != nil {
			break
		}
	}
	return ctx
}
