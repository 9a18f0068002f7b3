package pipeline

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

// Processor is one stage: it reads and extends the shared context.
type Processor interface {
	Process(ctx *Context) *Context
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the stages in order, stopping at the first error. The checker
// fails fast; later stages never see a partially-checked document.
func (p *Pipeline) Run(initialCtx *Context) *Context {
	ctx := initialCtx
	for _, processor := range p.processors {
		if ctx.Error != nil {
			break
		}
		ctx = processor.Process(ctx)
	}
	return ctx
}
