package backend

import (
	"github.com/brio-lang/brio/internal/pipeline"
)

// Processor is the emission stage: typed document in, JavaScript out.
type Processor struct{}

func (p *Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	if ctx.TypedDocument == nil {
		return ctx
	}
	ctx.Tracef("emitting %s", ctx.FilePath)
	ctx.EmittedJS = EmitDocument(ctx.TypedDocument)
	return ctx
}
