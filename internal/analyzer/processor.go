package analyzer

import (
	"github.com/brio-lang/brio/internal/pipeline"
)

// Processor is the checking stage: it translates the parsed document into a
// constrained document, populating the schema.
type Processor struct{}

func (p *Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	if ctx.AstRoot == nil {
		return ctx
	}
	ctx.Tracef("checking %s", ctx.FilePath)
	a := New()
	constrained, err := a.TranslateDocument(ctx.AstRoot)
	if err != nil {
		ctx.Error = err
		return ctx
	}
	ctx.Schema = a.Schema()
	ctx.Constrained = constrained
	return ctx
}
