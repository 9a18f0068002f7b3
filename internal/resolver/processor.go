package resolver

import (
	"github.com/brio-lang/brio/internal/pipeline"
)

// Processor is the resolution stage: it projects the constrained document
// onto concrete types. It only runs on a successfully-checked document.
type Processor struct{}

func (p *Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	if ctx.Schema == nil || ctx.Constrained == nil {
		return ctx
	}
	ctx.Tracef("resolving %s", ctx.FilePath)
	ctx.TypedDocument = ResolveDocument(ctx.Schema, ctx.Constrained)
	return ctx
}
