package parser

import (
	"github.com/brio-lang/brio/internal/pipeline"
)

// Processor is the parsing stage: source text in, document AST out.
type Processor struct{}

func (p *Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	ctx.Tracef("parsing %s", ctx.FilePath)
	document, err := New(ctx.Source).ParseDocument(ctx.FilePath)
	if err != nil {
		ctx.Error = err
		return ctx
	}
	ctx.AstRoot = document
	return ctx
}
