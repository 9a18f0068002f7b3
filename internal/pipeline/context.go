package pipeline

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/brio-lang/brio/internal/ast"
	"github.com/brio-lang/brio/internal/diagnostics"
	"github.com/brio-lang/brio/internal/typedast"
	"github.com/brio-lang/brio/internal/typesystem"
)

// Context is the state shared by all pipeline stages for one compilation.
// Each run gets a unique id so interleaved verbose traces can be told apart.
type Context struct {
	RunID    string
	FilePath string
	Source   string

	AstRoot       *ast.Document
	Schema        *typesystem.TypeSchema
	Constrained   *typesystem.ConstrainedDocument
	TypedDocument *typedast.Document
	EmittedJS     string

	Error *diagnostics.DiagnosticError

	TraceWriter io.Writer
}

func NewContext(filePath, source string) *Context {
	return &Context{
		RunID:    uuid.NewString(),
		FilePath: filePath,
		Source:   source,
	}
}

// Tracef writes a stage trace line when tracing is enabled.
func (c *Context) Tracef(format string, args ...any) {
	if c.TraceWriter == nil {
		return
	}
	fmt.Fprintf(c.TraceWriter, "[%s] %s\n", c.RunID[:8], fmt.Sprintf(format, args...))
}
