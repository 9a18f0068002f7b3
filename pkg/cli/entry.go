// Package cli implements the brio command-line driver.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/brio-lang/brio/internal/analyzer"
	"github.com/brio-lang/brio/internal/backend"
	"github.com/brio-lang/brio/internal/cache"
	"github.com/brio-lang/brio/internal/config"
	"github.com/brio-lang/brio/internal/parser"
	"github.com/brio-lang/brio/internal/pipeline"
	"github.com/brio-lang/brio/internal/prettyprinter"
	"github.com/brio-lang/brio/internal/resolver"
)

const usage = `brio - a small functional language compiling to JavaScript

Usage:
  brio check <file>     typecheck a source file
  brio build <file>     typecheck and emit JavaScript
  brio version          print the compiler version

Flags:
  -o <file>   output path for build
  --types     print the resolved type of every declaration
  --trace     print pipeline stage traces
`

// Run is the driver entry point. It returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	flags, positional := splitFlags(args)
	if len(positional) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	switch positional[0] {
	case "version":
		fmt.Fprintf(stdout, "brio %s\n", config.Version)
		return 0
	case "check":
		if len(positional) < 2 {
			fmt.Fprint(stderr, usage)
			return 2
		}
		return runCheck(positional[1], flags, stdout, stderr)
	case "build":
		if len(positional) < 2 {
			fmt.Fprint(stderr, usage)
			return 2
		}
		return runBuild(positional[1], flags, stdout, stderr)
	default:
		fmt.Fprint(stderr, usage)
		return 2
	}
}

func splitFlags(args []string) (map[string]string, []string) {
	flags := make(map[string]string)
	var positional []string
	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "-o" && i+1 < len(args):
			flags["o"] = args[i+1]
			i++
		case args[i] == "--trace":
			flags["trace"] = "1"
		case args[i] == "--types":
			flags["types"] = "1"
		default:
			positional = append(positional, args[i])
		}
	}
	return flags, positional
}

func newContext(filePath, source string, flags map[string]string, stderr io.Writer) *pipeline.Context {
	ctx := pipeline.NewContext(filePath, source)
	if flags["trace"] != "" {
		ctx.TraceWriter = stderr
	}
	return ctx
}

func runCheck(filePath string, flags map[string]string, stdout, stderr io.Writer) int {
	source, err := os.ReadFile(filePath)
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		return 1
	}

	cfg, err := config.Load(filepath.Join(filepath.Dir(filePath), config.ProjectFileName))
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		return 1
	}

	if flags["types"] != "" {
		ctx := pipeline.New(&parser.Processor{}, &analyzer.Processor{}, &resolver.Processor{}).
			Run(newContext(filePath, string(source), flags, stderr))
		if ctx.Error != nil {
			fmt.Fprintf(stderr, "%s: %s\n", filePath, colorize(ctx.Error.Error()))
			return 1
		}
		fmt.Fprint(stdout, prettyprinter.PrintDeclarationTypes(ctx.TypedDocument))
		return 0
	}

	var store *cache.Cache
	sourceHash := cache.HashSource(string(source))
	if cfg.Cache {
		if store = openCache(stderr); store != nil {
			defer store.Close()
			if result, found, cerr := store.Get(sourceHash); cerr == nil && found {
				return reportCheckResult(filePath, result, stdout, stderr)
			}
		}
	}

	ctx := pipeline.New(&parser.Processor{}, &analyzer.Processor{}).
		Run(newContext(filePath, string(source), flags, stderr))

	result := cache.Result{Passed: ctx.Error == nil}
	if ctx.Error != nil {
		result.Message = ctx.Error.Error()
	}
	if store != nil {
		if err := store.Put(sourceHash, result); err != nil {
			fmt.Fprintf(stderr, "warning: cache write failed: %s\n", err)
		}
	}
	return reportCheckResult(filePath, result, stdout, stderr)
}

func reportCheckResult(filePath string, result cache.Result, stdout, stderr io.Writer) int {
	if result.Passed {
		fmt.Fprintf(stdout, "%s: ok\n", filePath)
		return 0
	}
	fmt.Fprintf(stderr, "%s: %s\n", filePath, colorize(result.Message))
	return 1
}

func runBuild(filePath string, flags map[string]string, stdout, stderr io.Writer) int {
	source, err := os.ReadFile(filePath)
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		return 1
	}

	ctx := pipeline.New(
		&parser.Processor{},
		&analyzer.Processor{},
		&resolver.Processor{},
		&backend.Processor{},
	).Run(newContext(filePath, string(source), flags, stderr))
	if ctx.Error != nil {
		fmt.Fprintf(stderr, "%s: %s\n", filePath, colorize(ctx.Error.Error()))
		return 1
	}

	outPath := flags["o"]
	if outPath == "" {
		outPath = strings.TrimSuffix(filePath, config.SourceFileExtension) + ".js"
	}
	if err := os.WriteFile(outPath, []byte(ctx.EmittedJS), 0o644); err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "wrote %s\n", outPath)
	return 0
}

func openCache(stderr io.Writer) *cache.Cache {
	dir, err := os.UserCacheDir()
	if err != nil {
		return nil
	}
	cacheDir := filepath.Join(dir, "brio")
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil
	}
	store, err := cache.Open(filepath.Join(cacheDir, "check.db"))
	if err != nil {
		fmt.Fprintf(stderr, "warning: cache unavailable: %s\n", err)
		return nil
	}
	return store
}

// colorize wraps a diagnostic in red when stderr is a terminal.
func colorize(message string) string {
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return "\x1b[31m" + message + "\x1b[0m"
	}
	return message
}
