// Package mcp renders the TypeScript MCP server: one tool registration per
// operation between a fixed preamble and a fixed transport epilogue.
package mcp

import (
	"fmt"
	"runtime"

	"github.com/kolah/mcpforge/internal/model"
	"github.com/kolah/mcpforge/internal/templates"
	"github.com/kolah/mcpforge/internal/zod"
	"golang.org/x/sync/errgroup"
)

const (
	documentTemplate = "typescript/index.ts.tmpl"
	toolTemplate     = "typescript/tool.tmpl"
)

// Filename is where the generated server lives inside the output project.
const Filename = "src/index.ts"

type Options struct {
	Naming zod.NamingStyle
	// Workers bounds concurrent tool rendering; zero means GOMAXPROCS.
	Workers int
}

type Target struct {
	opts Options
}

func New(opts Options) *Target {
	return &Target{opts: opts}
}

func (t *Target) Name() string {
	return "mcp"
}

type templateData struct {
	Info   model.Info
	Blocks []string
}

func (t *Target) Generate(engine templates.Engine, spec *model.Spec) (string, error) {
	blocks, err := t.renderTools(engine, spec.Operations)
	if err != nil {
		return "", err
	}

	data := templateData{
		Info:   spec.Info,
		Blocks: blocks,
	}

	return engine.Execute(documentTemplate, data)
}

// renderTools renders every operation independently and returns the blocks in
// operation order, whatever order the workers finish in.
func (t *Target) renderTools(engine templates.Engine, ops []model.Operation) ([]string, error) {
	blocks := make([]string, len(ops))

	workers := t.opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i, op := range ops {
		g.Go(func() error {
			block, err := engine.Execute(toolTemplate, NewToolData(op, t.opts.Naming))
			if err != nil {
				return fmt.Errorf("rendering tool for %s %s: %w", op.Method, op.Path, err)
			}
			blocks[i] = block
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return blocks, nil
}
