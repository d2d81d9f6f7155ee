package codegen

import (
	"fmt"

	"github.com/kolah/mcpforge/internal/config"
	"github.com/kolah/mcpforge/internal/model"
	"github.com/kolah/mcpforge/internal/targets/mcp"
	"github.com/kolah/mcpforge/internal/templates"
	"github.com/kolah/mcpforge/internal/zod"
	embeddedtmpl "github.com/kolah/mcpforge/templates"
)

type Generator struct {
	config *config.Config
	engine templates.Engine
	naming zod.NamingStyle
}

// Output is one generated file, relative to the output directory.
type Output struct {
	Filename string
	Content  string
}

func New(cfg *config.Config) (*Generator, error) {
	naming, err := zod.ParseNamingStyle(cfg.Naming.Style)
	if err != nil {
		return nil, err
	}

	engine, err := templates.NewEngine(embeddedtmpl.FS, cfg.Templates.Dir, zod.TemplateFuncs())
	if err != nil {
		return nil, fmt.Errorf("creating template engine: %w", err)
	}

	return &Generator{
		config: cfg,
		engine: engine,
		naming: naming,
	}, nil
}

func (g *Generator) Generate(spec *model.Spec) ([]Output, error) {
	target := mcp.New(mcp.Options{
		Naming:  g.naming,
		Workers: g.config.Workers,
	})

	content, err := target.Generate(g.engine, spec)
	if err != nil {
		return nil, fmt.Errorf("generating %s server: %w", target.Name(), err)
	}

	return []Output{{
		Filename: mcp.Filename,
		Content:  content,
	}}, nil
}
