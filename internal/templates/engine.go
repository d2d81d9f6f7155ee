package templates

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"text/template"
)

type Engine interface {
	Execute(name string, data any) (string, error)
}

// TextTemplateEngine names every template after its slash-separated path in
// the filesystem it came from. Templates of an override directory replace base
// templates of the same path.
type TextTemplateEngine struct {
	templates *template.Template
}

func NewEngine(base fs.FS, customDir string, funcs template.FuncMap) (*TextTemplateEngine, error) {
	e := &TextTemplateEngine{templates: template.New("").Funcs(funcs)}

	if err := e.parseTree(base); err != nil {
		return nil, fmt.Errorf("loading embedded templates: %w", err)
	}

	if customDir != "" {
		info, err := os.Stat(customDir)
		if err != nil {
			return nil, fmt.Errorf("custom templates directory: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("custom templates directory %s is not a directory", customDir)
		}
		if err := e.parseTree(os.DirFS(customDir)); err != nil {
			return nil, fmt.Errorf("loading custom templates from %s: %w", customDir, err)
		}
	}

	return e, nil
}

func (e *TextTemplateEngine) parseTree(fsys fs.FS) error {
	return fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".tmpl") {
			return nil
		}
		content, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if _, err := e.templates.New(path).Parse(string(content)); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		return nil
	})
}

func (e *TextTemplateEngine) Execute(name string, data any) (string, error) {
	tmpl := e.templates.Lookup(name)
	if tmpl == nil {
		return "", fmt.Errorf("template not found: %s", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}

	return buf.String(), nil
}
