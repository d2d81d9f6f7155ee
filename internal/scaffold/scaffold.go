// Package scaffold lays out the generated project: it refuses to reuse an
// existing output directory, copies the project template tree and writes the
// generated files into it.
package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kolah/mcpforge/internal/codegen"
	embeddedtmpl "github.com/kolah/mcpforge/templates"
)

var (
	ErrOutputExists      = errors.New("output directory already exists")
	ErrOutputCreate      = errors.New("failed to create output directory")
	ErrTemplatesNotFound = errors.New("templates directory not found")
	ErrTemplatesCopy     = errors.New("failed to copy templates directory")
	ErrWrite             = errors.New("failed to write output file")
)

type Scaffolder struct {
	source fs.FS
	origin string
}

// New uses dir as the project template tree, or the embedded scaffold when
// dir is empty.
func New(dir string) (*Scaffolder, error) {
	if dir == "" {
		sub, err := fs.Sub(embeddedtmpl.FS, embeddedtmpl.ScaffoldRoot)
		if err != nil {
			return nil, fmt.Errorf("%w: embedded scaffold: %w", ErrTemplatesNotFound, err)
		}
		return &Scaffolder{source: sub, origin: "embedded scaffold"}, nil
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrTemplatesNotFound, dir)
	}
	return &Scaffolder{source: os.DirFS(dir), origin: dir}, nil
}

// Origin describes where the template tree comes from.
func (s *Scaffolder) Origin() string {
	return s.origin
}

// Prepare creates outputDir and copies the template tree into it. An existing
// outputDir is never touched.
func (s *Scaffolder) Prepare(outputDir string) error {
	if _, err := os.Lstat(outputDir); err == nil {
		return fmt.Errorf("%w: %s", ErrOutputExists, outputDir)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("%w %s: %w", ErrOutputCreate, outputDir, err)
	}

	if err := os.CopyFS(outputDir, s.source); err != nil {
		return fmt.Errorf("%w from %s: %w", ErrTemplatesCopy, s.origin, err)
	}

	return nil
}

// Write stores every output below outputDir, creating parent directories.
// It returns the written paths in output order.
func Write(outputDir string, outputs []codegen.Output) ([]string, error) {
	written := make([]string, 0, len(outputs))
	for _, out := range outputs {
		path := filepath.Join(outputDir, filepath.FromSlash(out.Filename))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return written, fmt.Errorf("%w %s: %w", ErrOutputCreate, filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(out.Content), 0644); err != nil {
			return written, fmt.Errorf("%w %s: %w", ErrWrite, path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
