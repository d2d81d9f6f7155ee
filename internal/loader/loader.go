package loader

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/kolah/mcpforge/internal/model"
	"github.com/pb33f/libopenapi"
	"github.com/pb33f/libopenapi/datamodel"
	"go.yaml.in/yaml/v4"
)

var (
	// ErrRead is returned when the description file cannot be read.
	ErrRead = errors.New("failed to read OpenAPI file")
	// ErrParse is returned when the description is not valid JSON (or YAML).
	ErrParse = errors.New("failed to parse OpenAPI spec")
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

type Result struct {
	Document model.Node
	Format   Format
	Version  string
	Info     model.Info
	Warnings []string
	RawData  []byte
}

func LoadFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrRead, path, err)
	}
	return Load(data, formatFor(path))
}

func formatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load parses data into a description tree. The core pipeline never fails on
// the tree's contents; only syntactically broken input is an error here.
func Load(data []byte, format Format) (*Result, error) {
	var root *yaml.Node
	var err error

	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w as %s: input is not valid UTF-8", ErrParse, format)
	}

	switch format {
	case FormatYAML:
		var doc yaml.Node
		if err = yaml.Unmarshal(data, &doc); err == nil {
			root = &doc
		}
	default:
		format = FormatJSON
		root, err = decodeJSON(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%w as %s: %w", ErrParse, format, err)
	}

	result := &Result{
		Document: model.NewNode(root),
		Format:   format,
		RawData:  data,
	}
	result.Info = infoFrom(result.Document)
	inspect(result)

	return result, nil
}

func infoFrom(doc model.Node) model.Info {
	title, _ := doc.Path("info", "title").String()
	version, _ := doc.Path("info", "version").String()
	return model.Info{Title: title, Version: version}
}

// inspectConfig silences libopenapi's own logger, which writes to stdout by
// default. Its findings reach the user as Result.Warnings instead.
func inspectConfig() *datamodel.DocumentConfiguration {
	return &datamodel.DocumentConfiguration{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// inspect asks libopenapi what it makes of the document. Its verdict only
// produces warnings; generation works on the raw tree either way.
func inspect(result *Result) {
	_, isOpenAPI := result.Document.Get("openapi").String()
	if !isOpenAPI && !result.Document.Get("swagger").Exists() {
		result.Warnings = append(result.Warnings, "no openapi version field; generating from the raw tree")
		return
	}

	doc, err := libopenapi.NewDocumentWithConfiguration(result.RawData, inspectConfig())
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("not a recognised OpenAPI document (%v); generating from the raw tree", err))
		return
	}

	result.Version = doc.GetVersion()
	if !strings.HasPrefix(result.Version, "3.") {
		result.Warnings = append(result.Warnings, fmt.Sprintf("OpenAPI %s detected; only 3.x layouts are understood", result.Version))
		return
	}

	v3Model, err := doc.BuildV3Model()
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("OpenAPI model has problems: %v", err))
		return
	}
	if info := v3Model.Model.Info; info != nil {
		if result.Info.Title == "" {
			result.Info.Title = info.Title
		}
		if result.Info.Version == "" {
			result.Info.Version = info.Version
		}
	}
}
