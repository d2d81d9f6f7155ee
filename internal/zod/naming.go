package zod

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/kolah/mcpforge/internal/model"
)

type NamingStyle string

const (
	NamingVerbatim NamingStyle = ""
	NamingSnake    NamingStyle = "snake"
	NamingCamel    NamingStyle = "camel"
)

// ParseNamingStyle validates a configured style name.
func ParseNamingStyle(s string) (NamingStyle, error) {
	switch style := NamingStyle(strings.ToLower(s)); style {
	case NamingVerbatim, NamingSnake, NamingCamel:
		return style, nil
	case "verbatim":
		return NamingVerbatim, nil
	default:
		return "", fmt.Errorf("invalid naming style: %s (valid: verbatim, snake, camel)", s)
	}
}

// DerivedName is the identifier used when an operation has no operationId:
// the method, an underscore, then the path with every "/" turned into "_".
func DerivedName(method, path string) string {
	return method + "_" + strings.ReplaceAll(path, "/", "_")
}

// ToolName returns the operationId when present, otherwise the derived name,
// then applies the naming style.
func ToolName(op model.Operation, style NamingStyle) string {
	name := op.ID
	if name == "" {
		name = DerivedName(op.Method, op.Path)
	}
	return ApplyStyle(name, style)
}

func ApplyStyle(name string, style NamingStyle) string {
	switch style {
	case NamingSnake:
		return strcase.ToSnake(wordsOnly(name))
	case NamingCamel:
		return strcase.ToLowerCamel(wordsOnly(name))
	default:
		return name
	}
}

// wordsOnly keeps the alphanumeric runs of name joined by single
// underscores, so path templates like "{id}" collapse into plain words.
func wordsOnly(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
	})
	return strings.Join(words, "_")
}
