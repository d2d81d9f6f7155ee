// Package zod renders parameter contracts as zod validation expressions.
package zod

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/kolah/mcpforge/internal/model"
)

const anyExpr = "z.any()"

// Expression returns the required-form validator for a schema kind.
func Expression(k model.SchemaKind) string {
	if k.Type == model.TypeArray {
		item := primitiveExpression(k.Items)
		if item == "" {
			item = anyExpr
		}
		return "z.array(" + item + ")"
	}
	if expr := primitiveExpression(k.Type); expr != "" {
		return expr
	}
	return anyExpr
}

func primitiveExpression(t model.SchemaType) string {
	switch t {
	case model.TypeString:
		return "z.string()"
	case model.TypeNumber:
		return "z.number()"
	case model.TypeInteger:
		return "z.number().int()"
	case model.TypeBoolean:
		return "z.boolean()"
	default:
		return ""
	}
}

// Optional wraps a validator so the field may be omitted.
func Optional(expr string) string {
	return expr + ".optional()"
}

// ParameterExpression applies the optional modifier when p is not required.
func ParameterExpression(p model.Parameter) string {
	expr := Expression(p.Kind)
	if !p.Required {
		return Optional(expr)
	}
	return expr
}

// Field renders one "name: expression" entry of an object literal. Names that
// are not plain identifiers are quoted.
func Field(name, expr string) string {
	return PropertyKey(name) + ": " + expr
}

func PropertyKey(name string) string {
	if IsIdentifier(name) {
		return name
	}
	return StringLiteral(name)
}

// StringLiteral renders s as a double-quoted JavaScript string. JSON string
// syntax is a subset of it, including the escaping of U+2028 and U+2029.
func StringLiteral(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return `""`
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

var templateEscaper = strings.NewReplacer("\\", "\\\\", "`", "\\`", "${", "\\${", "\r", "\\r")

// TemplateText escapes s for the literal part of a backtick template string,
// so that only placeholders added around it are interpolated.
func TemplateText(s string) string {
	return templateEscaper.Replace(s)
}

// IsIdentifier reports whether name can be used unquoted as a property key.
func IsIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_' || r == '$':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
