package zod

import (
	"testing"

	"github.com/kolah/mcpforge/internal/model"
	"github.com/stretchr/testify/require"
)

func TestExpression(t *testing.T) {
	tests := []struct {
		kind model.SchemaKind
		want string
	}{
		{model.SchemaKind{Type: model.TypeString}, "z.string()"},
		{model.SchemaKind{Type: model.TypeNumber}, "z.number()"},
		{model.SchemaKind{Type: model.TypeInteger}, "z.number().int()"},
		{model.SchemaKind{Type: model.TypeBoolean}, "z.boolean()"},
		{model.SchemaKind{Type: model.TypeArray, Items: model.TypeString}, "z.array(z.string())"},
		{model.SchemaKind{Type: model.TypeArray, Items: model.TypeInteger}, "z.array(z.number().int())"},
		{model.SchemaKind{Type: model.TypeArray}, "z.array(z.any())"},
		{model.SchemaKind{}, "z.any()"},
		{model.SchemaKind{Type: "object"}, "z.any()"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, Expression(tt.kind))
		})
	}
}

func TestParameterExpression(t *testing.T) {
	str := model.SchemaKind{Type: model.TypeString}

	require.Equal(t, "z.string()", ParameterExpression(model.Parameter{Name: "a", Required: true, Kind: str}))
	require.Equal(t, "z.string().optional()", ParameterExpression(model.Parameter{Name: "a", Kind: str}))
	require.Equal(t, "z.any().optional()", ParameterExpression(model.Parameter{Name: "a"}))
}

func TestField(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"q", "q: z.string()"},
		{"page_size", "page_size: z.string()"},
		{"$top", "$top: z.string()"},
		{"item2", "item2: z.string()"},
		{"X-Trace-Id", `"X-Trace-Id": z.string()`},
		{"2fa", `"2fa": z.string()`},
		{"filter[name]", `"filter[name]": z.string()`},
		{"", `"": z.string()`},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, Field(tt.name, "z.string()"))
		})
	}
}

func TestStringLiteral(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"listPets", `"listPets"`},
		{`say "hi"`, `"say \"hi\""`},
		{`a\b`, `"a\\b"`},
		{"line\nbreak", `"line\nbreak"`},
		{"a<b>&c", `"a<b>&c"`},
		{"sep\u2028", `"sep\u2028"`},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, StringLiteral(tt.in))
		})
	}
}

func TestTemplateText(t *testing.T) {
	require.Equal(t, "/items/{id}", TemplateText("/items/{id}"))
	require.Equal(t, "a\\`b\\${c}\\\\d", TemplateText("a`b${c}\\d"))
	require.Equal(t, "$plain", TemplateText("$plain"))
}
