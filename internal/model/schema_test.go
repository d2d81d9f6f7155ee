package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		schema   string
		expected SchemaKind
	}{
		{"string", `type: string`, SchemaKind{Type: TypeString}},
		{"number", `type: number`, SchemaKind{Type: TypeNumber}},
		{"integer", `type: integer`, SchemaKind{Type: TypeInteger}},
		{"boolean", `type: boolean`, SchemaKind{Type: TypeBoolean}},
		{"string with format", "type: string\nformat: date-time", SchemaKind{Type: TypeString}},
		{"array of strings", "type: array\nitems: {type: string}", SchemaKind{Type: TypeArray, Items: TypeString}},
		{"array of integers", "type: array\nitems: {type: integer}", SchemaKind{Type: TypeArray, Items: TypeInteger}},
		{"array without items", `type: array`, SchemaKind{Type: TypeArray}},
		{"array of objects", "type: array\nitems: {type: object}", SchemaKind{Type: TypeArray}},
		{"array of arrays", "type: array\nitems: {type: array}", SchemaKind{Type: TypeArray}},
		{"array of refs", "type: array\nitems: {$ref: '#/components/schemas/Pet'}", SchemaKind{Type: TypeArray}},
		{"object", `type: object`, SchemaKind{}},
		{"enum only", `enum: [a, b]`, SchemaKind{}},
		{"no type", `description: nothing`, SchemaKind{}},
		{"type is not a string", `type: 12`, SchemaKind{}},
		{"not an object", `just a string`, SchemaKind{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, KindOf(parse(t, tt.schema)))
		})
	}
}

func TestKindOfAbsentSchema(t *testing.T) {
	require.True(t, KindOf(Node{}).IsUnknown())
}
