package model

type SchemaType string

const (
	TypeUnknown SchemaType = ""
	TypeString  SchemaType = "string"
	TypeNumber  SchemaType = "number"
	TypeInteger SchemaType = "integer"
	TypeBoolean SchemaType = "boolean"
	TypeArray   SchemaType = "array"
)

// SchemaKind is the closed set of shapes the generator distinguishes. Items is
// only meaningful for arrays and is never itself an array.
type SchemaKind struct {
	Type  SchemaType
	Items SchemaType
}

func (k SchemaKind) IsUnknown() bool {
	return k.Type == TypeUnknown
}

// KindOf derives a SchemaKind from a schema object's type and items.type.
// Anything richer (enum, format, $ref inside items, objects) is unknown.
func KindOf(schema Node) SchemaKind {
	typ, _ := schema.Get("type").String()
	switch t := SchemaType(typ); t {
	case TypeString, TypeNumber, TypeInteger, TypeBoolean:
		return SchemaKind{Type: t}
	case TypeArray:
		item, _ := schema.Path("items", "type").String()
		return SchemaKind{Type: TypeArray, Items: primitive(SchemaType(item))}
	default:
		return SchemaKind{}
	}
}

func primitive(t SchemaType) SchemaType {
	switch t {
	case TypeString, TypeNumber, TypeInteger, TypeBoolean:
		return t
	default:
		return TypeUnknown
	}
}
