package loader

import (
	"iter"
	"slices"
	"strings"

	"github.com/kolah/mcpforge/internal/model"
)

const schemaRefPrefix = "#/components/schemas/"

const jsonMediaType = "application/json"

type transformer struct {
	root model.Node
}

// Transform walks every path and method of the description and resolves the
// parameters of each operation. It never fails: malformed or missing parts of
// the tree simply contribute nothing.
func Transform(result *Result) *model.Spec {
	t := &transformer{root: result.Document}

	spec := &model.Spec{Info: result.Info}
	for op := range t.walkOperations() {
		spec.Operations = append(spec.Operations, t.transformOperation(op))
	}
	return spec
}

type operationNode struct {
	path   string
	method string
	node   model.Node
}

// walkOperations yields every operation in document order. Path items and
// operations that are not objects are skipped.
func (t *transformer) walkOperations() iter.Seq[operationNode] {
	return func(yield func(operationNode) bool) {
		for path, item := range t.root.Get("paths").Pairs() {
			if !item.IsMapping() {
				continue
			}
			for method, op := range item.Pairs() {
				if !op.IsMapping() {
					continue
				}
				if !yield(operationNode{path: path, method: method, node: op}) {
					return
				}
			}
		}
	}
}

func (t *transformer) transformOperation(op operationNode) model.Operation {
	id, _ := op.node.Get("operationId").String()
	return model.Operation{
		ID:         id,
		Method:     op.method,
		Path:       op.path,
		Parameters: t.resolveParameters(op.node),
	}
}

// resolveParameters concatenates the query phase and the body phase. Names
// present in both phases are kept twice.
func (t *transformer) resolveParameters(op model.Node) []model.Parameter {
	params := queryParameters(op)
	return append(params, t.bodyParameters(op)...)
}

// queryParameters types every query parameter as an optional string,
// regardless of its declared schema.
func queryParameters(op model.Node) []model.Parameter {
	var params []model.Parameter
	for p := range op.Get("parameters").Items() {
		name, ok := p.Get("name").String()
		if !ok {
			continue
		}
		in, ok := p.Get("in").String()
		if !ok || in != string(model.LocationQuery) {
			continue
		}
		params = append(params, model.Parameter{
			Name: name,
			In:   model.LocationQuery,
			Kind: model.SchemaKind{Type: model.TypeString},
		})
	}
	return params
}

func (t *transformer) bodyParameters(op model.Node) []model.Parameter {
	schema := op.Get("requestBody").Get("content").Get(jsonMediaType).Get("schema")
	if !schema.Exists() {
		return nil
	}

	if ref, ok := schema.Get("$ref").String(); ok {
		schema = t.lookupSchema(ref)
		if !schema.Exists() {
			return nil
		}
	}

	return schemaProperties(schema)
}

// lookupSchema resolves a component reference by a single lookup; the target
// is not followed any further.
func (t *transformer) lookupSchema(ref string) model.Node {
	name := strings.TrimPrefix(ref, schemaRefPrefix)
	return t.root.Path("components", "schemas", name)
}

func schemaProperties(schema model.Node) []model.Parameter {
	required := schema.Get("required").Strings()

	var params []model.Parameter
	for name, prop := range schema.Get("properties").Pairs() {
		params = append(params, model.Parameter{
			Name:     name,
			In:       model.LocationBody,
			Required: slices.Contains(required, name),
			Kind:     model.KindOf(prop),
		})
	}
	return params
}
