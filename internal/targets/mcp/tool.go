package mcp

import (
	"github.com/kolah/mcpforge/internal/model"
	"github.com/kolah/mcpforge/internal/zod"
)

const queryStringSuffix = "?${search.toString()}"

// PathExpression renders the request path as a JavaScript expression. With
// query parameters it is a template string so the search string is
// interpolated; otherwise a plain string literal.
func PathExpression(path string, hasQuery bool) string {
	if hasQuery {
		return "`" + zod.TemplateText(path) + queryStringSuffix + "`"
	}
	return zod.StringLiteral(path)
}

// ToolData is everything the tool template needs for one operation.
type ToolData struct {
	Name     string
	Fields   []string
	HasQuery bool
	PathExpr string
	Method   string
	HasBody  bool
}

func NewToolData(op model.Operation, naming zod.NamingStyle) ToolData {
	fields := Fields(op.Parameters)
	hasQuery := op.HasQueryParams()

	method, hasBody := Dispatch(op.UpperMethod(), len(fields))

	return ToolData{
		Name:     zod.ToolName(op, naming),
		Fields:   fields,
		HasQuery: hasQuery,
		PathExpr: PathExpression(op.Path, hasQuery),
		Method:   string(method),
		HasBody:  hasBody,
	}
}

// Fields renders the parameter contract in resolver order. A name seen more
// than once keeps its first position and takes the last definition, since an
// object literal cannot repeat a key.
func Fields(params []model.Parameter) []string {
	var order []string
	byName := make(map[string]model.Parameter, len(params))
	for _, p := range params {
		if _, seen := byName[p.Name]; !seen {
			order = append(order, p.Name)
		}
		byName[p.Name] = p
	}

	fields := make([]string, 0, len(order))
	for _, name := range order {
		fields = append(fields, zod.Field(name, zod.ParameterExpression(byName[name])))
	}
	return fields
}

// Dispatch decides the request method and whether the call carries the
// parameters as a JSON body.
func Dispatch(method model.Method, paramCount int) (model.Method, bool) {
	switch method {
	case model.MethodGet:
		return method, false
	case model.MethodPost, model.MethodPut, model.MethodPatch:
		return method, true
	case model.MethodDelete:
		return method, paramCount > 0
	default:
		return method, false
	}
}
