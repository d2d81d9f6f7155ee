package model

import "strings"

// Operation is one (path, method) pair of the description with its resolved
// parameters.
type Operation struct {
	ID         string // operationId as written; empty when absent
	Method     string // method key exactly as it appears in the path item
	Path       string
	Parameters []Parameter
}

type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
	MethodPatch  Method = "PATCH"
)

// UpperMethod returns the uppercased method used for dispatch decisions.
func (o Operation) UpperMethod() Method {
	return Method(strings.ToUpper(o.Method))
}

// HasQueryParams reports whether any parameter came from the query phase.
func (o Operation) HasQueryParams() bool {
	for _, p := range o.Parameters {
		if p.In == LocationQuery {
			return true
		}
	}
	return false
}

type ParameterLocation string

const (
	LocationQuery ParameterLocation = "query"
	LocationBody  ParameterLocation = "body"
)

type Parameter struct {
	Name     string
	In       ParameterLocation
	Required bool
	Kind     SchemaKind
}
