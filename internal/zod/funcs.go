package zod

import (
	"strings"
	"text/template"
)

func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"join":         strings.Join,
		"upper":        strings.ToUpper,
		"lower":        strings.ToLower,
		"field":        Field,
		"propertyKey":  PropertyKey,
		"optional":     Optional,
		"quote":        StringLiteral,
		"templateText": TemplateText,
	}
}
