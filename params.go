package lingua

import "strings"

// Param is a single named substitution applied to a resolved translation.
// Every literal occurrence of {{Name}} in the template is replaced with Value.
type Param struct {
	Name  string
	Value string
}

// P is a shorthand constructor for a Param.
func P(name, value string) Param {
	return Param{Name: name, Value: value}
}

// applyParams substitutes params into the template, in the order given.
// Each param performs a global find/replace over the accumulated string.
// Replacement values are not re-expanded by the param that produced them;
// there is no escaping mechanism for literal {{...}} sequences in templates.
func applyParams(template string, params []Param) string {
	if len(params) == 0 {
		return template
	}

	result := template
	for _, p := range params {
		result = strings.ReplaceAll(result, "{{"+p.Name+"}}", p.Value)
	}

	return result
}
