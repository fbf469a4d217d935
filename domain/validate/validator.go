// Package validate checks the resolved variable map against the mappings a
// template declares. Gaps are reported structurally and never block
// generation; callers surface them as warnings.
package validate

import (
	"strings"

	"docuform/domain/mapping"
	"docuform/domain/transform"
)

// Result lists the gaps found. Missing and EmptyRequired are disjoint: a key
// is "missing" when it never appears in the map (typo or misconfiguration)
// and "empty required" when present but blank on a required mapping.
type Result struct {
	IsValid       bool     `json:"isValid"`
	Missing       []string `json:"missingVariables,omitempty"`
	EmptyRequired []string `json:"emptyRequired,omitempty"`
}

// Variables checks every mapping's output key against the resolved map.
func Variables(vm *transform.VariableMap, mappings []mapping.VariableMapping) Result {
	res := Result{IsValid: true}
	for _, m := range mappings {
		value, present := vm.Values[m.Name]
		if !present {
			res.Missing = append(res.Missing, m.Name)
			continue
		}
		if m.Required && strings.TrimSpace(value) == "" {
			res.EmptyRequired = append(res.EmptyRequired, m.Name)
		}
	}
	res.IsValid = len(res.Missing) == 0 && len(res.EmptyRequired) == 0
	return res
}
