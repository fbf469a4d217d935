package transform

import (
	"fmt"
	"strings"

	"docuform/domain/core"
	"docuform/domain/format"
	"docuform/domain/formula"
	"docuform/domain/mapping"
	"docuform/domain/survey"
)

// stageDirectMappings resolves every non-calculated mapping. Record-array
// answers are skipped here: group expansion already projected them, and the
// dotted source kinds read those projections instead of re-deriving.
func stageDirectMappings(vm *VariableMap, responses survey.Responses, mappings []mapping.VariableMapping, ctx Context) {
	for _, m := range mappings {
		switch m.Source.Kind {
		case mapping.SourceCalculated:
			// next stage
		case mapping.SourceManual:
			vm.Set(m.Name, resolveManual(m, ctx))
		case mapping.SourceGroupField:
			vm.Set(m.Name, fallbackDefault(vm.Get(m.Source.Group+format.CapitalizeFirst(m.Source.Field)+"Formatted"), m))
		case mapping.SourceGroupCount:
			vm.Set(m.Name, resolveGroupCount(vm, responses, m))
		case mapping.SourceIndividualItem:
			vm.Set(m.Name, resolveIndividualItem(vm, m))
		case mapping.SourceAnswer:
			resolveAnswer(vm, responses, m)
		}
	}
}

func resolveManual(m mapping.VariableMapping, ctx Context) string {
	if v, ok := ctx.ManualValues[m.Name]; ok && v != "" {
		return format.ApplyTransformRule(v, m.DataType, m.TransformRule)
	}
	return m.DefaultValue
}

func resolveGroupCount(vm *VariableMap, responses survey.Responses, m mapping.VariableMapping) string {
	if v := vm.Get(m.Source.Group + "Count"); v != "" {
		return v
	}
	// A question may legitimately be named "...Count"; fall back to its answer.
	if v := responses.Scalar(core.QuestionID(m.Source.Group + "Count")); v != "" {
		return v
	}
	return fallbackDefault("", m)
}

// resolveIndividualItem reads a single member's field from the 1-indexed
// scalars group expansion produced, trying the capitalized-singular, plain,
// and plural naming conventions in turn.
func resolveIndividualItem(vm *VariableMap, m mapping.VariableMapping) string {
	src := m.Source
	capField := format.CapitalizeFirst(src.Field)
	candidates := []string{
		fmt.Sprintf("%s%d%s", format.CapitalizeFirst(src.Group), src.Index, capField),
		fmt.Sprintf("%s%d%s", src.Group, src.Index, capField),
		fmt.Sprintf("%ss%d%s", src.Group, src.Index, capField),
	}
	for _, key := range candidates {
		if v := vm.Get(key); v != "" {
			return format.ApplyTransformRule(v, m.DataType, m.TransformRule)
		}
	}
	return fallbackDefault("", m)
}

func resolveAnswer(vm *VariableMap, responses survey.Responses, m mapping.VariableMapping) {
	answer := responses.Find(m.Source.QuestionID)
	switch v := answer.(type) {
	case survey.RecordList:
		// handled by group expansion
		return
	case survey.ScalarList:
		helpers, loop := format.ArrayHelperVariables(m.Name, v)
		vm.Merge(helpers)
		vm.Lists[m.Name] = loop
		vm.Set(m.Name, joinByRule(v, m.TransformRule))
		return
	case survey.Scalar:
		raw := string(v)
		if raw == "" {
			vm.Set(m.Name, fallbackDefault("", m))
			return
		}
		vm.Set(m.Name, format.ApplyTransformRule(raw, m.DataType, m.TransformRule))
		return
	default:
		// unanswered
		vm.Set(m.Name, fallbackDefault("", m))
	}
}

// joinByRule picks the primary rendering of a list answer.
func joinByRule(items []string, rule string) string {
	switch strings.ToLower(strings.TrimSpace(rule)) {
	case "or":
		return format.FormatListOr(items)
	case "comma":
		return format.FormatListComma(items)
	case "newline":
		return format.FormatListNewline(items)
	default:
		return format.FormatListAnd(items)
	}
}

func fallbackDefault(value string, m mapping.VariableMapping) string {
	if value != "" {
		return value
	}
	return m.DefaultValue
}

// stageCalculatedMappings evaluates formula-sourced mappings against the map
// built by the earlier stages, then renders the numeric result like any
// direct mapping would be.
func stageCalculatedMappings(vm *VariableMap, _ survey.Responses, mappings []mapping.VariableMapping, _ Context) {
	for _, m := range mappings {
		if m.Source.Kind != mapping.SourceCalculated {
			continue
		}
		result := formula.Evaluate(m.Formula, vm.Values)
		if result == "" {
			vm.Set(m.Name, m.DefaultValue)
			continue
		}
		vm.Set(m.Name, format.ApplyTransformRule(result, m.DataType, m.TransformRule))
	}
}
