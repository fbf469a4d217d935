package transform

import (
	"fmt"
	"strings"

	"github.com/montanaflynn/stats"

	"docuform/domain/format"
	"docuform/domain/mapping"
	"docuform/domain/survey"
)

// Group fields rendered as money: comma-formatted before projection and
// eligible for total/average aggregates.
var numericGroupFields = map[string]bool{
	"cash": true,
}

// stageGroupExpansion expands every repeated-group answer into scalar
// projections plus a loop-ready record array. Per field of the first record it
// emits joined projections across all records and 1-indexed scalars in both
// historical naming conventions (plural and singularized+capitalized), so
// older and newer template generations resolve against the same map.
func stageGroupExpansion(vm *VariableMap, responses survey.Responses, _ []mapping.VariableMapping, _ Context) {
	for _, g := range responses.Groups() {
		expandGroup(vm, g)
	}
}

func expandGroup(vm *VariableMap, g survey.Group) {
	group := g.Name.String()
	capGroup := format.CapitalizeFirst(group)
	singular := singularCapitalized(group)
	n := len(g.Records)

	vm.Set(group+"Count", fmt.Sprintf("%d", n))
	vm.Set("hasMultiple"+capGroup, boolString(n > 1))
	vm.Set("hasSingle"+capGroup, boolString(n == 1))
	vm.Set("hasNo"+capGroup, boolString(n == 0))

	records := make([]GroupRecord, n)
	for i := range records {
		records[i] = GroupRecord{
			Fields:  make(map[string]string),
			Index:   i + 1,
			IsFirst: i == 0,
			IsLast:  i == n-1,
		}
	}

	for _, field := range g.FieldsOfFirst() {
		capField := format.CapitalizeFirst(field)
		values := make([]string, n)
		var numeric []float64
		for i, rec := range g.Records {
			v := rec[field]
			if numericGroupFields[field] {
				if f, ok := format.ParseNumeric(v); ok {
					numeric = append(numeric, f)
					v = format.FormatFloatWithComma(f)
				}
			}
			values[i] = v
			records[i].Fields[field] = v

			// 1-indexed scalars, both naming conventions.
			vm.Set(fmt.Sprintf("%s%d%s", group, i+1, capField), v)
			vm.Set(fmt.Sprintf("%s%d%s", singular, i+1, capField), v)
		}

		vm.Set(group+capField+"Formatted", format.FormatListAnd(values))
		vm.Set(group+capField+"List", format.FormatListComma(values))
		vm.Set(group+capField+"OrList", format.FormatListOr(values))

		if len(numeric) > 0 {
			if sum, err := stats.Sum(numeric); err == nil {
				vm.Set(group+"Total"+capField, format.FormatFloatWithComma(sum))
			}
			if mean, err := stats.Mean(numeric); err == nil {
				vm.Set(group+"Average"+capField, format.FormatFloatWithComma(mean))
			}
		}
	}

	vm.Groups[group] = records
}

// singularCapitalized turns a plural group name into the capitalized singular
// the older template generation expects: directors -> Director. Only the
// plural shapes seen in formation configs are handled.
func singularCapitalized(group string) string {
	s := group
	switch {
	case strings.HasSuffix(s, "ies"):
		s = strings.TrimSuffix(s, "ies") + "y"
	case strings.HasSuffix(s, "ses"):
		s = strings.TrimSuffix(s, "es")
	case strings.HasSuffix(s, "s") && !strings.HasSuffix(s, "ss"):
		s = strings.TrimSuffix(s, "s")
	}
	return format.CapitalizeFirst(s)
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
