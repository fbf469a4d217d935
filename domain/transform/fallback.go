package transform

import (
	"fmt"
	"log"

	"docuform/domain/format"
	"docuform/domain/mapping"
	"docuform/domain/survey"
)

// maxRatioMembers bounds the per-member fallback to the first nine positions.
const maxRatioMembers = 9

// stageShareRatioFallback computes memberN share counts as cash / FMV when no
// explicit mapping produced them but both operands are present and non-zero.
//
// This is a compatibility heuristic for templates that expect the ratio
// without declaring a calculated mapping. It is hard-coded to the cash/FMV
// pair; deployments should prefer an explicit calculated mapping, at which
// point this stage never fires.
func stageShareRatioFallback(vm *VariableMap, responses survey.Responses, _ []mapping.VariableMapping, _ Context) {
	fmv, ok := format.ParseNumeric(vm.Get(FMVAlias))
	if !ok || fmv == 0 {
		return
	}
	for _, g := range responses.Groups() {
		group := g.Name.String()
		singular := singularCapitalized(group)
		for i := 1; i <= maxRatioMembers; i++ {
			sharesKey := fmt.Sprintf("%s%dShares", singular, i)
			if vm.Get(sharesKey) != "" {
				continue
			}
			cash, ok := format.ParseNumeric(vm.Get(fmt.Sprintf("%s%dCash", singular, i)))
			if !ok || cash == 0 {
				continue
			}
			shares := format.FormatFloatWithComma(cash / fmv)
			vm.Set(sharesKey, shares)
			vm.Set(fmt.Sprintf("%s%dShares", group, i), shares)
			log.Printf("[DEBUG] transform: share ratio fallback fired for %s", sharesKey)
		}
	}
}

// ComputedAggregates derives the group counts and multiplicity flags the rule
// evaluator compares against. It is a narrow slice of group expansion so that
// template selection does not depend on a full transformation run.
func ComputedAggregates(responses survey.Responses) map[string]string {
	vars := make(map[string]string)
	for _, g := range responses.Groups() {
		group := g.Name.String()
		capGroup := format.CapitalizeFirst(group)
		n := len(g.Records)
		vars[group+"Count"] = fmt.Sprintf("%d", n)
		vars["hasMultiple"+capGroup] = boolString(n > 1)
		vars["hasSingle"+capGroup] = boolString(n == 1)
		vars["hasNo"+capGroup] = boolString(n == 0)
	}
	for _, r := range responses {
		if list, ok := r.Value.(survey.ScalarList); ok {
			vars[r.QuestionID.String()+"Count"] = fmt.Sprintf("%d", len(list))
		}
	}
	return vars
}
