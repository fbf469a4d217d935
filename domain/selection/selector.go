package selection

import (
	"sort"

	"docuform/domain/survey"
)

// Classification thresholds. A full score is required for auto-selection; a
// strict majority earns a suggestion. Exactly half-matching multi-rule
// templates therefore stay optional.
const (
	requiredScore  = 1.0
	suggestedScore = 0.5
)

// SelectTemplates classifies every active template for the given answers.
// Inactive templates are ignored entirely. Classification order per template:
// alwaysInclude, manualOnly, no applicable rules, then score thresholds.
func SelectTemplates(responses survey.Responses, templates []Template, computed map[string]string) Selection {
	var sel Selection
	for _, t := range templates {
		if !t.Active {
			continue
		}
		switch Classify(t, responses, computed) {
		case BucketRequired:
			sel.Required = append(sel.Required, t)
		case BucketSuggested:
			sel.Suggested = append(sel.Suggested, t)
		default:
			sel.Optional = append(sel.Optional, t)
		}
	}
	sortByDisplayName(sel.Required)
	sortByDisplayName(sel.Suggested)
	sortByDisplayName(sel.Optional)
	return sel
}

// Classify buckets a single template.
func Classify(t Template, responses survey.Responses, computed map[string]string) Bucket {
	eval := EvaluateRules(t, responses, computed)
	switch {
	case eval.AlwaysInclude:
		return BucketRequired
	case eval.ManualOnly:
		return BucketOptional
	case eval.TotalRules == 0:
		return BucketOptional
	case eval.Score >= requiredScore:
		return BucketRequired
	case eval.Score > suggestedScore:
		return BucketSuggested
	default:
		return BucketOptional
	}
}

func sortByDisplayName(ts []Template) {
	sort.Slice(ts, func(i, j int) bool { return ts[i].DisplayName < ts[j].DisplayName })
}
