package selection

import (
	"sort"
	"strconv"
	"strings"

	"docuform/domain/core"
	"docuform/domain/survey"
)

// EvaluateCondition resolves both sides of a condition and applies its
// operator. Pure: identical inputs always classify identically.
//
// Missing left-hand values make != vacuously true and every other operator
// false. Numeric comparison is attempted first for ==/!=; the ordering
// operators require both sides to parse as numbers.
func EvaluateCondition(cond Condition, responses survey.Responses, computed map[string]string) bool {
	cond = cond.normalize()

	actual, found := leftValue(cond, responses, computed)
	if !found || strings.TrimSpace(actual) == "" {
		return cond.Operator == OpNotEqual
	}

	expected := cond.Value
	if cond.ValueSource == ValueQuestion {
		expected = answerAsString(responses, cond.Value)
	}

	switch cond.Operator {
	case OpEqual:
		return looseEqual(actual, expected)
	case OpNotEqual:
		return !looseEqual(actual, expected)
	case OpContains:
		return strings.Contains(strings.ToLower(actual), strings.ToLower(expected))
	case OpNotContains:
		return !strings.Contains(strings.ToLower(actual), strings.ToLower(expected))
	case OpIn:
		for _, allowed := range strings.Split(expected, ",") {
			if strings.EqualFold(strings.TrimSpace(allowed), strings.TrimSpace(actual)) {
				return true
			}
		}
		return false
	case OpGreater, OpGreaterOrEqual, OpLess, OpLessOrEqual:
		return numericCompare(cond.Operator, actual, expected)
	default:
		// Malformed operator: never matches rather than failing the run.
		return false
	}
}

func leftValue(cond Condition, responses survey.Responses, computed map[string]string) (string, bool) {
	if cond.SourceType == LeftComputed {
		v, ok := computed[cond.QuestionID.String()]
		return v, ok
	}
	answer := responses.Find(cond.QuestionID)
	if answer == nil {
		return "", false
	}
	return valueAsString(answer), true
}

func answerAsString(responses survey.Responses, questionID string) string {
	answer := responses.Find(core.QuestionID(questionID))
	if answer == nil {
		return ""
	}
	return valueAsString(answer)
}

// valueAsString flattens an answer for comparison: lists join by comma so
// contains/in work naturally; record lists compare by size.
func valueAsString(v survey.Value) string {
	switch a := v.(type) {
	case survey.Scalar:
		return string(a)
	case survey.ScalarList:
		return strings.Join(a, ",")
	case survey.RecordList:
		return strconv.Itoa(len(a))
	default:
		return ""
	}
}

func looseEqual(a, b string) bool {
	if fa, errA := strconv.ParseFloat(strings.TrimSpace(a), 64); errA == nil {
		if fb, errB := strconv.ParseFloat(strings.TrimSpace(b), 64); errB == nil {
			return fa == fb
		}
	}
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func numericCompare(op Operator, a, b string) bool {
	fa, errA := strconv.ParseFloat(strings.TrimSpace(a), 64)
	fb, errB := strconv.ParseFloat(strings.TrimSpace(b), 64)
	if errA != nil || errB != nil {
		return false
	}
	switch op {
	case OpGreater:
		return fa > fb
	case OpGreaterOrEqual:
		return fa >= fb
	case OpLess:
		return fa < fb
	case OpLessOrEqual:
		return fa <= fb
	default:
		return false
	}
}

// EvaluateRules scores one template. Flag rules short-circuit: any
// alwaysInclude rule yields a perfect score, any manualOnly rule pins the
// template to the optional bucket. Otherwise the score is the fraction of
// condition-bearing rules whose combined conditions hold.
func EvaluateRules(t Template, responses survey.Responses, computed map[string]string) Evaluation {
	rules := make([]Rule, len(t.Rules))
	copy(rules, t.Rules)
	sort.SliceStable(rules, func(i, j int) bool { return rules[i].Priority < rules[j].Priority })

	for _, r := range rules {
		if r.AlwaysInclude {
			return Evaluation{Score: 1.0, MatchedRules: len(rules), TotalRules: len(rules), AlwaysInclude: true}
		}
		if r.ManualOnly {
			return Evaluation{ManualOnly: true, TotalRules: len(rules)}
		}
	}

	var withConditions, matched int
	for _, r := range rules {
		if len(r.Conditions) == 0 {
			continue
		}
		withConditions++
		if ruleMatches(r, responses, computed) {
			matched++
		}
	}

	eval := Evaluation{MatchedRules: matched, TotalRules: withConditions}
	if withConditions > 0 {
		eval.Score = float64(matched) / float64(withConditions)
	}
	return eval
}

func ruleMatches(r Rule, responses survey.Responses, computed map[string]string) bool {
	if r.combinator() == CombinatorOr {
		for _, c := range r.Conditions {
			if EvaluateCondition(c, responses, computed) {
				return true
			}
		}
		return false
	}
	for _, c := range r.Conditions {
		if !EvaluateCondition(c, responses, computed) {
			return false
		}
	}
	return true
}
