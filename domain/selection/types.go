// Package selection classifies document templates into required / suggested /
// optional buckets by evaluating each template's declarative rules against
// the survey answers and computed aggregates.
package selection

import (
	"encoding/json"
	"strings"

	"docuform/domain/core"
	"docuform/domain/mapping"
)

// Operator is a condition comparison.
type Operator string

const (
	OpEqual          Operator = "=="
	OpNotEqual       Operator = "!="
	OpContains       Operator = "contains"
	OpNotContains    Operator = "not_contains"
	OpIn             Operator = "in"
	OpGreater        Operator = ">"
	OpGreaterOrEqual Operator = ">="
	OpLess           Operator = "<"
	OpLessOrEqual    Operator = "<="
)

// ValueSource says where the right-hand comparison value comes from.
type ValueSource string

const (
	ValueLiteral  ValueSource = "literal"
	ValueQuestion ValueSource = "question"
)

// LeftSource says where the left-hand actual value comes from.
type LeftSource string

const (
	LeftQuestion LeftSource = "question"
	LeftComputed LeftSource = "computed"
)

// Condition compares one answer (or computed aggregate) against a value.
// The two source fields are independent tagged choices, keeping the
// evaluator's dispatch exhaustive instead of string-convention driven.
type Condition struct {
	QuestionID  core.QuestionID `json:"questionId"`
	Operator    Operator        `json:"operator"`
	Value       string          `json:"value"`
	ValueSource ValueSource     `json:"valueSource,omitempty"`
	SourceType  LeftSource      `json:"sourceType,omitempty"`
}

// Combinator joins a rule's conditions.
type Combinator string

const (
	CombinatorAnd Combinator = "AND"
	CombinatorOr  Combinator = "OR"
)

// Rule is one ordered condition set on a template.
type Rule struct {
	Name          string      `json:"name,omitempty"`
	Conditions    []Condition `json:"conditions"`
	Combinator    Combinator  `json:"combinator,omitempty"`
	Priority      int         `json:"priority,omitempty"`
	AlwaysInclude bool        `json:"alwaysInclude,omitempty"`
	ManualOnly    bool        `json:"manualOnly,omitempty"`
}

// Template is one document template with its selection rules and variable
// mappings.
type Template struct {
	ID          core.TemplateID           `json:"id"`
	DisplayName string                    `json:"displayName"`
	FileRef     string                    `json:"fileRef,omitempty"`
	Active      bool                      `json:"active"`
	Rules       []Rule                    `json:"rules,omitempty"`
	Mappings    []mapping.VariableMapping `json:"mappings,omitempty"`
}

// Evaluation is the per-template rule outcome.
type Evaluation struct {
	Score         float64
	MatchedRules  int
	TotalRules    int
	AlwaysInclude bool
	ManualOnly    bool
}

// Bucket is the classification a template landed in.
type Bucket string

const (
	BucketRequired  Bucket = "required"
	BucketSuggested Bucket = "suggested"
	BucketOptional  Bucket = "optional"
)

// Selection is the classified template set, each bucket sorted by display
// name for stable presentation.
type Selection struct {
	Required  []Template `json:"required"`
	Suggested []Template `json:"suggested"`
	Optional  []Template `json:"optional"`
}

// normalize fills configuration defaults so the evaluator never branches on
// empty tags.
func (c Condition) normalize() Condition {
	if c.ValueSource == "" {
		c.ValueSource = ValueLiteral
	}
	if c.SourceType == "" {
		c.SourceType = LeftQuestion
	}
	c.Operator = Operator(strings.TrimSpace(string(c.Operator)))
	return c
}

func (r Rule) combinator() Combinator {
	if strings.EqualFold(string(r.Combinator), string(CombinatorOr)) {
		return CombinatorOr
	}
	return CombinatorAnd
}

// UnmarshalJSON tolerates legacy configs that omit the active flag (treated
// as active).
func (t *Template) UnmarshalJSON(data []byte) error {
	type alias Template
	dto := struct {
		*alias
		Active *bool `json:"active"`
	}{alias: (*alias)(t)}
	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}
	t.Active = dto.Active == nil || *dto.Active
	return nil
}
