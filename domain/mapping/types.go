// Package mapping declares how template placeholders are populated from
// survey data. Mappings are per-template configuration and read-only during a
// transformation run.
package mapping

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"docuform/domain/core"
)

// DataType drives which formatter family renders the resolved value.
type DataType string

const (
	TypeText     DataType = "text"
	TypeList     DataType = "list"
	TypeDate     DataType = "date"
	TypeNumber   DataType = "number"
	TypeCurrency DataType = "currency"
	TypeEmail    DataType = "email"
	TypePhone    DataType = "phone"
)

// ParseDataType validates a configured data type string.
func ParseDataType(s string) (DataType, error) {
	switch dt := DataType(strings.ToLower(strings.TrimSpace(s))); dt {
	case TypeText, TypeList, TypeDate, TypeNumber, TypeCurrency, TypeEmail, TypePhone:
		return dt, nil
	case "":
		return TypeText, nil
	default:
		return "", fmt.Errorf("%w: %q", core.ErrInvalidDataType, s)
	}
}

// SourceKind discriminates the mapping source union.
type SourceKind string

const (
	// SourceAnswer pulls the value of a survey answer.
	SourceAnswer SourceKind = "answer"
	// SourceManual is filled in later by a human; the default value applies.
	SourceManual SourceKind = "manual"
	// SourceCalculated derives the value from a formula over resolved variables.
	SourceCalculated SourceKind = "calculated"
	// SourceGroupField reads the joined projection of one repeated-group field.
	SourceGroupField SourceKind = "group_field"
	// SourceGroupCount reads the member count of a repeated group.
	SourceGroupCount SourceKind = "group_count"
	// SourceIndividualItem reads one field of one 1-indexed group member.
	SourceIndividualItem SourceKind = "individual_item"
)

// Source says where a variable's raw value comes from. A tagged union instead
// of the historical sentinel strings, so the resolver's dispatch is exhaustive.
type Source struct {
	Kind SourceKind

	// Answer
	QuestionID core.QuestionID

	// Group references
	Group string
	Field string
	Index int // 1-based, individual items only
}

// VariableMapping binds one output variable name to a source, a data type and
// a format directive.
type VariableMapping struct {
	Name          string
	Source        Source
	DataType      DataType
	TransformRule string
	Required      bool
	DefaultValue  string
	Formula       string
}

// ParseSource converts the legacy sentinel encoding of questionId into the
// tagged union:
//
//	"manual"          -> SourceManual
//	"calculated"      -> SourceCalculated
//	"group.field"     -> SourceGroupField
//	"groupCount"      -> SourceGroupCount (trailing "Count" on a bare name)
//	"item.3.field"    -> SourceIndividualItem
//	anything else     -> SourceAnswer
func ParseSource(questionID string) Source {
	qid := strings.TrimSpace(questionID)
	switch qid {
	case "manual", "__manual__":
		return Source{Kind: SourceManual}
	case "calculated", "__calculated__":
		return Source{Kind: SourceCalculated}
	}
	if parts := strings.Split(qid, "."); len(parts) == 3 {
		if idx, err := strconv.Atoi(parts[1]); err == nil && idx >= 1 {
			return Source{Kind: SourceIndividualItem, Group: parts[0], Field: parts[2], Index: idx}
		}
	}
	if parts := strings.Split(qid, "."); len(parts) == 2 {
		return Source{Kind: SourceGroupField, Group: parts[0], Field: parts[1]}
	}
	if base, ok := strings.CutSuffix(qid, "Count"); ok && base != "" {
		return Source{Kind: SourceGroupCount, Group: base}
	}
	return Source{Kind: SourceAnswer, QuestionID: core.QuestionID(qid)}
}

// legacyRef renders the source back into the sentinel wire encoding.
func (s Source) legacyRef() string {
	switch s.Kind {
	case SourceManual:
		return "manual"
	case SourceCalculated:
		return "calculated"
	case SourceGroupField:
		return s.Group + "." + s.Field
	case SourceGroupCount:
		return s.Group + "Count"
	case SourceIndividualItem:
		return fmt.Sprintf("%s.%d.%s", s.Group, s.Index, s.Field)
	default:
		return s.QuestionID.String()
	}
}

// mappingDTO is the stored configuration shape (sentinel questionId encoding).
type mappingDTO struct {
	VariableName  string `json:"variableName"`
	QuestionID    string `json:"questionId"`
	DataType      string `json:"dataType"`
	TransformRule string `json:"transformRule,omitempty"`
	Required      bool   `json:"required,omitempty"`
	DefaultValue  string `json:"defaultValue,omitempty"`
	Formula       string `json:"formula,omitempty"`
}

func (m *VariableMapping) UnmarshalJSON(data []byte) error {
	var dto mappingDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}
	if strings.TrimSpace(dto.VariableName) == "" {
		return core.NewMappingError(dto.VariableName, "variableName is required")
	}
	dt, err := ParseDataType(dto.DataType)
	if err != nil {
		return core.NewMappingError(dto.VariableName, err.Error())
	}
	m.Name = dto.VariableName
	m.Source = ParseSource(dto.QuestionID)
	m.DataType = dt
	m.TransformRule = dto.TransformRule
	m.Required = dto.Required
	m.DefaultValue = dto.DefaultValue
	m.Formula = dto.Formula
	return nil
}

func (m VariableMapping) MarshalJSON() ([]byte, error) {
	return json.Marshal(mappingDTO{
		VariableName:  m.Name,
		QuestionID:    m.Source.legacyRef(),
		DataType:      string(m.DataType),
		TransformRule: m.TransformRule,
		Required:      m.Required,
		DefaultValue:  m.DefaultValue,
		Formula:       m.Formula,
	})
}

// ValidateUnique reports the first duplicated variable name across a mapping
// set, as uniqueness within one run is a configuration invariant.
func ValidateUnique(mappings []VariableMapping) error {
	seen := make(map[string]struct{}, len(mappings))
	for _, m := range mappings {
		if _, dup := seen[m.Name]; dup {
			return fmt.Errorf("%w: %s", core.ErrDuplicateVar, m.Name)
		}
		seen[m.Name] = struct{}{}
	}
	return nil
}
