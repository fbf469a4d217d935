// Package survey holds the immutable answer snapshot the engine consumes.
// Answers arrive from an external persistence layer as opaque data; the core
// never mutates them.
package survey

import (
	"encoding/json"
	"fmt"
	"sort"

	"docuform/domain/core"
)

// Value is the payload of one survey answer. Exactly one of the three shapes
// is present: a scalar string, a multi-select list of strings, or a repeated
// group (one record per person/entity).
type Value interface {
	isValue()
}

// Scalar is a single free-text or choice answer.
type Scalar string

// ScalarList is a multi-select answer.
type ScalarList []string

// Record is one entry of a repeated group, keyed by field name.
type Record map[string]string

// RecordList is a repeated-group answer, e.g. one Record per company director.
type RecordList []Record

func (Scalar) isValue()     {}
func (ScalarList) isValue() {}
func (RecordList) isValue() {}

// Response pairs a question with the answer the respondent gave.
type Response struct {
	QuestionID core.QuestionID
	Value      Value
}

// Responses is the full answer snapshot for one survey run.
type Responses []Response

// Find returns the answer for a question, or nil when unanswered.
func (rs Responses) Find(id core.QuestionID) Value {
	for _, r := range rs {
		if r.QuestionID == id {
			return r.Value
		}
	}
	return nil
}

// Scalar returns the scalar answer for a question, or "" when the question is
// unanswered or not scalar-shaped.
func (rs Responses) Scalar(id core.QuestionID) string {
	if v, ok := rs.Find(id).(Scalar); ok {
		return string(v)
	}
	return ""
}

// Groups returns every repeated-group answer keyed by question ID, in a
// stable (sorted) key order so downstream expansion is deterministic.
type Group struct {
	Name    core.QuestionID
	Records RecordList
}

func (rs Responses) Groups() []Group {
	var groups []Group
	for _, r := range rs {
		if recs, ok := r.Value.(RecordList); ok && len(recs) > 0 {
			groups = append(groups, Group{Name: r.QuestionID, Records: recs})
		}
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Name < groups[j].Name })
	return groups
}

// FieldsOfFirst lists the field names of the first record in declaration-free
// sorted order. Per-field projections are derived from the first record only.
func (g Group) FieldsOfFirst() []string {
	if len(g.Records) == 0 {
		return nil
	}
	fields := make([]string, 0, len(g.Records[0]))
	for f := range g.Records[0] {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// responseDTO mirrors the storage wire shape: value is a bare JSON string,
// string array, or array of string-keyed objects.
type responseDTO struct {
	QuestionID string          `json:"questionId"`
	Value      json.RawMessage `json:"value"`
}

// UnmarshalJSON sniffs the answer shape from raw JSON.
func (r *Response) UnmarshalJSON(data []byte) error {
	var dto responseDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}
	r.QuestionID = core.QuestionID(dto.QuestionID)

	if len(dto.Value) == 0 {
		r.Value = Scalar("")
		return nil
	}
	var s string
	if err := json.Unmarshal(dto.Value, &s); err == nil {
		r.Value = Scalar(s)
		return nil
	}
	var list []string
	if err := json.Unmarshal(dto.Value, &list); err == nil {
		r.Value = ScalarList(list)
		return nil
	}
	var records []Record
	if err := json.Unmarshal(dto.Value, &records); err == nil {
		r.Value = RecordList(records)
		return nil
	}
	return fmt.Errorf("response %s: value is neither scalar, list, nor record list", dto.QuestionID)
}

// MarshalJSON writes the storage wire shape back out.
func (r Response) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		QuestionID string `json:"questionId"`
		Value      Value  `json:"value"`
	}{QuestionID: r.QuestionID.String(), Value: r.Value})
}
