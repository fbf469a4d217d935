package mapping

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"docuform/domain/core"
)

func TestParseSource(t *testing.T) {
	cases := []struct {
		in   string
		want Source
	}{
		{"companyName", Source{Kind: SourceAnswer, QuestionID: "companyName"}},
		{"manual", Source{Kind: SourceManual}},
		{"__manual__", Source{Kind: SourceManual}},
		{"calculated", Source{Kind: SourceCalculated}},
		{"founders.name", Source{Kind: SourceGroupField, Group: "founders", Field: "name"}},
		{"founder.2.cash", Source{Kind: SourceIndividualItem, Group: "founder", Field: "cash", Index: 2}},
		{"foundersCount", Source{Kind: SourceGroupCount, Group: "founders"}},
		// A zero index is not a valid item reference.
		{"founder.0.cash", Source{Kind: SourceAnswer, QuestionID: "founder.0.cash"}},
		// "Count" alone has no group to refer to.
		{"Count", Source{Kind: SourceAnswer, QuestionID: "Count"}},
		{"  spaced  ", Source{Kind: SourceAnswer, QuestionID: "spaced"}},
	}
	for _, tc := range cases {
		if got := ParseSource(tc.in); got != tc.want {
			t.Errorf("ParseSource(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestVariableMappingJSON(t *testing.T) {
	in := []byte(`{
		"variableName": "leadFounderCash",
		"questionId": "founder.1.cash",
		"dataType": "currency",
		"transformRule": "dollar",
		"required": true,
		"defaultValue": "$0"
	}`)

	var m VariableMapping
	if err := json.Unmarshal(in, &m); err != nil {
		t.Fatal(err)
	}
	want := VariableMapping{
		Name:          "leadFounderCash",
		Source:        Source{Kind: SourceIndividualItem, Group: "founder", Field: "cash", Index: 1},
		DataType:      TypeCurrency,
		TransformRule: "dollar",
		Required:      true,
		DefaultValue:  "$0",
	}
	if !reflect.DeepEqual(m, want) {
		t.Errorf("unmarshal = %+v, want %+v", m, want)
	}

	// The sentinel encoding survives a round trip.
	out, err := json.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	var dto map[string]any
	if err := json.Unmarshal(out, &dto); err != nil {
		t.Fatal(err)
	}
	if dto["questionId"] != "founder.1.cash" {
		t.Errorf("questionId = %v, want founder.1.cash", dto["questionId"])
	}
}

func TestVariableMappingJSON_Invalid(t *testing.T) {
	var m VariableMapping
	if err := json.Unmarshal([]byte(`{"questionId":"q"}`), &m); err == nil {
		t.Error("missing variableName accepted")
	}
	if err := json.Unmarshal([]byte(`{"variableName":"v","dataType":"tensor"}`), &m); err == nil {
		t.Error("unknown dataType accepted")
	}
}

func TestParseDataType(t *testing.T) {
	if dt, err := ParseDataType(" Currency "); err != nil || dt != TypeCurrency {
		t.Errorf("ParseDataType currency = (%q, %v)", dt, err)
	}
	if dt, err := ParseDataType(""); err != nil || dt != TypeText {
		t.Errorf("ParseDataType empty = (%q, %v)", dt, err)
	}
	if _, err := ParseDataType("blob"); !errors.Is(err, core.ErrInvalidDataType) {
		t.Errorf("ParseDataType blob err = %v", err)
	}
}

func TestValidateUnique(t *testing.T) {
	ok := []VariableMapping{{Name: "a"}, {Name: "b"}}
	if err := ValidateUnique(ok); err != nil {
		t.Errorf("unique set rejected: %v", err)
	}
	dup := []VariableMapping{{Name: "a"}, {Name: "b"}, {Name: "a"}}
	if err := ValidateUnique(dup); !errors.Is(err, core.ErrDuplicateVar) {
		t.Errorf("duplicate not reported: %v", err)
	}
}
