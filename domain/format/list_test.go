package format

import (
	"reflect"
	"testing"
)

func TestNaturalJoins(t *testing.T) {
	three := []string{"robotics", "software", "consulting"}
	two := []string{"robotics", "software"}
	one := []string{"robotics"}

	cases := []struct {
		name string
		got  string
		want string
	}{
		{"and/3", FormatListAnd(three), "robotics, software, and consulting"},
		{"and/2", FormatListAnd(two), "robotics and software"},
		{"and/1", FormatListAnd(one), "robotics"},
		{"and/0", FormatListAnd(nil), ""},
		{"or/3", FormatListOr(three), "robotics, software, or consulting"},
		{"or/2", FormatListOr(two), "robotics or software"},
		{"comma", FormatListComma(three), "robotics, software, consulting"},
		{"newline", FormatListNewline(two), "robotics\nsoftware"},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("%s = %q, want %q", tc.name, tc.got, tc.want)
		}
	}
}

func TestArrayHelperVariables(t *testing.T) {
	vars, loop := ArrayHelperVariables("purposes", []string{"a", "b", "c"})

	wantVars := map[string]string{
		"purposesCount":       "3",
		"purposesFormatted":   "a, b, and c",
		"purposesList":        "a, b, c",
		"purposesOrList":      "a, b, or c",
		"purposesFirst":       "a",
		"purposesLast":        "c",
		"hasMultiplePurposes": "true",
		"hasSinglePurposes":   "false",
		"hasNoPurposes":       "false",
		"purposes1":           "a",
		"purposes2":           "b",
		"purposes3":           "c",
	}
	if !reflect.DeepEqual(vars, wantVars) {
		t.Errorf("helper vars mismatch:\n got %v\nwant %v", vars, wantVars)
	}

	wantLoop := []LoopItem{
		{Value: "a", Index: 1, IsFirst: true},
		{Value: "b", Index: 2},
		{Value: "c", Index: 3, IsLast: true},
	}
	if !reflect.DeepEqual(loop, wantLoop) {
		t.Errorf("loop items mismatch:\n got %v\nwant %v", loop, wantLoop)
	}
}

func TestArrayHelperVariables_Empty(t *testing.T) {
	vars, loop := ArrayHelperVariables("items", nil)
	if vars["itemsCount"] != "0" || vars["hasNoItems"] != "true" {
		t.Errorf("empty list vars = %v", vars)
	}
	if vars["itemsFirst"] != "" || vars["itemsLast"] != "" {
		t.Errorf("first/last should be blank for an empty list: %v", vars)
	}
	if len(loop) != 0 {
		t.Errorf("expected no loop items, got %v", loop)
	}
}
