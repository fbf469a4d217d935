package selection

import (
	"encoding/json"
	"testing"
)

func TestTemplateUnmarshal_ActiveDefault(t *testing.T) {
	var legacy Template
	if err := json.Unmarshal([]byte(`{"id":"t1","displayName":"Charter"}`), &legacy); err != nil {
		t.Fatal(err)
	}
	if !legacy.Active {
		t.Error("template without an active flag should default to active")
	}

	var disabled Template
	if err := json.Unmarshal([]byte(`{"id":"t2","displayName":"Old","active":false}`), &disabled); err != nil {
		t.Fatal(err)
	}
	if disabled.Active {
		t.Error("explicit active:false was ignored")
	}
}

func TestConditionNormalize(t *testing.T) {
	c := Condition{QuestionID: "q", Operator: " == "}.normalize()
	if c.Operator != OpEqual {
		t.Errorf("operator = %q, want ==", c.Operator)
	}
	if c.ValueSource != ValueLiteral || c.SourceType != LeftQuestion {
		t.Errorf("defaults not filled: %+v", c)
	}
}

func TestRuleCombinatorDefault(t *testing.T) {
	if (Rule{}).combinator() != CombinatorAnd {
		t.Error("empty combinator should default to AND")
	}
	if (Rule{Combinator: "or"}).combinator() != CombinatorOr {
		t.Error("lowercase or should normalize to OR")
	}
}
