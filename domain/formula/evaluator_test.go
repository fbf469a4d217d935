package formula

import (
	"errors"
	"testing"

	"docuform/domain/core"
)

func TestEvaluate(t *testing.T) {
	resolved := map[string]string{
		"a":            "10",
		"b":            "5",
		"founder1Cash": "50,000",
		"founder2Cash": "30,000",
		"parValue":     "0.0001",
		"shares":       "10000000",
		"note":         "not a number",
	}

	cases := []struct {
		name    string
		formula string
		want    string
	}{
		{"multiply", "{a} * {b}", "50"},
		{"precedence", "{a} + {b} * 2", "20"},
		{"parens", "({a} + {b}) * 2", "30"},
		{"nested parens", "(({a} - {b}) * ({b} + 1))", "30"},
		{"unary minus", "-{b} + {a}", "5"},
		{"commas stripped", "{founder1Cash} + {founder2Cash}", "80000"},
		{"fractional", "{parValue} * {shares}", "1000"},
		{"unresolved is zero", "{missing} + {a}", "10"},
		{"non-numeric is zero", "{note} + {a}", "10"},
		{"literal only", "2 + 3 * 4", "14"},
		{"division", "{a} / 4", "2.5"},
		{"division by zero", "{a} / 0", ""},
		{"empty formula", "   ", ""},
		{"forbidden characters", "{a} + system()", ""},
		{"dangling operator", "{a} +", ""},
		{"unbalanced parens", "({a} + {b}", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Evaluate(tc.formula, resolved); got != tc.want {
				t.Errorf("Evaluate(%q) = %q, want %q", tc.formula, got, tc.want)
			}
		})
	}
}

func TestEvaluateExpression_Errors(t *testing.T) {
	if _, err := evaluateExpression("1 + x"); !errors.Is(err, core.ErrFormulaForbidden) {
		t.Errorf("expected forbidden-character error, got %v", err)
	}
	if _, err := evaluateExpression("1 + "); !errors.Is(err, core.ErrFormulaParse) {
		t.Errorf("expected parse error, got %v", err)
	}
	if _, err := evaluateExpression("(1 + 2"); !errors.Is(err, core.ErrFormulaParse) {
		t.Errorf("expected parse error for unbalanced parens, got %v", err)
	}
	if _, err := evaluateExpression("1 2"); !errors.Is(err, core.ErrFormulaParse) {
		t.Errorf("expected trailing-input error, got %v", err)
	}
}
