package format

import (
	"testing"

	"docuform/domain/mapping"
)

func TestApplyTransformRule(t *testing.T) {
	cases := []struct {
		name     string
		value    string
		dataType mapping.DataType
		rule     string
		want     string
	}{
		{"email normalized", "  Legal@AcmeRobotics.COM ", mapping.TypeEmail, "", "legal@acmerobotics.com"},
		{"phone dashed", "01012345678", mapping.TypePhone, "dashed", "010-1234-5678"},
		{"phone default style", "01012345678", mapping.TypePhone, "", "010-1234-5678"},
		{"date formatted", "2026-01-15", mapping.TypeDate, "MMMM D, YYYY", "January 15, 2026"},
		{"date no rule trims only", " 2026-01-15 ", mapping.TypeDate, "", "2026-01-15"},
		{"number comma default", "10000000", mapping.TypeNumber, "", "10,000,000"},
		{"number korean", "123", mapping.TypeNumber, "korean", "백이십삼"},
		{"number english", "21", mapping.TypeNumber, "english", "Twenty One"},
		{"number ordinal", "3", mapping.TypeNumber, "ordinal", "Third"},
		{"number plain", "1,234", mapping.TypeNumber, "plain", "1234"},
		{"number garbage", "n/a", mapping.TypeNumber, "", ""},
		// Amounts beyond int64 degrade to the comma form instead of word
		// renderings built on an overflowing conversion.
		{"number english beyond int64", "9300000000000000000000", mapping.TypeNumber, "english",
			"9,300,000,000,000,000,000,000"},
		{"number ordinal beyond int64", "9300000000000000000000", mapping.TypeNumber, "ordinal",
			"9,300,000,000,000,000,000,000"},
		{"currency dollar default", "50000", mapping.TypeCurrency, "dollar", "$50,000"},
		{"currency won", "50000", mapping.TypeCurrency, "won", "50,000원"},
		{"currency korean", "10000", mapping.TypeCurrency, "korean", "만원"},
		{"currency english", "1", mapping.TypeCurrency, "english", "One Dollar"},
		{"currency korean beyond int64", "9300000000000000000000", mapping.TypeCurrency, "korean",
			"9,300,000,000,000,000,000,000원"},
		{"currency english beyond int64", "9300000000000000000000", mapping.TypeCurrency, "english",
			"$9,300,000,000,000,000,000,000"},
		{"text uppercase", "acme", mapping.TypeText, "uppercase", "ACME"},
		{"untyped acts as text", "acme", "", "capitalize", "Acme"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ApplyTransformRule(tc.value, tc.dataType, tc.rule); got != tc.want {
				t.Errorf("ApplyTransformRule(%q, %q, %q) = %q, want %q",
					tc.value, tc.dataType, tc.rule, got, tc.want)
			}
		})
	}
}
