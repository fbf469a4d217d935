package format

import (
	"testing"
)

func TestFormatNumberWithComma(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"10000000", "10,000,000"},
		{"1234", "1,234"},
		{"123", "123"},
		{"0", "0"},
		{"-1234567", "-1,234,567"},
		{"1234.5", "1,234.5"},
		{"1234.56", "1,234.56"},
		// Small fractions keep their precision instead of rounding to 2.
		{"0.0001", "0.0001"},
		{"1,000,000", "1,000,000"},
		{"", ""},
		{"abc", "abc"},
		{"  42  ", "42"},
	}
	for _, tc := range cases {
		if got := FormatNumberWithComma(tc.in); got != tc.want {
			t.Errorf("FormatNumberWithComma(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatFloatWithComma(t *testing.T) {
	if got := FormatFloatWithComma(1234567); got != "1,234,567" {
		t.Errorf("FormatFloatWithComma(1234567) = %q", got)
	}
	if got := FormatFloatWithComma(0.0001); got != "0.0001" {
		t.Errorf("FormatFloatWithComma(0.0001) = %q", got)
	}
}

func TestParseNumeric(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1234", 1234, true},
		{"1,234.5", 1234.5, true},
		{"$1,000", 1000, true},
		{"5000원", 5000, true},
		{" 42 ", 42, true},
		{"", 0, false},
		{"abc", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseNumeric(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseNumeric(%q) = (%v, %v), want (%v, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
