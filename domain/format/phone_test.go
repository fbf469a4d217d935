package format

import (
	"testing"
)

func TestFormatPhone(t *testing.T) {
	cases := []struct {
		raw   string
		style PhoneStyle
		want  string
	}{
		{"01012345678", PhoneDashed, "010-1234-5678"},
		{"010-1234-5678", PhoneDashed, "010-1234-5678"},
		{"010 1234 5678", PhoneDotted, "010.1234.5678"},
		{"01012345678", PhonePlain, "01012345678"},
		{"0312345678", PhoneDashed, "031-234-5678"},
		// Seoul numbers keep the two-digit area code.
		{"0212345678", PhoneDashed, "02-1234-5678"},
		{"021234567", PhoneDashed, "02-123-4567"},
		// Too short to be a full number: passthrough.
		{"1234", PhoneDashed, "1234"},
		{"", PhoneDashed, ""},
	}
	for _, tc := range cases {
		if got := FormatPhone(tc.raw, tc.style); got != tc.want {
			t.Errorf("FormatPhone(%q, %q) = %q, want %q", tc.raw, tc.style, got, tc.want)
		}
	}
}
