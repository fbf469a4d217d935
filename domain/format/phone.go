package format

import (
	"strings"
)

// PhoneStyle selects the separator between number segments.
type PhoneStyle string

const (
	PhoneDashed PhoneStyle = "dashed"
	PhoneDotted PhoneStyle = "dotted"
	PhonePlain  PhoneStyle = "none"
)

// FormatPhone normalizes a Korean phone number. Digits are extracted, the
// Seoul 02 area code is detected, and the remainder grouped by the standard
// 10/11-digit numbering plan. Anything shorter than 9 digits passes through
// unchanged rather than guessing.
func FormatPhone(raw string, style PhoneStyle) string {
	digits := keepDigits(raw)
	if len(digits) < 9 {
		return raw
	}

	segments := splitPhone(digits)
	sep := "-"
	switch style {
	case PhoneDotted:
		sep = "."
	case PhonePlain:
		sep = ""
	}
	return strings.Join(segments, sep)
}

func splitPhone(digits string) []string {
	if strings.HasPrefix(digits, "02") {
		rest := digits[2:]
		switch len(rest) {
		case 7:
			return []string{"02", rest[:3], rest[3:]}
		case 8:
			return []string{"02", rest[:4], rest[4:]}
		default:
			return []string{"02", rest}
		}
	}
	switch len(digits) {
	case 10:
		return []string{digits[:3], digits[3:6], digits[6:]}
	case 11:
		return []string{digits[:3], digits[3:7], digits[7:]}
	default:
		// Unusual length; keep a best-effort 3-rest split.
		return []string{digits[:3], digits[3:]}
	}
}

func keepDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
