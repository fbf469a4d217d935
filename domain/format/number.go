package format

import (
	"strconv"
	"strings"
)

// FormatNumberWithComma renders a numeric string with thousands separators.
// Any fractional part is carried through verbatim, so 0.0001 stays 0.0001
// instead of rounding away. Non-numeric input echoes back unchanged.
func FormatNumberWithComma(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if _, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64); err != nil {
		return raw
	}
	s = strings.ReplaceAll(s, ",", "")

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimPrefix(s, "+")

	intPart, frac, hasFrac := strings.Cut(s, ".")
	if intPart == "" {
		intPart = "0"
	}
	grouped := groupThousands(intPart)
	if neg {
		grouped = "-" + grouped
	}
	if hasFrac {
		return grouped + "." + frac
	}
	return grouped
}

// FormatInt64WithComma is the integer convenience form.
func FormatInt64WithComma(n int64) string {
	return FormatNumberWithComma(strconv.FormatInt(n, 10))
}

// FormatFloatWithComma renders a float with minimal digits, then groups.
func FormatFloatWithComma(f float64) string {
	return FormatNumberWithComma(strconv.FormatFloat(f, 'f', -1, 64))
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// ParseNumeric extracts a float from a display value, tolerating currency
// symbols, commas and surrounding whitespace. Returns false when nothing
// numeric remains.
func ParseNumeric(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSuffix(s, "원")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
