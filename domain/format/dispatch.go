package format

import (
	"math"
	"strings"

	"docuform/domain/mapping"
)

// ApplyTransformRule routes a scalar value to the formatter family for its
// data type. Total: malformed input degrades to the most conservative echo,
// never an error.
func ApplyTransformRule(value string, dataType mapping.DataType, rule string) string {
	switch dataType {
	case mapping.TypeEmail:
		return strings.ToLower(strings.TrimSpace(value))
	case mapping.TypePhone:
		return FormatPhone(value, phoneStyle(rule))
	case mapping.TypeDate:
		if rule == "" || rule == "none" {
			return strings.TrimSpace(value)
		}
		return FormatDate(value, rule)
	case mapping.TypeNumber:
		return formatNumber(value, rule)
	case mapping.TypeCurrency:
		return formatCurrency(value, rule)
	case mapping.TypeText, mapping.TypeList, "":
		return TransformText(value, rule)
	default:
		return value
	}
}

func phoneStyle(rule string) PhoneStyle {
	switch PhoneStyle(strings.ToLower(strings.TrimSpace(rule))) {
	case PhoneDotted:
		return PhoneDotted
	case PhonePlain:
		return PhonePlain
	default:
		return PhoneDashed
	}
}

func formatNumber(value string, rule string) string {
	n, ok := ParseNumeric(value)
	if !ok {
		return ""
	}
	switch strings.ToLower(strings.TrimSpace(rule)) {
	case "korean":
		if i, ok := toInt64(n); ok {
			return NumberToKorean(i)
		}
		return FormatFloatWithComma(n)
	case "english":
		if i, ok := toInt64(n); ok {
			return NumberToEnglish(i)
		}
		return FormatFloatWithComma(n)
	case "ordinal":
		if i, ok := toInt64(n); ok {
			return NumberToOrdinal(i)
		}
		return FormatFloatWithComma(n)
	case "plain":
		return strings.TrimSpace(strings.ReplaceAll(value, ",", ""))
	default:
		return FormatFloatWithComma(n)
	}
}

func formatCurrency(value string, rule string) string {
	n, ok := ParseNumeric(value)
	if !ok {
		return ""
	}
	switch strings.ToLower(strings.TrimSpace(rule)) {
	case "korean":
		if i, ok := toInt64(n); ok {
			return NumberToKoreanCurrency(i)
		}
		return FormatFloatWithComma(n) + "원"
	case "english":
		if i, ok := toInt64(n); ok {
			return NumberToEnglishCurrency(i)
		}
		return "$" + FormatFloatWithComma(n)
	case "won":
		return FormatFloatWithComma(n) + "원"
	default:
		// Unrecognized directives fall back to the dollar rendering.
		return "$" + FormatFloatWithComma(n)
	}
}

// toInt64 converts when the float is exactly representable in int64 territory.
// Out-of-range conversions are unspecified in Go, so word renderings fall back
// to the comma form for amounts beyond int64.
func toInt64(f float64) (int64, bool) {
	// MinInt64 itself is excluded: the word renderers negate, which would
	// overflow on exactly -2^63.
	if f <= math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}
