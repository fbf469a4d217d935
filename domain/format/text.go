package format

import (
	"strings"
	"unicode"
)

// TransformText applies a case/whitespace rule to free text. Unknown rules
// behave like "none".
func TransformText(text string, rule string) string {
	switch strings.ToLower(strings.TrimSpace(rule)) {
	case "uppercase":
		return strings.ToUpper(text)
	case "lowercase":
		return strings.ToLower(text)
	case "capitalize":
		return capitalizeFirst(text)
	case "title":
		return titleCase(text)
	case "trim":
		return strings.TrimSpace(text)
	default:
		return text
	}
}

// capitalizeFirst upper-cases the first character only.
func capitalizeFirst(s string) string {
	for i, r := range s {
		return s[:i] + string(unicode.ToUpper(r)) + s[i+len(string(r)):]
	}
	return s
}

// titleCase upper-cases every word-initial character, leaving the rest alone.
func titleCase(s string) string {
	prevSpace := true
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if prevSpace {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(r)
		}
		prevSpace = unicode.IsSpace(r)
	}
	return b.String()
}
