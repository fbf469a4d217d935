package format

import (
	"strconv"
	"strings"
	"time"
)

// Named date formats the document templates rely on. Arbitrary patterns fall
// back to token substitution over YYYY/MMMM/MMM/MM/M/DD/D.
var namedDateLayouts = map[string]string{
	"YYYY-MM-DD":      "2006-01-02",
	"YYYY년 MM월 DD일":   "2006년 01월 02일",
	"MM/DD/YYYY":      "01/02/2006",
	"MMMM D, YYYY":    "January 2, 2006",
	"MMM D, YYYY":     "Jan 2, 2006",
	"YYYY.MM.DD":      "2006.01.02",
	"DD/MM/YYYY":      "02/01/2006",
}

// input layouts tried in order when parsing answer strings
var dateInputLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"2006.01.02",
	"January 2, 2006",
}

// FormatDate renders a date answer in the requested format. Unparseable input
// echoes back unchanged; this function never fails.
func FormatDate(value string, formatName string) string {
	s := strings.TrimSpace(value)
	if s == "" {
		return ""
	}
	t, ok := ParseDate(s)
	if !ok {
		return value
	}
	return FormatTime(t, formatName)
}

// FormatTime renders an already-parsed time in the requested format.
func FormatTime(t time.Time, formatName string) string {
	if layout, ok := namedDateLayouts[formatName]; ok {
		return t.Format(layout)
	}
	if formatName == "" {
		return t.Format("2006-01-02")
	}
	return substituteDateTokens(t, formatName)
}

// ParseDate attempts the accepted input layouts in order.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateInputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// substituteDateTokens fills an arbitrary pattern built from date tokens.
// Longer tokens are matched first so MMMM is not consumed as MM+MM; replacer
// output is not rescanned, so month names cannot be re-substituted.
func substituteDateTokens(t time.Time, pattern string) string {
	r := strings.NewReplacer(
		"YYYY", strconv.Itoa(t.Year()),
		"MMMM", t.Month().String(),
		"MMM", t.Format("Jan"),
		"MM", t.Format("01"),
		"DD", t.Format("02"),
		"M", strconv.Itoa(int(t.Month())),
		"D", strconv.Itoa(t.Day()),
	)
	return r.Replace(pattern)
}
