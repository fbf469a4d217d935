package format

import (
	"strings"
)

var (
	englishOnes = [20]string{
		"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
		"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
		"Seventeen", "Eighteen", "Nineteen",
	}
	englishTens = [10]string{
		"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
	}
	// Covers the full int64 range: 19 digits is 7 groups.
	englishScales = [7]string{"", "Thousand", "Million", "Billion", "Trillion", "Quadrillion", "Quintillion"}

	ordinalOnes = [20]string{
		"", "First", "Second", "Third", "Fourth", "Fifth", "Sixth", "Seventh",
		"Eighth", "Ninth", "Tenth", "Eleventh", "Twelfth", "Thirteenth",
		"Fourteenth", "Fifteenth", "Sixteenth", "Seventeenth", "Eighteenth", "Nineteenth",
	}
	ordinalTens = [10]string{
		"", "", "Twentieth", "Thirtieth", "Fortieth", "Fiftieth", "Sixtieth",
		"Seventieth", "Eightieth", "Ninetieth",
	}
)

// NumberToEnglish renders an integer as English number words using 3-digit
// grouping. Zero is "Zero", negatives get a "Negative " prefix.
func NumberToEnglish(n int64) string {
	if n == 0 {
		return "Zero"
	}
	var b strings.Builder
	if n < 0 {
		b.WriteString("Negative ")
		n = -n
	}

	var groups []int64
	for n > 0 {
		groups = append([]int64{n % 1000}, groups...)
		n /= 1000
	}

	var parts []string
	for i, g := range groups {
		if g == 0 {
			continue
		}
		part := englishGroup(g)
		if scale := englishScales[len(groups)-1-i]; scale != "" {
			part += " " + scale
		}
		parts = append(parts, part)
	}
	b.WriteString(strings.Join(parts, " "))
	return b.String()
}

// englishGroup renders 1..999.
func englishGroup(g int64) string {
	var parts []string
	if h := g / 100; h > 0 {
		parts = append(parts, englishOnes[h]+" Hundred")
	}
	if r := g % 100; r > 0 {
		if r < 20 {
			parts = append(parts, englishOnes[r])
		} else {
			t := englishTens[r/10]
			if o := r % 10; o > 0 {
				t += " " + englishOnes[o]
			}
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

// NumberToEnglishCurrency renders a dollar amount in words; the unit is
// singular only for exactly one dollar.
func NumberToEnglishCurrency(n int64) string {
	words := NumberToEnglish(n)
	if n == 1 || n == -1 {
		return words + " Dollar"
	}
	return words + " Dollars"
}

// NumberToOrdinal renders English ordinal words. Values 1-99 are exact;
// values >= 100 use a reduced composite form ("One Hundred First") rather
// than exhaustive ordinal grammar. Non-positive input yields an empty string.
func NumberToOrdinal(n int64) string {
	if n <= 0 {
		return ""
	}
	if n < 100 {
		return ordinalUnder100(n)
	}
	rest := n % 100
	head := NumberToEnglish(n - rest)
	if rest == 0 {
		return head + "th"
	}
	return head + " " + ordinalUnder100(rest)
}

func ordinalUnder100(n int64) string {
	if n < 20 {
		return ordinalOnes[n]
	}
	if n%10 == 0 {
		return ordinalTens[n/10]
	}
	return englishTens[n/10] + " " + ordinalOnes[n%10]
}
