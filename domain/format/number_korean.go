package format

import (
	"strings"
)

// Sino-Korean numerals with 4-digit grouping. Big units step by 10^4:
// 만 (10^4), 억 (10^8), 조 (10^12), 경 (10^16).
var (
	koreanDigits    = [10]string{"", "일", "이", "삼", "사", "오", "육", "칠", "팔", "구"}
	koreanSmallUnit = [4]string{"", "십", "백", "천"}
	koreanBigUnit   = [5]string{"", "만", "억", "조", "경"}
)

// NumberToKorean renders an integer as native Korean numeral words.
// Zero is 영, negatives get a 마이너스 prefix. Exactly 10,000 is 만, not 일만
// (the customary elision), while 억 and above keep the leading 일.
func NumberToKorean(n int64) string {
	if n == 0 {
		return "영"
	}
	var b strings.Builder
	if n < 0 {
		b.WriteString("마이너스 ")
		n = -n
	}

	// Split into 4-digit groups, most significant first.
	var groups []int64
	for n > 0 {
		groups = append([]int64{n % 10000}, groups...)
		n /= 10000
	}

	for i, g := range groups {
		if g == 0 {
			continue
		}
		unit := koreanBigUnit[len(groups)-1-i]
		if g == 1 && unit == "만" {
			// 10,000 → 만
			b.WriteString(unit)
			continue
		}
		b.WriteString(koreanGroup(g))
		b.WriteString(unit)
	}
	return b.String()
}

// koreanGroup renders 1..9999 with 십/백/천, eliding 일 before each small unit.
func koreanGroup(g int64) string {
	var b strings.Builder
	for pos := 3; pos >= 0; pos-- {
		div := int64(1)
		for i := 0; i < pos; i++ {
			div *= 10
		}
		d := (g / div) % 10
		if d == 0 {
			continue
		}
		if !(d == 1 && pos > 0) {
			b.WriteString(koreanDigits[d])
		}
		b.WriteString(koreanSmallUnit[pos])
	}
	return b.String()
}

// NumberToKoreanCurrency renders an amount in won, e.g. 10000 → "만원".
func NumberToKoreanCurrency(n int64) string {
	words := NumberToKorean(n)
	if words == "" {
		return ""
	}
	return words + "원"
}
