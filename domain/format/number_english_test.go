package format

import (
	"math"
	"testing"
)

func TestNumberToEnglish(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "Zero"},
		{1, "One"},
		{13, "Thirteen"},
		{20, "Twenty"},
		{21, "Twenty One"},
		{100, "One Hundred"},
		{115, "One Hundred Fifteen"},
		{999, "Nine Hundred Ninety Nine"},
		{1000, "One Thousand"},
		{1001, "One Thousand One"},
		{10000, "Ten Thousand"},
		{1000000, "One Million"},
		{2500000, "Two Million Five Hundred Thousand"},
		{1000000000, "One Billion"},
		{1000000000000, "One Trillion"},
		{1000000000000000, "One Quadrillion"},
		{1000000000000000000, "One Quintillion"},
		{-7, "Negative Seven"},
	}
	for _, tc := range cases {
		if got := NumberToEnglish(tc.n); got != tc.want {
			t.Errorf("NumberToEnglish(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}

func TestNumberToEnglish_FullInt64Range(t *testing.T) {
	want := "Nine Quintillion Two Hundred Twenty Three Quadrillion " +
		"Three Hundred Seventy Two Trillion Thirty Six Billion " +
		"Eight Hundred Fifty Four Million Seven Hundred Seventy Five Thousand " +
		"Eight Hundred Seven"
	if got := NumberToEnglish(math.MaxInt64); got != want {
		t.Errorf("NumberToEnglish(MaxInt64) = %q, want %q", got, want)
	}
	if got := NumberToEnglish(math.MinInt64 + 1); got != "Negative "+want {
		t.Errorf("NumberToEnglish(MinInt64+1) = %q", got)
	}
}

func TestNumberToEnglishCurrency(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{1, "One Dollar"},
		{2, "Two Dollars"},
		{0, "Zero Dollars"},
		{1000000, "One Million Dollars"},
	}
	for _, tc := range cases {
		if got := NumberToEnglishCurrency(tc.n); got != tc.want {
			t.Errorf("NumberToEnglishCurrency(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}

func TestNumberToOrdinal(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{1, "First"},
		{2, "Second"},
		{3, "Third"},
		{4, "Fourth"},
		{11, "Eleventh"},
		{12, "Twelfth"},
		{20, "Twentieth"},
		{21, "Twenty First"},
		{42, "Forty Second"},
		{99, "Ninety Ninth"},
		// Reduced composite form above 99.
		{100, "One Hundredth"},
		{101, "One Hundred First"},
		{123, "One Hundred Twenty Third"},
		{0, ""},
		{-5, ""},
	}
	for _, tc := range cases {
		if got := NumberToOrdinal(tc.n); got != tc.want {
			t.Errorf("NumberToOrdinal(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}
