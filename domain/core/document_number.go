package core

import (
	"fmt"
	"strings"
	"time"
)

// suffix alphabet excludes 0/O and 1/I lookalikes
const documentSuffixAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const documentSuffixLength = 6

// NewDocumentNumber builds a human-readable document number:
// prefix + 8-digit date + 6-char random suffix, e.g. "DOC-20260827-K7M2PQ".
// With includeDate false the date segment is omitted.
func NewDocumentNumber(prefix string, at time.Time, rng Rand, includeDate bool) string {
	var b strings.Builder
	if prefix != "" {
		b.WriteString(prefix)
		b.WriteString("-")
	}
	if includeDate {
		b.WriteString(at.Format("20060102"))
		b.WriteString("-")
	}
	for i := 0; i < documentSuffixLength; i++ {
		b.WriteByte(documentSuffixAlphabet[rng.Intn(len(documentSuffixAlphabet))])
	}
	return b.String()
}

// NewRunID returns a fresh run identifier with a readable prefix.
func NewRunID() RunID {
	return RunID(fmt.Sprintf("run-%s", NewID()))
}
