package core

import (
	"time"
)

// Clock supplies the current time. Injecting it keeps the transformer's
// auto-generated date variables reproducible in tests and pinned CLI runs.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time { return c.At }

// Rand supplies random integers for document-number suffixes. *math/rand.Rand
// satisfies it directly.
type Rand interface {
	Intn(n int) int
}
