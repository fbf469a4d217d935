// Package transform turns a survey answer snapshot plus variable-mapping
// configuration into the flat variable map that document rendering consumes.
package transform

import (
	"math/rand"
	"time"

	"docuform/domain/core"
	"docuform/domain/format"
)

// GroupRecord is one loop-ready entry of an expanded repeated group. Numeric
// fields are pre-formatted; Index is 1-based.
type GroupRecord struct {
	Fields  map[string]string `json:"fields"`
	Index   int               `json:"index"`
	IsFirst bool              `json:"isFirst"`
	IsLast  bool              `json:"isLast"`
}

// VariableMap is the transformer's output: a flat string map for placeholder
// substitution, plus side-band arrays for templates with repeat constructs.
// The scalar keys are authoritative; arrays are additive and never replace
// the scalar projections used for counts and flags.
type VariableMap struct {
	Values map[string]string
	Lists  map[string][]format.LoopItem
	Groups map[string][]GroupRecord
}

// NewVariableMap returns an empty, ready-to-fill map.
func NewVariableMap() *VariableMap {
	return &VariableMap{
		Values: make(map[string]string),
		Lists:  make(map[string][]format.LoopItem),
		Groups: make(map[string][]GroupRecord),
	}
}

// Get returns the resolved value for a variable, empty string when absent.
func (vm *VariableMap) Get(name string) string {
	return vm.Values[name]
}

// Set stores a scalar variable. Values are plain strings by construction, so
// no "undefined" can leak into the rendered document.
func (vm *VariableMap) Set(name, value string) {
	vm.Values[name] = value
}

// SetIfAbsent stores a scalar variable only when it is missing or blank.
func (vm *VariableMap) SetIfAbsent(name, value string) {
	if vm.Values[name] == "" {
		vm.Values[name] = value
	}
}

// Merge copies a batch of scalar variables in.
func (vm *VariableMap) Merge(vars map[string]string) {
	for k, v := range vars {
		vm.Values[k] = v
	}
}

// Context carries the ambient inputs of one transformation run: time source,
// randomness for the document number, and admin-supplied overrides. Injecting
// these keeps runs reproducible (idempotence except for the document number,
// which can be pinned).
type Context struct {
	Clock core.Clock
	Rand  core.Rand

	// DocumentNumber pins the generated document number when non-empty.
	DocumentNumber string
	// DocumentPrefix prefixes generated document numbers, e.g. "INC".
	DocumentPrefix string
	// OmitDocumentDate drops the YYYYMMDD segment from generated numbers.
	OmitDocumentDate bool

	// ManualValues supplies values for manual-source mappings, keyed by
	// variable name. Missing entries fall back to the mapping default.
	ManualValues map[string]string
}

// NewContext returns a production context: system clock, seeded randomness.
func NewContext() Context {
	return Context{
		Clock: core.SystemClock{},
		Rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (c Context) now() time.Time {
	if c.Clock == nil {
		return time.Now()
	}
	return c.Clock.Now()
}

func (c Context) rng() core.Rand {
	if c.Rand == nil {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return c.Rand
}
