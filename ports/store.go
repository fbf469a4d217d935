package ports

import (
	"context"

	"docuform/domain/selection"
	"docuform/domain/survey"
)

// Bundle is one survey run's worth of input: the answer snapshot plus the
// template configuration (rules and variable mappings) it runs against.
type Bundle struct {
	Name      string               `json:"name,omitempty"`
	Responses survey.Responses     `json:"responses"`
	Templates []selection.Template `json:"templates"`
}

// BundleStore supplies bundles from whatever persistence the host uses. The
// engine treats the ref as opaque (a path for the file adapter, a row key for
// a database-backed implementation).
type BundleStore interface {
	Load(ctx context.Context, ref string) (*Bundle, error)
}
