package ports

import (
	"context"

	"docuform/domain/transform"
)

// DocumentRenderer is the external templating collaborator. It substitutes
// {variableName} placeholders in the referenced template with values from the
// flat map and returns the rendered bytes (DOCX in production). Keys absent
// from the map render as empty string by convention; the transformer
// guarantees the map itself carries no missing-value sentinels.
type DocumentRenderer interface {
	Render(ctx context.Context, templateRef string, vars *transform.VariableMap) ([]byte, error)
}
