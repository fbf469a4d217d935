// Package render provides a plain-text implementation of the document
// renderer port. Production deployments plug a DOCX engine into the same
// port; this adapter covers previews, tests and the CLI.
package render

import (
	"context"
	"os"
	"regexp"

	"docuform/domain/transform"
	"docuform/internal/errors"
)

var placeholder = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// TextRenderer substitutes {variableName} placeholders in a UTF-8 template
// file. Unknown placeholders render as empty string, matching the renderer
// contract.
type TextRenderer struct{}

// NewTextRenderer creates a preview renderer.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

// Render reads the template file and fills its placeholders.
func (r *TextRenderer) Render(_ context.Context, templateRef string, vars *transform.VariableMap) ([]byte, error) {
	tpl, err := os.ReadFile(templateRef)
	if err != nil {
		return nil, errors.WithCode(errors.CodeRenderFailed, errors.Wrapf(err, "failed to read template %s", templateRef))
	}
	return Substitute(tpl, vars), nil
}

// Substitute fills placeholders in template bytes. Split out so callers with
// in-memory templates can use it directly.
func Substitute(tpl []byte, vars *transform.VariableMap) []byte {
	return placeholder.ReplaceAllFunc(tpl, func(tok []byte) []byte {
		name := string(tok[1 : len(tok)-1])
		return []byte(vars.Get(name))
	})
}
