// Package report renders a human-readable generation summary, as markdown
// for terminals and as HTML for the admin preview pane.
package report

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"docuform/app"
	"docuform/domain/selection"
)

// Summary builds the markdown summary of a generation run.
func Summary(result *app.GenerateResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Generation Run %s\n\n", result.RunID)

	fmt.Fprintf(&b, "## Template Selection\n\n")
	writeBucket(&b, "Required", result.Selection.Required)
	writeBucket(&b, "Suggested", result.Selection.Suggested)
	writeBucket(&b, "Optional", result.Selection.Optional)

	fmt.Fprintf(&b, "## Documents\n\n")
	for _, doc := range result.Documents {
		fmt.Fprintf(&b, "### %s\n\n", doc.Template.DisplayName)
		fmt.Fprintf(&b, "- Bucket: %s\n", doc.Bucket)
		fmt.Fprintf(&b, "- Variables resolved: %d\n", len(doc.Variables.Values))
		if doc.Validation.IsValid {
			fmt.Fprintf(&b, "- Validation: ok\n")
		} else {
			fmt.Fprintf(&b, "- Validation: %d missing, %d empty required\n",
				len(doc.Validation.Missing), len(doc.Validation.EmptyRequired))
			for _, name := range doc.Validation.Missing {
				fmt.Fprintf(&b, "  - missing: `%s`\n", name)
			}
			for _, name := range doc.Validation.EmptyRequired {
				fmt.Fprintf(&b, "  - empty required: `%s`\n", name)
			}
		}
		if doc.RenderErr != nil {
			fmt.Fprintf(&b, "- Render error: %v\n", doc.RenderErr)
		}
		fmt.Fprintf(&b, "\n")
	}
	return b.String()
}

func writeBucket(b *strings.Builder, title string, templates []selection.Template) {
	fmt.Fprintf(b, "**%s**\n\n", title)
	if len(templates) == 0 {
		fmt.Fprintf(b, "- none\n\n")
		return
	}
	for _, t := range templates {
		fmt.Fprintf(b, "- %s\n", t.DisplayName)
	}
	fmt.Fprintf(b, "\n")
}

// ToHTML renders the markdown summary as a standalone HTML fragment.
func ToHTML(md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML([]byte(md), p, renderer)
}
