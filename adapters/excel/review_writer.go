// Package excel writes the admin review workbook for a generation run:
// what was selected, every resolved variable, and the validation gaps.
package excel

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"docuform/app"
	"docuform/domain/selection"
	"docuform/internal/errors"
)

const (
	sheetTemplates  = "Templates"
	sheetVariables  = "Variables"
	sheetValidation = "Validation"
)

// ReviewWriter produces the review workbook.
type ReviewWriter struct{}

// NewReviewWriter creates a workbook writer.
func NewReviewWriter() *ReviewWriter {
	return &ReviewWriter{}
}

// Write builds the workbook and saves it to path.
func (w *ReviewWriter) Write(path string, result *app.GenerateResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := w.writeTemplates(f, result); err != nil {
		return errors.WithCode(errors.CodeReportFailed, err)
	}
	if err := w.writeVariables(f, result); err != nil {
		return errors.WithCode(errors.CodeReportFailed, err)
	}
	if err := w.writeValidation(f, result); err != nil {
		return errors.WithCode(errors.CodeReportFailed, err)
	}

	// Drop the default sheet so the workbook opens on Templates.
	f.DeleteSheet("Sheet1")
	if err := f.SaveAs(path); err != nil {
		return errors.WithCode(errors.CodeReportFailed, errors.Wrapf(err, "failed to save workbook %s", path))
	}
	return nil
}

func (w *ReviewWriter) writeTemplates(f *excelize.File, result *app.GenerateResult) error {
	if _, err := f.NewSheet(sheetTemplates); err != nil {
		return err
	}
	headers := []any{"Template", "Bucket", "File", "Mappings"}
	if err := f.SetSheetRow(sheetTemplates, "A1", &headers); err != nil {
		return err
	}
	row := 2
	writeBucket := func(bucket selection.Bucket, templates []selection.Template) error {
		for _, t := range templates {
			cells := []any{t.DisplayName, string(bucket), t.FileRef, len(t.Mappings)}
			if err := f.SetSheetRow(sheetTemplates, fmt.Sprintf("A%d", row), &cells); err != nil {
				return err
			}
			row++
		}
		return nil
	}
	if err := writeBucket(selection.BucketRequired, result.Selection.Required); err != nil {
		return err
	}
	if err := writeBucket(selection.BucketSuggested, result.Selection.Suggested); err != nil {
		return err
	}
	return writeBucket(selection.BucketOptional, result.Selection.Optional)
}

func (w *ReviewWriter) writeVariables(f *excelize.File, result *app.GenerateResult) error {
	if _, err := f.NewSheet(sheetVariables); err != nil {
		return err
	}
	headers := []any{"Template", "Variable", "Value"}
	if err := f.SetSheetRow(sheetVariables, "A1", &headers); err != nil {
		return err
	}
	row := 2
	for _, doc := range result.Documents {
		names := make([]string, 0, len(doc.Variables.Values))
		for name := range doc.Variables.Values {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			cells := []any{doc.Template.DisplayName, name, doc.Variables.Values[name]}
			if err := f.SetSheetRow(sheetVariables, fmt.Sprintf("A%d", row), &cells); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

func (w *ReviewWriter) writeValidation(f *excelize.File, result *app.GenerateResult) error {
	if _, err := f.NewSheet(sheetValidation); err != nil {
		return err
	}
	headers := []any{"Template", "Kind", "Variable"}
	if err := f.SetSheetRow(sheetValidation, "A1", &headers); err != nil {
		return err
	}
	row := 2
	for _, doc := range result.Documents {
		for _, name := range doc.Validation.Missing {
			cells := []any{doc.Template.DisplayName, "missing", name}
			if err := f.SetSheetRow(sheetValidation, fmt.Sprintf("A%d", row), &cells); err != nil {
				return err
			}
			row++
		}
		for _, name := range doc.Validation.EmptyRequired {
			cells := []any{doc.Template.DisplayName, "empty_required", name}
			if err := f.SetSheetRow(sheetValidation, fmt.Sprintf("A%d", row), &cells); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}
