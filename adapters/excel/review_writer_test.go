package excel

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"docuform/app"
	"docuform/internal/testkit"
)

func TestReviewWriter_Write(t *testing.T) {
	svc := app.NewGenerationService(nil, nil)
	result, err := svc.Generate(context.Background(), app.GenerateRequest{
		Responses: testkit.IncorporationResponses(),
		Templates: testkit.IncorporationTemplates(),
		Transform: testkit.PinnedContext(),
	})
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "review.xlsx")
	if err := NewReviewWriter().Write(path, result); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := map[string]bool{sheetTemplates: false, sheetVariables: false, sheetValidation: false}
	for _, s := range sheets {
		if _, ok := want[s]; ok {
			want[s] = true
		}
		if s == "Sheet1" {
			t.Error("default sheet not removed")
		}
	}
	for s, seen := range want {
		if !seen {
			t.Errorf("sheet %s missing", s)
		}
	}

	rows, err := f.GetRows(sheetTemplates)
	if err != nil {
		t.Fatal(err)
	}
	// Header plus one row per active template.
	if len(rows) != 5 {
		t.Fatalf("template rows = %d, want 5", len(rows))
	}
	if rows[0][0] != "Template" || rows[1][1] != "required" {
		t.Errorf("unexpected template sheet contents: %v", rows[:2])
	}

	vars, err := f.GetRows(sheetVariables)
	if err != nil {
		t.Fatal(err)
	}
	if len(vars) < 2 {
		t.Fatal("variables sheet is empty")
	}
	found := false
	for _, row := range vars[1:] {
		if len(row) >= 3 && row[1] == "companyName" && row[2] == "Acme Robotics, Inc." {
			found = true
			break
		}
	}
	if !found {
		t.Error("companyName variable row missing")
	}
}
