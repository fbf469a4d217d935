package transform_test

import (
	"reflect"
	"testing"

	"docuform/domain/survey"
	"docuform/domain/transform"
	"docuform/internal/testkit"
)

func transformFixture(t *testing.T) *transform.VariableMap {
	t.Helper()
	return transform.Transform(testkit.IncorporationResponses(), testkit.CharterMappings(), testkit.PinnedContext())
}

func assertVars(t *testing.T, vm *transform.VariableMap, want map[string]string) {
	t.Helper()
	for key, expect := range want {
		if got := vm.Get(key); got != expect {
			t.Errorf("%s = %q, want %q", key, got, expect)
		}
	}
}

func TestTransform_AutoContext(t *testing.T) {
	vm := transformFixture(t)
	assertVars(t, vm, map[string]string{
		"currentDate":       "January 31, 2026",
		"currentDateShort":  "01/31/2026",
		"currentDateISO":    "2026-01-31",
		"currentDateKorean": "2026년 01월 31일",
		"currentTime":       "10:30",
		"currentYear":       "2026",
		"documentNumber":    "INC-20260131-TEST01",
	})
}

func TestTransform_GeneratedDocumentNumber(t *testing.T) {
	ctx := testkit.PinnedContext()
	ctx.DocumentNumber = ""
	vm := transform.Transform(nil, nil, ctx)

	got := vm.Get("documentNumber")
	if len(got) != len("INC-20260131-XXXXXX") {
		t.Fatalf("documentNumber = %q, unexpected shape", got)
	}
	if got[:13] != "INC-20260131-" {
		t.Errorf("documentNumber = %q, want INC-20260131- prefix", got)
	}

	// Same seed, same number.
	again := transform.Transform(nil, nil, testkitContextWithoutNumber())
	if again.Get("documentNumber") != got {
		t.Errorf("document number not deterministic under a fixed seed: %q vs %q",
			again.Get("documentNumber"), got)
	}
}

func testkitContextWithoutNumber() transform.Context {
	ctx := testkit.PinnedContext()
	ctx.DocumentNumber = ""
	return ctx
}

func TestTransform_AdminDates(t *testing.T) {
	vm := transformFixture(t)
	assertVars(t, vm, map[string]string{
		// Answered: rendered from the answer.
		"certificateDate":       "January 15, 2026",
		"certificateDateShort":  "01/15/2026",
		"certificateDateISO":    "2026-01-15",
		"certificateDateKorean": "2026년 01월 15일",
		// Unanswered: defaults to the pinned clock, never missing.
		"signatureDate":       "January 31, 2026",
		"signatureDateShort":  "01/31/2026",
		"signatureDateISO":    "2026-01-31",
		"signatureDateKorean": "2026년 01월 31일",
	})
}

func TestTransform_AdminScalars(t *testing.T) {
	vm := transformFixture(t)
	assertVars(t, vm, map[string]string{
		"authorizedShares":          "10000000",
		"authorizedSharesFormatted": "10,000,000",
		"parValue":                  "0.0001",
		"parValueFormatted":         "$0.0001",
		"fairMarketValue":           "0.5",
		"fairMarketValueFormatted":  "$0.5",
		"FMV":                       "0.5",
	})
}

func TestTransform_GroupExpansion(t *testing.T) {
	vm := transformFixture(t)
	assertVars(t, vm, map[string]string{
		"foundersCount":         "2",
		"hasMultipleFounders":   "true",
		"hasSingleFounders":     "false",
		"hasNoFounders":         "false",
		"foundersNameFormatted": "Jane Park and Minsu Kim",
		"foundersNameList":      "Jane Park, Minsu Kim",
		"foundersNameOrList":    "Jane Park or Minsu Kim",
		// Dual 1-indexed conventions.
		"founders1Name": "Jane Park",
		"Founder1Name":  "Jane Park",
		"founders2Name": "Minsu Kim",
		"Founder2Name":  "Minsu Kim",
		// Money fields are comma-formatted and aggregated.
		"Founder1Cash":        "50,000",
		"Founder2Cash":        "30,000",
		"foundersTotalCash":   "80,000",
		"foundersAverageCash": "40,000",
		"directorsCount":      "1",
		"hasSingleDirectors":  "true",
		"Director1Name":       "Jane Park",
	})

	records, ok := vm.Groups["founders"]
	if !ok {
		t.Fatal("founders group records missing")
	}
	if len(records) != 2 {
		t.Fatalf("founders records = %d, want 2", len(records))
	}
	first := records[0]
	if first.Index != 1 || !first.IsFirst || first.IsLast {
		t.Errorf("first record flags wrong: %+v", first)
	}
	if first.Fields["name"] != "Jane Park" || first.Fields["cash"] != "50,000" {
		t.Errorf("first record fields wrong: %v", first.Fields)
	}
}

func TestTransform_DirectMappings(t *testing.T) {
	vm := transformFixture(t)
	assertVars(t, vm, map[string]string{
		"companyName":          "Acme Robotics, Inc.",
		"companyNameUpper":     "ACME ROBOTICS, INC.",
		"companyEmail":         "legal@acmerobotics.com",
		"companyPhone":         "010-1234-5678",
		"stateOfIncorporation": "Delaware",
		"purposes":             "robotics manufacturing, software development, and consulting",
		"purposesCount":        "3",
		"founderNames":         "Jane Park and Minsu Kim",
		"numberOfFounders":     "2",
		"leadFounderCash":      "$50,000",
		"registeredAgent":      "Corporate Agents, Inc.",
	})

	loop, ok := vm.Lists["purposes"]
	if !ok || len(loop) != 3 {
		t.Fatalf("purposes loop items = %v", loop)
	}
	if loop[0].Value != "robotics manufacturing" || !loop[0].IsFirst || loop[2].Value != "consulting" || !loop[2].IsLast {
		t.Errorf("purposes loop items wrong: %v", loop)
	}
}

func TestTransform_CalculatedMapping(t *testing.T) {
	vm := transformFixture(t)
	if got := vm.Get("totalInvestment"); got != "$80,000" {
		t.Errorf("totalInvestment = %q, want $80,000", got)
	}
}

func TestTransform_ShareRatioFallback(t *testing.T) {
	vm := transformFixture(t)
	// cash / FMV: 50000 / 0.5 and 30000 / 0.5, in both naming conventions.
	assertVars(t, vm, map[string]string{
		"Founder1Shares":  "100,000",
		"founders1Shares": "100,000",
		"Founder2Shares":  "60,000",
		"founders2Shares": "60,000",
	})
}

func TestTransform_FallbackSkipsExplicitShares(t *testing.T) {
	responses := survey.Responses{
		{QuestionID: transform.QuestionFairMarketValue, Value: survey.Scalar("0.5")},
		{QuestionID: "founders", Value: survey.RecordList{
			{"name": "Jane Park", "cash": "50000", "shares": "12345"},
		}},
	}
	vm := transform.Transform(responses, nil, testkit.PinnedContext())
	if got := vm.Get("Founder1Shares"); got != "12345" {
		t.Errorf("explicit shares overridden: Founder1Shares = %q", got)
	}
}

func TestTransform_FallbackNeedsFMV(t *testing.T) {
	responses := survey.Responses{
		{QuestionID: "founders", Value: survey.RecordList{
			{"name": "Jane Park", "cash": "50000"},
		}},
	}
	vm := transform.Transform(responses, nil, testkit.PinnedContext())
	if got := vm.Get("Founder1Shares"); got != "" {
		t.Errorf("fallback fired without a fair-market value: %q", got)
	}
}

func TestTransform_Deterministic(t *testing.T) {
	a := transformFixture(t)
	b := transformFixture(t)
	if !reflect.DeepEqual(a, b) {
		t.Error("two runs over identical input and pinned context diverged")
	}
}

func TestTransform_ManualOverride(t *testing.T) {
	ctx := testkit.PinnedContext()
	ctx.ManualValues = map[string]string{"registeredAgent": "Harvard Business Services"}
	vm := transform.Transform(testkit.IncorporationResponses(), testkit.CharterMappings(), ctx)
	if got := vm.Get("registeredAgent"); got != "Harvard Business Services" {
		t.Errorf("registeredAgent = %q, want manual override", got)
	}
}

func TestComputedAggregates(t *testing.T) {
	got := transform.ComputedAggregates(testkit.IncorporationResponses())
	want := map[string]string{
		"foundersCount":         "2",
		"hasMultipleFounders":   "true",
		"hasSingleFounders":     "false",
		"hasNoFounders":         "false",
		"directorsCount":        "1",
		"hasMultipleDirectors":  "false",
		"hasSingleDirectors":    "true",
		"hasNoDirectors":        "false",
		"businessPurposesCount": "3",
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %q, want %q", k, got[k], v)
		}
	}
}
