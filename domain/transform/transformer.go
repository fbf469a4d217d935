package transform

import (
	"docuform/domain/core"
	"docuform/domain/format"
	"docuform/domain/mapping"
	"docuform/domain/survey"
)

// Well-known answer keys the admin tooling writes alongside respondent answers.
const (
	QuestionCertificateDate  core.QuestionID = "certificateDate"
	QuestionSignatureDate    core.QuestionID = "signatureDate"
	QuestionAuthorizedShares core.QuestionID = "authorizedShares"
	QuestionParValue         core.QuestionID = "parValue"
	QuestionFairMarketValue  core.QuestionID = "fairMarketValue"
)

// FMVAlias is the conventional short name downstream formulas use for the
// fair-market value.
const FMVAlias = "FMV"

// The four renderings every auto-populated date gets.
var dateRenderings = []struct {
	suffix string
	format string
}{
	{"", "MMMM D, YYYY"},
	{"Short", "MM/DD/YYYY"},
	{"ISO", "YYYY-MM-DD"},
	{"Korean", "YYYY년 MM월 DD일"},
}

// stage is one named step of the pipeline. Stages run in fixed order because
// later stages read variables written by earlier ones.
type stage struct {
	name string
	run  func(*VariableMap, survey.Responses, []mapping.VariableMapping, Context)
}

var pipeline = []stage{
	{"auto_context", stageAutoContext},
	{"admin_dates", stageAdminDates},
	{"group_expansion", stageGroupExpansion},
	{"admin_scalars", stageAdminScalars},
	{"direct_mappings", stageDirectMappings},
	{"calculated_mappings", stageCalculatedMappings},
	{"share_ratio_fallback", stageShareRatioFallback},
}

// Transform produces the complete variable map for one survey run. It never
// fails: malformed or missing input degrades to empty-string variables.
func Transform(responses survey.Responses, mappings []mapping.VariableMapping, ctx Context) *VariableMap {
	vm := NewVariableMap()
	for _, s := range pipeline {
		s.run(vm, responses, mappings, ctx)
	}
	return vm
}

// stageAutoContext writes the current date/time renderings and the document
// number. All of it flows from the injected clock and randomness.
func stageAutoContext(vm *VariableMap, _ survey.Responses, _ []mapping.VariableMapping, ctx Context) {
	now := ctx.now()
	for _, r := range dateRenderings {
		vm.Set("currentDate"+r.suffix, format.FormatTime(now, r.format))
	}
	vm.Set("currentTime", now.Format("15:04"))
	vm.Set("currentYear", now.Format("2006"))

	docNumber := ctx.DocumentNumber
	if docNumber == "" {
		docNumber = core.NewDocumentNumber(ctx.DocumentPrefix, now, ctx.rng(), !ctx.OmitDocumentDate)
	}
	vm.Set("documentNumber", docNumber)
}

// stageAdminDates guarantees the certificate and signature dates are always
// populated, in four renderings each, defaulting to today. Downstream
// templates must never see these keys missing.
func stageAdminDates(vm *VariableMap, responses survey.Responses, _ []mapping.VariableMapping, ctx Context) {
	for _, qid := range []core.QuestionID{QuestionCertificateDate, QuestionSignatureDate} {
		at := ctx.now()
		if raw := responses.Scalar(qid); raw != "" {
			if t, ok := format.ParseDate(raw); ok {
				at = t
			}
		}
		for _, r := range dateRenderings {
			vm.Set(qid.String()+r.suffix, format.FormatTime(at, r.format))
		}
	}
}

// stageAdminScalars populates the share-structure constants the admin supplies
// outside the survey proper, each with a formatted variant, plus the FMV
// alias formulas depend on.
func stageAdminScalars(vm *VariableMap, responses survey.Responses, _ []mapping.VariableMapping, _ Context) {
	if raw := responses.Scalar(QuestionAuthorizedShares); raw != "" {
		vm.Set("authorizedShares", raw)
		vm.Set("authorizedSharesFormatted", format.FormatNumberWithComma(raw))
	}
	if raw := responses.Scalar(QuestionParValue); raw != "" {
		vm.Set("parValue", raw)
		vm.Set("parValueFormatted", format.ApplyTransformRule(raw, mapping.TypeCurrency, "dollar"))
	}
	if raw := responses.Scalar(QuestionFairMarketValue); raw != "" {
		vm.Set("fairMarketValue", raw)
		vm.Set("fairMarketValueFormatted", format.ApplyTransformRule(raw, mapping.TypeCurrency, "dollar"))
		vm.Set(FMVAlias, raw)
	}
}
