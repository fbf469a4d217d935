// Package testkit builds the canonical incorporation-survey fixture used by
// package tests and the CLI seed command.
package testkit

import (
	"math/rand"
	"time"

	"docuform/domain/core"
	"docuform/domain/mapping"
	"docuform/domain/selection"
	"docuform/domain/survey"
	"docuform/domain/transform"
	"docuform/ports"
)

// FixedTime is the pinned clock instant fixtures run against.
var FixedTime = time.Date(2026, time.January, 31, 10, 30, 0, 0, time.UTC)

// PinnedContext returns a fully deterministic transform context.
func PinnedContext() transform.Context {
	return transform.Context{
		Clock:          core.FixedClock{At: FixedTime},
		Rand:           rand.New(rand.NewSource(7)),
		DocumentNumber: "INC-20260131-TEST01",
		DocumentPrefix: "INC",
	}
}

// IncorporationResponses is a realistic answer snapshot: a Delaware-style
// C-corp with two founders and admin-supplied share structure.
func IncorporationResponses() survey.Responses {
	return survey.Responses{
		{QuestionID: "companyName", Value: survey.Scalar("Acme Robotics, Inc.")},
		{QuestionID: "companyEmail", Value: survey.Scalar("  Legal@AcmeRobotics.COM ")},
		{QuestionID: "companyPhone", Value: survey.Scalar("010-1234-5678")},
		{QuestionID: "incorporationState", Value: survey.Scalar("Delaware")},
		{QuestionID: "entityType", Value: survey.Scalar("corporation")},
		{QuestionID: "businessPurposes", Value: survey.ScalarList{
			"robotics manufacturing", "software development", "consulting",
		}},
		{QuestionID: "founders", Value: survey.RecordList{
			{"name": "Jane Park", "email": "jane@acmerobotics.com", "address": "100 Main St, Wilmington, DE", "cash": "50000"},
			{"name": "Minsu Kim", "email": "minsu@acmerobotics.com", "address": "22 Pine Ave, Seoul", "cash": "30000"},
		}},
		{QuestionID: "directors", Value: survey.RecordList{
			{"name": "Jane Park", "email": "jane@acmerobotics.com"},
		}},
		{QuestionID: transform.QuestionAuthorizedShares, Value: survey.Scalar("10000000")},
		{QuestionID: transform.QuestionParValue, Value: survey.Scalar("0.0001")},
		{QuestionID: transform.QuestionFairMarketValue, Value: survey.Scalar("0.5")},
		{QuestionID: transform.QuestionCertificateDate, Value: survey.Scalar("2026-01-15")},
	}
}

// CharterMappings is the variable-mapping configuration of the certificate of
// incorporation template.
func CharterMappings() []mapping.VariableMapping {
	return []mapping.VariableMapping{
		{Name: "companyName", Source: mapping.ParseSource("companyName"), DataType: mapping.TypeText, TransformRule: "trim", Required: true},
		{Name: "companyNameUpper", Source: mapping.ParseSource("companyName"), DataType: mapping.TypeText, TransformRule: "uppercase"},
		{Name: "companyEmail", Source: mapping.ParseSource("companyEmail"), DataType: mapping.TypeEmail, Required: true},
		{Name: "companyPhone", Source: mapping.ParseSource("companyPhone"), DataType: mapping.TypePhone, TransformRule: "dashed"},
		{Name: "stateOfIncorporation", Source: mapping.ParseSource("incorporationState"), DataType: mapping.TypeText, Required: true},
		{Name: "purposes", Source: mapping.ParseSource("businessPurposes"), DataType: mapping.TypeList, TransformRule: "and"},
		{Name: "founderNames", Source: mapping.ParseSource("founders.name"), DataType: mapping.TypeText, Required: true},
		{Name: "numberOfFounders", Source: mapping.ParseSource("foundersCount"), DataType: mapping.TypeNumber},
		{Name: "leadFounderCash", Source: mapping.ParseSource("founder.1.cash"), DataType: mapping.TypeCurrency, TransformRule: "dollar"},
		{Name: "registeredAgent", Source: mapping.ParseSource("manual"), DataType: mapping.TypeText, DefaultValue: "Corporate Agents, Inc.", Required: true},
		{Name: "totalInvestment", Source: mapping.ParseSource("calculated"), DataType: mapping.TypeCurrency, TransformRule: "dollar",
			Formula: "{Founder1Cash} + {Founder2Cash}"},
	}
}

// IncorporationTemplates is a small template catalog exercising every
// classification path: always-included, rule-matched, manual-only, inactive.
func IncorporationTemplates() []selection.Template {
	return []selection.Template{
		{
			ID:          "tpl-charter",
			DisplayName: "Certificate of Incorporation",
			Active:      true,
			Rules:       []selection.Rule{{AlwaysInclude: true}},
			Mappings:    CharterMappings(),
		},
		{
			ID:          "tpl-bylaws",
			DisplayName: "Bylaws",
			Active:      true,
			Rules: []selection.Rule{{
				Conditions: []selection.Condition{{
					QuestionID: "entityType", Operator: selection.OpEqual, Value: "corporation",
				}},
			}},
			Mappings: []mapping.VariableMapping{
				{Name: "companyName", Source: mapping.ParseSource("companyName"), DataType: mapping.TypeText, Required: true},
			},
		},
		{
			ID:          "tpl-founder-agreement",
			DisplayName: "Founder Agreement",
			Active:      true,
			Rules: []selection.Rule{{
				Conditions: []selection.Condition{{
					QuestionID: "hasMultipleFounders", Operator: selection.OpEqual, Value: "true",
					SourceType: selection.LeftComputed,
				}},
			}},
		},
		{
			ID:          "tpl-dba",
			DisplayName: "DBA Registration",
			Active:      true,
			Rules:       []selection.Rule{{ManualOnly: true}},
		},
		{
			ID:          "tpl-legacy",
			DisplayName: "Legacy Stock Ledger",
			Active:      false,
		},
	}
}

// Bundle assembles the full fixture bundle.
func Bundle() *ports.Bundle {
	return &ports.Bundle{
		Name:      "incorporation-fixture",
		Responses: IncorporationResponses(),
		Templates: IncorporationTemplates(),
	}
}
