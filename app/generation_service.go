// Package app orchestrates the domain core into end-to-end use cases.
package app

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"docuform/domain/core"
	"docuform/domain/selection"
	"docuform/domain/survey"
	"docuform/domain/transform"
	"docuform/domain/validate"
	"docuform/internal"
	"docuform/ports"
)

// GenerateRequest is one generation run's input.
type GenerateRequest struct {
	Responses survey.Responses
	Templates []selection.Template
	Transform transform.Context

	// RenderSuggested additionally renders the suggested bucket, not just
	// the required one.
	RenderSuggested bool
}

// DocumentResult is the outcome for one selected template.
type DocumentResult struct {
	Template   selection.Template
	Bucket     selection.Bucket
	Variables  *transform.VariableMap
	Validation validate.Result
	Content    []byte
	RenderErr  error
}

// GenerateResult is the full run outcome.
type GenerateResult struct {
	RunID     core.RunID
	Selection selection.Selection
	Documents []DocumentResult
}

// GenerationService wires transformation, selection, validation and rendering
// together. The core stages are pure; only rendering touches I/O.
type GenerationService struct {
	renderer ports.DocumentRenderer
	log      *internal.Logger
}

// NewGenerationService creates the service. The renderer may be nil, in which
// case documents carry variables and validation results but no content.
func NewGenerationService(renderer ports.DocumentRenderer, log *internal.Logger) *GenerationService {
	if log == nil {
		log = internal.DefaultLogger
	}
	return &GenerationService{renderer: renderer, log: log.Component("generation")}
}

// Generate runs the whole flow: classify templates, transform answers per
// selected template, validate, render. Template runs are independent and
// side-effect-free, so they fan out concurrently; results keep a stable
// order.
func (s *GenerationService) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	runID := core.NewRunID()
	computed := transform.ComputedAggregates(req.Responses)
	sel := selection.SelectTemplates(req.Responses, req.Templates, computed)

	targets := make([]DocumentResult, 0, len(sel.Required)+len(sel.Suggested))
	for _, t := range sel.Required {
		targets = append(targets, DocumentResult{Template: t, Bucket: selection.BucketRequired})
	}
	if req.RenderSuggested {
		for _, t := range sel.Suggested {
			targets = append(targets, DocumentResult{Template: t, Bucket: selection.BucketSuggested})
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := range targets {
		i := i
		g.Go(func() error {
			doc := &targets[i]
			doc.Variables = transform.Transform(req.Responses, doc.Template.Mappings, req.Transform)
			doc.Validation = validate.Variables(doc.Variables, doc.Template.Mappings)
			if !doc.Validation.IsValid {
				s.log.Warn("template %s has %d missing and %d empty required variables",
					doc.Template.ID, len(doc.Validation.Missing), len(doc.Validation.EmptyRequired))
			}
			if s.renderer == nil || doc.Template.FileRef == "" {
				return nil
			}
			content, err := s.renderer.Render(gctx, doc.Template.FileRef, doc.Variables)
			if err != nil {
				// One bad template must not abort the run; record and move on.
				doc.RenderErr = err
				s.log.Error("rendering template %s failed: %v", doc.Template.ID, err)
				return nil
			}
			doc.Content = content
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(targets, func(i, j int) bool {
		if targets[i].Bucket != targets[j].Bucket {
			return targets[i].Bucket == selection.BucketRequired
		}
		return targets[i].Template.DisplayName < targets[j].Template.DisplayName
	})

	s.log.Info("run %s: %d required, %d suggested, %d optional templates",
		runID, len(sel.Required), len(sel.Suggested), len(sel.Optional))

	return &GenerateResult{RunID: runID, Selection: sel, Documents: targets}, nil
}
