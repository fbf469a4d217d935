package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound         = errors.New("resource not found")
	ErrTemplateNotFound = fmt.Errorf("%w: template", ErrNotFound)
	ErrQuestionNotFound = fmt.Errorf("%w: question", ErrNotFound)
	ErrBundleNotFound   = fmt.Errorf("%w: survey bundle", ErrNotFound)

	// Configuration errors
	ErrInvalidMapping   = errors.New("invalid variable mapping")
	ErrInvalidRule      = errors.New("invalid selection rule")
	ErrDuplicateVar     = errors.New("duplicate variable name")
	ErrInvalidDataType  = errors.New("unknown mapping data type")
	ErrInvalidSourceRef = errors.New("unparseable mapping source reference")

	// Formula errors. The evaluator itself degrades to empty string; these
	// surface only from tooling that inspects formulas up front.
	ErrFormulaEmpty     = errors.New("formula is empty")
	ErrFormulaForbidden = errors.New("formula contains forbidden characters")
	ErrFormulaParse     = errors.New("formula parse failed")

	// Rendering errors
	ErrRenderFailed = errors.New("document rendering failed")
)

// Error constructors with context
func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

func NewMappingError(variableName string, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidMapping, variableName, reason)
}

func NewRuleError(templateID TemplateID, reason string) error {
	return fmt.Errorf("%w: template %s: %s", ErrInvalidRule, templateID, reason)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrInvalidMapping) ||
		errors.Is(err, ErrInvalidRule) ||
		errors.Is(err, ErrDuplicateVar) ||
		errors.Is(err, ErrInvalidDataType) ||
		errors.Is(err, ErrInvalidSourceRef)
}

func IsFormulaError(err error) bool {
	return errors.Is(err, ErrFormulaEmpty) ||
		errors.Is(err, ErrFormulaForbidden) ||
		errors.Is(err, ErrFormulaParse)
}
