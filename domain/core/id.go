package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier. UUID v7 gives time-ordered, sortable
// IDs; falls back to v4 when v7 generation is unavailable.
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	// QuestionID identifies one survey question (the key a response is stored under).
	QuestionID string
	// TemplateID identifies one document template.
	TemplateID ID
	// RunID identifies one generation run.
	RunID ID
)

func (id QuestionID) String() string { return string(id) }
func (id TemplateID) String() string { return ID(id).String() }
func (id RunID) String() string      { return ID(id).String() }

// ParseQuestionID parses a string into QuestionID
func ParseQuestionID(s string) (QuestionID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("question ID cannot be empty")
	}
	return QuestionID(s), nil
}

// ParseTemplateID parses a string into TemplateID
func ParseTemplateID(s string) (TemplateID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("template ID cannot be empty")
	}
	return TemplateID(s), nil
}
