// Package store loads survey bundles from JSON files, the fixture-friendly
// stand-in for whatever persistence a deployment wires in.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"docuform/domain/mapping"
	"docuform/internal/errors"
	"docuform/ports"
)

// FileStore reads ports.Bundle JSON documents from disk.
type FileStore struct{}

// NewFileStore creates a file-backed bundle store.
func NewFileStore() *FileStore {
	return &FileStore{}
}

// Load reads and validates one bundle file.
func (s *FileStore) Load(_ context.Context, ref string) (*ports.Bundle, error) {
	data, err := os.ReadFile(ref)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read bundle %s", ref)
	}
	var bundle ports.Bundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return nil, errors.WithCode(errors.CodeBundleInvalid, errors.Wrapf(err, "failed to parse bundle %s", ref))
	}
	if err := validateBundle(&bundle); err != nil {
		return nil, errors.WithCode(errors.CodeBundleInvalid, err)
	}
	return &bundle, nil
}

// Save writes a bundle back out, used by the seed command.
func (s *FileStore) Save(_ context.Context, ref string, bundle *ports.Bundle) error {
	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode bundle")
	}
	if err := os.WriteFile(ref, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write bundle %s", ref)
	}
	return nil
}

func validateBundle(b *ports.Bundle) error {
	for _, t := range b.Templates {
		if t.ID == "" {
			return fmt.Errorf("template %q has no id", t.DisplayName)
		}
		if err := mapping.ValidateUnique(t.Mappings); err != nil {
			return fmt.Errorf("template %s: %w", t.ID, err)
		}
	}
	return nil
}
