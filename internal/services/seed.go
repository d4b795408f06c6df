package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"conandweb/internal/domain"
)

// DecodeContentDocument reads a YAML content document. Unknown keys are rejected so a
// misspelled section is not silently skipped.
func DecodeContentDocument(r io.Reader) (*domain.ContentDocument, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc domain.ContentDocument
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", domain.ErrInvalidInput)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return &doc, nil
}

type seedService struct {
	importer domain.ContentImporter
	purger   domain.CachePurger
}

// NewSeedService returns a ContentSeeder that validates documents before importing them
// and purges the content cache after a successful import.
func NewSeedService(importer domain.ContentImporter, purger domain.CachePurger) domain.ContentSeeder {
	return &seedService{importer: importer, purger: purger}
}

func (s *seedService) Seed(ctx context.Context, doc *domain.ContentDocument, reset bool) (*domain.ImportStats, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: empty document", domain.ErrInvalidInput)
	}
	if errs := doc.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(errs, "; "))
	}
	stats, err := s.importer.Import(ctx, doc, reset)
	if err != nil {
		return nil, fmt.Errorf("import content: %w", err)
	}
	if s.purger != nil {
		if err := s.purger.Purge(ctx); err != nil {
			return stats, fmt.Errorf("purge cache: %w", err)
		}
	}
	return stats, nil
}
