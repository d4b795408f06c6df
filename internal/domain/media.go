package domain

import "context"

// Media is an uploaded asset referenced by events, speakers, sponsors and site settings.
// swagger:model Media
type Media struct {
	ID  string `json:"id" yaml:"id"`
	URL string `json:"url" yaml:"url"`
	Alt string `json:"alt" yaml:"alt"`
}

// MediaRepository resolves bare media identifiers into expanded media documents.
type MediaRepository interface {
	// GetByIDs returns the media found for ids keyed by ID. Missing ids are simply absent.
	GetByIDs(ctx context.Context, ids []string) (map[string]*Media, error)
}
