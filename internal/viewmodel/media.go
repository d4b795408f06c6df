package viewmodel

import "conandweb/internal/domain"

// PlaceholderImage is shown wherever a media reference is absent or has no URL.
const PlaceholderImage = "/img/placeholder.svg"

// Image is a display-ready picture.
type Image struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// MediaURL returns the URL of m, or PlaceholderImage when m is nil or has no URL.
func MediaURL(m *domain.Media) string {
	if m == nil || m.URL == "" {
		return PlaceholderImage
	}
	return m.URL
}

// MediaAlt returns the alt text of m, or "" when m is nil.
func MediaAlt(m *domain.Media) string {
	if m == nil {
		return ""
	}
	return m.Alt
}

// ReferenceURL resolves a media relation. A bare identifier cannot be displayed and
// resolves to PlaceholderImage like an absent reference.
func ReferenceURL(r domain.Relation[domain.Media]) string {
	return MediaURL(r.Value)
}

// NewImage returns the display image for m, using fallbackAlt when m has no alt text.
func NewImage(m *domain.Media, fallbackAlt string) Image {
	alt := MediaAlt(m)
	if alt == "" {
		alt = fallbackAlt
	}
	return Image{URL: MediaURL(m), Alt: alt}
}
