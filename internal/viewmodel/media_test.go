package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"conandweb/internal/domain"
)

func TestMediaURL(t *testing.T) {
	tests := []struct {
		name  string
		media *domain.Media
		want  string
	}{
		{"absent", nil, PlaceholderImage},
		{"empty url", &domain.Media{ID: "m1"}, PlaceholderImage},
		{"url", &domain.Media{ID: "m1", URL: "/media/a.jpg"}, "/media/a.jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MediaURL(tt.media)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, got)
		})
	}
}

func TestMediaAlt(t *testing.T) {
	assert.Equal(t, "", MediaAlt(nil))
	assert.Equal(t, "Stage", MediaAlt(&domain.Media{Alt: "Stage"}))
}

func TestReferenceURL(t *testing.T) {
	assert.Equal(t, PlaceholderImage, ReferenceURL(domain.Relation[domain.Media]{}))
	assert.Equal(t, PlaceholderImage, ReferenceURL(domain.Ref[domain.Media]("m1")))
	assert.Equal(t, "/media/a.jpg", ReferenceURL(domain.Expanded(&domain.Media{URL: "/media/a.jpg"})))
}

func TestNewImage(t *testing.T) {
	assert.Equal(t, Image{URL: PlaceholderImage, Alt: "CONAND"}, NewImage(nil, "CONAND"))
	assert.Equal(t, Image{URL: "/a.png", Alt: "Hall"}, NewImage(&domain.Media{URL: "/a.png", Alt: "Hall"}, "CONAND"))
	assert.Equal(t, Image{URL: "/a.png", Alt: "CONAND"}, NewImage(&domain.Media{URL: "/a.png"}, "CONAND"))
}
