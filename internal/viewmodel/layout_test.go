package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conandweb/internal/domain"
)

func TestBuildLayout(t *testing.T) {
	tr := testTranslator(t, domain.LocaleEnglish)
	in := LayoutInput{
		SiteName: "CONAND",
		Settings: &domain.SiteSettings{
			SiteName: "CONAND 2025",
			Social:   domain.SocialLinks{LinkedIn: "https://linkedin.example", Twitch: "https://twitch.example"},
		},
		Events:         []*domain.Event{{Name: "DevFest", Year: "2025", Slug: "devfest"}, nil},
		GlobalSponsors: []*domain.Sponsor{sponsor("acme", domain.TierGold)},
		CanonicalPath:  "/about",
	}

	layout := BuildLayout(in, tr, testLinks())

	assert.Equal(t, domain.LocaleEnglish, layout.Locale)
	assert.Equal(t, "CONAND 2025", layout.SiteName)
	assert.Equal(t, []NavLink{
		{Label: "Home", Path: "/en"},
		{Label: "About us", Path: "/en/about"},
		{Label: "Gallery", Path: "/en/gallery"},
		{Label: "Contact", Path: "/en/about#contact"},
	}, layout.Nav)
	assert.Equal(t, []NavLink{{Label: "DevFest", Path: "/en/ev/2025/devfest"}}, layout.Events)

	require.Len(t, layout.Languages, 4)
	assert.Equal(t, LanguageLink{Locale: domain.LocaleCatalan, Label: "CA", Path: "/about"}, layout.Languages[0])
	assert.Equal(t, LanguageLink{Locale: domain.LocaleEnglish, Label: "EN", Path: "/en/about", Active: true}, layout.Languages[2])

	assert.Equal(t, []SocialLink{
		{Label: "LinkedIn", URL: "https://linkedin.example"},
		{Label: "Twitch", URL: "https://twitch.example"},
	}, layout.Footer.Social)
	require.Len(t, layout.Footer.Sponsors, 1)
	assert.Equal(t, "Gold", layout.Footer.Sponsors[0].Label)
}

func TestBuildLayout_withoutContent(t *testing.T) {
	layout := BuildLayout(LayoutInput{SiteName: "CONAND"}, testTranslator(t, domain.LocaleCatalan), testLinks())

	assert.Equal(t, "CONAND", layout.SiteName)
	assert.Equal(t, "/", layout.Nav[0].Path)
	assert.Empty(t, layout.Events)
	assert.Empty(t, layout.Footer.Social)
	assert.Empty(t, layout.Footer.Sponsors)
	assert.Equal(t, "/", layout.Languages[0].Path)
	assert.Equal(t, "/es", layout.Languages[1].Path)
}
