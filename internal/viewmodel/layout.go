package viewmodel

import (
	"strings"

	"conandweb/internal/domain"
	"conandweb/internal/locale"
)

// NavLink is a localized navigation entry.
type NavLink struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// LanguageLink is one entry of the language switcher.
type LanguageLink struct {
	Locale domain.Locale `json:"locale"`
	Label  string        `json:"label"`
	Path   string        `json:"path"`
	Active bool          `json:"active"`
}

// SocialLink is a footer social profile link.
type SocialLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Footer is the site-wide footer.
type Footer struct {
	Links         []NavLink        `json:"links"`
	FollowUs      string           `json:"follow_us"`
	Social        []SocialLink     `json:"social"`
	SponsorsTitle string           `json:"sponsors_title"`
	Sponsors      []SponsorSection `json:"sponsors"`
}

// Layout is the chrome shared by every page: header navigation, language switcher and footer.
type Layout struct {
	Locale          domain.Locale  `json:"locale"`
	SiteName        string         `json:"site_name"`
	SiteDescription string         `json:"site_description,omitempty"`
	Nav             []NavLink      `json:"nav"`
	EventsLabel     string         `json:"events_label"`
	Events          []NavLink      `json:"events"`
	Languages       []LanguageLink `json:"languages"`
	Footer          Footer         `json:"footer"`
}

// LayoutInput is the content the layout is built from. Settings may be nil.
type LayoutInput struct {
	SiteName       string
	Settings       *domain.SiteSettings
	Events         []*domain.Event
	GlobalSponsors []*domain.Sponsor
	CanonicalPath  string
}

// BuildLayout assembles the shared page chrome.
func BuildLayout(in LayoutInput, tr Translator, links Linker) Layout {
	l := tr.Locale()
	path := func(canonical string) string { return links.Prefix(l, canonical) }

	layout := Layout{
		Locale:   l,
		SiteName: in.SiteName,
		Nav: []NavLink{
			{Label: tr.T("nav.home"), Path: path("/")},
			{Label: tr.T("nav.about"), Path: path("/about")},
			{Label: tr.T("nav.gallery"), Path: path("/gallery")},
			{Label: tr.T("nav.contact"), Path: path("/about") + "#contact"},
		},
		EventsLabel: tr.T("nav.events"),
		Events:      make([]NavLink, 0, len(in.Events)),
		Languages:   languageLinks(links.Alternates(canonicalOrRoot(in.CanonicalPath)), l),
	}
	if in.Settings != nil {
		if in.Settings.SiteName != "" {
			layout.SiteName = in.Settings.SiteName
		}
		layout.SiteDescription = in.Settings.SiteDescription
	}
	for _, e := range in.Events {
		if e == nil {
			continue
		}
		layout.Events = append(layout.Events, NavLink{Label: e.Name, Path: path(EventPath(e.Year, e.Slug))})
	}

	layout.Footer = Footer{
		Links: []NavLink{
			{Label: tr.T("nav.home"), Path: path("/")},
			{Label: tr.T("nav.gallery"), Path: path("/gallery")},
			{Label: tr.T("nav.about"), Path: path("/about")},
			{Label: tr.T("nav.contact"), Path: path("/about") + "#contact"},
		},
		FollowUs:      tr.T("home.followUs"),
		Social:        socialLinks(in.Settings),
		SponsorsTitle: tr.T("home.sponsorsTitle"),
		Sponsors:      SponsorSections(in.GlobalSponsors, TierLabels(in.Settings, tr)),
	}
	return layout
}

func canonicalOrRoot(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

func languageLinks(alternates []locale.Alternate, active domain.Locale) []LanguageLink {
	out := make([]LanguageLink, 0, len(alternates))
	for _, a := range alternates {
		out = append(out, LanguageLink{
			Locale: a.Locale,
			Label:  strings.ToUpper(string(a.Locale)),
			Path:   a.Path,
			Active: a.Locale == active,
		})
	}
	return out
}

func socialLinks(s *domain.SiteSettings) []SocialLink {
	links := []SocialLink{}
	if s == nil {
		return links
	}
	for _, l := range []SocialLink{
		{Label: "LinkedIn", URL: s.Social.LinkedIn},
		{Label: "X / Twitter", URL: s.Social.Twitter},
		{Label: "YouTube", URL: s.Social.YouTube},
		{Label: "Twitch", URL: s.Social.Twitch},
	} {
		if l.URL != "" {
			links = append(links, l)
		}
	}
	return links
}
