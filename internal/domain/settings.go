package domain

import (
	"context"
	"fmt"
	"sort"
)

// SiteSettings is the resolved site-wide configuration for one locale.
// swagger:model SiteSettings
type SiteSettings struct {
	SiteName            string          `json:"site_name"`
	SiteDescription     string          `json:"site_description,omitempty"`
	ContactEmail        string          `json:"contact_email,omitempty"`
	HeroImages          []*Media        `json:"hero_images"`
	HeroPrimaryButton   Link            `json:"hero_primary_button"`
	HeroSecondaryButton Link            `json:"hero_secondary_button"`
	AboutText           RichText        `json:"about_text"`
	AboutImage1         *Media          `json:"about_image_1,omitempty"`
	AboutImage2         *Media          `json:"about_image_2,omitempty"`
	Social              SocialLinks     `json:"social"`
	SponsorTierLabels   map[Tier]string `json:"sponsor_tier_labels,omitempty"`
}

// Link is a labelled URL.
type Link struct {
	Text string `json:"text,omitempty"`
	URL  string `json:"url,omitempty"`
}

// SocialLinks holds the community's social profiles.
type SocialLinks struct {
	LinkedIn string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	YouTube  string `json:"youtube,omitempty"`
	Twitch   string `json:"twitch,omitempty"`
}

// SiteSettingsDocument is the stored shape of the site settings singleton. Media fields
// may hold bare identifiers; the repository resolves them into SiteSettings.
type SiteSettingsDocument struct {
	SiteName                string            `json:"siteName,omitempty" yaml:"siteName,omitempty"`
	SiteDescription         string            `json:"siteDescription,omitempty" yaml:"siteDescription,omitempty"`
	ContactEmail            string            `json:"contactEmail,omitempty" yaml:"contactEmail,omitempty"`
	HeroImages              []Relation[Media] `json:"heroImages,omitempty" yaml:"heroImages,omitempty"`
	HeroPrimaryButtonText   string            `json:"heroPrimaryButtonText,omitempty" yaml:"heroPrimaryButtonText,omitempty"`
	HeroPrimaryButtonURL    string            `json:"heroPrimaryButtonUrl,omitempty" yaml:"heroPrimaryButtonUrl,omitempty"`
	HeroSecondaryButtonText string            `json:"heroSecondaryButtonText,omitempty" yaml:"heroSecondaryButtonText,omitempty"`
	HeroSecondaryButtonURL  string            `json:"heroSecondaryButtonUrl,omitempty" yaml:"heroSecondaryButtonUrl,omitempty"`
	AboutText               *RichText         `json:"aboutText,omitempty" yaml:"aboutText,omitempty"`
	AboutImage1             Relation[Media]   `json:"aboutImage1,omitzero" yaml:"aboutImage1,omitempty"`
	AboutImage2             Relation[Media]   `json:"aboutImage2,omitzero" yaml:"aboutImage2,omitempty"`
	LinkedInURL             string            `json:"linkedinUrl,omitempty" yaml:"linkedinUrl,omitempty"`
	TwitterURL              string            `json:"twitterUrl,omitempty" yaml:"twitterUrl,omitempty"`
	YouTubeURL              string            `json:"youtubeUrl,omitempty" yaml:"youtubeUrl,omitempty"`
	TwitchURL               string            `json:"twitchUrl,omitempty" yaml:"twitchUrl,omitempty"`
	SponsorTierLabels       map[Tier]string   `json:"sponsorTierLabels,omitempty" yaml:"sponsorTierLabels,omitempty"`
}

// MediaIDs returns the identifiers of every unexpanded media reference in the document.
func (d *SiteSettingsDocument) MediaIDs() []string {
	var ids []string
	add := func(r Relation[Media]) {
		if !r.IsExpanded() && r.ID != "" {
			ids = append(ids, r.ID)
		}
	}
	for _, r := range d.HeroImages {
		add(r)
	}
	add(d.AboutImage1)
	add(d.AboutImage2)
	return ids
}

// Resolve expands the document's media references using known. Dangling references
// are dropped from HeroImages and left nil elsewhere.
func (d *SiteSettingsDocument) Resolve(known map[string]*Media) *SiteSettings {
	s := &SiteSettings{
		SiteName:            d.SiteName,
		SiteDescription:     d.SiteDescription,
		ContactEmail:        d.ContactEmail,
		HeroImages:          make([]*Media, 0, len(d.HeroImages)),
		HeroPrimaryButton:   Link{Text: d.HeroPrimaryButtonText, URL: d.HeroPrimaryButtonURL},
		HeroSecondaryButton: Link{Text: d.HeroSecondaryButtonText, URL: d.HeroSecondaryButtonURL},
		AboutImage1:         d.AboutImage1.Resolve(known),
		AboutImage2:         d.AboutImage2.Resolve(known),
		Social: SocialLinks{
			LinkedIn: d.LinkedInURL,
			Twitter:  d.TwitterURL,
			YouTube:  d.YouTubeURL,
			Twitch:   d.TwitchURL,
		},
		SponsorTierLabels: d.SponsorTierLabels,
	}
	if d.AboutText != nil {
		s.AboutText = *d.AboutText
	}
	for _, r := range d.HeroImages {
		if m := r.Resolve(known); m != nil {
			s.HeroImages = append(s.HeroImages, m)
		}
	}
	return s
}

// Translations is the nested key→string dictionary edited in the CMS for one locale.
type Translations map[string]any

// Flatten returns the dictionary with dotted keys ("nav.home"). Non-string leaves are
// formatted with fmt.
func (t Translations) Flatten() map[string]string {
	out := make(map[string]string)
	flattenInto(out, "", t)
	return out
}

func flattenInto(out map[string]string, prefix string, m map[string]any) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch v := m[k].(type) {
		case nil:
		case string:
			if v != "" {
				out[key] = v
			}
		case map[string]any:
			flattenInto(out, key, v)
		case Translations:
			flattenInto(out, key, v)
		default:
			out[key] = fmt.Sprint(v)
		}
	}
}

// Merge returns a copy of t with overlay applied key by key. Nested groups merge
// recursively; empty strings and nulls in overlay leave t's value in place.
func (t Translations) Merge(overlay Translations) Translations {
	out := make(Translations, len(t))
	for k, v := range t {
		out[k] = v
	}
	for k, v := range overlay {
		switch ov := v.(type) {
		case nil:
			continue
		case string:
			if ov == "" {
				continue
			}
		case map[string]any:
			if base, ok := asTranslations(out[k]); ok {
				out[k] = base.Merge(ov)
				continue
			}
		case Translations:
			if base, ok := asTranslations(out[k]); ok {
				out[k] = base.Merge(ov)
				continue
			}
		}
		out[k] = v
	}
	return out
}

func asTranslations(v any) (Translations, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Translations:
		return m, true
	}
	return nil, false
}

// SettingsRepository defines read access to the per-locale singletons.
type SettingsRepository interface {
	GetSiteSettings(ctx context.Context, locale Locale) (*SiteSettings, error)
	GetTranslations(ctx context.Context, locale Locale) (Translations, error)
}
