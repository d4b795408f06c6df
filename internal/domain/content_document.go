package domain

import (
	"context"
	"fmt"
	"regexp"
	"time"
)

// clockRegex matches the fixed-width "HH:MM" session time format.
var clockRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// LocalizedText holds one string per locale.
type LocalizedText map[Locale]string

// LocalizedRichText holds one rich-text document per locale.
type LocalizedRichText map[Locale]RichText

// ContentDocument is a full content import: every collection plus the per-locale singletons.
// Documents reference each other by Key or inline.
type ContentDocument struct {
	Media        []MediaDocument                 `yaml:"media"`
	Speakers     []SpeakerDocument               `yaml:"speakers"`
	Sponsors     []SponsorDocument               `yaml:"sponsors"`
	Events       []EventDocument                 `yaml:"events"`
	SiteSettings map[Locale]SiteSettingsDocument `yaml:"siteSettings"`
	Translations map[Locale]Translations         `yaml:"translations"`
}

// MediaDocument is an importable media item.
type MediaDocument struct {
	Key string `yaml:"key"`
	URL string `yaml:"url"`
	Alt string `yaml:"alt"`
}

// SpeakerDocument is an importable speaker.
type SpeakerDocument struct {
	Key   string                  `yaml:"key"`
	Name  string                  `yaml:"name"`
	Title string                  `yaml:"title"`
	Photo Relation[MediaDocument] `yaml:"photo"`
	Bio   LocalizedRichText       `yaml:"bio"`
}

// SponsorDocument is an importable sponsor.
type SponsorDocument struct {
	Key      string                  `yaml:"key"`
	Name     string                  `yaml:"name"`
	Logo     Relation[MediaDocument] `yaml:"logo"`
	URL      string                  `yaml:"url"`
	Tier     Tier                    `yaml:"tier"`
	IsGlobal bool                    `yaml:"isGlobal"`
}

// EventDocument is an importable event with its embedded schedule.
type EventDocument struct {
	Name          string                      `yaml:"name"`
	Slug          string                      `yaml:"slug"`
	Year          string                      `yaml:"year"`
	Date          time.Time                   `yaml:"date"`
	Status        EventStatus                 `yaml:"status"`
	FeaturedImage Relation[MediaDocument]     `yaml:"featuredImage"`
	Description   LocalizedRichText           `yaml:"description"`
	Actions       ActionButtons               `yaml:"actionButtons"`
	Speakers      []Relation[SpeakerDocument] `yaml:"speakers"`
	Sponsors      []EventSponsorDocument      `yaml:"eventSponsors"`
	Schedule      ScheduleDocument            `yaml:"schedule"`
}

// EventSponsorDocument links a sponsor to an event with an optional tier override.
type EventSponsorDocument struct {
	Sponsor      Relation[SponsorDocument] `yaml:"sponsor"`
	TierOverride Tier                      `yaml:"tierOverride"`
}

// ScheduleDocument is the importable schedule of one event.
type ScheduleDocument struct {
	Days     []time.Time       `yaml:"days"`
	Tracks   []string          `yaml:"tracks"`
	Sessions []SessionDocument `yaml:"sessions"`
}

// SessionDocument is one importable schedule slot.
type SessionDocument struct {
	Title       LocalizedText             `yaml:"title"`
	Description LocalizedText             `yaml:"description"`
	Speaker     Relation[SpeakerDocument] `yaml:"speaker"`
	DayIndex    int                       `yaml:"dayIndex"`
	TrackIndex  int                       `yaml:"trackIndex"`
	StartTime   string                    `yaml:"startTime"`
	EndTime     string                    `yaml:"endTime"`
}

// Validate implements the validator contract used across the code base: it returns one
// message per problem found, nil when the document can be imported.
func (d *ContentDocument) Validate() []string {
	var errs []string
	for i, sp := range d.Sponsors {
		if sp.Name == "" {
			errs = append(errs, fmt.Sprintf("sponsors[%d]: name is required", i))
		}
		if !sp.Tier.IsValid() {
			errs = append(errs, fmt.Sprintf("sponsors[%d]: invalid tier %q", i, sp.Tier))
		}
		if sp.Logo.IsZero() {
			errs = append(errs, fmt.Sprintf("sponsors[%d]: logo is required", i))
		}
	}
	for i, s := range d.Speakers {
		if s.Name == "" || s.Title == "" {
			errs = append(errs, fmt.Sprintf("speakers[%d]: name and title are required", i))
		}
	}
	seen := make(map[string]struct{}, len(d.Events))
	for i, e := range d.Events {
		errs = append(errs, e.validate(fmt.Sprintf("events[%d]", i))...)
		key := e.Year + "/" + e.Slug
		if _, dup := seen[key]; dup {
			errs = append(errs, fmt.Sprintf("events[%d]: duplicate year/slug %s", i, key))
		}
		seen[key] = struct{}{}
	}
	for loc := range d.SiteSettings {
		if !loc.IsSupported() {
			errs = append(errs, fmt.Sprintf("siteSettings: unsupported locale %q", loc))
		}
	}
	for loc := range d.Translations {
		if !loc.IsSupported() {
			errs = append(errs, fmt.Sprintf("translations: unsupported locale %q", loc))
		}
	}
	return errs
}

func (e *EventDocument) validate(path string) []string {
	var errs []string
	if e.Name == "" || e.Slug == "" || e.Year == "" {
		errs = append(errs, path+": name, slug and year are required")
	}
	if e.Date.IsZero() {
		errs = append(errs, path+": date is required")
	}
	if e.Status != EventStatusUpcoming && e.Status != EventStatusPast {
		errs = append(errs, fmt.Sprintf("%s: invalid status %q", path, e.Status))
	}
	for j, es := range e.Sponsors {
		if es.Sponsor.IsZero() {
			errs = append(errs, fmt.Sprintf("%s.eventSponsors[%d]: sponsor is required", path, j))
		}
		if es.TierOverride != "" && !es.TierOverride.IsValid() {
			errs = append(errs, fmt.Sprintf("%s.eventSponsors[%d]: invalid tier override %q", path, j, es.TierOverride))
		}
	}
	for j, s := range e.Schedule.Sessions {
		sp := fmt.Sprintf("%s.schedule.sessions[%d]", path, j)
		if s.DayIndex < 0 || s.DayIndex >= max(len(e.Schedule.Days), 1) {
			errs = append(errs, fmt.Sprintf("%s: dayIndex %d out of range", sp, s.DayIndex))
		}
		if s.TrackIndex < 0 || s.TrackIndex >= len(e.Schedule.Tracks) {
			errs = append(errs, fmt.Sprintf("%s: trackIndex %d out of range", sp, s.TrackIndex))
		}
		if !clockRegex.MatchString(s.StartTime) || !clockRegex.MatchString(s.EndTime) {
			errs = append(errs, sp+": startTime and endTime must use HH:MM")
		}
	}
	return errs
}

// ImportStats counts what an import wrote.
type ImportStats struct {
	Media        int
	Speakers     int
	Sponsors     int
	Events       int
	Sessions     int
	SiteSettings int
	Translations int
}

// ContentImporter writes a content document to storage in a single transaction.
// When reset is true, existing content is removed first.
type ContentImporter interface {
	Import(ctx context.Context, doc *ContentDocument, reset bool) (*ImportStats, error)
}

// ContentSeeder validates and imports content documents.
type ContentSeeder interface {
	Seed(ctx context.Context, doc *ContentDocument, reset bool) (*ImportStats, error)
}
