package domain

import (
	"context"
	"time"
)

// EventStatus tells whether an event is still to come.
type EventStatus string

const (
	EventStatusUpcoming EventStatus = "upcoming"
	EventStatusPast     EventStatus = "past"
)

// Event represents a conference event, identified by (Year, Slug).
// swagger:model Event
type Event struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Slug          string         `json:"slug"`
	Year          string         `json:"year"`
	Date          time.Time      `json:"date"`
	Status        EventStatus    `json:"status"`
	FeaturedImage *Media         `json:"featured_image,omitempty"`
	Description   RichText       `json:"description"`
	Actions       ActionButtons  `json:"actions"`
	Speakers      []*Speaker     `json:"speakers"`
	Sponsors      []EventSponsor `json:"sponsors"`
	Schedule      Schedule       `json:"schedule"`
}

// IsUpcoming reports whether the event has status upcoming.
func (e *Event) IsUpcoming() bool {
	return e.Status == EventStatusUpcoming
}

// ActionButtons holds the independently enabled call-for-papers and ticket links.
type ActionButtons struct {
	CallForPapersEnabled bool   `json:"call_for_papers_enabled" yaml:"callForPapersEnabled"`
	CallForPapersURL     string `json:"call_for_papers_url,omitempty" yaml:"callForPapersUrl"`
	TicketsEnabled       bool   `json:"tickets_enabled" yaml:"ticketsEnabled"`
	TicketsURL           string `json:"tickets_url,omitempty" yaml:"ticketsUrl"`
}

// EventSponsor associates a sponsor with an event. A non-empty TierOverride replaces the
// sponsor's own tier for this event only.
type EventSponsor struct {
	Sponsor      *Sponsor `json:"sponsor"`
	TierOverride Tier     `json:"tier_override,omitempty"`
}

// Schedule is the embedded programme of an event.
type Schedule struct {
	Days     []ScheduleDay   `json:"days"`
	Tracks   []ScheduleTrack `json:"tracks"`
	Sessions []Session       `json:"sessions"`
}

// IsEmpty reports whether the schedule has no sessions.
func (s Schedule) IsEmpty() bool {
	return len(s.Sessions) == 0
}

// ScheduleDay is one day of the schedule.
type ScheduleDay struct {
	Date time.Time `json:"date"`
}

// ScheduleTrack is one parallel track of the schedule.
type ScheduleTrack struct {
	Name string `json:"name"`
}

// Session is a talk or slot. DayIndex and TrackIndex are 0-based positions in the
// schedule's Days and Tracks. StartTime and EndTime use the fixed-width "HH:MM" format.
type Session struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Speaker     *Speaker `json:"speaker,omitempty"`
	DayIndex    int      `json:"day_index"`
	TrackIndex  int      `json:"track_index"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
}

// EventSort selects the date ordering of an event listing.
type EventSort int

const (
	SortDateAsc EventSort = iota
	SortDateDesc
)

// EventFilter selects, orders and localizes an event listing. Depth 0 loads the event row
// with its featured image; Depth 1 or more also expands speakers, sponsors and schedule.
type EventFilter struct {
	Status EventStatus
	Sort   EventSort
	Limit  int
	Locale Locale
	Depth  int
}

// EventRepository defines read access to events.
type EventRepository interface {
	List(ctx context.Context, filter EventFilter) ([]*Event, error)
	GetByYearAndSlug(ctx context.Context, year, slug string, locale Locale) (*Event, error)
}
