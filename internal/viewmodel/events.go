package viewmodel

import (
	"fmt"
	"time"

	"conandweb/internal/domain"
	"conandweb/internal/i18n"
)

// NextEvent returns the earliest-dated upcoming event, or nil when there is none.
// On equal dates the first in input order wins.
func NextEvent(events []*domain.Event) *domain.Event {
	var next *domain.Event
	for _, e := range events {
		if e == nil || !e.IsUpcoming() {
			continue
		}
		if next == nil || e.Date.Before(next.Date) {
			next = e
		}
	}
	return next
}

// EventPath is the canonical path of an event detail page.
func EventPath(year, slug string) string {
	return fmt.Sprintf("/ev/%s/%s", year, slug)
}

// ActionButtons returns the call-for-papers and tickets buttons of an upcoming event.
// A button is included only when it is enabled and has a URL.
func ActionButtons(e *domain.Event, tr Translator) []Button {
	buttons := []Button{}
	if e == nil || !e.IsUpcoming() {
		return buttons
	}
	if e.Actions.CallForPapersEnabled && e.Actions.CallForPapersURL != "" {
		buttons = append(buttons, Button{Text: tr.T("buttons.callForPapers"), URL: e.Actions.CallForPapersURL})
	}
	if e.Actions.TicketsEnabled && e.Actions.TicketsURL != "" {
		buttons = append(buttons, Button{Text: tr.T("buttons.tickets"), URL: e.Actions.TicketsURL})
	}
	return buttons
}

// StatusLabel returns the localized badge for the event's status.
func StatusLabel(e *domain.Event, tr Translator) string {
	if e.IsUpcoming() {
		return tr.T("event.upcomingEvent")
	}
	return tr.T("event.pastEvent")
}

// EventCard is a listing tile for an event.
type EventCard struct {
	Name          string    `json:"name"`
	Year          string    `json:"year"`
	Slug          string    `json:"slug"`
	Path          string    `json:"path"`
	Upcoming      bool      `json:"upcoming"`
	StatusLabel   string    `json:"status_label"`
	Date          time.Time `json:"date"`
	DateFormatted string    `json:"date_formatted"`
	Image         Image     `json:"image"`
	Description   string    `json:"description,omitempty"`
	Buttons       []Button  `json:"buttons"`
	LearnMore     Button    `json:"learn_more"`
}

// NewEventCard builds the card for e.
func NewEventCard(e *domain.Event, tr Translator, links Linker) EventCard {
	path := links.Prefix(tr.Locale(), EventPath(e.Year, e.Slug))
	return EventCard{
		Name:          e.Name,
		Year:          e.Year,
		Slug:          e.Slug,
		Path:          path,
		Upcoming:      e.IsUpcoming(),
		StatusLabel:   StatusLabel(e, tr),
		Date:          e.Date,
		DateFormatted: tr.FormatDate(e.Date, i18n.DateShort),
		Image:         NewImage(e.FeaturedImage, e.Name),
		Description:   PlainText(e.Description, InlineSeparator),
		Buttons:       ActionButtons(e, tr),
		LearnMore:     Button{Text: tr.T("buttons.learnMore"), URL: path},
	}
}

// EventCards builds the cards for events in order.
func EventCards(events []*domain.Event, tr Translator, links Linker) []EventCard {
	cards := make([]EventCard, 0, len(events))
	for _, e := range events {
		if e != nil {
			cards = append(cards, NewEventCard(e, tr, links))
		}
	}
	return cards
}

// SpeakerCard is a speaker tile with its one-line biography.
type SpeakerCard struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Photo Image  `json:"photo"`
	Bio   string `json:"bio,omitempty"`
}

// SpeakerCards builds the cards for speakers in order, skipping nil entries.
func SpeakerCards(speakers []*domain.Speaker) []SpeakerCard {
	cards := make([]SpeakerCard, 0, len(speakers))
	for _, s := range speakers {
		if s == nil {
			continue
		}
		cards = append(cards, SpeakerCard{
			Name:  s.Name,
			Title: s.Title,
			Photo: NewImage(s.Photo, s.Name),
			Bio:   PlainText(s.Bio, InlineSeparator),
		})
	}
	return cards
}
