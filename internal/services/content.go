package services

import (
	"context"
	"time"

	"conandweb/internal/domain"
	"conandweb/internal/viewmodel"
)

const (
	// maxListedEvents bounds the past-events and navigation listings.
	maxListedEvents = 100
	// maxGlobalSponsors bounds the footer sponsor listing.
	maxGlobalSponsors = 100
)

// ContentService is the content repository adapter: the fixed set of locale-parameterized
// reads the pages are built from.
type ContentService struct {
	eventRepo      domain.EventRepository
	sponsorRepo    domain.SponsorRepository
	settingsRepo   domain.SettingsRepository
	contextTimeout time.Duration
}

func NewContentService(eventRepo domain.EventRepository,
	sponsorRepo domain.SponsorRepository,
	settingsRepo domain.SettingsRepository,
	timeout time.Duration,
) *ContentService {
	return &ContentService{
		eventRepo:      eventRepo,
		sponsorRepo:    sponsorRepo,
		settingsRepo:   settingsRepo,
		contextTimeout: timeout,
	}
}

// UpcomingEvents returns upcoming events, earliest first.
func (s *ContentService) UpcomingEvents(ctx context.Context, locale domain.Locale) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.eventRepo.List(ctx, domain.EventFilter{
		Status: domain.EventStatusUpcoming,
		Sort:   domain.SortDateAsc,
		Locale: locale,
	})
}

// PastEvents returns past events, most recent first.
func (s *ContentService) PastEvents(ctx context.Context, locale domain.Locale) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.eventRepo.List(ctx, domain.EventFilter{
		Status: domain.EventStatusPast,
		Sort:   domain.SortDateDesc,
		Limit:  maxListedEvents,
		Locale: locale,
	})
}

// NextEvent returns the earliest upcoming event, or nil when there is none.
func (s *ContentService) NextEvent(ctx context.Context, locale domain.Locale) (*domain.Event, error) {
	events, err := s.UpcomingEvents(ctx, locale)
	if err != nil {
		return nil, err
	}
	return viewmodel.NextEvent(events), nil
}

// AllEvents returns every event, most recent first, without relations.
func (s *ContentService) AllEvents(ctx context.Context, locale domain.Locale) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.eventRepo.List(ctx, domain.EventFilter{
		Sort:   domain.SortDateDesc,
		Limit:  maxListedEvents,
		Locale: locale,
	})
}

// EventBySlug returns the fully expanded event, or domain.ErrNotFound.
func (s *ContentService) EventBySlug(ctx context.Context, year, slug string, locale domain.Locale) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.eventRepo.GetByYearAndSlug(ctx, year, slug, locale)
}

func (s *ContentService) GlobalSponsors(ctx context.Context) ([]*domain.Sponsor, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.sponsorRepo.ListGlobal(ctx, maxGlobalSponsors)
}

func (s *ContentService) SiteSettings(ctx context.Context, locale domain.Locale) (*domain.SiteSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.settingsRepo.GetSiteSettings(ctx, locale)
}

func (s *ContentService) Translations(ctx context.Context, locale domain.Locale) (domain.Translations, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.settingsRepo.GetTranslations(ctx, locale)
}
