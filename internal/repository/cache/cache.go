package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"conandweb/internal/domain"
)

// readThrough returns the cached value of key, or loads it, stores it and returns it.
// Cache failures are logged and never fail the read; load errors are not cached.
func readThrough[T any](ctx context.Context, c *base, key string, load func() (T, error)) (T, error) {
	if b, err := c.store.Get(ctx, key); err == nil {
		var v T
		if err := json.Unmarshal(b, &v); err == nil {
			return v, nil
		}
		c.logger.WarnContext(ctx, "cache decode failed", "key", key)
	} else if !errors.Is(err, ErrMiss) {
		c.logger.WarnContext(ctx, "cache get failed", "key", key, "err", err)
	}

	v, err := load()
	if err != nil {
		return v, err
	}
	b, err := json.Marshal(v)
	if err != nil {
		c.logger.WarnContext(ctx, "cache encode failed", "key", key, "err", err)
		return v, nil
	}
	if err := c.store.Set(ctx, key, b, c.ttl); err != nil {
		c.logger.WarnContext(ctx, "cache set failed", "key", key, "err", err)
	}
	return v, nil
}

type base struct {
	store  Store
	ttl    time.Duration
	logger *slog.Logger
}

type eventRepository struct {
	base
	repo domain.EventRepository
}

// NewEventRepository wraps repo with a read-through cache.
func NewEventRepository(repo domain.EventRepository, store Store, ttl time.Duration, logger *slog.Logger) domain.EventRepository {
	return &eventRepository{base: base{store: store, ttl: ttl, logger: logger}, repo: repo}
}

func (r *eventRepository) List(ctx context.Context, f domain.EventFilter) ([]*domain.Event, error) {
	key := fmt.Sprintf("%sevents:list:%s:%d:%d:%s:%d", KeyPrefix, f.Status, f.Sort, f.Limit, f.Locale, f.Depth)
	return readThrough(ctx, &r.base, key, func() ([]*domain.Event, error) {
		return r.repo.List(ctx, f)
	})
}

func (r *eventRepository) GetByYearAndSlug(ctx context.Context, year, slug string, locale domain.Locale) (*domain.Event, error) {
	key := fmt.Sprintf("%sevents:%s:%s/%s", KeyPrefix, locale, year, slug)
	return readThrough(ctx, &r.base, key, func() (*domain.Event, error) {
		return r.repo.GetByYearAndSlug(ctx, year, slug, locale)
	})
}

type sponsorRepository struct {
	base
	repo domain.SponsorRepository
}

// NewSponsorRepository wraps repo with a read-through cache.
func NewSponsorRepository(repo domain.SponsorRepository, store Store, ttl time.Duration, logger *slog.Logger) domain.SponsorRepository {
	return &sponsorRepository{base: base{store: store, ttl: ttl, logger: logger}, repo: repo}
}

func (r *sponsorRepository) ListGlobal(ctx context.Context, limit int) ([]*domain.Sponsor, error) {
	key := fmt.Sprintf("%ssponsors:global:%d", KeyPrefix, limit)
	return readThrough(ctx, &r.base, key, func() ([]*domain.Sponsor, error) {
		return r.repo.ListGlobal(ctx, limit)
	})
}

type settingsRepository struct {
	base
	repo domain.SettingsRepository
}

// NewSettingsRepository wraps repo with a read-through cache.
func NewSettingsRepository(repo domain.SettingsRepository, store Store, ttl time.Duration, logger *slog.Logger) domain.SettingsRepository {
	return &settingsRepository{base: base{store: store, ttl: ttl, logger: logger}, repo: repo}
}

func (r *settingsRepository) GetSiteSettings(ctx context.Context, locale domain.Locale) (*domain.SiteSettings, error) {
	return readThrough(ctx, &r.base, KeyPrefix+"settings:"+string(locale), func() (*domain.SiteSettings, error) {
		return r.repo.GetSiteSettings(ctx, locale)
	})
}

func (r *settingsRepository) GetTranslations(ctx context.Context, locale domain.Locale) (domain.Translations, error) {
	return readThrough(ctx, &r.base, KeyPrefix+"translations:"+string(locale), func() (domain.Translations, error) {
		return r.repo.GetTranslations(ctx, locale)
	})
}

// Purger drops every cached content entry.
type Purger struct {
	store Store
}

func NewPurger(store Store) *Purger {
	return &Purger{store: store}
}

func (p *Purger) Purge(ctx context.Context) error {
	return p.store.DeletePrefix(ctx, KeyPrefix)
}

var _ domain.CachePurger = (*Purger)(nil)

// NopPurger is the purger used when no cache is configured.
type NopPurger struct{}

func (NopPurger) Purge(context.Context) error { return nil }
