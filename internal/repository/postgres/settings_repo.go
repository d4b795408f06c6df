package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"conandweb/internal/domain"
)

type settingsRepository struct {
	DB            *sql.DB
	media         domain.MediaRepository
	defaultLocale domain.Locale
}

// NewSettingsRepository returns a SettingsRepository. Site settings of a locale are
// overlaid on the default locale's document; media references are expanded through media.
func NewSettingsRepository(db *sql.DB, media domain.MediaRepository, defaultLocale domain.Locale) domain.SettingsRepository {
	return &settingsRepository{
		DB:            db,
		media:         media,
		defaultLocale: defaultLocale,
	}
}

// GetSiteSettings never returns domain.ErrNotFound: a locale without settings yields the
// default locale's document, and no document at all yields empty settings.
func (r *settingsRepository) GetSiteSettings(ctx context.Context, locale domain.Locale) (*domain.SiteSettings, error) {
	query := `
		SELECT COALESCE((SELECT document FROM site_settings WHERE locale = $1), '{}'::jsonb)
			|| COALESCE((SELECT document FROM site_settings WHERE locale = $2), '{}'::jsonb)
	`
	if locale == "" {
		locale = r.defaultLocale
	}
	var raw []byte
	if err := r.DB.QueryRowContext(ctx, query, r.defaultLocale, locale).Scan(&raw); err != nil {
		return nil, err
	}
	var doc domain.SiteSettingsDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode site settings: %w", err)
	}
	known := map[string]*domain.Media{}
	if ids := doc.MediaIDs(); len(ids) > 0 {
		var err error
		known, err = r.media.GetByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("resolve site settings media: %w", err)
		}
	}
	return doc.Resolve(known), nil
}

// GetTranslations returns the locale's overlay merged over the default locale's, so a
// string edited only for the default locale still applies. No rows yield empty translations.
func (r *settingsRepository) GetTranslations(ctx context.Context, locale domain.Locale) (domain.Translations, error) {
	query := `
		SELECT COALESCE((SELECT document FROM translations WHERE locale = $1), '{}'::jsonb),
			COALESCE((SELECT document FROM translations WHERE locale = $2), '{}'::jsonb)
	`
	if locale == "" {
		locale = r.defaultLocale
	}
	var rawDefault, rawLocale []byte
	if err := r.DB.QueryRowContext(ctx, query, r.defaultLocale, locale).Scan(&rawDefault, &rawLocale); err != nil {
		return nil, err
	}
	base, err := decodeTranslations(rawDefault)
	if err != nil {
		return nil, err
	}
	if locale == r.defaultLocale {
		return base, nil
	}
	own, err := decodeTranslations(rawLocale)
	if err != nil {
		return nil, err
	}
	return base.Merge(own), nil
}

func decodeTranslations(raw []byte) (domain.Translations, error) {
	t := domain.Translations{}
	if len(raw) == 0 {
		return t, nil
	}
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("decode translations: %w", err)
	}
	return t, nil
}
