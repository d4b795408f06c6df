package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"conandweb/internal/domain"
)

type contentImporter struct {
	DB *sql.DB
}

// NewContentImporter returns a ContentImporter that writes a whole document in one transaction.
func NewContentImporter(db *sql.DB) domain.ContentImporter {
	return &contentImporter{DB: db}
}

func (r *contentImporter) Import(ctx context.Context, doc *domain.ContentDocument, reset bool) (stats *domain.ImportStats, err error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	imp := &importTx{
		tx:       tx,
		stats:    &domain.ImportStats{},
		media:    make(map[string]string),
		speakers: make(map[string]string),
		sponsors: make(map[string]string),
	}
	if reset {
		if _, err = tx.ExecContext(ctx, `TRUNCATE events, speakers, sponsors, media, site_settings, translations CASCADE`); err != nil {
			return nil, fmt.Errorf("reset content: %w", err)
		}
	}
	if err = imp.run(ctx, doc); err != nil {
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return imp.stats, nil
}

// importTx carries the key to id maps of one import.
type importTx struct {
	tx       *sql.Tx
	stats    *domain.ImportStats
	media    map[string]string
	speakers map[string]string
	sponsors map[string]string
}

func (i *importTx) run(ctx context.Context, doc *domain.ContentDocument) error {
	for idx := range doc.Media {
		if _, err := i.upsertMedia(ctx, &doc.Media[idx]); err != nil {
			return fmt.Errorf("media[%d]: %w", idx, err)
		}
	}
	for idx := range doc.Speakers {
		if _, err := i.upsertSpeaker(ctx, &doc.Speakers[idx]); err != nil {
			return fmt.Errorf("speakers[%d]: %w", idx, err)
		}
	}
	for idx := range doc.Sponsors {
		if _, err := i.upsertSponsor(ctx, &doc.Sponsors[idx]); err != nil {
			return fmt.Errorf("sponsors[%d]: %w", idx, err)
		}
	}
	for idx := range doc.Events {
		if err := i.importEvent(ctx, &doc.Events[idx]); err != nil {
			return fmt.Errorf("events[%d]: %w", idx, err)
		}
	}
	for _, loc := range domain.SupportedLocales {
		s, ok := doc.SiteSettings[loc]
		if !ok {
			continue
		}
		if err := i.importSiteSettings(ctx, loc, s); err != nil {
			return fmt.Errorf("siteSettings.%s: %w", loc, err)
		}
	}
	for _, loc := range domain.SupportedLocales {
		t, ok := doc.Translations[loc]
		if !ok {
			continue
		}
		raw, err := jsonString(t)
		if err != nil {
			return fmt.Errorf("translations.%s: %w", loc, err)
		}
		query := `
			INSERT INTO translations (locale, document) VALUES ($1, $2)
			ON CONFLICT (locale) DO UPDATE SET document = EXCLUDED.document, updated_at = now()
		`
		if _, err := i.tx.ExecContext(ctx, query, loc, raw); err != nil {
			return fmt.Errorf("translations.%s: %w", loc, err)
		}
		i.stats.Translations++
	}
	return nil
}

func (i *importTx) upsertMedia(ctx context.Context, m *domain.MediaDocument) (string, error) {
	query := `
		INSERT INTO media (key, url, alt) VALUES (NULLIF($1, ''), $2, $3)
		ON CONFLICT (key) DO UPDATE SET url = EXCLUDED.url, alt = EXCLUDED.alt
		RETURNING id
	`
	var id string
	if err := i.tx.QueryRowContext(ctx, query, m.Key, m.URL, m.Alt).Scan(&id); err != nil {
		return "", err
	}
	if m.Key != "" {
		i.media[m.Key] = id
	}
	i.stats.Media++
	return id, nil
}

func (i *importTx) upsertSpeaker(ctx context.Context, s *domain.SpeakerDocument) (string, error) {
	photo, err := i.mediaRef(ctx, s.Photo)
	if err != nil {
		return "", fmt.Errorf("photo: %w", err)
	}
	bio, err := localizedRichTextJSON(s.Bio)
	if err != nil {
		return "", err
	}
	query := `
		INSERT INTO speakers (key, name, title, photo_id, bio) VALUES (NULLIF($1, ''), $2, $3, $4, $5)
		ON CONFLICT (key) DO UPDATE SET name = EXCLUDED.name, title = EXCLUDED.title,
			photo_id = EXCLUDED.photo_id, bio = EXCLUDED.bio
		RETURNING id
	`
	var id string
	if err := i.tx.QueryRowContext(ctx, query, s.Key, s.Name, s.Title, photo, bio).Scan(&id); err != nil {
		return "", err
	}
	if s.Key != "" {
		i.speakers[s.Key] = id
	}
	i.stats.Speakers++
	return id, nil
}

func (i *importTx) upsertSponsor(ctx context.Context, s *domain.SponsorDocument) (string, error) {
	logo, err := i.mediaRef(ctx, s.Logo)
	if err != nil {
		return "", fmt.Errorf("logo: %w", err)
	}
	query := `
		INSERT INTO sponsors (key, name, logo_id, url, tier, is_global) VALUES (NULLIF($1, ''), $2, $3, $4, $5, $6)
		ON CONFLICT (key) DO UPDATE SET name = EXCLUDED.name, logo_id = EXCLUDED.logo_id,
			url = EXCLUDED.url, tier = EXCLUDED.tier, is_global = EXCLUDED.is_global
		RETURNING id
	`
	var id string
	if err := i.tx.QueryRowContext(ctx, query, s.Key, s.Name, logo, s.URL, string(s.Tier), s.IsGlobal).Scan(&id); err != nil {
		return "", err
	}
	if s.Key != "" {
		i.sponsors[s.Key] = id
	}
	i.stats.Sponsors++
	return id, nil
}

func (i *importTx) importEvent(ctx context.Context, e *domain.EventDocument) error {
	image, err := i.mediaRef(ctx, e.FeaturedImage)
	if err != nil {
		return fmt.Errorf("featuredImage: %w", err)
	}
	description, err := localizedRichTextJSON(e.Description)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO events (name, slug, year, date, status, featured_image_id, description,
			cfp_enabled, cfp_url, tickets_enabled, tickets_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (year, slug) DO UPDATE SET name = EXCLUDED.name, date = EXCLUDED.date,
			status = EXCLUDED.status, featured_image_id = EXCLUDED.featured_image_id,
			description = EXCLUDED.description, cfp_enabled = EXCLUDED.cfp_enabled,
			cfp_url = EXCLUDED.cfp_url, tickets_enabled = EXCLUDED.tickets_enabled,
			tickets_url = EXCLUDED.tickets_url, updated_at = now()
		RETURNING id
	`
	var id string
	err = i.tx.QueryRowContext(ctx, query, e.Name, e.Slug, e.Year, e.Date, string(e.Status), image, description,
		e.Actions.CallForPapersEnabled, e.Actions.CallForPapersURL, e.Actions.TicketsEnabled, e.Actions.TicketsURL).Scan(&id)
	if err != nil {
		return err
	}
	i.stats.Events++

	for _, table := range []string{"event_speakers", "event_sponsors", "schedule_days", "schedule_tracks", "schedule_sessions"} {
		if _, err := i.tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE event_id = $1`, id); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	for pos, rel := range e.Speakers {
		speakerID, err := i.speakerRef(ctx, rel)
		if err != nil {
			return fmt.Errorf("speakers[%d]: %w", pos, err)
		}
		if !speakerID.Valid {
			continue
		}
		if _, err := i.tx.ExecContext(ctx, `INSERT INTO event_speakers (event_id, speaker_id, position) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
			id, speakerID.String, pos); err != nil {
			return fmt.Errorf("speakers[%d]: %w", pos, err)
		}
	}
	for pos, es := range e.Sponsors {
		sponsorID, err := i.sponsorRef(ctx, es.Sponsor)
		if err != nil {
			return fmt.Errorf("eventSponsors[%d]: %w", pos, err)
		}
		if _, err := i.tx.ExecContext(ctx, `INSERT INTO event_sponsors (event_id, sponsor_id, position, tier_override) VALUES ($1, $2, $3, $4)`,
			id, sponsorID.String, pos, string(es.TierOverride)); err != nil {
			return fmt.Errorf("eventSponsors[%d]: %w", pos, err)
		}
	}
	for pos, d := range e.Schedule.Days {
		if _, err := i.tx.ExecContext(ctx, `INSERT INTO schedule_days (event_id, position, date) VALUES ($1, $2, $3)`, id, pos, d); err != nil {
			return fmt.Errorf("schedule.days[%d]: %w", pos, err)
		}
	}
	for pos, name := range e.Schedule.Tracks {
		if _, err := i.tx.ExecContext(ctx, `INSERT INTO schedule_tracks (event_id, position, name) VALUES ($1, $2, $3)`, id, pos, name); err != nil {
			return fmt.Errorf("schedule.tracks[%d]: %w", pos, err)
		}
	}
	for pos, s := range e.Schedule.Sessions {
		if err := i.insertSession(ctx, id, pos, &s); err != nil {
			return fmt.Errorf("schedule.sessions[%d]: %w", pos, err)
		}
	}
	return nil
}

func (i *importTx) insertSession(ctx context.Context, eventID string, pos int, s *domain.SessionDocument) error {
	speakerID, err := i.speakerRef(ctx, s.Speaker)
	if err != nil {
		return err
	}
	title, err := localizedTextJSON(s.Title)
	if err != nil {
		return err
	}
	description, err := localizedTextJSON(s.Description)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO schedule_sessions (event_id, position, title, description, speaker_id,
			day_index, track_index, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	if _, err := i.tx.ExecContext(ctx, query, eventID, pos, title, description, speakerID,
		s.DayIndex, s.TrackIndex, s.StartTime, s.EndTime); err != nil {
		return err
	}
	i.stats.Sessions++
	return nil
}

// importSiteSettings stores the document with every media reference rewritten to a stored media id.
func (i *importTx) importSiteSettings(ctx context.Context, loc domain.Locale, s domain.SiteSettingsDocument) error {
	hero := make([]domain.Relation[domain.Media], 0, len(s.HeroImages))
	for idx, rel := range s.HeroImages {
		ref, err := i.settingsMediaRef(rel)
		if err != nil {
			return fmt.Errorf("heroImages[%d]: %w", idx, err)
		}
		if !ref.IsZero() {
			hero = append(hero, ref)
		}
	}
	s.HeroImages = hero
	var err error
	if s.AboutImage1, err = i.settingsMediaRef(s.AboutImage1); err != nil {
		return fmt.Errorf("aboutImage1: %w", err)
	}
	if s.AboutImage2, err = i.settingsMediaRef(s.AboutImage2); err != nil {
		return fmt.Errorf("aboutImage2: %w", err)
	}
	raw, err := jsonString(s)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO site_settings (locale, document) VALUES ($1, $2)
		ON CONFLICT (locale) DO UPDATE SET document = EXCLUDED.document, updated_at = now()
	`
	if _, err := i.tx.ExecContext(ctx, query, loc, raw); err != nil {
		return err
	}
	i.stats.SiteSettings++
	return nil
}

var errUnknownKey = errors.New("unknown key")

// mediaRef returns the stored id of a media relation, inserting inline documents.
func (i *importTx) mediaRef(ctx context.Context, rel domain.Relation[domain.MediaDocument]) (sql.NullString, error) {
	switch {
	case rel.IsZero():
		return sql.NullString{}, nil
	case rel.IsExpanded():
		id, err := i.upsertMedia(ctx, rel.Value)
		return sql.NullString{String: id, Valid: err == nil}, err
	}
	id, ok := i.media[rel.ID]
	if !ok {
		return sql.NullString{}, fmt.Errorf("%w: media %q", errUnknownKey, rel.ID)
	}
	return sql.NullString{String: id, Valid: true}, nil
}

func (i *importTx) speakerRef(ctx context.Context, rel domain.Relation[domain.SpeakerDocument]) (sql.NullString, error) {
	switch {
	case rel.IsZero():
		return sql.NullString{}, nil
	case rel.IsExpanded():
		id, err := i.upsertSpeaker(ctx, rel.Value)
		return sql.NullString{String: id, Valid: err == nil}, err
	}
	id, ok := i.speakers[rel.ID]
	if !ok {
		return sql.NullString{}, fmt.Errorf("%w: speaker %q", errUnknownKey, rel.ID)
	}
	return sql.NullString{String: id, Valid: true}, nil
}

func (i *importTx) sponsorRef(ctx context.Context, rel domain.Relation[domain.SponsorDocument]) (sql.NullString, error) {
	switch {
	case rel.IsZero():
		return sql.NullString{}, fmt.Errorf("%w: sponsor is required", domain.ErrInvalidInput)
	case rel.IsExpanded():
		id, err := i.upsertSponsor(ctx, rel.Value)
		return sql.NullString{String: id, Valid: err == nil}, err
	}
	id, ok := i.sponsors[rel.ID]
	if !ok {
		return sql.NullString{}, fmt.Errorf("%w: sponsor %q", errUnknownKey, rel.ID)
	}
	return sql.NullString{String: id, Valid: true}, nil
}

// settingsMediaRef maps a media key to its stored id. Identifiers that are not import
// keys are kept as they are, and inline media keep their expanded form.
func (i *importTx) settingsMediaRef(rel domain.Relation[domain.Media]) (domain.Relation[domain.Media], error) {
	if rel.IsZero() || rel.IsExpanded() {
		return rel, nil
	}
	if id, ok := i.media[rel.ID]; ok {
		return domain.Ref[domain.Media](id), nil
	}
	return rel, nil
}

// localizedRichTextJSON encodes the non-empty documents keyed by locale so that a missing
// locale falls back to the default one when read.
func localizedRichTextJSON(v domain.LocalizedRichText) (string, error) {
	out := make(map[domain.Locale]domain.RichText, len(v))
	for loc, rt := range v {
		if !rt.IsEmpty() {
			out[loc] = rt
		}
	}
	return jsonString(out)
}

func localizedTextJSON(v domain.LocalizedText) (string, error) {
	out := make(map[domain.Locale]string, len(v))
	for loc, s := range v {
		if s != "" {
			out[loc] = s
		}
	}
	return jsonString(out)
}

// jsonString encodes v as text; lib/pq sends []byte parameters as bytea.
func jsonString(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
