package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"

	"conandweb/internal/domain"
)

type eventRepository struct {
	DB            *sql.DB
	defaultLocale domain.Locale
}

// NewEventRepository returns an EventRepository that resolves localized columns to the
// requested locale, falling back to defaultLocale.
func NewEventRepository(db *sql.DB, defaultLocale domain.Locale) domain.EventRepository {
	return &eventRepository{
		DB:            db,
		defaultLocale: defaultLocale,
	}
}

// $1 is the requested locale, $2 the default locale.
const eventSelect = `
		SELECT e.id, e.name, e.slug, e.year, e.date, e.status,
			COALESCE(e.description -> $1::text, e.description -> $2::text),
			e.cfp_enabled, e.cfp_url, e.tickets_enabled, e.tickets_url,
			m.id, m.url, m.alt
		FROM events e
		LEFT JOIN media m ON m.id = e.featured_image_id
`

func (r *eventRepository) List(ctx context.Context, f domain.EventFilter) ([]*domain.Event, error) {
	order := "ASC"
	if f.Sort == domain.SortDateDesc {
		order = "DESC"
	}
	query := eventSelect + `
		WHERE ($3::text = '' OR e.status = $3)
		ORDER BY e.date ` + order + `, e.id
		LIMIT NULLIF($4::int, 0)
	`
	loc := r.locale(f.Locale)
	rows, err := r.DB.QueryContext(ctx, query, loc, r.defaultLocale, string(f.Status), f.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if f.Depth > 0 && len(events) > 0 {
		if err := r.loadRelations(ctx, events, loc); err != nil {
			return nil, err
		}
	}
	return events, nil
}

func (r *eventRepository) GetByYearAndSlug(ctx context.Context, year, slug string, locale domain.Locale) (*domain.Event, error) {
	query := eventSelect + `
		WHERE e.year = $3 AND e.slug = $4
	`
	loc := r.locale(locale)
	rows, err := r.DB.QueryContext(ctx, query, loc, r.defaultLocale, year, slug)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, domain.ErrNotFound
	}
	e, err := scanEvent(rows)
	if err != nil {
		return nil, err
	}
	rows.Close()
	if err := r.loadRelations(ctx, []*domain.Event{e}, loc); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) locale(l domain.Locale) domain.Locale {
	if l == "" {
		return r.defaultLocale
	}
	return l
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(s scanner) (*domain.Event, error) {
	e := &domain.Event{Speakers: []*domain.Speaker{}, Sponsors: []domain.EventSponsor{}}
	var status string
	var description []byte
	var media nullMedia
	if err := s.Scan(
		&e.ID, &e.Name, &e.Slug, &e.Year, &e.Date, &status,
		&description,
		&e.Actions.CallForPapersEnabled, &e.Actions.CallForPapersURL, &e.Actions.TicketsEnabled, &e.Actions.TicketsURL,
		&media.ID, &media.URL, &media.Alt,
	); err != nil {
		return nil, err
	}
	e.Status = domain.EventStatus(status)
	e.FeaturedImage = media.toMedia()
	e.Description = decodeRichText(description)
	return e, nil
}

// loadRelations expands speakers, sponsors and schedule of events with one query each.
func (r *eventRepository) loadRelations(ctx context.Context, events []*domain.Event, locale domain.Locale) error {
	byID := make(map[string]*domain.Event, len(events))
	ids := make([]string, 0, len(events))
	for _, e := range events {
		byID[e.ID] = e
		ids = append(ids, e.ID)
	}
	if err := r.loadSpeakers(ctx, byID, ids, locale); err != nil {
		return fmt.Errorf("load speakers: %w", err)
	}
	if err := r.loadSponsors(ctx, byID, ids); err != nil {
		return fmt.Errorf("load sponsors: %w", err)
	}
	if err := r.loadSchedule(ctx, byID, ids, locale); err != nil {
		return fmt.Errorf("load schedule: %w", err)
	}
	return nil
}

func (r *eventRepository) loadSpeakers(ctx context.Context, byID map[string]*domain.Event, ids []string, locale domain.Locale) error {
	query := `
		SELECT es.event_id, s.id, s.name, s.title,
			COALESCE(s.bio -> $2::text, s.bio -> $3::text),
			m.id, m.url, m.alt
		FROM event_speakers es
		JOIN speakers s ON s.id = es.speaker_id
		LEFT JOIN media m ON m.id = s.photo_id
		WHERE es.event_id = ANY($1)
		ORDER BY es.event_id, es.position
	`
	rows, err := r.DB.QueryContext(ctx, query, pq.Array(ids), locale, r.defaultLocale)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var eventID string
		var bio []byte
		var photo nullMedia
		s := &domain.Speaker{}
		if err := rows.Scan(&eventID, &s.ID, &s.Name, &s.Title, &bio, &photo.ID, &photo.URL, &photo.Alt); err != nil {
			return err
		}
		s.Photo = photo.toMedia()
		s.Bio = decodeRichText(bio)
		if e := byID[eventID]; e != nil {
			e.Speakers = append(e.Speakers, s)
		}
	}
	return rows.Err()
}

func (r *eventRepository) loadSponsors(ctx context.Context, byID map[string]*domain.Event, ids []string) error {
	query := `
		SELECT ep.event_id, ep.tier_override,
			sp.id, sp.name, sp.url, sp.tier, sp.is_global,
			m.id, m.url, m.alt
		FROM event_sponsors ep
		JOIN sponsors sp ON sp.id = ep.sponsor_id
		LEFT JOIN media m ON m.id = sp.logo_id
		WHERE ep.event_id = ANY($1)
		ORDER BY ep.event_id, ep.position
	`
	rows, err := r.DB.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var eventID, override string
		sp, err := scanSponsor(rows, &eventID, &override)
		if err != nil {
			return err
		}
		if e := byID[eventID]; e != nil {
			e.Sponsors = append(e.Sponsors, domain.EventSponsor{Sponsor: sp, TierOverride: domain.Tier(override)})
		}
	}
	return rows.Err()
}

func (r *eventRepository) loadSchedule(ctx context.Context, byID map[string]*domain.Event, ids []string, locale domain.Locale) error {
	dayRows, err := r.DB.QueryContext(ctx, `SELECT event_id, date FROM schedule_days WHERE event_id = ANY($1) ORDER BY event_id, position`, pq.Array(ids))
	if err != nil {
		return err
	}
	defer dayRows.Close()
	for dayRows.Next() {
		var eventID string
		var d domain.ScheduleDay
		if err := dayRows.Scan(&eventID, &d.Date); err != nil {
			return err
		}
		if e := byID[eventID]; e != nil {
			e.Schedule.Days = append(e.Schedule.Days, d)
		}
	}
	if err := dayRows.Err(); err != nil {
		return err
	}

	trackRows, err := r.DB.QueryContext(ctx, `SELECT event_id, name FROM schedule_tracks WHERE event_id = ANY($1) ORDER BY event_id, position`, pq.Array(ids))
	if err != nil {
		return err
	}
	defer trackRows.Close()
	for trackRows.Next() {
		var eventID string
		var t domain.ScheduleTrack
		if err := trackRows.Scan(&eventID, &t.Name); err != nil {
			return err
		}
		if e := byID[eventID]; e != nil {
			e.Schedule.Tracks = append(e.Schedule.Tracks, t)
		}
	}
	if err := trackRows.Err(); err != nil {
		return err
	}

	query := `
		SELECT ss.event_id,
			COALESCE(ss.title ->> $2::text, ss.title ->> $3::text, ''),
			COALESCE(ss.description ->> $2::text, ss.description ->> $3::text, ''),
			ss.day_index, ss.track_index, ss.start_time, ss.end_time,
			s.id, s.name, s.title
		FROM schedule_sessions ss
		LEFT JOIN speakers s ON s.id = ss.speaker_id
		WHERE ss.event_id = ANY($1)
		ORDER BY ss.event_id, ss.position
	`
	sessRows, err := r.DB.QueryContext(ctx, query, pq.Array(ids), locale, r.defaultLocale)
	if err != nil {
		return err
	}
	defer sessRows.Close()
	for sessRows.Next() {
		var eventID string
		var speakerID, speakerName, speakerTitle sql.NullString
		var s domain.Session
		if err := sessRows.Scan(&eventID, &s.Title, &s.Description, &s.DayIndex, &s.TrackIndex, &s.StartTime, &s.EndTime,
			&speakerID, &speakerName, &speakerTitle); err != nil {
			return err
		}
		if speakerID.Valid {
			s.Speaker = &domain.Speaker{ID: speakerID.String, Name: speakerName.String, Title: speakerTitle.String}
		}
		if e := byID[eventID]; e != nil {
			e.Schedule.Sessions = append(e.Schedule.Sessions, s)
		}
	}
	return sessRows.Err()
}

// nullMedia scans the columns of a LEFT JOINed media row.
type nullMedia struct {
	ID  sql.NullString
	URL sql.NullString
	Alt sql.NullString
}

func (m nullMedia) toMedia() *domain.Media {
	if !m.ID.Valid {
		return nil
	}
	return &domain.Media{ID: m.ID.String, URL: m.URL.String, Alt: m.Alt.String}
}

// decodeRichText decodes a stored rich-text value. NULL and malformed documents yield
// an empty document.
func decodeRichText(raw []byte) domain.RichText {
	var rt domain.RichText
	if len(raw) == 0 {
		return rt
	}
	_ = json.Unmarshal(raw, &rt)
	return rt
}
