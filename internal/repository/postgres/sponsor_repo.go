package postgres

import (
	"context"
	"database/sql"

	"conandweb/internal/domain"
)

type sponsorRepository struct {
	DB *sql.DB
}

func NewSponsorRepository(db *sql.DB) domain.SponsorRepository {
	return &sponsorRepository{DB: db}
}

// ListGlobal returns sponsors flagged for site-wide display in insertion order.
// A limit of 0 returns all of them.
func (r *sponsorRepository) ListGlobal(ctx context.Context, limit int) ([]*domain.Sponsor, error) {
	query := `
		SELECT sp.id, sp.name, sp.url, sp.tier, sp.is_global,
			m.id, m.url, m.alt
		FROM sponsors sp
		LEFT JOIN media m ON m.id = sp.logo_id
		WHERE sp.is_global
		ORDER BY sp.created_at, sp.name
		LIMIT NULLIF($1::int, 0)
	`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	sponsors := make([]*domain.Sponsor, 0)
	for rows.Next() {
		sp, err := scanSponsor(rows)
		if err != nil {
			return nil, err
		}
		sponsors = append(sponsors, sp)
	}
	return sponsors, rows.Err()
}

// scanSponsor scans lead columns into lead followed by the sponsor and logo columns.
func scanSponsor(s scanner, lead ...any) (*domain.Sponsor, error) {
	sp := &domain.Sponsor{}
	var tier string
	var logo nullMedia
	dest := append(lead, &sp.ID, &sp.Name, &sp.URL, &tier, &sp.IsGlobal, &logo.ID, &logo.URL, &logo.Alt)
	if err := s.Scan(dest...); err != nil {
		return nil, err
	}
	sp.Tier = domain.Tier(tier)
	sp.Logo = logo.toMedia()
	return sp, nil
}
