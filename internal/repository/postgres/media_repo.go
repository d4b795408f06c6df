package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"conandweb/internal/domain"
)

type mediaRepository struct {
	DB *sql.DB
}

func NewMediaRepository(db *sql.DB) domain.MediaRepository {
	return &mediaRepository{DB: db}
}

// GetByIDs looks media up by id or by import key.
func (r *mediaRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*domain.Media, error) {
	out := make(map[string]*domain.Media, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	query := `
		SELECT id, COALESCE(key, ''), url, alt
		FROM media
		WHERE id::text = ANY($1) OR key = ANY($1)
	`
	rows, err := r.DB.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var key string
		m := &domain.Media{}
		if err := rows.Scan(&m.ID, &key, &m.URL, &m.Alt); err != nil {
			return nil, err
		}
		out[m.ID] = m
		if key != "" {
			out[key] = m
		}
	}
	return out, rows.Err()
}
