package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"conandweb/internal/domain"
)

func TestMediaRepository_GetByIDs(t *testing.T) {
	ctx := context.Background()

	t.Run("keys by id and import key", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		ids := []string{"m-1", "hero-2", "missing"}
		mock.ExpectQuery(`WHERE id::text = ANY\(\$1\) OR key = ANY\(\$1\)`).
			WithArgs(pq.Array(ids)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "key", "url", "alt"}).
				AddRow("m-1", "", "/media/1.jpg", "One").
				AddRow("m-2", "hero-2", "/media/2.jpg", "Two"))

		got, err := NewMediaRepository(db).GetByIDs(ctx, ids)
		require.NoError(t, err)
		require.Equal(t, &domain.Media{ID: "m-1", URL: "/media/1.jpg", Alt: "One"}, got["m-1"])
		require.Equal(t, "m-2", got["hero-2"].ID)
		require.Same(t, got["m-2"], got["hero-2"])
		require.NotContains(t, got, "missing")
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no ids skips the query", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		got, err := NewMediaRepository(db).GetByIDs(ctx, nil)
		require.NoError(t, err)
		require.Empty(t, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
