package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"conandweb/internal/domain"
)

type fakeMediaRepo struct {
	media map[string]*domain.Media
	asked []string
}

func (f *fakeMediaRepo) GetByIDs(_ context.Context, ids []string) (map[string]*domain.Media, error) {
	f.asked = append(f.asked, ids...)
	return f.media, nil
}

func TestSettingsRepository_GetSiteSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("merges overlay and resolves media", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		doc := `{"siteName":"CONAND","siteDescription":"Conferencia","heroImages":["m-1",{"id":"m-9","url":"/inline.jpg","alt":"Inline"},"gone"],"aboutImage1":"m-2","twitterUrl":"https://x.com/conand","sponsorTierLabels":{"gold":"Oro"}}`
		mock.ExpectQuery(`SELECT COALESCE\(\(SELECT document FROM site_settings WHERE locale = \$1\)`).
			WithArgs(domain.LocaleCatalan, domain.LocaleSpanish).
			WillReturnRows(sqlmock.NewRows([]string{"document"}).AddRow([]byte(doc)))

		media := &fakeMediaRepo{media: map[string]*domain.Media{
			"m-1": {ID: "m-1", URL: "/media/1.jpg"},
			"m-2": {ID: "m-2", URL: "/media/2.jpg"},
		}}
		repo := NewSettingsRepository(db, media, domain.LocaleCatalan)
		s, err := repo.GetSiteSettings(ctx, domain.LocaleSpanish)
		require.NoError(t, err)
		require.Equal(t, []string{"m-1", "gone", "m-2"}, media.asked)
		require.Equal(t, "CONAND", s.SiteName)
		require.Equal(t, "Conferencia", s.SiteDescription)
		require.Len(t, s.HeroImages, 2)
		require.Equal(t, "/media/1.jpg", s.HeroImages[0].URL)
		require.Equal(t, "/inline.jpg", s.HeroImages[1].URL)
		require.Equal(t, "/media/2.jpg", s.AboutImage1.URL)
		require.Nil(t, s.AboutImage2)
		require.Equal(t, "https://x.com/conand", s.Social.Twitter)
		require.Equal(t, "Oro", s.SponsorTierLabels[domain.TierGold])
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty document", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM site_settings`).
			WithArgs(domain.LocaleCatalan, domain.LocaleCatalan).
			WillReturnRows(sqlmock.NewRows([]string{"document"}).AddRow([]byte(`{}`)))

		media := &fakeMediaRepo{}
		s, err := NewSettingsRepository(db, media, domain.LocaleCatalan).GetSiteSettings(ctx, "")
		require.NoError(t, err)
		require.Empty(t, s.SiteName)
		require.Empty(t, s.HeroImages)
		require.Empty(t, media.asked)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSettingsRepository_GetTranslations(t *testing.T) {
	ctx := context.Background()
	columns := []string{"default_document", "locale_document"}

	tests := []struct {
		name    string
		locale  domain.Locale
		mock    func(mock sqlmock.Sqlmock)
		want    map[string]string
		wantErr bool
	}{
		{
			name:   "locale overlay merged over default",
			locale: domain.LocaleFrench,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT COALESCE\(\(SELECT document FROM translations WHERE locale = \$1\)`).
					WithArgs(domain.LocaleCatalan, domain.LocaleFrench).
					WillReturnRows(sqlmock.NewRows(columns).AddRow(
						[]byte(`{"nav":{"home":"Inici","about":"Qui som"},"home":{"tagline":"Comunitat"}}`),
						[]byte(`{"nav":{"home":"Accueil","about":""}}`),
					))
			},
			want: map[string]string{"nav.home": "Accueil", "nav.about": "Qui som", "home.tagline": "Comunitat"},
		},
		{
			name:   "only default stored",
			locale: domain.LocaleSpanish,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM translations`).
					WithArgs(domain.LocaleCatalan, domain.LocaleSpanish).
					WillReturnRows(sqlmock.NewRows(columns).AddRow([]byte(`{"nav":{"home":"Inici"}}`), []byte(`{}`)))
			},
			want: map[string]string{"nav.home": "Inici"},
		},
		{
			name:   "default locale",
			locale: domain.LocaleCatalan,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM translations`).
					WithArgs(domain.LocaleCatalan, domain.LocaleCatalan).
					WillReturnRows(sqlmock.NewRows(columns).AddRow([]byte(`{"nav":{"home":"Inici"}}`), []byte(`{"nav":{"home":"Inici"}}`)))
			},
			want: map[string]string{"nav.home": "Inici"},
		},
		{
			name:   "nothing stored",
			locale: domain.LocaleFrench,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM translations`).
					WithArgs(domain.LocaleCatalan, domain.LocaleFrench).
					WillReturnRows(sqlmock.NewRows(columns).AddRow([]byte(`{}`), []byte(`{}`)))
			},
			want: map[string]string{},
		},
		{
			name:   "malformed document",
			locale: domain.LocaleFrench,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM translations`).
					WithArgs(domain.LocaleCatalan, domain.LocaleFrench).
					WillReturnRows(sqlmock.NewRows(columns).AddRow([]byte(`{}`), []byte(`[1,2]`)))
			},
			wantErr: true,
		},
		{
			name:   "db error",
			locale: domain.LocaleFrench,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM translations`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			got, err := NewSettingsRepository(db, &fakeMediaRepo{}, domain.LocaleCatalan).GetTranslations(ctx, tt.locale)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				require.Equal(t, tt.want, got.Flatten())
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
