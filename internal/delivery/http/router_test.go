package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"conandweb/internal/delivery/http/controllers"
	"conandweb/internal/delivery/http/helpers"
	"conandweb/internal/domain"
	"conandweb/internal/locale"
	"conandweb/internal/viewmodel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPages struct{}

func (stubPages) Layout(_ context.Context, l domain.Locale, _ string) viewmodel.Layout {
	return viewmodel.Layout{Locale: l}
}

func (stubPages) Home(_ context.Context, l domain.Locale) viewmodel.Page[viewmodel.HomePage] {
	return viewmodel.Page[viewmodel.HomePage]{Locale: l, Path: "home"}
}

func (stubPages) About(_ context.Context, l domain.Locale) viewmodel.Page[viewmodel.AboutPage] {
	return viewmodel.Page[viewmodel.AboutPage]{Locale: l, Path: "about"}
}

func (stubPages) Gallery(_ context.Context, l domain.Locale) viewmodel.Page[viewmodel.GalleryPage] {
	return viewmodel.Page[viewmodel.GalleryPage]{Locale: l, Path: "gallery"}
}

func (stubPages) Event(_ context.Context, l domain.Locale, year, slug string) (viewmodel.Page[viewmodel.EventPage], error) {
	if slug != "conand" {
		return viewmodel.Page[viewmodel.EventPage]{}, domain.ErrNotFound
	}
	return viewmodel.Page[viewmodel.EventPage]{Locale: l, Path: "event " + year + "/" + slug}, nil
}

type stubContact struct{}

func (stubContact) Submit(context.Context, *domain.ContactMessage) error { return nil }

type stubAuth struct{}

func (stubAuth) CreateUser(context.Context, string, string, string, string) (*domain.User, error) {
	return nil, nil
}

func (stubAuth) Login(context.Context, string, string) (string, error) { return "tok", nil }

type stubPurger struct{}

func (stubPurger) Purge(context.Context) error { return nil }

type stubVerifier struct{}

func (stubVerifier) Verify(token string) (*domain.Claims, error) {
	if token != "editor-token" {
		return nil, assert.AnError
	}
	return &domain.Claims{UserID: "u1", Roles: []string{domain.RoleEditor}}, nil
}

type stubPinger struct{}

func (stubPinger) PingContext(context.Context) error { return nil }

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	static := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(static, "img", "galeria"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(static, "img", "galeria", "a.jpg"), []byte("jpeg"), 0o644))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	resolver := locale.NewResolver("ca", []domain.Locale{"ca", "es", "en", "fr"}, locale.DefaultIgnorePrefixes)
	return NewRouter(RouterConfig{
		Logger:    logger,
		Resolver:  resolver,
		Verifier:  stubVerifier{},
		Pages:     controllers.NewPageController(logger, stubPages{}, resolver),
		Contact:   controllers.NewContactController(logger, stubContact{}),
		Admin:     controllers.NewAdminController(logger, stubAuth{}, stubPurger{}),
		Health:    controllers.NewHealthController(logger, stubPinger{}),
		StaticDir: static,
	})
}

func TestRouter_Pages(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantLocale string
		wantPath   string
	}{
		{name: "home", path: "/", wantStatus: http.StatusOK, wantLocale: "ca", wantPath: "home"},
		{name: "localized home", path: "/es", wantStatus: http.StatusOK, wantLocale: "es", wantPath: "home"},
		{name: "localized home trailing slash", path: "/fr/", wantStatus: http.StatusOK, wantLocale: "fr", wantPath: "home"},
		{name: "about", path: "/en/about", wantStatus: http.StatusOK, wantLocale: "en", wantPath: "about"},
		{name: "gallery", path: "/gallery", wantStatus: http.StatusOK, wantLocale: "ca", wantPath: "gallery"},
		{name: "event", path: "/es/ev/2025/conand", wantStatus: http.StatusOK, wantLocale: "es", wantPath: "event 2025/conand"},
		{name: "unknown event", path: "/ev/2025/nope", wantStatus: http.StatusNotFound},
		{name: "default code prefix is a plain path", path: "/ca/about", wantStatus: http.StatusNotFound},
		{name: "unknown route", path: "/does-not-exist", wantStatus: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "http://test"+tt.path, nil))

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantStatus != http.StatusOK {
				require.NotNil(t, envelope.Error)
				assert.Equal(t, helpers.ErrCodeNotFound, envelope.Error.Code)
				return
			}
			data := envelope.Data.(map[string]any)
			assert.Equal(t, tt.wantLocale, data["locale"])
			assert.Equal(t, tt.wantPath, data["path"])
			assert.Equal(t, tt.wantLocale, rr.Header().Get("Content-Language"))
		})
	}
}

func TestRouter_APIAndStatic(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		auth       string
		wantStatus int
		wantBody   string
	}{
		{name: "layout", method: http.MethodGet, path: "/api/layout?locale=es", wantStatus: http.StatusOK},
		{name: "contact", method: http.MethodPost, path: "/api/contact", body: `{"name":"a","email":"a@b.co","message":"hi"}`, wantStatus: http.StatusOK, wantBody: `{"success":true}`},
		{name: "login", method: http.MethodPost, path: "/api/admin/login", body: `{"email":"a@b.co","password":"secret123"}`, wantStatus: http.StatusOK},
		{name: "purge without token", method: http.MethodPost, path: "/api/admin/cache/purge", wantStatus: http.StatusUnauthorized},
		{name: "purge with editor token", method: http.MethodPost, path: "/api/admin/cache/purge", auth: "Bearer editor-token", wantStatus: http.StatusOK},
		{name: "health", method: http.MethodGet, path: "/healthz", wantStatus: http.StatusOK},
		{name: "gallery image", method: http.MethodGet, path: "/img/galeria/a.jpg", wantStatus: http.StatusOK, wantBody: "jpeg"},
		{name: "contact over GET is not a route", method: http.MethodGet, path: "/api/contact", wantStatus: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "http://test"+tt.path, strings.NewReader(tt.body))
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Empty(t, rr.Header().Get("Content-Language"))
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, strings.TrimSpace(rr.Body.String()))
			}
		})
	}
}
