package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"conandweb/internal/delivery/http/helpers"
	"conandweb/internal/delivery/http/middleware"
	"conandweb/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuthService implements domain.AuthService for handler tests.
type fakeAuthService struct {
	token    string
	loginErr error
}

func (f *fakeAuthService) CreateUser(_ context.Context, email, _, name, role string) (*domain.User, error) {
	return &domain.User{Email: email, Name: name, Role: role}, nil
}

func (f *fakeAuthService) Login(_ context.Context, _, _ string) (string, error) {
	return f.token, f.loginErr
}

type fakePurger struct {
	calls int
	err   error
}

func (f *fakePurger) Purge(_ context.Context) error {
	f.calls++
	return f.err
}

func TestAdminController_Login(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		loginErr     error
		wantStatus   int
		wantBodyCode string
	}{
		{name: "success", body: `{"email":"ed@conand.ad","password":"secret123"}`, wantStatus: http.StatusOK},
		{name: "missing password", body: `{"email":"ed@conand.ad"}`, wantStatus: http.StatusBadRequest, wantBodyCode: helpers.ErrCodeBadRequest},
		{name: "unknown field", body: `{"email":"ed@conand.ad","password":"x","role":"admin"}`, wantStatus: http.StatusBadRequest, wantBodyCode: helpers.ErrCodeBadRequest},
		{name: "invalid credentials", body: `{"email":"ed@conand.ad","password":"wrong"}`, loginErr: domain.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized, wantBodyCode: helpers.ErrCodeUnauthorized},
		{name: "store failure", body: `{"email":"ed@conand.ad","password":"secret123"}`, loginErr: assert.AnError, wantStatus: http.StatusInternalServerError, wantBodyCode: helpers.ErrCodeInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewAdminController(testLogger, &fakeAuthService{token: "jwt-token", loginErr: tt.loginErr}, &fakePurger{})
			req := httptest.NewRequest(http.MethodPost, "http://test/api/admin/login", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			ctrl.Login(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			envelope := decodeEnvelope(t, rr.Body)
			if tt.wantBodyCode != "" {
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantBodyCode, envelope.Error.Code)
				return
			}
			require.Nil(t, envelope.Error)
			raw, err := json.Marshal(envelope.Data)
			require.NoError(t, err)
			var resp LoginResponse
			require.NoError(t, json.Unmarshal(raw, &resp))
			assert.Equal(t, LoginResponse{Token: "jwt-token", TokenType: "Bearer"}, resp)
		})
	}
}

func TestAdminController_PurgeCache(t *testing.T) {
	tests := []struct {
		name         string
		claims       *domain.Claims
		purgeErr     error
		wantStatus   int
		wantBodyCode string
		wantCalls    int
	}{
		{name: "purged", claims: &domain.Claims{UserID: "u1", Roles: []string{domain.RoleEditor}}, wantStatus: http.StatusOK, wantCalls: 1},
		{name: "no claims", wantStatus: http.StatusUnauthorized, wantBodyCode: helpers.ErrCodeUnauthorized},
		{name: "purge failure", claims: &domain.Claims{UserID: "u1", Roles: []string{domain.RoleAdmin}}, purgeErr: assert.AnError, wantStatus: http.StatusInternalServerError, wantBodyCode: helpers.ErrCodeInternalError, wantCalls: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			purger := &fakePurger{err: tt.purgeErr}
			ctrl := NewAdminController(testLogger, &fakeAuthService{}, purger)
			req := httptest.NewRequest(http.MethodPost, "http://test/api/admin/cache/purge", nil)
			if tt.claims != nil {
				req = req.WithContext(middleware.SetClaims(req.Context(), tt.claims))
			}
			rr := httptest.NewRecorder()

			ctrl.PurgeCache(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantCalls, purger.calls)
			envelope := decodeEnvelope(t, rr.Body)
			if tt.wantBodyCode != "" {
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantBodyCode, envelope.Error.Code)
				return
			}
			assert.Equal(t, map[string]any{"purged": true}, envelope.Data)
		})
	}
}
