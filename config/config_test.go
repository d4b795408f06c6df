package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conandweb/internal/domain"
)

func TestLoad_defaults(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	for _, k := range []string{"PORT", "CACHE_TTL", "LOCALES", "DEFAULT_LOCALE", "RECAPTCHA_MIN_SCORE", "SITE_NAME", "CONTACT_EMAIL", "EMAIL_PROVIDER", "JWT_SECRET"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, domain.LocaleCatalan, cfg.DefaultLocale)
	assert.Equal(t, domain.SupportedLocales, cfg.Locales)
	assert.Equal(t, 0.5, cfg.RecaptchaMinScore)
	assert.Equal(t, "CONAND", cfg.SiteName)
	assert.Equal(t, "info@conand.ad", cfg.ContactEmail)
	assert.Equal(t, "mailjet", cfg.EmailProvider)
	assert.NotEmpty(t, cfg.JWTSecret)
}

func TestLoad_overrides(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("LOCALES", " en, fr ")
	t.Setenv("DEFAULT_LOCALE", "en")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("RECAPTCHA_MIN_SCORE", "0.7")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []domain.Locale{domain.LocaleEnglish, domain.LocaleFrench}, cfg.Locales)
	assert.Equal(t, domain.LocaleEnglish, cfg.DefaultLocale)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 0.7, cfg.RecaptchaMinScore)
}

func TestLoad_invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"malformed locale", "LOCALES", "ca,not a tag"},
		{"locale without catalog", "LOCALES", "ca,de"},
		{"bad default locale", "DEFAULT_LOCALE", "zz-invalid-"},
		{"bad duration", "CACHE_TTL", "five minutes"},
		{"bad score", "RECAPTCHA_MIN_SCORE", "high"},
		{"bad bool", "SES_INSECURE_SKIP_VERIFY", "maybe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GO_ENV", "test")
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_productionRequiresJWTSecret(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}
