package viewmodel

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"conandweb/internal/domain"
	"conandweb/internal/i18n"
	"conandweb/internal/locale"
)

func testCatalog(t *testing.T) *i18n.Catalog {
	t.Helper()
	c, err := i18n.Load(domain.LocaleCatalan, domain.SupportedLocales)
	require.NoError(t, err)
	return c
}

func testTranslator(t *testing.T, l domain.Locale) Translator {
	return testCatalog(t).Localizer(l, nil)
}

func testLinks() Linker {
	return locale.NewResolver(domain.LocaleCatalan, domain.SupportedLocales, locale.DefaultIgnorePrefixes)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func richText(t *testing.T, raw string) domain.RichText {
	t.Helper()
	var rt domain.RichText
	require.NoError(t, json.Unmarshal([]byte(raw), &rt))
	return rt
}
