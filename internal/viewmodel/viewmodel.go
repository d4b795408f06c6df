// Package viewmodel shapes repository results into render-ready page structures.
// Every function here is pure: no I/O, no clocks, no randomness.
package viewmodel

import (
	"time"

	"conandweb/internal/domain"
	"conandweb/internal/i18n"
	"conandweb/internal/locale"
)

// Translator provides UI strings and date formatting for one locale.
type Translator interface {
	Locale() domain.Locale
	T(key string) string
	FormatDate(t time.Time, style i18n.DateStyle) string
}

// Linker builds locale-prefixed public paths.
type Linker interface {
	Prefix(l domain.Locale, canonical string) string
	Alternates(canonical string) []locale.Alternate
}

// Button is a labelled call to action.
type Button struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}
