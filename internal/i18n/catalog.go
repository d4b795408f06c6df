// Package i18n holds the bundled UI message catalogs and locale-aware date formatting.
package i18n

import (
	"embed"
	"fmt"
	"path"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"conandweb/internal/domain"
)

//go:embed messages/*.yaml
var messagesFS embed.FS

// DateStyle selects a date rendering.
type DateStyle int

const (
	// DateLong renders weekday, day, month and year ("dimecres, 15 d’octubre de 2025").
	DateLong DateStyle = iota
	// DateShort renders day, abbreviated month and year ("15 oct. 2025").
	DateShort
)

// Catalog is an immutable set of flattened message dictionaries, one per locale.
// Lookups fall back to the default locale and then to the key itself.
type Catalog struct {
	defaultLocale domain.Locale
	messages      map[domain.Locale]map[string]string
}

// NewCatalog returns a Catalog over already-flattened messages.
func NewCatalog(defaultLocale domain.Locale, messages map[domain.Locale]map[string]string) *Catalog {
	if messages == nil {
		messages = make(map[domain.Locale]map[string]string)
	}
	return &Catalog{defaultLocale: defaultLocale, messages: messages}
}

// Load parses the embedded catalogs for locales. Every locale must have a messages file.
func Load(defaultLocale domain.Locale, locales []domain.Locale) (*Catalog, error) {
	messages := make(map[domain.Locale]map[string]string, len(locales))
	for _, l := range append([]domain.Locale{defaultLocale}, locales...) {
		if _, done := messages[l]; done {
			continue
		}
		raw, err := messagesFS.ReadFile(path.Join("messages", string(l)+".yaml"))
		if err != nil {
			return nil, fmt.Errorf("catalog %s: %w", l, err)
		}
		var tree domain.Translations
		if err := yaml.Unmarshal(raw, &tree); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", l, err)
		}
		messages[l] = tree.Flatten()
	}
	return NewCatalog(defaultLocale, messages), nil
}

// DefaultLocale returns the fallback locale.
func (c *Catalog) DefaultLocale() domain.Locale {
	return c.defaultLocale
}

// T returns the message for key in locale.
func (c *Catalog) T(locale domain.Locale, key string) string {
	if v, ok := c.lookup(locale, key); ok {
		return v
	}
	return key
}

func (c *Catalog) lookup(locale domain.Locale, key string) (string, bool) {
	if v, ok := c.messages[locale][key]; ok {
		return v, true
	}
	if locale != c.defaultLocale {
		if v, ok := c.messages[c.defaultLocale][key]; ok {
			return v, true
		}
	}
	return "", false
}

// Localizer returns a Localizer bound to locale. overlay holds CMS-edited translations
// for that locale and takes precedence over the bundled messages; it may be nil.
func (c *Catalog) Localizer(locale domain.Locale, overlay domain.Translations) *Localizer {
	l := &Localizer{catalog: c, locale: locale}
	if len(overlay) > 0 {
		l.overlay = overlay.Flatten()
	}
	return l
}

// Localizer translates keys and formats dates for one locale.
type Localizer struct {
	catalog *Catalog
	locale  domain.Locale
	overlay map[string]string
}

// Locale returns the bound locale.
func (l *Localizer) Locale() domain.Locale {
	return l.locale
}

// T returns the message for key: the CMS overlay first, then the bundled catalog.
func (l *Localizer) T(key string) string {
	if v, ok := l.overlay[key]; ok {
		return v
	}
	return l.catalog.T(l.locale, key)
}

// FormatDate renders t in the bound locale. The pattern and names come from the
// catalog keys date.long / date.short, date.months.N, date.monthsOf.N,
// date.monthsShort.N and date.weekdays.N (0 = Sunday).
func (l *Localizer) FormatDate(t time.Time, style DateStyle) string {
	if t.IsZero() {
		return ""
	}
	pattern := "date.long"
	if style == DateShort {
		pattern = "date.short"
	}
	month := int(t.Month())
	r := strings.NewReplacer(
		"{weekday}", l.catalog.T(l.locale, fmt.Sprintf("date.weekdays.%d", int(t.Weekday()))),
		"{day}", fmt.Sprintf("%d", t.Day()),
		"{monthOf}", l.catalog.T(l.locale, fmt.Sprintf("date.monthsOf.%d", month)),
		"{monthShort}", l.catalog.T(l.locale, fmt.Sprintf("date.monthsShort.%d", month)),
		"{month}", l.catalog.T(l.locale, fmt.Sprintf("date.months.%d", month)),
		"{year}", fmt.Sprintf("%d", t.Year()),
	)
	return r.Replace(l.catalog.T(l.locale, pattern))
}
