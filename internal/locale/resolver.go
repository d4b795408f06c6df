// Package locale maps request paths to a content locale and a canonical, locale-agnostic
// path. The default locale never appears as a path prefix; every other locale does.
package locale

import (
	"strings"

	"conandweb/internal/domain"
)

// DefaultIgnorePrefixes are path prefixes that bypass locale processing: static assets,
// API routes, the admin surface and tooling endpoints. Matching is a plain string prefix test.
var DefaultIgnorePrefixes = []string{"/api", "/admin", "/img", "/media", "/static", "/favicon", "/swagger", "/healthz"}

// Resolution is the outcome of resolving one request path.
type Resolution struct {
	// Locale is the effective locale. Empty when Ignored is true.
	Locale domain.Locale
	// Path is the canonical path to route. Equal to the input when no prefix was stripped.
	Path string
	// Ignored is true when the path matched an ignore prefix and was left untouched.
	Ignored bool
}

// Alternate is the localized path of a page for one locale.
type Alternate struct {
	Locale domain.Locale `json:"locale"`
	Path   string        `json:"path"`
}

// Resolver resolves request paths. It is immutable and safe for concurrent use.
type Resolver struct {
	defaultLocale domain.Locale
	locales       []domain.Locale
	prefixed      []domain.Locale
	ignore        []string
}

// NewResolver returns a Resolver for locales with defaultLocale as the unprefixed locale.
// The default locale is excluded from the prefixed set even if listed in locales.
func NewResolver(defaultLocale domain.Locale, locales []domain.Locale, ignorePrefixes []string) *Resolver {
	r := &Resolver{
		defaultLocale: defaultLocale,
		locales:       []domain.Locale{defaultLocale},
		ignore:        append([]string(nil), ignorePrefixes...),
	}
	for _, l := range locales {
		if l == defaultLocale || l == "" || contains(r.prefixed, l) {
			continue
		}
		r.prefixed = append(r.prefixed, l)
		r.locales = append(r.locales, l)
	}
	return r
}

// Default returns the unprefixed locale.
func (r *Resolver) Default() domain.Locale {
	return r.defaultLocale
}

// Locales returns every locale, default first.
func (r *Resolver) Locales() []domain.Locale {
	return append([]domain.Locale(nil), r.locales...)
}

// Resolve maps path to a locale and canonical path. It never fails: paths without a
// known prefix resolve to the default locale unchanged.
func (r *Resolver) Resolve(path string) Resolution {
	for _, p := range r.ignore {
		if strings.HasPrefix(path, p) {
			return Resolution{Path: path, Ignored: true}
		}
	}
	for _, l := range r.prefixed {
		prefix := "/" + string(l)
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			canonical := strings.TrimPrefix(path, prefix)
			if canonical == "" {
				canonical = "/"
			}
			return Resolution{Locale: l, Path: canonical}
		}
	}
	return Resolution{Locale: r.defaultLocale, Path: path}
}

// Prefix returns the public path of canonical for locale l. The default locale and
// unknown locales leave canonical unchanged.
func (r *Resolver) Prefix(l domain.Locale, canonical string) string {
	if canonical == "" {
		canonical = "/"
	}
	if !strings.HasPrefix(canonical, "/") {
		canonical = "/" + canonical
	}
	if l == r.defaultLocale || !contains(r.prefixed, l) {
		return canonical
	}
	if canonical == "/" {
		return "/" + string(l)
	}
	return "/" + string(l) + canonical
}

// Alternates returns the public path of canonical for every locale, default first.
func (r *Resolver) Alternates(canonical string) []Alternate {
	out := make([]Alternate, 0, len(r.locales))
	for _, l := range r.locales {
		out = append(out, Alternate{Locale: l, Path: r.Prefix(l, canonical)})
	}
	return out
}

// Supports reports whether l is the default or a prefixed locale.
func (r *Resolver) Supports(l domain.Locale) bool {
	return l == r.defaultLocale || contains(r.prefixed, l)
}

func contains(list []domain.Locale, l domain.Locale) bool {
	for _, v := range list {
		if v == l {
			return true
		}
	}
	return false
}
