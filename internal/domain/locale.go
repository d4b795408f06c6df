package domain

// Locale is a content language code such as "ca" or "en".
type Locale string

// Supported locales. LocaleCatalan is the canonical locale and never appears as a path prefix.
const (
	LocaleCatalan Locale = "ca"
	LocaleSpanish Locale = "es"
	LocaleEnglish Locale = "en"
	LocaleFrench  Locale = "fr"
)

// DefaultLocale is used whenever no other locale was resolved for a request.
const DefaultLocale = LocaleCatalan

// SupportedLocales lists every locale in display order (language switcher order).
var SupportedLocales = []Locale{LocaleCatalan, LocaleSpanish, LocaleEnglish, LocaleFrench}

// String implements fmt.Stringer.
func (l Locale) String() string { return string(l) }

// IsSupported reports whether l is one of SupportedLocales.
func (l Locale) IsSupported() bool {
	for _, s := range SupportedLocales {
		if s == l {
			return true
		}
	}
	return false
}

// ParseLocale returns the locale for code, or DefaultLocale when code is not supported.
func ParseLocale(code string) Locale {
	l := Locale(code)
	if l.IsSupported() {
		return l
	}
	return DefaultLocale
}
