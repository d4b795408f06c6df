package middleware

import (
	"context"
	"net/http"

	"conandweb/internal/domain"
	"conandweb/internal/locale"
)

// WithLocale returns a context carrying the request locale.
func WithLocale(ctx context.Context, l domain.Locale) context.Context {
	return context.WithValue(ctx, localeKey, l)
}

// LocaleFromContext returns the request locale, or fallback when the request bypassed
// locale resolution.
func LocaleFromContext(ctx context.Context, fallback domain.Locale) domain.Locale {
	if l, ok := ctx.Value(localeKey).(domain.Locale); ok && l != "" {
		return l
	}
	return fallback
}

// Locale strips a locale prefix from the request path so routes match the canonical
// path, and stores the resolved locale in the request context. Ignored paths pass
// through untouched.
func Locale(resolver *locale.Resolver, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		res := resolver.Resolve(r.URL.Path)
		if res.Ignored {
			next.ServeHTTP(w, r)
			return
		}
		if res.Path != r.URL.Path {
			r = r.Clone(r.Context())
			r.URL.Path = res.Path
			r.URL.RawPath = ""
		}
		w.Header().Set("Content-Language", string(res.Locale))
		w.Header().Set("X-Locale", string(res.Locale))
		next.ServeHTTP(w, r.WithContext(WithLocale(r.Context(), res.Locale)))
	})
}
