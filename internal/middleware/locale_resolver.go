package middleware

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"github.com/mpodlasin/mpodlasin-website/internal/i18n"
)

// LangCookie persists an explicit ?hl= choice.
const LangCookie = "hl"

// Locale resolves the UI language from ?hl=, the hl cookie, then Accept-Language.
// Values outside the bundle's supported set are ignored.
func Locale(bundle *i18n.Bundle) func(http.Handler) http.Handler {
	supported := bundle.Supported()
	known := func(l string) bool { return slices.Contains(supported, l) }
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), ctxKeyLocaleFB, bundle.Fallback())
			lang := ""
			if q := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("hl"))); q != "" && known(q) {
				lang = q
				http.SetCookie(w, &http.Cookie{Name: LangCookie, Value: q, Path: "/", SameSite: http.SameSiteLaxMode})
			} else if c, err := r.Cookie(LangCookie); err == nil && known(strings.ToLower(c.Value)) {
				lang = strings.ToLower(c.Value)
			} else {
				lang = bundle.Resolve(r.Header.Get("Accept-Language"))
			}
			w.Header().Set("Content-Language", lang)
			next.ServeHTTP(w, r.WithContext(WithLang(ctx, lang)))
		})
	}
}

// Lang returns the resolved language, the bundle fallback, or "en".
func Lang(r *http.Request) string {
	if v, ok := r.Context().Value(ctxKeyLang).(string); ok && v != "" {
		return v
	}
	if v, ok := r.Context().Value(ctxKeyLocaleFB).(string); ok && v != "" {
		return v
	}
	return "en"
}
