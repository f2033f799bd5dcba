package middleware

import (
	"net/http"
)

// HTMX marks requests coming from htmx so handlers can answer with fragments.
// Boosted navigations still get the full page.
func HTMX(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is := r.Header.Get("HX-Request") == "true" && r.Header.Get("HX-Boosted") != "true"
		w.Header().Add("Vary", "HX-Request")
		ctx := WithHTMX(r.Context(), is)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// PushURL tells htmx to update the browser location after a fragment swap.
func PushURL(w http.ResponseWriter, url string) {
	w.Header().Set("HX-Push-Url", url)
}
