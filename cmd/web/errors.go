package main

import (
	"net/http"
	"strings"

	handlersPkg "github.com/mpodlasin/mpodlasin-website/internal/handlers"
	mw "github.com/mpodlasin/mpodlasin-website/internal/middleware"
	"github.com/mpodlasin/mpodlasin-website/internal/seo"
)

// NotFoundHandler answers unknown routes and missing articles.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	renderError(w, r, http.StatusNotFound, "")
}

// renderError writes the JSON envelope for API and htmx callers and the error page otherwise.
func renderError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	lang := mw.Lang(r)
	if msg == "" {
		msg = i18nOrDefault(lang, errorKey(status), http.StatusText(status))
	}
	if mw.WantsJSON(r) || isHTMX(r) {
		code := strings.ReplaceAll(strings.ToLower(http.StatusText(status)), " ", "_")
		mw.WriteJSONError(w, r, status, code, msg)
		return
	}
	vm := newPageData(r, "")
	vm.Error = &handlersPkg.ErrorView{Status: status, Message: msg}
	vm.SEO = seo.Meta{Title: profile.Title(msg), Robots: "noindex"}
	vm.Title = vm.SEO.Title
	renderPageStatus(w, r, status, "error", vm)
}

func errorKey(status int) string {
	switch status {
	case http.StatusNotFound:
		return "error.not_found"
	case http.StatusMethodNotAllowed:
		return "error.method_not_allowed"
	default:
		return "error.internal"
	}
}
