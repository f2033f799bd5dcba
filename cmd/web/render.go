package main

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mpodlasin/mpodlasin-website/internal/format"
	mw "github.com/mpodlasin/mpodlasin-website/internal/middleware"
	"github.com/mpodlasin/mpodlasin-website/internal/observability"
	"github.com/mpodlasin/mpodlasin-website/internal/seo"
)

// templateSet holds one clone of the shared layout per page, so every page can
// define its own "content" block.
type templateSet struct {
	shared *template.Template
	pages  map[string]*template.Template
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"now":     time.Now,
		"t":       translate,
		"fmtDate": format.FmtDate,
		"isoDate": format.ISODate,
		"plural":  format.Plural,
		"jsonld":  seo.Script,
	}
}

// parseTemplates reads layouts and partials into a shared set, then clones it
// once per file under pages/.
func parseTemplates() (*templateSet, error) {
	var sharedFiles, pageFiles []string
	if err := filepath.WalkDir(templatesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".tmpl") {
			return nil
		}
		rel, _ := filepath.Rel(templatesDir, path)
		if strings.HasPrefix(filepath.ToSlash(rel), "pages/") {
			pageFiles = append(pageFiles, path)
		} else {
			sharedFiles = append(sharedFiles, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(sharedFiles) == 0 || len(pageFiles) == 0 {
		return nil, fmt.Errorf("no templates found under %s", templatesDir)
	}

	shared, err := template.New("_root").Funcs(templateFuncs()).ParseFiles(sharedFiles...)
	if err != nil {
		return nil, err
	}
	set := &templateSet{shared: shared, pages: map[string]*template.Template{}}
	for _, file := range pageFiles {
		clone, err := shared.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := clone.ParseFiles(file); err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		set.pages[strings.TrimSuffix(filepath.Base(file), ".tmpl")] = clone
	}
	return set, nil
}

// templates returns the cached set, or a fresh parse in dev mode.
func templates() (*templateSet, error) {
	if devMode {
		return parseTemplates()
	}
	if tmplCache == nil {
		return nil, fmt.Errorf("templates not initialized")
	}
	return tmplCache, nil
}

// renderPage executes the base layout with the named page's content block.
func renderPage(w http.ResponseWriter, r *http.Request, page string, data any) {
	renderPageStatus(w, r, http.StatusOK, page, data)
}

func renderPageStatus(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	set, err := templates()
	if err != nil {
		templateFailure(w, r, err)
		return
	}
	t, ok := set.pages[page]
	if !ok {
		templateFailure(w, r, fmt.Errorf("unknown page template %q", page))
		return
	}
	execute(w, r, status, t, "base", data)
}

// renderTemplate executes a single named template (htmx fragments).
func renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	set, err := templates()
	if err != nil {
		templateFailure(w, r, err)
		return
	}
	execute(w, r, http.StatusOK, set.shared, name, data)
}

// execute buffers the output so a failing template never leaves a half-written page.
func execute(w http.ResponseWriter, r *http.Request, status int, t *template.Template, name string, data any) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		templateFailure(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func templateFailure(w http.ResponseWriter, r *http.Request, err error) {
	observability.FromContext(r.Context()).Error("template render failed", zap.Error(err))
	http.Error(w, "template error", http.StatusInternalServerError)
}

func translate(lang, key string) string {
	if i18nBundle == nil {
		return key
	}
	return i18nBundle.T(lang, key)
}

// i18nOrDefault translates key, returning fallback when no locale defines it.
func i18nOrDefault(lang, key, fallback string) string {
	if v := translate(lang, key); v != key {
		return v
	}
	return fallback
}

// baseURLFor returns the configured public origin, or one derived from the request.
func baseURLFor(r *http.Request) string {
	if siteBaseURL != "" {
		return siteBaseURL
	}
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

// isHTMX reports whether the request asked for a fragment.
func isHTMX(r *http.Request) bool { return mw.IsHTMX(r.Context()) }
