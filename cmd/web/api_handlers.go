package main

import (
	"encoding/json"
	"net/http"

	"github.com/mpodlasin/mpodlasin-website/internal/catalog"
	handlersPkg "github.com/mpodlasin/mpodlasin-website/internal/handlers"
)

type apiTag struct {
	Name    string `json:"name"`
	Count   int    `json:"count"`
	Enabled bool   `json:"enabled"`
	// Toggle is the query string of the state with this tag flipped.
	Toggle string `json:"toggle"`
}

type apiLink struct {
	Kind string `json:"kind"`
	URL  string `json:"url"`
}

type apiArticle struct {
	Title string    `json:"title"`
	Slug  string    `json:"slug,omitempty"`
	Links []apiLink `json:"links"`
	Tags  []string  `json:"tags"`
}

type apiArticles struct {
	Enabled  []string     `json:"enabled"`
	Tags     []apiTag     `json:"tags"`
	Articles []apiArticle `json:"articles"`
}

// ArticlesAPIHandler serves the tag index and filtered view as JSON.
func ArticlesAPIHandler(w http.ResponseWriter, r *http.Request) {
	ctrl := articlesController(r)
	state := ctrl.State()

	resp := apiArticles{
		Enabled:  state.EnabledTags(),
		Tags:     []apiTag{},
		Articles: []apiArticle{},
	}
	for _, o := range ctrl.Options() {
		resp.Tags = append(resp.Tags, apiTag{
			Name:    o.Name,
			Count:   o.Count,
			Enabled: o.Enabled,
			Toggle:  o.Toggled.Query(),
		})
	}
	view := ctrl.View()
	for _, a := range view {
		resp.Articles = append(resp.Articles, toAPIArticle(a))
	}
	observeView(r.Context(), ctrl, len(view))

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Link", "<"+handlersPkg.FilterHref(state)+`>; rel="alternate"; type="text/html"`)
	_ = json.NewEncoder(w).Encode(resp)
}

func toAPIArticle(a *catalog.Article) apiArticle {
	out := apiArticle{
		Title: a.Title,
		Slug:  a.Slug,
		Links: []apiLink{},
		Tags:  append([]string{}, a.Tags...),
	}
	for _, l := range a.OrderedLinks() {
		out.Links = append(out.Links, apiLink{Kind: string(l.Kind), URL: l.URL})
	}
	return out
}
