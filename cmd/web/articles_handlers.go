package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mpodlasin/mpodlasin-website/internal/catalog"
	"github.com/mpodlasin/mpodlasin-website/internal/content"
	handlersPkg "github.com/mpodlasin/mpodlasin-website/internal/handlers"
	mw "github.com/mpodlasin/mpodlasin-website/internal/middleware"
	"github.com/mpodlasin/mpodlasin-website/internal/observability"
)

const toggleParam = "toggle"

// articlesController starts a page view over the current store with the filter
// state carried by the query string.
func articlesController(r *http.Request) *catalog.Controller {
	ctrl := catalog.NewController(currentStore(), catalog.ParseFilterState(r.URL.Query()))
	// ?toggle=<tag> flips one tag on top of the carried state.
	toggles := r.URL.Query()[toggleParam]
	if len(toggles) == 0 {
		return ctrl
	}
	logger := observability.FromContext(r.Context())
	unsubscribe := ctrl.Subscribe(func(s catalog.FilterState) {
		logger.Debug("filter toggled", zap.Strings("tags", observability.SanitizeTags(s.EnabledTags())))
	})
	defer unsubscribe()
	for _, tag := range toggles {
		ctrl.Toggle(tag)
	}
	return ctrl
}

func observeView(ctx context.Context, ctrl *catalog.Controller, results int) {
	state := ctrl.State()
	observability.ObserveFilter(state.Len(), results)
	observability.FromContext(ctx).Debug("articles filtered",
		zap.Strings("tags", observability.SanitizeTags(state.EnabledTags())),
		zap.Int("results", results),
	)
}

// ArticlesHandler renders the articles index, or only the list for htmx requests.
func ArticlesHandler(w http.ResponseWriter, r *http.Request) {
	ctrl := articlesController(r)
	heading := profile.Heading
	if heading == "" {
		heading = translate(mw.Lang(r), "articles.heading")
	}
	view := handlersPkg.BuildArticlesView(ctrl, heading)
	observeView(r.Context(), ctrl, len(view.Articles))

	vm := newPageData(r, "")
	vm.Articles = view
	vm.SEO = handlersPkg.ArticlesSEO(profile, view, baseURLFor(r))
	vm.Title = vm.SEO.Title

	if isHTMX(r) {
		mw.PushURL(w, view.Self)
		renderTemplate(w, r, "frag_article_list", vm)
		return
	}
	renderPage(w, r, "articles", vm)
}

// ArticleHandler renders a markdown article.
func ArticleHandler(w http.ResponseWriter, r *http.Request) {
	slug := content.SanitizeSlug(chi.URLParam(r, "slug"))
	if slug == "" {
		NotFoundHandler(w, r)
		return
	}
	page, err := library.Page(r.Context(), slug)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			NotFoundHandler(w, r)
			return
		}
		observability.FromContext(r.Context()).Error("article render failed", zap.String("slug", slug), zap.Error(err))
		renderError(w, r, http.StatusInternalServerError, "")
		return
	}
	entry, _ := currentStore().BySlug(slug)
	view := handlersPkg.BuildArticleView(page, entry)

	vm := newPageData(r, page.Title)
	vm.Article = view
	vm.SEO = handlersPkg.ArticleSEO(profile, view, baseURLFor(r))
	vm.Title = vm.SEO.Title
	renderPage(w, r, "article", vm)
}
