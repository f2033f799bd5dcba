package handlers

import (
	"github.com/mpodlasin/mpodlasin-website/internal/nav"
	"github.com/mpodlasin/mpodlasin-website/internal/seo"
	"github.com/mpodlasin/mpodlasin-website/internal/site"
)

// PageData is the view model every page template receives through the shared layout.
type PageData struct {
	Title     string
	Lang      string
	SEO       seo.Meta
	Analytics Analytics
	Profile   site.Profile

	Path        string
	Nav         []nav.RenderedItem
	Breadcrumbs []nav.Crumb

	// Optional per-page view model payloads
	Home     *HomeView
	Articles *ArticlesView
	Article  *ArticleView
	Error    *ErrorView
}

// ErrorView backs the shared error page.
type ErrorView struct {
	Status  int
	Message string
}
