package main

import (
	"net/http"

	handlersPkg "github.com/mpodlasin/mpodlasin-website/internal/handlers"
	mw "github.com/mpodlasin/mpodlasin-website/internal/middleware"
	"github.com/mpodlasin/mpodlasin-website/internal/nav"
)

// newPageData fills the layout fields shared by every page.
func newPageData(r *http.Request, leaf string) handlersPkg.PageData {
	items := nav.Main(profile.Twitter)
	return handlersPkg.PageData{
		Lang:        mw.Lang(r),
		Path:        r.URL.Path,
		Nav:         nav.Build(items, r.URL.Path),
		Breadcrumbs: nav.Breadcrumbs(items, r.URL.Path, leaf),
		Analytics:   analytics,
		Profile:     profile,
	}
}

// HomeHandler renders the landing page.
func HomeHandler(w http.ResponseWriter, r *http.Request) {
	vm := newPageData(r, "")
	vm.Home = handlersPkg.BuildHomeView(profile)
	vm.SEO = handlersPkg.HomeSEO(profile, baseURLFor(r))
	vm.Title = vm.SEO.Title
	renderPage(w, r, "home", vm)
}
