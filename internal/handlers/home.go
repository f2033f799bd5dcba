package handlers

import (
	"github.com/mpodlasin/mpodlasin-website/internal/seo"
	"github.com/mpodlasin/mpodlasin-website/internal/site"
)

// HomeView is the view model for the landing page.
type HomeView struct {
	Author   string
	Avatar   string
	Email    string
	Sections []site.Section
}

// BuildHomeView constructs the landing page from the profile.
func BuildHomeView(p site.Profile) *HomeView {
	return &HomeView{
		Author:   p.Author,
		Avatar:   p.Avatar,
		Email:    p.Email,
		Sections: p.Sections,
	}
}

// HomeSEO describes the landing page. baseURL is the absolute site root.
func HomeSEO(p site.Profile, baseURL string) seo.Meta {
	title := p.Title()
	desc := p.Author + " writes about " + p.Heading
	sameAs := []string{}
	for _, s := range []string{p.Twitter, p.Instagram} {
		if s != "" {
			sameAs = append(sameAs, s)
		}
	}
	return seo.Meta{
		Title:       title,
		Description: desc,
		Canonical:   baseURL + "/",
		OG: seo.OpenGraph{
			Title:       title,
			Description: desc,
			Image:       baseURL + p.Avatar,
			Type:        "profile",
			URL:         baseURL + "/",
			SiteName:    p.Author,
		},
		Twitter: seo.Twitter{Card: "summary"},
		JSONLD: []any{
			seo.WebSite(p.Author, baseURL+"/"),
			seo.Person(p.Author, baseURL+"/", p.Email, sameAs...),
		},
	}
}
