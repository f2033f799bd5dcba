package handlers

import (
	"strings"

	"github.com/mpodlasin/mpodlasin-website/internal/catalog"
	"github.com/mpodlasin/mpodlasin-website/internal/content"
	"github.com/mpodlasin/mpodlasin-website/internal/format"
	"github.com/mpodlasin/mpodlasin-website/internal/seo"
	"github.com/mpodlasin/mpodlasin-website/internal/site"
)

// ArticlesPath is where the articles index is served.
const ArticlesPath = "/articles"

// TagControl is one checkbox of the tag filter.
type TagControl struct {
	Name    string
	Count   int
	Enabled bool
	// Href applies the toggled state.
	Href string
}

// TagChip is a tag shown on an article row; following it enables the tag.
type TagChip struct {
	Name    string
	Enabled bool
	Href    string
}

// ArticleItem is one row of the filtered list.
type ArticleItem struct {
	Title string
	Slug  string
	Links []catalog.Link
	Tags  []TagChip
}

// ArticlesView is the view model for the articles index and its list fragment.
type ArticlesView struct {
	Heading  string
	Tags     []TagControl
	Articles []ArticleItem
	Enabled  []string
	// Unknown lists enabled tags no article carries; each Href disables one.
	Unknown []TagChip
	// Self is the canonical URL of the current filter state; ResetHref clears it.
	Self      string
	ResetHref string
	Total     int
}

// Filtered reports whether any tag is enabled.
func (v *ArticlesView) Filtered() bool { return len(v.Enabled) > 0 }

// Empty reports whether the filtered list has no rows.
func (v *ArticlesView) Empty() bool { return len(v.Articles) == 0 }

// FilterHref renders the articles URL for a filter state.
func FilterHref(state catalog.FilterState) string {
	if q := state.Query(); q != "" {
		return ArticlesPath + "?" + q
	}
	return ArticlesPath
}

// BuildArticlesView renders the controller's current state.
func BuildArticlesView(ctrl *catalog.Controller, heading string) *ArticlesView {
	state := ctrl.State()
	options := ctrl.Options()
	tags := make([]TagControl, 0, len(options))
	for _, o := range options {
		tags = append(tags, TagControl{
			Name:    o.Name,
			Count:   o.Count,
			Enabled: o.Enabled,
			Href:    FilterHref(o.Toggled),
		})
	}

	var unknown []TagChip
	index := ctrl.Store().Tags()
	for _, t := range state.EnabledTags() {
		if !index.Has(t) {
			unknown = append(unknown, TagChip{Name: t, Enabled: true, Href: FilterHref(state.Set(t, false))})
		}
	}

	view := ctrl.View()
	items := make([]ArticleItem, 0, len(view))
	for _, a := range view {
		chips := make([]TagChip, 0, len(a.Tags))
		for _, t := range a.Tags {
			chips = append(chips, TagChip{
				Name:    t,
				Enabled: state.Enabled(t),
				Href:    FilterHref(state.Set(t, true)),
			})
		}
		items = append(items, ArticleItem{
			Title: a.Title,
			Slug:  a.Slug,
			Links: a.OrderedLinks(),
			Tags:  chips,
		})
	}

	return &ArticlesView{
		Heading:   heading,
		Tags:      tags,
		Articles:  items,
		Enabled:   state.EnabledTags(),
		Unknown:   unknown,
		Self:      FilterHref(state),
		ResetHref: ArticlesPath,
		Total:     ctrl.Store().Len(),
	}
}

// ArticlesSEO describes the index. Filtered variants point their canonical at
// the unfiltered list and are kept out of the index.
func ArticlesSEO(p site.Profile, v *ArticlesView, baseURL string) seo.Meta {
	title := p.Title(p.Heading)
	desc := format.Plural(v.Total, "article", "articles") + " by " + p.Author
	urls := make([]string, 0, len(v.Articles))
	for _, a := range v.Articles {
		for _, l := range a.Links {
			urls = append(urls, absolute(baseURL, l.URL))
			break
		}
	}
	meta := seo.Meta{
		Title:       title,
		Description: desc,
		Canonical:   baseURL + ArticlesPath,
		OG: seo.OpenGraph{
			Title:       title,
			Description: desc,
			Type:        "website",
			URL:         baseURL + ArticlesPath,
			SiteName:    p.Author,
		},
		Twitter: seo.Twitter{Card: "summary"},
		JSONLD:  []any{seo.ItemList(urls)},
	}
	if v.Filtered() {
		meta.Robots = "noindex, follow"
	}
	return meta
}

// ArticleView is the view model for a single markdown article.
type ArticleView struct {
	Page        content.Page
	PublishedOn string
	ISODate     string
	// Links lists where else the article is published, when the store knows it.
	Links []catalog.Link
	Tags  []TagChip
}

// BuildArticleView combines the rendered page with its store entry, if any.
func BuildArticleView(page content.Page, entry *catalog.Article) *ArticleView {
	v := &ArticleView{
		Page:        page,
		PublishedOn: format.FmtDate(page.Date),
		ISODate:     format.ISODate(page.Date),
	}
	tags := page.Tags
	if entry != nil {
		for _, l := range entry.OrderedLinks() {
			if l.Kind != catalog.LinkHere {
				v.Links = append(v.Links, l)
			}
		}
		if len(tags) == 0 {
			tags = entry.Tags
		}
	}
	for _, t := range tags {
		v.Tags = append(v.Tags, TagChip{Name: t, Href: FilterHref(catalog.NewFilterState(t))})
	}
	return v
}

// ArticleSEO describes an article page.
func ArticleSEO(p site.Profile, v *ArticleView, baseURL string) seo.Meta {
	title := p.Title(v.Page.FullTitle())
	url := baseURL + ArticlesPath + "/" + v.Page.Slug
	desc := seo.Description(string(v.Page.HTML), 160)
	return seo.Meta{
		Title:       title,
		Description: desc,
		Canonical:   url,
		OG: seo.OpenGraph{
			Title:       v.Page.FullTitle(),
			Description: desc,
			Type:        "article",
			URL:         url,
			SiteName:    p.Author,
		},
		Twitter: seo.Twitter{Card: "summary"},
		JSONLD: []any{
			seo.Article(v.Page.FullTitle(), url, p.Author, v.ISODate, v.Page.Tags),
			seo.BreadcrumbList([]seo.BreadcrumbItem{
				{Name: "home", Item: baseURL + "/"},
				{Name: "articles", Item: baseURL + ArticlesPath},
				{Name: v.Page.Title, Item: url},
			}),
		},
	}
}

func absolute(baseURL, href string) string {
	if strings.HasPrefix(href, "/") {
		return baseURL + href
	}
	return href
}
