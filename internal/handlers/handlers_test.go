package handlers

import (
	"html/template"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mpodlasin/mpodlasin-website/internal/catalog"
	"github.com/mpodlasin/mpodlasin-website/internal/content"
	"github.com/mpodlasin/mpodlasin-website/internal/site"
)

func testStore() *catalog.Store {
	return catalog.NewStore([]catalog.Article{
		{Title: "first", Links: catalog.Links{catalog.LinkDevTo: "https://dev.to/first"}, Tags: []string{"x"}},
		{Title: "second", Links: catalog.Links{catalog.LinkMedium: "https://medium.com/second"}, Tags: []string{"y"}},
		{Title: "third", Slug: "third", Tags: []string{"x", "y"}},
	})
}

func titles(v *ArticlesView) []string {
	out := make([]string, 0, len(v.Articles))
	for _, a := range v.Articles {
		out = append(out, a.Title)
	}
	return out
}

func TestBuildArticlesViewUnfiltered(t *testing.T) {
	ctrl := catalog.NewController(testStore(), catalog.FilterState{})
	v := BuildArticlesView(ctrl, "Articles")

	require.Equal(t, []string{"first", "second", "third"}, titles(v))
	require.False(t, v.Filtered())
	require.Equal(t, "/articles", v.Self)
	require.Equal(t, 3, v.Total)
	require.Equal(t, []TagControl{
		{Name: "x", Count: 2, Enabled: false, Href: "/articles?tag=x"},
		{Name: "y", Count: 2, Enabled: false, Href: "/articles?tag=y"},
	}, v.Tags)
}

func TestBuildArticlesViewConjunction(t *testing.T) {
	ctrl := catalog.NewController(testStore(), catalog.NewFilterState("x"))
	v := BuildArticlesView(ctrl, "")
	require.Equal(t, []string{"first", "third"}, titles(v))
	require.Equal(t, "/articles?tag=x", v.Self)
	require.Equal(t, "/articles", v.Tags[0].Href, "toggling x again clears the filter")
	require.Equal(t, "/articles?tag=x&tag=y", v.Tags[1].Href)

	ctrl.Toggle("y")
	v = BuildArticlesView(ctrl, "")
	require.Equal(t, []string{"third"}, titles(v))
	require.Equal(t, []string{"x", "y"}, v.Enabled)
}

func TestBuildArticlesViewListsUnknownTags(t *testing.T) {
	ctrl := catalog.NewController(testStore(), catalog.NewFilterState("nope", "x"))
	v := BuildArticlesView(ctrl, "")
	require.Empty(t, v.Articles)
	require.Equal(t, []TagChip{{Name: "nope", Enabled: true, Href: "/articles?tag=x"}}, v.Unknown)

	v = BuildArticlesView(catalog.NewController(testStore(), catalog.NewFilterState("x")), "")
	require.Empty(t, v.Unknown)
}

func TestArticleChipsEnableTag(t *testing.T) {
	ctrl := catalog.NewController(testStore(), catalog.NewFilterState("x"))
	v := BuildArticlesView(ctrl, "")
	third := v.Articles[1]
	require.Equal(t, "third", third.Title)
	require.Equal(t, []TagChip{
		{Name: "x", Enabled: true, Href: "/articles?tag=x"},
		{Name: "y", Enabled: false, Href: "/articles?tag=x&tag=y"},
	}, third.Tags)
	require.Equal(t, "/articles/third", third.Links[0].URL)
	require.False(t, third.Links[0].External)
}

func TestArticlesSEONoindexWhenFiltered(t *testing.T) {
	p := site.Default()
	ctrl := catalog.NewController(testStore(), catalog.FilterState{})
	meta := ArticlesSEO(p, BuildArticlesView(ctrl, p.Heading), "https://example.com")
	require.Empty(t, meta.Robots)
	require.Equal(t, "https://example.com/articles", meta.Canonical)
	require.Equal(t, "Mateusz Podlasin - "+p.Heading, meta.Title)

	ctrl.Toggle("x")
	meta = ArticlesSEO(p, BuildArticlesView(ctrl, p.Heading), "https://example.com")
	require.Equal(t, "noindex, follow", meta.Robots)
	require.Equal(t, "https://example.com/articles", meta.Canonical)
}

func TestBuildArticleView(t *testing.T) {
	store := catalog.NewStore([]catalog.Article{{
		Title: "Promise catch",
		Slug:  "promise-catch-method",
		Links: catalog.Links{catalog.LinkDevTo: "https://dev.to/p"},
		Tags:  []string{"javascript", "promises"},
	}})
	entry, ok := store.BySlug("promise-catch-method")
	require.True(t, ok)

	page := content.Page{
		Slug:     "promise-catch-method",
		Title:    "Promise catch",
		Subtitle: "explained",
		Date:     time.Date(2020, 6, 4, 0, 0, 0, 0, time.UTC),
		HTML:     template.HTML("<p>Hello <strong>world</strong></p>"),
	}
	v := BuildArticleView(page, entry)
	require.Equal(t, "04.06.2020", v.PublishedOn)
	require.Equal(t, "2020-06-04", v.ISODate)
	require.Len(t, v.Links, 1, "the here link points at this page and is omitted")
	require.Equal(t, catalog.LinkDevTo, v.Links[0].Kind)
	require.Equal(t, []TagChip{
		{Name: "javascript", Href: "/articles?tag=javascript"},
		{Name: "promises", Href: "/articles?tag=promises"},
	}, v.Tags)

	meta := ArticleSEO(site.Default(), v, "")
	require.Equal(t, "Mateusz Podlasin - Promise catch, explained", meta.Title)
	require.Equal(t, "Hello world", meta.Description)
	require.Equal(t, "/articles/promise-catch-method", meta.Canonical)
}

func TestHomeViewFromProfile(t *testing.T) {
	p := site.Default()
	v := BuildHomeView(p)
	require.Equal(t, p.Author, v.Author)
	require.Len(t, v.Sections, 2)

	meta := HomeSEO(p, "https://mpodlasin.com")
	require.Equal(t, "Mateusz Podlasin", meta.Title)
	require.Equal(t, "https://mpodlasin.com/", meta.Canonical)
	require.Len(t, meta.JSONLD, 2)
}
