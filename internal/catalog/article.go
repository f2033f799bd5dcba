package catalog

import (
	"slices"
	"strings"
)

// LinkKind names a place where an article is published.
type LinkKind string

const (
	LinkHere   LinkKind = "here"
	LinkDevTo  LinkKind = "devto"
	LinkMedium LinkKind = "medium"
)

// linkOrder is the order links are rendered in.
var linkOrder = []LinkKind{LinkHere, LinkDevTo, LinkMedium}

// Label returns the human readable label of the link kind.
func (k LinkKind) Label() string {
	switch k {
	case LinkHere:
		return "here"
	case LinkDevTo:
		return "dev.to"
	case LinkMedium:
		return "medium"
	default:
		return string(k)
	}
}

func (k LinkKind) valid() bool {
	return slices.Contains(linkOrder, k)
}

// Links maps a link kind to its URL. Every kind is optional.
type Links map[LinkKind]string

// Link is a rendered article link.
type Link struct {
	Kind     LinkKind
	Label    string
	URL      string
	External bool
}

// Article is one entry of the content store.
type Article struct {
	Title string
	// Slug points at a local markdown page; when set the "here" link defaults to /articles/<slug>.
	Slug  string
	Links Links
	// Tags has set semantics; authoring order is kept for display.
	Tags []string
}

// HasTag reports whether tag is a member of the article's tag set.
func (a *Article) HasTag(tag string) bool {
	if a == nil {
		return false
	}
	return slices.Contains(a.Tags, tag)
}

// OrderedLinks returns the article's links in display order (here, dev.to, medium).
func (a *Article) OrderedLinks() []Link {
	if a == nil {
		return nil
	}
	out := make([]Link, 0, len(a.Links))
	for _, kind := range linkOrder {
		href := strings.TrimSpace(a.Links[kind])
		if href == "" {
			continue
		}
		out = append(out, Link{
			Kind:     kind,
			Label:    kind.Label(),
			URL:      href,
			External: !strings.HasPrefix(href, "/"),
		})
	}
	return out
}

// normalizeArticle trims fields, drops empty and duplicate tags and fills the default "here" link.
func normalizeArticle(a Article) Article {
	out := Article{
		Title: strings.TrimSpace(a.Title),
		Slug:  strings.Trim(strings.ToLower(strings.TrimSpace(a.Slug)), "/"),
	}
	if len(a.Tags) > 0 {
		tags := make([]string, 0, len(a.Tags))
		for _, t := range a.Tags {
			t = normalizeTag(t)
			if t == "" || slices.Contains(tags, t) {
				continue
			}
			tags = append(tags, t)
		}
		out.Tags = tags
	}
	links := Links{}
	for kind, href := range a.Links {
		if href = strings.TrimSpace(href); href != "" {
			links[kind] = href
		}
	}
	if out.Slug != "" && links[LinkHere] == "" {
		links[LinkHere] = "/articles/" + out.Slug
	}
	out.Links = links
	return out
}

func normalizeTag(tag string) string {
	return strings.TrimSpace(tag)
}
