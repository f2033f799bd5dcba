package nav

import (
	"path"
	"strings"
)

// Item represents a main navigation link.
type Item struct {
	Path     string // e.g. "/articles" or an absolute URL
	LabelKey string // i18n key, e.g. "nav.articles"
}

// External reports whether the item leaves the site.
func (it Item) External() bool {
	return strings.HasPrefix(it.Path, "http://") || strings.HasPrefix(it.Path, "https://")
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href     string
	LabelKey string
	Active   bool
	External bool
}

// Crumb represents a breadcrumb entry. If LabelKey is empty, use Label.
type Crumb struct {
	Href     string
	LabelKey string
	Label    string
	Active   bool
}

// Main returns the main links: home, articles and the author's twitter profile.
func Main(twitterURL string) []Item {
	items := []Item{
		{Path: "/", LabelKey: "nav.home"},
		{Path: "/articles", LabelKey: "nav.articles"},
	}
	if strings.TrimSpace(twitterURL) != "" {
		items = append(items, Item{Path: twitterURL, LabelKey: "nav.twitter"})
	}
	return items
}

// Build renders navigation items with active state given the current path.
func Build(items []Item, currentPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	out := make([]RenderedItem, 0, len(items))
	for _, it := range items {
		ext := it.External()
		out = append(out, RenderedItem{
			Href:     it.Path,
			LabelKey: it.LabelKey,
			Active:   !ext && isActive(it.Path, currentPath),
			External: ext,
		})
	}
	return out
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == "/" {
		return currentPath == "/"
	}
	// match exact or prefix boundary: "/articles" or "/articles/..."
	return currentPath == itemPath || strings.HasPrefix(currentPath, itemPath+"/")
}

// Breadcrumbs builds breadcrumb entries from the current path.
// Home always comes first; known sections use their label key, deeper segments
// a prettified label unless overridden by leaf.
func Breadcrumbs(items []Item, currentPath, leaf string) []Crumb {
	if currentPath == "" {
		currentPath = "/"
	}
	crumbs := []Crumb{{Href: "/", LabelKey: "nav.home", Active: currentPath == "/"}}
	if currentPath == "/" {
		return crumbs
	}

	clean := path.Clean(currentPath)
	parts := strings.Split(strings.TrimPrefix(clean, "/"), "/")

	top := "/" + parts[0]
	labelKey := ""
	for _, it := range items {
		if it.Path == top {
			labelKey = it.LabelKey
			break
		}
	}
	crumbs = append(crumbs, Crumb{Href: top, LabelKey: labelKey, Label: titleFromSegment(parts[0]), Active: len(parts) == 1})

	href := top
	for i := 1; i < len(parts); i++ {
		href = href + "/" + parts[i]
		label := titleFromSegment(parts[i])
		last := i == len(parts)-1
		if last && strings.TrimSpace(leaf) != "" {
			label = leaf
		}
		crumbs = append(crumbs, Crumb{Href: href, Label: label, Active: last})
	}
	return crumbs
}

func titleFromSegment(seg string) string {
	if seg == "" {
		return seg
	}
	s := strings.ReplaceAll(seg, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] -= 'a' - 'A'
	}
	return string(r)
}
