package seo

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
}

type Twitter struct {
	Card  string
	Site  string
	Image string
}

// Meta is the head metadata of a page.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	OG          OpenGraph
	Twitter     Twitter
	JSONLD      []any
}

// Description extracts the visible text of an HTML fragment, collapses whitespace and
// truncates it on a word boundary to at most limit runes, ellipsis included.
func Description(fragment string, limit int) string {
	if limit <= 0 {
		limit = 160
	}
	tokens := html.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	skip := 0
	for {
		tt := tokens.Next()
		switch tt {
		case html.ErrorToken:
			return truncate(strings.Join(strings.Fields(b.String()), " "), limit)
		case html.StartTagToken:
			if name, _ := tokens.TagName(); isHidden(string(name)) {
				skip++
			}
		case html.EndTagToken:
			if name, _ := tokens.TagName(); isHidden(string(name)) && skip > 0 {
				skip--
			}
			b.WriteByte(' ')
		case html.TextToken:
			if skip == 0 {
				b.Write(tokens.Text())
			}
		}
	}
}

func isHidden(tag string) bool {
	switch tag {
	case "script", "style", "pre", "code", "template":
		return true
	}
	return false
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	// one rune is left for the ellipsis
	cut := string(runes[:limit-1])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}
