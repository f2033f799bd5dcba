package seo

import (
	"encoding/json"
	"html/template"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Script marshals v for embedding in a <script type="application/ld+json"> element.
func Script(v any) template.JS {
	return template.JS(JSON(v))
}

// Person returns a minimal Person schema with optional profile links.
func Person(name, url, email string, sameAs ...string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Person",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if email != "" {
		m["email"] = "mailto:" + email
	}
	links := make([]string, 0, len(sameAs))
	for _, s := range sameAs {
		if s != "" {
			links = append(links, s)
		}
	}
	if len(links) > 0 {
		m["sameAs"] = links
	}
	return m
}

// WebSite returns a minimal WebSite schema.
func WebSite(name, url string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	return m
}

// BreadcrumbItem maps name and absolute item URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList builds schema.org BreadcrumbList.
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.Item,
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}

// Article returns a minimal Article schema payload.
func Article(headline, url, authorName, datePublished string, keywords []string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Article",
		"headline": headline,
	}
	if url != "" {
		m["url"] = url
	}
	if authorName != "" {
		m["author"] = map[string]any{"@type": "Person", "name": authorName}
	}
	if datePublished != "" {
		m["datePublished"] = datePublished
	}
	if len(keywords) > 0 {
		m["keywords"] = keywords
	}
	return m
}

// ItemList returns an ItemList schema of URLs, used for the articles index.
func ItemList(urls []string) map[string]any {
	el := make([]map[string]any, 0, len(urls))
	for i, u := range urls {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"url":      u,
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "ItemList",
		"itemListElement": el,
	}
}
