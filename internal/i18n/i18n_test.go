package i18n

import "testing"

func TestLoadShippedLocales(t *testing.T) {
	b, err := Load("../../locales", "en", []string{"en"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := b.T("en", "nav.articles"); got != "articles" {
		t.Fatalf("expected articles, got %s", got)
	}
	if got := b.T("en", "missing.key"); got != "missing.key" {
		t.Fatalf("expected key echo, got %s", got)
	}
}

func TestResolveHonorsQValues(t *testing.T) {
	b := New("en", map[string]map[string]string{
		"en": {"nav.home": "home"},
		"pl": {"nav.home": "start"},
	})
	if got := b.Resolve("en;q=0.8, pl;q=0.9"); got != "pl" {
		t.Fatalf("expected pl, got %s", got)
	}
	if got := b.Resolve("pl-PL"); got != "pl" {
		t.Fatalf("expected pl for regional tag, got %s", got)
	}
	if got := b.Resolve("de"); got != "en" {
		t.Fatalf("expected fallback en, got %s", got)
	}
	if got := b.Resolve(""); got != "en" {
		t.Fatalf("expected fallback en for empty header, got %s", got)
	}
	if got := b.T("pl", "nav.home"); got != "start" {
		t.Fatalf("expected start, got %s", got)
	}
}
