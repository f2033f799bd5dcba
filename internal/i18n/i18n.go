package i18n

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Bundle holds UI label translations per language.
type Bundle struct {
	dict      map[string]map[string]string
	fallback  string
	supported []string
	matcher   language.Matcher
}

// Load reads <dir>/<lang>.json for every supported language. Only the fallback
// locale is required to exist.
func Load(dir string, fallback string, supported []string) (*Bundle, error) {
	if fallback == "" {
		fallback = "en"
	}
	if len(supported) == 0 {
		supported = []string{fallback}
	}
	b := &Bundle{
		dict:     map[string]map[string]string{},
		fallback: fallback,
	}
	for _, l := range supported {
		path := filepath.Join(dir, l+".json")
		raw, err := os.ReadFile(path)
		if err != nil {
			// allow missing file for non-default locales
			if l == fallback {
				return nil, fmt.Errorf("load locale %s: %w", l, err)
			}
			continue
		}
		var m map[string]string
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", l, err)
		}
		b.dict[l] = m
	}
	if _, ok := b.dict[fallback]; !ok {
		return nil, fmt.Errorf("fallback locale %s not loaded", fallback)
	}
	return b.withLanguages(), nil
}

// New builds a bundle from in-memory dictionaries. fallback must be present.
func New(fallback string, dict map[string]map[string]string) *Bundle {
	b := &Bundle{dict: map[string]map[string]string{}, fallback: fallback}
	for l, m := range dict {
		b.dict[l] = m
	}
	if _, ok := b.dict[fallback]; !ok {
		b.dict[fallback] = map[string]string{}
	}
	return b.withLanguages()
}

// withLanguages fixes the supported list (fallback first, so it wins ties) and builds the matcher.
func (b *Bundle) withLanguages() *Bundle {
	langs := make([]string, 0, len(b.dict))
	for l := range b.dict {
		if l != b.fallback {
			langs = append(langs, l)
		}
	}
	sort.Strings(langs)
	b.supported = append([]string{b.fallback}, langs...)
	tags := make([]language.Tag, 0, len(b.supported))
	for _, l := range b.supported {
		tags = append(tags, language.Make(l))
	}
	b.matcher = language.NewMatcher(tags)
	return b
}

// Supported lists loaded languages, fallback first.
func (b *Bundle) Supported() []string {
	return append([]string(nil), b.supported...)
}

// Fallback returns the configured fallback language.
func (b *Bundle) Fallback() string { return b.fallback }

// T returns translation for key in lang, falling back to default and finally key.
func (b *Bundle) T(lang, key string) string {
	if lang != "" {
		if m, ok := b.dict[lang]; ok {
			if v, ok := m[key]; ok {
				return v
			}
		}
	}
	if m, ok := b.dict[b.fallback]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return key
}

// Resolve chooses the best loaded language for an Accept-Language header.
func (b *Bundle) Resolve(acceptLang string) string {
	acceptLang = strings.TrimSpace(acceptLang)
	if acceptLang == "" {
		return b.fallback
	}
	prefs, _, err := language.ParseAcceptLanguage(acceptLang)
	if err != nil || len(prefs) == 0 {
		return b.fallback
	}
	_, idx, conf := b.matcher.Match(prefs...)
	if conf == language.No {
		return b.fallback
	}
	return b.supported[idx]
}
