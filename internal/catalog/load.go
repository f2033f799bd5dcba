package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the content store file name inside the content directory.
const DefaultFile = "articles.yaml"

type storeFile struct {
	Articles []articleRecord `yaml:"articles"`
}

type articleRecord struct {
	Title string            `yaml:"title"`
	Slug  string            `yaml:"slug"`
	Links map[string]string `yaml:"links"`
	Tags  []string          `yaml:"tags"`
}

// Parse decodes a YAML article list. Authoring mistakes (missing titles, unknown
// link kinds) are reported with the article position.
func Parse(data []byte) (*Store, error) {
	var file storeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("catalog: decode articles: %w", err)
	}
	articles := make([]Article, 0, len(file.Articles))
	for i, rec := range file.Articles {
		if strings.TrimSpace(rec.Title) == "" {
			return nil, fmt.Errorf("catalog: article %d: missing title", i)
		}
		links := Links{}
		for rawKind, href := range rec.Links {
			kind := LinkKind(strings.ToLower(strings.TrimSpace(rawKind)))
			if !kind.valid() {
				return nil, fmt.Errorf("catalog: article %d (%s): unknown link kind %q", i, rec.Title, rawKind)
			}
			links[kind] = href
		}
		articles = append(articles, Article{
			Title: rec.Title,
			Slug:  rec.Slug,
			Links: links,
			Tags:  rec.Tags,
		})
	}
	return NewStore(articles), nil
}

// LoadFile reads and parses an article list from disk.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	store, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return store, nil
}

// LoadOrDefault reads path and falls back to the built-in article list when the file
// does not exist. Any other failure is returned.
func LoadOrDefault(path string) (*Store, bool, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), true, nil
	}
	store, err := LoadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), true, nil
		}
		return nil, false, err
	}
	return store, false, nil
}
