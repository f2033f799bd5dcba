package content

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when an article page does not exist.
var ErrNotFound = errors.New("content: not found")

const (
	defaultContentDir = "content"
	articlesDir       = "articles"
	defaultCacheTTL   = 5 * time.Minute
)

// Page is a rendered markdown article.
type Page struct {
	Slug      string
	Title     string
	Subtitle  string
	Date      time.Time
	Tags      []string
	HTML      template.HTML
	UpdatedAt time.Time
}

// FullTitle joins title and subtitle the way page titles display them.
func (p Page) FullTitle() string {
	if p.Subtitle == "" {
		return p.Title
	}
	return p.Title + ", " + p.Subtitle
}

type frontMatter struct {
	Title    string   `yaml:"title"`
	Subtitle string   `yaml:"subtitle"`
	Date     string   `yaml:"date"`
	Slug     string   `yaml:"slug"`
	Tags     []string `yaml:"tags"`
}

type cacheEntry struct {
	page    Page
	expires time.Time
}

// Library reads markdown articles from <dir>/articles/<slug>.md, renders them with
// goldmark, sanitizes the HTML and caches the result.
type Library struct {
	dir    string
	ttl    time.Duration
	md     goldmark.Markdown
	policy *bluemonday.Policy

	mu    sync.RWMutex
	items map[string]cacheEntry
	now   func() time.Time
}

// Option customises a Library.
type Option func(*Library)

// WithCacheTTL overrides the cache duration. Zero or negative disables caching.
func WithCacheTTL(d time.Duration) Option {
	return func(l *Library) {
		l.ttl = d
	}
}

// WithClock overrides the time source (tests).
func WithClock(now func() time.Time) Option {
	return func(l *Library) {
		if now != nil {
			l.now = now
		}
	}
}

// NewLibrary builds a Library rooted at dir.
func NewLibrary(dir string, opts ...Option) *Library {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		dir = defaultContentDir
	}
	l := &Library{
		dir:    dir,
		ttl:    defaultCacheTTL,
		md:     newMarkdown(),
		policy: newArticlePolicy(),
		items:  map[string]cacheEntry{},
		now:    time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

// ArticlesDir returns the directory holding markdown articles.
func (l *Library) ArticlesDir() string { return filepath.Join(l.dir, articlesDir) }

// Page returns the rendered article for slug.
func (l *Library) Page(ctx context.Context, slug string) (Page, error) {
	slug = SanitizeSlug(slug)
	if slug == "" {
		return Page{}, ErrNotFound
	}
	if err := ctx.Err(); err != nil {
		return Page{}, err
	}
	if page, ok := l.cached(slug); ok {
		return page, nil
	}
	page, err := l.read(slug)
	if err != nil {
		return Page{}, err
	}
	l.store(slug, page)
	return clonePage(page), nil
}

// Slugs lists the available article slugs in lexical order.
func (l *Library) Slugs() ([]string, error) {
	entries, err := os.ReadDir(l.ArticlesDir())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		out = append(out, strings.TrimSuffix(e.Name(), ".md"))
	}
	sort.Strings(out)
	return out, nil
}

// Purge drops every cached page.
func (l *Library) Purge() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = map[string]cacheEntry{}
}

func (l *Library) read(slug string) (Page, error) {
	file := filepath.Join(l.ArticlesDir(), slug+".md")
	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Page{}, ErrNotFound
		}
		return Page{}, err
	}
	fm, body := splitFrontMatter(string(data))
	front := frontMatter{}
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return Page{}, fmt.Errorf("content: parse front matter %s: %w", file, err)
		}
	}
	rendered, err := l.render([]byte(body))
	if err != nil {
		return Page{}, fmt.Errorf("content: render %s: %w", file, err)
	}
	page := Page{
		Slug:     firstNonEmpty(SanitizeSlug(front.Slug), slug),
		Title:    strings.TrimSpace(front.Title),
		Subtitle: strings.TrimSpace(front.Subtitle),
		Date:     parseDate(front.Date),
		Tags:     trimAll(front.Tags),
		HTML:     rendered,
	}
	if info, err := os.Stat(file); err == nil {
		page.UpdatedAt = info.ModTime()
	}
	if page.Title == "" {
		page.Title = prettifySlug(slug)
	}
	return page, nil
}

// render converts markdown to sanitized HTML.
func (l *Library) render(src []byte) (template.HTML, error) {
	var buf bytes.Buffer
	if err := l.md.Convert(src, &buf); err != nil {
		return "", err
	}
	clean := strings.TrimSpace(l.policy.SanitizeReader(&buf).String())
	return template.HTML(clean), nil
}

func (l *Library) cached(slug string) (Page, bool) {
	if l.ttl <= 0 {
		return Page{}, false
	}
	l.mu.RLock()
	entry, ok := l.items[slug]
	l.mu.RUnlock()
	if !ok || l.now().After(entry.expires) {
		return Page{}, false
	}
	return clonePage(entry.page), true
}

func (l *Library) store(slug string, page Page) {
	if l.ttl <= 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items[slug] = cacheEntry{
		page:    clonePage(page),
		expires: l.now().Add(l.ttl),
	}
}

func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Typographer),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
}

// newArticlePolicy allows user-generated markup plus the classes code highlighting relies on.
func newArticlePolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").OnElements("code", "pre", "span", "figure", "figcaption", "p")
	policy.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6")
	policy.AllowElements("figure", "figcaption")
	policy.AllowAttrs("loading").OnElements("img")
	policy.RequireNoFollowOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)
	return policy
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	input = strings.ReplaceAll(input, "\r\n", "\n")
	lines := strings.Split(input, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n")
		}
	}
	return "", input
}

func parseDate(v string) time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"02.01.2006",
		"2006/01/02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

// SanitizeSlug lower-cases slug and rejects anything that could escape the articles directory.
func SanitizeSlug(slug string) string {
	slug = strings.Trim(strings.TrimSpace(strings.ToLower(slug)), "/")
	if slug == "" || strings.Contains(slug, "..") {
		return ""
	}
	if strings.ContainsAny(slug, `/\`) {
		return ""
	}
	return slug
}

func prettifySlug(slug string) string {
	parts := strings.Split(strings.TrimSpace(slug), "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		if runes[0] >= 'a' && runes[0] <= 'z' {
			runes[0] -= 'a' - 'A'
		}
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}

func trimAll(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func clonePage(p Page) Page {
	cp := p
	if p.Tags != nil {
		cp.Tags = append([]string(nil), p.Tags...)
	}
	return cp
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
