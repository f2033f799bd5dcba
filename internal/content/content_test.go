package content

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sampleArticle = `---
title: Async/await & Promise interoperability
subtitle: a practical tour
date: 2020-06-14
tags: [javascript, promises]
---

# Intro

Some **bold** text and a [link](https://example.com).

<script>alert("x")</script>

` + "```js\nconst x = await p;\n```\n"

func writeArticle(t *testing.T, dir, slug, body string) {
	t.Helper()
	articles := filepath.Join(dir, "articles")
	require.NoError(t, os.MkdirAll(articles, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(articles, slug+".md"), []byte(body), 0o644))
}

func TestPageRendersMarkdownAndFrontMatter(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeArticle(t, dir, "async-await", sampleArticle)
	lib := NewLibrary(dir)

	page, err := lib.Page(context.Background(), "async-await")
	require.NoError(t, err)
	require.Equal(t, "Async/await & Promise interoperability", page.Title)
	require.Equal(t, "a practical tour", page.Subtitle)
	require.Equal(t, "Async/await & Promise interoperability, a practical tour", page.FullTitle())
	require.Equal(t, time.Date(2020, 6, 14, 0, 0, 0, 0, time.UTC), page.Date)
	require.Equal(t, []string{"javascript", "promises"}, page.Tags)

	html := string(page.HTML)
	require.Contains(t, html, `<h1 id="intro">Intro</h1>`)
	require.Contains(t, html, "<strong>bold</strong>")
	require.Contains(t, html, `class="language-js"`)
	require.Contains(t, html, "nofollow")
	require.Contains(t, html, `target="_blank"`)
	require.NotContains(t, html, "<script")
}

func TestPageWithoutFrontMatterUsesSlugTitle(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeArticle(t, dir, "hello-world", "Just text.\n")
	page, err := NewLibrary(dir).Page(context.Background(), "hello-world")
	require.NoError(t, err)
	require.Equal(t, "Hello World", page.Title)
	require.True(t, page.Date.IsZero())
}

func TestPageNotFound(t *testing.T) {
	t.Parallel()

	lib := NewLibrary(t.TempDir())
	for _, slug := range []string{"missing", "", "../secrets", "a/b"} {
		_, err := lib.Page(context.Background(), slug)
		require.Truef(t, errors.Is(err, ErrNotFound), "slug %q: expected ErrNotFound, got %v", slug, err)
	}
}

func TestPageBadFrontMatter(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeArticle(t, dir, "broken", "---\ntitle: [unclosed\n---\nbody\n")
	_, err := NewLibrary(dir).Page(context.Background(), "broken")
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrNotFound))
	require.Contains(t, err.Error(), "parse front matter")
}

func TestPageCacheHonorsTTL(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeArticle(t, dir, "cached", "---\ntitle: First\n---\n")
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	lib := NewLibrary(dir, WithCacheTTL(time.Minute), WithClock(func() time.Time { return now }))

	page, err := lib.Page(context.Background(), "cached")
	require.NoError(t, err)
	require.Equal(t, "First", page.Title)

	writeArticle(t, dir, "cached", "---\ntitle: Second\n---\n")
	page, err = lib.Page(context.Background(), "cached")
	require.NoError(t, err)
	require.Equal(t, "First", page.Title, "served from cache")

	now = now.Add(2 * time.Minute)
	page, err = lib.Page(context.Background(), "cached")
	require.NoError(t, err)
	require.Equal(t, "Second", page.Title, "expired entry re-read")

	writeArticle(t, dir, "cached", "---\ntitle: Third\n---\n")
	lib.Purge()
	page, err = lib.Page(context.Background(), "cached")
	require.NoError(t, err)
	require.Equal(t, "Third", page.Title)
}

func TestSlugsListsMarkdownFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeArticle(t, dir, "b", "b")
	writeArticle(t, dir, "a", "a")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "articles", "notes.txt"), []byte("x"), 0o644))

	slugs, err := NewLibrary(dir).Slugs()
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, slugs)

	slugs, err = NewLibrary(filepath.Join(dir, "nope")).Slugs()
	require.NoError(t, err)
	require.Empty(t, slugs)
}

func TestSplitFrontMatterHandlesBOMAndCRLF(t *testing.T) {
	t.Parallel()

	fm, body := splitFrontMatter("\ufeff---\r\ntitle: x\r\n---\r\n\r\nbody")
	require.Equal(t, "title: x", fm)
	require.Equal(t, "body", body)

	fm, body = splitFrontMatter("no fences")
	require.Empty(t, fm)
	require.Equal(t, "no fences", body)
}

func TestWatcherReportsChanges(t *testing.T) {
	dir := t.TempDir()
	changed := make(chan []string, 1)
	w, err := NewWatcher(zap.NewNop(), func(paths []string) {
		select {
		case changed <- paths:
		default:
		}
	}, dir)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go w.Run(ctx)
	defer func() {
		cancel()
		<-w.Done()
	}()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "articles.yaml"), []byte("articles: []\n"), 0o644))

	select {
	case paths := <-changed:
		require.NotEmpty(t, paths)
		require.True(t, strings.HasSuffix(paths[0], "articles.yaml"))
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not report the change")
	}
}
