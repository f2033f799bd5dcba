package main

import (
	"context"
	"path/filepath"
	"slices"

	"go.uber.org/zap"

	"github.com/mpodlasin/mpodlasin-website/internal/catalog"
	"github.com/mpodlasin/mpodlasin-website/internal/content"
	"github.com/mpodlasin/mpodlasin-website/internal/observability"
)

func catalogFile(contentDir string) string {
	return filepath.Join(contentDir, catalog.DefaultFile)
}

// reloadContent reacts to changed files: a new article list replaces the store
// whole, and any change drops cached pages. A broken article list keeps the
// previous store.
func reloadContent(logger *zap.Logger, contentDir string, paths []string) {
	listFile := filepath.Clean(catalogFile(contentDir))
	for _, p := range paths {
		if filepath.Clean(p) != listFile {
			continue
		}
		store, err := loadStore(logger, contentDir)
		if err != nil {
			observability.ObserveReload("error")
			logger.Error("article list reload failed, keeping previous list", zap.Error(err))
			break
		}
		articles.Swap(store)
		observability.ObserveReload("ok")
		logger.Info("article list reloaded", zap.Int("articles", store.Len()))
		warnMissingPages(logger, store, library)
		break
	}
	if library != nil {
		library.Purge()
	}
}

// startReloader watches the content directory and its articles folder.
func startReloader(ctx context.Context, logger *zap.Logger, contentDir string) (*content.Watcher, error) {
	dirs := []string{contentDir}
	if library != nil {
		dirs = append(dirs, library.ArticlesDir())
	}
	w, err := content.NewWatcher(logger, func(paths []string) {
		reloadContent(logger, contentDir, paths)
	}, dirs...)
	if err != nil {
		return nil, err
	}
	go w.Run(ctx)
	return w, nil
}

// warnMissingPages logs articles whose slug has no markdown page; those rows
// would link to a 404.
func warnMissingPages(logger *zap.Logger, store *catalog.Store, lib *content.Library) {
	if lib == nil {
		return
	}
	slugs, err := lib.Slugs()
	if err != nil {
		logger.Warn("listing article pages failed", zap.Error(err))
		return
	}
	for i := 0; i < store.Len(); i++ {
		a := store.At(i)
		if a.Slug == "" {
			continue
		}
		if _, found := slices.BinarySearch(slugs, a.Slug); !found {
			logger.Warn("article page missing", zap.String("slug", a.Slug), zap.String("title", a.Title))
		}
	}
}
