package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// AssetsWithCache serves files from dir under prefix with Cache-Control, Vary and ETag handling.
// ETags are computed once at startup; dev mode should serve with noCache instead.
func AssetsWithCache(dir, prefix string, noCache bool) http.Handler {
	etags := map[string]string{}
	if !noCache {
		_ = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil || info == nil || info.IsDir() {
				return nil
			}
			et, err := fileETag(path)
			if err != nil {
				return nil
			}
			if rel, err := filepath.Rel(dir, path); err == nil {
				etags["/"+filepath.ToSlash(rel)] = et
			}
			return nil
		})
	}
	fs := http.StripPrefix(prefix, http.FileServer(http.Dir(dir)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Accept-Encoding")
		if noCache {
			w.Header().Set("Cache-Control", "no-cache")
			fs.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Cache-Control", "public, max-age=604800, stale-while-revalidate=86400")
		if et := etags[strings.TrimPrefix(r.URL.Path, prefix)]; et != "" {
			w.Header().Set("ETag", et)
			if inm := r.Header.Get("If-None-Match"); inm != "" && inm == et {
				w.WriteHeader(http.StatusNotModified)
				return
			}
		}
		fs.ServeHTTP(w, r)
	})
}

func fileETag(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return `W/"` + hex.EncodeToString(h.Sum(nil))[:32] + `"`, nil
}
