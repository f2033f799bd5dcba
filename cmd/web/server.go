package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mpodlasin/mpodlasin-website/internal/catalog"
	"github.com/mpodlasin/mpodlasin-website/internal/config"
	"github.com/mpodlasin/mpodlasin-website/internal/content"
	"github.com/mpodlasin/mpodlasin-website/internal/handlers"
	"github.com/mpodlasin/mpodlasin-website/internal/i18n"
	mw "github.com/mpodlasin/mpodlasin-website/internal/middleware"
	"github.com/mpodlasin/mpodlasin-website/internal/observability"
	"github.com/mpodlasin/mpodlasin-website/internal/site"
)

const shutdownTimeout = 10 * time.Second

type serveOptions struct {
	port      string
	templates string
	public    string
	dev       bool
}

func newServeCmd(root *rootOptions) *cobra.Command {
	opts := &serveOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(root)
			if err != nil {
				return err
			}
			if opts.port != "" {
				cfg.Server.Port = opts.port
			}
			if opts.templates != "" {
				cfg.Paths.Templates = opts.templates
			}
			if opts.public != "" {
				cfg.Paths.Public = opts.public
			}
			if opts.dev {
				cfg.Dev = true
				cfg.Site.ContentCacheTTL = 0
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&opts.port, "port", "", "listen port (overrides SITE_PORT)")
	cmd.Flags().StringVar(&opts.templates, "templates", "", "templates directory")
	cmd.Flags().StringVar(&opts.public, "public", "", "public assets directory")
	cmd.Flags().BoolVar(&opts.dev, "dev", false, "reparse templates and reload content on change")
	return cmd
}

// setup loads every input the handlers read and stores it in the package state.
func setup(cfg config.Config, logger *zap.Logger) error {
	templatesDir = cfg.Paths.Templates
	publicDir = cfg.Paths.Public
	devMode = cfg.Dev
	siteBaseURL = cfg.Site.BaseURL
	analytics = handlers.Analytics{GA4MeasurementID: cfg.Site.GAMeasurementID}

	p, err := site.Load(cfg.Paths.Profile)
	if err != nil {
		return fmt.Errorf("load site profile: %w", err)
	}
	profile = p

	bundle, err := i18n.Load(cfg.Paths.Locales, "en", []string{"en"})
	if err != nil {
		return fmt.Errorf("load locales: %w", err)
	}
	i18nBundle = bundle

	store, err := loadStore(logger, cfg.Paths.Content)
	if err != nil {
		return err
	}
	articles.Swap(store)
	library = content.NewLibrary(cfg.Paths.Content, content.WithCacheTTL(cfg.Site.ContentCacheTTL))
	warnMissingPages(logger, store, library)

	if !devMode {
		tc, err := parseTemplates()
		if err != nil {
			return fmt.Errorf("parse templates: %w", err)
		}
		tmplCache = tc
	}
	return nil
}

func serve(ctx context.Context, cfg config.Config) error {
	logger := newLogger(cfg.Logging.Level)
	defer func() { _ = logger.Sync() }()

	if err := setup(cfg, logger); err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if devMode {
		w, err := startReloader(ctx, logger, cfg.Paths.Content)
		if err != nil {
			logger.Warn("content watcher disabled", zap.Error(err))
		} else {
			defer func() {
				stop()
				<-w.Done()
			}()
		}
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           newRouter(logger),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("web listening",
			zap.String("addr", srv.Addr),
			zap.Bool("dev", devMode),
			zap.Int("articles", articles.Store().Len()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}

// newRouter wires middleware and routes. Tests build the same router.
func newRouter(logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP.
	r.Use(middleware.RealIP)
	r.Use(observability.TraceMiddleware)
	r.Use(mw.Logger(logger))
	r.Use(mw.Recover)
	r.Use(middleware.Compress(5))
	r.Use(mw.HTMX)
	r.Use(mw.Locale(i18nBundle))
	r.Use(mw.VaryLocale)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Handle("/assets/*", mw.AssetsWithCache(filepath.Join(publicDir, "assets"), "/assets", devMode))

	r.Get("/", HomeHandler)
	r.Get(handlers.ArticlesPath, ArticlesHandler)
	r.Get(handlers.ArticlesPath+"/{slug}", ArticleHandler)
	r.Get("/api/articles", ArticlesAPIHandler)

	r.NotFound(NotFoundHandler)
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		renderError(w, r, http.StatusMethodNotAllowed, "")
	})
	return r
}

// currentStore returns the published article store.
func currentStore() *catalog.Store { return articles.Store() }
