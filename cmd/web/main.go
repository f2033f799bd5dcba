package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mpodlasin/mpodlasin-website/internal/catalog"
	"github.com/mpodlasin/mpodlasin-website/internal/config"
	"github.com/mpodlasin/mpodlasin-website/internal/content"
	"github.com/mpodlasin/mpodlasin-website/internal/handlers"
	"github.com/mpodlasin/mpodlasin-website/internal/i18n"
	"github.com/mpodlasin/mpodlasin-website/internal/observability"
	"github.com/mpodlasin/mpodlasin-website/internal/site"
)

var (
	templatesDir = "templates"
	publicDir    = "public"
	// devMode reparses templates per request, disables asset caching and watches content.
	devMode     bool
	tmplCache   *templateSet
	i18nBundle  *i18n.Bundle
	profile     = site.Default()
	articles    = catalog.NewSource(catalog.Default())
	library     *content.Library
	siteBaseURL string
	analytics   handlers.Analytics
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	envFile    string
	contentDir string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	serve := newServeCmd(opts)
	root := &cobra.Command{
		Use:           "web",
		Short:         "Portfolio and articles site",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file with SITE_* overrides")
	root.PersistentFlags().StringVar(&opts.contentDir, "content", "", "content directory (overrides SITE_CONTENT_DIR)")
	root.Flags().AddFlagSet(serve.Flags())
	root.AddCommand(serve, newTagsCmd(opts), newArticlesCmd(opts))
	return root
}

// loadConfig reads configuration and applies the persistent flag overrides.
func loadConfig(opts *rootOptions) (config.Config, error) {
	cfg, err := config.Load(config.WithEnvFile(opts.envFile))
	if err != nil {
		return config.Config{}, err
	}
	if opts.contentDir != "" {
		cfg.Paths.Content = opts.contentDir
	}
	return cfg, nil
}

// loadStore reads the article list from the content directory, falling back to
// the built-in list when no articles file exists.
func loadStore(logger *zap.Logger, contentDir string) (*catalog.Store, error) {
	path := catalogFile(contentDir)
	store, usedDefault, err := catalog.LoadOrDefault(path)
	if err != nil {
		return nil, err
	}
	if usedDefault {
		logger.Info("articles file not found, using built-in list", zap.String("path", path))
	}
	return store, nil
}

func newLogger(level string) *zap.Logger {
	logger, err := observability.NewLogger(level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed, logging disabled: %v\n", err)
		return observability.NoopLogger()
	}
	return logger
}
