package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	defaultEnvFile         = ".env"
	defaultPort            = "8080"
	defaultReadTimeout     = 15 * time.Second
	defaultWriteTimeout    = 15 * time.Second
	defaultIdleTimeout     = 60 * time.Second
	defaultContentCacheTTL = 5 * time.Minute
	defaultLogLevel        = "info"
)

// Config captures runtime configuration organised by concern.
type Config struct {
	Server  ServerConfig
	Paths   PathsConfig
	Site    SiteConfig
	Dev     bool
	Logging LoggingConfig
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Addr returns the listen address for the configured port.
func (s ServerConfig) Addr() string { return ":" + s.Port }

// PathsConfig locates templates, assets and content on disk.
type PathsConfig struct {
	Templates string
	Public    string
	Content   string
	Profile   string
	Locales   string
}

// SiteConfig holds presentation settings.
type SiteConfig struct {
	BaseURL         string
	ContentCacheTTL time.Duration
	GAMeasurementID string
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level string
}

// ValidationError is returned when configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the missing/invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile overrides the .env file path used for local overrides.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap injects an explicit key/value map for environment lookups. Values in the map
// take precedence over system environment variables.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading from the process environment.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Load assembles the configuration from defaults, the .env file, the process
// environment and explicit overrides, in increasing precedence.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	dotEnvValues, err := loadDotEnv(options.envFile)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key string) (string, bool) {
		if options.envMap != nil {
			if value, ok := options.envMap[key]; ok {
				return value, true
			}
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		if dotEnvValues != nil {
			if value, ok := dotEnvValues[key]; ok {
				return value, true
			}
		}
		return "", false
	}

	port := stringWithDefault(lookup, "SITE_PORT", "")
	if port == "" {
		port = stringWithDefault(lookup, "PORT", defaultPort)
	}

	dev := boolWithDefault(lookup, "SITE_DEV", false)
	cacheTTL := durationWithDefault(lookup, "SITE_CONTENT_CACHE_TTL", defaultContentCacheTTL)
	if dev {
		cacheTTL = 0
	}

	cfg := Config{
		Server: ServerConfig{
			Port:         strings.TrimSpace(port),
			ReadTimeout:  durationWithDefault(lookup, "SITE_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout: durationWithDefault(lookup, "SITE_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:  durationWithDefault(lookup, "SITE_IDLE_TIMEOUT", defaultIdleTimeout),
		},
		Paths: PathsConfig{
			Templates: stringWithDefault(lookup, "SITE_TEMPLATES_DIR", "templates"),
			Public:    stringWithDefault(lookup, "SITE_PUBLIC_DIR", "public"),
			Content:   stringWithDefault(lookup, "SITE_CONTENT_DIR", "content"),
			Profile:   stringWithDefault(lookup, "SITE_PROFILE_FILE", "site.toml"),
			Locales:   stringWithDefault(lookup, "SITE_LOCALES_DIR", "locales"),
		},
		Site: SiteConfig{
			BaseURL:         strings.TrimRight(stringWithDefault(lookup, "SITE_BASE_URL", ""), "/"),
			ContentCacheTTL: cacheTTL,
			GAMeasurementID: stringWithDefault(lookup, "SITE_GA_MEASUREMENT_ID", ""),
		},
		Dev: dev,
		Logging: LoggingConfig{
			Level: stringWithDefault(lookup, "LOG_LEVEL", defaultLogLevel),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the fields Load cannot default sensibly. Cobra flag overrides
// are validated again through this method.
func (cfg Config) Validate() error {
	var invalid []string
	if n, err := strconv.Atoi(cfg.Server.Port); err != nil || n <= 0 || n > 65535 {
		invalid = append(invalid, "Server.Port")
	}
	if cfg.Server.ReadTimeout <= 0 {
		invalid = append(invalid, "Server.ReadTimeout")
	}
	if cfg.Server.WriteTimeout <= 0 {
		invalid = append(invalid, "Server.WriteTimeout")
	}
	if cfg.Server.IdleTimeout <= 0 {
		invalid = append(invalid, "Server.IdleTimeout")
	}
	if cfg.Site.ContentCacheTTL < 0 {
		invalid = append(invalid, "Site.ContentCacheTTL")
	}
	if cfg.Site.BaseURL != "" && !strings.HasPrefix(cfg.Site.BaseURL, "http://") && !strings.HasPrefix(cfg.Site.BaseURL, "https://") {
		invalid = append(invalid, "Site.BaseURL")
	}
	if len(invalid) > 0 {
		return &ValidationError{fields: invalid}
	}
	return nil
}

func loadDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	file, err := os.Open(absPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: unable to read %s: %w", absPath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	values := make(map[string]string)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		values[key] = strings.Trim(strings.TrimSpace(value), "\"'")
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("config: failed parsing %s: %w", absPath, err)
	}
	return values, nil
}

func stringWithDefault(lookup func(string) (string, bool), key, fallback string) string {
	if value, ok := lookup(key); ok && value != "" {
		return value
	}
	return fallback
}

// durationWithDefault accepts Go durations ("90s") and bare seconds ("90").
func durationWithDefault(lookup func(string) (string, bool), key string, fallback time.Duration) time.Duration {
	if value, ok := lookup(key); ok && value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return fallback
}

func boolWithDefault(lookup func(string) (string, bool), key string, fallback bool) bool {
	if value, ok := lookup(key); ok && value != "" {
		switch strings.ToLower(value) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return fallback
}
