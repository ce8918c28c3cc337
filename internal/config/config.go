// Package config assembles the application configuration.
//
// Values are resolved in three layers: built-in defaults, then the YAML file
// named by CONFIG_FILE (if any), then environment variables. Invalid
// environment values never abort startup; they fall back to the layer below
// and are reported in the LoadReport so main can log them and count them in
// the config metrics.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"newsdesk/internal/common/pagination"
	envcfg "newsdesk/internal/pkg/config"
)

// Storage backends.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// MinJWTSecretLength is 256 bits of key material.
const MinJWTSecretLength = 32

// AppConfig is the full runtime configuration of the API server.
type AppConfig struct {
	HTTPAddr string `yaml:"http_addr"`
	Version  string `yaml:"version"`

	Storage    StorageConfig    `yaml:"storage"`
	Site       SiteConfig       `yaml:"site"`
	Pagination PaginationConfig `yaml:"pagination"`
	Auth       AuthConfig       `yaml:"auth"`
	HTTP       HTTPConfig       `yaml:"http"`
	Stats      StatsConfig      `yaml:"stats"`
	Tracing    TracingConfig    `yaml:"tracing"`
}

type StorageConfig struct {
	Backend     string `yaml:"backend"`
	DatabaseURL string `yaml:"database_url"`
	SQLitePath  string `yaml:"sqlite_path"`
	Seed        bool   `yaml:"seed"`
}

// SiteConfig describes the public site, used for RSS channel metadata.
type SiteConfig struct {
	Title        string `yaml:"title"`
	Description  string `yaml:"description"`
	URL          string `yaml:"url"`
	Language     string `yaml:"language"`
	RSSItemLimit int    `yaml:"rss_item_limit"`
}

type PaginationConfig struct {
	DefaultLimit int `yaml:"default_limit"`
	MaxLimit     int `yaml:"max_limit"` // 0 = unbounded
}

// AuthConfig controls login tokens and the admin guard.
// An empty JWTSecret disables token issuance.
type AuthConfig struct {
	JWTSecret       string        `yaml:"jwt_secret"`
	JWTExpiry       time.Duration `yaml:"jwt_expiry"`
	Required        bool          `yaml:"required"`
	LoginRateLimit  int           `yaml:"login_rate_limit"`
	LoginRateWindow time.Duration `yaml:"login_rate_window"`
}

type HTTPConfig struct {
	AllowedOrigins   []string      `yaml:"allowed_origins"`
	RequestBodyLimit int64         `yaml:"request_body_limit"`
	RequestTimeout   time.Duration `yaml:"request_timeout"`
}

// StatsConfig schedules the background gauge refresh jobs.
type StatsConfig struct {
	RefreshSchedule    string `yaml:"refresh_schedule"`
	SLORefreshSchedule string `yaml:"slo_refresh_schedule"`
}

type TracingConfig struct {
	Enabled     bool    `yaml:"enabled"`
	SampleRatio float64 `yaml:"sample_ratio"`
}

// LoadReport lists what happened while loading.
type LoadReport struct {
	File           string   // CONFIG_FILE path, empty when none
	Warnings       []string // one per fallback
	FallbackFields []string // env keys whose value was rejected
}

// Default returns the configuration used when nothing is set.
func Default() AppConfig {
	return AppConfig{
		HTTPAddr: ":8080",
		Version:  "dev",
		Storage: StorageConfig{
			Backend: BackendMemory,
			Seed:    true,
		},
		Site: SiteConfig{
			Title:        "Raxnet Prime",
			Description:  "Portal berita online premium dengan liputan terkini",
			URL:          "https://raxnet-prime.com",
			Language:     "id",
			RSSItemLimit: 20,
		},
		Pagination: PaginationConfig{DefaultLimit: 20},
		Auth: AuthConfig{
			JWTExpiry:       time.Hour,
			LoginRateLimit:  5,
			LoginRateWindow: time.Minute,
		},
		HTTP: HTTPConfig{
			AllowedOrigins:   []string{"*"},
			RequestBodyLimit: 1 << 20,
			RequestTimeout:   30 * time.Second,
		},
		Stats:   StatsConfig{RefreshSchedule: "@every 1m", SLORefreshSchedule: "@every 1m"},
		Tracing: TracingConfig{SampleRatio: 1},
	}
}

// Load resolves the configuration from defaults, CONFIG_FILE and the
// environment. It only fails when CONFIG_FILE is set and cannot be read or
// parsed; call Validate on the result before use.
func Load() (AppConfig, LoadReport, error) {
	cfg := Default()
	var report LoadReport

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := overlayFile(&cfg, path); err != nil {
			return cfg, report, err
		}
		report.File = path
	}

	applyEnv(&cfg, &report)
	return cfg, report, nil
}

func overlayFile(cfg *AppConfig, path string) error {
	// #nosec G304 -- path comes from the operator's environment
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func collect[T any](report *LoadReport, key string, r envcfg.Result[T]) T {
	if r.FallbackApplied() {
		report.Warnings = append(report.Warnings, r.Warnings...)
		report.FallbackFields = append(report.FallbackFields, key)
	}
	return r.Value
}

func applyEnv(cfg *AppConfig, report *LoadReport) {
	cfg.HTTPAddr = envcfg.GetEnvString("HTTP_ADDR", cfg.HTTPAddr)
	cfg.Version = envcfg.GetEnvString("VERSION", cfg.Version)

	cfg.Storage.Backend = envcfg.GetEnvString("STORAGE_BACKEND", cfg.Storage.Backend)
	cfg.Storage.DatabaseURL = envcfg.GetEnvString("DATABASE_URL", cfg.Storage.DatabaseURL)
	cfg.Storage.SQLitePath = envcfg.GetEnvString("SQLITE_PATH", cfg.Storage.SQLitePath)
	cfg.Storage.Seed = collect(report, "SEED_DATA", envcfg.GetEnvBool("SEED_DATA", cfg.Storage.Seed))

	cfg.Site.Title = envcfg.GetEnvString("SITE_TITLE", cfg.Site.Title)
	cfg.Site.Description = envcfg.GetEnvString("SITE_DESCRIPTION", cfg.Site.Description)
	cfg.Site.URL = envcfg.GetEnvString("SITE_URL", cfg.Site.URL)
	cfg.Site.Language = envcfg.GetEnvString("SITE_LANGUAGE", cfg.Site.Language)
	cfg.Site.RSSItemLimit = collect(report, "RSS_ITEM_LIMIT",
		envcfg.GetEnvInt("RSS_ITEM_LIMIT", cfg.Site.RSSItemLimit, envcfg.ValidatePositiveInt))

	cfg.Pagination.DefaultLimit = collect(report, "PAGINATION_DEFAULT_LIMIT",
		envcfg.GetEnvInt("PAGINATION_DEFAULT_LIMIT", cfg.Pagination.DefaultLimit, envcfg.ValidatePositiveInt))
	cfg.Pagination.MaxLimit = collect(report, "PAGINATION_MAX_LIMIT",
		envcfg.GetEnvInt("PAGINATION_MAX_LIMIT", cfg.Pagination.MaxLimit, envcfg.ValidateNonNegativeInt))

	cfg.Auth.JWTSecret = envcfg.GetEnvString("JWT_SECRET", cfg.Auth.JWTSecret)
	cfg.Auth.JWTExpiry = collect(report, "JWT_EXPIRY",
		envcfg.GetEnvDuration("JWT_EXPIRY", cfg.Auth.JWTExpiry, envcfg.ValidatePositiveDuration))
	cfg.Auth.Required = collect(report, "ADMIN_AUTH_REQUIRED", envcfg.GetEnvBool("ADMIN_AUTH_REQUIRED", cfg.Auth.Required))
	cfg.Auth.LoginRateLimit = collect(report, "LOGIN_RATE_LIMIT",
		envcfg.GetEnvInt("LOGIN_RATE_LIMIT", cfg.Auth.LoginRateLimit, envcfg.ValidateNonNegativeInt))
	cfg.Auth.LoginRateWindow = collect(report, "LOGIN_RATE_WINDOW",
		envcfg.GetEnvDuration("LOGIN_RATE_WINDOW", cfg.Auth.LoginRateWindow, envcfg.ValidatePositiveDuration))

	cfg.HTTP.AllowedOrigins = envcfg.GetEnvStringList("CORS_ALLOWED_ORIGINS", cfg.HTTP.AllowedOrigins)
	cfg.HTTP.RequestBodyLimit = collect(report, "REQUEST_BODY_LIMIT",
		envcfg.GetEnvInt64("REQUEST_BODY_LIMIT", cfg.HTTP.RequestBodyLimit, func(n int64) error {
			if n <= 0 {
				return fmt.Errorf("must be positive, got %d", n)
			}
			return nil
		}))
	cfg.HTTP.RequestTimeout = collect(report, "REQUEST_TIMEOUT",
		envcfg.GetEnvDuration("REQUEST_TIMEOUT", cfg.HTTP.RequestTimeout, envcfg.ValidatePositiveDuration))

	cfg.Stats.RefreshSchedule = collect(report, "STATS_REFRESH_SCHEDULE",
		envcfg.GetEnvStringWith("STATS_REFRESH_SCHEDULE", cfg.Stats.RefreshSchedule, envcfg.ValidateCronSchedule))
	cfg.Stats.SLORefreshSchedule = collect(report, "SLO_REFRESH_SCHEDULE",
		envcfg.GetEnvStringWith("SLO_REFRESH_SCHEDULE", cfg.Stats.SLORefreshSchedule, envcfg.ValidateCronSchedule))

	cfg.Tracing.Enabled = collect(report, "TRACING_ENABLED", envcfg.GetEnvBool("TRACING_ENABLED", cfg.Tracing.Enabled))
	cfg.Tracing.SampleRatio = collect(report, "TRACING_SAMPLE_RATIO",
		envcfg.GetEnvFloat("TRACING_SAMPLE_RATIO", cfg.Tracing.SampleRatio, envcfg.ValidateRatio))
}

// Validate reports every invalid setting at once. Values coming from the
// environment were already checked by Load; this catches the YAML layer and
// cross-field rules.
func (c AppConfig) Validate() error {
	var errs []error

	switch c.Storage.Backend {
	case BackendMemory:
	case BackendPostgres:
		if c.Storage.DatabaseURL == "" {
			errs = append(errs, errors.New("storage: DATABASE_URL is required for the postgres backend"))
		}
	case BackendSQLite:
		if c.Storage.SQLitePath == "" {
			errs = append(errs, errors.New("storage: SQLITE_PATH is required for the sqlite backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("storage: unknown backend %q (want memory, postgres or sqlite)", c.Storage.Backend))
	}

	if c.Auth.Required && c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("auth: ADMIN_AUTH_REQUIRED needs JWT_SECRET"))
	}
	if c.Auth.JWTSecret != "" && len(c.Auth.JWTSecret) < MinJWTSecretLength {
		errs = append(errs, fmt.Errorf("auth: JWT_SECRET must be at least %d characters", MinJWTSecretLength))
	}
	if err := envcfg.ValidatePositiveDuration(c.Auth.JWTExpiry); err != nil {
		errs = append(errs, fmt.Errorf("auth: jwt expiry: %w", err))
	}
	if err := envcfg.ValidateNonNegativeInt(c.Auth.LoginRateLimit); err != nil {
		errs = append(errs, fmt.Errorf("auth: login rate limit: %w", err))
	}
	if err := envcfg.ValidatePositiveDuration(c.Auth.LoginRateWindow); err != nil {
		errs = append(errs, fmt.Errorf("auth: login rate window: %w", err))
	}

	if err := envcfg.ValidatePositiveInt(c.Pagination.DefaultLimit); err != nil {
		errs = append(errs, fmt.Errorf("pagination: default limit: %w", err))
	}
	if c.Pagination.MaxLimit < 0 {
		errs = append(errs, fmt.Errorf("pagination: max limit must be non-negative, got %d", c.Pagination.MaxLimit))
	} else if c.Pagination.MaxLimit > 0 && c.Pagination.DefaultLimit > c.Pagination.MaxLimit {
		errs = append(errs, fmt.Errorf("pagination: default limit %d exceeds max limit %d",
			c.Pagination.DefaultLimit, c.Pagination.MaxLimit))
	}

	if err := envcfg.ValidatePositiveInt(c.Site.RSSItemLimit); err != nil {
		errs = append(errs, fmt.Errorf("site: rss item limit: %w", err))
	}
	if c.HTTP.RequestBodyLimit <= 0 {
		errs = append(errs, fmt.Errorf("http: request body limit must be positive, got %d", c.HTTP.RequestBodyLimit))
	}
	if err := envcfg.ValidatePositiveDuration(c.HTTP.RequestTimeout); err != nil {
		errs = append(errs, fmt.Errorf("http: request timeout: %w", err))
	}
	if err := envcfg.ValidateCronSchedule(c.Stats.RefreshSchedule); err != nil {
		errs = append(errs, fmt.Errorf("stats: %w", err))
	}
	if err := envcfg.ValidateCronSchedule(c.Stats.SLORefreshSchedule); err != nil {
		errs = append(errs, fmt.Errorf("slo: %w", err))
	}
	if err := envcfg.ValidateRatio(c.Tracing.SampleRatio); err != nil {
		errs = append(errs, fmt.Errorf("tracing: sample ratio: %w", err))
	}

	return errors.Join(errs...)
}

// PaginationParams converts the pagination settings for the list handlers.
func (c AppConfig) PaginationParams() pagination.Config {
	return pagination.Config{
		DefaultLimit: c.Pagination.DefaultLimit,
		MaxLimit:     c.Pagination.MaxLimit,
	}
}

// TokensEnabled reports whether login issues JWTs.
func (c AppConfig) TokensEnabled() bool {
	return c.Auth.JWTSecret != ""
}
