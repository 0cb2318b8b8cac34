// Package config loads the news API configuration from environment variables,
// applying defaults, normalizing values and validating the result.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultArticleImgURL is stored for new articles created without an image.
const DefaultArticleImgURL = "https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700"

// CORSConfig lists the allowed browser origins. Empty allows any origin.
type CORSConfig struct {
	AllowedOrigins []string // CORS_ALLOWED_ORIGINS, comma separated
}

// SecurityConfig controls HSTS.
type SecurityConfig struct {
	EnableHSTS bool          // ENABLE_HSTS
	HSTSMaxAge time.Duration // HSTS_MAX_AGE
}

// OTELConfig controls OpenTelemetry tracing.
type OTELConfig struct {
	Enabled     bool    // OTEL_ENABLED
	Endpoint    string  // OTEL_EXPORTER_OTLP_ENDPOINT (e.g. "otel:4317")
	Insecure    bool    // OTEL_EXPORTER_OTLP_INSECURE
	ServiceName string  // OTEL_SERVICE_NAME
	SampleRatio float64 // OTEL_TRACES_SAMPLER_ARG in [0,1]
}

// DBConfig selects and tunes the relational store.
type DBConfig struct {
	Driver       string // DB_DRIVER: sqlite|postgres
	Path         string // DB_PATH: SQLite file
	URL          string // DATABASE_URL: PostgreSQL DSN
	MaxOpenConns int    // DB_MAX_OPEN_CONNS (0 keeps the driver default)
}

// Config is the complete process configuration.
type Config struct {
	AppEnv string // APP_ENV: development|test|production

	Port              string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	MaxHeaderBytes    int
	MaxBodyBytes      int64
	GinMode           string // debug|release|test

	LogLevel       string // debug|info|warn|error|fatal|panic
	LogPretty      bool
	SwaggerEnabled bool
	APIBasePath    string

	DB DBConfig

	DefaultArticleImgURL string

	CORS     CORSConfig
	Security SecurityConfig

	IdempotencyTTL           time.Duration // replay window of an Idempotency-Key
	IdempotencyPurgeInterval time.Duration // how often expired keys are deleted

	OTEL OTELConfig
}

// MustLoad is Load that panics on error.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads the environment. Unparseable values fall back to defaults;
// out-of-range values are reported together in the returned error.
func Load() (Config, error) {
	cfg := Config{
		AppEnv: strings.ToLower(getenv("APP_ENV", "development")),

		Port:              strings.TrimSpace(getenv("PORT", "8080")),
		ReadTimeout:       getdur("READ_TIMEOUT", 15*time.Second),
		ReadHeaderTimeout: getdur("READ_HEADER_TIMEOUT", 10*time.Second),
		WriteTimeout:      getdur("WRITE_TIMEOUT", 20*time.Second),
		IdleTimeout:       getdur("IDLE_TIMEOUT", 60*time.Second),
		MaxHeaderBytes:    getint("MAX_HEADER_BYTES", 1<<20),
		MaxBodyBytes:      int64(getint("MAX_BODY_BYTES", 1<<20)),
		GinMode:           strings.ToLower(getenv("GIN_MODE", "release")),

		LogLevel:       strings.ToLower(getenv("LOG_LEVEL", "info")),
		LogPretty:      getbool("LOG_PRETTY", false),
		SwaggerEnabled: getbool("SWAGGER_ENABLED", false),
		APIBasePath:    normalizeBasePath(getenv("API_BASE_PATH", "/api")),

		DB: DBConfig{
			Driver:       strings.ToLower(getenv("DB_DRIVER", "sqlite")),
			Path:         getenv("DB_PATH", "news.db"),
			URL:          getenv("DATABASE_URL", ""),
			MaxOpenConns: getint("DB_MAX_OPEN_CONNS", 0),
		},

		DefaultArticleImgURL: getenv("DEFAULT_ARTICLE_IMG_URL", DefaultArticleImgURL),

		CORS: CORSConfig{AllowedOrigins: splitCSV(getenv("CORS_ALLOWED_ORIGINS", ""))},
		Security: SecurityConfig{
			EnableHSTS: getbool("ENABLE_HSTS", false),
			HSTSMaxAge: getdur("HSTS_MAX_AGE", 180*24*time.Hour),
		},

		IdempotencyTTL:           getdur("IDEMPOTENCY_TTL", 24*time.Hour),
		IdempotencyPurgeInterval: getdur("IDEMPOTENCY_PURGE_INTERVAL", time.Hour),

		OTEL: OTELConfig{
			Enabled:     getbool("OTEL_ENABLED", false),
			Endpoint:    getenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			Insecure:    getbool("OTEL_EXPORTER_OTLP_INSECURE", true),
			ServiceName: getenv("OTEL_SERVICE_NAME", "go-news-backend"),
			SampleRatio: getfloat("OTEL_TRACES_SAMPLER_ARG", 1.0),
		},
	}

	if cfg.LogLevel == "warning" {
		cfg.LogLevel = "warn"
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		cfg.GinMode = "release"
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error", "fatal", "panic":
	default:
		check(false, "LOG_LEVEL must be one of: debug, info, warn, error, fatal, panic (got %q)", c.LogLevel)
	}
	check(c.Port != "", "PORT must not be empty")
	check(c.ReadTimeout > 0 && c.ReadHeaderTimeout > 0 && c.WriteTimeout > 0 && c.IdleTimeout > 0,
		"timeouts must be positive durations")
	check(c.MaxHeaderBytes > 0, "MAX_HEADER_BYTES must be > 0")
	check(c.MaxBodyBytes > 0, "MAX_BODY_BYTES must be > 0")

	switch c.DB.Driver {
	case "sqlite":
		check(strings.TrimSpace(c.DB.Path) != "", "DB_PATH must not be empty")
	case "postgres":
		check(strings.TrimSpace(c.DB.URL) != "", "DATABASE_URL is required when DB_DRIVER=postgres")
	default:
		check(false, "DB_DRIVER must be one of: sqlite, postgres (got %q)", c.DB.Driver)
	}
	check(c.DB.MaxOpenConns >= 0, "DB_MAX_OPEN_CONNS must be >= 0")

	check(c.Security.HSTSMaxAge >= 0, "HSTS_MAX_AGE must be >= 0")
	check(c.IdempotencyTTL > 0, "IDEMPOTENCY_TTL must be > 0")
	check(c.IdempotencyPurgeInterval > 0, "IDEMPOTENCY_PURGE_INTERVAL must be > 0")
	check(c.OTEL.SampleRatio >= 0 && c.OTEL.SampleRatio <= 1, "OTEL_TRACES_SAMPLER_ARG must be in [0,1]")

	return errors.Join(errs...)
}

// lookup parses a non-empty variable with parse, or returns def.
func lookup[T any](k string, def T, parse func(string) (T, error)) T {
	v, ok := os.LookupEnv(k)
	if !ok || v == "" {
		return def
	}
	out, err := parse(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return out
}

func getenv(k, def string) string {
	return lookup(k, def, func(s string) (string, error) { return s, nil })
}

func getint(k string, def int) int { return lookup(k, def, strconv.Atoi) }

func getdur(k string, def time.Duration) time.Duration { return lookup(k, def, time.ParseDuration) }

func getfloat(k string, def float64) float64 {
	return lookup(k, def, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
}

func getbool(k string, def bool) bool {
	return lookup(k, def, func(s string) (bool, error) {
		switch strings.ToLower(s) {
		case "1", "true", "yes", "y", "on":
			return true, nil
		case "0", "false", "no", "n", "off":
			return false, nil
		}
		return false, errors.New("not a boolean")
	})
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// normalizeBasePath yields "/" or a path with a leading and no trailing slash.
func normalizeBasePath(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return "/"
	}
	return "/" + p
}
