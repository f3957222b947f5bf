package config

import (
	"errors"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

const (
	defaultDSN         = "host=localhost user=postgres password=postgres dbname=inventory port=5432 sslmode=disable"
	defaultCORSOrigins = "http://localhost:5173"
)

type Config struct {
	Env            string `mapstructure:"app_env"`
	LogLevel       string `mapstructure:"log_level"`
	HTTPPort       string `mapstructure:"http_port"`
	DatabaseDSN    string `mapstructure:"database_dsn"`
	DBMaxOpenConns int    `mapstructure:"db_max_open_conns"`
	CORSOrigins    string `mapstructure:"cors_allowed_origins"`
	MetricsEnabled bool   `mapstructure:"metrics_enabled"`
	ReportTimezone string `mapstructure:"report_timezone"` // year-to-date and month buckets
}

// Load reads configuration from defaults, an optional YAML file and the
// environment, in that order of precedence. A .env file in the working
// directory is applied to the environment first.
func Load(path string) (*Config, error) {
	if err := gotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	v := viper.New()
	v.SetDefault("app_env", "dev")
	v.SetDefault("log_level", "")
	v.SetDefault("http_port", "8080")
	v.SetDefault("database_dsn", defaultDSN)
	v.SetDefault("db_max_open_conns", 10)
	v.SetDefault("cors_allowed_origins", defaultCORSOrigins)
	v.SetDefault("metrics_enabled", true)
	v.SetDefault("report_timezone", "UTC")

	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.CORSOrigins = normalizeOrigins(cfg.CORSOrigins)

	return &cfg, nil
}

// Warn logs the settings that are fine for local development only.
func (c *Config) Warn(log *slog.Logger) {
	if c.DatabaseDSN == defaultDSN {
		log.Warn("DATABASE_DSN uses the default value, set your own Postgres DSN for production")
	}
	if c.CORSOrigins == defaultCORSOrigins {
		log.Warn("CORS_ALLOWED_ORIGINS uses the default value, set your own domain for production")
	}
}

// Location returns the report timezone, falling back to UTC when the name
// is unknown.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.ReportTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func normalizeOrigins(raw string) string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ",")
}
