package config

import (
	"fmt"
	"route-roster-service/internal/platform/db"
	"route-roster-service/internal/services"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/rs/zerolog"
)

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port string `json:"port"`
	// WriteTimeoutSeconds bounds PDF rendering and roster generation.
	WriteTimeoutSeconds int `json:"write_timeout_seconds"`
	// ShutdownSeconds is the grace period for in-flight requests.
	ShutdownSeconds int `json:"shutdown_seconds"`
}

func (c *ServerConfig) SetDefaults() {
	if c.Port == "" {
		c.Port = "8080"
	}
	if c.WriteTimeoutSeconds == 0 {
		c.WriteTimeoutSeconds = 30
	}
	if c.ShutdownSeconds == 0 {
		c.ShutdownSeconds = 10
	}
}

func (c ServerConfig) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("port is required")
	}
	if c.WriteTimeoutSeconds < 0 || c.ShutdownSeconds < 0 {
		return fmt.Errorf("timeouts must not be negative")
	}
	return nil
}

func (c ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}

func (c ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownSeconds) * time.Second
}

// StorageConfig selects the database backend.
type StorageConfig struct {
	// Backend is "sqlite" or "postgres".
	Backend string `json:"backend"`
	// Path is the SQLite file.
	Path string `json:"path"`
	// URL is the PostgreSQL connection string.
	URL string `json:"url"`
}

func (c *StorageConfig) SetDefaults() {
	if c.Backend == "" {
		c.Backend = db.SQLite
	}
	if c.Backend == db.SQLite && c.Path == "" {
		c.Path = "data/app.db"
	}
}

func (c StorageConfig) Validate() error {
	switch c.Backend {
	case db.SQLite:
		if c.Path == "" {
			return fmt.Errorf("path is required for sqlite")
		}
	case db.Postgres:
		if strings.TrimSpace(c.URL) == "" {
			return fmt.Errorf("url is required for postgres")
		}
	default:
		return fmt.Errorf("unknown backend %s", c.Backend)
	}
	return nil
}

// DSN is the connection argument for the selected backend.
func (c StorageConfig) DSN() string {
	if c.Backend == db.Postgres {
		return c.URL
	}
	return c.Path
}

// CacheConfig configures the optional Redis roster cache.
type CacheConfig struct {
	// RedisAddr enables the cache when set.
	RedisAddr     string `json:"redis_addr"`
	RedisPassword string `json:"redis_password"`
	RedisDB       int    `json:"redis_db"`
	TTLSeconds    int    `json:"ttl_seconds"`
}

func (c *CacheConfig) SetDefaults() {
	if c.TTLSeconds == 0 {
		c.TTLSeconds = 3600
	}
}

func (c CacheConfig) Validate() error {
	if c.TTLSeconds < 0 {
		return fmt.Errorf("ttl_seconds must not be negative")
	}
	if c.RedisDB < 0 {
		return fmt.Errorf("redis_db must not be negative")
	}
	return nil
}

func (c CacheConfig) Enabled() bool { return strings.TrimSpace(c.RedisAddr) != "" }

func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// RosterConfig controls how "today" is derived and which window is shown.
type RosterConfig struct {
	Timezone      string `json:"timezone"`
	Locale        string `json:"locale"`
	LookbackDays  int    `json:"lookback_days"`
	LookaheadDays int    `json:"lookahead_days"`
	MaxWindowDays int    `json:"max_window_days"`
}

func (c *RosterConfig) SetDefaults() {
	if c.Timezone == "" {
		c.Timezone = "America/Mexico_City"
	}
	if c.Locale == "" {
		c.Locale = "es"
	}
	if c.LookbackDays == 0 {
		c.LookbackDays = 5
	}
	if c.LookaheadDays == 0 {
		c.LookaheadDays = 30
	}
	if c.MaxWindowDays == 0 {
		c.MaxWindowDays = 366
	}
}

func (c RosterConfig) Validate() error {
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	if _, err := services.LookupLocale(c.Locale); err != nil {
		return err
	}
	if c.LookbackDays < 0 || c.LookaheadDays < 0 {
		return fmt.Errorf("lookback_days and lookahead_days must not be negative")
	}
	if c.MaxWindowDays < c.LookbackDays+c.LookaheadDays+1 {
		return fmt.Errorf("max_window_days %d is smaller than the default window", c.MaxWindowDays)
	}
	return nil
}

// Location is the time zone used to derive today's date.
func (c RosterConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// RoutesConfig maps route names to display colors ("#rrggbb").
type RoutesConfig struct {
	Colors map[string]string `json:"colors"`
}

// SignsConfig holds the sign ledger constants.
type SignsConfig struct {
	UnitCost float64 `json:"unit_cost"`
}

func (c *SignsConfig) SetDefaults() {
	if c.UnitCost == 0 {
		c.UnitCost = 1350
	}
}

func (c SignsConfig) Validate() error {
	if c.UnitCost < 0 {
		return fmt.Errorf("unit_cost must not be negative")
	}
	return nil
}

// LoggingConfig sets the minimum log level.
type LoggingConfig struct {
	Level string `json:"level"`
}

func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
}

func (c LoggingConfig) Validate() error {
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Level)); err != nil {
		return fmt.Errorf("level %q: %w", c.Level, err)
	}
	return nil
}
