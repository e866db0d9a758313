package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks environment overrides: RR_SERVER__PORT sets server.port.
const EnvPrefix = "RR_"

type Config struct {
	Server   ServerConfig    `json:"server"`
	Storage  StorageConfig   `json:"storage"`
	Cache    CacheConfig     `json:"cache"`
	Roster   RosterConfig    `json:"roster"`
	Routes   RoutesConfig    `json:"routes"`
	Signs    SignsConfig     `json:"signs"`
	Logging  LoggingConfig   `json:"logging"`
	Vehicles []VehicleConfig `json:"vehicles"`
}

// Load reads a YAML or JSON file, applies environment overrides,
// then defaults, then validates every section.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("load config: unsupported format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("load config %q: %w", path, err)
	}
	if err := k.Load(env.Provider(EnvPrefix, "__", envKey), nil); err != nil {
		return nil, fmt.Errorf("load config: env overrides: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("load config: unmarshal: %w", err)
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

func envKey(s string) string {
	s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// SetDefaults fills every unset field.
func (c *Config) SetDefaults() {
	c.Server.SetDefaults()
	c.Storage.SetDefaults()
	c.Cache.SetDefaults()
	c.Roster.SetDefaults()
	c.Signs.SetDefaults()
	c.Logging.SetDefaults()
}

func (c Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Storage.Validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.Cache.Validate(); err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	if err := c.Roster.Validate(); err != nil {
		return fmt.Errorf("roster: %w", err)
	}
	if err := c.Signs.Validate(); err != nil {
		return fmt.Errorf("signs: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if _, err := c.Schedules(); err != nil {
		return fmt.Errorf("vehicles: %w", err)
	}
	return nil
}
