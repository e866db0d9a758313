package config

import (
	"os"
	"path/filepath"
	"route-roster-service/internal/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalYAML = `server:
  port: "9090"
cache:
  redis_addr: "localhost:6379"
routes:
  colors:
    "Atoluca": "#43a047"
vehicles:
  - id: "138"
    start: "2025-07-25"
    segments:
      - { route: "A", days: 2 }
      - { route: "B", days: 3 }
`

func writeConfig(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoad_YAMLWithDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "config.yaml", minimalYAML))
	require.NoError(t, err)

	checks := []struct {
		name string
		got  any
		want any
	}{
		{"server.port", cfg.Server.Port, "9090"},
		{"server.write_timeout", cfg.Server.WriteTimeout(), 30 * time.Second},
		{"storage.backend", cfg.Storage.Backend, "sqlite"},
		{"storage.dsn", cfg.Storage.DSN(), "data/app.db"},
		{"cache.enabled", cfg.Cache.Enabled(), true},
		{"cache.ttl", cfg.Cache.TTL(), time.Hour},
		{"roster.timezone", cfg.Roster.Timezone, "America/Mexico_City"},
		{"roster.locale", cfg.Roster.Locale, "es"},
		{"roster.lookback", cfg.Roster.LookbackDays, 5},
		{"roster.lookahead", cfg.Roster.LookaheadDays, 30},
		{"roster.max_window", cfg.Roster.MaxWindowDays, 366},
		{"signs.unit_cost", cfg.Signs.UnitCost, 1350.0},
		{"logging.level", cfg.Logging.Level, "info"},
		{"routes.colors", cfg.Routes.Colors["Atoluca"], "#43a047"},
	}
	for _, c := range checks {
		assert.Equal(t, c.want, c.got, c.name)
	}

	schedules, err := cfg.Schedules()
	require.NoError(t, err)
	require.Len(t, schedules, 1)
	assert.Equal(t, domain.NewDate(2025, time.July, 25), schedules[0].StartDate)
	assert.Equal(t, 5, schedules[0].CycleLength())
}

func TestLoad_JSON(t *testing.T) {
	data := `{
		"storage": {"backend": "postgres", "url": "postgres://localhost/roster"},
		"vehicles": [{"id": "93", "start": "2025-07-31", "segments": [{"route": "Ayotzingo", "days": 7}]}]
	}`
	cfg, err := Load(writeConfig(t, "config.json", data))
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/roster", cfg.Storage.DSN())
	assert.False(t, cfg.Cache.Enabled())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("RR_SERVER__PORT", "7070")
	t.Setenv("RR_ROSTER__LOCALE", "en")

	cfg, err := Load(writeConfig(t, "config.yaml", minimalYAML))
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "en", cfg.Roster.Locale)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		file string
		data string
	}{
		{"unsupported format", "config.toml", minimalYAML},
		{"no vehicles", "config.yaml", "server:\n  port: \"8080\"\n"},
		{"empty rotation", "config.yaml", "vehicles:\n  - id: \"1\"\n    start: \"2025-07-25\"\n"},
		{"zero days", "config.yaml", "vehicles:\n  - id: \"1\"\n    start: \"2025-07-25\"\n    segments:\n      - { route: \"A\", days: 0 }\n"},
		{"bad start", "config.yaml", "vehicles:\n  - id: \"1\"\n    start: \"25/07/2025\"\n    segments:\n      - { route: \"A\", days: 1 }\n"},
		{"bad backend", "config.yaml", "storage:\n  backend: mysql\n" + minimalYAML[len("server:\n  port: \"9090\"\n"):]},
		{"bad locale", "config.yaml", "roster:\n  locale: fr\n" + minimalYAML},
		{"bad timezone", "config.yaml", "roster:\n  timezone: Mars/Olympus\n" + minimalYAML},
		{"window cap below default window", "config.yaml", "roster:\n  max_window_days: 10\n" + minimalYAML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.file, tt.data))
			require.Error(t, err)
		})
	}
}

func TestSchedules_WrapsInvalidSchedule(t *testing.T) {
	cfg := Config{Vehicles: []VehicleConfig{{ID: "1", Start: "2025-07-25"}}}
	_, err := cfg.Schedules()
	assert.ErrorIs(t, err, domain.ErrInvalidSchedule)
}
