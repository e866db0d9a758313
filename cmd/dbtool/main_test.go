package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"route-roster-service/internal/platform/logger"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecklistCommandLogsThroughZerolog(t *testing.T) {
	t.Setenv("APP_ENV", "")
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`storage:
  backend: sqlite
  path: `+filepath.Join(dir, "app.db")+`
vehicles:
  - id: "93"
    start: "2025-07-31"
    segments:
      - { route: "Ayotzingo", days: 7 }
`), 0o644))

	var buf bytes.Buffer
	prev := log
	log = logger.NewWithWriter("dbtool", &buf)
	rootCmd.SetArgs([]string{"checklist", "-c", path})
	t.Cleanup(func() { log = prev; rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())

	var last map[string]any
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &last), buf.String())
	assert.Equal(t, "dbtool", last["component"])
	assert.Equal(t, "info", last["level"])
	assert.Contains(t, last["message"], "checklist ready")
}
