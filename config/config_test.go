package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.Equal(t, "-", cfg.Input)
	require.Equal(t, "path", cfg.Search.Strategy)
	require.Zero(t, cfg.Search.Workers)
	require.Equal(t, "info", cfg.Log.Level)
	require.Empty(t, cfg.Profile.Mode)
	require.NoError(t, cfg.Validate())
}

// TestLoadString_Overrides verifies file values replace defaults and absent
// keys keep them.
func TestLoadString_Overrides(t *testing.T) {
	cfg, err := config.LoadString(`
input: maps/day06.txt
search:
  workers: 8
  strategy: exhaustive
log:
  level: debug
metrics:
  textfile: /tmp/gridwalk.prom
profile:
  mode: cpu
  dir: ./profiles
`)
	require.NoError(t, err)
	require.Equal(t, "maps/day06.txt", cfg.Input)
	require.Equal(t, 8, cfg.Search.Workers)
	require.Equal(t, "exhaustive", cfg.Search.Strategy)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "console", cfg.Log.Format, "absent key keeps default")
	require.Equal(t, "/tmp/gridwalk.prom", cfg.Metrics.Textfile)
	require.Equal(t, "cpu", cfg.Profile.Mode)
	require.Equal(t, "./profiles", cfg.Profile.Dir)
}

func TestLoadString_Errors(t *testing.T) {
	cases := []struct {
		name    string
		content string
		err     error
	}{
		{"NotYAML", "search: [unterminated", config.ErrInvalidFormat},
		{"WrongType", "search:\n  workers: many\n", config.ErrInvalidFormat},
		{"NegativeWorkers", "search:\n  workers: -1\n", config.ErrValidationFailed},
		{"BadStrategy", "search:\n  strategy: random\n", config.ErrValidationFailed},
		{"BadLevel", "log:\n  level: loud\n", config.ErrValidationFailed},
		{"BadFormat", "log:\n  format: xml\n", config.ErrValidationFailed},
		{"BadProfile", "profile:\n  mode: gpu\n", config.ErrValidationFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.LoadString(tc.content)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	_, err := config.LoadFile(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, config.ErrConfigNotFound)

	_, err = config.LoadFile(dir)
	require.ErrorIs(t, err, config.ErrInvalidFormat)

	path := filepath.Join(dir, "gridwalk.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search:\n  workers: 2\n"), 0o600))
	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Search.Workers)
}
