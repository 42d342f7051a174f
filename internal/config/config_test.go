package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scorecli/internal/grading"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "data", cfg.Paths.DataDir)
	assert.Equal(t, grading.DefaultThresholds(), cfg.Grading.Thresholds)
	assert.Equal(t, grading.PipelineFold, cfg.Pipeline())

	require.NoError(t, cfg.Validate())
}

func TestLoadFromYAMLFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "scorecli.yaml")
	content := `
server:
  port: 9090
logging:
  level: debug
grading:
  thresholds:
    a: 85
    b: 75
    c: 65
    d: 50
  pipeline: grouped
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))
	t.Setenv("SCORE_CONFIG_FILE", configPath)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, grading.Thresholds{A: 85, B: 75, C: 65, D: 50}, cfg.Grading.Thresholds)
	assert.Equal(t, grading.PipelineGrouped, cfg.Pipeline())

	// Fields absent from the file keep their defaults.
	assert.Equal(t, "data", cfg.Paths.DataDir)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "scorecli.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("server:\n  port: 9090\n"), 0644))
	t.Setenv("SCORE_CONFIG_FILE", configPath)
	t.Setenv("SCORE_SERVER_PORT", "7070")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("SCORE_CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default().Server.Port, cfg.Server.Port)
}

func TestValidateRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{
			name:   "port out of range",
			mutate: func(c *Config) { c.Server.Port = 0 },
		},
		{
			name:   "unknown log level",
			mutate: func(c *Config) { c.Logging.Level = "verbose" },
		},
		{
			name:   "unknown pipeline",
			mutate: func(c *Config) { c.Grading.Pipeline = "parallel" },
		},
		{
			name: "non-descending thresholds",
			mutate: func(c *Config) {
				c.Grading.Thresholds = grading.Thresholds{A: 60, B: 70, C: 80, D: 90}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestPathsHelpers(t *testing.T) {
	paths := PathsConfig{DataDir: "data", ReportsDir: "data/reports", LogsDir: "logs"}

	assert.Equal(t, filepath.Join("data", "student_scores_100.csv"), paths.DatasetPath(100))
	assert.Equal(t, filepath.Join("data", "reports", "summary.json"), paths.ReportPath("summary.json"))
	assert.Equal(t, filepath.Join("logs", "scorecli.log"), paths.LogPath("scorecli.log"))
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	paths := PathsConfig{
		DataDir:    filepath.Join(dir, "data"),
		ReportsDir: filepath.Join(dir, "data", "reports"),
		LogsDir:    filepath.Join(dir, "logs"),
	}

	require.NoError(t, paths.EnsureDirectories())

	for _, d := range []string{paths.DataDir, paths.ReportsDir, paths.LogsDir} {
		info, err := os.Stat(d)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}
