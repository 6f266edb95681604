package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"dot_database": "dot.db",
		"database_url": "postgres://localhost/ve",
		"log_level": "debug",
		"workers": 8,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "dot.db", cfg.DOTDatabase)
	assert.Equal(t, "postgres://localhost/ve", cfg.DatabaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 8, cfg.Workers)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644))

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvDOTDatabase, "/data/dot.db")
	t.Setenv(EnvWorkbook, "")
	t.Setenv(EnvDatabaseURL, "postgres://db/ve")
	t.Setenv(EnvLogLevel, "warn")

	cfg := FromEnv()
	assert.Equal(t, "/data/dot.db", cfg.DOTDatabase)
	assert.Empty(t, cfg.Workbook)
	assert.Equal(t, "postgres://db/ve", cfg.DatabaseURL)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	existing := filepath.Join(t.TempDir(), "dot.db")
	require.NoError(t, os.WriteFile(existing, nil, 0644))

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "defaults", cfg: Defaults()},
		{name: "existing database", cfg: Config{DOTDatabase: existing, LogLevel: "warning"}},
		{name: "bad level", cfg: Config{LogLevel: "trace"}, wantErr: "LogLevel"},
		{name: "bad format", cfg: Config{LogFormat: "xml"}, wantErr: "LogFormat"},
		{name: "negative workers", cfg: Config{Workers: -1}, wantErr: "Workers"},
		{name: "missing workbook", cfg: Config{Workbook: "/nonexistent/dot.xlsx"}, wantErr: "workbook file not found"},
		{name: "missing grid rules", cfg: Config{GridRules: "/nonexistent/grid.json"}, wantErr: "grid_rules file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	partial := Config{
		DOTDatabase: "custom.db",
		Workers:     2,
	}
	defaults := Config{
		DOTDatabase: "default.db",
		DatabaseURL: "postgres://db/ve",
		LogLevel:    "info",
		Workers:     4,
		Verbose:     true,
	}

	merged := partial.MergeWithDefaults(defaults)

	assert.Equal(t, "custom.db", merged.DOTDatabase)
	assert.Equal(t, 2, merged.Workers)
	assert.Equal(t, "postgres://db/ve", merged.DatabaseURL)
	assert.Equal(t, "info", merged.LogLevel)
	assert.True(t, merged.Verbose)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{Workbook: "dot.xlsx"}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "dot.xlsx", merged.Workbook)
	assert.Zero(t, merged.Workers)
	assert.False(t, merged.Verbose)
}
