package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 10, cfg.IDBaseline)
	assert.Equal(t, "fade", cfg.DefaultTransition)
	assert.Equal(t, int64(WidescreenWidth), cfg.SlideWidth)
	assert.GreaterOrEqual(t, cfg.Workers, 1)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("SLIDEANIM_OUTPUT_DIR", "")
	t.Setenv("SLIDEANIM_LOG_LEVEL", "")
	t.Setenv("SLIDEANIM_WORKERS", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("SLIDEANIM_OUTPUT_DIR", "")
	t.Setenv("SLIDEANIM_LOG_LEVEL", "")
	t.Setenv("SLIDEANIM_WORKERS", "")

	path := filepath.Join(t.TempDir(), "conf", "slideanim.yaml")
	cfg := DefaultConfig()
	cfg.Workers = 3
	cfg.DefaultTransition = "push"
	cfg.AutoLayout = false
	cfg.BuildVersion = "not-saved"

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, loaded.Workers)
	assert.Equal(t, "push", loaded.DefaultTransition)
	assert.False(t, loaded.AutoLayout)
	assert.Empty(t, loaded.BuildVersion)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	t.Setenv("SLIDEANIM_WORKERS", "")

	path := filepath.Join(t.TempDir(), "slideanim.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 2\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 10, cfg.IDBaseline)
	assert.Equal(t, "fade", cfg.DefaultTransition)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slideanim.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: [oops"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SLIDEANIM_OUTPUT_DIR", "/tmp/decks")
	t.Setenv("SLIDEANIM_LOG_LEVEL", "debug")
	t.Setenv("SLIDEANIM_WORKERS", "6")

	cfg := DefaultConfig()
	cfg.applyEnvOverrides()

	assert.Equal(t, "/tmp/decks", cfg.OutputDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 6, cfg.Workers)

	t.Run("bad worker count is ignored", func(t *testing.T) {
		t.Setenv("SLIDEANIM_WORKERS", "many")
		cfg := DefaultConfig()
		want := cfg.Workers
		cfg.applyEnvOverrides()
		assert.Equal(t, want, cfg.Workers)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no workers", func(c *Config) { c.Workers = 0 }},
		{"zero baseline", func(c *Config) { c.IDBaseline = 0 }},
		{"no width", func(c *Config) { c.SlideWidth = 0 }},
		{"no transition", func(c *Config) { c.DefaultTransition = "" }},
		{"no output", func(c *Config) { c.OutputDir = "" }},
		{"bad level", func(c *Config) { c.LogLevel = "chatty" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
