package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/exanalytics-go/pkg/exanalytics"
	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/client"
)

func TestConfig_LoadAndSave(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Server.Token = "secret"
	cfg.Render.Mode = "3d"
	cfg.Log.Level = "debug"

	require.NoError(t, cfg.Save(cfgPath))

	info, err := os.Stat(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadFillsDefaults(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("version: 1\nserver:\n  token: abc\n"), 0o600))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "abc", cfg.Server.Token)
	assert.Equal(t, client.DefaultBaseURL, cfg.Server.URL)
	assert.Equal(t, 400, cfg.Render.Height)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("version: ["), 0o600))
	_, err = LoadOrDefault(bad)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid config", mutate: func(*Config) {}},
		{name: "unsupported version", mutate: func(c *Config) { c.Version = 99 }, wantErr: "unsupported config version"},
		{name: "bad url", mutate: func(c *Config) { c.Server.URL = "not a url" }, wantErr: "invalid server url"},
		{name: "bad mode", mutate: func(c *Config) { c.Render.Mode = "4d" }, wantErr: "invalid render mode"},
		{name: "negative height", mutate: func(c *Config) { c.Render.Height = -1 }, wantErr: "height"},
		{name: "bad level", mutate: func(c *Config) { c.Log.Level = "loud" }, wantErr: "invalid log level"},
		{name: "bad format", mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: "invalid log format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvServerURL, "http://localhost:5000")
	t.Setenv(EnvToken, "from-env")
	t.Setenv(EnvLogLevel, "warn")

	cfg := Default()
	cfg.ApplyEnv()
	assert.Equal(t, "http://localhost:5000", cfg.Server.URL)
	assert.Equal(t, "from-env", cfg.Server.Token)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadEnv(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(EnvToken+"=dotenv-token\n"), 0o600))
	t.Setenv(EnvToken, "")
	require.NoError(t, os.Unsetenv(EnvToken))

	require.NoError(t, LoadEnv(envFile, filepath.Join(t.TempDir(), "missing.env")))
	assert.Equal(t, "dotenv-token", os.Getenv(EnvToken))
}

func TestRenderOptions(t *testing.T) {
	cfg := Default()
	cfg.Render = RenderConfig{Mode: "2d", Height: 600}

	opts := cfg.RenderOptions()
	assert.Equal(t, exanalytics.Mode2D, opts.Mode)
	assert.Equal(t, 600, opts.Height)
	assert.Equal(t, exanalytics.DefaultOptions().Tension, opts.Tension)
}

func TestPathUsesXDG(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME is only honored on linux")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	p, err := Path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "exanalytics", "config.yaml"), p)
}
