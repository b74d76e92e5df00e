// Package config handles the exanalytics user configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/exanalytics-go/pkg/exanalytics"
	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/client"
	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/logging"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// Environment variables that override the file.
const (
	EnvServerURL = "EXANALYTICS_SERVER_URL"
	EnvToken     = "EXANALYTICS_TOKEN"
	EnvLogLevel  = "EXANALYTICS_LOG_LEVEL"
)

// Config represents the config.yaml file.
type Config struct {
	Version int            `yaml:"version"`
	Server  ServerConfig   `yaml:"server"`
	Render  RenderConfig   `yaml:"render"`
	Log     logging.Config `yaml:"log"`
}

// ServerConfig locates and authenticates against the API.
type ServerConfig struct {
	URL   string `yaml:"url"`
	Token string `yaml:"token,omitempty"`
}

// RenderConfig holds rendering defaults.
type RenderConfig struct {
	Mode    string  `yaml:"mode"`
	Height  int     `yaml:"height"`
	Tension float64 `yaml:"tension"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	opts := exanalytics.DefaultOptions()
	log := logging.DefaultConfig()
	return &Config{
		Version: CurrentConfigVersion,
		Server:  ServerConfig{URL: client.DefaultBaseURL},
		Render:  RenderConfig{Mode: string(opts.Mode), Height: opts.Height, Tension: opts.Tension},
		Log:     logging.Config{Level: log.Level, Format: log.Format},
	}
}

// Path returns the default config file location,
// $XDG_CONFIG_HOME/exanalytics/config.yaml.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "exanalytics", "config.yaml"), nil
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	cfg := Default()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault reads path, falling back to Default when it does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes the Config to a file path. The file holds the API token, so
// it is only readable by the owner.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	u, err := url.Parse(c.Server.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid server url %q", c.Server.URL)
	}
	switch exanalytics.Mode(c.Render.Mode) {
	case exanalytics.ModeAuto, exanalytics.Mode2D, exanalytics.Mode3D:
	default:
		return fmt.Errorf("invalid render mode %q", c.Render.Mode)
	}
	if c.Render.Height < 0 {
		return errors.New("render height must not be negative")
	}
	if c.Log.Level != "" && !logging.ValidLevel(c.Log.Level) {
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	if c.Log.Format != "" && c.Log.Format != "json" && c.Log.Format != "console" {
		return fmt.Errorf("invalid log format %q", c.Log.Format)
	}
	return nil
}

// LoadEnv loads .env files into the environment. Missing files are
// ignored; with no arguments it reads ./.env.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides file values with EXANALYTICS_* environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvServerURL); v != "" {
		c.Server.URL = v
	}
	if v := os.Getenv(EnvToken); v != "" {
		c.Server.Token = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
}

// RenderOptions converts the render section into library options.
func (c *Config) RenderOptions() exanalytics.Options {
	opts := exanalytics.DefaultOptions()
	if c.Render.Mode != "" {
		opts.Mode = exanalytics.Mode(c.Render.Mode)
	}
	if c.Render.Height > 0 {
		opts.Height = c.Render.Height
	}
	if c.Render.Tension > 0 {
		opts.Tension = c.Render.Tension
	}
	return opts
}

// Client builds an API client from the server section.
func (c *Config) Client(opts ...client.Option) *client.Client {
	return client.New(c.Server.URL, append([]client.Option{client.WithToken(c.Server.Token)}, opts...)...)
}
