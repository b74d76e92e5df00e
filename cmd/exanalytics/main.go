// Package main provides the CLI entry point for exanalytics.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/client"
	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/config"
	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/logging"
)

// app holds state shared by all commands once the root pre-run has loaded it.
type app struct {
	configPath string
	serverURL  string
	logLevel   string
	logFormat  string

	cfg *config.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "exanalytics",
		Short: "Chart spreadsheet data in 2D and 3D",
		Long: `exanalytics turns spreadsheet rows into 2D charts and 3D scenes,
exports charts as PNG, SVG or HTML, and manages charts on the
Excel Analytics server.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Config file (default: $XDG_CONFIG_HOME/exanalytics/config.yaml)")
	flags.StringVar(&a.serverURL, "server", "", "API server URL")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	flags.StringVar(&a.logFormat, "log-format", "", "Log format: console, json")

	registerInspectCmd(rootCmd)
	registerRenderCmd(rootCmd, a)
	registerLoginCmd(rootCmd, a)
	registerChartsCmd(rootCmd, a)
	registerUploadsCmd(rootCmd, a)
	registerProjectsCmd(rootCmd, a)

	return rootCmd
}

// load reads .env, the config file, environment overrides and flags, in
// increasing precedence, then initializes logging.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnv(); err != nil {
		return err
	}

	if a.configPath == "" {
		p, err := config.Path()
		if err != nil {
			return fmt.Errorf("locate config: %w", err)
		}
		a.configPath = p
	}
	cfg, err := config.LoadOrDefault(a.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.ApplyEnv()

	if a.serverURL != "" {
		cfg.Server.URL = a.serverURL
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logCfg := cfg.Log
	logCfg.Output = cmd.ErrOrStderr()
	logging.Init(logCfg)

	a.cfg = cfg
	return nil
}

// client returns an API client using the loaded configuration.
func (a *app) client() *client.Client {
	return a.cfg.Client(client.WithLogger(logging.Get()))
}

// requireToken fails early for commands that need a login.
func (a *app) requireToken() error {
	if a.cfg.Server.Token == "" {
		return fmt.Errorf("not logged in: run 'exanalytics login' or set %s", config.EnvToken)
	}
	return nil
}
