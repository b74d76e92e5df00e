package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/client"
)

// EnvPassword supplies the login password without a flag.
const EnvPassword = "EXANALYTICS_PASSWORD"

func registerLoginCmd(parent *cobra.Command, a *app) {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the API token in the config file",
		Example: `  exanalytics login --email me@example.com --password secret
  EXANALYTICS_PASSWORD=secret exanalytics login --email me@example.com`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				password = os.Getenv(EnvPassword)
			}
			if email == "" || password == "" {
				return fmt.Errorf("email and password are required")
			}

			session, err := a.client().Login(cmd.Context(), client.Credentials{Email: email, Password: password})
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			a.cfg.Server.Token = session.Token
			if err := a.cfg.Save(a.configPath); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", session.User.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password (or "+EnvPassword+")")

	parent.AddCommand(cmd)
	registerSignupCmd(parent, a)
	registerWhoamiCmd(parent, a)
}

func registerSignupCmd(parent *cobra.Command, a *app) {
	var reg client.Registration
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and store the API token in the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if reg.Password == "" {
				reg.Password = os.Getenv(EnvPassword)
			}
			if reg.Email == "" || reg.Password == "" {
				return fmt.Errorf("email and password are required")
			}

			session, err := a.client().Register(cmd.Context(), reg)
			if err != nil {
				return fmt.Errorf("registration failed: %w", err)
			}

			a.cfg.Server.Token = session.Token
			if err := a.cfg.Save(a.configPath); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered %s\n", session.User.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&reg.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&reg.Password, "password", "", "Account password (or "+EnvPassword+")")
	cmd.Flags().StringVar(&reg.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&reg.LastName, "last-name", "", "Last name")

	parent.AddCommand(cmd)
}

func registerWhoamiCmd(parent *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user and dashboard counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireToken(); err != nil {
				return err
			}
			c := a.client()
			user, err := c.Profile(cmd.Context())
			if err != nil {
				return err
			}
			dash, err := c.Dashboard(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s <%s>\n", user.FirstName, user.LastName, user.Email)
			fmt.Fprintf(out, "projects: %d  uploads: %d  charts: %d\n",
				dash.Stats.ProjectsCount, dash.Stats.UploadsCount, dash.Stats.ChartsCount)
			return nil
		},
	}
	parent.AddCommand(cmd)
}
