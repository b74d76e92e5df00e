package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/client"
	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/models"
)

// Project notifications.
const (
	msgProjectUpdated     = "Project updated successfully!"
	msgInvitationSent     = "Invitation sent successfully!"
	msgInvitationAccepted = "Invitation accepted successfully!"
	msgAcceptFailed       = "Failed to accept invitation"
	msgMemberRemoved      = "Member removed successfully!"
	msgMemberRoleUpdated  = "Member role updated successfully!"
)

func registerProjectsCmd(parent *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Manage projects",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List your projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireToken(); err != nil {
				return err
			}
			projects, err := a.client().ListProjects(cmd.Context())
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No projects.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tNAME\tTYPE\tUPLOADS\tDESCRIPTION")
			for _, p := range projects {
				desc := p.Description
				if desc == "" {
					desc = "-"
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", p.ID, p.Name, p.Type, p.UploadCount, desc)
			}
			return w.Flush()
		},
	}

	var description string
	var shared bool
	create := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireToken(); err != nil {
				return err
			}
			p := client.NewProject{Name: args[0], Description: description, Type: models.ProjectSingle}
			if shared {
				p.Type = models.ProjectOrganization
			}
			created, err := a.client().CreateProject(cmd.Context(), p)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), created.ID)
			return nil
		},
	}
	create.Flags().StringVar(&description, "description", "", "Project description")
	create.Flags().BoolVar(&shared, "organization", false, "Create a shared organization project")

	del := &cobra.Command{
		Use:   "delete <projectId>",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireToken(); err != nil {
				return err
			}
			return a.client().DeleteProject(cmd.Context(), args[0])
		},
	}

	cmd.AddCommand(list, create, del,
		newProjectsUpdateCmd(a),
		newProjectsInviteCmd(a),
		newProjectsInvitationCmd(a),
		newProjectsAcceptCmd(a),
		newProjectsMembersCmd(a),
	)
	parent.AddCommand(cmd)
}

func newProjectsUpdateCmd(a *app) *cobra.Command {
	var name, description string
	cmd := &cobra.Command{
		Use:   "update <projectId>",
		Short: "Rename a project or change its description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireToken(); err != nil {
				return err
			}
			c := a.client()
			u := client.ProjectUpdate{Name: name, Description: description}
			if !cmd.Flags().Changed("name") || !cmd.Flags().Changed("description") {
				current, err := c.GetProject(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if !cmd.Flags().Changed("name") {
					u.Name = current.Name
				}
				if !cmd.Flags().Changed("description") {
					u.Description = current.Description
				}
			}
			if _, err := c.UpdateProject(cmd.Context(), args[0], u); err != nil {
				return err
			}
			a.notifier(cmd).Success(msgProjectUpdated)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "New project name")
	cmd.Flags().StringVar(&description, "description", "", "New project description")
	return cmd
}

func newProjectsInviteCmd(a *app) *cobra.Command {
	var email, role string
	cmd := &cobra.Command{
		Use:   "invite <projectId>",
		Short: "Invite a user to a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireToken(); err != nil {
				return err
			}
			if email == "" {
				return fmt.Errorf("email is required")
			}
			r, err := models.ParseProjectRole(role)
			if err != nil {
				return err
			}
			sent, err := a.client().InviteUser(cmd.Context(), args[0], client.Invite{Email: email, Role: r})
			if err != nil {
				return err
			}
			a.notifier(cmd).Success(msgInvitationSent)
			fmt.Fprintln(cmd.OutOrStdout(), sent.Token)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Email address to invite")
	cmd.Flags().StringVar(&role, "role", string(models.RoleMember), "Role: ADMIN or MEMBER")
	return cmd
}

func newProjectsInvitationCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "invitation <token>",
		Short: "Show the details of an invitation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := a.client().GetInvitation(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Project: %s\n", inv.Project.Name)
			fmt.Fprintf(out, "Invited by: %s %s\n", inv.Project.Creator.FirstName, inv.Project.Creator.LastName)
			fmt.Fprintf(out, "Role: %s\n", inv.Role)
			if inv.Project.Description != "" {
				fmt.Fprintf(out, "Description: %s\n", inv.Project.Description)
			}
			fmt.Fprintf(out, "Expires: %s\n", inv.ExpiresAt.Format("Jan 02, 2006"))
			return nil
		},
	}
}

func newProjectsAcceptCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "accept <token>",
		Short: "Accept an invitation and join its project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireToken(); err != nil {
				return err
			}
			m, err := a.client().AcceptInvitation(cmd.Context(), args[0])
			if err != nil {
				msg := client.Message(err)
				if msg == "" {
					msg = msgAcceptFailed
				}
				a.notifier(cmd).Error(msg)
				return err
			}
			a.notifier(cmd).Success(msgInvitationAccepted)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", m.Project.ID, m.Project.Name, m.Role)
			return nil
		},
	}
}

func newProjectsMembersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "members <projectId>",
		Short: "List or manage the members of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireToken(); err != nil {
				return err
			}
			p, err := a.client().GetProject(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(p.Members) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No members.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "USER\tNAME\tEMAIL\tROLE\tJOINED")
			for _, m := range p.Members {
				_, _ = fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\t%s\n",
					m.UserID, m.User.FirstName, m.User.LastName, m.User.Email, m.Role,
					m.JoinedAt.Format("Jan 02, 2006"))
			}
			return w.Flush()
		},
	}

	remove := &cobra.Command{
		Use:   "remove <projectId> <userId>",
		Short: "Remove a member from a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireToken(); err != nil {
				return err
			}
			if err := a.client().RemoveMember(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			a.notifier(cmd).Success(msgMemberRemoved)
			return nil
		},
	}

	setRole := &cobra.Command{
		Use:   "set-role <projectId> <userId> <ADMIN|MEMBER>",
		Short: "Change a member's role",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireToken(); err != nil {
				return err
			}
			role, err := models.ParseProjectRole(args[2])
			if err != nil {
				return err
			}
			if err := a.client().UpdateMemberRole(cmd.Context(), args[0], args[1], role); err != nil {
				return err
			}
			a.notifier(cmd).Success(msgMemberRoleUpdated)
			return nil
		},
	}

	cmd.AddCommand(remove, setRole)
	return cmd
}
