package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/models"
)

// NewProject is a project creation request.
type NewProject struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Type        models.ProjectType `json:"type"`
}

type projectReply struct {
	Project models.Project `json:"project"`
}

// ListProjects returns the projects the user belongs to.
func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	var reply struct {
		Projects []models.Project `json:"projects"`
	}
	if err := c.do(ctx, http.MethodGet, "/projects", nil, &reply); err != nil {
		return nil, err
	}
	return reply.Projects, nil
}

// GetProject fetches one project.
func (c *Client) GetProject(ctx context.Context, projectID string) (*models.Project, error) {
	var reply projectReply
	if err := c.do(ctx, http.MethodGet, "/projects/"+url.PathEscape(projectID), nil, &reply); err != nil {
		return nil, err
	}
	return &reply.Project, nil
}

// CreateProject creates a project. An empty type means SINGLE.
func (c *Client) CreateProject(ctx context.Context, p NewProject) (*models.Project, error) {
	if p.Type == "" {
		p.Type = models.ProjectSingle
	}
	var reply projectReply
	if err := c.do(ctx, http.MethodPost, "/projects", p, &reply); err != nil {
		return nil, err
	}
	return &reply.Project, nil
}

// DeleteProject removes a project.
func (c *Client) DeleteProject(ctx context.Context, projectID string) error {
	return c.do(ctx, http.MethodDelete, "/projects/"+url.PathEscape(projectID), nil, nil)
}

// ProjectUpdate is a project rename or description change.
type ProjectUpdate struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UpdateProject changes a project's name and description.
func (c *Client) UpdateProject(ctx context.Context, projectID string, u ProjectUpdate) (*models.Project, error) {
	var reply projectReply
	if err := c.do(ctx, http.MethodPut, "/projects/"+url.PathEscape(projectID), u, &reply); err != nil {
		return nil, err
	}
	return &reply.Project, nil
}

// Invite is an invitation request. An empty role means MEMBER.
type Invite struct {
	Email string             `json:"email"`
	Role  models.ProjectRole `json:"role"`
}

// InviteUser sends an invitation to join a project.
func (c *Client) InviteUser(ctx context.Context, projectID string, in Invite) (*models.SentInvitation, error) {
	if in.Role == "" {
		in.Role = models.RoleMember
	}
	var sent models.SentInvitation
	if err := c.do(ctx, http.MethodPost, "/projects/"+url.PathEscape(projectID)+"/invite", in, &sent); err != nil {
		return nil, err
	}
	return &sent, nil
}

// GetInvitation looks up a pending invitation by token. It does not
// require a login.
func (c *Client) GetInvitation(ctx context.Context, token string) (*models.Invitation, error) {
	var reply struct {
		Invitation models.Invitation `json:"invitation"`
	}
	if err := c.do(ctx, http.MethodGet, "/projects/invitations/"+url.PathEscape(token), nil, &reply); err != nil {
		return nil, err
	}
	return &reply.Invitation, nil
}

// AcceptInvitation joins the project an invitation token points at.
func (c *Client) AcceptInvitation(ctx context.Context, token string) (*models.Membership, error) {
	var m models.Membership
	body := map[string]string{"token": token}
	if err := c.do(ctx, http.MethodPost, "/projects/accept-invitation", body, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

type memberChange struct {
	UserID string             `json:"userId"`
	Role   models.ProjectRole `json:"role,omitempty"`
}

// RemoveMember removes a user from a project.
func (c *Client) RemoveMember(ctx context.Context, projectID, userID string) error {
	path := "/projects/" + url.PathEscape(projectID) + "/remove-member"
	return c.do(ctx, http.MethodDelete, path, memberChange{UserID: userID}, nil)
}

// UpdateMemberRole changes a member's role.
func (c *Client) UpdateMemberRole(ctx context.Context, projectID, userID string, role models.ProjectRole) error {
	path := "/projects/" + url.PathEscape(projectID) + "/update-member"
	return c.do(ctx, http.MethodPost, path, memberChange{UserID: userID, Role: role}, nil)
}
