package client

import (
	"context"
	"net/http"

	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/models"
)

// Credentials is a login request.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is a sign-up request.
type Registration struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Login authenticates and stores the returned token on the client.
func (c *Client) Login(ctx context.Context, creds Credentials) (*models.AuthSession, error) {
	var session models.AuthSession
	if err := c.do(ctx, http.MethodPost, "/auth/login", creds, &session); err != nil {
		return nil, err
	}
	c.SetToken(session.Token)
	return &session, nil
}

// Register creates an account and stores the returned token on the client.
func (c *Client) Register(ctx context.Context, reg Registration) (*models.AuthSession, error) {
	var session models.AuthSession
	if err := c.do(ctx, http.MethodPost, "/auth/register", reg, &session); err != nil {
		return nil, err
	}
	c.SetToken(session.Token)
	return &session, nil
}

// Profile returns the authenticated user.
func (c *Client) Profile(ctx context.Context) (*models.User, error) {
	var reply struct {
		User models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/profile", nil, &reply); err != nil {
		return nil, err
	}
	return &reply.User, nil
}

// Dashboard returns the user's counts and recent activity.
func (c *Client) Dashboard(ctx context.Context) (*models.Dashboard, error) {
	var d models.Dashboard
	if err := c.do(ctx, http.MethodGet, "/auth/users/dashboard", nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
