package models

import (
	"fmt"
	"strings"
	"time"
)

// ProjectRole is a member's permission level within a project.
type ProjectRole string

const (
	RoleAdmin  ProjectRole = "ADMIN"
	RoleMember ProjectRole = "MEMBER"
)

// Valid reports whether r is a known role.
func (r ProjectRole) Valid() bool {
	return r == RoleAdmin || r == RoleMember
}

// ParseProjectRole parses a role case-insensitively.
func ParseProjectRole(s string) (ProjectRole, error) {
	r := ProjectRole(strings.ToUpper(strings.TrimSpace(s)))
	if !r.Valid() {
		return r, fmt.Errorf("unknown project role %q", s)
	}
	return r, nil
}

// ProjectMember links a user to a project with a role.
type ProjectMember struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	ProjectID string      `json:"projectId"`
	Role      ProjectRole `json:"role"`
	JoinedAt  time.Time   `json:"joinedAt"`
	User      User        `json:"user"`
}

// InvitationCreator is the project owner shown on an invitation.
type InvitationCreator struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// InvitationProject is the project summary carried by an invitation.
type InvitationProject struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Type        ProjectType       `json:"type"`
	Creator     InvitationCreator `json:"creator"`
}

// Invitation is a pending invitation looked up by its token.
type Invitation struct {
	Email     string            `json:"email"`
	Role      ProjectRole       `json:"role"`
	ExpiresAt time.Time         `json:"expiresAt"`
	Project   InvitationProject `json:"project"`
}

// SentInvitation is returned when an invitation is created.
type SentInvitation struct {
	Email     string `json:"email"`
	ProjectID string `json:"projectId"`
	Token     string `json:"token"`
}

// Membership is the result of accepting an invitation.
type Membership struct {
	Project Project     `json:"project"`
	Role    ProjectRole `json:"role"`
}
