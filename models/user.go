package models

import (
	"time"

	"github.com/google/uuid"
)

// Role type tags. These gate navigation and rendering only; they are not a
// security boundary.
const (
	RoleTypeAdmin    = "admin"
	RoleTypeOrgAdmin = "org-admin"
	RoleTypeCreator  = "creator"
	RoleTypeLearner  = "learner"
)

// Permission grants a set of actions on one resource. Resource and actions
// may be the wildcard "*".
type Permission struct {
	Resource string   `json:"resource"`
	Actions  []string `json:"actions"`
}

// Role bundles a type tag with its permission grants.
type Role struct {
	Type        string       `json:"type"`
	Name        string       `json:"name"`
	Permissions []Permission `json:"permissions,omitempty"`
}

// User is a dashboard account. The role is client-trusted.
type User struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      Role       `json:"role"`
	OrgID     *uuid.UUID `json:"org_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
