package models

import (
	"time"
)

// Global role tags. The global role is advisory context for the UI and gates
// profile creation and invitation; per-profile capability comes from
// ProfilePermission rows, not from this tag alone.
const (
	RoleLearner          = "learner"
	RoleParent           = "parent"
	RoleLeadProfessional = "lead_professional"
	RoleContributor      = "contributor"
	RoleViewer           = "viewer"
)

// User represents a registered account
type User struct {
	ID           string    `gorm:"type:char(36);primaryKey" json:"id"`
	FullName     string    `gorm:"size:255;not null" json:"fullName"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         string    `gorm:"size:32;not null" json:"role"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}

// ValidRole reports whether a role tag is one of the registerable roles.
func ValidRole(role string) bool {
	switch role {
	case RoleLearner, RoleParent, RoleLeadProfessional, RoleContributor, RoleViewer:
		return true
	}
	return false
}
