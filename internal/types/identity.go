package types

import "github.com/ddphub/ddphub-api/internal/models"

// Identity is the verified caller extracted from the bearer token. It is
// threaded explicitly into every collaborator call; nothing reads identity
// from ambient state.
type Identity struct {
	UserID string
	Role   string
}

// IsLeadProfessional reports whether the caller holds the lead professional
// global role (required to create profiles and invite).
func (i Identity) IsLeadProfessional() bool {
	return i.Role == models.RoleLeadProfessional
}

// CanEditContent reports whether the caller's global role permits section
// edits at all; per-profile permission is checked separately.
func (i Identity) CanEditContent() bool {
	return i.Role == models.RoleLeadProfessional || i.Role == models.RoleContributor
}
