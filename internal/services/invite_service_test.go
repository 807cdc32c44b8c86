package services

import (
	"errors"
	"testing"

	"github.com/ddphub/ddphub-api/internal/models"
	"github.com/ddphub/ddphub-api/internal/types"
)

func TestInviteGrantsAccess(t *testing.T) {
	db := setupTestDB(t)
	lead := createUser(t, db, "lead@test.org", models.RoleLeadProfessional)
	parent := createUser(t, db, "parent@test.org", models.RoleParent)

	profile, err := CreateProfile(db, "Noah", lead.ID)
	if err != nil {
		t.Fatalf("CreateProfile failed: %v", err)
	}

	ident := types.Identity{UserID: lead.ID, Role: lead.Role}

	result, err := Invite(db, ident, profile.ID, "parent@test.org", models.CapabilityViewer)
	if err != nil {
		t.Fatalf("Invite failed: %v", err)
	}
	if result.UserID != parent.ID || result.Email != parent.Email {
		t.Errorf("Unexpected invite result: %+v", result)
	}

	if _, err := GetProfile(db, profile.ID, parent.ID); err != nil {
		t.Errorf("Invited parent should read the profile: %v", err)
	}

	var permission models.ProfilePermission
	if err := db.Where("user_id = ? AND profile_id = ?", parent.ID, profile.ID).First(&permission).Error; err != nil {
		t.Fatalf("Permission row missing: %v", err)
	}
	if permission.Capability != models.CapabilityViewer {
		t.Errorf("Expected viewer capability, got %s", permission.Capability)
	}
}

func TestInviteDefaultsToContributor(t *testing.T) {
	db := setupTestDB(t)
	lead := createUser(t, db, "lead@test.org", models.RoleLeadProfessional)
	parent := createUser(t, db, "parent@test.org", models.RoleParent)

	profile, err := CreateProfile(db, "Noah", lead.ID)
	if err != nil {
		t.Fatalf("CreateProfile failed: %v", err)
	}

	ident := types.Identity{UserID: lead.ID, Role: lead.Role}
	if _, err := Invite(db, ident, profile.ID, parent.Email, ""); err != nil {
		t.Fatalf("Invite failed: %v", err)
	}

	var permission models.ProfilePermission
	if err := db.Where("user_id = ?", parent.ID).First(&permission).Error; err != nil {
		t.Fatalf("Permission row missing: %v", err)
	}
	if permission.Capability != models.CapabilityContributor {
		t.Errorf("Expected contributor default, got %s", permission.Capability)
	}
}

func TestInviteErrors(t *testing.T) {
	db := setupTestDB(t)
	lead := createUser(t, db, "lead@test.org", models.RoleLeadProfessional)
	other := createUser(t, db, "other.lead@test.org", models.RoleLeadProfessional)
	parent := createUser(t, db, "parent@test.org", models.RoleParent)

	profile, err := CreateProfile(db, "Noah", lead.ID)
	if err != nil {
		t.Fatalf("CreateProfile failed: %v", err)
	}

	leadIdent := types.Identity{UserID: lead.ID, Role: lead.Role}
	otherIdent := types.Identity{UserID: other.ID, Role: other.Role}
	parentIdent := types.Identity{UserID: parent.ID, Role: parent.Role}

	// Unknown email
	if _, err := Invite(db, leadIdent, profile.ID, "nobody@test.org", ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	// Owner capability is not grantable
	if _, err := Invite(db, leadIdent, profile.ID, parent.Email, models.CapabilityOwner); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected ErrValidation, got %v", err)
	}

	// A lead without access to this profile cannot invite
	if _, err := Invite(db, otherIdent, profile.ID, parent.Email, ""); !errors.Is(err, ErrAccessDenied) {
		t.Errorf("Expected ErrAccessDenied, got %v", err)
	}

	// A non-lead cannot invite even with access
	if _, err := Invite(db, leadIdent, profile.ID, parent.Email, ""); err != nil {
		t.Fatalf("Invite failed: %v", err)
	}
	if _, err := Invite(db, parentIdent, profile.ID, lead.Email, ""); !errors.Is(err, ErrAccessDenied) {
		t.Errorf("Expected ErrAccessDenied, got %v", err)
	}

	// Duplicate grant
	if _, err := Invite(db, leadIdent, profile.ID, parent.Email, ""); !errors.Is(err, ErrConflict) {
		t.Errorf("Expected ErrConflict, got %v", err)
	}
}
