package services

import (
	"errors"
	"fmt"

	"github.com/ddphub/ddphub-api/internal/models"
	"github.com/ddphub/ddphub-api/internal/types"
	"gorm.io/gorm"
)

// InviteResult carries the invited user's details back to the handler for
// the confirmation message.
type InviteResult struct {
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// Invite grants an existing user access to a profile by email address.
// Only a lead professional who already holds a permission on the profile may
// invite. The invitee must be registered; there is no pending-invite state.
func Invite(db *gorm.DB, ident types.Identity, profileID, email, capability string) (*InviteResult, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}
	if capability == "" {
		capability = models.CapabilityContributor
	}
	if !models.ValidCapability(capability) {
		return nil, fmt.Errorf("%w: unknown capability %q", ErrValidation, capability)
	}

	ok, err := CanInvite(db, ident, profileID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: profile %s", ErrAccessDenied, profileID)
	}

	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no user with email %s", ErrNotFound, email)
		}
		return nil, err
	}

	var count int64
	err = db.Model(&models.ProfilePermission{}).
		Where("user_id = ? AND profile_id = ?", user.ID, profileID).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: user already has access", ErrConflict)
	}

	permission := models.ProfilePermission{
		UserID:     user.ID,
		ProfileID:  profileID,
		Capability: capability,
	}
	if err := db.Create(&permission).Error; err != nil {
		return nil, err
	}

	return &InviteResult{UserID: user.ID, FullName: user.FullName, Email: user.Email}, nil
}
