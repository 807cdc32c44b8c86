package services

import (
	"github.com/ddphub/ddphub-api/internal/models"
	"github.com/ddphub/ddphub-api/internal/types"
	"gorm.io/gorm"
)

// Access control gate. Every read and write on a profile funnels through
// these predicates; identity is passed in explicitly.

// HasPermission reports whether a ProfilePermission row exists for the pair.
func HasPermission(db *gorm.DB, userID, profileID string) (bool, error) {
	var count int64
	err := db.Model(&models.ProfilePermission{}).
		Where("user_id = ? AND profile_id = ?", userID, profileID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CanRead: a permission row is necessary and sufficient for read access.
func CanRead(db *gorm.DB, ident types.Identity, profileID string) (bool, error) {
	return HasPermission(db, ident.UserID, profileID)
}

// CanEditSection: read access plus an editing global role
// (lead_professional or contributor).
func CanEditSection(db *gorm.DB, ident types.Identity, profileID string) (bool, error) {
	if !ident.CanEditContent() {
		return false, nil
	}
	return HasPermission(db, ident.UserID, profileID)
}

// CanInvite: any lead professional with existing access may invite, not only
// the original creator.
func CanInvite(db *gorm.DB, ident types.Identity, profileID string) (bool, error) {
	if !ident.IsLeadProfessional() {
		return false, nil
	}
	return HasPermission(db, ident.UserID, profileID)
}

// CanCreateProfile: global role alone decides profile creation.
func CanCreateProfile(ident types.Identity) bool {
	return ident.IsLeadProfessional()
}
