package models

import (
	"time"

	"gorm.io/datatypes"
)

// Profile represents one learner's DDP plan. Every profile owns exactly
// twelve Section rows, created atomically with the creator's permission.
type Profile struct {
	ID          string     `gorm:"type:char(36);primaryKey" json:"id"`
	LearnerName string     `gorm:"size:255;not null" json:"learner_name"`
	Status      string     `gorm:"size:64;not null;default:Active" json:"status"`
	LastUpdated time.Time  `gorm:"not null" json:"last_updated"`
	ReviewDate  *time.Time `json:"review_date"`
	CreatedAt   time.Time  `json:"-"`
	Sections    []Section  `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"-"`
}

// Section is one numbered unit of a profile. Number and Title are immutable
// after creation; Kind tags which shape Content holds (text, list, map) so
// the codec never has to sniff the stored JSON. Row-per-section storage is
// what makes a section update a targeted single-row write.
type Section struct {
	SectionID uint64         `gorm:"primaryKey;autoIncrement" json:"-"`
	ProfileID string         `gorm:"type:char(36);not null;index:idx_profile_section,unique" json:"-"`
	Number    int            `gorm:"not null;index:idx_profile_section,unique" json:"-"`
	Title     string         `gorm:"size:255;not null" json:"title"`
	Kind      string         `gorm:"size:16;not null" json:"-"`
	Content   datatypes.JSON `gorm:"type:json" json:"content"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
}

// Per-profile capability levels recorded on ProfilePermission.
const (
	CapabilityOwner       = "owner"
	CapabilityContributor = "contributor"
	CapabilityViewer      = "viewer"
)

// ProfilePermission grants a user access to a profile. Existence of a row is
// necessary and sufficient for read access; rows are append-only (no
// revocation path). Capability records what was granted at creation or
// invitation time.
type ProfilePermission struct {
	PermissionID uint64    `gorm:"primaryKey;autoIncrement" json:"-"`
	UserID       string    `gorm:"type:char(36);not null;index:idx_user_profile,unique" json:"user_id"`
	ProfileID    string    `gorm:"type:char(36);not null;index:idx_user_profile,unique" json:"profile_id"`
	Capability   string    `gorm:"size:16;not null;default:contributor" json:"capability"`
	CreatedAt    time.Time `json:"-"`
}

// TableName overrides the table name for Profile
func (Profile) TableName() string {
	return "ddp_profiles"
}

// TableName overrides the table name for Section
func (Section) TableName() string {
	return "ddp_sections"
}

// TableName overrides the table name for ProfilePermission
func (ProfilePermission) TableName() string {
	return "profile_permissions"
}

// ValidCapability reports whether a capability is grantable by invitation.
func ValidCapability(capability string) bool {
	return capability == CapabilityContributor || capability == CapabilityViewer
}
