// profile_service.go
//
// Collaborative DDP profile service for schools and support teams
// Copyright (c) 2026 DDP Hub <info@ddphub.org>
//
// This file is part of ddphub-api.
// ddphub-api is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// ddphub-api is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.

package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ddphub/ddphub-api/internal/content"
	"github.com/ddphub/ddphub-api/internal/models"
	"github.com/ddphub/ddphub-api/internal/schema"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SectionResult is the wire shape of one section: {title, content}.
type SectionResult struct {
	Title   string          `json:"title"`
	Content json.RawMessage `json:"content"`
}

// ProfileResult is the full-profile wire shape. Sections are keyed by
// section number; on the wire the keys are the decimal strings "1".."12"
// and clients index by key, not by object order.
type ProfileResult struct {
	ID          string                `json:"id"`
	LearnerName string                `json:"learner_name"`
	Status      string                `json:"status"`
	LastUpdated time.Time             `json:"last_updated"`
	ReviewDate  *time.Time            `json:"review_date"`
	Sections    map[int]SectionResult `json:"sections"`
}

// ProfileSummary is the list-view shape (no sections).
type ProfileSummary struct {
	ID          string     `json:"id"`
	LearnerName string     `json:"learner_name"`
	Status      string     `json:"status"`
	LastUpdated time.Time  `json:"last_updated"`
	ReviewDate  *time.Time `json:"review_date"`
}

// CreateProfile inserts a new profile with the canonical twelve blank
// sections and the creator's owner permission in one transaction; a profile
// must never exist without its creator having access.
func CreateProfile(db *gorm.DB, learnerName, creatorID string) (*ProfileResult, error) {
	if learnerName == "" {
		return nil, fmt.Errorf("%w: learner name is required", ErrValidation)
	}

	profile := models.Profile{
		ID:          uuid.NewString(),
		LearnerName: learnerName,
		Status:      "Active",
		LastUpdated: time.Now().UTC(),
	}

	for n := 1; n <= schema.SectionCount; n++ {
		title, err := schema.Title(n)
		if err != nil {
			return nil, err
		}
		kind, err := schema.KindOf(n)
		if err != nil {
			return nil, err
		}
		blank, err := schema.Blank(n)
		if err != nil {
			return nil, err
		}
		data, err := blank.JSON()
		if err != nil {
			return nil, err
		}
		profile.Sections = append(profile.Sections, models.Section{
			Number:  n,
			Title:   title,
			Kind:    string(kind),
			Content: data,
		})
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		permission := models.ProfilePermission{
			UserID:     creatorID,
			ProfileID:  profile.ID,
			Capability: models.CapabilityOwner,
		}
		return tx.Create(&permission).Error
	})
	if err != nil {
		return nil, err
	}

	return reduceProfile(&profile), nil
}

// GetProfile returns the full profile for a caller holding a permission.
// A missing permission and a missing profile are indistinguishable to the
// caller: both come back as ErrAccessDenied.
func GetProfile(db *gorm.DB, profileID, userID string) (*ProfileResult, error) {
	ok, err := HasPermission(db, userID, profileID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: profile %s", ErrAccessDenied, profileID)
	}

	var profile models.Profile
	err = db.Preload("Sections", func(db *gorm.DB) *gorm.DB {
		return db.Order("number ASC")
	}).Where("id = ?", profileID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: profile %s", ErrAccessDenied, profileID)
		}
		return nil, err
	}

	return reduceProfile(&profile), nil
}

// ListProfiles returns summaries of every profile the user can read, most
// recently touched first.
func ListProfiles(db *gorm.DB, userID string) ([]ProfileSummary, error) {
	summaries := []ProfileSummary{}
	err := db.Model(&models.Profile{}).
		Select("ddp_profiles.id, ddp_profiles.learner_name, ddp_profiles.status, ddp_profiles.last_updated, ddp_profiles.review_date").
		Joins("JOIN profile_permissions pp ON pp.profile_id = ddp_profiles.id").
		Where("pp.user_id = ?", userID).
		Order("ddp_profiles.last_updated DESC").
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// UpdateSection replaces the content of exactly one section. The section row
// is locked and updated in place; sibling sections are never read or
// written, so concurrent updates to different sections of the same profile
// cannot clobber each other. Same-section updates are last-write-wins.
func UpdateSection(db *gorm.DB, profileID string, number int, newContent json.RawMessage, userID string) (*SectionResult, error) {
	ok, err := HasPermission(db, userID, profileID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: profile %s", ErrAccessDenied, profileID)
	}

	var section models.Section
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("profile_id = ? AND number = ?", profileID, number).
			First(&section).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: profile %s section %d", ErrNotFound, profileID, number)
			}
			return err
		}

		value := content.DecodeInput(content.Kind(section.Kind), newContent)
		data, err := value.JSON()
		if err != nil {
			return err
		}
		section.Content = data

		if err := tx.Model(&section).Update("content", section.Content).Error; err != nil {
			return err
		}

		return tx.Model(&models.Profile{}).
			Where("id = ?", profileID).
			Update("last_updated", time.Now().UTC()).Error
	})
	if err != nil {
		return nil, err
	}

	return &SectionResult{Title: section.Title, Content: json.RawMessage(section.Content)}, nil
}

// reduceProfile converts the model to the API output shape.
func reduceProfile(profile *models.Profile) *ProfileResult {
	result := &ProfileResult{
		ID:          profile.ID,
		LearnerName: profile.LearnerName,
		Status:      profile.Status,
		LastUpdated: profile.LastUpdated,
		ReviewDate:  profile.ReviewDate,
		Sections:    make(map[int]SectionResult, len(profile.Sections)),
	}
	for _, section := range profile.Sections {
		result.Sections[section.Number] = SectionResult{
			Title:   section.Title,
			Content: json.RawMessage(section.Content),
		}
	}
	return result
}
