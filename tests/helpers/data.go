// data.go
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

package helpers

import (
	"testing"

	"github.com/ddphub/ddphub-api/internal/models"
	"github.com/ddphub/ddphub-api/internal/services"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateTestUser inserts a user row directly, bypassing the HTTP surface.
func CreateTestUser(t *testing.T, db *gorm.DB, fullName, email, password, role string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	user := models.User{
		ID:           uuid.NewString(),
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	return &user
}

// CreateTestProfile creates a profile with the standard blank sections and
// the creator's owner permission.
func CreateTestProfile(t *testing.T, db *gorm.DB, learnerName, creatorID string) *services.ProfileResult {
	t.Helper()

	profile, err := services.CreateProfile(db, learnerName, creatorID)
	if err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}
	return profile
}

// GrantPermission inserts a permission row directly.
func GrantPermission(t *testing.T, db *gorm.DB, userID, profileID, capability string) {
	t.Helper()

	permission := models.ProfilePermission{
		UserID:     userID,
		ProfileID:  profileID,
		Capability: capability,
	}
	if err := db.Create(&permission).Error; err != nil {
		t.Fatalf("Failed to grant permission: %v", err)
	}
}
