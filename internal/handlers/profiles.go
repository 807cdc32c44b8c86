// profiles.go
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

package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/ddphub/ddphub-api/internal/services"
	"github.com/ddphub/ddphub-api/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ProfileHandler handles profile routes
type ProfileHandler struct {
	DB *gorm.DB
}

// ListProfiles handles GET /api/profiles
// @Summary List accessible profiles
// @Description List summaries of every profile the caller has access to, most recently updated first
// @Tags Profiles
// @Produce json
// @Success 200 {array} services.ProfileSummary
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /profiles [get]
func (h *ProfileHandler) ListProfiles(c *fiber.Ctx) error {
	ident, ok := getIdentity(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	summaries, err := services.ListProfiles(h.DB, ident.UserID)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "listProfiles")
	}

	return c.Status(fiber.StatusOK).JSON(summaries)
}

// GetProfile handles GET /api/profiles/:id
// @Summary Get a full profile
// @Description Get a profile with all twelve sections. Missing profiles and inaccessible profiles are indistinguishable.
// @Tags Profiles
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} services.ProfileResult
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /profiles/{id} [get]
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	ident, ok := getIdentity(c)
	if !ok {
		return fiber.ErrUnauthorized
	}
	profileID := c.Params("id")

	result, err := services.GetProfile(h.DB, profileID, ident.UserID)
	if err != nil {
		if errors.Is(err, services.ErrAccessDenied) {
			return utils.ErrorResponse(c, "Profile not found or access denied.", fiber.StatusForbidden, "profiles.access")
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "getProfile")
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// CreateProfile handles POST /api/profiles
// @Summary Create a profile
// @Description Create a profile with twelve blank sections. Lead professionals only.
// @Tags Profiles
// @Accept json
// @Produce json
// @Param body body object true "Learner name"
// @Success 201 {object} services.ProfileResult
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /profiles [post]
func (h *ProfileHandler) CreateProfile(c *fiber.Ctx) error {
	ident, ok := getIdentity(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	var body struct {
		LearnerName string `json:"learnerName"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Learner name is required.", fiber.StatusBadRequest, "profiles.validation.input")
	}

	result, err := services.CreateProfile(h.DB, body.LearnerName, ident.UserID)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			return utils.ErrorResponse(c, "Learner name is required.", fiber.StatusBadRequest, "profiles.validation.input")
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "createProfile")
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

// UpdateSection handles PUT /api/profiles/:id/section/:number
// @Summary Update one section
// @Description Replace the content of a single section. Sibling sections are untouched.
// @Tags Profiles
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Param number path int true "Section number (1-12)"
// @Param body body object true "New content"
// @Success 200 {object} services.SectionResult
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /profiles/{id}/section/{number} [put]
func (h *ProfileHandler) UpdateSection(c *fiber.Ctx) error {
	ident, ok := getIdentity(c)
	if !ok {
		return fiber.ErrUnauthorized
	}
	profileID := c.Params("id")

	number, err := strconv.Atoi(c.Params("number"))
	if err != nil {
		return utils.ErrorResponse(c, "Section number must be an integer.", fiber.StatusBadRequest, "profiles.validation.section")
	}

	var body struct {
		NewContent json.RawMessage `json:"newContent"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "profiles.validation.input")
	}

	canEdit, err := services.CanEditSection(h.DB, ident, profileID)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "updateSection")
	}
	if !canEdit {
		return utils.ErrorResponse(c, "Forbidden: You do not have permission to edit this profile.", fiber.StatusForbidden, "profiles.access.edit")
	}

	result, err := services.UpdateSection(h.DB, profileID, number, body.NewContent, ident.UserID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAccessDenied):
			return utils.ErrorResponse(c, "Forbidden: You do not have permission to edit this profile.", fiber.StatusForbidden, "profiles.access.edit")
		case errors.Is(err, services.ErrNotFound):
			return utils.NotFoundResponse(c, fmt.Sprintf("Section %d not found.", number))
		default:
			return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "updateSection")
		}
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// Invite handles POST /api/profiles/:id/invite
// @Summary Invite a user to a profile
// @Description Grant a registered user access to a profile by email. Lead professionals only.
// @Tags Profiles
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Param body body object true "Invitee email and role"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /profiles/{id}/invite [post]
func (h *ProfileHandler) Invite(c *fiber.Ctx) error {
	ident, ok := getIdentity(c)
	if !ok {
		return fiber.ErrUnauthorized
	}
	profileID := c.Params("id")

	// The canonical client sends the granted capability as "role";
	// "capability" is accepted as an alias.
	var body struct {
		Email      string `json:"email"`
		Role       string `json:"role"`
		Capability string `json:"capability"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "profiles.validation.input")
	}

	capability := body.Role
	if capability == "" {
		capability = body.Capability
	}

	result, err := services.Invite(h.DB, ident, profileID, body.Email, capability)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "profiles.validation.input")
		case errors.Is(err, services.ErrAccessDenied):
			return utils.ErrorResponse(c, "Profile not found or access denied.", fiber.StatusForbidden, "profiles.access")
		case errors.Is(err, services.ErrNotFound):
			return utils.NotFoundResponse(c, fmt.Sprintf("User with email %s not found. Please ask them to register first.", body.Email))
		case errors.Is(err, services.ErrConflict):
			return utils.ErrorResponse(c, "This user already has access to the profile.", fiber.StatusBadRequest, "profiles.invite.duplicate")
		default:
			return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "invite")
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": fmt.Sprintf("Successfully invited %s to the profile.", result.Email),
	})
}
