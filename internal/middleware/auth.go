// auth.go
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

package middleware

import (
	"strings"

	"github.com/ddphub/ddphub-api/internal/services"
	"github.com/ddphub/ddphub-api/internal/types"
	"github.com/gofiber/fiber/v2"
)

// IdentityKey is the context-locals key the authenticated identity is stored
// under.
const IdentityKey = "identity"

// Authenticated validates the Authorization bearer token and stores the
// caller's identity in context for downstream handlers.
func Authenticated(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token := strings.TrimPrefix(header, "Bearer ")
		if header == "" || token == header {
			return &types.CustomError{
				Code:    fiber.StatusUnauthorized,
				Message: "No token, authorization denied.",
				Type:    "auth.token",
			}
		}

		claims, err := services.ParseToken(secret, token)
		if err != nil {
			return &types.CustomError{
				Code:    fiber.StatusUnauthorized,
				Message: "Token is not valid.",
				Type:    "auth.token",
			}
		}

		c.Locals(IdentityKey, types.Identity{
			UserID: claims.UserID,
			Role:   claims.Role,
		})

		return c.Next()
	}
}

// RequireLeadProfessional rejects callers whose global role is not
// lead_professional. Must run after Authenticated.
func RequireLeadProfessional() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ident, ok := c.Locals(IdentityKey).(types.Identity)
		if !ok || !ident.IsLeadProfessional() {
			return &types.CustomError{
				Code:    fiber.StatusForbidden,
				Message: "Forbidden: This action requires Lead Professional privileges.",
				Type:    "auth.role",
			}
		}
		return c.Next()
	}
}
