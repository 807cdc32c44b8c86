// common.go
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
	"github.com/ddphub/ddphub-api/internal/middleware"
	"github.com/ddphub/ddphub-api/internal/types"
	"github.com/gofiber/fiber/v2"
)

// getIdentity returns the authenticated identity stored by the auth
// middleware. The bool is false when the middleware did not run.
func getIdentity(c *fiber.Ctx) (types.Identity, bool) {
	ident, ok := c.Locals(middleware.IdentityKey).(types.Identity)
	return ident, ok
}
