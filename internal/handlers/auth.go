package handlers

import (
	"errors"

	"github.com/ddphub/ddphub-api/internal/config"
	"github.com/ddphub/ddphub-api/internal/services"
	"github.com/ddphub/ddphub-api/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthHandler handles registration and login routes
type AuthHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// Register handles POST /api/auth/register
// @Summary Register a new user
// @Description Create a user account with a full name, email, password, and global role
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body object true "Registration details"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var body struct {
		FullName string `json:"fullName"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}

	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Please provide all required fields.", fiber.StatusBadRequest, "auth.validation.input")
	}

	user, err := services.Register(h.DB, body.FullName, body.Email, body.Password, body.Role)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			return utils.ErrorResponse(c, "Please provide all required fields.", fiber.StatusBadRequest, "auth.validation.input")
		case errors.Is(err, services.ErrConflict):
			return utils.ErrorResponse(c, "A user with this email already exists.", fiber.StatusBadRequest, "auth.validation.duplicate")
		default:
			return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "register")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully.",
		"user":    user,
	})
}

// Login handles POST /api/auth/login
// @Summary Log in
// @Description Verify credentials and issue a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body object true "Email and password"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Please provide both email and password.", fiber.StatusBadRequest, "auth.validation.input")
	}

	token, user, err := services.Login(h.DB, []byte(h.Cfg.JWTSecret), h.Cfg.TokenTTL, body.Email, body.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			return utils.ErrorResponse(c, "Please provide both email and password.", fiber.StatusBadRequest, "auth.validation.input")
		case errors.Is(err, services.ErrInvalidCredentials):
			return utils.ErrorResponse(c, "Invalid credentials.", fiber.StatusUnauthorized, "auth.credentials")
		default:
			return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "login")
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Login successful.",
		"token":   token,
		"user":    user,
	})
}
