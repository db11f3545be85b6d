package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/xalt/xolt-api/internal/api/dto"
	"github.com/xalt/xolt-api/internal/service"
	"github.com/xalt/xolt-api/pkg/util"
)

// AuthHandler exposes login and password reset endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("Invalid credentials", nil)
	}
	if err := req.Validate(); err != nil {
		return util.NewValidationError("Invalid credentials", dto.ValidationDetails(err))
	}

	user, token, expiresAt, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"data": fiber.Map{
			"token":     token,
			"expiresAt": expiresAt,
			"user":      dto.ToUserResponse(user),
		},
	})
}

// ForgotPassword handles POST /api/auth/forgot-password.
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("Email is required.", nil)
	}
	if err := req.Validate(); err != nil {
		return util.NewValidationError("Email is required.", dto.ValidationDetails(err))
	}

	resetLink, err := h.auth.RequestPasswordReset(c.Context(), req.Email)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "If this email is registered, a password reset link will be sent.",
		"data":    fiber.Map{"email": req.Email, "resetLink": resetLink},
	})
}

// ResetPassword handles POST /api/auth/reset-password.
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("Token and new password are required.", nil)
	}
	if err := req.Validate(); err != nil {
		return util.NewValidationError("Token and new password are required.", dto.ValidationDetails(err))
	}

	if err := h.auth.ConfirmPasswordReset(c.Context(), req.Token, req.NewPassword); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Password updated successfully",
	})
}
