package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/xalt/xolt-api/internal/api/dto"
	"github.com/xalt/xolt-api/internal/auth"
	"github.com/xalt/xolt-api/internal/domain"
	"github.com/xalt/xolt-api/internal/service"
	"github.com/xalt/xolt-api/pkg/util"
)

// UsersHandler exposes account management endpoints.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs the handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{users: userService}
}

// List handles GET /api/users. Super admin accounts are filtered out of
// the listing.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.users.List(c.Context())
	if err != nil {
		return err
	}

	visible := make([]*domain.User, 0, len(users))
	for _, u := range users {
		if u.UserType != domain.UserTypeSuperAdmin {
			visible = append(visible, u)
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Users fetched successfully",
		"data":    dto.ToUserResponses(visible),
	})
}

// Create handles POST /api/users.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("Invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return util.NewValidationError("Validation failed", dto.ValidationDetails(err))
	}

	user, err := h.users.Create(c.Context(), service.CreateUserInput{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		Roles:        req.Roles,
		UserType:     domain.UserType(req.UserType),
		MobileNo:     req.MobileNo,
		CompanyName:  req.CompanyName,
		GstNo:        req.GstNo,
		City:         req.City,
		ShippingAddr: req.ShippingAddr,
		BillingAddr:  req.BillingAddr,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User created successfully",
		"data":    dto.ToUserResponse(user),
	})
}

// Get handles GET /api/users/:id. Accounts may read themselves; only a
// superAdmin may read others.
func (h *UsersHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := requireSelfOrSuperAdmin(c, id); err != nil {
		return err
	}

	user, err := h.users.Get(c.Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "User fetched successfully",
		"data":    dto.ToUserResponse(user),
	})
}

// Update handles PUT /api/users/:id. Role and type changes are reserved
// for super admins even on self-updates.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := requireSelfOrSuperAdmin(c, id); err != nil {
		return err
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("Invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return util.NewValidationError("Validation failed", dto.ValidationDetails(err))
	}

	identity := auth.CurrentIdentity(c)
	if (len(req.Roles) > 0 || req.UserType != nil) && !identity.HasRole(domain.RoleSuperAdmin) {
		return util.NewForbidden("You do not have permission to access this resource. Required role: superAdmin")
	}

	input := service.UpdateUserInput{
		Name:         req.Name,
		Password:     req.Password,
		Roles:        req.Roles,
		MobileNo:     req.MobileNo,
		CompanyName:  req.CompanyName,
		GstNo:        req.GstNo,
		City:         req.City,
		ShippingAddr: req.ShippingAddr,
		BillingAddr:  req.BillingAddr,
	}
	if req.UserType != nil {
		userType := domain.UserType(*req.UserType)
		input.UserType = &userType
	}

	user, err := h.users.Update(c.Context(), id, input)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "User updated successfully",
		"data":    dto.ToUserResponse(user),
	})
}

// Delete handles DELETE /api/users/:id.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	if err := h.users.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Bootstrap handles POST /api/bootstrap/admin: first-run superAdmin
// creation, open only while no accounts exist.
func (h *UsersHandler) Bootstrap(c *fiber.Ctx) error {
	var req dto.BootstrapAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("Invalid input", nil)
	}
	if err := req.Validate(); err != nil {
		return util.NewValidationError("Invalid input", dto.ValidationDetails(err))
	}

	user, err := h.users.BootstrapAdmin(c.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "SuperAdmin created successfully",
		"data":    dto.ToUserResponse(user),
	})
}

func requireSelfOrSuperAdmin(c *fiber.Ctx, id string) error {
	identity := auth.CurrentIdentity(c)
	if identity == nil {
		decision := auth.CheckAuthenticated(c)
		return decision.Reject()
	}
	if identity.ID != id && !identity.HasRole(domain.RoleSuperAdmin) {
		return util.NewForbidden("You do not have permission to access this resource. Required role: superAdmin")
	}
	return nil
}
