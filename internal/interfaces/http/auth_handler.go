package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/viewlist/viewlist-api/internal/application/auth"
	"github.com/viewlist/viewlist-api/internal/application/dto"
	"github.com/viewlist/viewlist-api/internal/domain"
)

// AuthHandler handles registration, login and account management.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	env string
}

// NewAuthHandler builds the handler injecting the use case.
func NewAuthHandler(uc *auth.AuthUseCase, env string) *AuthHandler {
	return &AuthHandler{uc: uc, env: env}
}

// Register godoc
// @Summary      Register user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "User fields"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}
	out, err := h.uc.Register(in)
	if err != nil {
		if err == domain.ErrEmailAlreadyExists {
			return badRequest(c, "User with this email already exists")
		}
		// Lost the race against a concurrent register with the same email.
		if _, ok := domain.AsDuplicateKey(err); ok {
			return badRequest(c, "A user with this email already exists")
		}
		return internalError(c, h.env, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Response{
		Success: true,
		Message: "User created successfully",
		Data:    dto.RegisterResponse{User: *out},
	})
}

// Login godoc
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credentials"
// @Success      200   {object}  dto.Response
// @Failure      401   {object}  dto.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}
	out, err := h.uc.Login(in)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Response{
				Success: false,
				Message: "User not found",
			})
		}
		if err == domain.ErrUnauthorized {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Response{
				Success: false,
				Message: "Invalid email or password",
			})
		}
		return internalError(c, h.env, err)
	}
	return c.JSON(dto.Response{
		Success: true,
		Message: "Login successful",
		Data:    out,
	})
}

// GetProfile godoc
// @Summary      Get profile
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Security     AuthToken
// @Router       /auth/profile [get]
func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	userID := GetUserID(c)
	out, err := h.uc.GetProfile(userID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return notFound(c, "User not found")
		}
		return internalError(c, h.env, err)
	}
	return c.JSON(dto.Response{
		Success: true,
		Data:    dto.RegisterResponse{User: *out},
	})
}

// UpdateProfile godoc
// @Summary      Update profile
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateProfileRequest  true  "Profile fields"
// @Success      200   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Security     AuthToken
// @Router       /auth/profile [put]
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}
	out, changed, err := h.uc.UpdateProfile(userID, in.Name)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return notFound(c, "User not found")
		}
		return internalError(c, h.env, err)
	}
	if !changed {
		return notFound(c, "User not found or no changes made")
	}
	return c.JSON(dto.Response{
		Success: true,
		Message: "Profile updated successfully",
		Data:    dto.RegisterResponse{User: *out},
	})
}

// ChangePassword godoc
// @Summary      Change password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChangePasswordRequest  true  "Passwords"
// @Success      200   {object}  dto.Response
// @Failure      401   {object}  dto.Response
// @Security     AuthToken
// @Router       /auth/change-password [put]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.uc.ChangePassword(userID, in.CurrentPassword, in.NewPassword); err != nil {
		if err == domain.ErrUserNotFound {
			return notFound(c, "User not found")
		}
		if err == domain.ErrUnauthorized {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Response{
				Success: false,
				Message: "Current password is incorrect",
			})
		}
		return internalError(c, h.env, err)
	}
	return c.JSON(dto.Response{
		Success: true,
		Message: "Password changed successfully",
	})
}

// Delete godoc
// @Summary      Delete user
// @Tags         auth
// @Produce      json
// @Param        id   path  string  true  "User ID"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Security     AuthToken
// @Router       /auth/{id} [delete]
func (h *AuthHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "User ID is required")
	}
	if err := h.uc.Delete(id); err != nil {
		if err == domain.ErrUserNotFound {
			return notFound(c, "User not found")
		}
		return internalError(c, h.env, err)
	}
	return c.JSON(dto.Response{
		Success: true,
		Message: "User deleted successfully",
	})
}
