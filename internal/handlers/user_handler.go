package handlers

import (
	"github.com/gofiber/fiber/v2"

	"cookmaster/internal/middleware"
	"cookmaster/internal/models"
	"cookmaster/internal/services"
)

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /users.
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, models.ErrInvalidEntries)
	}

	user, err := h.users.Register(c.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": user})
}

// RegisterAdmin handles POST /users/admin. The route is behind the auth
// gate; the admin check itself lives in the service.
func (h *UserHandler) RegisterAdmin(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, models.ErrInvalidEntries)
	}

	claims := middleware.Claims(c)
	user, err := h.users.RegisterAdmin(c.Context(), claims.Role, req.Name, req.Email, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": user})
}

// Login handles POST /login.
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, models.ErrInvalidCredentials)
	}

	token, err := h.users.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{"token": token})
}
