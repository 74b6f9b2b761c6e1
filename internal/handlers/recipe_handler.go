package handlers

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"cookmaster/internal/middleware"
	"cookmaster/internal/models"
	"cookmaster/internal/services"
)

type RecipeHandler struct {
	recipes *services.RecipeService
}

func NewRecipeHandler(recipes *services.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

// Create handles POST /recipes.
func (h *RecipeHandler) Create(c *fiber.Ctx) error {
	var input models.RecipeInput
	if err := c.BodyParser(&input); err != nil {
		return writeError(c, models.ErrInvalidEntries)
	}

	recipe, err := h.recipes.Create(c.Context(), middleware.Claims(c), input)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"recipe": recipe})
}

// List handles GET /recipes. An empty store is a 404, not an empty list.
func (h *RecipeHandler) List(c *fiber.Ctx) error {
	recipes, err := h.recipes.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	if len(recipes) == 0 {
		return writeError(c, models.ErrNoRecipes)
	}

	return c.JSON(recipes)
}

// Get handles GET /recipes/:id.
func (h *RecipeHandler) Get(c *fiber.Ctx) error {
	recipe, err := h.recipes.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(recipe)
}

// Edit handles PUT /recipes/:id.
func (h *RecipeHandler) Edit(c *fiber.Ctx) error {
	var input models.RecipeInput
	if err := c.BodyParser(&input); err != nil {
		return writeError(c, models.ErrInvalidEntries)
	}

	recipe, err := h.recipes.Edit(c.Context(), c.Params("id"), input)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(recipe)
}

// Delete handles DELETE /recipes/:id.
func (h *RecipeHandler) Delete(c *fiber.Ctx) error {
	if err := h.recipes.Delete(c.Context(), middleware.Claims(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// SetImage handles PUT /recipes/:id/image with a multipart "image" field.
func (h *RecipeHandler) SetImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return writeError(c, models.ErrInvalidEntries)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return writeError(c, models.ErrInvalidEntries)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return writeError(c, err)
	}

	recipe, err := h.recipes.SetImage(c.Context(), middleware.Claims(c), c.Params("id"),
		fileHeader.Filename, data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(recipe)
}
