package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"cookmaster/internal/logger"
	"cookmaster/internal/models"
	"cookmaster/internal/utils"
)

// RecipeStore is the recipe persistence consumed by RecipeService.
type RecipeStore interface {
	Create(ctx context.Context, recipe models.Recipe) (models.Recipe, error)
	FindAll(ctx context.Context) ([]models.Recipe, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Recipe, error)
	Update(ctx context.Context, id primitive.ObjectID, input models.RecipeInput) (models.Recipe, error)
	SetImage(ctx context.Context, id primitive.ObjectID, url string) (models.Recipe, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ImageStore uploads recipe images and returns their public URL.
type ImageStore interface {
	Put(ctx context.Context, objectName string, data []byte, contentType string) (string, error)
}

// RecipeService implements recipe CRUD and the access policy around it.
// The policy is asymmetric on purpose: edit checks neither ownership nor
// role, delete is admin-only. That is the observed contract and tightening
// it needs an explicit decision by the API owner.
type RecipeService struct {
	recipes RecipeStore
	images  ImageStore
	logger  *logger.Logger
}

func NewRecipeService(recipes RecipeStore, images ImageStore, logger *logger.Logger) *RecipeService {
	return &RecipeService{recipes: recipes, images: images, logger: logger}
}

// parseID validates the id shape before any store lookup happens.
func parseID(id string) (primitive.ObjectID, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, models.ErrInvalidID
	}
	return objID, nil
}

// Create stores a new recipe owned by the caller.
func (s *RecipeService) Create(ctx context.Context, claims *models.Claims, input models.RecipeInput) (models.Recipe, error) {
	if utils.AnyEmpty(input.Name, input.Ingredients, input.Preparation) {
		return models.Recipe{}, models.ErrInvalidEntries
	}

	return s.recipes.Create(ctx, models.Recipe{
		Name:        input.Name,
		Ingredients: input.Ingredients,
		Preparation: input.Preparation,
		UserID:      claims.UserID,
	})
}

// List returns all recipes in store order.
func (s *RecipeService) List(ctx context.Context) ([]models.Recipe, error) {
	return s.recipes.FindAll(ctx)
}

// GetByID resolves a recipe by its id.
func (s *RecipeService) GetByID(ctx context.Context, id string) (models.Recipe, error) {
	objID, err := parseID(id)
	if err != nil {
		return models.Recipe{}, err
	}

	recipe, err := s.recipes.FindByID(ctx, objID)
	if errors.Is(err, models.ErrNotFound) {
		return models.Recipe{}, models.ErrRecipeNotFound
	}
	return recipe, err
}

// Edit replaces the recipe's name, ingredients and preparation. Any
// authenticated caller may edit any recipe.
func (s *RecipeService) Edit(ctx context.Context, id string, input models.RecipeInput) (models.Recipe, error) {
	objID, err := parseID(id)
	if err != nil {
		return models.Recipe{}, err
	}

	recipe, err := s.recipes.Update(ctx, objID, input)
	if errors.Is(err, models.ErrNotFound) {
		return models.Recipe{}, models.ErrRecipeNotFound
	}
	return recipe, err
}

// Delete removes a recipe. Admin callers only.
func (s *RecipeService) Delete(ctx context.Context, claims *models.Claims, id string) error {
	if claims.Role != models.RoleAdmin {
		return models.ErrDeleteAdminOnly
	}

	recipe, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.recipes.Delete(ctx, recipe.ID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.ErrRecipeNotFound
		}
		return err
	}

	s.logger.Info("recipe deleted", "id", id, "by", claims.UserID)
	return nil
}

// SetImage uploads an image for the recipe and stores its URL on the
// record. Only the recipe's owner or an admin may set it.
func (s *RecipeService) SetImage(ctx context.Context, claims *models.Claims, id, filename string, data []byte, contentType string) (models.Recipe, error) {
	objID, err := parseID(id)
	if err != nil {
		return models.Recipe{}, err
	}

	recipe, err := s.recipes.FindByID(ctx, objID)
	if errors.Is(err, models.ErrNotFound) {
		return models.Recipe{}, models.ErrRecipeNotFound
	}
	if err != nil {
		return models.Recipe{}, err
	}

	if claims.Role != models.RoleAdmin && recipe.UserID != claims.UserID {
		return models.Recipe{}, models.ErrImageOwnerOnly
	}

	objectName := fmt.Sprintf("%s_%s", objID.Hex(), filename)
	url, err := s.images.Put(ctx, objectName, data, contentType)
	if err != nil {
		return models.Recipe{}, err
	}

	updated, err := s.recipes.SetImage(ctx, objID, url)
	if errors.Is(err, models.ErrNotFound) {
		return models.Recipe{}, models.ErrRecipeNotFound
	}
	return updated, err
}
