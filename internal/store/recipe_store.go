package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cookmaster/internal/models"
)

// RecipeStore persists recipe records in the recipes collection.
type RecipeStore struct {
	collection *mongo.Collection
}

func NewRecipeStore(db *mongo.Database) *RecipeStore {
	return &RecipeStore{collection: db.Collection("recipes")}
}

// Create inserts the recipe and returns it with its generated id.
func (s *RecipeStore) Create(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	if recipe.ID.IsZero() {
		recipe.ID = primitive.NewObjectID()
	}
	if _, err := s.collection.InsertOne(ctx, recipe); err != nil {
		return models.Recipe{}, fmt.Errorf("insert recipe: %w", err)
	}
	return recipe, nil
}

// FindAll returns every recipe in store order.
func (s *RecipeStore) FindAll(ctx context.Context) ([]models.Recipe, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find recipes: %w", err)
	}
	defer cursor.Close(ctx)

	var recipes []models.Recipe
	if err := cursor.All(ctx, &recipes); err != nil {
		return nil, fmt.Errorf("decode recipes: %w", err)
	}
	return recipes, nil
}

// FindByID looks a recipe up by id.
func (s *RecipeStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.Recipe, error) {
	var recipe models.Recipe
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&recipe)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Recipe{}, models.ErrNotFound
	}
	if err != nil {
		return models.Recipe{}, fmt.Errorf("find recipe by id: %w", err)
	}
	return recipe, nil
}

// Update replaces the three mutable fields and returns the updated recipe.
func (s *RecipeStore) Update(ctx context.Context, id primitive.ObjectID, input models.RecipeInput) (models.Recipe, error) {
	update := bson.M{"$set": bson.M{
		"name":        input.Name,
		"ingredients": input.Ingredients,
		"preparation": input.Preparation,
	}}

	var recipe models.Recipe
	err := s.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&recipe)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Recipe{}, models.ErrNotFound
	}
	if err != nil {
		return models.Recipe{}, fmt.Errorf("update recipe: %w", err)
	}
	return recipe, nil
}

// SetImage stores the image URL on the recipe and returns the updated record.
func (s *RecipeStore) SetImage(ctx context.Context, id primitive.ObjectID, url string) (models.Recipe, error) {
	var recipe models.Recipe
	err := s.collection.FindOneAndUpdate(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"image": url}},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&recipe)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Recipe{}, models.ErrNotFound
	}
	if err != nil {
		return models.Recipe{}, fmt.Errorf("set recipe image: %w", err)
	}
	return recipe, nil
}

// Delete removes the recipe by id.
func (s *RecipeStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	if result.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
