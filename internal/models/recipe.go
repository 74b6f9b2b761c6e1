package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Recipe struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Ingredients string             `bson:"ingredients" json:"ingredients"`
	Preparation string             `bson:"preparation" json:"preparation"`
	UserID      string             `bson:"userId,omitempty" json:"userId,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
}

// RecipeInput carries the three caller-mutable fields of a recipe.
type RecipeInput struct {
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
	Preparation string `json:"preparation"`
}
