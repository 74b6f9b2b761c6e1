package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"cookmaster/internal/models"
)

type fakeUserStore struct {
	users []models.User
}

func (f *fakeUserStore) Create(_ context.Context, user models.User) (models.User, error) {
	user.ID = primitive.NewObjectID()
	f.users = append(f.users, user)
	return user, nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, models.ErrNotFound
}

func (f *fakeUserStore) FindByID(_ context.Context, id primitive.ObjectID) (models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, models.ErrNotFound
}

type fakeRecipeStore struct {
	recipes       []models.Recipe
	findByIDCalls int
	deleteCalls   int
}

func (f *fakeRecipeStore) Create(_ context.Context, recipe models.Recipe) (models.Recipe, error) {
	recipe.ID = primitive.NewObjectID()
	f.recipes = append(f.recipes, recipe)
	return recipe, nil
}

func (f *fakeRecipeStore) FindAll(_ context.Context) ([]models.Recipe, error) {
	return append([]models.Recipe(nil), f.recipes...), nil
}

func (f *fakeRecipeStore) FindByID(_ context.Context, id primitive.ObjectID) (models.Recipe, error) {
	f.findByIDCalls++
	for _, r := range f.recipes {
		if r.ID == id {
			return r, nil
		}
	}
	return models.Recipe{}, models.ErrNotFound
}

func (f *fakeRecipeStore) Update(_ context.Context, id primitive.ObjectID, input models.RecipeInput) (models.Recipe, error) {
	for i, r := range f.recipes {
		if r.ID == id {
			f.recipes[i].Name = input.Name
			f.recipes[i].Ingredients = input.Ingredients
			f.recipes[i].Preparation = input.Preparation
			return f.recipes[i], nil
		}
	}
	return models.Recipe{}, models.ErrNotFound
}

func (f *fakeRecipeStore) SetImage(_ context.Context, id primitive.ObjectID, url string) (models.Recipe, error) {
	for i, r := range f.recipes {
		if r.ID == id {
			f.recipes[i].Image = url
			return f.recipes[i], nil
		}
	}
	return models.Recipe{}, models.ErrNotFound
}

func (f *fakeRecipeStore) Delete(_ context.Context, id primitive.ObjectID) error {
	f.deleteCalls++
	for i, r := range f.recipes {
		if r.ID == id {
			f.recipes = append(f.recipes[:i], f.recipes[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

type fakeImageStore struct {
	objects map[string][]byte
}

func (f *fakeImageStore) Put(_ context.Context, objectName string, data []byte, _ string) (string, error) {
	if f.objects == nil {
		f.objects = make(map[string][]byte)
	}
	f.objects[objectName] = data
	return fmt.Sprintf("http://localhost:9000/cookmaster-images/%s", objectName), nil
}
