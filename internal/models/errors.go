package models

import (
	"errors"
	"net/http"
)

// ErrNotFound is returned by the stores when a lookup matches nothing.
// Services translate it into the appropriate APIError.
var ErrNotFound = errors.New("not found")

// APIError is a failure the API contract knows about: a fixed HTTP status
// and the exact message clients depend on. The set below is closed; anything
// else reaching a handler is treated as an internal server error.
type APIError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

var (
	ErrInvalidEntries     = &APIError{Status: http.StatusBadRequest, Message: "Invalid entries. Try again."}
	ErrEmailRegistered    = &APIError{Status: http.StatusConflict, Message: "Email already registered"}
	ErrAdminOnly          = &APIError{Status: http.StatusForbidden, Message: "Only admins can register new admins"}
	ErrInvalidCredentials = &APIError{Status: http.StatusUnauthorized, Message: "invalid credentials"}

	ErrMissingToken   = &APIError{Status: http.StatusUnauthorized, Message: "missing auth token"}
	ErrMalformedToken = &APIError{Status: http.StatusUnauthorized, Message: "jwt malformed"}
	ErrExpiredToken   = &APIError{Status: http.StatusUnauthorized, Message: "jwt expired"}

	// Invalid ids surface as 404, not 400. Existing clients rely on it.
	ErrInvalidID       = &APIError{Status: http.StatusNotFound, Message: "invalid id"}
	ErrRecipeNotFound  = &APIError{Status: http.StatusNotFound, Message: "recipe not found"}
	ErrNoRecipes       = &APIError{Status: http.StatusNotFound, Message: "No registered recipe."}
	ErrDeleteAdminOnly = &APIError{Status: http.StatusUnauthorized, Message: "only admins can delete recipes"}
	ErrImageOwnerOnly  = &APIError{Status: http.StatusUnauthorized, Message: "only the recipe owner or an admin can set the image"}
)
