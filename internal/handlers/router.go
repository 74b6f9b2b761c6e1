package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes wires the API surface onto the app. The auth handler gates
// every route that needs a verified identity; role checks happen in the
// services so each one can return its own message.
func RegisterRoutes(app *fiber.App, users *UserHandler, recipes *RecipeHandler, auth fiber.Handler) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("")
	})

	app.Post("/users", users.Register)
	app.Post("/users/admin", auth, users.RegisterAdmin)
	app.Post("/login", users.Login)

	app.Post("/recipes", auth, recipes.Create)
	app.Get("/recipes", recipes.List)
	app.Get("/recipes/:id", recipes.Get)
	app.Put("/recipes/:id", auth, recipes.Edit)
	app.Delete("/recipes/:id", auth, recipes.Delete)
	app.Put("/recipes/:id/image", auth, recipes.SetImage)
}
