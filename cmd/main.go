package main

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"cookmaster/internal/config"
	"cookmaster/internal/db"
	"cookmaster/internal/handlers"
	"cookmaster/internal/logger"
	"cookmaster/internal/middleware"
	"cookmaster/internal/services"
	"cookmaster/internal/storage"
	"cookmaster/internal/store"
	"cookmaster/internal/token"
)

func main() {
	log := logger.New(slog.LevelInfo)

	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config", "error", err)
	}

	mongoDB, err := db.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("failed to connect to mongodb", "error", err)
	}
	log.Info("connected to mongodb", "db", cfg.MongoDB)

	images, err := storage.NewImageStore(cfg.Minio)
	if err != nil {
		log.Fatal("failed to connect to minio", "error", err)
	}
	log.Info("connected to minio", "bucket", cfg.Minio.Bucket)

	tokens := token.NewService(cfg.JWTSecret, cfg.JWTTTL)

	userService := services.NewUserService(store.NewUserStore(mongoDB), tokens, log)
	recipeService := services.NewRecipeService(store.NewRecipeStore(mongoDB), images, log)

	app := fiber.New()
	app.Use(fiberlogger.New())
	app.Use(cors.New())

	handlers.RegisterRoutes(app,
		handlers.NewUserHandler(userService),
		handlers.NewRecipeHandler(recipeService),
		middleware.Auth(tokens),
	)

	log.Fatal("server stopped", "error", app.Listen(":"+cfg.Port))
}
