package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime configuration, parsed from environment variables.
type Config struct {
	Port      string        `env:"PORT" envDefault:"8080"`
	MongoURI  string        `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDB   string        `env:"MONGO_DB" envDefault:"Cookmaster"`
	JWTSecret string        `env:"JWT_SECRET" envDefault:"supersecret"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"15m"`
	Minio     Minio         `envPrefix:"MINIO_"`
}

// Minio contains object storage parameters for recipe images.
type Minio struct {
	Endpoint  string `env:"ENDPOINT" envDefault:"localhost:9000"`
	AccessKey string `env:"ACCESS_KEY" envDefault:"minioadmin"`
	SecretKey string `env:"SECRET_KEY" envDefault:"minioadmin"`
	Bucket    string `env:"BUCKET" envDefault:"cookmaster-images"`
	UseSSL    bool   `env:"USE_SSL" envDefault:"false"`
}

// Load parses the configuration from the environment.
func Load() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
