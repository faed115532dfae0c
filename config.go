package main

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is read from the environment after godotenv has loaded any .env
// file in the working directory.
type Config struct {
	Port      string `env:"PORT" envDefault:"8080"`
	ImagesDir string `env:"IMAGES_DIR" envDefault:"./images"`
	StaticDir string `env:"STATIC_DIR" envDefault:"./static"`

	AnalyticsEnabled bool          `env:"ANALYTICS_ENABLED" envDefault:"true"`
	DBPath           string        `env:"DB_PATH" envDefault:"portfolio.db"`
	VisitorRetention time.Duration `env:"VISITOR_RETENTION" envDefault:"8760h"`
	HashSalt         string        `env:"HASH_SALT"`

	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
