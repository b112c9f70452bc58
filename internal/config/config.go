package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL   string
	JWTSecret     string
	Port          string
	CORSOrigin    string
	Env           string
	MigrationsDir string
	SheetsAPIURL  string
	SheetsToken   string
}

func Load() Config {
	// Local development reads a .env file; deployed environments set real
	// env vars and have no file.
	_ = godotenv.Load()

	cfg := Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		Port:          os.Getenv("PORT"),
		CORSOrigin:    os.Getenv("CORS_ORIGIN"),
		Env:           os.Getenv("APP_ENV"),
		MigrationsDir: os.Getenv("MIGRATIONS_DIR"),
		SheetsAPIURL:  os.Getenv("SHEETS_API_URL"),
		SheetsToken:   os.Getenv("SHEETS_API_TOKEN"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.MigrationsDir == "" {
		cfg.MigrationsDir = "migrations"
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}
	return cfg
}
