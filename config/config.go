package config

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBHost      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBPort      string
	TokenSecret string
}

// Load reads configuration from a .env file (if present) and the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Port:        os.Getenv("PORT"),
		DBHost:      os.Getenv("DB_HOST"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      os.Getenv("DB_NAME"),
		DBPort:      os.Getenv("DB_PORT"),
		TokenSecret: os.Getenv("TOKEN_SECRET"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DBHost == "" {
		cfg.DBHost = "localhost"
	}
	if cfg.DBPort == "" {
		cfg.DBPort = "5432"
	}
	if cfg.DBUser == "" || cfg.DBName == "" {
		return nil, errors.New("DB_USER and DB_NAME are required")
	}
	if cfg.TokenSecret == "" {
		return nil, errors.New("TOKEN_SECRET is required")
	}

	return cfg, nil
}
