// Package config loads service settings from the environment, with an
// optional .env file for local development.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// TargetName is the employee whose schedule uploads are parsed for
	// unless a request overrides it.
	TargetName string
	// Port is the HTTP listen port.
	Port string
	// DatabaseURL enables parse history storage when set.
	DatabaseURL string
	// OCRLanguage is the Tesseract language pack for scanned uploads.
	OCRLanguage string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		TargetName:  getEnv("TARGET_NAME", "Rohan"),
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		OCRLanguage: getEnv("OCR_LANGUAGE", "eng"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
