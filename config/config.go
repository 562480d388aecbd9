package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	Env                string
	LogLevel           string
	DatabaseURL        string // Supabase Postgres connection string (user accounts)
	JWTSecret          string
	FirestoreProjectID string
	CredentialsFile    string // optional service-account JSON for Firestore
	GeminiAPIKey       string
	GeminiModel        string
}

func Load() Config {
	_ = godotenv.Load()
	cfg := Config{
		Port:               get("PORT", "8080"),
		Env:                get("APP_ENV", "development"),
		LogLevel:           get("LOG_LEVEL", "info"),
		DatabaseURL:        must("SUPABASE_DB_URL"),
		JWTSecret:          must("JWT_SECRET"),
		FirestoreProjectID: must("FIRESTORE_PROJECT_ID"),
		CredentialsFile:    get("GOOGLE_APPLICATION_CREDENTIALS", ""),
		GeminiAPIKey:       get("GEMINI_API_KEY", ""),
		GeminiModel:        get("GEMINI_MODEL", "gemini-2.5-pro"),
	}
	return cfg
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing required env: %s", k)
	}
	return v
}
