package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT       string
	DB_URL     string
	JWT_SECRET string

	BASE_URL     string
	FRONTEND_URL string

	// File storage for submission uploads. When S3_BUCKET is set the S3
	// backend is used, otherwise files land under UPLOAD_DIR on disk.
	UPLOAD_DIR  string
	S3_BUCKET   string
	S3_REGION   string
	S3_ENDPOINT string
	S3_ACCESS   string
	S3_SECRET   string

	GOOGLE_CLIENT_ID         string
	GOOGLE_CLIENT_SECRET     string
	GOOGLE_REDIRECT_URL      string
	GOOGLE_FRONTEND_REDIRECT string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")

	BASE_URL = getEnv("BASE_URL", "http://localhost:8080")
	FRONTEND_URL = getEnv("FRONTEND_URL", "http://localhost:5173")

	UPLOAD_DIR = getEnv("UPLOAD_DIR", "uploads")
	S3_BUCKET = getEnv("S3_BUCKET", "")
	S3_REGION = getEnv("S3_REGION", "us-east-1")
	S3_ENDPOINT = getEnv("S3_ENDPOINT", "")
	S3_ACCESS = getEnv("S3_ACCESS_KEY", "")
	S3_SECRET = getEnv("S3_SECRET_KEY", "")

	// Google sign-in is optional: the routes answer 404-style errors when unset
	GOOGLE_CLIENT_ID = getEnv("GOOGLE_CLIENT_ID", "")
	GOOGLE_CLIENT_SECRET = getEnv("GOOGLE_CLIENT_SECRET", "")
	GOOGLE_REDIRECT_URL = getEnv("GOOGLE_REDIRECT_URL", "")
	GOOGLE_FRONTEND_REDIRECT = getEnv("GOOGLE_FRONTEND_REDIRECT", "")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
