package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port        string
	DBDriver    string // postgres, mysql or sqlite
	DBName      string
	JWTKey      string
	SaltRound   int
	AdminSecret string

	MediaDriver string // disk or s3
	UploadDir   string

	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3Region    string
	S3PublicURL string

	SendgridKey string
	EmailSender string
}

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	cfg := &Config{
		Port:        getEnv("PORT", "3000"),
		DBDriver:    getEnv("DB_DRIVER", "postgres"),
		DBName:      getEnv("DB_NAME", "skillup"),
		JWTKey:      getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound:   getEnvInt("SALT_ROUND", 10),
		AdminSecret: getEnv("ADMIN_SIGNUP_SECRET", "defaultAdminSecret"),

		MediaDriver: getEnv("MEDIA_DRIVER", "disk"),
		UploadDir:   getEnv("UPLOAD_DIR", "./public/uploads"),

		S3Endpoint:  getEnv("S3_ENDPOINT", "localhost:9000"),
		S3AccessKey: getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey: getEnv("S3_SECRET_KEY", ""),
		S3Bucket:    getEnv("S3_BUCKET", "skillup-media"),
		S3Region:    getEnv("S3_REGION", "us-east-1"),
		S3PublicURL: getEnv("S3_PUBLIC_URL", ""),

		SendgridKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender: getEnv("EMAIL_SENDER", "noreply@skillup.app"),
	}

	// Validate critical configuration
	if cfg.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if cfg.AdminSecret == "defaultAdminSecret" {
		log.Println("Warning: Using default ADMIN_SIGNUP_SECRET. Update it in your environment.")
	}

	return cfg
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
