package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	FrontendBaseURL string
	PosthogAPIKey   string

	// Google Drive storage settings. DriveFolders maps an entity type tag
	// (FINANCE, LETTER, ...) to the destination folder id for its uploads.
	GoogleCredentialsFile string
	DriveFolders          map[string]string
}

// driveFolderKeys maps entity type tags to their environment variable names.
var driveFolderKeys = map[string]string{
	"FINANCE":    "DRIVE_FOLDER_FINANCE",
	"LETTER":     "DRIVE_FOLDER_LETTER",
	"DOCUMENT":   "DRIVE_FOLDER_DOCUMENT",
	"EVENT":      "DRIVE_FOLDER_EVENT",
	"GALLERY":    "DRIVE_FOLDER_GALLERY",
	"ARTICLE":    "DRIVE_FOLDER_ARTICLE",
	"STRUCTURE":  "DRIVE_FOLDER_STRUCTURE",
	"MANAGEMENT": "DRIVE_FOLDER_MANAGEMENT",
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "org-management-app")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("GOOGLE_CREDENTIALS_FILE", "credentials.json")
	for _, key := range driveFolderKeys {
		viper.SetDefault(key, "")
	}

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	cfg.GoogleCredentialsFile = viper.GetString("GOOGLE_CREDENTIALS_FILE")
	cfg.DriveFolders = make(map[string]string, len(driveFolderKeys))
	for entityType, key := range driveFolderKeys {
		folderID := viper.GetString(key)
		if folderID == "" {
			log.Printf("Warning: %s not set. Uploads for %s will land in the drive root.\n", key, entityType)
		}
		cfg.DriveFolders[entityType] = folderID
	}

	return cfg, nil
}
