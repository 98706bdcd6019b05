package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port    string
	Env     string // "production" enables the Secure flag on the session cookie
	SiteURL string

	MongoURI string
	DBName   string

	JWTSecret string

	TelegramBotToken string
	TelegramChatID   string

	// Image storage. "cloudinary" (default) or "s3".
	StorageBackend      string
	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	S3Bucket            string
	S3Region            string
	S3Endpoint          string // non-empty for R2 / S3-compatible stores
	S3AccessKeyID       string
	S3SecretKey         string
	S3PublicBaseURL     string

	AllowedOrigins []string
	MaxUploadMB    int64
}

func Load() (*Config, error) {
	maxMB := int64(5)
	if v := getEnv("MAX_UPLOAD_MB", "5"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			maxMB = n
		}
	}

	var origins []string
	for _, o := range strings.Split(getEnv("ALLOWED_ORIGINS", ""), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return &Config{
		Port:                getEnv("PORT", "8080"),
		Env:                 getEnv("ENV", "development"),
		SiteURL:             getEnv("SITE_URL", "http://localhost:8080"),
		MongoURI:            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		DBName:              getEnv("MONGODB_DB", "portfolio"),
		JWTSecret:           getEnv("JWT_SECRET", "change-me-in-production"),
		TelegramBotToken:    getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID:      getEnv("TELEGRAM_CHAT_ID", ""),
		StorageBackend:      getEnv("STORAGE_BACKEND", "cloudinary"),
		CloudinaryCloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getEnv("CLOUDINARY_API_SECRET", ""),
		S3Bucket:            getEnv("AWS_S3_BUCKET", ""),
		S3Region:            getEnv("AWS_REGION", "auto"),
		S3Endpoint:          getEnv("S3_ENDPOINT", ""),
		S3AccessKeyID:       getEnv("AWS_ACCESS_KEY_ID", ""),
		S3SecretKey:         getEnv("AWS_SECRET_ACCESS_KEY", ""),
		S3PublicBaseURL:     getEnv("S3_PUBLIC_BASE_URL", ""),
		AllowedOrigins:      origins,
		MaxUploadMB:         maxMB,
	}, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// MaxUploadBytes is the ceiling applied to the uploaded file itself (not the whole request).
func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB * 1024 * 1024
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// RequiredEnvVars are checked at startup; app exits if any are unset.
var RequiredEnvVars = []string{
	"MONGODB_URI",
	"MONGODB_DB",
	"JWT_SECRET",
}

// OptionalEnvVars are logged at startup so you can confirm they are loaded when set.
var OptionalEnvVars = []string{
	"PORT",
	"SITE_URL",
	"TELEGRAM_BOT_TOKEN",
	"TELEGRAM_CHAT_ID",
	"CLOUDINARY_CLOUD_NAME",
	"AWS_S3_BUCKET",
	"ALLOWED_ORIGINS",
	"MAX_UPLOAD_MB",
}

var secretEnvVars = map[string]bool{
	"MONGODB_URI":           true,
	"JWT_SECRET":            true,
	"TELEGRAM_BOT_TOKEN":    true,
	"CLOUDINARY_API_SECRET": true,
	"AWS_SECRET_ACCESS_KEY": true,
}

// ValidateEnv checks that all required env vars are set and logs status of required + optional.
// Calls log.Fatal if any required var is missing.
func ValidateEnv() {
	var missing []string
	for _, key := range RequiredEnvVars {
		if strings.TrimSpace(os.Getenv(key)) == "" {
			missing = append(missing, key)
		} else {
			log.Printf("env %s loaded", key)
		}
	}
	if len(missing) > 0 {
		log.Fatalf("missing required env: %s (set these in .env or environment)", strings.Join(missing, ", "))
	}
	for _, key := range OptionalEnvVars {
		v := strings.TrimSpace(os.Getenv(key))
		switch {
		case v == "":
			log.Printf("env %s not set (optional)", key)
		case secretEnvVars[key]:
			log.Printf("env %s loaded", key)
		default:
			log.Printf("env %s = %s", key, v)
		}
	}
	if os.Getenv("JWT_SECRET") == "change-me-in-production" {
		log.Fatal("JWT_SECRET must be set to a strong secret (not the default change-me-in-production)")
	}
}
