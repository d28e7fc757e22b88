package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	passwordPlaceholder = "<PASSWORD>"
)

// Config holds all configuration for the application
type Config struct {
	Env           string
	ServerPort    string
	GinMode       string
	BaseURL       string
	MongoURI      string
	MongoPassword string
	MongoDatabase string
	RedisURI      string

	JWTSecret           string
	JWTExpiry           time.Duration
	JWTCookieExpiryDays int
	LogoutRevokesTokens bool

	StripeSecretKey     string
	StripeWebhookSecret string

	EmailFrom    string
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	EmailWorkers int

	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3UseSSL    bool

	RateLimitPerHour   int
	CORSAllowedOrigins []string
	TrustedProxies     []string
	QueryMaxLimit      int
	UploadMaxBytes     int64
}

// Load reads configuration from .env file and environment variables
func Load() *Config {
	// Missing files are fine, variables may come from the environment
	_ = godotenv.Load(".env")
	_ = godotenv.Load("config.env")

	cfg := &Config{
		Env:           getEnv("APP_ENV", EnvDevelopment),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		BaseURL:       strings.TrimRight(getEnv("BASE_URL", "http://localhost:8080"), "/"),
		MongoURI:      getEnvRequired("MONGO_URI"),
		MongoPassword: getEnv("MONGO_PASSWORD", ""),
		MongoDatabase: getEnvRequired("MONGO_DATABASE"),
		RedisURI:      getEnv("REDIS_URI", ""),

		JWTSecret:           getEnvRequired("JWT_SECRET"),
		JWTExpiry:           parseDuration(getEnv("JWT_EXPIRES_IN", "2160h")),
		JWTCookieExpiryDays: parseInt(getEnv("JWT_COOKIE_EXPIRES_IN", "90")),
		LogoutRevokesTokens: parseBool(getEnv("LOGOUT_REVOKES_TOKENS", "false")),

		StripeSecretKey:     getEnv("STRIPE_SECRET_KEY", ""),
		StripeWebhookSecret: getEnv("STRIPE_WEBHOOK_SECRET", ""),

		EmailFrom:    getEnv("EMAIL_FROM", "Natours <hello@natours.io>"),
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     parseInt(getEnv("SMTP_PORT", "587")),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		EmailWorkers: parseInt(getEnv("EMAIL_WORKERS", "2")),

		S3Endpoint:  getEnv("S3_ENDPOINT", ""),
		S3AccessKey: getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey: getEnv("S3_SECRET_KEY", ""),
		S3Bucket:    getEnv("S3_BUCKET", "tourbook"),
		S3UseSSL:    parseBool(getEnv("S3_USE_SSL", "false")),

		RateLimitPerHour:   parseInt(getEnv("RATE_LIMIT_PER_HOUR", "100")),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		TrustedProxies:     splitList(getEnv("TRUSTED_PROXIES", "")),
		QueryMaxLimit:      parseInt(getEnv("QUERY_MAX_LIMIT", "1000")),
		UploadMaxBytes:     int64(parseInt(getEnv("UPLOAD_MAX_BYTES", "10485760"))),
	}

	return cfg
}

// IsProduction reports whether the app runs with production error output.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// MongoConnectionString substitutes the password placeholder in MONGO_URI.
func (c *Config) MongoConnectionString() string {
	if c.MongoPassword == "" {
		return c.MongoURI
	}
	return strings.Replace(c.MongoURI, passwordPlaceholder, c.MongoPassword, 1)
}

// RevokesTokens reports whether logout revocation can take effect. The
// denylist lives in Redis, so the flag alone is not enough.
func (c *Config) RevokesTokens() bool {
	return c.LogoutRevokesTokens && c.RedisURI != ""
}

// CookieExpiry is the lifetime of the session cookie.
func (c *Config) CookieExpiry() time.Duration {
	return time.Duration(c.JWTCookieExpiryDays) * 24 * time.Hour
}

// getEnv reads an environment variable with a fallback default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvRequired reads an environment variable and exits if not set
func getEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Required environment variable %s is not set", key)
	}
	return value
}

// parseDuration parses a duration string, exits on error
func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		log.Fatalf("Invalid duration format: %s", s)
	}
	return d
}

func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("Invalid integer value: %s", s)
	}
	return n
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		log.Fatalf("Invalid boolean value: %s", s)
	}
	return b
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
