package config

import (
	"os"
	"strconv"
	"time"

	usecasecontract "github.com/mikiasgoitom/MidnightMuse/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	Port                     string
	AppEnv                   string
	LogLevel                 string
	AppBaseURL               string
	JWTSecret                string
	AccessTokenExpiry        time.Duration
	PasswordResetTokenExpiry time.Duration
	AllowHeaderAuth          bool
	RateLimitPerSecond       float64

	MongoURI    string
	MongoDBName string
	RedisURL    string

	AIServiceAPIKey string
	AIModel         string

	EmailHost        string
	EmailPort        string
	EmailUsername    string
	EmailAppPassword string
	EmailFrom        string

	GoogleClientID     string
	GoogleClientSecret string

	AdminEmail     string
	AdminPassword  string
	AdminName      string
	SeedSampleData bool
}

var _ usecasecontract.IConfigProvider = (*Config)(nil)

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() *Config {
	return &Config{
		Port:                     getEnv("PORT", "8080"),
		AppEnv:                   getEnv("APP_ENV", "development"),
		LogLevel:                 getEnv("LOG_LEVEL", "info"),
		AppBaseURL:               getEnv("APP_BASE_URL", "http://localhost:8080"),
		JWTSecret:                getEnv("JWT_SECRET", ""),
		AccessTokenExpiry:        time.Minute * time.Duration(getEnvAsInt("ACCESS_TOKEN_EXPIRY_MINUTES", 60*24)),
		PasswordResetTokenExpiry: time.Minute * time.Duration(getEnvAsInt("PASSWORD_RESET_TOKEN_EXPIRY_MINUTES", 15)),
		AllowHeaderAuth:          getEnvAsBool("ALLOW_HEADER_AUTH", true),
		RateLimitPerSecond:       getEnvAsFloat("RATE_LIMIT_PER_SECOND", 10),

		MongoURI:    getEnv("MONGODB_URI", ""),
		MongoDBName: getEnv("MONGODB_DB_NAME", "midnight_muse"),
		RedisURL:    getEnv("REDIS_URL", ""),

		AIServiceAPIKey: getEnv("AI_SERVICE_API_KEY", ""),
		AIModel:         getEnv("AI_MODEL", "gemini-1.5-flash"),

		EmailHost:        getEnv("EMAIL_HOST", ""),
		EmailPort:        getEnv("EMAIL_PORT", "587"),
		EmailUsername:    getEnv("EMAIL_USERNAME", ""),
		EmailAppPassword: getEnv("EMAIL_APP_PASSWORD", ""),
		EmailFrom:        getEnv("EMAIL_FROM", ""),

		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),

		AdminEmail:     getEnv("ADMIN_EMAIL", ""),
		AdminPassword:  getEnv("ADMIN_PASSWORD", ""),
		AdminName:      getEnv("ADMIN_NAME", "Admin"),
		SeedSampleData: getEnvAsBool("SEED_SAMPLE_DATA", true),
	}
}

// GetAppBaseURL returns the base URL of the application.
func (c *Config) GetAppBaseURL() string {
	return c.AppBaseURL
}

// GetAccessTokenExpiry returns the lifetime of issued access tokens.
func (c *Config) GetAccessTokenExpiry() time.Duration {
	return c.AccessTokenExpiry
}

// GetPasswordResetTokenExpiry returns the expiry duration for password reset tokens.
func (c *Config) GetPasswordResetTokenExpiry() time.Duration {
	return c.PasswordResetTokenExpiry
}

// GetAllowHeaderAuth reports whether the X-User-Id header is trusted for authentication.
func (c *Config) GetAllowHeaderAuth() bool {
	return c.AllowHeaderAuth
}

func (c *Config) GetAIServiceAPIKey() string {
	return c.AIServiceAPIKey
}

func (c *Config) GetAIModel() string {
	return c.AIModel
}

// IsProduction reports whether APP_ENV is "production".
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// EmailEnabled reports whether enough SMTP settings are present to send mail.
func (c *Config) EmailEnabled() bool {
	return c.EmailHost != "" && c.EmailFrom != ""
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(name string, fallback float64) float64 {
	valueStr := getEnv(name, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as a boolean or return a default value.
func getEnvAsBool(name string, fallback bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return fallback
}
