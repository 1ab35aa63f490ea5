package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Auth    AuthConfig
	Storage StorageConfig

	// DatabaseURL empty means the backing store is not configured. That is
	// a recognized steady state, not an error: public pages serve the
	// bundled showcase data and the admin API answers with setup
	// instructions.
	DatabaseURL string
}

type ServerConfig struct {
	Port string
}

type AuthConfig struct {
	JWTSecret     string
	AdminEmail    string
	AdminPassword string
}

type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	PublicURL string
}

func Load() *Config {
	godotenv.Load() // missing .env is fine, plain env vars still apply

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
		},
		Auth: AuthConfig{
			JWTSecret:     getEnv("JWT_SECRET", "vitrine-dev-secret"),
			AdminEmail:    strings.TrimSpace(os.Getenv("ADMIN_EMAIL")),
			AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		},
		Storage: StorageConfig{
			Endpoint:  strings.TrimSpace(os.Getenv("STORAGE_ENDPOINT")),
			AccessKey: os.Getenv("STORAGE_ACCESS_KEY"),
			SecretKey: os.Getenv("STORAGE_SECRET_KEY"),
			Bucket:    getEnv("STORAGE_BUCKET", "property-images"),
			PublicURL: strings.TrimRight(strings.TrimSpace(os.Getenv("STORAGE_PUBLIC_URL")), "/"),
		},
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
	}
}

// Configured reports whether the backing store can be reached at all.
func (c *Config) Configured() bool {
	return c.DatabaseURL != ""
}

func (c *StorageConfig) Configured() bool {
	return c.Endpoint != "" && c.AccessKey != "" && c.SecretKey != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
