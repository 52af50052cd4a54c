// Package config provides environment configuration for the dashboard
// server.
package config

import (
	"os"
	"strconv"
	"time"
)

// Credentials is one configured dashboard account.
type Credentials struct {
	Username string
	Password string
	Name     string
	Company  string
}

// Config holds all configuration for the application.
type Config struct {
	// Server settings
	ServerPort         string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration

	// Webhook ingestion settings
	WebhookURL     string
	IngestInterval time.Duration
	IngestTimeout  time.Duration
	IngestCompany  string

	// JWT settings
	JWTSecret     string
	JWTExpiration time.Duration

	// Dashboard accounts (one per viewer role)
	AdminUser   Credentials
	CompanyUser Credentials
	ClientUser  Credentials

	// Chat widget embed settings
	WidgetBaseURL     string
	WidgetAgentID     string
	WidgetPersonaName string
	WidgetPersonaRole string

	// Rate limiting
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Logging
	LogLevel string

	// Tracing
	TracingEndpoint string
	TracingEnabled  bool
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		// Server
		ServerPort:         getEnv("PORT", "8080"),
		ServerReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
		ServerWriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 60*time.Second),

		// Webhook
		WebhookURL:     getEnv("WEBHOOK_URL", "https://n8n.srv1025595.hstgr.cloud/webhook/bdembeddixy?empresa=Embeddixy"),
		IngestInterval: getDurationEnv("INGEST_INTERVAL", 10*time.Second),
		IngestTimeout:  getDurationEnv("INGEST_TIMEOUT", 15*time.Second),
		IngestCompany:  getEnv("INGEST_COMPANY", "Embeddixy"),

		// JWT
		JWTSecret:     getEnv("JWT_SECRET", "development-secret-change-in-production"),
		JWTExpiration: getDurationEnv("JWT_EXPIRATION", 12*time.Hour),

		// Accounts
		AdminUser: Credentials{
			Username: getEnv("ADMIN_USERNAME", "admin"),
			Password: getEnv("ADMIN_PASSWORD", ""),
			Name:     getEnv("ADMIN_NAME", "Administrador"),
		},
		CompanyUser: Credentials{
			Username: getEnv("COMPANY_USERNAME", "empresa"),
			Password: getEnv("COMPANY_PASSWORD", ""),
			Name:     getEnv("COMPANY_NAME", "Tech Solutions"),
			Company:  getEnv("COMPANY_NAME", "Tech Solutions"),
		},
		ClientUser: Credentials{
			Username: getEnv("CLIENT_USERNAME", "cliente"),
			Password: getEnv("CLIENT_PASSWORD", ""),
			Name:     getEnv("CLIENT_NAME", "João Silva"),
		},

		// Widget
		WidgetBaseURL:     getEnv("WIDGET_BASE_URL", "https://platform.zaia.app"),
		WidgetAgentID:     getEnv("WIDGET_AGENT_ID", "68980"),
		WidgetPersonaName: getEnv("WIDGET_PERSONA_NAME", "Jonas"),
		WidgetPersonaRole: getEnv("WIDGET_PERSONA_ROLE", "Guia Turístico e Concierge"),

		// Rate limiting
		RateLimitRequests: getIntEnv("RATE_LIMIT_REQUESTS", 60),
		RateLimitWindow:   getDurationEnv("RATE_LIMIT_WINDOW", time.Minute),

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "info"),

		// Tracing
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4318"),
		TracingEnabled:  getBoolEnv("TRACING_ENABLED", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
