package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	Crawler  CrawlerConfig
	Report   ReportConfig
	Keycloak KeycloakConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// MongoDBConfig holds MongoDB connection configuration
type MongoDBConfig struct {
	URI            string
	Database       string
	CollectionName string
	Timeout        time.Duration
}

// CrawlerConfig holds audit crawler configuration
type CrawlerConfig struct {
	RequestTimeout    time.Duration
	UserAgent         string
	MaxConcurrency    int64
	RequestsPerSecond float64
	MaxMemoryMB       int64
}

// ReportConfig holds report assembly configuration
type ReportConfig struct {
	CacheTTL time.Duration
}

// KeycloakConfig holds Keycloak authentication configuration
type KeycloakConfig struct {
	URL          string
	FallbackURL  string
	Realm        string
	ClientID     string
	ClientSecret string
}

// New creates a new Config with values from environment variables
func New() (*Config, error) {
	port := getEnv("PORT", "9090")
	readTimeout, err := strconv.Atoi(getEnv("READ_TIMEOUT", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := strconv.Atoi(getEnv("WRITE_TIMEOUT", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid WRITE_TIMEOUT: %w", err)
	}

	shutdownTimeout, err := strconv.Atoi(getEnv("SHUTDOWN_TIMEOUT", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}

	requestTimeout, err := strconv.Atoi(getEnv("CRAWL_REQUEST_TIMEOUT", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid CRAWL_REQUEST_TIMEOUT: %w", err)
	}

	maxConcurrency, err := strconv.ParseInt(getEnv("CRAWL_MAX_CONCURRENCY", "10"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid CRAWL_MAX_CONCURRENCY: %w", err)
	}

	requestsPerSecond, err := strconv.ParseFloat(getEnv("CRAWL_REQUESTS_PER_SECOND", "5"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid CRAWL_REQUESTS_PER_SECOND: %w", err)
	}

	maxMemoryMB, err := strconv.ParseInt(getEnv("CRAWL_MAX_MEMORY_MB", "512"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid CRAWL_MAX_MEMORY_MB: %w", err)
	}

	mongoTimeout, err := strconv.Atoi(getEnv("MONGO_TIMEOUT", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid MONGO_TIMEOUT: %w", err)
	}

	cacheTTL, err := strconv.Atoi(getEnv("REPORT_CACHE_TTL", "3600"))
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_CACHE_TTL: %w", err)
	}

	return &Config{
		Server: ServerConfig{
			Port:            port,
			ReadTimeout:     time.Duration(readTimeout) * time.Second,
			WriteTimeout:    time.Duration(writeTimeout) * time.Second,
			ShutdownTimeout: time.Duration(shutdownTimeout) * time.Second,
		},
		MongoDB: MongoDBConfig{
			URI:            getEnv("MONGO_URI", "mongodb://host.docker.internal:27017"),
			Database:       getEnv("MONGO_DB", "seo_audit"),
			CollectionName: getEnv("MONGO_COLLECTION", "audits"),
			Timeout:        time.Duration(mongoTimeout) * time.Second,
		},
		Crawler: CrawlerConfig{
			RequestTimeout:    time.Duration(requestTimeout) * time.Second,
			UserAgent:         getEnv("USER_AGENT", "SEOAuditBot/1.0"),
			MaxConcurrency:    maxConcurrency,
			RequestsPerSecond: requestsPerSecond,
			MaxMemoryMB:       maxMemoryMB,
		},
		Report: ReportConfig{
			CacheTTL: time.Duration(cacheTTL) * time.Second,
		},
		Keycloak: KeycloakConfig{
			URL:          getEnv("KEYCLOAK_URL", "http://host.docker.internal:8080"),
			FallbackURL:  getEnv("KEYCLOAK_FALLBACK_URL", ""),
			Realm:        getEnv("KEYCLOAK_REALM", "seo-audit"),
			ClientID:     getEnv("KEYCLOAK_CLIENT_ID", "seo-audit-backend"),
			ClientSecret: getEnv("KEYCLOAK_CLIENT_SECRET", ""),
		},
	}, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
