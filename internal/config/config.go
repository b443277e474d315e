package config

import (
	"os"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig
	Mongo       MongoConfig
	Redis       RedisConfig
	Session     SessionConfig
	FileStorage FileStorageConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           string
	RequestTimeout time.Duration
}

// MongoConfig holds document store configuration
type MongoConfig struct {
	URI    string
	DBName string
}

// RedisConfig holds session store configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// SessionConfig holds session token configuration
type SessionConfig struct {
	Secret string
	TTL    time.Duration
}

// FileStorageConfig holds file storage configuration
type FileStorageConfig struct {
	UseS3            bool
	S3Region         string
	S3Endpoint       string
	S3PublicEndpoint string
	S3AccessKey      string
	S3SecretKey      string
	S3BucketName     string
	S3UseSSL         bool
	LocalPath        string
	LocalBaseURL     string
}

// Load reads configuration from environment variables
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RequestTimeout: parseDuration(getEnv("REQUEST_TIMEOUT", "30s"), 30*time.Second),
		},
		Mongo: MongoConfig{
			URI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
			DBName: getEnv("MONGO_DB", "spoty"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       0,
		},
		Session: SessionConfig{
			Secret: getEnv("SESSION_SECRET", "default-dev-secret"),
			TTL:    parseDuration(getEnv("SESSION_TTL", "24h"), 24*time.Hour),
		},
		FileStorage: FileStorageConfig{
			UseS3:            getEnv("USE_S3", "false") == "true",
			S3Region:         getEnv("S3_REGION", "us-east-1"),
			S3Endpoint:       getEnv("S3_ENDPOINT", ""),
			S3PublicEndpoint: getEnv("S3_PUBLIC_ENDPOINT", getEnv("S3_ENDPOINT", "")),
			S3AccessKey:      getEnv("S3_ACCESS_KEY", ""),
			S3SecretKey:      getEnv("S3_SECRET_KEY", ""),
			S3BucketName:     getEnv("S3_BUCKET", ""),
			S3UseSSL:         getEnv("S3_USE_SSL", "true") == "true",
			LocalPath:        getEnv("LOCAL_STORAGE_PATH", "./static"),
			LocalBaseURL:     getEnv("LOCAL_STORAGE_URL", "/static"),
		},
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseDuration parses a duration string or returns a default value
func parseDuration(value string, defaultValue time.Duration) time.Duration {
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	return defaultValue
}
