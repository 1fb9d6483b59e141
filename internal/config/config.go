package config

import (
	"os"
	"time"
)

// Config carries everything the server needs from the environment.
// Connection strings and credentials never live in source.
type Config struct {
	HTTPPort string

	MongoURI    string
	MongoDBName string

	RedisAddr     string
	RedisPassword string

	CatalogBaseURL string

	BotToken    string
	RegisterURL string

	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func Load() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:     getEnv("MONGO_DB_NAME", "Pivo"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		CatalogBaseURL:  getEnv("CATALOG_BASE_URL", "http://localhost:8081"),
		BotToken:        getEnv("BOT_TOKEN", ""),
		RegisterURL:     getEnv("REGISTER_URL", "https://t.me/beer_otto_bot?start=register"),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
