package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

type Config struct {
	Store                string
	DatabaseURL          string
	SQLitePath           string
	JWTSecret            string
	JWTExpiration        time.Duration
	RememberMeExpiration time.Duration
	ServerPort           string
	LogSQL               bool
}

// Load reads the environment, after merging an optional .env file.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Ignoring .env: %v", err)
	}
	return FromEnv()
}

func FromEnv() *Config {
	return &Config{
		Store:                strings.ToLower(getEnv("STORE", StoreMemory)),
		DatabaseURL:          getEnv("DATABASE_URL", "postgresql://postgres@localhost:5432/ticktock"),
		SQLitePath:           getEnv("SQLITE_PATH", "ticktock.db"),
		JWTSecret:            getEnv("JWT_SECRET", "your-super-secret-key-change-in-production"),
		JWTExpiration:        24 * time.Hour,
		RememberMeExpiration: 30 * 24 * time.Hour, // 30 days
		ServerPort:           getEnv("SERVER_PORT", "8080"),
		LogSQL:               getEnv("LOG_SQL", "false") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
