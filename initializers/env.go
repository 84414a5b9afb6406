package initializers

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	for _, key := range []string{"SECRET", "DB_URL", "UPSTREAM_API_URL", "UPSTREAM_API_TOKEN"} {
		if os.Getenv(key) == "" {
			log.Fatalf("required environment variable %s is not set", key)
		}
	}
}

// EnvSeconds reads an integer number of seconds with a fallback.
func EnvSeconds(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Printf("ignoring invalid %s=%q, using %s", key, raw, fallback)
		return fallback
	}
	return time.Duration(n) * time.Second
}
