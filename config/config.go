package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds every process-level setting, loaded from environment
// variables with the same names the deployment already uses.
type Config struct {
	Port              string
	MongoURI          string
	AccessTokenSecret string
	TokenTTL          time.Duration
}

// Load builds Config from the environment. MONGO_URI wins when set;
// otherwise the Atlas URI is assembled from DB_USER and DB_PASS.
func Load() Config {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = fmt.Sprintf(
			"mongodb+srv://%s:%s@cluster0.wdftcpy.mongodb.net/?retryWrites=true&w=majority",
			os.Getenv("DB_USER"), os.Getenv("DB_PASS"),
		)
	}
	return Config{
		Port:              getenv("PORT", "5000"),
		MongoURI:          uri,
		AccessTokenSecret: os.Getenv("ACCESS_TOKEN_SECRET"),
		TokenTTL:          getenvDuration("ACCESS_TOKEN_TTL", 10*time.Hour),
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return fallback
}
