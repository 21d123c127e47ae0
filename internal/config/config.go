package config

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

type Config struct {
	DBURL       string
	Port        string
	Environment string
	CORS        cors.Options
}

// Load reads the .env file (if present) and the process environment and
// returns the resolved configuration. The struct is passed explicitly into
// the layers that need it; nothing reads the environment after startup.
func Load() Config {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("No", envFile, "file found")
	}

	return Config{
		DBURL:       getEnv("DB_URL", ""),
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENV", "development"),
		CORS:        corsOptions(),
	}
}

// Gets the env by key or fallbacks
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func corsOptions() cors.Options {
	var origins []string
	for _, o := range strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}
}
