package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Init loads env files for the current APP_ENV. Values already present in the
// process environment win, so deployments that inject env directly still work.
func Init() {
	exPath, err := os.Getwd()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	exPath += "/config/"

	appEnv, exists := os.LookupEnv("APP_ENV")
	if !exists {
		appEnv = "dev"
	}
	// missing files are fine, a container may carry no .env at all
	_ = godotenv.Load(exPath + ".env." + appEnv + ".local")
	_ = godotenv.Load(exPath + ".env." + appEnv)
}

// MustGet returns the value of a required variable and exits if it is unset.
func MustGet(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		fmt.Printf("missing required env %s\n", key)
		os.Exit(1)
	}
	return v
}

func Get(key, fallback string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	return v
}

func GetInt64(key string, fallback int64) int64 {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

// CORSOrigins parses the comma-separated CORS_ORIGINS variable.
func CORSOrigins() []string {
	raw := Get("CORS_ORIGINS", "*")
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
