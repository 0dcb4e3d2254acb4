package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/anvydev/notekeeper/internal/flagx"
)

// parseEnv overlays Config fields from environment variables. A dotenv file
// is loaded first when one is present: either the path given via the
// -e/-env-file flags or a plain ".env" next to the binary. A missing file is
// not an error; real environment variables win over dotenv values because
// godotenv does not overwrite existing keys.
func parseEnv(config *Config) {
	if path := flagx.EnvFileFlag(); path != "" {
		_ = godotenv.Load(path)
	} else {
		_ = godotenv.Load()
	}

	config.EndpointAddrHTTP = getEnv("ADDRESS", config.EndpointAddrHTTP)
	if port := os.Getenv("PORT"); port != "" {
		config.EndpointAddrHTTP = ":" + port
	}
	config.DatabaseDSN = getEnv("DATABASE_DSN", config.DatabaseDSN)
	config.SecretKey = getEnv("JWT_SECRET", config.SecretKey)
	config.TokenValidityDuration = getEnvAsDuration("TOKEN_VALIDITY", config.TokenValidityDuration)
	config.BcryptCost = getEnvAsInt("BCRYPT_COST", config.BcryptCost)
	config.CORSAllowedOrigins = getEnv("CORS_ALLOWED_ORIGINS", config.CORSAllowedOrigins)
	config.GinMode = getEnv("GIN_MODE", config.GinMode)
}

// getEnv returns the value of an environment variable, or the fallback when
// the variable is unset or empty.
func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return fallback
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return fallback
	}
	return value
}

// getEnvAsDuration parses values like "1h" or "30m".
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return fallback
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return fallback
	}
	return value
}
