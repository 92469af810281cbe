package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/piresc/ecotrack/internal/pkg/models"
)

// InitConfig loads the env file at configPath when running locally and
// builds the configuration from the environment
func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "ecotrack")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 3000)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 30)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 180)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "pgx")
	configs.Database.Host = GetEnv("DB_HOST", "localhost")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "ecotrack")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 10)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 2)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "localhost")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")

	// Knot config
	configs.Knot.BaseURL = GetEnv("KNOT_API_BASE", "https://development.knotapi.com")
	configs.Knot.ClientID = GetEnv("KNOT_CLIENT_ID", "")
	configs.Knot.ClientSecret = GetEnv("KNOT_CLIENT_SECRET", "")
	configs.Knot.SessionUserID = GetEnv("KNOT_SESSION_USER", "test")
	configs.Knot.TimeoutSeconds = GetEnvAsInt("KNOT_TIMEOUT_SECONDS", 30)

	// Sync config
	configs.Sync.MaxPages = GetEnvAsInt("SYNC_MAX_PAGES", 100)
	configs.Sync.TimeoutSeconds = GetEnvAsInt("SYNC_TIMEOUT_SECONDS", 120)
	configs.Sync.LockTTLSeconds = GetEnvAsInt("SYNC_LOCK_TTL_SECONDS", 300)
	configs.Sync.InsertTimeoutSeconds = GetEnvAsInt("SYNC_INSERT_TIMEOUT_SECONDS", 60)

	// Gemini config
	configs.Gemini.APIKey = GetEnv("GEMINI_API_KEY", "")
	configs.Gemini.Model = GetEnv("GEMINI_MODEL", "gemini-2.0-flash")
	configs.Gemini.BaseURL = GetEnv("GEMINI_BASE_URL", "")

	// Places config, Boston by default
	configs.Places.DefaultLatitude = GetEnvAsFloat("PLACES_DEFAULT_LAT", 42.3601)
	configs.Places.DefaultLongitude = GetEnvAsFloat("PLACES_DEFAULT_LNG", -71.0589)
	configs.Places.RadiusKm = GetEnvAsFloat("PLACES_RADIUS_KM", 5.0)

	// Fixtures config
	configs.Fixtures.Dir = GetEnv("FIXTURES_DIR", "data")

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "ecotrack")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.ForwardLogs = GetEnvAsBool("NEW_RELIC_FORWARD_LOGS", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
