package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	Knot     KnotConfig
	Sync     SyncConfig
	Gemini   GeminiConfig
	Places   PlacesConfig
	Fixtures FixturesConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration.
// An empty URL disables event publishing.
type NATSConfig struct {
	URL string
}

// KnotConfig holds the credentials and endpoint of the transaction-aggregation API
type KnotConfig struct {
	BaseURL        string
	ClientID       string
	ClientSecret   string
	SessionUserID  string
	TimeoutSeconds int
}

// SyncConfig bounds a single webhook-triggered drain
type SyncConfig struct {
	MaxPages       int
	TimeoutSeconds int
	LockTTLSeconds int

	// InsertTimeoutSeconds bounds the insert phase separately from the drain
	InsertTimeoutSeconds int
}

// GeminiConfig contains language model configuration
type GeminiConfig struct {
	APIKey string
	Model  string

	// BaseURL overrides the API endpoint, empty uses the public one
	BaseURL string
}

// PlacesConfig contains the default map query
type PlacesConfig struct {
	DefaultLatitude  float64
	DefaultLongitude float64
	RadiusKm         float64
}

// FixturesConfig points at the static JSON fixtures used by the assistant
type FixturesConfig struct {
	Dir string
}

// NewRelicConfig contains APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
