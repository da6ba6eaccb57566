package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Catalog  CatalogConfig  `mapstructure:"catalog"  validate:"required"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// RequestTimeoutSeconds bounds every request, including file and
	// database I/O. A stalled read never stalls the server indefinitely.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" validate:"gte=0"`

	// CORSOrigins lists the browser origins allowed to call the API.
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// CatalogConfig contains settings for the flat-file catalog store.
type CatalogConfig struct {
	// DataDir is the directory holding cards.json, feedback.json and faq.json.
	DataDir string `mapstructure:"data_dir" validate:"required"`

	// StaticDir is the directory with the browser frontend, served at /.
	// Leave empty to disable static file serving.
	StaticDir string `mapstructure:"static_dir"`
}

// DatabaseConfig contains all database-related configuration settings.
// An empty URL starts the server in catalog-only mode: the /sql routes
// are not mounted and no connection is opened.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"omitempty,url"`

	// MigrateOnStart runs the embedded goose migrations before serving.
	MigrateOnStart bool `mapstructure:"migrate_on_start"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}
