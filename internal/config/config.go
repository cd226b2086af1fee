package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"     validate:"required"`
	Database   DatabaseConfig   `mapstructure:"database"   validate:"required"`
	Pagination PaginationConfig `mapstructure:"pagination" validate:"required"`
	App        AppConfig        `mapstructure:"app"        validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// ShutdownTimeoutSeconds bounds graceful shutdown of in-flight requests.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL                    string `mapstructure:"url"                       validate:"required,url"`
	MaxOpenConns           int    `mapstructure:"max_open_conns"            validate:"gt=0"`
	MaxIdleConns           int    `mapstructure:"max_idle_conns"            validate:"gte=0"`
	ConnMaxLifetimeMinutes int    `mapstructure:"conn_max_lifetime_minutes" validate:"gt=0"`
}

// PaginationConfig controls list endpoints.
type PaginationConfig struct {
	// PerPage is the page size used when a request does not ask for one.
	PerPage int `mapstructure:"per_page" validate:"gt=0,lte=100"`
	// MaxPerPage caps the per_page query parameter.
	MaxPerPage int `mapstructure:"max_per_page" validate:"gtefield=PerPage"`
}

// AppConfig is the static payload served at the root endpoint.
type AppConfig struct {
	Name   string `mapstructure:"name"   validate:"required"`
	Author string `mapstructure:"author"`
	Email  string `mapstructure:"email"  validate:"omitempty,email"`
}
