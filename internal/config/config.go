package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth" validate:"required"`
	Upstream UpstreamConfig `mapstructure:"upstream" validate:"required"`
}

// Environments recognised by the server.
const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// Environment gates developer conveniences: API docs and error details.
	Environment        string   `mapstructure:"environment" validate:"required,oneof=development production"`
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins" validate:"required,min=1"`
}

// IsDevelopment reports whether the server runs in the development environment.
func (c ServerConfig) IsDevelopment() bool {
	return c.Environment == EnvironmentDevelopment
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret" validate:"required,min=32"`
	Issuer               string `mapstructure:"issuer" validate:"required"`
	Audience             string `mapstructure:"audience" validate:"required"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
	// PasswordHash selects the password hashing scheme: sha256 (unsalted,
	// the historical default) or bcrypt.
	PasswordHash  string `mapstructure:"password_hash" validate:"required,oneof=sha256 bcrypt"`
	AdminPassword string `mapstructure:"admin_password" validate:"required"`
}

// UpstreamConfig contains the settings for the upstream data source.
type UpstreamConfig struct {
	BaseURL        string `mapstructure:"base_url" validate:"required,url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"required,gt=0"`
	// MirrorWorkers is the number of background workers mirroring creates
	// upstream. Zero mirrors inline on the request path.
	MirrorWorkers   int `mapstructure:"mirror_workers" validate:"gte=0"`
	MirrorQueueSize int `mapstructure:"mirror_queue_size" validate:"required,gt=0"`
}
