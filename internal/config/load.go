package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable name, e.g.
// GATEWAY_AUTH_JWT_SECRET for auth.jwt_secret.
const EnvPrefix = "GATEWAY"

// defaults lists every configuration key. Keys whose default is nil have no
// default but are still bound to their environment variable.
var defaults = map[string]any{
	"server.port":                 8080,
	"server.log_level":            "info",
	"server.environment":          EnvironmentProduction,
	"server.cors_allowed_origins": []string{"*"},

	"auth.jwt_secret":             nil,
	"auth.issuer":                 "photos-gateway",
	"auth.audience":               "photos-gateway-clients",
	"auth.token_lifetime_minutes": 60,
	"auth.password_hash":          "sha256",
	"auth.admin_password":         "Admin123!",

	"upstream.base_url":          "https://jsonplaceholder.typicode.com/",
	"upstream.timeout_seconds":   30,
	"upstream.mirror_workers":    0,
	"upstream.mirror_queue_size": 100,
}

// Options customizes Load, mainly for tests.
type Options struct {
	// ConfigFile is an explicit config file path. When empty, config.yaml
	// is searched for in the working directory.
	ConfigFile string

	// EnvFile is loaded with godotenv before reading the environment.
	// Defaults to ".env"; a missing file is not an error.
	EnvFile string
}

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return LoadWithOptions(Options{})
}

// LoadWithOptions is Load with explicit file locations.
func LoadWithOptions(opts Options) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	// godotenv never overrides variables already present in the environment.
	_ = godotenv.Load(envFile)

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, value := range defaults {
		if value != nil {
			v.SetDefault(key, value)
		}
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Server.CORSAllowedOrigins = splitOrigins(cfg.Server.CORSAllowedOrigins)

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// splitOrigins accepts both a YAML list and a comma separated environment value.
func splitOrigins(origins []string) []string {
	var result []string
	for _, entry := range origins {
		for _, origin := range strings.Split(entry, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				result = append(result, origin)
			}
		}
	}
	return result
}
