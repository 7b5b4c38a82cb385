package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "thisisasecretkeythatis32charslong!!"

// setupEnv sets environment variables for the duration of the test.
// An empty value unsets the variable.
func setupEnv(t *testing.T, envVars map[string]string) {
	t.Helper()
	for name, value := range envVars {
		t.Setenv(name, value)
		if value == "" {
			require.NoError(t, os.Unsetenv(name))
		}
	}
}

// TestLoadDefaults verifies that every key except the secret has a default.
func TestLoadDefaults(t *testing.T) {
	setupEnv(t, map[string]string{
		"GATEWAY_AUTH_JWT_SECRET":   testSecret,
		"GATEWAY_SERVER_PORT":       "",
		"GATEWAY_SERVER_LOG_LEVEL":  "",
		"GATEWAY_UPSTREAM_BASE_URL": "",
	})

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, EnvironmentProduction, cfg.Server.Environment)
	assert.False(t, cfg.Server.IsDevelopment())
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "photos-gateway", cfg.Auth.Issuer)
	assert.Equal(t, "photos-gateway-clients", cfg.Auth.Audience)
	assert.Equal(t, 60, cfg.Auth.TokenLifetimeMinutes)
	assert.Equal(t, "sha256", cfg.Auth.PasswordHash)
	assert.Equal(t, "Admin123!", cfg.Auth.AdminPassword)
	assert.Equal(t, "https://jsonplaceholder.typicode.com/", cfg.Upstream.BaseURL)
	assert.Equal(t, 30, cfg.Upstream.TimeoutSeconds)
	assert.Equal(t, 0, cfg.Upstream.MirrorWorkers)
	assert.Equal(t, 100, cfg.Upstream.MirrorQueueSize)
}

// TestLoadFromEnv verifies that the Load function correctly reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	setupEnv(t, map[string]string{
		"GATEWAY_SERVER_PORT":                 "9090",
		"GATEWAY_SERVER_LOG_LEVEL":            "debug",
		"GATEWAY_SERVER_ENVIRONMENT":          "development",
		"GATEWAY_SERVER_CORS_ALLOWED_ORIGINS": "https://a.example.com, https://b.example.com",
		"GATEWAY_AUTH_JWT_SECRET":             testSecret,
		"GATEWAY_AUTH_ISSUER":                 "issuer-x",
		"GATEWAY_AUTH_AUDIENCE":               "audience-y",
		"GATEWAY_AUTH_TOKEN_LIFETIME_MINUTES": "15",
		"GATEWAY_AUTH_PASSWORD_HASH":          "bcrypt",
		"GATEWAY_UPSTREAM_BASE_URL":           "http://localhost:3000/",
		"GATEWAY_UPSTREAM_TIMEOUT_SECONDS":    "5",
		"GATEWAY_UPSTREAM_MIRROR_WORKERS":     "4",
	})

	cfg, err := Load()

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.True(t, cfg.Server.IsDevelopment())
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, testSecret, cfg.Auth.JWTSecret)
	assert.Equal(t, "issuer-x", cfg.Auth.Issuer)
	assert.Equal(t, "audience-y", cfg.Auth.Audience)
	assert.Equal(t, 15, cfg.Auth.TokenLifetimeMinutes)
	assert.Equal(t, "bcrypt", cfg.Auth.PasswordHash)
	assert.Equal(t, "http://localhost:3000/", cfg.Upstream.BaseURL)
	assert.Equal(t, 5, cfg.Upstream.TimeoutSeconds)
	assert.Equal(t, 4, cfg.Upstream.MirrorWorkers)
}

func TestLoadFromConfigFile(t *testing.T) {
	setupEnv(t, map[string]string{
		"GATEWAY_AUTH_JWT_SECRET": testSecret,
		"GATEWAY_SERVER_PORT":     "7070",
	})

	path := filepath.Join(t.TempDir(), "gateway.yaml")
	content := []byte("server:\n  port: 6060\n  log_level: warn\nupstream:\n  timeout_seconds: 12\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := LoadWithOptions(Options{ConfigFile: path})

	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port, "environment overrides the file")
	assert.Equal(t, "warn", cfg.Server.LogLevel)
	assert.Equal(t, 12, cfg.Upstream.TimeoutSeconds)
}

func TestLoadMissingExplicitConfigFile(t *testing.T) {
	setupEnv(t, map[string]string{"GATEWAY_AUTH_JWT_SECRET": testSecret})

	cfg, err := LoadWithOptions(Options{ConfigFile: filepath.Join(t.TempDir(), "missing.yaml")})

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadFromEnvFile(t *testing.T) {
	const key = "GATEWAY_AUTH_JWT_SECRET"
	setupEnv(t, map[string]string{key: ""})
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(key+"="+testSecret+"\n"), 0o600))

	cfg, err := LoadWithOptions(Options{EnvFile: path})

	require.NoError(t, err)
	assert.Equal(t, testSecret, cfg.Auth.JWTSecret)
}

// TestLoadValidationErrors verifies that the Load function correctly validates the configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name: "Missing JWT secret",
			envVars: map[string]string{
				"GATEWAY_AUTH_JWT_SECRET": "",
			},
		},
		{
			name: "Short JWT secret",
			envVars: map[string]string{
				"GATEWAY_AUTH_JWT_SECRET": "tooshort",
			},
		},
		{
			name: "Invalid port number",
			envVars: map[string]string{
				"GATEWAY_AUTH_JWT_SECRET": testSecret,
				"GATEWAY_SERVER_PORT":     "999999",
			},
		},
		{
			name: "Invalid log level",
			envVars: map[string]string{
				"GATEWAY_AUTH_JWT_SECRET":  testSecret,
				"GATEWAY_SERVER_LOG_LEVEL": "invalid-level",
			},
		},
		{
			name: "Invalid environment",
			envVars: map[string]string{
				"GATEWAY_AUTH_JWT_SECRET":    testSecret,
				"GATEWAY_SERVER_ENVIRONMENT": "staging",
			},
		},
		{
			name: "Unknown password hash",
			envVars: map[string]string{
				"GATEWAY_AUTH_JWT_SECRET":    testSecret,
				"GATEWAY_AUTH_PASSWORD_HASH": "md5",
			},
		},
		{
			name: "Invalid upstream URL",
			envVars: map[string]string{
				"GATEWAY_AUTH_JWT_SECRET":   testSecret,
				"GATEWAY_UPSTREAM_BASE_URL": "not a url",
			},
		},
		{
			name: "Negative mirror workers",
			envVars: map[string]string{
				"GATEWAY_AUTH_JWT_SECRET":         testSecret,
				"GATEWAY_UPSTREAM_MIRROR_WORKERS": "-1",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setupEnv(t, tc.envVars)

			cfg, err := Load()

			require.Error(t, err, "Load() should return an error with invalid configuration")
			assert.Contains(t, err.Error(), "validation failed")
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}
