// Package config handles configuration loading, parsing, and validation
// from environment variables (GATEWAY_ prefix), an optional config.yaml, and
// an optional .env file. Environment variables take precedence over the
// file; every key has a default except the JWT signing secret.
package config
