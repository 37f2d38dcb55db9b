// Package config handles configuration for the server component, including
// defaults, JSON overlay, environment variables, and command-line flags.
package config

import (
	"errors"
	"time"
)

// devSecretKey is the built-in development signing secret. Starting the
// server with it is refused unless AllowInsecureSecret is set.
const devSecretKey = "dev-secret-key"

// ErrInsecureSecret is returned by Validate when the JWT signing secret is
// still the built-in development value.
var ErrInsecureSecret = errors.New("refusing to run with the default signing secret; set SECRET_KEY or pass -insecure-dev-secret for local development")

// Config holds runtime settings for the tasktrack server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx) or a SQLite file path.
//   - SecretKey: HMAC secret for signing JWTs (HS256).
//   - AccessTokenValidityDuration / RefreshTokenValidityDuration: token lifetimes.
//   - BcryptCost: work factor for password hashing.
//   - PasswordMinLength and the PasswordRequire* toggles: registration password policy.
//   - RedisAddr / RateLimitPerMinute: login rate limiting (disabled when RedisAddr is empty).
//   - S3*: object storage settings for avatar uploads.
type Config struct {
	EndpointAddr                 string
	DatabaseDSN                  string
	SecretKey                    string
	AllowInsecureSecret          bool
	AccessTokenValidityDuration  time.Duration
	RefreshTokenValidityDuration time.Duration
	BcryptCost                   int
	PasswordMinLength            int
	PasswordRequireUpper         bool
	PasswordRequireDigit         bool
	PasswordRequireSpecial       bool
	RedisAddr                    string
	RateLimitPerMinute           int
	S3RootUser                   string
	S3RootPassword               string
	S3Bucket                     string
	S3Region                     string
	S3BaseEndpoint               string
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.DatabaseDSN = "tasktrack.db"
	c.SecretKey = devSecretKey
	c.AccessTokenValidityDuration = 30 * time.Minute
	c.RefreshTokenValidityDuration = 7 * 24 * time.Hour
	c.BcryptCost = 10
	c.PasswordMinLength = 8
	c.PasswordRequireUpper = true
	c.PasswordRequireDigit = true
	c.PasswordRequireSpecial = false
	c.RateLimitPerMinute = 10
	c.S3Bucket = "avatars"
	c.S3Region = "us-east-1"
}

// Validate rejects configurations that must never reach production,
// currently only the built-in signing secret.
func (c *Config) Validate() error {
	if c.SecretKey == devSecretKey && !c.AllowInsecureSecret {
		return ErrInsecureSecret
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, environment variables, and finally
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
