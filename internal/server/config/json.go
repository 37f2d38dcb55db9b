package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/mkravets/tasktrack/internal/flagx"
	"github.com/mkravets/tasktrack/internal/timex"
)

// JsonConfig is an intermediate DTO used only for reading JSON configuration
// files. Duration fields use timex.Duration, which accepts both string values
// such as "30m" and integer nanoseconds. After unmarshalling, its fields are
// copied into the runtime Config struct.
type JsonConfig struct {
	EndpointAddr                 string         `json:"endpoint_addr"`
	DatabaseDSN                  string         `json:"database_dsn"`
	SecretKey                    string         `json:"secret_key"`
	AccessTokenValidityDuration  timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration timex.Duration `json:"refresh_token_validity_duration"`
	BcryptCost                   int            `json:"bcrypt_cost"`
	PasswordMinLength            int            `json:"password_min_length"`
	PasswordRequireUpper         bool           `json:"password_require_upper"`
	PasswordRequireDigit         bool           `json:"password_require_digit"`
	PasswordRequireSpecial       bool           `json:"password_require_special"`
	RedisAddr                    string         `json:"redis_addr"`
	RateLimitPerMinute           int            `json:"rate_limit_per_minute"`
	S3RootUser                   string         `json:"s3_root_user"`
	S3RootPassword               string         `json:"s3_root_password"`
	S3Bucket                     string         `json:"s3_bucket"`
	S3Region                     string         `json:"s3_region"`
	S3BaseEndpoint               string         `json:"s3_base_endpoint"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config. The file path comes from the -c/-config command-line flags; when
// neither is set, no JSON file is loaded. A missing or malformed file panics:
// an explicitly requested config file must be usable.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddr = c.EndpointAddr
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.AccessTokenValidityDuration = time.Duration(c.AccessTokenValidityDuration.Duration)
	config.RefreshTokenValidityDuration = time.Duration(c.RefreshTokenValidityDuration.Duration)
	config.BcryptCost = c.BcryptCost
	config.PasswordMinLength = c.PasswordMinLength
	config.PasswordRequireUpper = c.PasswordRequireUpper
	config.PasswordRequireDigit = c.PasswordRequireDigit
	config.PasswordRequireSpecial = c.PasswordRequireSpecial
	config.RedisAddr = c.RedisAddr
	config.RateLimitPerMinute = c.RateLimitPerMinute
	config.S3RootUser = c.S3RootUser
	config.S3RootPassword = c.S3RootPassword
	config.S3Bucket = c.S3Bucket
	config.S3Region = c.S3Region
	config.S3BaseEndpoint = c.S3BaseEndpoint
}
