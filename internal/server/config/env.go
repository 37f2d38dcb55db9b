package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config fields from environment variables. Variable names
// follow the deployment convention (ACCESS_TOKEN_EXPIRE_MINUTES etc.); values
// that fail to parse are ignored and the previous layer's value is kept.
func parseEnv(config *Config) {
	lookupString(&config.EndpointAddr, "ADDRESS")
	lookupString(&config.DatabaseDSN, "DATABASE_DSN")
	lookupString(&config.SecretKey, "SECRET_KEY")
	lookupBool(&config.AllowInsecureSecret, "ALLOW_INSECURE_SECRET")
	lookupMinutes(&config.AccessTokenValidityDuration, "ACCESS_TOKEN_EXPIRE_MINUTES")
	lookupMinutes(&config.RefreshTokenValidityDuration, "REFRESH_TOKEN_EXPIRE_MINUTES")
	lookupInt(&config.BcryptCost, "BCRYPT_COST")
	lookupInt(&config.PasswordMinLength, "PASSWORD_MIN_LENGTH")
	lookupBool(&config.PasswordRequireUpper, "PASSWORD_REQUIRE_UPPERCASE")
	lookupBool(&config.PasswordRequireDigit, "PASSWORD_REQUIRE_DIGITS")
	lookupBool(&config.PasswordRequireSpecial, "PASSWORD_REQUIRE_SPECIAL")
	lookupString(&config.RedisAddr, "REDIS_ADDR")
	lookupInt(&config.RateLimitPerMinute, "RATE_LIMIT_PER_MINUTE")
	lookupString(&config.S3RootUser, "S3_ROOT_USER")
	lookupString(&config.S3RootPassword, "S3_ROOT_PASSWORD")
	lookupString(&config.S3Bucket, "S3_BUCKET")
	lookupString(&config.S3Region, "S3_REGION")
	lookupString(&config.S3BaseEndpoint, "S3_BASE_ENDPOINT")
}

func lookupString(dst *string, name string) {
	if v, ok := os.LookupEnv(name); ok {
		*dst = v
	}
}

func lookupInt(dst *int, name string) {
	if v, ok := os.LookupEnv(name); ok {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func lookupBool(dst *bool, name string) {
	if v, ok := os.LookupEnv(name); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func lookupMinutes(dst *time.Duration, name string) {
	if v, ok := os.LookupEnv(name); ok {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = time.Duration(n) * time.Minute
		}
	}
}
