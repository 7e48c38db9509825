package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/planwise/internal/flagx"
	"github.com/dmitrijs2005/planwise/internal/timex"
)

// JsonConfig is the on-disk shape of the server config file. Only keys that
// are present override the current values; durations accept "15m" or
// integer nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC             *string         `json:"endpoint_addr_grpc"`
	MetricsAddr                  *string         `json:"metrics_addr"`
	DatabaseDSN                  *string         `json:"database_dsn"`
	SecretKey                    *string         `json:"secret_key"`
	SessionTokenValidityDuration *timex.Duration `json:"session_token_validity_duration"`
	BcryptCost                   *int            `json:"bcrypt_cost"`
	LogLevel                     *string         `json:"log_level"`
	S3RootUser                   *string         `json:"s3_root_user"`
	S3RootPassword               *string         `json:"s3_root_password"`
	S3Bucket                     *string         `json:"s3_bucket"`
	S3Region                     *string         `json:"s3_region"`
	S3BaseEndpoint               *string         `json:"s3_base_endpoint"`
	AvatarURLValidityDuration    *timex.Duration `json:"avatar_url_validity_duration"`
}

// parseJson loads the file named by -c/-config (if any) over config.
// If the file cannot be read or contains invalid JSON, the function panics.
func parseJson(config *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.MetricsAddr, c.MetricsAddr)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)

	if c.BcryptCost != nil {
		config.BcryptCost = *c.BcryptCost
	}
	if c.SessionTokenValidityDuration != nil {
		config.SessionTokenValidityDuration = c.SessionTokenValidityDuration.Duration
	}
	if c.AvatarURLValidityDuration != nil {
		config.AvatarURLValidityDuration = c.AvatarURLValidityDuration.Duration
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
