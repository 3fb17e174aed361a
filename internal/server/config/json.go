package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/storerating/internal/flagx"
	"github.com/dmitrijs2005/storerating/internal/timex"
)

// JsonConfig is the on-disk shape of the JSON config file. Pointer fields
// distinguish "absent" from zero so that a partial file only overrides what
// it names. Durations accept "30m" or nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC            *string         `json:"endpoint_addr_grpc"`
	MetricsAddr                 *string         `json:"metrics_addr"`
	SecretKey                   *string         `json:"secret_key"`
	AccessTokenValidityDuration *timex.Duration `json:"access_token_validity_duration"`
	BcryptCost                  *int            `json:"bcrypt_cost"`
	LoginRatePerSecond          *float64        `json:"login_rate_per_second"`
	LoginBurst                  *int            `json:"login_burst"`
	FixturesPath                *string         `json:"fixtures_path"`
	LogLevel                    *string         `json:"log_level"`
	LogFormat                   *string         `json:"log_format"`
}

// parseJson loads configuration values from the file named by -c/-config.
// Without the flag nothing is loaded. An unreadable file or invalid JSON
// panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFileFlags().JSON

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	c.apply(config)
}

func (c *JsonConfig) apply(config *Config) {
	setIf(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setIf(&config.MetricsAddr, c.MetricsAddr)
	setIf(&config.SecretKey, c.SecretKey)
	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	setIf(&config.BcryptCost, c.BcryptCost)
	setIf(&config.LoginRatePerSecond, c.LoginRatePerSecond)
	setIf(&config.LoginBurst, c.LoginBurst)
	setIf(&config.FixturesPath, c.FixturesPath)
	setIf(&config.LogLevel, c.LogLevel)
	setIf(&config.LogFormat, c.LogFormat)
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
