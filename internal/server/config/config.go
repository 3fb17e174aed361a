// Package config handles configuration for the server component,
// including defaults, environment, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the storerating server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the public gRPC endpoint.
//   - MetricsAddr: bind address for the /metrics and /healthz HTTP endpoint; empty disables it.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use test defaults in prod.
//   - AccessTokenValidityDuration: access token lifetime.
//   - BcryptCost: cost used when hashing passwords.
//   - LoginRatePerSecond / LoginBurst: per-peer limit for Login and Signup.
//   - FixturesPath: YAML seed file; empty means the embedded fixtures.
//   - LogLevel / LogFormat: slog level (debug, info, warn, error) and handler (json, text).
type Config struct {
	EndpointAddrGRPC            string        `envconfig:"GRPC_ADDR"`
	MetricsAddr                 string        `envconfig:"METRICS_ADDR"`
	SecretKey                   string        `envconfig:"SECRET_KEY"`
	AccessTokenValidityDuration time.Duration `envconfig:"ACCESS_TOKEN_TTL"`
	BcryptCost                  int           `envconfig:"BCRYPT_COST"`
	LoginRatePerSecond          float64       `envconfig:"LOGIN_RATE"`
	LoginBurst                  int           `envconfig:"LOGIN_BURST"`
	FixturesPath                string        `envconfig:"FIXTURES"`
	LogLevel                    string        `envconfig:"LOG_LEVEL"`
	LogFormat                   string        `envconfig:"LOG_FORMAT"`
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.MetricsAddr = ":9090"
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = 30 * time.Minute
	c.BcryptCost = 10
	c.LoginRatePerSecond = 1
	c.LoginBurst = 5
	c.FixturesPath = ""
	c.LogLevel = "info"
	c.LogFormat = "json"
}

// LoadConfig builds a Config by applying defaults, then the environment
// (optionally primed from a .env file), then an optional JSON file and
// finally command-line flags. Later sources win.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
