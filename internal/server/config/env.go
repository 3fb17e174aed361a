package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/dmitrijs2005/storerating/internal/flagx"
)

// EnvPrefix is prepended to every variable name, e.g. STORERATING_GRPC_ADDR.
const EnvPrefix = "STORERATING"

// parseEnv overlays Config with STORERATING_* environment variables. When
// -env names a dotenv file, it is loaded first; variables already present in
// the process environment are not overridden by the file.
//
// Unset variables leave the current values untouched. A malformed value
// (e.g. a non-numeric BCRYPT_COST) panics, as does an unreadable -env file.
func parseEnv(config *Config) {
	if path := flagx.ConfigFileFlags().Env; path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	}

	if err := envconfig.Process(EnvPrefix, config); err != nil {
		panic(err)
	}
}
