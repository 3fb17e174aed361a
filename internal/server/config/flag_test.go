package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd",
				"-a", "127.0.0.1:9090", "-m", ":9999", "-s", "secret",
				"-t", "5", "-b", "4", "-f", "seed.yaml", "-l", "debug",
			},
			expected: &Config{
				EndpointAddrGRPC:            "127.0.0.1:9090",
				MetricsAddr:                 ":9999",
				SecretKey:                   "secret",
				AccessTokenValidityDuration: 5 * time.Minute,
				BcryptCost:                  4,
				FixturesPath:                "seed.yaml",
				LogLevel:                    "debug",
			},
		},
		{
			name:        "non numeric ttl",
			args:        []string{"cmd", "-t", "forever"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(tt.expected, config))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
