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
		expected  *Config
		name      string
		args      []string
		expectErr bool
	}{
		{name: "all flags", args: []string{"cmd", "-a", "127.0.0.1:9090", "-s", "secret", "-k", "key", "-t", "5", "-seed"},
			expected: &Config{
				EndpointAddr:                "127.0.0.1:9090",
				SecretKey:                   "secret",
				SuperAdminKey:               "key",
				AccessTokenValidityDuration: 5 * time.Minute,
				Seed:                        true,
			}},
		{name: "seed with explicit value", args: []string{"cmd", "-seed=false", "-t", "1"},
			expected: &Config{AccessTokenValidityDuration: time.Minute}},
		{name: "bad minutes", args: []string{"cmd", "-t", "soon"}, expectErr: true},
		{name: "zero minutes", args: []string{"cmd", "-t", "0"}, expectErr: true},
		{name: "absent minutes keeps current value", args: []string{"cmd", "-a", ":1"},
			expected: &Config{EndpointAddr: ":1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}
			err := parseFlags(config)
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(config, tt.expected))
		})
	}
}
