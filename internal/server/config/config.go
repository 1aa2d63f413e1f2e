// Package config handles configuration for the stub admin backend,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the stub backend.
//
// Fields:
//   - EndpointAddr: bind address of the HTTP listener.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Empty means a random
//     secret is generated on start, so tokens do not survive a restart.
//   - SuperAdminKey: shared secret required by POST /admin/signup.
//   - AccessTokenValidityDuration: lifetime of issued access tokens.
//   - Seed: preload demo user accounts on start.
type Config struct {
	EndpointAddr                string
	SecretKey                   string
	SuperAdminKey               string
	AccessTokenValidityDuration time.Duration
	Seed                        bool
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8000"
	c.SecretKey = ""
	c.SuperAdminKey = "YOUR_SECURE_SUPER_ADMIN_KEY"
	c.AccessTokenValidityDuration = 30 * time.Minute
	c.Seed = false
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
