package config

import "time"

// Config holds runtime settings for the GophAdmin console.
//
// Fields:
//   - ServerBaseURL: base URL of the admin API, including the /admin prefix.
//   - RequestTimeout: upper bound for a single HTTP request.
//   - StorePath: SQLite file that keeps the access token between runs.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	StorePath      string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8000/admin"
	c.RequestTimeout = 10 * time.Second
	c.StorePath = "gophadmin.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
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
