package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gophadmin/internal/flagx"
	"github.com/dmitrijs2005/gophadmin/internal/timex"
)

// JsonConfig is an intermediate DTO used only for reading JSON
// configuration files. It uses timex.Duration so the token lifetime may be
// a string such as "30m" or integer nanoseconds.
type JsonConfig struct {
	EndpointAddr                string         `json:"endpoint_addr"`
	SecretKey                   string         `json:"secret_key"`
	SuperAdminKey               string         `json:"super_admin_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	Seed                        *bool          `json:"seed"`
}

// parseJson loads values from the file named by -c / -config into config.
// Keys absent from the file keep their current values.
func parseJson(config *Config) error {
	jsonConfigFile := flagx.ConfigFilePath()
	if jsonConfigFile == "" {
		return nil
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("read config %s: %w", jsonConfigFile, err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("decode config %s: %w", jsonConfigFile, err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.SuperAdminKey != "" {
		config.SuperAdminKey = c.SuperAdminKey
	}
	if c.AccessTokenValidityDuration.Duration > 0 {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.Seed != nil {
		config.Seed = *c.Seed
	}
	return nil
}
