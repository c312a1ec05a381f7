// Package config loads and validates the proxy's static configuration
// via github.com/spf13/viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the full set of options the proxy accepts.
type Config struct {
	LoggingPackets  []string `mapstructure:"logging_packets"`
	PlayerUUID      string   `mapstructure:"player_uuid"`
	PlayerAuthToken string   `mapstructure:"player_auth_token"`
	WSURL           string   `mapstructure:"ws_url"`
	WSEnabled       bool     `mapstructure:"ws_enabled"`
	ListenAddress   string   `mapstructure:"listen_address"`
	WSSecret        string   `mapstructure:"ws_secret"`
	DomainSuffix    string   `mapstructure:"domain_suffix"`
	Debug           bool     `mapstructure:"debug"`

	// PrintBuffer is derived, not read from the config file: the length
	// of the longest configured logging_packets entry. Load computes it;
	// nothing else in the module reads it.
	PrintBuffer int `mapstructure:"-"`
}

// Load reads configuration from v (already pointed at a source file by
// the caller, e.g. via viper.SetConfigFile) and fills in derived fields.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	cfg.PrintBuffer = longestPacketName(cfg.LoggingPackets)
	return &cfg, nil
}

func longestPacketName(names []string) int {
	longest := 0
	for _, n := range names {
		if len(n) > longest {
			longest = len(n)
		}
	}
	return longest
}

// LogsAll reports whether the "*" wildcard is present in LoggingPackets.
func (c *Config) LogsAll() bool {
	for _, n := range c.LoggingPackets {
		if n == "*" {
			return true
		}
	}
	return false
}

// LogsKind reports whether packet kind name should be console-logged.
func (c *Config) LogsKind(name string) bool {
	if c.LogsAll() {
		return true
	}
	for _, n := range c.LoggingPackets {
		if n == name {
			return true
		}
	}
	return false
}

// Validate checks the fields required for the proxy to start at all.
func Validate(cfg *Config) error {
	if cfg.ListenAddress == "" {
		return fmt.Errorf("listen_address must not be empty")
	}
	if cfg.DomainSuffix == "" {
		return fmt.Errorf("domain_suffix must not be empty")
	}
	if cfg.WSEnabled {
		if cfg.WSURL == "" {
			return fmt.Errorf("ws_url must be set when ws_enabled is true")
		}
		if cfg.WSSecret == "" {
			return fmt.Errorf("ws_secret must be set when ws_enabled is true")
		}
	} else {
		if cfg.PlayerUUID == "" || cfg.PlayerAuthToken == "" {
			return fmt.Errorf("player_uuid and player_auth_token must be set when ws_enabled is false")
		}
	}
	return nil
}
