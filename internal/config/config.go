// Package config loads simulation settings from an optional YAML file
// with sensible defaults for every knob.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds everything the simulator commands need.
type Config struct {
	Players      []string `mapstructure:"players"`
	Seed         int64    `mapstructure:"seed"`
	MaxTurns     int      `mapstructure:"max_turns"` // safety cap for stalemated games
	DBPath       string   `mapstructure:"db_path"`
	LogLevel     string   `mapstructure:"log_level"`
	APIPort      int      `mapstructure:"api_port"`       // 0 disables the observation API
	TurnDelayMS  int      `mapstructure:"turn_delay_ms"`  // pause between turns for live watching
	HTMLLogPath  string   `mapstructure:"html_log_path"`  // empty skips the HTML export
	RandomOrgKey string   `mapstructure:"random_org_key"` // true randomness instead of the seed
}

// Load reads configuration from path. An empty path returns defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("players", []string{"Player 1", "Player 2", "Player 3", "Player 4"})
	v.SetDefault("seed", int64(42))
	v.SetDefault("max_turns", 10000)
	v.SetDefault("db_path", "data/boardwalk.db")
	v.SetDefault("log_level", "info")
	v.SetDefault("api_port", 0)
	v.SetDefault("turn_delay_ms", 0)
	v.SetDefault("html_log_path", "")
	v.SetDefault("random_org_key", "")

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if len(cfg.Players) < 2 {
		return nil, fmt.Errorf("need at least 2 players, got %d", len(cfg.Players))
	}
	return &cfg, nil
}
