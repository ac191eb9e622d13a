package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config carries the CLI/runtime settings for the simulation driver.
type Config struct {
	Env        string `mapstructure:"ENV"`
	LogLevel   string `mapstructure:"LOG_LEVEL"`
	LeagueFile string `mapstructure:"LEAGUE_FILE"`
	HomeTeam   string `mapstructure:"HOME_TEAM"`
	AwayTeam   string `mapstructure:"AWAY_TEAM"`

	// Seed of 0 keeps unseeded (time-based) randomness.
	Seed uint64 `mapstructure:"SEED"`

	// BestOf > 1 simulates a playoff series instead of a single game.
	BestOf int `mapstructure:"BEST_OF"`
}

// Load reads configuration from a .env file (if present) and the
// environment.
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "")
	viper.SetDefault("LEAGUE_FILE", "league.json")
	viper.SetDefault("HOME_TEAM", "")
	viper.SetDefault("AWAY_TEAM", "")
	viper.SetDefault("SEED", 0)
	viper.SetDefault("BEST_OF", 1)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &config, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
