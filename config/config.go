package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/haya28/othello/board"
)

// Config holds all runtime settings. Values come from an optional yaml
// config file, OTHELLO_-prefixed environment variables, and built-in
// defaults, in that order of precedence.
type Config struct {
	Debug               bool   `mapstructure:"debug"`
	SearchDepth         int    `mapstructure:"search-depth"`
	AIPlays             string `mapstructure:"ai-plays"`
	WeightsFile         string `mapstructure:"weights-file"`
	GameDB              string `mapstructure:"game-db"`
	SelfplayConcurrency int    `mapstructure:"selfplay-concurrency"`
}

func DefaultConfig() *Config {
	return &Config{
		SearchDepth:         4,
		AIPlays:             "black",
		GameDB:              "othello_games.db",
		SelfplayConcurrency: 2,
	}
}

// Load populates the config. If cfgFile is empty it looks for
// othello.yaml in the working directory; a missing file is not an error.
func (c *Config) Load(cfgFile string) error {
	v := viper.New()
	v.SetDefault("debug", false)
	v.SetDefault("search-depth", 4)
	v.SetDefault("ai-plays", "black")
	v.SetDefault("weights-file", "")
	v.SetDefault("game-db", "othello_games.db")
	v.SetDefault("selfplay-concurrency", 2)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("othello")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("othello")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}
	if err := v.Unmarshal(c); err != nil {
		return err
	}
	return c.validate()
}

func (c *Config) validate() error {
	if c.SearchDepth < 1 {
		return fmt.Errorf("search-depth must be at least 1, got %d", c.SearchDepth)
	}
	if c.SelfplayConcurrency < 1 {
		return fmt.Errorf("selfplay-concurrency must be at least 1, got %d", c.SelfplayConcurrency)
	}
	switch strings.ToLower(c.AIPlays) {
	case "black", "white":
	default:
		return fmt.Errorf("ai-plays must be black or white, got %q", c.AIPlays)
	}
	return nil
}

// AISide returns the side the search engine plays.
func (c *Config) AISide() board.CellValue {
	if strings.ToLower(c.AIPlays) == "white" {
		return board.White
	}
	return board.Black
}
