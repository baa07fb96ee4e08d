// Package config loads settings for the example front-ends: defaults first,
// then an optional YAML file, then ASTAR_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Grid struct {
	Columns         int     `mapstructure:"columns"`
	Rows            int     `mapstructure:"rows"`
	WallProbability float64 `mapstructure:"wall_probability"`
	// Seed of zero means a fresh random layout on every build.
	Seed int64 `mapstructure:"seed"`
}

type Puzzle struct {
	Start string `mapstructure:"start"`
	Goal  string `mapstructure:"goal"`
}

type Search struct {
	Workers       int `mapstructure:"workers"`
	MaxExpansions int `mapstructure:"max_expansions"`
}

type Config struct {
	LogLevel string `mapstructure:"log_level"`
	Addr     string `mapstructure:"addr"`
	Grid     Grid   `mapstructure:"grid"`
	Puzzle   Puzzle `mapstructure:"puzzle"`
	Search   Search `mapstructure:"search"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("addr", ":8080")
	v.SetDefault("grid.columns", 50)
	v.SetDefault("grid.rows", 50)
	v.SetDefault("grid.wall_probability", 0.2)
	v.SetDefault("grid.seed", 0)
	v.SetDefault("puzzle.start", "3 5 4/8 7 9/1 2 6")
	v.SetDefault("puzzle.goal", "1 2 3/4 5 6/7 8 9")
	v.SetDefault("search.workers", 0)
	v.SetDefault("search.max_expansions", 0)
}

// Load reads configuration. path may be empty, in which case only defaults
// and the environment apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("astar")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate rejects values no front-end can use.
func (c *Config) Validate() error {
	var errs []error
	if c.Grid.Columns <= 0 || c.Grid.Rows <= 0 {
		errs = append(errs, fmt.Errorf("grid size %dx%d", c.Grid.Columns, c.Grid.Rows))
	}
	if c.Grid.WallProbability < 0 || c.Grid.WallProbability > 1 {
		errs = append(errs, fmt.Errorf("grid wall probability %v outside [0,1]", c.Grid.WallProbability))
	}
	if c.Search.Workers < 0 || c.Search.MaxExpansions < 0 {
		errs = append(errs, errors.New("search limits must not be negative"))
	}
	return errors.Join(errs...)
}
