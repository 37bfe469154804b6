package config

import (
	"errors"
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vancomm/minesweeper/internal/mines"
)

const EnvPrefix = "MINES"

type Log struct {
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

type Config struct {
	Mode       string  `mapstructure:"mode"`
	Difficulty string  `mapstructure:"difficulty"`
	Rows       int     `mapstructure:"rows"`
	Cols       int     `mapstructure:"cols"`
	Mines      int     `mapstructure:"mines"`
	Density    float64 `mapstructure:"density"`
	Seed       uint64  `mapstructure:"seed"`
	Log        Log     `mapstructure:"log"`
}

// flag name -> config key
var flagKeys = map[string]string{
	"mode":       "mode",
	"difficulty": "difficulty",
	"rows":       "rows",
	"cols":       "cols",
	"mines":      "mines",
	"density":    "density",
	"seed":       "seed",
	"log-file":   "log.file",
}

// RegisterFlags adds the configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("mode", "production", "development or production")
	fs.StringP("difficulty", "d", "easy", "preset: "+strings.Join(mines.Difficulties(), ", "))
	fs.IntP("rows", "r", 0, "custom board rows")
	fs.IntP("cols", "c", 0, "custom board columns")
	fs.IntP("mines", "m", -1, "custom board mine count")
	fs.Float64P("density", "b", 0, "custom board mine density in (0, 1), used when --mines is not given")
	fs.Uint64("seed", 0, "random seed, 0 picks one")
	fs.String("log-file", "", "write logs to this file, rotated")
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("mode", "production")
	v.SetDefault("difficulty", "easy")
	v.SetDefault("mines", -1)
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load merges, lowest priority first, defaults, the config file, MINES_*
// environment variables and flags that were set explicitly. An empty path
// looks for an optional mines.{yaml,json,toml} in the working directory and
// in $HOME/.config/mines.
func Load(fs *pflag.FlagSet, path string) (*Config, error) {
	v := newViper()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("unable to bind flag %s: %w", name, err)
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("mines")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/mines")
		var notFound viper.ConfigFileNotFoundError
		if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("unable to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}
	return &cfg, nil
}

// Params resolves the board: custom dimensions win over the difficulty
// preset, and an explicit mine count wins over a density.
func (c Config) Params() (mines.Params, error) {
	if c.Rows == 0 && c.Cols == 0 {
		p, err := mines.ParseDifficulty(c.Difficulty)
		if err != nil {
			return p, err
		}
		return p, p.Validate()
	}

	p := mines.Params{Rows: c.Rows, Cols: c.Cols, MineCount: c.Mines}
	if c.Rows <= 0 || c.Cols <= 0 {
		return p, &mines.ConfigError{Params: p, Reason: "custom boards need both rows and cols"}
	}
	if c.Mines < 0 {
		if c.Density == 0 {
			return p, &mines.ConfigError{Params: p, Reason: "custom boards need mines or density"}
		}
		n, err := mines.MinesForDensity(c.Rows, c.Cols, c.Density)
		if err != nil {
			return p, err
		}
		p.MineCount = n
	}
	return p, p.Validate()
}

// Rand returns the generator for board layouts, seeded from Seed when set.
func (c Config) Rand() *rand.Rand {
	if c.Seed != 0 {
		return rand.New(rand.NewPCG(c.Seed, c.Seed^0x9e3779b97f4a7c15))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":         c.Mode,
		"difficulty":   c.Difficulty,
		"rows":         c.Rows,
		"cols":         c.Cols,
		"mines":        c.Mines,
		"density":      c.Density,
		"seed":         c.Seed,
		"log_file":     c.Log.File,
		"log_max_size": c.Log.MaxSizeMB,
	}
}
