// Package config gathers game settings from the environment, an optional
// YAML file and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"pig/player"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Target     int           `env:"PIG_TARGET" envDefault:"100" yaml:"target"`
	TimeLimit  time.Duration `env:"PIG_TIME_LIMIT" envDefault:"60s" yaml:"time_limit"`
	Timed      bool          `env:"PIG_TIMED" envDefault:"false" yaml:"timed"`
	Player1    string        `env:"PIG_PLAYER1" envDefault:"human" yaml:"player1"`
	Player2    string        `env:"PIG_PLAYER2" envDefault:"human" yaml:"player2"`
	Seed       uint64        `env:"PIG_SEED" envDefault:"0" yaml:"seed"`
	HoldCap    int           `env:"PIG_HOLD_CAP" envDefault:"25" yaml:"hold_cap"`
	LogLevel   string        `env:"PIG_LOG_LEVEL" envDefault:"info" yaml:"log_level"`
	Simulate   int           `env:"PIG_SIMULATE" envDefault:"0" yaml:"simulate"`
	Sweep      []int         `env:"PIG_SWEEP" envSeparator:"," yaml:"sweep"`
	ConfigFile string        `env:"PIG_CONFIG" yaml:"-"`
}

var (
	ErrInvalidTarget    = errors.New("target score must be positive")
	ErrInvalidTimeLimit = errors.New("time limit must not be negative")
	ErrInvalidHoldCap   = errors.New("hold cap must be positive")
	ErrInvalidSimulate  = errors.New("number of simulated games must not be negative")
)

// Parse loads the environment, then the YAML file named by -config or
// PIG_CONFIG if any, then args. Flags always win over the file.
func Parse(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	bindFlags(fs, &cfg)
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	if cfg.ConfigFile != "" {
		if err := LoadFile(cfg.ConfigFile, &cfg); err != nil {
			return Config{}, err
		}
		// Reapply flags over the file
		if err := fs.Parse(args); err != nil {
			return Config{}, fmt.Errorf("parse flags: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile overlays the fields present in a YAML file onto cfg.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}

func bindFlags(fs *flag.FlagSet, cfg *Config) {
	fs.IntVar(&cfg.Target, "target", cfg.Target, "Score needed to win")
	fs.DurationVar(&cfg.TimeLimit, "time-limit", cfg.TimeLimit, "Length of a timed game")
	fs.BoolVar(&cfg.Timed, "timed", cfg.Timed, "Enable timed game")
	fs.StringVar(&cfg.Player1, "player1", cfg.Player1, "Player 1 type (human/computer)")
	fs.StringVar(&cfg.Player2, "player2", cfg.Player2, "Player 2 type (human/computer)")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Die seed, 0 for a random seed")
	fs.IntVar(&cfg.HoldCap, "hold-cap", cfg.HoldCap, "Largest turn total a computer player aims for")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug/info/warn/error)")
	fs.IntVar(&cfg.Simulate, "simulate", cfg.Simulate, "Play this many computer games instead of an interactive one")
	fs.Func("sweep", "Comma separated hold caps to play against -hold-cap", func(s string) error {
		caps, err := parseInts(s)
		if err != nil {
			return err
		}
		cfg.Sweep = caps
		return nil
	})
	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "YAML config file")
}

func parseInts(s string) ([]int, error) {
	ints := []int{}
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", field, err)
		}
		ints = append(ints, n)
	}
	return ints, nil
}

func (c Config) Validate() error {
	if c.Target <= 0 {
		return ErrInvalidTarget
	}
	if c.TimeLimit < 0 {
		return ErrInvalidTimeLimit
	}
	if c.HoldCap <= 0 {
		return ErrInvalidHoldCap
	}
	for _, holdCap := range c.Sweep {
		if holdCap <= 0 {
			return fmt.Errorf("%w: sweep value %d", ErrInvalidHoldCap, holdCap)
		}
	}
	if c.Simulate < 0 {
		return ErrInvalidSimulate
	}
	for _, kind := range []string{c.Player1, c.Player2} {
		if !player.ValidKind(kind) {
			return fmt.Errorf("%w: %q", player.ErrInvalidKind, kind)
		}
	}
	return nil
}
