package config

import (
	"flag"
	"os"
	"path/filepath"
	"pig/player"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (Config, error) {
	t.Helper()
	fs := flag.NewFlagSet("pig", flag.ContinueOnError)
	return Parse(fs, args)
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pig.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParse(t *testing.T) {
	t.Run("using defaults", func(t *testing.T) {
		cfg, err := parse(t)

		require.NoError(t, err)
		require.Equal(t, 100, cfg.Target)
		require.Equal(t, 60*time.Second, cfg.TimeLimit)
		require.False(t, cfg.Timed)
		require.Equal(t, "human", cfg.Player1)
		require.Equal(t, "human", cfg.Player2)
		require.Equal(t, uint64(0), cfg.Seed)
		require.Equal(t, 25, cfg.HoldCap)
		require.Equal(t, "info", cfg.LogLevel)
		require.Equal(t, 0, cfg.Simulate)
		require.Empty(t, cfg.Sweep)
	})

	t.Run("reading the environment", func(t *testing.T) {
		t.Setenv("PIG_TARGET", "50")
		t.Setenv("PIG_TIMED", "true")
		t.Setenv("PIG_TIME_LIMIT", "90s")
		t.Setenv("PIG_PLAYER1", "computer")
		t.Setenv("PIG_SWEEP", "10,20")

		cfg, err := parse(t)

		require.NoError(t, err)
		require.Equal(t, 50, cfg.Target)
		require.True(t, cfg.Timed)
		require.Equal(t, 90*time.Second, cfg.TimeLimit)
		require.Equal(t, "computer", cfg.Player1)
		require.Equal(t, []int{10, 20}, cfg.Sweep)
	})

	t.Run("overriding with flags", func(t *testing.T) {
		t.Setenv("PIG_TARGET", "50")

		cfg, err := parse(t,
			"-target", "75",
			"-timed",
			"-time-limit", "5s",
			"-player1", "computer",
			"-player2", "computer",
			"-seed", "42",
			"-hold-cap", "20",
			"-simulate", "3",
			"-sweep", "15, 30",
			"-log-level", "debug",
		)

		require.NoError(t, err)
		require.Equal(t, 75, cfg.Target)
		require.True(t, cfg.Timed)
		require.Equal(t, 5*time.Second, cfg.TimeLimit)
		require.Equal(t, "computer", cfg.Player1)
		require.Equal(t, "computer", cfg.Player2)
		require.Equal(t, uint64(42), cfg.Seed)
		require.Equal(t, 20, cfg.HoldCap)
		require.Equal(t, 3, cfg.Simulate)
		require.Equal(t, []int{15, 30}, cfg.Sweep)
		require.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("loading a config file under the flags", func(t *testing.T) {
		path := writeFile(t, "target: 30\ntime_limit: 2m\nplayer2: computer\nhold_cap: 10\nsweep: [5, 6]\n")

		cfg, err := parse(t, "-config", path, "-hold-cap", "12")

		require.NoError(t, err)
		require.Equal(t, 30, cfg.Target)
		require.Equal(t, 2*time.Minute, cfg.TimeLimit)
		require.Equal(t, "human", cfg.Player1, "Fields missing from the file keep their value")
		require.Equal(t, "computer", cfg.Player2)
		require.Equal(t, 12, cfg.HoldCap, "Flags should win over the file")
		require.Equal(t, []int{5, 6}, cfg.Sweep)
	})

	t.Run("naming the config file in the environment", func(t *testing.T) {
		t.Setenv("PIG_CONFIG", writeFile(t, "simulate: 7\n"))

		cfg, err := parse(t)

		require.NoError(t, err)
		require.Equal(t, 7, cfg.Simulate)
	})

	t.Run("failing on a missing config file", func(t *testing.T) {
		_, err := parse(t, "-config", filepath.Join(t.TempDir(), "missing.yaml"))

		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("failing on a malformed config file", func(t *testing.T) {
		_, err := parse(t, "-config", writeFile(t, "target: [oops\n"))

		require.ErrorContains(t, err, "decode config")
	})

	t.Run("failing on a bad environment value", func(t *testing.T) {
		t.Setenv("PIG_TARGET", "lots")

		_, err := parse(t)

		require.ErrorContains(t, err, "parse env")
	})

	t.Run("failing on a bad sweep flag", func(t *testing.T) {
		_, err := parse(t, "-sweep", "10,x")

		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{Target: 100, TimeLimit: time.Minute, Player1: "human", Player2: "computer", HoldCap: 25}
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		modify func(c *Config)
		want   error
	}{
		{"zero target", func(c *Config) { c.Target = 0 }, ErrInvalidTarget},
		{"negative time limit", func(c *Config) { c.TimeLimit = -time.Second }, ErrInvalidTimeLimit},
		{"zero hold cap", func(c *Config) { c.HoldCap = 0 }, ErrInvalidHoldCap},
		{"negative sweep", func(c *Config) { c.Sweep = []int{10, -1} }, ErrInvalidHoldCap},
		{"negative simulate", func(c *Config) { c.Simulate = -1 }, ErrInvalidSimulate},
		{"unknown player 1", func(c *Config) { c.Player1 = "robot" }, player.ErrInvalidKind},
		{"unknown player 2", func(c *Config) { c.Player2 = "" }, player.ErrInvalidKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(&cfg)

			require.ErrorIs(t, cfg.Validate(), tt.want)
		})
	}
}
