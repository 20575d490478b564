package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"pig/config"
	"pig/display"
	"pig/engine"
	"pig/experiments"
	"pig/experiments/metrics"
	"pig/game"
	"pig/player"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	switch {
	case len(cfg.Sweep) > 0:
		err = runSweep(cfg, os.Stdout)
	case cfg.Simulate > 0:
		err = runSeries(cfg, os.Stdout)
	default:
		_, err = playGame(cfg, os.Stdin, os.Stdout)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("game failed")
	}
}

// playGame plays one game between the configured player kinds, reading human
// decisions from in and narrating to out.
func playGame(cfg config.Config, in io.Reader, out io.Writer) (engine.Outcome, error) {
	input := bufio.NewReader(in)
	options := []player.Option{
		player.WithInput(input),
		player.WithOutput(out),
		player.WithHoldCap(cfg.HoldCap),
		player.WithTarget(cfg.Target),
	}
	p1, err := player.New(cfg.Player1, "Player 1", options...)
	if err != nil {
		return engine.Outcome{}, err
	}
	p2, err := player.New(cfg.Player2, "Player 2", options...)
	if err != nil {
		return engine.Outcome{}, err
	}

	console := display.NewConsole(out)
	var e engine.Engine = engine.NewLocal(p1, p2, game.NewDie(cfg.Seed),
		engine.WithTarget(cfg.Target),
		engine.WithObserver(console),
	)
	if cfg.Timed {
		e = engine.NewTimed(e, cfg.TimeLimit, engine.WithTimedObserver(console))
	}

	console.Welcome(cfg.Timed)
	return e.Play()
}

func runSeries(cfg config.Config, out io.Writer) error {
	agents := [2]metrics.AgentConfig{
		{ID: 1, HoldCap: cfg.HoldCap},
		{ID: 2, HoldCap: cfg.HoldCap},
	}
	records, summary, err := experiments.RunMatchUp(seriesConfig(cfg, cfg.Simulate), agents)
	if err != nil {
		return err
	}

	w := metrics.NewWriter(out)
	if err := w.WriteAgentConfigs(agents[:]); err != nil {
		return err
	}
	if err := w.WriteGameRecords(records); err != nil {
		return err
	}
	return w.WriteSummary(summary)
}

func runSweep(cfg config.Config, out io.Writer) error {
	summaries, _, err := experiments.RunHoldCapExperiment(seriesConfig(cfg, cfg.Simulate), cfg.HoldCap, cfg.Sweep)
	if err != nil {
		return err
	}

	w := metrics.NewWriter(out)
	for _, summary := range summaries {
		if err := w.WriteSummary(summary); err != nil {
			return err
		}
		fmt.Fprintf(out, "hold cap %d vs %d: win rate %.2f\n",
			summary.Agents[0].HoldCap, summary.Agents[1].HoldCap, summary.WinRate(summary.Agents[1].ID))
	}
	return nil
}

func seriesConfig(cfg config.Config, games int) experiments.Config {
	c := experiments.Config{
		Games:  games,
		Target: cfg.Target,
		Seed:   cfg.Seed,
	}
	if cfg.Timed {
		c.TimeLimit = cfg.TimeLimit
	}
	return c
}
