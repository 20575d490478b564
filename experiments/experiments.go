package experiments

import (
	"fmt"
	"io"
	"pig/engine"
	"pig/experiments/metrics"
	"pig/game"
	"pig/meta"
	"pig/player"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Games     int           // Per match up
	Target    int           // Score that wins each game
	Seed      uint64        // Seeds the die shared by every game, 0 for a random seed
	TimeLimit time.Duration // Cuts each game off after this long, 0 for untimed games
}

func (c Config) withDefaults() Config {
	if c.Games <= 0 {
		c.Games = meta.DefaultSeriesGames
	}
	if c.Target <= 0 {
		c.Target = meta.DefaultTarget
	}
	return c
}

// RunHoldCapExperiment pairs a baseline computer player holding at baseline
// against one holding at each of caps in turn.
func RunHoldCapExperiment(cfg Config, baseline int, caps []int) ([]metrics.Summary, []metrics.GameRecord, error) {
	base := metrics.AgentConfig{ID: 1, HoldCap: baseline}
	matchUps := [][2]metrics.AgentConfig{}
	for i, holdCap := range caps {
		matchUps = append(matchUps, [2]metrics.AgentConfig{base, {ID: i + 2, HoldCap: holdCap}})
	}

	log.Info().Msgf("starting hold cap experiment with baseline %d...", baseline)

	summaries := []metrics.Summary{}
	gameRecords := []metrics.GameRecord{}
	for mi, matchUp := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchUp[0], matchUp[1])

		records, summary, err := RunMatchUp(cfg, matchUp)
		if err != nil {
			return summaries, gameRecords, fmt.Errorf("matchup %d: %w", mi+1, err)
		}
		for _, r := range records {
			r.ID = len(gameRecords) + 1
			gameRecords = append(gameRecords, r)
		}
		summaries = append(summaries, summary)

		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msg("completed hold cap experiment")
	return summaries, gameRecords, nil
}

// RunMatchUp plays a series of games between two computer players, swapping
// who starts after every game. All games draw from one die, so a fixed seed
// replays the same series.
func RunMatchUp(cfg Config, agents [2]metrics.AgentConfig) ([]metrics.GameRecord, metrics.Summary, error) {
	cfg = cfg.withDefaults()
	die := game.NewDie(cfg.Seed)

	records := []metrics.GameRecord{}
	for i := 0; i < cfg.Games; i++ {
		log.Info().Msgf("starting game %d of %d...", i+1, cfg.Games)

		metric, err := runGame(cfg, agents, i%2, die)
		if err != nil {
			return records, metrics.Summarize(agents, records), fmt.Errorf("game %d: %w", i+1, err)
		}
		records = append(records, metrics.GameRecord{
			ID:         i + 1,
			Agent1:     agents[0].ID,
			Agent2:     agents[1].ID,
			GameMetric: metric,
		})

		log.Info().Msgf("completed game %d with winner: %d", i+1, metric.Winner)
	}

	return records, metrics.Summarize(agents, records), nil
}

// runGame plays a single game with agents[first] moving first.
func runGame(cfg Config, agents [2]metrics.AgentConfig, first int, die game.DieSource) (metrics.GameMetric, error) {
	players := [2]*game.Player{}
	for i, agent := range agents {
		p, err := player.New(string(game.Computer), fmt.Sprintf("Agent%d", agent.ID),
			player.WithHoldCap(agent.HoldCap),
			player.WithTarget(cfg.Target),
			player.WithOutput(io.Discard),
		)
		if err != nil {
			return metrics.GameMetric{}, err
		}
		players[i] = p
	}

	collector := metrics.NewCollector()
	local := engine.NewLocal(players[first], players[1-first], die,
		engine.WithTarget(cfg.Target),
		engine.WithObserver(collector),
		engine.WithLogger(log.Logger.Level(zerolog.WarnLevel)),
	)
	var e engine.Engine = local
	if cfg.TimeLimit > 0 {
		e = engine.NewTimed(local, cfg.TimeLimit)
	}

	collector.Start()
	outcome, err := e.Play()
	if err != nil {
		return metrics.GameMetric{}, err
	}

	metric := collector.Complete()
	metric.StartingAgent = agents[first].ID
	metric.TimedOut = outcome.TimedOut
	if outcome.Winner != game.NoWinner {
		winner := e.State().Players[outcome.Winner]
		for i, p := range players {
			if p == winner {
				metric.Winner = agents[i].ID
			}
		}
	}
	return metric, nil
}
