package engine

import (
	"pig/game"
	"pig/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	uuid "github.com/satori/go.uuid"
)

type Option func(e *Local)

// Local plays a game in-process, resolving every turn with the same rules.
type Local struct {
	id       string
	state    *game.GameState
	die      game.DieSource
	observer game.Observer
	logger   zerolog.Logger
	turns    int
}

func WithTarget(target int) Option {
	return func(e *Local) {
		if target > 0 {
			e.state.Target = target
		}
	}
}

func WithObserver(observer game.Observer) Option {
	return func(e *Local) {
		if observer != nil {
			e.observer = observer
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(e *Local) {
		e.logger = logger
	}
}

// WithID names the game in log output. A random ID is used otherwise.
func WithID(id string) Option {
	return func(e *Local) {
		if id != "" {
			e.id = id
		}
	}
}

// NewLocal starts a game between two players, the first of whom moves first.
func NewLocal(p1, p2 *game.Player, die game.DieSource, options ...Option) *Local {
	if p1 == nil || p2 == nil {
		panic("need two players")
	}
	if die == nil {
		panic("need a die")
	}

	e := &Local{ // Default values
		id:       uuid.NewV4().String(),
		state:    game.NewGameState(p1, p2, meta.DefaultTarget),
		die:      die,
		observer: game.NopObserver{},
		logger:   log.Logger,
	}
	for _, option := range options {
		option(e)
	}
	e.logger = e.logger.With().Str("game", e.id).Logger()
	return e
}

func (e *Local) ID() string {
	return e.id
}

func (e *Local) State() *game.GameState {
	return e.state
}

// PlayTurn resolves the current player's turn and reports whether it won the
// game. Once the game is finished every further call fails with ErrGameOver.
func (e *Local) PlayTurn() (bool, error) {
	if e.state.Finished {
		return false, ErrGameOver
	}

	current := e.state.CurrentPlayer()
	result, err := game.ResolveTurn(current, e.die, e.observer)
	if err != nil {
		return false, err
	}
	e.turns++

	e.logger.Debug().
		Int("turn", e.turns).
		Str("player", current.Name).
		Ints("rolls", result.Rolls).
		Int("gained", result.Gained).
		Int("score", current.Score).
		Msg("turn resolved")

	if !e.state.Reached(e.state.Current) {
		return false, nil
	}

	e.state.Finished = true
	e.state.Winner = e.state.Current
	e.observer.Won(current)
	e.logger.Info().Msgf("%s wins with %d points after %d turns", current.Name, current.Score, e.turns)
	return true, nil
}

// SwitchPlayer passes the turn to the other player. It does nothing once the
// game is finished, so the winner stays the current player.
func (e *Local) SwitchPlayer() {
	if e.state.Finished {
		return
	}
	e.state.Current = e.state.NextPlayer()
}

// Play runs the game to completion.
func (e *Local) Play() (Outcome, error) {
	p1, p2 := e.state.Players[0], e.state.Players[1]
	e.logger.Info().
		Str("player1", p1.Name).
		Str("player2", p2.Name).
		Int("target", e.state.Target).
		Msgf("%s is starting", e.state.CurrentPlayer().Name)

	return run(e)
}

func (e *Local) Outcome() Outcome {
	return Outcome{
		Winner: e.state.Winner,
		Scores: e.state.Scores(),
		Turns:  e.turns,
	}
}
