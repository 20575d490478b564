package engine

import (
	"pig/game"
	"pig/meta"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type TimedOption func(t *Timed)

// Timed wraps another Engine with a wall-clock deadline. Turns that start
// before the deadline are passed through unchanged; the first turn requested
// after it ends the game in favour of whoever is ahead.
type Timed struct {
	inner    Engine
	deadline time.Time
	now      func() time.Time
	observer game.Observer
	logger   zerolog.Logger
	timedOut bool
	leader   int
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) TimedOption {
	return func(t *Timed) {
		if now != nil {
			t.now = now
		}
	}
}

func WithTimedObserver(observer game.Observer) TimedOption {
	return func(t *Timed) {
		if observer != nil {
			t.observer = observer
		}
	}
}

func WithTimedLogger(logger zerolog.Logger) TimedOption {
	return func(t *Timed) {
		t.logger = logger
	}
}

// NewTimed starts the clock immediately. A negative limit is replaced with
// meta.DefaultTimeLimit; a zero limit cuts the game off at the first turn.
func NewTimed(inner Engine, limit time.Duration, options ...TimedOption) *Timed {
	if limit < 0 {
		limit = meta.DefaultTimeLimit
	}
	t := &Timed{
		inner:    inner,
		now:      time.Now,
		observer: game.NopObserver{},
		logger:   log.Logger,
		leader:   game.NoWinner,
	}
	for _, option := range options {
		option(t)
	}
	t.deadline = t.now().Add(limit)
	return t
}

func (t *Timed) Deadline() time.Time {
	return t.deadline
}

// PlayTurn ends the game without rolling once the deadline has passed.
// The deadline is only checked here, so a turn already underway always
// completes.
func (t *Timed) PlayTurn() (bool, error) {
	if t.timedOut {
		return true, nil
	}
	if !t.now().After(t.deadline) {
		return t.inner.PlayTurn()
	}

	state := t.inner.State()
	t.timedOut = true
	t.leader = state.Leader()

	var leader *game.Player
	if t.leader != game.NoWinner {
		leader = state.Players[t.leader]
		t.logger.Info().Msgf("time is up, %s leads with %d points", leader.Name, leader.Score)
	} else {
		t.logger.Info().Msgf("time is up with scores level at %d", state.Players[0].Score)
	}
	t.observer.TimedOut(leader)
	return true, nil
}

func (t *Timed) SwitchPlayer() {
	t.inner.SwitchPlayer()
}

func (t *Timed) Play() (Outcome, error) {
	return run(t)
}

func (t *Timed) State() *game.GameState {
	return t.inner.State()
}

// Outcome is the wrapped engine's outcome unless the game was cut off, in
// which case the leader at the deadline wins and level scores are a draw.
func (t *Timed) Outcome() Outcome {
	outcome := t.inner.Outcome()
	if !t.timedOut {
		return outcome
	}
	outcome.TimedOut = true
	outcome.Winner = t.leader
	outcome.Draw = t.leader == game.NoWinner
	return outcome
}
