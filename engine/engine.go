package engine

import (
	"errors"
	"pig/game"
)

var ErrGameOver = errors.New("game is over - no turns allowed")

type Engine interface {
	// PlayTurn resolves one turn and reports whether the game is now over
	PlayTurn() (bool, error)
	// SwitchPlayer hands the turn to the other player
	SwitchPlayer()
	// Play runs turns until the game is over
	Play() (Outcome, error)
	State() *game.GameState
	Outcome() Outcome
}

// Outcome summarises a finished, or cut off, game.
type Outcome struct {
	Winner   int  // Player index, game.NoWinner on a draw or while undecided
	Draw     bool // Only possible when the game was cut off with level scores
	TimedOut bool
	Scores   [2]int
	Turns    int
}

// run is the driving loop shared by every Engine: play a turn, and only if
// the game is not over, switch players.
func run(e Engine) (Outcome, error) {
	for {
		over, err := e.PlayTurn()
		if err != nil {
			return e.Outcome(), err
		}
		if over {
			return e.Outcome(), nil
		}
		e.SwitchPlayer()
	}
}
