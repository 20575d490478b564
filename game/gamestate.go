package game

import "fmt"

const NoWinner = -1

type Phase int

const (
	InProgress Phase = iota
	Finished
)

func (p Phase) String() string {
	switch p {
	case InProgress:
		return "in progress"
	case Finished:
		return "finished"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// GameState is the whole state of a two-player game between turns. Turn
// totals never live here; they belong to the turn being resolved.
type GameState struct {
	Players  [2]*Player
	Current  int  // Index of the player whose turn it is
	Target   int  // Score at or above which the game is won
	Finished bool // Set once, by the turn that reaches Target
	Winner   int  // Index of the winner, NoWinner until Finished
}

// NewGameState returns a game in progress with player 0 to move.
func NewGameState(p1, p2 *Player, target int) *GameState {
	return &GameState{
		Players: [2]*Player{p1, p2},
		Target:  target,
		Winner:  NoWinner,
	}
}

func (gs *GameState) Phase() Phase {
	if gs.Finished {
		return Finished
	}
	return InProgress
}

func (gs *GameState) CurrentPlayer() *Player {
	return gs.Players[gs.Current]
}

// NextPlayer returns the index of the player who moves after the current one.
func (gs *GameState) NextPlayer() int {
	return 1 - gs.Current
}

func (gs *GameState) Scores() [2]int {
	return [2]int{gs.Players[0].Score, gs.Players[1].Score}
}

// Leader returns the index of the player with the strictly greater score, or
// NoWinner when the scores are level.
func (gs *GameState) Leader() int {
	scores := gs.Scores()
	switch {
	case scores[0] > scores[1]:
		return 0
	case scores[1] > scores[0]:
		return 1
	}
	return NoWinner
}

// Reached reports whether player i has reached the target score.
func (gs *GameState) Reached(i int) bool {
	return gs.Players[i].Score >= gs.Target
}
