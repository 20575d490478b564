package game

// Kind names the two recognised kinds of player.
type Kind string

const (
	Human    Kind = "human"
	Computer Kind = "computer"
)

// Player owns a banked score and the strategy used to end its turns.
type Player struct {
	Name     string
	Score    int
	kind     Kind
	strategy Strategy
}

// NewPlayer creates a player with a zero score. The strategy cannot be
// replaced afterwards.
func NewPlayer(name string, kind Kind, strategy Strategy) *Player {
	return &Player{
		Name:     name,
		kind:     kind,
		strategy: strategy,
	}
}

func (p *Player) Kind() Kind {
	return p.kind
}

func (p *Player) Strategy() Strategy {
	return p.strategy
}
