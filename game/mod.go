package game

// DieSource supplies independent uniform rolls in [1, 6].
type DieSource interface {
	Roll() int
}

// Strategy decides, after every non-bust roll, whether the player banks the
// turn total or keeps rolling.
type Strategy interface {
	ShouldBank(turnTotal, banked int) (bool, error)
}

// Observer receives informational notifications while a game is played.
// Nothing it does feeds back into the rules.
type Observer interface {
	TurnStarted(p *Player)
	Rolled(p *Player, roll, turnTotal int)
	Busted(p *Player)
	Banked(p *Player, gained int)
	Won(p *Player)
	TimedOut(leader *Player)
}

// NopObserver ignores every notification.
type NopObserver struct{}

func (NopObserver) TurnStarted(*Player)      {}
func (NopObserver) Rolled(*Player, int, int) {}
func (NopObserver) Busted(*Player)           {}
func (NopObserver) Banked(*Player, int)      {}
func (NopObserver) Won(*Player)              {}
func (NopObserver) TimedOut(*Player)         {}

// Observers fans notifications out to every member in order.
type Observers []Observer

func (os Observers) TurnStarted(p *Player) {
	for _, o := range os {
		o.TurnStarted(p)
	}
}

func (os Observers) Rolled(p *Player, roll, turnTotal int) {
	for _, o := range os {
		o.Rolled(p, roll, turnTotal)
	}
}

func (os Observers) Busted(p *Player) {
	for _, o := range os {
		o.Busted(p)
	}
}

func (os Observers) Banked(p *Player, gained int) {
	for _, o := range os {
		o.Banked(p, gained)
	}
}

func (os Observers) Won(p *Player) {
	for _, o := range os {
		o.Won(p)
	}
}

// TimedOut receives a nil leader when the scores are level.
func (os Observers) TimedOut(leader *Player) {
	for _, o := range os {
		o.TimedOut(leader)
	}
}
