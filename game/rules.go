package game

import "fmt"

// Bust is the roll that forfeits the turn total.
const Bust = 1

// TurnResult describes how a single turn ended.
type TurnResult struct {
	Player *Player
	Rolls  []int
	Gained int  // Points added to the player's score, 0 on a bust
	Busted bool // Whether the turn ended on a Bust roll rather than a bank
}

func (r TurnResult) String() string {
	if r.Busted {
		return fmt.Sprintf("%s busted after %v", r.Player.Name, r.Rolls)
	}
	return fmt.Sprintf("%s banked %d after %v", r.Player.Name, r.Gained, r.Rolls)
}

// ResolveTurn plays one full turn for p: it rolls until either a Bust ends the
// turn with nothing gained or p's strategy banks the turn total. The only
// change to shared state is the final addition to p.Score. A strategy error
// ends the turn immediately and leaves the score untouched.
func ResolveTurn(p *Player, die DieSource, obs Observer) (TurnResult, error) {
	if obs == nil {
		obs = NopObserver{}
	}
	obs.TurnStarted(p)

	result := TurnResult{Player: p}
	turnTotal := 0
	for {
		roll := die.Roll()
		result.Rolls = append(result.Rolls, roll)

		if roll == Bust {
			obs.Rolled(p, roll, 0)
			result.Busted = true
			obs.Busted(p)
			return result, nil
		}

		turnTotal += roll
		obs.Rolled(p, roll, turnTotal)

		bank, err := p.Strategy().ShouldBank(turnTotal, p.Score)
		if err != nil {
			return result, fmt.Errorf("%s deciding at turn total %d: %w", p.Name, turnTotal, err)
		}
		if bank {
			result.Gained = turnTotal
			p.Score += turnTotal
			obs.Banked(p, turnTotal)
			return result, nil
		}
	}
}
