package player

import (
	"fmt"
	"io"
)

// Automatic holds once the turn total reaches the lesser of holdCap and the
// points still needed to reach the target.
type Automatic struct {
	name    string
	holdCap int
	target  int
	out     io.Writer
}

func NewAutomatic(name string, holdCap, target int, out io.Writer) *Automatic {
	if out == nil {
		out = io.Discard
	}
	return &Automatic{
		name:    name,
		holdCap: holdCap,
		target:  target,
		out:     out,
	}
}

// HoldAt returns the turn total at which a player with the given banked score
// holds. It is at least 1 for any banked score below the target.
func (a *Automatic) HoldAt(banked int) int {
	return min(a.holdCap, a.target-banked)
}

func (a *Automatic) ShouldBank(turnTotal, banked int) (bool, error) {
	if turnTotal >= a.HoldAt(banked) {
		fmt.Fprintf(a.out, "%s holds with a turn total of %d.\n", a.name, turnTotal)
		return true, nil
	}
	fmt.Fprintf(a.out, "%s rolls again with a turn total of %d.\n", a.name, turnTotal)
	return false, nil
}
