package display

import (
	"fmt"
	"io"
	"pig/game"
)

const (
	welcomeText      = "Welcome to Pig!\n"
	welcomeTimedText = "Welcome to the Timed Pig Game!\n"
	turnText         = "\n%s's turn! Current score: %d\n"
	rollText         = "%s rolled a %d.\n"
	bustText         = "Rolled a 1! No points for this turn.\n"
	turnTotalText    = "Turn total: %d, Overall score: %d\n"
	holdText         = "%s holds. New total score: %d\n\n"
	winText          = "%s wins with %d points!\n\n"
	timeUpText       = "Time's up! The game will end now.\n"
	leaderText       = "%s leads with %d points.\n"
	drawText         = "The game is a draw.\n"
)

func SendText(w io.Writer, text string, a ...interface{}) {
	fmt.Fprintf(w, text, a...)
}

// Console narrates a game as plain text.
type Console struct {
	out io.Writer
}

func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) Welcome(timed bool) {
	if timed {
		SendText(c.out, welcomeTimedText)
		return
	}
	SendText(c.out, welcomeText)
}

func (c *Console) TurnStarted(p *game.Player) {
	SendText(c.out, turnText, p.Name, p.Score)
}

func (c *Console) Rolled(p *game.Player, roll, turnTotal int) {
	SendText(c.out, rollText, p.Name, roll)
	if roll != game.Bust {
		SendText(c.out, turnTotalText, turnTotal, p.Score)
	}
}

func (c *Console) Busted(*game.Player) {
	SendText(c.out, bustText)
}

func (c *Console) Banked(p *game.Player, gained int) {
	SendText(c.out, holdText, p.Name, p.Score)
}

func (c *Console) Won(p *game.Player) {
	SendText(c.out, winText, p.Name, p.Score)
}

func (c *Console) TimedOut(leader *game.Player) {
	SendText(c.out, timeUpText)
	if leader == nil {
		SendText(c.out, drawText)
		return
	}
	SendText(c.out, leaderText, leader.Name, leader.Score)
}
