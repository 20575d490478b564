package game

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"
)

const Sides = 6

// Die is a six-sided die backed by a seeded pseudo-random source.
type Die struct {
	rng *rand.Rand
}

// NewDie returns a die seeded with seed. A zero seed is replaced with the
// current time so that unseeded games differ from run to run.
func NewDie(seed uint64) *Die {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Die{rng: rand.New(rand.NewSource(seed))}
}

func (d *Die) Roll() int {
	return d.rng.Intn(Sides) + 1
}

// ScriptedDie replays a fixed sequence of rolls. It panics once the sequence
// is exhausted, which is how a failing die surfaces.
type ScriptedDie struct {
	rolls []int
	next  int
}

func NewScriptedDie(rolls ...int) *ScriptedDie {
	return &ScriptedDie{rolls: rolls}
}

func (d *ScriptedDie) Roll() int {
	if d.next >= len(d.rolls) {
		panic(fmt.Sprintf("scripted die exhausted after %d rolls", len(d.rolls)))
	}
	roll := d.rolls[d.next]
	d.next++
	return roll
}

// Consumed returns the number of rolls drawn so far.
func (d *ScriptedDie) Consumed() int {
	return d.next
}
