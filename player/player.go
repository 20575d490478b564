package player

import (
	"errors"
	"fmt"
	"io"
	"os"
	"pig/game"
	"pig/meta"
)

var ErrInvalidKind = errors.New("invalid player kind")

type Option func(c *options)

type options struct {
	in      io.Reader
	out     io.Writer
	holdCap int
	target  int
}

// WithInput sets where human players read their decisions from.
func WithInput(r io.Reader) Option {
	return func(c *options) {
		if r != nil {
			c.in = r
		}
	}
}

// WithOutput sets where prompts and decision notices are written.
func WithOutput(w io.Writer) Option {
	return func(c *options) {
		if w != nil {
			c.out = w
		}
	}
}

func WithHoldCap(holdCap int) Option {
	return func(c *options) {
		if holdCap > 0 {
			c.holdCap = holdCap
		}
	}
}

func WithTarget(target int) Option {
	return func(c *options) {
		if target > 0 {
			c.target = target
		}
	}
}

// New creates a player of the requested kind. Unknown kinds are rejected
// before anything else is built.
func New(kind, name string, opts ...Option) (*game.Player, error) {
	c := &options{ // Default values
		in:      os.Stdin,
		out:     os.Stdout,
		holdCap: meta.DefaultHoldCap,
		target:  meta.DefaultTarget,
	}
	for _, opt := range opts {
		opt(c)
	}

	switch game.Kind(kind) {
	case game.Human:
		return game.NewPlayer(name, game.Human, NewInteractive(name, c.in, c.out)), nil
	case game.Computer:
		return game.NewPlayer(name, game.Computer, NewAutomatic(name, c.holdCap, c.target, c.out)), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
}

// ValidKind reports whether kind names a player New can build.
func ValidKind(kind string) bool {
	switch game.Kind(kind) {
	case game.Human, game.Computer:
		return true
	}
	return false
}
