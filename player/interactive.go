package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// HoldToken is the only answer that banks the turn total.
const HoldToken = "h"

var ErrNoInput = errors.New("no input from player")

// Interactive asks a person whether to hold. Any answer other than HoldToken,
// including an empty line, means roll again.
type Interactive struct {
	name string
	in   *bufio.Reader
	out  io.Writer
}

// NewInteractive reads answers from in. Players sharing one input should be
// given the same *bufio.Reader so neither swallows the other's lines.
func NewInteractive(name string, in io.Reader, out io.Writer) *Interactive {
	br, ok := in.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(in)
	}
	if out == nil {
		out = io.Discard
	}
	return &Interactive{name: name, in: br, out: out}
}

func (h *Interactive) ShouldBank(turnTotal, banked int) (bool, error) {
	fmt.Fprintf(h.out, "%s, Roll again (r) or hold (h)? ", h.name)

	line, err := h.in.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		if errors.Is(err, io.EOF) {
			return false, ErrNoInput
		}
		return false, fmt.Errorf("%w: %w", ErrNoInput, err)
	}

	return strings.ToLower(strings.TrimSpace(line)) == HoldToken, nil
}
