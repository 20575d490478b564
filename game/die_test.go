package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDie(t *testing.T) {
	t.Run("rolling within one to six", func(t *testing.T) {
		die := NewDie(7)
		seen := map[int]bool{}
		for i := 0; i < 10000; i++ {
			roll := die.Roll()
			require.GreaterOrEqual(t, roll, 1)
			require.LessOrEqual(t, roll, Sides)
			seen[roll] = true
		}
		require.Len(t, seen, Sides, "Every face should come up")
	})

	t.Run("replaying a seed", func(t *testing.T) {
		d1, d2 := NewDie(42), NewDie(42)
		for i := 0; i < 100; i++ {
			require.Equal(t, d1.Roll(), d2.Roll())
		}
	})
}

func TestScriptedDie(t *testing.T) {
	die := NewScriptedDie(4, 2)

	require.Equal(t, 4, die.Roll())
	require.Equal(t, 2, die.Roll())
	require.Equal(t, 2, die.Consumed())
	require.Panics(t, func() { die.Roll() }, "Should panic when exhausted")
}
