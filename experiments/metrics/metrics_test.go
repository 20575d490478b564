package metrics

import (
	"bytes"
	"pig/game"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counting turn events", func(t *testing.T) {
		p := game.NewPlayer("Player 1", game.Computer, nil)
		c := NewCollector()

		c.Start()
		c.TurnStarted(p)
		c.Rolled(p, 4, 4)
		c.Rolled(p, 1, 0)
		c.Busted(p)
		c.TurnStarted(p)
		c.Rolled(p, 6, 6)
		c.Banked(p, 6)
		c.Won(p)
		got := c.Complete()

		require.Equal(t, 2, got.Turns)
		require.Equal(t, 3, got.Rolls)
		require.Equal(t, 1, got.Busts)
		require.Equal(t, 1, got.Banks)
		require.False(t, got.StartTime.IsZero())
		require.GreaterOrEqual(t, got.Duration, time.Duration(0))
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start()
		c.TurnStarted(nil)

		require.Equal(t, GameMetric{}, c.Complete())
	})
}

func TestSummarize(t *testing.T) {
	agents := [2]AgentConfig{{ID: 1, HoldCap: 25}, {ID: 2, HoldCap: 20}}

	t.Run("aggregating records", func(t *testing.T) {
		records := []GameRecord{
			{GameMetric: GameMetric{Winner: 1, Turns: 10, Busts: 4, Duration: time.Second}},
			{GameMetric: GameMetric{Winner: 2, Turns: 20, Busts: 6, Duration: 3 * time.Second}},
			{GameMetric: GameMetric{Winner: 1, Turns: 30, Busts: 2, Duration: 2 * time.Second}},
			{GameMetric: GameMetric{Winner: 0, TimedOut: true, Turns: 20, Busts: 4, Duration: 2 * time.Second}},
		}

		s := Summarize(agents, records)

		require.Equal(t, 4, s.Games)
		require.Equal(t, 2, s.Wins[1])
		require.Equal(t, 1, s.Wins[2])
		require.Equal(t, 1, s.Draws)
		require.Equal(t, 1, s.TimedOut)
		require.InDelta(t, 20.0, s.AvgTurns, 0.0001)
		require.Equal(t, 2*time.Second, s.AvgDuration)
		require.InDelta(t, 0.2, s.BustRate, 0.0001)
		require.InDelta(t, 0.5, s.WinRate(1), 0.0001)
	})

	t.Run("summarizing no games", func(t *testing.T) {
		s := Summarize(agents, nil)

		require.Equal(t, 0, s.Games)
		require.Equal(t, 0.0, s.WinRate(1))
	})
}

func TestWriter(t *testing.T) {
	t.Run("writing agent configs", func(t *testing.T) {
		out := &bytes.Buffer{}

		err := NewWriter(out).WriteAgentConfigs([]AgentConfig{{ID: 1, HoldCap: 25}, {ID: 2, HoldCap: 20}})

		require.NoError(t, err)
		require.Equal(t, "id,hold_cap\n1,25\n2,20\n", out.String())
	})

	t.Run("writing game records", func(t *testing.T) {
		out := &bytes.Buffer{}
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		records := []GameRecord{{ID: 1, Agent1: 1, Agent2: 2, GameMetric: GameMetric{
			StartingAgent: 1, Winner: 2, Turns: 12, Rolls: 40, Busts: 5, Banks: 7,
			StartTime: start, Duration: 1500 * time.Microsecond,
		}}}

		err := NewWriter(out).WriteGameRecords(records)

		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 2)
		require.Equal(t, "1,1,2,1,2,false,12,40,5,7,2024-01-02T03:04:05Z,1.5ms", lines[1])
	})

	t.Run("writing a summary", func(t *testing.T) {
		out := &bytes.Buffer{}
		s := Summary{
			Agents:      [2]AgentConfig{{ID: 1}, {ID: 2}},
			Games:       3,
			Wins:        map[int]int{1: 2, 2: 1},
			AvgTurns:    21.5,
			AvgDuration: time.Millisecond,
			BustRate:    0.25,
		}

		err := NewWriter(out).WriteSummary(s)

		require.NoError(t, err)
		require.Equal(t,
			"agent1,agent2,games,wins1,wins2,draws,timed_out,avg_turns,avg_duration,bust_rate\n1,2,3,2,1,0,0,21.50,1ms,0.250\n",
			out.String())
	})
}
