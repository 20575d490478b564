package metrics

import "time"

// Summary aggregates the games of one match up.
type Summary struct {
	Agents      [2]AgentConfig
	Games       int
	Wins        map[int]int // AgentConfig.ID -> games won
	Draws       int
	TimedOut    int
	AvgTurns    float64
	AvgDuration time.Duration
	BustRate    float64 // Busts per turn
}

func Summarize(agents [2]AgentConfig, records []GameRecord) Summary {
	s := Summary{
		Agents: agents,
		Games:  len(records),
		Wins:   map[int]int{agents[0].ID: 0, agents[1].ID: 0},
	}
	if len(records) == 0 {
		return s
	}

	turns, busts := 0, 0
	var duration time.Duration
	for _, r := range records {
		if r.Winner == 0 {
			s.Draws++
		} else {
			s.Wins[r.Winner]++
		}
		if r.TimedOut {
			s.TimedOut++
		}
		turns += r.Turns
		busts += r.Busts
		duration += r.Duration
	}

	s.AvgTurns = float64(turns) / float64(len(records))
	s.AvgDuration = duration / time.Duration(len(records))
	if turns > 0 {
		s.BustRate = float64(busts) / float64(turns)
	}
	return s
}

// WinRate returns the share of games won by the agent with the given ID.
func (s Summary) WinRate(id int) float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins[id]) / float64(s.Games)
}
