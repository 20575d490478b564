package metrics

import (
	"pig/game"
	"time"
)

type AgentConfig struct {
	ID      int
	HoldCap int
}

type GameMetric struct {
	StartingAgent int // AgentConfig.ID
	Winner        int // AgentConfig.ID, 0 on a draw
	TimedOut      bool
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
	Turns         int
	Rolls         int
	Busts         int
	Banks         int
}

// Collector tallies what happens during one game by observing its turns.
type Collector interface {
	game.Observer
	Start()
	Complete() GameMetric
}

type collector struct {
	game.NopObserver
	startTime time.Time
	turns     int
	rolls     int
	busts     int
	banks     int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
}

func (m *collector) TurnStarted(*game.Player) {
	m.turns++
}

func (m *collector) Rolled(*game.Player, int, int) {
	m.rolls++
}

func (m *collector) Busted(*game.Player) {
	m.busts++
}

func (m *collector) Banked(*game.Player, int) {
	m.banks++
}

// Complete returns the tallies. Identifying the agents is left to the caller.
func (m *collector) Complete() GameMetric {
	end := time.Now()
	return GameMetric{
		StartTime: m.startTime,
		EndTime:   end,
		Duration:  end.Sub(m.startTime),
		Turns:     m.turns,
		Rolls:     m.rolls,
		Busts:     m.busts,
		Banks:     m.banks,
	}
}

type dummyCollector struct {
	game.NopObserver
}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()               {}
func (m *dummyCollector) Complete() GameMetric { return GameMetric{} }
