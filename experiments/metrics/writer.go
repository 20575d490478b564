package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID
	Agent2 int // AgentConfig.ID
	GameMetric
}

// Writer renders experiment results as CSV tables.
type Writer struct {
	out io.Writer
}

func NewWriter(out io.Writer) *Writer {
	return &Writer{
		out: out,
	}
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "hold_cap"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			strconv.Itoa(config.HoldCap),
		})
	}
	if err := w.write(header, rows); err != nil {
		return fmt.Errorf("failed to write agent configs: %w", err)
	}
	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "starting_agent", "winner", "timed_out", "turns", "rolls", "busts", "banks", "start_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			strconv.Itoa(record.StartingAgent),
			strconv.Itoa(record.Winner),
			strconv.FormatBool(record.TimedOut),
			strconv.Itoa(record.Turns),
			strconv.Itoa(record.Rolls),
			strconv.Itoa(record.Busts),
			strconv.Itoa(record.Banks),
			record.StartTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	if err := w.write(header, rows); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	return nil
}

func (w *Writer) WriteSummary(s Summary) error {
	header := []string{"agent1", "agent2", "games", "wins1", "wins2", "draws", "timed_out", "avg_turns", "avg_duration", "bust_rate"}
	row := []string{
		strconv.Itoa(s.Agents[0].ID),
		strconv.Itoa(s.Agents[1].ID),
		strconv.Itoa(s.Games),
		strconv.Itoa(s.Wins[s.Agents[0].ID]),
		strconv.Itoa(s.Wins[s.Agents[1].ID]),
		strconv.Itoa(s.Draws),
		strconv.Itoa(s.TimedOut),
		strconv.FormatFloat(s.AvgTurns, 'f', 2, 64),
		s.AvgDuration.String(),
		strconv.FormatFloat(s.BustRate, 'f', 3, 64),
	}
	if err := w.write(header, [][]string{row}); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

func (w *Writer) write(header []string, rows [][]string) error {
	writer := csv.NewWriter(w.out)
	if err := writer.Write(header); err != nil {
		return err
	}
	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	return writer.Error()
}
