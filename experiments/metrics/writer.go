package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// AgentConfig identifies one search configuration under measurement.
type AgentConfig struct {
	ID    int
	Depth int
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID playing red
	Agent2 int // AgentConfig.ID playing yellow
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a CSV writer under root, in a subfolder named by the
// current timestamp.
func NewWriter(root string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	path := filepath.Join(w.baseDir, "agent_configs.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create agent configs file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "depth"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write agent configs header: %w", err)
	}

	for _, config := range configs {
		row := []string{
			strconv.Itoa(config.ID),
			strconv.Itoa(config.Depth),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write agent config row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "agent1", "agent2", "starting_player", "winner", "start_time", "end_time", "duration", "total_moves"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			record.StartingPlayer,
			record.Winner,
			record.StartTime.UTC().Format(time.RFC3339Nano),
			record.EndTime.UTC().Format(time.RFC3339Nano),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	path := filepath.Join(w.baseDir, "move_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create move records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"game", "step", "player", "column", "depth", "duration", "nodes", "leaf_evals", "cutoffs"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write move records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player,
			strconv.Itoa(record.Column),
			strconv.Itoa(record.Depth),
			record.Duration.String(),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.LeafEvals),
			strconv.Itoa(record.Cutoffs),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write move record row: %w", err)
		}
	}

	return nil
}
