package engine

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer stores game and move records as CSV files under one directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped subdirectory of root.
func NewWriter(root string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, timestamp)
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteGameRecords(results []Result) error {
	header := []string{"id", "black", "white", "outcome", "black_score", "white_score", "moves", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			r.Game.ID.String(),
			r.Game.Black,
			r.Game.White,
			r.Outcome.String(),
			strconv.Itoa(r.BlackScore),
			strconv.Itoa(r.WhiteScore),
			strconv.Itoa(r.Game.TotalMoves),
			r.Game.StartTime.Format(time.RFC3339),
			r.Game.EndTime.Format(time.RFC3339),
			r.Game.Duration.String(),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(results []Result) error {
	header := []string{"game", "ply", "player", "strategy", "move", "duration", "visited"}
	var rows [][]string
	for _, r := range results {
		for _, m := range r.Moves {
			rows = append(rows, []string{
				r.Game.ID.String(),
				strconv.Itoa(m.Ply),
				m.Player.String(),
				m.Strategy,
				m.Move.String(),
				m.Duration.String(),
				strconv.FormatInt(m.Visited, 10),
			})
		}
	}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) (err error) {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", name, closeErr)
		}
	}()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
