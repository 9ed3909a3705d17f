package game

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// TurnRecord is one resolved turn.
type TurnRecord struct {
	Turn     int      `json:"turn"`
	Player   string   `json:"player"`
	Rack     string   `json:"rack"`
	Action   string   `json:"action"`
	Move     string   `json:"move"`
	Words    []string `json:"words,omitempty"`
	Score    int      `json:"score"`
	Total    int      `json:"total"`
	Warnings []string `json:"warnings,omitempty"`
}

func (t TurnRecord) String() string {
	s := fmt.Sprintf("%d. %s (%s) %s", t.Turn+1, t.Player, t.Rack, t.Move)
	if t.Action == "play" {
		s += fmt.Sprintf(" %v +%d %d", t.Words, t.Score, t.Total)
	}
	return s
}

// WriteHistory writes every resolved turn to w, one JSON object per line.
func (g *Game) WriteHistory(w io.Writer) error {
	enc := json.NewEncoder(w)
	for _, rec := range g.history {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}

// SaveHistory writes the history to a file, replacing it.
func (g *Game) SaveHistory(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := g.WriteHistory(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
