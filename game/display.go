package game

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/wordgrid/wordgrid/tilemapping"
)

func splitSubN(s string, n int) []string {
	subs := []string{}
	runes := []rune(s)
	for len(runes) > n {
		subs = append(subs, string(runes[:n]))
		runes = runes[n:]
	}
	if len(runes) > 0 {
		subs = append(subs, string(runes))
	}
	return subs
}

func addText(lines []string, row int, hpad int, text string) {
	maxTextSize := 42
	for _, chunk := range splitSubN(text, maxTextSize) {
		if row >= len(lines) {
			return
		}
		lines[row] = lines[row] + strings.Repeat(" ", hpad) + chunk
		row++
	}
}

// ToDisplayText draws the board with the players, the bag and the last
// turn beside it.
func (s Snapshot) ToDisplayText() string {
	bts := strings.Split(s.Board.ToDisplayText(), "\n")
	hpadding := 3
	vpadding := 1

	for pi, p := range s.Players {
		onturn := ""
		if pi == s.OnTurn && s.State != GameOver {
			onturn = "-> "
		}
		addText(bts, vpadding+pi, hpadding,
			fmt.Sprintf("%4v%20v%9v %4v", onturn, p.Name, tilemapping.TilesString(p.Rack), p.Score))
	}

	vpadding += len(s.Players) + 1
	addText(bts, vpadding, hpadding, fmt.Sprintf("Bag: %d tiles", s.BagCount))
	addText(bts, vpadding+1, hpadding, fmt.Sprintf("Turn %d, scoreless turns: %d", s.TurnNumber+1, s.ScorelessTurns))
	if s.State == GameOver {
		addText(bts, vpadding+3, hpadding, "Game is over.")
	}
	return strings.Join(bts, "\n")
}

// ToDisplayText is the snapshot display plus the last turn played.
func (g *Game) ToDisplayText() string {
	log.Debug().Int("onturn", g.onturn).Msg("todisplaytext")
	text := g.Snapshot().ToDisplayText()
	if len(g.history) > 0 {
		text += "\n" + g.history[len(g.history)-1].String()
	}
	return text
}
