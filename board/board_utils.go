package board

import (
	"fmt"
	"strings"
)

// ToDisplayText renders the board as plain text: column letters across the
// top, row numbers down the side, tiles as letters and empty premium
// squares with their bonus marker.
func (g *GameBoard) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString("\n   ")
	for i := 0; i < Dim; i++ {
		sb.WriteString(fmt.Sprintf("%c ", 'A'+i))
	}
	sb.WriteString("\n   " + strings.Repeat("-", Dim*2) + "\n")
	for r := 0; r < Dim; r++ {
		sb.WriteString(fmt.Sprintf("%2d|", r+1))
		for c := 0; c < Dim; c++ {
			sb.WriteString(g.squareDisplay(Position{Row: r, Col: c}))
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("   " + strings.Repeat("-", Dim*2) + "\n")
	return sb.String()
}

func (g *GameBoard) squareDisplay(p Position) string {
	cell := g.cells[p.Row][p.Col]
	if t, ok := cell.Tile(); ok {
		return string(t.Letter)
	}
	if b := g.Bonus(p); b != NoBonus {
		return string(b)
	}
	return "."
}

// Letters returns the board as Dim strings, empty squares as spaces.
func (g *GameBoard) Letters() []string {
	rows := make([]string, Dim)
	for r := 0; r < Dim; r++ {
		rs := make([]rune, Dim)
		for c := 0; c < Dim; c++ {
			rs[c] = ' '
			if t, ok := g.cells[r][c].Tile(); ok {
				rs[c] = t.Letter
			}
		}
		rows[r] = string(rs)
	}
	return rows
}
