// Package board holds the 15x15 game board: its cells, its premium
// squares, the coordinate text format, and the scan for words on it.
package board

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/wordgrid/wordgrid/tilemapping"
)

var (
	ErrOutOfBounds = errors.New("position is off the board")
	ErrOccupied    = errors.New("square is already occupied")
)

// A GameBoard is the main board structure. It owns every Cell and the map
// of premium squares, keyed by canonical coordinate.
type GameBoard struct {
	cells       [Dim][Dim]Cell
	premiums    map[string]BonusSquare
	tilesPlayed int
}

// MakeBoard creates a board with the default premium layout.
func MakeBoard() *GameBoard {
	b, err := NewBoard(CrosswordGameLayout)
	if err != nil {
		panic(err)
	}
	return b
}

// NewBoard creates an empty board from a layout description: Dim strings
// of Dim bonus characters each.
func NewBoard(layout []string) (*GameBoard, error) {
	if len(layout) != Dim {
		return nil, fmt.Errorf("layout has %d rows, need %d", len(layout), Dim)
	}
	g := &GameBoard{premiums: map[string]BonusSquare{}}
	for r, s := range layout {
		if utf8.RuneCountInString(s) != Dim {
			return nil, fmt.Errorf("layout row %d has %d squares, need %d",
				r+1, utf8.RuneCountInString(s), Dim)
		}
		c := 0
		for _, ch := range s {
			bonus := BonusSquare(ch)
			if !bonus.valid() {
				return nil, fmt.Errorf("layout row %d: unknown bonus square %q", r+1, ch)
			}
			pos := Position{Row: r, Col: c}
			g.cells[r][c] = Cell{pos: pos}
			if bonus != NoBonus {
				g.premiums[pos.String()] = bonus
			}
			c++
		}
	}
	return g, nil
}

// Dim is the dimension of the board. It assumes the board is square.
func (g *GameBoard) Dim() int {
	return Dim
}

// Place puts a tile on an empty square.
func (g *GameBoard) Place(t tilemapping.Tile, row int, col int) error {
	p := Position{Row: row, Col: col}
	if !p.Valid() {
		return fmt.Errorf("%w: row %d col %d", ErrOutOfBounds, row, col)
	}
	cell := &g.cells[row][col]
	if cell.occupied {
		return fmt.Errorf("%w: %v", ErrOccupied, p)
	}
	cell.tile = t
	cell.occupied = true
	g.tilesPlayed++
	return nil
}

// Remove empties a square and returns the tile that was there.
func (g *GameBoard) Remove(row int, col int) (tilemapping.Tile, bool) {
	p := Position{Row: row, Col: col}
	if !p.Valid() || !g.cells[row][col].occupied {
		return tilemapping.Tile{}, false
	}
	cell := &g.cells[row][col]
	t := cell.tile
	cell.tile = tilemapping.Tile{}
	cell.occupied = false
	g.tilesPlayed--
	log.Debug().Str("pos", p.String()).Str("tile", t.String()).Msg("removed tile")
	return t, true
}

// At returns the cell at row, col; false if that is off the board.
func (g *GameBoard) At(row int, col int) (Cell, bool) {
	if !(Position{Row: row, Col: col}).Valid() {
		return Cell{}, false
	}
	return g.cells[row][col], true
}

// IsOccupied reports whether there is a tile at p. Off-board positions
// are never occupied.
func (g *GameBoard) IsOccupied(p Position) bool {
	c, ok := g.At(p.Row, p.Col)
	return ok && !c.IsEmpty()
}

// LetterAt returns the letter at p, or 0 for an empty or off-board square.
func (g *GameBoard) LetterAt(p Position) rune {
	c, ok := g.At(p.Row, p.Col)
	if !ok || c.IsEmpty() {
		return 0
	}
	return c.tile.Letter
}

// Bonus returns the premium square kind at p.
func (g *GameBoard) Bonus(p Position) BonusSquare {
	if b, ok := g.premiums[p.String()]; ok {
		return b
	}
	return NoBonus
}

// Premiums returns a copy of the premium map.
func (g *GameBoard) Premiums() map[string]BonusSquare {
	m := make(map[string]BonusSquare, len(g.premiums))
	for k, v := range g.premiums {
		m[k] = v
	}
	return m
}

func (g *GameBoard) TilesPlayed() int {
	return g.tilesPlayed
}

// IsEmpty returns if the board is empty.
func (g *GameBoard) IsEmpty() bool {
	return g.tilesPlayed == 0
}

// Copy returns a deep copy of the board. The premium map is shared; it is
// never written after construction.
func (g *GameBoard) Copy() *GameBoard {
	n := &GameBoard{
		cells:       g.cells,
		premiums:    g.premiums,
		tilesPlayed: g.tilesPlayed,
	}
	return n
}

// SetRow fills a row from a string, spaces being empty squares. It is
// meant for setting up positions in tests and analysis; scores gives each
// letter its point value.
func (g *GameBoard) SetRow(row int, letters string, scores func(rune) int) error {
	col := 0
	for _, r := range letters {
		if r != ' ' {
			if err := g.Place(tilemapping.NewTile(r, scores(r)), row, col); err != nil {
				return err
			}
		}
		col++
	}
	return nil
}
