package board

import (
	"strings"

	"github.com/wordgrid/wordgrid/tilemapping"
)

// A PlacedTile is a tile together with the square it sits on.
type PlacedTile struct {
	Pos  Position
	Tile tilemapping.Tile
}

// A Word is a maximal run of two or more occupied squares in a row
// (left to right) or column (top to bottom).
type Word struct {
	Text      string
	Direction BoardDirection
	Cells     []PlacedTile
}

// Contains reports whether the word covers p.
func (w Word) Contains(p Position) bool {
	for _, c := range w.Cells {
		if c.Pos == p {
			return true
		}
	}
	return false
}

// Start is the first square of the word.
func (w Word) Start() Position {
	return w.Cells[0].Pos
}

// ScanWords re-scans the whole board and returns every word on it: rows
// first, top to bottom, then columns, left to right.
func (g *GameBoard) ScanWords() []Word {
	words := []Word{}
	for r := 0; r < Dim; r++ {
		words = g.scanLine(words, HorizontalDirection, r)
	}
	for c := 0; c < Dim; c++ {
		words = g.scanLine(words, VerticalDirection, c)
	}
	return words
}

func (g *GameBoard) scanLine(words []Word, dir BoardDirection, line int) []Word {
	run := []PlacedTile{}
	flush := func() {
		if len(run) >= 2 {
			words = append(words, makeWord(dir, run))
		}
		run = []PlacedTile{}
	}
	for i := 0; i < Dim; i++ {
		row, col := line, i
		if dir == VerticalDirection {
			row, col = i, line
		}
		cell := g.cells[row][col]
		if cell.IsEmpty() {
			flush()
			continue
		}
		run = append(run, PlacedTile{Pos: cell.pos, Tile: cell.tile})
	}
	flush()
	return words
}

func makeWord(dir BoardDirection, run []PlacedTile) Word {
	var sb strings.Builder
	for _, pt := range run {
		sb.WriteRune(pt.Tile.Letter)
	}
	return Word{Text: sb.String(), Direction: dir, Cells: run}
}

// WordCounts returns the multiset of word strings.
func WordCounts(words []Word) map[string]int {
	counts := make(map[string]int, len(words))
	for _, w := range words {
		counts[w.Text]++
	}
	return counts
}

// WordMap maps each word string to the squares that spell it. When the
// same string appears more than once the first one scanned is kept; use
// the slice from ScanWords when every instance matters.
func WordMap(words []Word) map[string][]PlacedTile {
	m := make(map[string][]PlacedTile, len(words))
	for _, w := range words {
		if _, ok := m[w.Text]; !ok {
			m[w.Text] = w.Cells
		}
	}
	return m
}
