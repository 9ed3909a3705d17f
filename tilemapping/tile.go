package tilemapping

import (
	"fmt"
	"unicode"
)

// A Tile is a single lettered tile. Tiles are values: moving a tile from
// the bag to a rack to the board means removing it from one container and
// adding it to the next.
type Tile struct {
	Letter rune
	Points int
}

// NewTile returns a tile with the letter upper-cased.
func NewTile(letter rune, points int) Tile {
	return Tile{Letter: unicode.ToUpper(letter), Points: points}
}

func (t Tile) String() string {
	return string(t.Letter)
}

// Description is the letter followed by its point value, e.g. Q10.
func (t Tile) Description() string {
	return fmt.Sprintf("%c%d", t.Letter, t.Points)
}

// Matches reports whether the tile carries the letter, ignoring case.
func (t Tile) Matches(letter rune) bool {
	return t.Letter == unicode.ToUpper(letter)
}

// TilesString returns the letters of the tiles in order.
func TilesString(tiles []Tile) string {
	rs := make([]rune, len(tiles))
	for i, t := range tiles {
		rs[i] = t.Letter
	}
	return string(rs)
}

// ScoreOf sums the point values of the tiles.
func ScoreOf(tiles []Tile) int {
	s := 0
	for _, t := range tiles {
		s += t.Points
	}
	return s
}
