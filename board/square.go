package board

import (
	"fmt"

	"github.com/wordgrid/wordgrid/tilemapping"
)

// A BonusSquare is a bonus square (duh)
type BonusSquare rune

const (
	NoBonus BonusSquare = ' '
	// Bonus3WS is a triple word score
	Bonus3WS BonusSquare = '='
	// Bonus3LS is a triple letter score
	Bonus3LS BonusSquare = '"'
	// Bonus2LS is a double letter score
	Bonus2LS BonusSquare = '\''
	// Bonus2WS is a double word score
	Bonus2WS BonusSquare = '-'
)

func (b BonusSquare) String() string {
	switch b {
	case Bonus3WS:
		return "TripleWord"
	case Bonus2WS:
		return "DoubleWord"
	case Bonus3LS:
		return "TripleLetter"
	case Bonus2LS:
		return "DoubleLetter"
	}
	return "None"
}

func (b BonusSquare) valid() bool {
	switch b {
	case NoBonus, Bonus3WS, Bonus2WS, Bonus3LS, Bonus2LS:
		return true
	}
	return false
}

// LetterMultiplier is what a tile newly placed on this square is worth
// relative to its face value.
func (b BonusSquare) LetterMultiplier() int {
	switch b {
	case Bonus3LS:
		return 3
	case Bonus2LS:
		return 2
	}
	return 1
}

// WordMultiplier applies to a word that newly covers this square.
func (b BonusSquare) WordMultiplier() int {
	switch b {
	case Bonus3WS:
		return 3
	case Bonus2WS:
		return 2
	}
	return 1
}

// A Cell is a single square of the board. It is occupied iff it holds a
// tile.
type Cell struct {
	pos      Position
	tile     tilemapping.Tile
	occupied bool
}

func (c Cell) String() string {
	if !c.occupied {
		return fmt.Sprintf("<%v empty>", c.pos)
	}
	return fmt.Sprintf("<%v %v>", c.pos, c.tile.Description())
}

func (c Cell) Position() Position {
	return c.pos
}

// Tile returns the tile on the cell, if any.
func (c Cell) Tile() (tilemapping.Tile, bool) {
	return c.tile, c.occupied
}

func (c Cell) IsEmpty() bool {
	return !c.occupied
}
