package board

import (
	"strconv"
	"unicode"
)

// Dim is the number of rows and columns on the board.
const Dim = 15

type BoardDirection uint8

const (
	HorizontalDirection BoardDirection = iota
	VerticalDirection
)

func (bd BoardDirection) String() string {
	if bd == HorizontalDirection {
		return "(horizontal)"
	} else if bd == VerticalDirection {
		return "(vertical)"
	}
	return "none"
}

// A Position is a zero-based row and column on the board.
type Position struct {
	Row int
	Col int
}

// Center is H8, the square the first play must cover.
var Center = Position{Row: Dim / 2, Col: Dim / 2}

// Valid reports whether the position is on the board.
func (p Position) Valid() bool {
	return p.Row >= 0 && p.Row < Dim && p.Col >= 0 && p.Col < Dim
}

// String returns the canonical coordinate, column letter then row number,
// e.g. H8 for the center square.
func (p Position) String() string {
	return ToBoardGameCoords(p.Row, p.Col)
}

// Neighbors returns the orthogonal neighbors that are on the board.
func (p Position) Neighbors() []Position {
	ns := make([]Position, 0, 4)
	for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		n := Position{Row: p.Row + d[0], Col: p.Col + d[1]}
		if n.Valid() {
			ns = append(ns, n)
		}
	}
	return ns
}

// ToBoardGameCoords converts a zero-based row and column to a coordinate
// like H8.
func ToBoardGameCoords(row int, col int) string {
	return string(rune('A'+col)) + strconv.Itoa(row+1)
}

// ParseCoordinate turns a coordinate like H8 or h8 into a Position. It
// returns false for anything malformed or off the board.
func ParseCoordinate(s string) (Position, bool) {
	if len(s) < 2 || len(s) > 3 {
		return Position{}, false
	}
	c := unicode.ToUpper(rune(s[0]))
	if c < 'A' || c >= 'A'+Dim {
		return Position{}, false
	}
	digits := s[1:]
	if digits[0] == '0' {
		return Position{}, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return Position{}, false
		}
	}
	row, err := strconv.Atoi(digits)
	if err != nil || row < 1 || row > Dim {
		return Position{}, false
	}
	return Position{Row: row - 1, Col: int(c - 'A')}, true
}
