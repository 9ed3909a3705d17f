// Package move describes the actions a player can take on a turn.
package move

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/wordgrid/wordgrid/board"
	"github.com/wordgrid/wordgrid/tilemapping"
)

// MoveType is a type of move; a play, an exchange or a pass.
type MoveType uint8

const (
	MoveTypePlay MoveType = iota
	MoveTypeExchange
	MoveTypePass
)

func (mt MoveType) String() string {
	switch mt {
	case MoveTypePlay:
		return "play"
	case MoveTypeExchange:
		return "exchange"
	case MoveTypePass:
		return "pass"
	}
	return "unknown"
}

// A Placement stages one tile from the rack onto one square.
type Placement struct {
	Tile tilemapping.Tile
	Pos  board.Position
}

func (p Placement) String() string {
	return fmt.Sprintf("%c:%v", p.Tile.Letter, p.Pos)
}

// Move is a whole turn's action. It is built once and not changed after.
type Move struct {
	action     MoveType
	placements []Placement
	exchange   []rune
}

// NewPassMove creates a pass.
func NewPassMove() *Move {
	return &Move{action: MoveTypePass}
}

// NewExchangeMove creates an exchange of the given letters.
func NewExchangeMove(letters []rune) *Move {
	return &Move{action: MoveTypeExchange, exchange: append([]rune(nil), letters...)}
}

// NewPlayMove creates a play from a set of placements.
func NewPlayMove(placements []Placement) *Move {
	return &Move{action: MoveTypePlay, placements: append([]Placement(nil), placements...)}
}

func (m *Move) Action() MoveType {
	return m.action
}

// Placements returns a copy of the staged placements of a play.
func (m *Move) Placements() []Placement {
	return append([]Placement(nil), m.placements...)
}

// Positions returns the target squares of a play, in placement order.
func (m *Move) Positions() []board.Position {
	return lo.Map(m.placements, func(p Placement, _ int) board.Position { return p.Pos })
}

// Letters returns the letters a play puts down, in placement order.
func (m *Move) Letters() []rune {
	return lo.Map(m.placements, func(p Placement, _ int) rune { return p.Tile.Letter })
}

// ExchangeLetters returns a copy of the letters asked for in an exchange.
func (m *Move) ExchangeLetters() []rune {
	return append([]rune(nil), m.exchange...)
}

func (m *Move) TilesPlayed() int {
	return len(m.placements)
}

// ShortDescription is the move in the text form a player would type.
func (m *Move) ShortDescription() string {
	switch m.action {
	case MoveTypePass:
		return "pass"
	case MoveTypeExchange:
		return "exchange " + string(m.exchange)
	}
	return strings.Join(lo.Map(m.placements, func(p Placement, _ int) string {
		return p.String()
	}), ",")
}

func (m *Move) String() string {
	return fmt.Sprintf("<action: %v %v>", m.action, m.ShortDescription())
}
