package move

import (
	"testing"

	"github.com/matryer/is"

	"github.com/wordgrid/wordgrid/board"
	"github.com/wordgrid/wordgrid/tilemapping"
)

func TestShortDescription(t *testing.T) {
	is := is.New(t)
	is.Equal(NewPassMove().ShortDescription(), "pass")
	is.Equal(NewExchangeMove([]rune("ZQ")).ShortDescription(), "exchange ZQ")

	m := NewPlayMove([]Placement{
		{Tile: tilemapping.NewTile('r', 1), Pos: board.Position{Row: 5, Col: 0}},
		{Tile: tilemapping.NewTile('e', 1), Pos: board.Position{Row: 6, Col: 0}},
	})
	is.Equal(m.ShortDescription(), "R:A6,E:A7")
	is.Equal(m.Action(), MoveTypePlay)
	is.Equal(m.TilesPlayed(), 2)
	is.Equal(string(m.Letters()), "RE")
	is.Equal(m.Positions(), []board.Position{{Row: 5, Col: 0}, {Row: 6, Col: 0}})
}

func TestMoveIsImmutable(t *testing.T) {
	is := is.New(t)
	ps := []Placement{{Tile: tilemapping.NewTile('a', 1), Pos: board.Center}}
	m := NewPlayMove(ps)
	ps[0].Pos = board.Position{}
	got := m.Placements()
	is.Equal(got[0].Pos, board.Center)
	got[0].Tile = tilemapping.NewTile('z', 10)
	is.Equal(m.Letters(), []rune{'A'})

	letters := []rune("QZ")
	ex := NewExchangeMove(letters)
	letters[0] = 'A'
	is.Equal(string(ex.ExchangeLetters()), "QZ")
}
