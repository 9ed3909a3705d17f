package player

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/wordgrid/wordgrid/board"
	"github.com/wordgrid/wordgrid/game"
	"github.com/wordgrid/wordgrid/move"
	"github.com/wordgrid/wordgrid/testhelpers"
)

type passer struct{}

func (passer) ChooseMove(game.Snapshot) *move.Move { return move.NewPassMove() }

func newGame(t *testing.T, opts game.Options) (*game.Game, *StaticPlayer) {
	t.Helper()
	is := is.New(t)
	lex := testhelpers.TestLexicon()
	rules, err := game.NewBasicGameRules(lex, nil, nil, game.ScoreRaw)
	is.NoErr(err)
	sp := NewStaticPlayer(lex)
	opts.Seed = "bot"
	g, err := game.NewGame(rules, []game.Player{
		game.NewAutomatedPlayer("bot", sp),
		game.NewAutomatedPlayer("passer", passer{}),
	}, opts)
	is.NoErr(err)
	return g, sp
}

func TestOpeningPlay(t *testing.T) {
	is := is.New(t)
	g, sp := newGame(t, game.Options{Racks: []string{"CATSEEB"}})

	plays := sp.GeneratePlays(g.Snapshot())
	is.True(len(plays) > 0)
	best := sp.BestPlay(plays)
	is.Equal(best.Word, "CAB")
	is.Equal(best.Score, 7)
	is.True(len(best.Move.Positions()) == 3)
	assert.Contains(t, best.Move.Positions(), board.Center)

	rec, err := g.PlayTurn()
	is.NoErr(err)
	is.Equal(rec.Action, "play")
	is.Equal(rec.Score, 7)
	is.Equal(g.PointsFor(0), 7)
}

func TestEveryGeneratedPlayIsLegal(t *testing.T) {
	is := is.New(t)
	g, sp := newGame(t, game.Options{Racks: []string{"CATSEEB", "ATRSEEB"}})
	_, err := g.Play(sp.BestPlay(sp.GeneratePlays(g.Snapshot())).Move.Placements())
	is.NoErr(err)

	snap := g.Snapshot()
	other := NewStaticPlayer(testhelpers.TestLexicon())
	for _, pl := range other.GeneratePlays(snap) {
		_, err := game.EvaluatePlay(snap.Board.Copy(), testhelpers.TestLexicon(),
			snap.WordsInPlay, pl.Move.Placements(), snap.Scoring)
		is.NoErr(err)
	}
	// Generating plays leaves the snapshot's board alone.
	is.Equal(snap.Board.TilesPlayed(), 3)
}

func TestExchangesUnplayableLetters(t *testing.T) {
	is := is.New(t)
	g, sp := newGame(t, game.Options{Racks: []string{"QZBCDFG"}})
	m := sp.ChooseMove(g.Snapshot())
	is.Equal(m.Action(), move.MoveTypeExchange)
	is.Equal(string(m.ExchangeLetters()), "QZ")
}

func TestExchangesWholeRack(t *testing.T) {
	is := is.New(t)
	g, sp := newGame(t, game.Options{Racks: []string{"BCDFGHL"}})
	m := sp.ChooseMove(g.Snapshot())
	is.Equal(m.Action(), move.MoveTypeExchange)
	is.Equal(string(m.ExchangeLetters()), "BCDFGHL")

	sp.SetExchangeLetters("bc")
	m = sp.ChooseMove(g.Snapshot())
	is.Equal(string(m.ExchangeLetters()), "BC")
}

func TestPassesWhenBagEmpty(t *testing.T) {
	is := is.New(t)
	dist := testhelpers.SmallDistribution(map[rune]int{'B': 1, 'C': 1})
	g, sp := newGame(t, game.Options{Distribution: dist})
	m := sp.ChooseMove(g.Snapshot())
	is.Equal(m.Action(), move.MoveTypePass)
}

func TestTopPlaysOrder(t *testing.T) {
	is := is.New(t)
	sp := NewStaticPlayer(testhelpers.TestLexicon())
	plays := []Play{
		{Word: "AT", Score: 4, Start: board.Position{Row: 7, Col: 7}},
		{Word: "CAT", Score: 4, Start: board.Position{Row: 7, Col: 6}},
		{Word: "TAB", Score: 4, Start: board.Position{Row: 7, Col: 5}},
		{Word: "CAB", Score: 4, Start: board.Position{Row: 7, Col: 6}},
		{Word: "CAB", Score: 4, Start: board.Position{Row: 5, Col: 7}, Dir: board.VerticalDirection},
		{Word: "BE", Score: 9, Start: board.Position{Row: 7, Col: 7}},
	}
	top := sp.TopPlays(plays, 4)
	words := []string{}
	for _, p := range top {
		words = append(words, p.Word)
	}
	assert.Equal(t, []string{"BE", "CAB", "CAB", "CAT"}, words)
	is.Equal(top[1].Start.Row, 5)
	is.True(sp.BestPlay(nil) == nil)
}
