package game

import (
	"io"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/wordgrid/wordgrid/board"
	"github.com/wordgrid/wordgrid/move"
	"github.com/wordgrid/wordgrid/testhelpers"
	"github.com/wordgrid/wordgrid/tilemapping"
)

type scriptedSupplier struct {
	moves []*move.Move
	asked int
}

func (s *scriptedSupplier) NextMove(Snapshot) (*move.Move, error) {
	if s.asked >= len(s.moves) {
		return nil, io.EOF
	}
	m := s.moves[s.asked]
	s.asked++
	return m, nil
}

type fixedStrategy struct {
	m *move.Move
}

func (f fixedStrategy) ChooseMove(Snapshot) *move.Move {
	return f.m
}

type answeringContinuer struct {
	answers []bool
	asked   []int
}

func (c *answeringContinuer) ContinueAfterScoreless(n int) bool {
	c.asked = append(c.asked, n)
	if len(c.answers) == 0 {
		return false
	}
	a := c.answers[0]
	c.answers = c.answers[1:]
	return a
}

type recordingPresenter struct {
	renders  int
	reverted [][]board.Position
	notes    []string
}

func (p *recordingPresenter) Render(Snapshot) { p.renders++ }

func (p *recordingPresenter) Revert(ps []board.Position) {
	p.reverted = append(p.reverted, ps)
}

func (p *recordingPresenter) Notify(msg string) {
	p.notes = append(p.notes, msg)
}

// placements turns "C:H8,A:I8" into placements with English point values.
func placements(text string) []move.Placement {
	var ps []move.Placement
	for _, pair := range strings.Split(text, ",") {
		parts := strings.SplitN(pair, ":", 2)
		letter := []rune(parts[0])[0]
		ps = append(ps, move.Placement{
			Tile: tilemapping.NewTile(letter, testhelpers.EnglishScore(letter)),
			Pos:  testhelpers.Pos(parts[1]),
		})
	}
	return ps
}

func testRules(t *testing.T) *GameRules {
	t.Helper()
	rules, err := NewBasicGameRules(testhelpers.TestLexicon(), nil, nil, ScoreRaw)
	is.New(t).NoErr(err)
	return rules
}

func twoPassers() []Player {
	return []Player{
		NewAutomatedPlayer("p1", fixedStrategy{move.NewPassMove()}),
		NewAutomatedPlayer("p2", fixedStrategy{move.NewPassMove()}),
	}
}

func newTestGame(t *testing.T, opts Options) *Game {
	t.Helper()
	if opts.Seed == "" {
		opts.Seed = "wordgrid"
	}
	g, err := NewGame(testRules(t), twoPassers(), opts)
	is.New(t).NoErr(err)
	return g
}
