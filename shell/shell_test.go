package shell

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/wordgrid/wordgrid/board"
	"github.com/wordgrid/wordgrid/game"
	"github.com/wordgrid/wordgrid/move"
	"github.com/wordgrid/wordgrid/testhelpers"
)

type fakeReader struct {
	lines  []string
	prompt string
}

func (f *fakeReader) Readline() (string, error) {
	if len(f.lines) == 0 {
		return "", io.EOF
	}
	l := f.lines[0]
	f.lines = f.lines[1:]
	return l, nil
}

func (f *fakeReader) SetPrompt(p string) { f.prompt = p }
func (f *fakeReader) Close() error       { return nil }

type passer struct{}

func (passer) ChooseMove(game.Snapshot) *move.Move { return move.NewPassMove() }

func newTestShell(lines ...string) (*ShellController, *fakeReader, *bytes.Buffer) {
	r := &fakeReader{lines: lines}
	out := &bytes.Buffer{}
	return newController(r, out, testhelpers.TestLexicon()), r, out
}

func testSnapshot(t *testing.T, sc *ShellController) game.Snapshot {
	t.Helper()
	rules, err := game.NewBasicGameRules(testhelpers.TestLexicon(), nil, nil, game.ScoreRaw)
	is.New(t).NoErr(err)
	g, err := game.NewGame(rules, []game.Player{
		game.NewHumanPlayer("alice", sc),
		game.NewAutomatedPlayer("bot", passer{}),
	}, game.Options{Seed: "shell", Racks: []string{"CATSEEB"}})
	is.New(t).NoErr(err)
	return g.Snapshot()
}

func TestExtractFields(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line   string
		expCmd *shellcmd
		expErr error
	}
	cases := []testdata{
		{"", nil, errNoData},
		{"hint -n 5",
			&shellcmd{"hint", nil, map[string]string{"n": "5"}},
			nil},
		{"exchange ZQ",
			&shellcmd{"exchange", []string{"ZQ"}, map[string]string{}},
			nil},
		{"Play 'R:A6,E:A7' ",
			&shellcmd{"play", []string{"R:A6,E:A7"}, map[string]string{}},
			nil},
		{"hint -n",
			nil, errWrongOptionSyntax},
	}
	for _, t := range cases {
		cmd, err := extractFields(t.line)
		is.Equal(cmd, t.expCmd)
		is.Equal(err, t.expErr)
	}
}

func TestNextMoveSkipsCommandsAndBadInput(t *testing.T) {
	is := is.New(t)
	sc, r, out := newTestShell("", "help", "hint -n 2", "play Q:H8", "nonsense", "C:H8,A:I8,T:J8")
	snap := testSnapshot(t, sc)

	m, err := sc.NextMove(snap)
	is.NoErr(err)
	is.Equal(m.Action(), move.MoveTypePlay)
	is.Equal(m.ShortDescription(), "C:H8,A:I8,T:J8")
	is.True(strings.Contains(r.prompt, "alice [CATSEEB]"))

	text := out.String()
	is.True(strings.Contains(text, "Moves:"))
	is.True(strings.Contains(text, "AT ATE\n"))
	is.Equal(strings.Count(text, "Error: "), 2)
}

func TestNextMoveQuit(t *testing.T) {
	is := is.New(t)
	sc, _, _ := newTestShell("quit")
	_, err := sc.NextMove(testSnapshot(t, sc))
	is.True(errors.Is(err, ErrQuit))

	sc, _, _ = newTestShell()
	_, err = sc.NextMove(testSnapshot(t, sc))
	is.True(errors.Is(err, ErrQuit))
}

func TestContinueAfterScoreless(t *testing.T) {
	is := is.New(t)
	sc, _, out := newTestShell("maybe", "Y", "no")
	is.True(sc.ContinueAfterScoreless(6))
	is.True(!sc.ContinueAfterScoreless(7))
	is.True(!sc.ContinueAfterScoreless(8))
	is.True(strings.Contains(out.String(), "6 scoreless turns"))
	is.True(strings.Contains(out.String(), "Please answer y or n."))
}

func TestPresenter(t *testing.T) {
	is := is.New(t)
	sc, _, out := newTestShell()
	sc.Revert([]board.Position{{Row: 7, Col: 7}, {Row: 7, Col: 8}})
	sc.Notify("hello")
	sc.Render(testSnapshot(t, sc))
	text := out.String()
	is.True(strings.Contains(text, "Took back the tiles on H8, I8"))
	is.True(strings.Contains(text, "hello\n"))
	is.True(strings.Contains(text, "alice"))
}
