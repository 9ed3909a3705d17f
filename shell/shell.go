// Package shell is the terminal front end: it reads moves typed by human
// players and prints the game as it goes.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/wordgrid/wordgrid/anagrammer"
	"github.com/wordgrid/wordgrid/board"
	"github.com/wordgrid/wordgrid/game"
	"github.com/wordgrid/wordgrid/lexicon"
	"github.com/wordgrid/wordgrid/move"
	"github.com/wordgrid/wordgrid/turnplayer"
)

// ErrQuit is returned when the user asks to stop or input runs out.
var ErrQuit = errors.New("quit")

const defaultHints = 10

type lineReader interface {
	Readline() (string, error)
	SetPrompt(string)
	Close() error
}

// ShellController asks human players for their moves and shows them the
// game. It serves as the game's MoveSupplier, Continuer and Presenter.
type ShellController struct {
	l   lineReader
	out io.Writer
	lex lexicon.Lexicon
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func prompt(s string) string {
	if s == "" {
		return "\033[31mwordgrid>\033[0m "
	}
	return "\033[31m" + s + ">\033[0m "
}

func NewShellController(lex lexicon.Lexicon) (*ShellController, error) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          prompt(""),
		HistoryFile:     filepath.Join(os.TempDir(), "wordgrid-readline.tmp"),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}
	return newController(l, l.Stderr(), lex), nil
}

func newController(l lineReader, out io.Writer, lex lexicon.Lexicon) *ShellController {
	return &ShellController{l: l, out: out, lex: lex}
}

func (sc *ShellController) Close() error {
	return sc.l.Close()
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// readLine returns ErrQuit on end of input or a ^C on an empty line.
func (sc *ShellController) readLine() (string, error) {
	line, err := sc.l.Readline()
	if err == readline.ErrInterrupt {
		if len(line) == 0 {
			return "", ErrQuit
		}
		return "", nil
	} else if err == io.EOF {
		return "", ErrQuit
	} else if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// NextMove reads lines until one is a move, running any other command
// along the way.
func (sc *ShellController) NextMove(snap game.Snapshot) (*move.Move, error) {
	p := snap.Players[snap.OnTurn]
	sc.l.SetPrompt(prompt(fmt.Sprintf("%s [%s]", p.Name, snap.Rack().String())))
	for {
		line, err := sc.readLine()
		if err != nil {
			return nil, err
		}
		if line == "" {
			continue
		}
		m, err := sc.handle(line, snap)
		if errors.Is(err, ErrQuit) {
			return nil, err
		}
		if err != nil {
			sc.showError(err)
			continue
		}
		if m != nil {
			log.Debug().Str("player", p.Name).Str("move", m.ShortDescription()).Msg("read move")
			return m, nil
		}
	}
}

// handle runs a shell command, or parses the line as a move. It returns a
// nil move for commands that are not moves.
func (sc *ShellController) handle(line string, snap game.Snapshot) (*move.Move, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "help", "?":
		usage(sc.out)
	case "board", "show":
		sc.showMessage(snap.ToDisplayText())
	case "hint":
		return nil, sc.hint(cmd, snap)
	case "quit", "exit":
		return nil, ErrQuit
	default:
		return turnplayer.ParseMove(snap.Rack(), line)
	}
	return nil, nil
}

func (sc *ShellController) hint(cmd *shellcmd, snap game.Snapshot) error {
	n := defaultHints
	if s, ok := cmd.options["n"]; ok {
		var err error
		if n, err = strconv.Atoi(s); err != nil || n < 1 {
			return fmt.Errorf("bad count %q", s)
		}
	}
	words := anagrammer.Candidates(snap.Rack().Letters(), sc.lex)
	if len(words) == 0 {
		sc.showMessage("Your rack does not spell any words.")
		return nil
	}
	if n < len(words) {
		words = words[:n]
	}
	sc.showMessage(strings.Join(words, " "))
	return nil
}

// ContinueAfterScoreless asks whether to keep playing. Running out of
// input counts as no.
func (sc *ShellController) ContinueAfterScoreless(n int) bool {
	sc.showMessage(fmt.Sprintf("There have been %d scoreless turns in a row.", n))
	sc.l.SetPrompt(prompt("continue? (y/n)"))
	for {
		line, err := sc.readLine()
		if err != nil {
			return false
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
		sc.showMessage("Please answer y or n.")
	}
}

func (sc *ShellController) Render(snap game.Snapshot) {
	sc.showMessage(snap.ToDisplayText())
}

func (sc *ShellController) Revert(positions []board.Position) {
	coords := lo.Map(positions, func(p board.Position, _ int) string { return p.String() })
	sc.showMessage("Took back the tiles on " + strings.Join(coords, ", "))
}

func (sc *ShellController) Notify(msg string) {
	sc.showMessage(msg)
}
