// Package game runs one crossword game: whose turn it is, passes,
// exchanges and plays, scoring, and when the game ends.
package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/wordgrid/wordgrid/board"
	"github.com/wordgrid/wordgrid/move"
	"github.com/wordgrid/wordgrid/tilemapping"
)

// MoveSupplier asks a human for a move. It should only return an error
// when no more input can be had.
type MoveSupplier interface {
	NextMove(snap Snapshot) (*move.Move, error)
}

// Strategy picks a move for an automated player.
type Strategy interface {
	ChooseMove(snap Snapshot) *move.Move
}

// Continuer decides whether to keep going after n scoreless turns in a
// row.
type Continuer interface {
	ContinueAfterScoreless(n int) bool
}

// Presenter is told about the game as it changes.
type Presenter interface {
	Render(snap Snapshot)
	Revert(positions []board.Position)
	Notify(msg string)
}

type nopPresenter struct{}

func (nopPresenter) Render(Snapshot)         {}
func (nopPresenter) Revert([]board.Position) {}
func (nopPresenter) Notify(string)           {}

// Options are optional game settings.
type Options struct {
	// Seed makes the bag order repeatable. Empty means random.
	Seed string
	// Racks, by player index, are dealt from the bag before anyone
	// draws at random.
	Racks []string
	// Distribution replaces the rules' letter distribution.
	Distribution *tilemapping.LetterDistribution
	Continuer    Continuer
	Presenter    Presenter
}

// Game is a single game. It owns the board, the bag and every rack;
// nothing else changes them.
type Game struct {
	rules     *GameRules
	board     *board.GameBoard
	bag       *tilemapping.Bag
	players   playerStates
	continuer Continuer
	presenter Presenter

	onturn         int
	turnnum        int
	scorelessTurns int
	state          State
	endReason      EndReason

	wordsInPlay map[string]int
	discard     []tilemapping.Tile
	history     []TurnRecord
}

// NewGame sets up the board and bag and deals every rack.
func NewGame(rules *GameRules, players []Player, opts Options) (*Game, error) {
	if rules == nil || rules.lexicon == nil || rules.lexicon.Len() == 0 {
		return nil, ErrNoDictionary
	}
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}
	for _, p := range players {
		if p.Kind == KindHuman && p.Supplier == nil || p.Kind == KindAutomated && p.Strategy == nil {
			return nil, fmt.Errorf("%w: %s", ErrNoMoveSource, p.Name)
		}
	}
	if len(opts.Racks) > len(players) {
		return nil, fmt.Errorf("%d preset racks for %d players", len(opts.Racks), len(players))
	}

	dist := rules.dist
	if opts.Distribution != nil {
		dist = opts.Distribution
	}
	g := &Game{
		rules:       rules,
		board:       rules.newBoard(),
		bag:         tilemapping.NewBag(dist, tilemapping.NewRNG(opts.Seed)),
		continuer:   opts.Continuer,
		presenter:   opts.Presenter,
		wordsInPlay: map[string]int{},
	}
	if g.presenter == nil {
		g.presenter = nopPresenter{}
	}
	g.players = lo.Map(players, func(p Player, _ int) *playerState { return newPlayerState(p) })

	for i, letters := range opts.Racks {
		if err := g.dealPreset(i, letters); err != nil {
			return nil, err
		}
	}
	for _, p := range g.players {
		p.rack.DrawUpTo(g.bag, tilemapping.RackTileLimit-p.rack.NumTiles())
	}
	log.Debug().Int("players", len(g.players)).Int("bag", g.bag.TilesRemaining()).
		Str("scoring", rules.scoring.String()).Msg("game created")
	return g, nil
}

func (g *Game) dealPreset(idx int, letters string) error {
	if len([]rune(letters)) > tilemapping.RackTileLimit {
		return fmt.Errorf("preset rack %q has more than %d tiles", letters, tilemapping.RackTileLimit)
	}
	for _, l := range strings.ToUpper(letters) {
		t, ok := g.bag.Take(l)
		if !ok {
			return fmt.Errorf("preset rack %q: no %c left in the bag", letters, l)
		}
		g.players[idx].rack.Add(t)
	}
	return nil
}

func (g *Game) Board() *board.GameBoard {
	return g.board
}

func (g *Game) Bag() *tilemapping.Bag {
	return g.bag
}

func (g *Game) Rules() *GameRules {
	return g.rules
}

func (g *Game) NumPlayers() int {
	return len(g.players)
}

func (g *Game) PlayerOnTurn() int {
	return g.onturn
}

func (g *Game) NameOnTurn() string {
	return g.players[g.onturn].Name
}

func (g *Game) Turn() int {
	return g.turnnum
}

func (g *Game) ScorelessTurns() int {
	return g.scorelessTurns
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) EndReason() EndReason {
	return g.endReason
}

func (g *Game) Over() bool {
	return g.state == GameOver
}

// RackFor returns the tiles player idx holds.
func (g *Game) RackFor(idx int) []tilemapping.Tile {
	return g.players[idx].rack.Tiles()
}

func (g *Game) RackLettersFor(idx int) string {
	return g.players[idx].rack.String()
}

func (g *Game) PointsFor(idx int) int {
	return g.players[idx].points
}

// WordsInPlay returns a copy of the words on the board after the last
// play, with their counts.
func (g *Game) WordsInPlay() map[string]int {
	return lo.Assign(g.wordsInPlay)
}

// Discarded returns the tiles given up in exchanges.
func (g *Game) Discarded() []tilemapping.Tile {
	return append([]tilemapping.Tile(nil), g.discard...)
}

// History returns the resolved turns, oldest first.
func (g *Game) History() []TurnRecord {
	return append([]TurnRecord(nil), g.history...)
}

func (g *Game) curPlayer() *playerState {
	return g.players[g.onturn]
}

// Result is the outcome of a game.
type Result struct {
	Names  []string
	Scores []int
	Winner int
	Reason EndReason
}

func (r Result) WinnerName() string {
	return r.Names[r.Winner]
}

// Winner is the player with the most points. A tie goes to whoever comes
// first in turn order.
func (g *Game) Winner() int {
	best := 0
	for i, p := range g.players {
		if p.points > g.players[best].points {
			best = i
		}
	}
	return best
}

func (g *Game) Result() Result {
	return Result{
		Names:  lo.Map(g.players, func(p *playerState, _ int) string { return p.Name }),
		Scores: lo.Map(g.players, func(p *playerState, _ int) int { return p.points }),
		Winner: g.Winner(),
		Reason: g.endReason,
	}
}

// IsInputError reports whether err is a problem with how a move was
// written rather than with the game's rules.
func IsInputError(err error) bool {
	for _, e := range []error{ErrNoPlacements, ErrOffBoard, ErrDuplicatePosition,
		ErrOccupiedSquare, ErrTileNotOnRack, ErrNothingToExchange} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
