package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/wordgrid/wordgrid/board"
)

var (
	ErrNoDictionary      = errors.New("a non-empty lexicon is required to play")
	ErrNoPlayers         = errors.New("a game needs at least one player")
	ErrGameOver          = errors.New("the game is over")
	ErrNoPlacements      = errors.New("a play needs at least one tile")
	ErrOffBoard          = errors.New("tile placed off the board")
	ErrDuplicatePosition = errors.New("two tiles placed on the same square")
	ErrOccupiedSquare    = errors.New("square is already taken")
	ErrTileNotOnRack     = errors.New("tile is not on the rack")
	ErrNothingToExchange = errors.New("an exchange needs at least one letter")
	ErrNoMoveSource      = errors.New("player has no way to choose a move")
)

// A RuleViolation is a play rejected by a rule. If the rule could only be
// checked with the tiles on the board, Reverted lists the squares that
// were emptied again.
type RuleViolation struct {
	Err      error
	Reverted []board.Position
}

func (e *RuleViolation) Error() string {
	if len(e.Reverted) == 0 {
		return e.Err.Error()
	}
	coords := lo.Map(e.Reverted, func(p board.Position, _ int) string { return p.String() })
	return fmt.Sprintf("%v (took back %s)", e.Err, strings.Join(coords, ","))
}

func (e *RuleViolation) Unwrap() error {
	return e.Err
}
