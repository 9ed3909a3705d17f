// Package validator has the placement and word rules of the game, each as
// its own predicate so a caller can say exactly which rule a play broke.
package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/wordgrid/wordgrid/board"
	"github.com/wordgrid/wordgrid/lexicon"
)

var (
	ErrNotAligned   = errors.New("tiles must all be in one row or one column")
	ErrNotConnected = errors.New("play must touch a tile already on the board")
	ErrGap          = errors.New("play leaves a gap between its tiles")
	ErrFirstMove    = errors.New("first play must cover H8 and use at least two tiles")
	ErrInvalidWord  = errors.New("not in the lexicon")
)

// MinFirstPlayTiles is how many tiles the opening play must use.
const MinFirstPlayTiles = 2

// AreAligned reports whether the positions share a row or a column. Zero
// or one position is trivially aligned.
func AreAligned(positions []board.Position) bool {
	if len(positions) <= 1 {
		return true
	}
	sameRow, sameCol := true, true
	for _, p := range positions[1:] {
		sameRow = sameRow && p.Row == positions[0].Row
		sameCol = sameCol && p.Col == positions[0].Col
	}
	return sameRow || sameCol
}

// IsAdjacentToExisting reports whether any position has an orthogonal
// neighbor holding a tile that is not one of positions.
func IsAdjacentToExisting(b *board.GameBoard, positions []board.Position) bool {
	placed := lo.SliceToMap(positions, func(p board.Position) (board.Position, struct{}) {
		return p, struct{}{}
	})
	for _, p := range positions {
		for _, n := range p.Neighbors() {
			if _, ok := placed[n]; ok {
				continue
			}
			if b.IsOccupied(n) {
				return true
			}
		}
	}
	return false
}

// IsContiguousWithinTurn reports whether every square strictly between the
// first and last position along their shared line is filled, either by one
// of positions or by a tile already on the board.
func IsContiguousWithinTurn(b *board.GameBoard, positions []board.Position) bool {
	if len(positions) <= 1 {
		return true
	}
	if !AreAligned(positions) {
		return false
	}
	placed := lo.SliceToMap(positions, func(p board.Position) (board.Position, struct{}) {
		return p, struct{}{}
	})
	horizontal := positions[0].Row == positions[1].Row
	axis := func(p board.Position) int {
		if horizontal {
			return p.Col
		}
		return p.Row
	}
	first := axis(lo.MinBy(positions, func(a, b board.Position) bool { return axis(a) < axis(b) }))
	last := axis(lo.MaxBy(positions, func(a, b board.Position) bool { return axis(a) > axis(b) }))
	for i := first + 1; i < last; i++ {
		p := board.Position{Row: positions[0].Row, Col: i}
		if !horizontal {
			p = board.Position{Row: i, Col: positions[0].Col}
		}
		if _, ok := placed[p]; ok {
			continue
		}
		if !b.IsOccupied(p) {
			return false
		}
	}
	return true
}

// IsFirstMoveLegal reports whether an opening play covers the center
// square and uses enough tiles.
func IsFirstMoveLegal(positions []board.Position) bool {
	return len(positions) >= MinFirstPlayTiles && lo.Contains(positions, board.Center)
}

// IsValidWord is a case-insensitive lexicon lookup.
func IsValidWord(lex lexicon.Lexicon, word string) bool {
	return lex.HasWord(strings.ToLower(word))
}

// Validator binds the rules to one board and lexicon.
type Validator struct {
	board *board.GameBoard
	lex   lexicon.Lexicon
}

func New(b *board.GameBoard, lex lexicon.Lexicon) *Validator {
	return &Validator{board: b, lex: lex}
}

// CheckPlacement runs the rules that can be decided before any tile goes
// on the board: alignment, then either connection to existing tiles or
// the opening-play rule.
func (v *Validator) CheckPlacement(positions []board.Position, firstPlay bool) error {
	if !AreAligned(positions) {
		return ErrNotAligned
	}
	if firstPlay {
		if !IsFirstMoveLegal(positions) {
			return ErrFirstMove
		}
		return nil
	}
	if !IsAdjacentToExisting(v.board, positions) {
		return ErrNotConnected
	}
	return nil
}

// CheckContiguous is the gap rule.
func (v *Validator) CheckContiguous(positions []board.Position) error {
	if !IsContiguousWithinTurn(v.board, positions) {
		return ErrGap
	}
	return nil
}

// CheckWords returns an error naming every word not in the lexicon.
func (v *Validator) CheckWords(words []string) error {
	bad := lo.Uniq(lo.Filter(words, func(w string, _ int) bool {
		return !IsValidWord(v.lex, w)
	}))
	if len(bad) == 0 {
		return nil
	}
	return fmt.Errorf("%s %w", strings.Join(bad, ", "), ErrInvalidWord)
}
