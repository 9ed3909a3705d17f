package game

import (
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/wordgrid/wordgrid/board"
	"github.com/wordgrid/wordgrid/lexicon"
	"github.com/wordgrid/wordgrid/move"
	"github.com/wordgrid/wordgrid/validator"
)

// PlayResult is a play that passed every rule.
type PlayResult struct {
	// NewWords are the word instances this play created.
	NewWords []board.Word
	// BoardWords is every word on the board after the play.
	BoardWords map[string]int
	Score      int
}

// WordStrings returns the text of each new word.
func (r *PlayResult) WordStrings() []string {
	return lo.Map(r.NewWords, func(w board.Word, _ int) string { return w.Text })
}

// CheckPlacementInput catches malformed placements before anything is
// checked against the rules: nothing placed, squares off the board, two
// tiles on one square, or a square that already holds a tile.
func CheckPlacementInput(b *board.GameBoard, placements []move.Placement) error {
	if len(placements) == 0 {
		return ErrNoPlacements
	}
	seen := make(map[board.Position]bool, len(placements))
	for _, pl := range placements {
		if !pl.Pos.Valid() {
			return ErrOffBoard
		}
		if seen[pl.Pos] {
			return ErrDuplicatePosition
		}
		seen[pl.Pos] = true
		if b.IsOccupied(pl.Pos) {
			return ErrOccupiedSquare
		}
	}
	return nil
}

// EvaluatePlay applies the placement rules to b and, if they all hold,
// leaves the tiles on it. inPlay is the multiset of words on b before the
// play; an empty one means this is the opening play.
//
// Alignment, connection and the opening rule are checked before b is
// touched. The gap and dictionary checks need the tiles in place; if either
// fails the tiles are taken back off and the error is a *RuleViolation
// listing those squares. b is left as it was on any error.
func EvaluatePlay(b *board.GameBoard, lex lexicon.Lexicon, inPlay map[string]int,
	placements []move.Placement, scoring ScoringMode) (*PlayResult, error) {

	if err := CheckPlacementInput(b, placements); err != nil {
		return nil, err
	}
	positions := lo.Map(placements, func(pl move.Placement, _ int) board.Position { return pl.Pos })
	v := validator.New(b, lex)
	firstPlay := len(inPlay) == 0

	if err := v.CheckPlacement(positions, firstPlay); err != nil {
		return nil, &RuleViolation{Err: err}
	}

	for _, pl := range placements {
		if err := b.Place(pl.Tile, pl.Pos.Row, pl.Pos.Col); err != nil {
			// CheckPlacementInput already made sure every square is free.
			panic(err)
		}
	}
	revert := func(err error) error {
		for _, p := range positions {
			b.Remove(p.Row, p.Col)
		}
		log.Debug().Err(err).Int("tiles", len(positions)).Msg("reverted placement")
		return &RuleViolation{Err: err, Reverted: positions}
	}

	if err := v.CheckContiguous(positions); err != nil {
		return nil, revert(err)
	}

	scanned := b.ScanWords()
	newWords := NewWords(scanned, inPlay, positions)
	if err := v.CheckWords(lo.Map(newWords, func(w board.Word, _ int) string { return w.Text })); err != nil {
		return nil, revert(err)
	}

	return &PlayResult{
		NewWords:   newWords,
		BoardWords: board.WordCounts(scanned),
		Score:      Score(b, newWords, positions, scoring),
	}, nil
}

// NewWords returns the words in scanned that were not on the board before,
// counting repeats: a string on the board k times that was there j times
// before contributes k-j instances. Instances touching a newly placed
// square are preferred, then scan order.
func NewWords(scanned []board.Word, inPlay map[string]int, placed []board.Position) []board.Word {
	byText := map[string][]board.Word{}
	order := []string{}
	for _, w := range scanned {
		if _, ok := byText[w.Text]; !ok {
			order = append(order, w.Text)
		}
		byText[w.Text] = append(byText[w.Text], w)
	}
	touches := func(w board.Word) bool {
		return lo.SomeBy(placed, func(p board.Position) bool { return w.Contains(p) })
	}

	var fresh []board.Word
	for _, text := range order {
		instances := byText[text]
		n := len(instances) - inPlay[text]
		if n <= 0 {
			continue
		}
		sort.SliceStable(instances, func(i, j int) bool {
			return touches(instances[i]) && !touches(instances[j])
		})
		fresh = append(fresh, instances[:n]...)
	}
	return fresh
}

// Score totals the new words. In raw mode it is the face value of every
// letter; in premium mode letter premiums on squares filled this turn are
// applied first, then the word premiums of those squares.
func Score(b *board.GameBoard, words []board.Word, placed []board.Position, scoring ScoringMode) int {
	fresh := lo.SliceToMap(placed, func(p board.Position) (board.Position, bool) { return p, true })
	total := 0
	for _, w := range words {
		wordScore := 0
		wordMult := 1
		for _, c := range w.Cells {
			pts := c.Tile.Points
			if scoring == ScorePremium && fresh[c.Pos] {
				bonus := b.Bonus(c.Pos)
				pts *= bonus.LetterMultiplier()
				wordMult *= bonus.WordMultiplier()
			}
			wordScore += pts
		}
		total += wordScore * wordMult
	}
	return total
}
