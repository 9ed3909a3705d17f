// Package player is an automatic player of the crossword game. It looks
// at every word its rack can spell, tries each one everywhere it could go,
// and makes the best-scoring play.
package player

import (
	"sort"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/wordgrid/wordgrid/anagrammer"
	"github.com/wordgrid/wordgrid/board"
	"github.com/wordgrid/wordgrid/game"
	"github.com/wordgrid/wordgrid/lexicon"
	"github.com/wordgrid/wordgrid/move"
	"github.com/wordgrid/wordgrid/tilemapping"
	"github.com/wordgrid/wordgrid/validator"
)

// DefaultExchangeLetters are the letters a stuck player throws back first.
const DefaultExchangeLetters = "QZXJKVW"

// Play is a legal play with what it would score.
type Play struct {
	Move  *move.Move
	Word  string
	Words []string
	Score int
	Dir   board.BoardDirection
	Start board.Position
}

// StaticPlayer picks the highest-scoring play it can find. It does no
// look-ahead.
type StaticPlayer struct {
	lex             lexicon.Lexicon
	exchangeLetters []rune
}

func NewStaticPlayer(lex lexicon.Lexicon) *StaticPlayer {
	return &StaticPlayer{lex: lex, exchangeLetters: []rune(DefaultExchangeLetters)}
}

// SetExchangeLetters sets the letters the player gets rid of when it has
// no play. An empty string restores the default.
func (p *StaticPlayer) SetExchangeLetters(letters string) {
	if letters == "" {
		letters = DefaultExchangeLetters
	}
	p.exchangeLetters = []rune(strings.ToUpper(letters))
}

// ChooseMove returns the best play, or an exchange or pass if there is no
// legal play.
func (p *StaticPlayer) ChooseMove(snap game.Snapshot) *move.Move {
	plays := p.GeneratePlays(snap)
	if best := p.BestPlay(plays); best != nil {
		log.Debug().Str("word", best.Word).Int("score", best.Score).
			Int("considered", len(plays)).Msg("bot play")
		return best.Move
	}
	return p.fallback(snap)
}

func (p *StaticPlayer) fallback(snap game.Snapshot) *move.Move {
	rack := snap.Rack().Letters()
	if snap.BagCount == 0 || len(rack) == 0 {
		log.Debug().Msg("bot has no play and cannot exchange; passing")
		return move.NewPassMove()
	}
	throw := lo.Filter(rack, func(r rune, _ int) bool {
		return lo.Contains(p.exchangeLetters, unicode.ToUpper(r))
	})
	if len(throw) == 0 {
		throw = rack
	}
	log.Debug().Str("letters", string(throw)).Msg("bot has no play; exchanging")
	return move.NewExchangeMove(throw)
}

// GeneratePlays finds every legal play for the rack of the player on turn.
// Each candidate word is laid down from every empty square in both
// directions, filling the next empty squares in line, so it may run
// through tiles already on the board.
func (p *StaticPlayer) GeneratePlays(snap game.Snapshot) []Play {
	rack := snap.Rack()
	words := anagrammer.Candidates(rack.Letters(), p.lex)
	scratch := snap.Board.Copy()
	plays := []Play{}

	for _, w := range words {
		letters := []rune(w)
		for _, dir := range []board.BoardDirection{board.HorizontalDirection, board.VerticalDirection} {
			for row := 0; row < board.Dim; row++ {
				for col := 0; col < board.Dim; col++ {
					start := board.Position{Row: row, Col: col}
					positions := layout(scratch, start, dir, len(letters))
					if positions == nil || !p.worthTrying(scratch, snap, positions) {
						continue
					}
					placements := tilesFor(rack, letters, positions)
					res, err := game.EvaluatePlay(scratch, p.lex, snap.WordsInPlay, placements, snap.Scoring)
					if err != nil {
						continue
					}
					for _, pos := range positions {
						scratch.Remove(pos.Row, pos.Col)
					}
					plays = append(plays, Play{
						Move:  move.NewPlayMove(placements),
						Word:  w,
						Words: res.WordStrings(),
						Score: res.Score,
						Dir:   dir,
						Start: start,
					})
				}
			}
		}
	}
	return plays
}

// worthTrying skips placements that cannot connect, before the more
// expensive full check.
func (p *StaticPlayer) worthTrying(b *board.GameBoard, snap game.Snapshot, positions []board.Position) bool {
	if snap.FirstPlay() {
		return validator.IsFirstMoveLegal(positions)
	}
	return validator.IsAdjacentToExisting(b, positions)
}

// layout returns the first n empty squares from start in direction dir,
// or nil if start is taken or the line runs off the board.
func layout(b *board.GameBoard, start board.Position, dir board.BoardDirection, n int) []board.Position {
	if b.IsOccupied(start) {
		return nil
	}
	positions := make([]board.Position, 0, n)
	for cur := start; len(positions) < n; {
		if !cur.Valid() {
			return nil
		}
		if !b.IsOccupied(cur) {
			positions = append(positions, cur)
		}
		if dir == board.HorizontalDirection {
			cur.Col++
		} else {
			cur.Row++
		}
	}
	return positions
}

func tilesFor(rack *tilemapping.Rack, letters []rune, positions []board.Position) []move.Placement {
	scratch := tilemapping.NewRackOf(rack.Tiles())
	placements := make([]move.Placement, len(letters))
	for i, l := range letters {
		t, _ := scratch.RemoveByLetter(l)
		placements[i] = move.Placement{Tile: t, Pos: positions[i]}
	}
	return placements
}

// TopPlays sorts plays best first and returns at most n of them. Higher
// scores win; then more tiles; then the word that sorts first; then the
// play that starts nearer the top left, across before down.
func (p *StaticPlayer) TopPlays(plays []Play, n int) []Play {
	sorted := append([]Play(nil), plays...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if len(a.Word) != len(b.Word) {
			return len(a.Word) > len(b.Word)
		}
		if a.Word != b.Word {
			return a.Word < b.Word
		}
		if a.Start.Row != b.Start.Row {
			return a.Start.Row < b.Start.Row
		}
		if a.Start.Col != b.Start.Col {
			return a.Start.Col < b.Start.Col
		}
		return a.Dir < b.Dir
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// BestPlay returns the top play, or nil if there are none.
func (p *StaticPlayer) BestPlay(plays []Play) *Play {
	top := p.TopPlays(plays, 1)
	if len(top) == 0 {
		return nil
	}
	return &top[0]
}
