package tilemapping

import (
	"unicode"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// RackTileLimit is the most tiles a rack holds.
const RackTileLimit = 7

// StopReason says why a draw stopped before the requested count.
type StopReason uint8

const (
	StopNone StopReason = iota
	StopBagEmpty
	StopRackFull
)

func (s StopReason) String() string {
	switch s {
	case StopBagEmpty:
		return "bag empty"
	case StopRackFull:
		return "rack full"
	}
	return "none"
}

// DrawOutcome reports how many tiles a draw produced and, if it came up
// short, why.
type DrawOutcome struct {
	Drawn  int
	Reason StopReason
}

// Rack is the ordered set of tiles a player holds.
type Rack struct {
	tiles []Tile
}

func NewRack() *Rack {
	return &Rack{tiles: make([]Tile, 0, RackTileLimit)}
}

// NewRackOf returns a rack holding the given tiles, in order. Tiles past
// the limit are dropped.
func NewRackOf(tiles []Tile) *Rack {
	r := NewRack()
	for _, t := range tiles {
		r.Add(t)
	}
	return r
}

// String returns the letters on the rack in rack order.
func (r *Rack) String() string {
	return TilesString(r.tiles)
}

// DrawUpTo draws at most count tiles from the bag, stopping early if the
// bag runs out or the rack fills up.
func (r *Rack) DrawUpTo(bag *Bag, count int) DrawOutcome {
	out := DrawOutcome{}
	for out.Drawn < count {
		if len(r.tiles) >= RackTileLimit {
			out.Reason = StopRackFull
			break
		}
		t, ok := bag.DrawOne()
		if !ok {
			out.Reason = StopBagEmpty
			break
		}
		r.tiles = append(r.tiles, t)
		out.Drawn++
	}
	if out.Reason != StopNone {
		log.Debug().Int("requested", count).Int("drawn", out.Drawn).
			Str("reason", out.Reason.String()).Msg("draw came up short")
	}
	return out
}

// Add puts a tile on the rack. It returns false if the rack is full.
func (r *Rack) Add(t Tile) bool {
	if len(r.tiles) >= RackTileLimit {
		return false
	}
	r.tiles = append(r.tiles, t)
	return true
}

// RemoveByLetter removes the first tile with the letter, ignoring case.
func (r *Rack) RemoveByLetter(letter rune) (Tile, bool) {
	for i, t := range r.tiles {
		if t.Matches(letter) {
			r.tiles = append(r.tiles[:i:i], r.tiles[i+1:]...)
			return t, true
		}
	}
	return Tile{}, false
}

// FindByLetter returns the first tile with the letter, ignoring case.
func (r *Rack) FindByLetter(letter rune) (Tile, bool) {
	return lo.Find(r.tiles, func(t Tile) bool { return t.Matches(letter) })
}

// HasLetters reports whether every letter can be matched to a distinct
// tile on the rack.
func (r *Rack) HasLetters(letters []rune) bool {
	return ContainsAll(r.Letters(), letters)
}

// Tiles returns a copy of the tiles on the rack.
func (r *Rack) Tiles() []Tile {
	return append([]Tile(nil), r.tiles...)
}

// Letters returns the letters on the rack in rack order.
func (r *Rack) Letters() []rune {
	return lo.Map(r.tiles, func(t Tile, _ int) rune { return t.Letter })
}

func (r *Rack) NumTiles() int {
	return len(r.tiles)
}

func (r *Rack) Empty() bool {
	return len(r.tiles) == 0
}

// ScoreOn returns the total score of the tiles on this rack.
func (r *Rack) ScoreOn() int {
	return ScoreOf(r.tiles)
}

// ContainsAll reports whether the multiset sub is contained in the
// multiset super, ignoring case.
func ContainsAll(super, sub []rune) bool {
	if len(sub) > len(super) {
		return false
	}
	have := lo.CountValues(upper(super))
	for _, l := range upper(sub) {
		if have[l] == 0 {
			return false
		}
		have[l]--
	}
	return true
}

func upper(rs []rune) []rune {
	return lo.Map(rs, func(r rune, _ int) rune { return unicode.ToUpper(r) })
}
