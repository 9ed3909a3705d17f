package tilemapping

import (
	"crypto/sha256"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"
)

// A Bag is the bag o'tiles. It is shuffled once when made and only ever
// shrinks after that.
type Bag struct {
	tiles           []Tile
	initialNumTiles int
}

// NewRNG returns a generator for shuffling bags. An empty seed gives a
// generator seeded from system entropy; any other seed is deterministic.
func NewRNG(seed string) *frand.RNG {
	if seed == "" {
		return frand.New()
	}
	sum := sha256.Sum256([]byte(seed))
	return frand.NewCustom(sum[:], 1024, 12)
}

// NewBag returns a full, shuffled bag for the distribution.
func NewBag(ld *LetterDistribution, rng *frand.RNG) *Bag {
	tiles := ld.Tiles()
	if rng == nil {
		rng = frand.New()
	}
	rng.Shuffle(len(tiles), func(i, j int) {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	})
	log.Debug().Int("tiles", len(tiles)).Str("distribution", ld.Name).Msg("made bag")
	return &Bag{tiles: tiles, initialNumTiles: len(tiles)}
}

// MakeBag returns a full, shuffled bag of tiles.
func (ld *LetterDistribution) MakeBag(rng *frand.RNG) *Bag {
	return NewBag(ld, rng)
}

// DrawOne removes and returns the first tile. It returns false once the
// bag is empty; that is not an error.
func (b *Bag) DrawOne() (Tile, bool) {
	if len(b.tiles) == 0 {
		return Tile{}, false
	}
	t := b.tiles[0]
	b.tiles = b.tiles[1:]
	return t, true
}

// Take removes the first tile with the given letter. It is used to deal a
// preset rack at game setup.
func (b *Bag) Take(letter rune) (Tile, bool) {
	for i, t := range b.tiles {
		if t.Matches(letter) {
			b.tiles = append(b.tiles[:i:i], b.tiles[i+1:]...)
			return t, true
		}
	}
	return Tile{}, false
}

func (b *Bag) IsEmpty() bool {
	return len(b.tiles) == 0
}

func (b *Bag) TilesRemaining() int {
	return len(b.tiles)
}

// InitialNumTiles is how many tiles the bag started with.
func (b *Bag) InitialNumTiles() int {
	return b.initialNumTiles
}

// Peek returns a copy of the remaining tiles in draw order.
func (b *Bag) Peek() []Tile {
	return append([]Tile(nil), b.tiles...)
}
