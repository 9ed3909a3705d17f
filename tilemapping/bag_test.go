package tilemapping

import (
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func TestBag(t *testing.T) {
	is := is.New(t)
	ld := EnglishLetterDistribution()
	bag := NewBag(ld, NewRNG("bag-test"))
	is.Equal(bag.TilesRemaining(), 100)
	is.Equal(bag.InitialNumTiles(), 100)

	tileMap := map[rune]int{}
	for !bag.IsEmpty() {
		tile, ok := bag.DrawOne()
		is.True(ok)
		is.Equal(tile.Points, ld.Score(tile.Letter))
		tileMap[tile.Letter]++
	}
	for _, l := range ld.Letters() {
		if tileMap[l] != ld.Count(l) {
			t.Errorf("letter %c: drew %v, distribution has %v", l, tileMap[l], ld.Count(l))
		}
	}
	_, ok := bag.DrawOne()
	is.True(!ok) // empty bag is not an error, just no tile
	is.Equal(bag.TilesRemaining(), 0)
}

func TestBagSeedIsDeterministic(t *testing.T) {
	ld := EnglishLetterDistribution()
	b1 := NewBag(ld, NewRNG("same"))
	b2 := NewBag(ld, NewRNG("same"))
	assert.Equal(t, b1.Peek(), b2.Peek())
}

func TestBagIsShuffled(t *testing.T) {
	ld := EnglishLetterDistribution()
	b := NewBag(ld, NewRNG("shuffled"))
	assert.NotEqual(t, ld.Tiles(), b.Peek())
}

func TestBagTake(t *testing.T) {
	is := is.New(t)
	bag := NewBag(EnglishLetterDistribution(), NewRNG("take"))
	tile, ok := bag.Take('q')
	is.True(ok)
	is.Equal(tile, Tile{Letter: 'Q', Points: 10})
	_, ok = bag.Take('Q')
	is.True(!ok) // only one Q
	is.Equal(bag.TilesRemaining(), 99)
}

func TestPeekIsCopy(t *testing.T) {
	is := is.New(t)
	bag := NewBag(EnglishLetterDistribution(), NewRNG("peek"))
	p := bag.Peek()
	p[0] = Tile{Letter: 'Z', Points: 99}
	first, _ := bag.DrawOne()
	is.True(first.Points != 99)
}

func TestScanLetterDistribution(t *testing.T) {
	is := is.New(t)
	csv := "# letter,quantity,value\nA,3,1\nb,1,3\nZ,1,10\n"
	ld, err := ScanLetterDistribution("tiny", strings.NewReader(csv))
	is.NoErr(err)
	is.Equal(ld.NumTotalTiles(), 5)
	is.Equal(ld.Score('B'), 3)
	is.Equal(ld.Letters(), []rune{'A', 'B', 'Z'})

	_, err = ScanLetterDistribution("bad", strings.NewReader("AB,1,1\n"))
	is.True(err != nil)
	_, err = ScanLetterDistribution("bad", strings.NewReader("7,1,1\n"))
	is.True(err != nil)
}
