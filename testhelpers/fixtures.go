// Package testhelpers has fixtures shared by the package tests.
package testhelpers

import (
	"github.com/wordgrid/wordgrid/board"
	"github.com/wordgrid/wordgrid/config"
	"github.com/wordgrid/wordgrid/lexicon"
	"github.com/wordgrid/wordgrid/tilemapping"
)

var DefaultConfig = config.DefaultConfig()

// TestWords is a small word list that covers the plays the tests make.
var TestWords = []string{
	"at", "ate", "be", "bed", "cab", "cat", "cats", "dab", "ea",
	"eat", "hi", "his", "it", "its", "qi", "rat", "re", "sat", "scat",
	"ta", "tab", "tea", "zee",
}

func TestLexicon() *lexicon.Dictionary {
	return lexicon.NewDictionary("testwords", TestWords...)
}

// English looks up English point values.
func English() *tilemapping.LetterDistribution {
	return tilemapping.EnglishLetterDistribution()
}

// EnglishScore is English().Score, for board.SetRow.
func EnglishScore(r rune) int {
	return English().Score(r)
}

// SmallDistribution is a letter distribution with the given letter counts
// and English point values.
func SmallDistribution(counts map[rune]int) *tilemapping.LetterDistribution {
	eng := English()
	pts := make(map[rune]int, len(counts))
	for l := range counts {
		pts[l] = eng.Score(l)
	}
	ld, err := tilemapping.NewLetterDistribution("small", counts, pts)
	if err != nil {
		panic(err)
	}
	return ld
}

// BoardWithRows returns a standard board with letters written across the
// given rows, starting at column A. Spaces leave a square empty.
func BoardWithRows(rows map[int]string) *board.GameBoard {
	b := board.MakeBoard()
	for r, letters := range rows {
		if err := b.SetRow(r, letters, EnglishScore); err != nil {
			panic(err)
		}
	}
	return b
}

// Pos parses a coordinate like "H8" and panics on bad input.
func Pos(coord string) board.Position {
	p, ok := board.ParseCoordinate(coord)
	if !ok {
		panic("bad coordinate " + coord)
	}
	return p
}
