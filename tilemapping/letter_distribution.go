package tilemapping

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// LetterDistribution encodes the tile distribution for the relevant game.
type LetterDistribution struct {
	Name         string
	letters      []rune
	distribution map[rune]int
	scores       map[rune]int
	numLetters   int
}

// EnglishLetterDistribution is the standard 100-tile English set. Blanks
// are not supported, so their two slots go to an extra E and an extra S.
func EnglishLetterDistribution() *LetterDistribution {
	dist := map[rune]int{
		'A': 9, 'B': 2, 'C': 2, 'D': 4, 'E': 13, 'F': 2, 'G': 3, 'H': 2,
		'I': 9, 'J': 1, 'K': 1, 'L': 4, 'M': 2, 'N': 6, 'O': 8, 'P': 2,
		'Q': 1, 'R': 6, 'S': 5, 'T': 6, 'U': 4, 'V': 2, 'W': 2, 'X': 1,
		'Y': 2, 'Z': 1,
	}
	ptValues := map[rune]int{
		'A': 1, 'B': 3, 'C': 3, 'D': 2, 'E': 1, 'F': 4, 'G': 2, 'H': 4,
		'I': 1, 'J': 8, 'K': 5, 'L': 1, 'M': 3, 'N': 1, 'O': 1, 'P': 3,
		'Q': 10, 'R': 1, 'S': 1, 'T': 1, 'U': 1, 'V': 4, 'W': 4, 'X': 8,
		'Y': 4, 'Z': 10,
	}
	ld, err := NewLetterDistribution("english", dist, ptValues)
	if err != nil {
		panic(err)
	}
	return ld
}

// NewLetterDistribution builds a distribution from per-letter counts and
// point values. Every counted letter needs a point value.
func NewLetterDistribution(name string, dist map[rune]int, ptValues map[rune]int) (*LetterDistribution, error) {
	ld := &LetterDistribution{
		Name:         name,
		distribution: map[rune]int{},
		scores:       map[rune]int{},
	}
	for r, ct := range dist {
		ur := unicode.ToUpper(r)
		if ur < 'A' || ur > 'Z' {
			return nil, fmt.Errorf("letter %q is not in A-Z", r)
		}
		if ct < 0 {
			return nil, fmt.Errorf("negative count for %c", ur)
		}
		pts, ok := ptValues[r]
		if !ok {
			return nil, fmt.Errorf("no point value for %c", ur)
		}
		if pts < 0 {
			return nil, fmt.Errorf("negative point value for %c", ur)
		}
		ld.distribution[ur] = ct
		ld.scores[ur] = pts
		ld.letters = append(ld.letters, ur)
		ld.numLetters += ct
	}
	sort.Slice(ld.letters, func(i, j int) bool { return ld.letters[i] < ld.letters[j] })
	return ld, nil
}

// ScanLetterDistribution reads a distribution as CSV records of
// letter,quantity,value.
func ScanLetterDistribution(name string, data io.Reader) (*LetterDistribution, error) {
	r := csv.NewReader(data)
	r.FieldsPerRecord = 3
	r.Comment = '#'
	dist := map[rune]int{}
	ptValues := map[rune]int{}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		letter := strings.TrimSpace(record[0])
		if utf8.RuneCountInString(letter) != 1 {
			return nil, fmt.Errorf("bad letter %q", letter)
		}
		n, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, err
		}
		p, err := strconv.Atoi(strings.TrimSpace(record[2]))
		if err != nil {
			return nil, err
		}
		rn, _ := utf8.DecodeRuneInString(letter)
		dist[rn] = n
		ptValues[rn] = p
	}
	return NewLetterDistribution(name, dist, ptValues)
}

// Score returns the point value of a letter, or 0 if the letter is not in
// this distribution.
func (ld *LetterDistribution) Score(letter rune) int {
	return ld.scores[unicode.ToUpper(letter)]
}

// Count returns how many tiles of the letter the full set has.
func (ld *LetterDistribution) Count(letter rune) int {
	return ld.distribution[unicode.ToUpper(letter)]
}

// Letters returns the distinct letters in alphabetical order.
func (ld *LetterDistribution) Letters() []rune {
	return append([]rune(nil), ld.letters...)
}

// NumTotalTiles is the size of a full bag.
func (ld *LetterDistribution) NumTotalTiles() int {
	return ld.numLetters
}

// Tiles returns every tile of the full set, in alphabetical order.
func (ld *LetterDistribution) Tiles() []Tile {
	tiles := make([]Tile, 0, ld.numLetters)
	for _, l := range ld.letters {
		for i := 0; i < ld.distribution[l]; i++ {
			tiles = append(tiles, Tile{Letter: l, Points: ld.scores[l]})
		}
	}
	return tiles
}
