// Package anagrammer finds the words that can be made from a rack.
package anagrammer

import (
	"sort"
	"strings"
	"unicode"

	"github.com/samber/lo"

	"github.com/wordgrid/wordgrid/lexicon"
	"github.com/wordgrid/wordgrid/tilemapping"
)

// MaxWordLength is the longest word a rack can spell on its own.
const MaxWordLength = tilemapping.RackTileLimit

// Candidates returns every lexicon word of at most MaxWordLength letters
// that the rack can spell, each rack letter used at most once. Words come
// back uppercase, sorted and without duplicates.
func Candidates(rackLetters []rune, lex lexicon.Lexicon) []string {
	rack := lo.CountValues(lo.Map(rackLetters, func(r rune, _ int) rune {
		return unicode.ToUpper(r)
	}))
	var answers []string
	for _, w := range lex.Words() {
		if len([]rune(w)) > MaxWordLength {
			continue
		}
		uw := strings.ToUpper(w)
		if canSpell(rack, uw) {
			answers = append(answers, uw)
		}
	}
	answers = lo.Uniq(answers)
	sort.Strings(answers)
	return answers
}

// Anagram is Candidates for a rack written as a string.
func Anagram(letters string, lex lexicon.Lexicon) []string {
	return Candidates([]rune(letters), lex)
}

func canSpell(rack map[rune]int, word string) bool {
	need := lo.CountValues([]rune(word))
	for letter, n := range need {
		if rack[letter] < n {
			return false
		}
	}
	return true
}
