// Package lexicon supplies the dictionary a game is played with. A
// dictionary is a read-only set of lowercase words.
package lexicon

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

var ErrEmptyLexicon = errors.New("lexicon has no words")

// Lexicon is what the game needs from a dictionary.
type Lexicon interface {
	Name() string
	HasWord(word string) bool
	Words() []string
	Len() int
}

// Dictionary is a Lexicon backed by an in-memory set.
type Dictionary struct {
	name  string
	words map[string]struct{}
}

// NewDictionary builds a dictionary from the given words, lowercasing them.
func NewDictionary(name string, words ...string) *Dictionary {
	d := &Dictionary{name: name, words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		d.add(w)
	}
	return d
}

func (d *Dictionary) add(w string) bool {
	w = strings.ToLower(strings.TrimSpace(w))
	if w == "" {
		return false
	}
	for _, r := range w {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	d.words[w] = struct{}{}
	return true
}

// FromReader reads one word per line. Blank lines and lines starting with
// # are skipped, as are words with anything but the letters a to z.
func FromReader(name string, r io.Reader) (*Dictionary, error) {
	if r == nil {
		return nil, errors.New("reader required to load a lexicon from")
	}
	d := NewDictionary(name)
	skipped := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !d.add(line) {
			skipped++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if skipped > 0 {
		log.Debug().Int("skipped", skipped).Str("lexicon", name).Msg("skipped non-alphabetic words")
	}
	if len(d.words) == 0 {
		return nil, ErrEmptyLexicon
	}
	return d, nil
}

// Load reads a word list file. The lexicon is named after the file.
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	d, err := FromReader(name, f)
	if err != nil {
		return nil, err
	}
	log.Info().Str("lexicon", name).Int("words", d.Len()).Msg("loaded lexicon")
	return d, nil
}

func (d *Dictionary) Name() string {
	return d.name
}

// HasWord reports membership, ignoring case.
func (d *Dictionary) HasWord(word string) bool {
	_, ok := d.words[strings.ToLower(word)]
	return ok
}

// Words returns every word, sorted.
func (d *Dictionary) Words() []string {
	ws := make([]string, 0, len(d.words))
	for w := range d.words {
		ws = append(ws, w)
	}
	sort.Strings(ws)
	return ws
}

func (d *Dictionary) Len() int {
	return len(d.words)
}
