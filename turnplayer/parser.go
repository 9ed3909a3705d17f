// Package turnplayer turns typed text into moves and player settings.
package turnplayer

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/wordgrid/wordgrid/board"
	"github.com/wordgrid/wordgrid/move"
	"github.com/wordgrid/wordgrid/tilemapping"
)

var (
	ErrUnrecognizedMove = errors.New("unrecognized move")
	ErrBadPlacement     = errors.New("placements look like R:A6,E:A7")
	ErrBadCoordinate    = errors.New("coordinates are a column A-O then a row 1-15, like H8")
	ErrNotOnRack        = errors.New("tile is not on your rack")
	ErrNoLetters        = errors.New("name the letters to exchange")
)

// ParseMove parses one line of input against the rack of the player on
// turn. Accepted forms:
//
//	pass
//	exchange ZQ  (or exch ZQ)
//	play R:A6,E:A7  (or just R:A6,E:A7)
//
// Tiles are taken from the rack so they carry their real point values; a
// letter used twice needs two such tiles on the rack.
func ParseMove(rack *tilemapping.Rack, line string) (*move.Move, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, ErrUnrecognizedMove
	}
	cmd := strings.ToLower(fields[0])
	switch {
	case cmd == "pass" && len(fields) == 1:
		return move.NewPassMove(), nil
	case cmd == "exchange" || cmd == "exch":
		if len(fields) < 2 {
			return nil, ErrNoLetters
		}
		letters, err := parseLetters(strings.Join(fields[1:], ""))
		if err != nil {
			return nil, err
		}
		return move.NewExchangeMove(letters), nil
	case cmd == "play":
		if len(fields) < 2 {
			return nil, ErrBadPlacement
		}
		return ParsePlacements(rack, strings.Join(fields[1:], ""))
	case len(fields) == 1 && strings.Contains(fields[0], ":"):
		return ParsePlacements(rack, fields[0])
	}
	return nil, fmt.Errorf("%w: %s", ErrUnrecognizedMove, strings.Join(fields, " "))
}

// ParsePlacements parses comma-separated Letter:Coordinate pairs into a
// play.
func ParsePlacements(rack *tilemapping.Rack, text string) (*move.Move, error) {
	available := tilemapping.NewRackOf(rack.Tiles())
	placements := []move.Placement{}
	for _, pair := range strings.Split(text, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		parts := strings.Split(pair, ":")
		if len(parts) != 2 || utf8.RuneCountInString(parts[0]) != 1 {
			return nil, fmt.Errorf("%w: %q", ErrBadPlacement, pair)
		}
		letter, _ := utf8.DecodeRuneInString(parts[0])
		if !isLetter(letter) {
			return nil, fmt.Errorf("%w: %q", ErrBadPlacement, pair)
		}
		pos, ok := board.ParseCoordinate(parts[1])
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrBadCoordinate, parts[1])
		}
		tile, ok := available.RemoveByLetter(letter)
		if !ok {
			return nil, fmt.Errorf("%w: %c", ErrNotOnRack, unicode.ToUpper(letter))
		}
		placements = append(placements, move.Placement{Tile: tile, Pos: pos})
	}
	if len(placements) == 0 {
		return nil, ErrBadPlacement
	}
	return move.NewPlayMove(placements), nil
}

func parseLetters(s string) ([]rune, error) {
	letters := []rune{}
	for _, r := range s {
		if !isLetter(r) {
			return nil, fmt.Errorf("%w: %q is not a letter", ErrUnrecognizedMove, r)
		}
		letters = append(letters, unicode.ToUpper(r))
	}
	return letters, nil
}

func isLetter(r rune) bool {
	r = unicode.ToUpper(r)
	return r >= 'A' && r <= 'Z'
}
