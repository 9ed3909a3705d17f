package validator

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/wordgrid/wordgrid/board"
	"github.com/wordgrid/wordgrid/lexicon"
)

func pos(t *testing.T, coords ...string) []board.Position {
	ps := make([]board.Position, len(coords))
	for i, c := range coords {
		p, ok := board.ParseCoordinate(c)
		if !ok {
			t.Fatalf("bad coordinate %v", c)
		}
		ps[i] = p
	}
	return ps
}

func onePoint(rune) int { return 1 }

func TestAreAligned(t *testing.T) {
	is := is.New(t)
	is.True(AreAligned(nil))
	is.True(AreAligned(pos(t, "C3")))
	is.True(AreAligned(pos(t, "A6", "A7", "A9")))  // same column letter
	is.True(AreAligned(pos(t, "B2", "D2", "O2")))  // same row number
	is.True(!AreAligned(pos(t, "A6", "B7")))       // diagonal
	is.True(!AreAligned(pos(t, "A6", "A7", "B7"))) // L shape
}

func TestIsAdjacentToExisting(t *testing.T) {
	is := is.New(t)
	b := board.MakeBoard()
	is.NoErr(b.SetRow(7, "       CAT", onePoint)) // H8 I8 J8

	is.True(IsAdjacentToExisting(b, pos(t, "K8")))       // right of T
	is.True(IsAdjacentToExisting(b, pos(t, "H7", "H6"))) // above C
	is.True(!IsAdjacentToExisting(b, pos(t, "A1", "A2")))
	is.True(!IsAdjacentToExisting(b, pos(t, "G7"))) // diagonal only
	is.True(!IsAdjacentToExisting(board.MakeBoard(), pos(t, "H8", "I8")))
}

func TestIsAdjacentIgnoresOwnTiles(t *testing.T) {
	is := is.New(t)
	b := board.MakeBoard()
	// Tiles of this turn already on the board touch only each other.
	is.NoErr(b.SetRow(0, "AB", onePoint))
	is.True(!IsAdjacentToExisting(b, pos(t, "A1", "B1")))
}

func TestIsContiguousWithinTurn(t *testing.T) {
	is := is.New(t)
	b := board.MakeBoard()
	is.NoErr(b.SetRow(7, "       CAT", onePoint))

	is.True(IsContiguousWithinTurn(b, pos(t, "E5")))
	is.True(IsContiguousWithinTurn(b, pos(t, "A1", "B1", "C1")))
	is.True(!IsContiguousWithinTurn(b, pos(t, "A1", "C1")))
	// G8 and K8 bridge the existing CAT.
	is.True(IsContiguousWithinTurn(b, pos(t, "G8", "K8")))
	is.True(!IsContiguousWithinTurn(b, pos(t, "G8", "L8")))
	is.True(IsContiguousWithinTurn(b, pos(t, "D4", "D5", "D6")))
	is.True(!IsContiguousWithinTurn(b, pos(t, "D4", "D6")))
	is.True(!IsContiguousWithinTurn(b, pos(t, "A6", "B7")))
}

func TestIsFirstMoveLegal(t *testing.T) {
	is := is.New(t)
	is.True(IsFirstMoveLegal(pos(t, "H8", "I8")))
	is.True(IsFirstMoveLegal(pos(t, "H6", "H7", "H8")))
	is.True(!IsFirstMoveLegal(pos(t, "H8")))       // too few tiles
	is.True(!IsFirstMoveLegal(pos(t, "A1")))       // no center
	is.True(!IsFirstMoveLegal(pos(t, "G8", "I8"))) // straddles center
}

func TestIsValidWord(t *testing.T) {
	is := is.New(t)
	lex := lexicon.NewDictionary("t", "hi", "cat")
	is.True(IsValidWord(lex, "HI"))
	is.True(IsValidWord(lex, "Cat"))
	is.True(!IsValidWord(lex, "CATS"))
}

func TestValidatorCheckPlacement(t *testing.T) {
	is := is.New(t)
	b := board.MakeBoard()
	v := New(b, lexicon.NewDictionary("t", "hi"))

	is.True(errors.Is(v.CheckPlacement(pos(t, "A6", "B7"), true), ErrNotAligned))
	is.True(errors.Is(v.CheckPlacement(pos(t, "A1"), true), ErrFirstMove))
	is.NoErr(v.CheckPlacement(pos(t, "H8", "I8"), true))

	is.NoErr(b.SetRow(7, "       HI", onePoint))
	is.True(errors.Is(v.CheckPlacement(pos(t, "A1", "A2"), false), ErrNotConnected))
	is.NoErr(v.CheckPlacement(pos(t, "H9", "H10"), false))
}

func TestValidatorCheckWords(t *testing.T) {
	is := is.New(t)
	v := New(board.MakeBoard(), lexicon.NewDictionary("t", "hi", "cat"))
	is.NoErr(v.CheckWords([]string{"HI", "CAT"}))
	err := v.CheckWords([]string{"HI", "XQ", "ZZ", "XQ"})
	is.True(errors.Is(err, ErrInvalidWord))
	is.Equal(err.Error(), "XQ, ZZ not in the lexicon")
}

func TestValidatorCheckContiguous(t *testing.T) {
	is := is.New(t)
	v := New(board.MakeBoard(), lexicon.NewDictionary("t", "hi"))
	is.True(errors.Is(v.CheckContiguous(pos(t, "H8", "J8")), ErrGap))
	is.NoErr(v.CheckContiguous(pos(t, "H8", "I8")))
}
