package lexicon

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestHasWordIgnoresCase(t *testing.T) {
	is := is.New(t)
	d := NewDictionary("test", "cat", "Dog")
	is.True(d.HasWord("CAT"))
	is.True(d.HasWord("cat"))
	is.True(d.HasWord("dOg"))
	is.True(!d.HasWord("cats"))
	is.True(!d.HasWord(""))
	is.Equal(d.Len(), 2)
}

func TestFromReader(t *testing.T) {
	is := is.New(t)
	src := "# comment\nAA\n\n  cab \nfoo-bar\nzyzzyva\n"
	d, err := FromReader("mini", strings.NewReader(src))
	is.NoErr(err)
	is.Equal(d.Words(), []string{"aa", "cab", "zyzzyva"})
	is.Equal(d.Name(), "mini")
}

func TestFromReaderEmpty(t *testing.T) {
	is := is.New(t)
	_, err := FromReader("empty", strings.NewReader("# nothing\n\n"))
	is.True(errors.Is(err, ErrEmptyLexicon))
	_, err = FromReader("nil", nil)
	is.True(err != nil)
}

func TestLoad(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "TWL.txt")
	is.NoErr(os.WriteFile(path, []byte("quiz\nquiet\n"), 0o644))
	d, err := Load(path)
	is.NoErr(err)
	is.Equal(d.Name(), "TWL")
	is.True(d.HasWord("QUIZ"))

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"))
	is.True(err != nil)
}
