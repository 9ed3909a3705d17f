package board

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// CrosswordGameLayout is the standard premium-square layout, one string
// per row, in the bonus notation of BonusSquare.
var CrosswordGameLayout = []string{
	`=  '   =   '  =`,
	` -   "   "   - `,
	`  -   ' '   -  `,
	`'  -   '   -  '`,
	`    -     -    `,
	` "   "   "   " `,
	`  '   ' '   '  `,
	`=  '   -   '  =`,
	`  '   ' '   '  `,
	` "   "   "   " `,
	`    -     -    `,
	`'  -   '   -  '`,
	`  -   ' '   -  `,
	` -   "   "   - `,
	`=  '   =   '  =`,
}

// A Layout is a named premium-square layout as read from a file.
type Layout struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// LoadLayout reads a YAML layout document and checks that it describes a
// valid board.
func LoadLayout(r io.Reader) (*Layout, error) {
	l := &Layout{}
	if err := yaml.NewDecoder(r).Decode(l); err != nil {
		return nil, fmt.Errorf("decoding layout: %w", err)
	}
	if _, err := NewBoard(l.Rows); err != nil {
		return nil, fmt.Errorf("layout %q: %w", l.Name, err)
	}
	return l, nil
}

// LoadLayoutFile is LoadLayout on a file path.
func LoadLayoutFile(path string) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadLayout(f)
}
