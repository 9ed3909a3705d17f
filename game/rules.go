package game

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/wordgrid/wordgrid/board"
	"github.com/wordgrid/wordgrid/config"
	"github.com/wordgrid/wordgrid/lexicon"
	"github.com/wordgrid/wordgrid/tilemapping"
)

// DefaultScorelessTurnLimit is how many scoreless turns in a row make the
// game ask whether to go on.
const DefaultScorelessTurnLimit = 6

// ScoringMode decides whether premium squares count.
type ScoringMode uint8

const (
	// ScoreRaw sums the face value of every letter of every new word.
	ScoreRaw ScoringMode = iota
	// ScorePremium applies letter premiums of squares filled this turn,
	// then the word premiums of those squares.
	ScorePremium
)

func (s ScoringMode) String() string {
	if s == ScorePremium {
		return config.ScoringPremium
	}
	return config.ScoringRaw
}

// ParseScoringMode maps a config value to a ScoringMode.
func ParseScoringMode(s string) (ScoringMode, error) {
	switch s {
	case config.ScoringRaw, "":
		return ScoreRaw, nil
	case config.ScoringPremium:
		return ScorePremium, nil
	}
	return ScoreRaw, fmt.Errorf("unknown scoring mode %q", s)
}

// GameRules is a simple struct that encapsulates the instantiated objects
// needed to actually play a game.
type GameRules struct {
	layout             []string
	layoutName         string
	dist               *tilemapping.LetterDistribution
	lexicon            lexicon.Lexicon
	scoring            ScoringMode
	scorelessTurnLimit int
}

// NewBasicGameRules builds rules from explicit parts. A nil layout means
// the standard one; a nil distribution means English.
func NewBasicGameRules(lex lexicon.Lexicon, layout []string,
	dist *tilemapping.LetterDistribution, scoring ScoringMode) (*GameRules, error) {

	if lex == nil || lex.Len() == 0 {
		return nil, ErrNoDictionary
	}
	name := "custom"
	if layout == nil {
		layout = board.CrosswordGameLayout
		name = "CrosswordGame"
	}
	if _, err := board.NewBoard(layout); err != nil {
		return nil, err
	}
	if dist == nil {
		dist = tilemapping.EnglishLetterDistribution()
	}
	return &GameRules{
		layout:             layout,
		layoutName:         name,
		dist:               dist,
		lexicon:            lex,
		scoring:            scoring,
		scorelessTurnLimit: DefaultScorelessTurnLimit,
	}, nil
}

// NewGameRules builds rules from the config: layout file, scoring mode and
// scoreless-turn limit.
func NewGameRules(cfg *config.Config, lex lexicon.Lexicon) (*GameRules, error) {
	scoring, err := ParseScoringMode(cfg.GetString(config.ConfigScoring))
	if err != nil {
		return nil, err
	}
	var layout []string
	layoutName := ""
	if path := cfg.GetString(config.ConfigBoardLayoutFile); path != "" {
		l, err := board.LoadLayoutFile(path)
		if err != nil {
			return nil, err
		}
		layout, layoutName = l.Rows, l.Name
		log.Info().Str("layout", l.Name).Str("path", path).Msg("using custom board layout")
	}
	rules, err := NewBasicGameRules(lex, layout, nil, scoring)
	if err != nil {
		return nil, err
	}
	if layoutName != "" {
		rules.layoutName = layoutName
	}
	if limit := cfg.GetInt(config.ConfigScorelessTurnLimit); limit > 0 {
		rules.scorelessTurnLimit = limit
	}
	return rules, nil
}

func (g GameRules) Lexicon() lexicon.Lexicon {
	return g.lexicon
}

func (g GameRules) LexiconName() string {
	return g.lexicon.Name()
}

func (g GameRules) BoardName() string {
	return g.layoutName
}

func (g GameRules) LetterDistribution() *tilemapping.LetterDistribution {
	return g.dist
}

func (g GameRules) Scoring() ScoringMode {
	return g.scoring
}

func (g GameRules) ScorelessTurnLimit() int {
	return g.scorelessTurnLimit
}

func (g *GameRules) SetScorelessTurnLimit(n int) error {
	if n < 1 {
		return errors.New("scoreless turn limit must be positive")
	}
	g.scorelessTurnLimit = n
	return nil
}

func (g GameRules) newBoard() *board.GameBoard {
	b, err := board.NewBoard(g.layout)
	if err != nil {
		// The layout was checked when the rules were made.
		panic(err)
	}
	return b
}
