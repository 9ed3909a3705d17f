package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	is.Equal(cfg.GetString(ConfigScoring), ScoringRaw)
	is.Equal(cfg.GetInt(ConfigScorelessTurnLimit), 6)
	is.Equal(cfg.GetBool(ConfigDebug), false)
	is.NoErr(cfg.Validate())
}

func TestLoadFlags(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	err := cfg.Load([]string{"--scoring", "premium", "--scoreless-turn-limit", "4", "--debug"})
	is.NoErr(err)
	is.Equal(cfg.GetString(ConfigScoring), ScoringPremium)
	is.Equal(cfg.GetInt(ConfigScorelessTurnLimit), 4)
	is.True(cfg.GetBool(ConfigDebug))
}

func TestLoadRejectsBadScoring(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	err := cfg.Load([]string{"--scoring", "double"})
	is.True(err != nil)
}

func TestLoadConfigFile(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "wordgrid.yaml")
	is.NoErr(os.WriteFile(path, []byte("players: human:ann,human:bob\nseed: abc\n"), 0o644))

	cfg := &Config{}
	is.NoErr(cfg.Load([]string{"--config-file", path}))
	is.Equal(cfg.GetString(ConfigPlayers), "human:ann,human:bob")
	is.Equal(cfg.GetString(ConfigSeed), "abc")
}

func TestAdjustRelativePaths(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	cfg.Set(ConfigLexiconPath, "data/words.txt")
	cfg.Set(ConfigBoardLayoutFile, "/abs/layout.yaml")
	cfg.AdjustRelativePaths("/opt/wordgrid")
	is.Equal(cfg.GetString(ConfigLexiconPath), "/opt/wordgrid/data/words.txt")
	is.Equal(cfg.GetString(ConfigBoardLayoutFile), "/abs/layout.yaml")
}
