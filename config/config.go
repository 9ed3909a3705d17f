// Package config holds the settings for a wordgrid game: where the lexicon
// lives, which board layout to use, how to score, and so on. Settings come
// from defaults, an optional config file, WORDGRID_* environment variables
// and command-line flags, in increasing order of precedence.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug              = "debug"
	ConfigConfigFile         = "config-file"
	ConfigLexiconPath        = "lexicon-path"
	ConfigBoardLayoutFile    = "board-layout-file"
	ConfigScoring            = "scoring"
	ConfigSeed               = "seed"
	ConfigScorelessTurnLimit = "scoreless-turn-limit"
	ConfigPlayers            = "players"
	ConfigBotExchangeLetters = "bot-exchange-letters"
	ConfigHistoryFile        = "history-file"
)

const (
	ScoringRaw     = "raw"
	ScoringPremium = "premium"
)

const envPrefix = "WORDGRID"

// Config wraps a viper instance. Use the Get* methods with the key
// constants above.
type Config struct {
	*viper.Viper
}

// DefaultConfig returns a config with every key at its default value.
func DefaultConfig() *Config {
	c := &Config{Viper: viper.New()}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigLexiconPath, "./data/lexica/words.txt")
	c.SetDefault(ConfigBoardLayoutFile, "")
	c.SetDefault(ConfigScoring, ScoringRaw)
	c.SetDefault(ConfigSeed, "")
	c.SetDefault(ConfigScorelessTurnLimit, 6)
	c.SetDefault(ConfigPlayers, "human:player1,bot:player2")
	c.SetDefault(ConfigBotExchangeLetters, "QZXJKVW")
	c.SetDefault(ConfigHistoryFile, "")
}

// Load parses the command-line arguments, reads the config file if one was
// named, and binds the environment.
func (c *Config) Load(args []string) error {
	if c.Viper == nil {
		c.Viper = viper.New()
	}
	c.setDefaults()

	fs := pflag.NewFlagSet("wordgrid", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.String(ConfigConfigFile, "", "path to a YAML config file")
	fs.String(ConfigLexiconPath, c.GetString(ConfigLexiconPath), "word list, one word per line")
	fs.String(ConfigBoardLayoutFile, "", "YAML file with a custom premium-square layout")
	fs.String(ConfigScoring, ScoringRaw, "scoring mode: raw or premium")
	fs.String(ConfigSeed, "", "seed for the tile bag shuffle; empty for a random seed")
	fs.Int(ConfigScorelessTurnLimit, 6, "scoreless turns before asking whether to continue")
	fs.String(ConfigPlayers, c.GetString(ConfigPlayers), "comma-separated kind:name list, kind is human or bot")
	fs.String(ConfigBotExchangeLetters, c.GetString(ConfigBotExchangeLetters), "letters the bot considers unplayable")
	fs.String(ConfigHistoryFile, "", "write the turn history as JSON lines to this file at game end")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}

	c.SetEnvPrefix(envPrefix)
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	if cf := c.GetString(ConfigConfigFile); cf != "" {
		c.SetConfigFile(cf)
		if err := c.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %v: %w", cf, err)
		}
	}
	return c.Validate()
}

// Validate checks the values that have a closed set of options.
func (c *Config) Validate() error {
	switch c.GetString(ConfigScoring) {
	case ScoringRaw, ScoringPremium:
	default:
		return fmt.Errorf("scoring must be %q or %q, got %q",
			ScoringRaw, ScoringPremium, c.GetString(ConfigScoring))
	}
	if c.GetInt(ConfigScorelessTurnLimit) < 1 {
		return fmt.Errorf("%v must be positive", ConfigScorelessTurnLimit)
	}
	return nil
}

// AdjustRelativePaths resolves relative file settings against basepath,
// usually the directory of the executable.
func (c *Config) AdjustRelativePaths(basepath string) {
	for _, key := range []string{ConfigLexiconPath, ConfigBoardLayoutFile} {
		p := c.GetString(key)
		if p == "" || filepath.IsAbs(p) {
			continue
		}
		c.Set(key, filepath.Join(basepath, p))
	}
}

// SanitizedSettings returns all settings, for logging.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
