package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/wordgrid/wordgrid/ai/player"
	"github.com/wordgrid/wordgrid/config"
	"github.com/wordgrid/wordgrid/game"
	"github.com/wordgrid/wordgrid/lexicon"
	"github.com/wordgrid/wordgrid/shell"
	"github.com/wordgrid/wordgrid/turnplayer"
)

var (
	GitVersion string
)

func setupLogging(debug bool) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}

	var logger zerolog.Logger
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
	logger.Debug().Msg("Debug logging is on")
}

func buildPlayers(cfg *config.Config, lex lexicon.Lexicon, sc *shell.ShellController) ([]game.Player, error) {
	specs, err := turnplayer.ParsePlayerSpecs(cfg.GetString(config.ConfigPlayers))
	if err != nil {
		return nil, err
	}
	players := make([]game.Player, 0, len(specs))
	for _, s := range specs {
		if s.Kind == turnplayer.KindBot {
			bot := player.NewStaticPlayer(lex)
			bot.SetExchangeLetters(cfg.GetString(config.ConfigBotExchangeLetters))
			players = append(players, game.NewAutomatedPlayer(s.Name, bot))
			continue
		}
		players = append(players, game.NewHumanPlayer(s.Name, sc))
	}
	return players, nil
}

func main() {
	// Relative data paths are resolved against the directory of the
	// executable.
	ex, err := os.Executable()
	if err != nil {
		panic(err)
	}
	exPath := filepath.Dir(ex)

	cfg := config.DefaultConfig()
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	setupLogging(cfg.GetBool(config.ConfigDebug))
	if GitVersion != "" {
		log.Info().Msgf("wordgrid %v", GitVersion)
	}
	cfg.AdjustRelativePaths(exPath)
	log.Debug().Msgf("Loaded config: %v", cfg.SanitizedSettings())

	lex, err := lexicon.Load(cfg.GetString(config.ConfigLexiconPath))
	if err != nil {
		log.Fatal().Err(err).Msg("cannot play without a lexicon")
	}
	log.Info().Str("lexicon", lex.Name()).Int("words", lex.Len()).Msg("loaded lexicon")

	rules, err := game.NewGameRules(cfg, lex)
	if err != nil {
		log.Fatal().Err(err).Msg("bad game rules")
	}

	sc, err := shell.NewShellController(lex)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot start shell")
	}
	defer sc.Close()

	players, err := buildPlayers(cfg, lex, sc)
	if err != nil {
		log.Fatal().Err(err).Msg("bad players setting")
	}
	g, err := game.NewGame(rules, players, game.Options{
		Seed:      cfg.GetString(config.ConfigSeed),
		Continuer: sc,
		Presenter: sc,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("cannot start game")
	}

	res, err := g.Run()
	switch {
	case errors.Is(err, shell.ErrQuit):
		log.Info().Msg("game abandoned")
	case err != nil:
		log.Error().Err(err).Msg("game stopped")
	default:
		for i, name := range res.Names {
			fmt.Printf("%s: %d\n", name, res.Scores[i])
		}
		fmt.Printf("Winner: %s\n", res.WinnerName())
	}

	if path := cfg.GetString(config.ConfigHistoryFile); path != "" {
		if err := g.SaveHistory(path); err != nil {
			log.Error().Err(err).Str("path", path).Msg("could not write history")
		} else {
			log.Info().Str("path", path).Msg("wrote history")
		}
	}
}
