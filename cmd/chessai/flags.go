// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/chessai-go/internal/config"
	"github.com/lgbarn/chessai-go/internal/errors"
	"github.com/lgbarn/chessai-go/internal/search"
)

var (
	// Players
	whitePlayer = flag.String("white", "human", "Who plays White: human or ai")
	blackPlayer = flag.String("black", "ai", "Who plays Black: human or ai")
	humanSide   = flag.String("human", "", "Shortcut for the human side: white, black, both or none")
	difficulty  = flag.String("difficulty", "medium", "Difficulty for both computer players: easy, medium or hard")
	whiteLevel  = flag.String("white-level", "", "Difficulty for White (overrides -difficulty)")
	blackLevel  = flag.String("black-level", "", "Difficulty for Black (overrides -difficulty)")
	depth       = flag.Int("depth", 0, "Search depth in plies for both computer players (overrides difficulty)")
	startFEN    = flag.String("fen", "", "Starting position in FEN (default: standard position)")

	// Export
	pgnFile      = flag.String("pgn", "", "Write the finished game(s) as PGN to this file")
	jsonFile     = flag.String("json", "", "Write the finished game(s) as JSON to this file")
	svgFile      = flag.String("svg", "", "Write an SVG diagram of the final position to this file")
	outputFormat = flag.String("W", "", "PGN move format: san, lalg, halg, uci")
	lineLength   = flag.Int("w", 80, "Maximum PGN line length")
	sevenTagOnly = flag.Bool("7", false, "Output only the seven tag roster")
	noTags       = flag.Bool("notags", false, "Don't output any tags")
	noResults    = flag.Bool("noresults", false, "Don't output results")
	noFEN        = flag.Bool("nofen", false, "Don't add the position after each move to JSON output")
	svgSize      = flag.Int("svgsize", 60, "SVG square size in pixels")

	// Arena
	arenaGames   = flag.Int("arena", 0, "Play N computer self-play games and print a JSON summary")
	concurrency  = flag.Int("concurrency", 0, "Arena games played at once (0 = number of CPUs)")
	maxPlies     = flag.Int("maxplies", config.DefaultMaxPlies, "Stop computer-only games after this many plies")
	openingPlies = flag.Int("openings", config.DefaultOpeningPlies, "Random opening plies in arena games")
	seed         = flag.Uint64("seed", 1, "Seed for arena openings")

	// Diagnostics
	logLevel = flag.String("loglevel", "info", "Log level: trace, debug, info, warn, error")
	help     = flag.Bool("h", false, "Show help")
	version  = flag.Bool("version", false, "Show version")
)

func applyFlags(cfg *config.Config) error {
	if err := applyPlayerFlags(cfg); err != nil {
		return err
	}
	if err := applyOutputFlags(cfg); err != nil {
		return err
	}
	applyArenaFlags(cfg)

	cfg.StartFEN = *startFEN
	cfg.LogLevel = *logLevel
	return nil
}

func applyPlayerFlags(cfg *config.Config) error {
	var err error
	if cfg.White.Kind, err = config.ParsePlayerKind(*whitePlayer); err != nil {
		return err
	}
	if cfg.Black.Kind, err = config.ParsePlayerKind(*blackPlayer); err != nil {
		return err
	}
	if *humanSide != "" {
		if err := cfg.SetHuman(*humanSide); err != nil {
			return err
		}
	}

	both, err := search.ParseDifficulty(*difficulty)
	if err != nil {
		return err
	}
	cfg.White.Difficulty, cfg.Black.Difficulty = both, both

	for _, side := range []struct {
		level  string
		player *config.Player
	}{{*whiteLevel, &cfg.White}, {*blackLevel, &cfg.Black}} {
		if side.level == "" {
			continue
		}
		if side.player.Difficulty, err = search.ParseDifficulty(side.level); err != nil {
			return err
		}
	}

	if *depth != 0 {
		if *depth < 1 {
			return fmt.Errorf("depth %d: %w", *depth, errors.ErrInvalidConfig)
		}
		cfg.White.Difficulty = search.Difficulty(*depth)
		cfg.Black.Difficulty = search.Difficulty(*depth)
	}
	return nil
}

func applyOutputFlags(cfg *config.Config) error {
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}
	cfg.Output.Format = format

	switch {
	case *noTags:
		cfg.Output.TagFormat = config.NoTags
	case *sevenTagOnly:
		cfg.Output.TagFormat = config.SevenTagRoster
	}

	cfg.Output.MaxLineLength = uint(max(*lineLength, 0))
	cfg.Output.KeepResults = !*noResults
	cfg.Output.OutputFEN = !*noFEN
	cfg.Output.SVGSquareSize = *svgSize
	cfg.Output.PGNPath = *pgnFile
	cfg.Output.JSONPath = *jsonFile
	cfg.Output.SVGPath = *svgFile
	return nil
}

func applyArenaFlags(cfg *config.Config) {
	cfg.Arena.Games = *arenaGames
	if *concurrency > 0 {
		cfg.Arena.Concurrency = *concurrency
	}
	cfg.Arena.MaxPlies = *maxPlies
	cfg.Arena.OpeningPlies = *openingPlies
	cfg.Arena.Seed = *seed
}
