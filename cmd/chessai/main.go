// chessai plays chess against a minimax search, between two searches, or
// as a concurrent self-play arena.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessai-go/internal/config"
	"github.com/lgbarn/chessai-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessai version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logger := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error().Err(err).Msg("chessai failed")
		stop()
		os.Exit(1)
	}
}

// newLogger builds a human-readable console logger at the configured level.
func newLogger(cfg *config.Config) zerolog.Logger {
	console := zerolog.ConsoleWriter{Out: cfg.LogFile, TimeFormat: time.Kitchen}
	return zerolog.New(console).Level(cfg.Level()).With().Timestamp().Logger()
}

// run dispatches to the arena or to an interactive game.
func run(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	if cfg.Arena.Enabled() {
		return runArena(ctx, cfg, logger)
	}

	session, err := NewSession(cfg, logger)
	if err != nil {
		return err
	}
	if err := session.Run(ctx); err != nil {
		return err
	}
	return writeExports(cfg.Output, []*output.Record{session.Record()})
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessai [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play chess against a minimax search with alpha-beta pruning.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands during play:\n")
	fmt.Fprintf(os.Stderr, "  e2e4, e7e8q, Nf3, O-O   play a move\n")
	fmt.Fprintf(os.Stderr, "  undo                    take back your last move\n")
	fmt.Fprintf(os.Stderr, "  board, fen, moves       show the position or the legal moves\n")
	fmt.Fprintf(os.Stderr, "  hint                    ask the search for a move\n")
	fmt.Fprintf(os.Stderr, "  quit                    stop playing\n")
}
