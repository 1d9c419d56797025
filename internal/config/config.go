// Package config provides the settings for a chessai run.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessai-go/internal/chess"
	"github.com/lgbarn/chessai-go/internal/engine"
	"github.com/lgbarn/chessai-go/internal/errors"
	"github.com/lgbarn/chessai-go/internal/search"
)

// PlayerKind says who chooses the moves for one side.
type PlayerKind int

const (
	Human    PlayerKind = iota // Moves read from the input
	Computer                   // Moves chosen by the search
)

func (k PlayerKind) String() string {
	if k == Computer {
		return "ai"
	}
	return "human"
}

// ParsePlayerKind converts "human" or "ai" (also "computer") to a PlayerKind.
func ParsePlayerKind(s string) (PlayerKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "human":
		return Human, nil
	case "ai", "computer", "cpu":
		return Computer, nil
	default:
		return Human, fmt.Errorf("player %q: %w", s, errors.ErrInvalidConfig)
	}
}

// Player configures one side of the board.
type Player struct {
	Kind       PlayerKind
	Difficulty search.Difficulty

	// Name is used for the PGN White/Black tags. Empty means a default
	// derived from the kind and difficulty.
	Name string
}

// DisplayName returns the configured name or a default one.
func (p Player) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	if p.Kind == Computer {
		return "chessai (" + p.Difficulty.String() + ")"
	}
	return "Human"
}

// Config holds all program configuration.
type Config struct {
	White Player
	Black Player

	// StartFEN is the starting position; empty means the standard one.
	StartFEN string

	// LogLevel is a zerolog level name such as "info" or "debug".
	LogLevel string

	Output *OutputConfig
	Arena  *ArenaConfig

	// Streams
	Input      io.Reader
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a Config with default values: a human playing White
// against the computer at the default difficulty.
func NewConfig() *Config {
	return &Config{
		White:      Player{Kind: Human, Difficulty: search.DefaultDifficulty},
		Black:      Player{Kind: Computer, Difficulty: search.DefaultDifficulty},
		LogLevel:   zerolog.LevelInfoValue,
		Output:     NewOutputConfig(),
		Arena:      NewArenaConfig(),
		Input:      os.Stdin,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Player returns the settings for the given colour.
func (c *Config) Player(colour chess.Colour) Player {
	if colour == chess.White {
		return c.White
	}
	return c.Black
}

// SetHuman chooses which sides are played from the input: "white",
// "black", "both" or "none".
func (c *Config) SetHuman(side string) error {
	white, black := Computer, Computer
	switch strings.ToLower(strings.TrimSpace(side)) {
	case "white", "w":
		white = Human
	case "black", "b":
		black = Human
	case "both":
		white, black = Human, Human
	case "none", "":
	default:
		return fmt.Errorf("human side %q: %w", side, errors.ErrInvalidConfig)
	}
	c.White.Kind, c.Black.Kind = white, black
	return nil
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Level returns the parsed log level, defaulting to info.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return level
}

// NewGame creates the game the configuration starts from.
func (c *Config) NewGame() (*engine.Game, error) {
	if c.StartFEN == "" {
		return engine.NewGame(), nil
	}
	return engine.NewGameFromFEN(c.StartFEN)
}

// Validate checks the whole configuration. Every failure wraps
// errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	for _, p := range []struct {
		side   string
		player Player
	}{{"white", c.White}, {"black", c.Black}} {
		if p.player.Kind == Computer && p.player.Difficulty.Depth() < 1 {
			return fmt.Errorf("%s difficulty %d: %w", p.side, p.player.Difficulty, errors.ErrInvalidConfig)
		}
	}

	if c.StartFEN != "" {
		if _, err := engine.NewGameFromFEN(c.StartFEN); err != nil {
			return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
		}
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level %q: %w", c.LogLevel, errors.ErrInvalidConfig)
	}

	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Arena.Validate()
}
