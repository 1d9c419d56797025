package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chessai-go/internal/errors"
)

// DefaultMaxPlies stops a self-play game that neither side can finish.
const DefaultMaxPlies = 300

// DefaultOpeningPlies is the number of random moves opening each arena game.
const DefaultOpeningPlies = 4

// ArenaConfig holds settings for concurrent computer self-play.
type ArenaConfig struct {
	// Games is the number of games to play; 0 disables the arena.
	Games int

	// Concurrency is how many games run at once.
	Concurrency int

	// MaxPlies adjudicates a game as unfinished after this many plies.
	MaxPlies int

	// OpeningPlies random moves start every game so that games between
	// deterministic players differ.
	OpeningPlies int

	// Seed drives the random openings; equal seeds replay equal games.
	Seed uint64
}

// NewArenaConfig creates an ArenaConfig with default values.
// The arena is disabled by default.
func NewArenaConfig() *ArenaConfig {
	return &ArenaConfig{
		Concurrency:  runtime.NumCPU(),
		MaxPlies:     DefaultMaxPlies,
		OpeningPlies: DefaultOpeningPlies,
		Seed:         1,
	}
}

// Enabled reports whether any arena games were requested.
func (a *ArenaConfig) Enabled() bool {
	return a.Games > 0
}

// Validate checks that the arena configuration is valid.
func (a *ArenaConfig) Validate() error {
	if a.Games < 0 {
		return fmt.Errorf("arena games (%d) < 0: %w", a.Games, errors.ErrInvalidConfig)
	}
	if a.Concurrency < 1 {
		return fmt.Errorf("arena concurrency (%d) < 1: %w", a.Concurrency, errors.ErrInvalidConfig)
	}
	if a.MaxPlies < 1 {
		return fmt.Errorf("max plies (%d) < 1: %w", a.MaxPlies, errors.ErrInvalidConfig)
	}
	if a.OpeningPlies < 0 {
		return fmt.Errorf("opening plies (%d) < 0: %w", a.OpeningPlies, errors.ErrInvalidConfig)
	}
	return nil
}
