package testutil

import (
	"testing"

	"github.com/lgbarn/chessai-go/internal/engine"
)

// NewTestGame returns a game set up from fen, or from the initial position
// when fen is empty. It returns nil if the FEN does not parse.
func NewTestGame(fen string) *engine.Game {
	if fen == "" {
		return engine.NewGame()
	}
	g, err := engine.NewGameFromFEN(fen)
	if err != nil {
		return nil
	}
	return g
}

// MustGame is NewTestGame that calls t.Fatal if the FEN does not parse.
func MustGame(t *testing.T, fen string) *engine.Game {
	t.Helper()
	g := NewTestGame(fen)
	if g == nil {
		t.Fatalf("invalid test FEN %q", fen)
	}
	return g
}

// MustPlay plays moves in coordinate or SAN form and calls t.Fatal on the
// first one that is rejected.
func MustPlay(t *testing.T, g *engine.Game, moves ...string) *engine.Game {
	t.Helper()
	if err := g.PlayAll(moves...); err != nil {
		t.Fatalf("playing %v: %v", moves, err)
	}
	return g
}

// PlayedGame returns the game reached from fen (empty for the initial
// position) after the given moves.
func PlayedGame(t *testing.T, fen string, moves ...string) *engine.Game {
	t.Helper()
	return MustPlay(t, MustGame(t, fen), moves...)
}
