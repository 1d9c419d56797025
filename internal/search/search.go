// Package search picks moves with a depth-limited minimax search and
// alpha-beta pruning over a static evaluation.
//
// The search plays and takes back moves on the caller's game; every branch
// undoes what it applied, so the game is unchanged when a search returns.
package search

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessai-go/internal/chess"
	"github.com/lgbarn/chessai-go/internal/engine"
)

const (
	// RootWindow bounds the alpha-beta window opened below each root move.
	RootWindow = 10000.0

	// worstScore seeds the running best value at every node.
	worstScore = 9999.0
)

// Search returns the minimax value of the position searched to depth plies
// with alpha-beta pruning. The maximizing side is White's point of view.
func Search(g *engine.Game, depth int, alpha, beta float64, maximizing bool) float64 {
	s := &searcher{game: g}
	return s.minimax(depth, alpha, beta, maximizing)
}

// BestMove searches the position at the difficulty's depth and returns the
// best move for the side to move. It returns false if there is no legal move.
func BestMove(g *engine.Game, d Difficulty) (chess.MovePair, bool) {
	r := New(WithDifficulty(d)).Search(g)
	return r.Move, r.Found
}

// Result describes a completed root search.
type Result struct {
	Move    chess.MovePair
	Found   bool
	Score   float64
	Depth   int
	Nodes   int
	Elapsed time.Duration
}

// AI searches positions at a fixed depth. The zero value is not usable; use New.
type AI struct {
	depth  int
	logger zerolog.Logger
}

// Option configures an AI.
type Option func(*AI)

// WithDifficulty sets the search depth from a difficulty preset.
func WithDifficulty(d Difficulty) Option {
	return func(a *AI) {
		if d.Depth() >= 1 {
			a.depth = d.Depth()
		}
	}
}

// WithDepth sets the search depth in plies.
func WithDepth(depth int) Option {
	return func(a *AI) {
		if depth >= 1 {
			a.depth = depth
		}
	}
}

// WithLogger sets the logger used for search statistics.
func WithLogger(l zerolog.Logger) Option {
	return func(a *AI) {
		a.logger = l
	}
}

// New creates an AI searching at DefaultDifficulty unless configured otherwise.
func New(opts ...Option) *AI {
	a := &AI{
		depth:  DefaultDifficulty.Depth(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Depth returns the configured search depth.
func (a *AI) Depth() int {
	return a.depth
}

// BestMove returns the best move for the side to move, or false if there is none.
func (a *AI) BestMove(g *engine.Game) (chess.MovePair, bool) {
	r := a.Search(g)
	return r.Move, r.Found
}

// Search runs the root search. White maximizes and Black minimizes; of
// equally scored moves the first in generation order is kept.
func (a *AI) Search(g *engine.Game) Result {
	start := time.Now()
	s := &searcher{game: g}
	result := Result{Depth: a.depth}

	maximizing := g.SideToMove() == chess.White
	best := worstScore
	if maximizing {
		best = -worstScore
	}

	for _, m := range engine.GenerateAllLegalMoves(g) {
		if !s.apply(m) {
			continue
		}
		value := s.minimax(a.depth-1, -RootWindow, RootWindow, !maximizing)
		g.Undo()

		if !result.Found || (maximizing && value > best) || (!maximizing && value < best) {
			best = value
			result.Move = m
			result.Found = true
		}
	}

	result.Score = best
	result.Nodes = s.nodes
	result.Elapsed = time.Since(start)

	event := a.logger.Debug().
		Str("side", g.SideToMove().String()).
		Int("depth", a.depth).
		Int("nodes", s.nodes).
		Dur("elapsed", result.Elapsed)
	if result.Found {
		event = event.Str("move", result.Move.String()).Float64("score", result.Score)
	}
	event.Msg("search complete")

	return result
}

// searcher carries the game and node count through one search.
type searcher struct {
	game  *engine.Game
	nodes int
}

// apply plays a generated move; pawns always promote to a queen.
func (s *searcher) apply(m chess.MovePair) bool {
	s.nodes++
	return s.game.Apply(m.From, m.To, chess.Queen)
}

func (s *searcher) minimax(depth int, alpha, beta float64, maximizing bool) float64 {
	g := s.game
	if depth <= 0 || g.IsGameOver() {
		return Evaluate(g)
	}

	moves := engine.GenerateAllLegalMoves(g)
	if len(moves) == 0 {
		if g.IsInCheck(g.SideToMove()) {
			if maximizing {
				return -MateScore
			}
			return MateScore
		}
		return 0
	}

	if maximizing {
		value := -worstScore
		for _, m := range moves {
			if !s.apply(m) {
				continue
			}
			value = max(value, s.minimax(depth-1, alpha, beta, false))
			g.Undo()

			alpha = max(alpha, value)
			if alpha >= beta {
				break
			}
		}
		return value
	}

	value := worstScore
	for _, m := range moves {
		if !s.apply(m) {
			continue
		}
		value = min(value, s.minimax(depth-1, alpha, beta, true))
		g.Undo()

		beta = min(beta, value)
		if alpha >= beta {
			break
		}
	}
	return value
}
