// Package arena plays computer-versus-computer games concurrently and
// tallies their results.
package arena

import (
	"context"
	"encoding/json"
	"io"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/chessai-go/internal/chess"
	"github.com/lgbarn/chessai-go/internal/config"
	"github.com/lgbarn/chessai-go/internal/engine"
	"github.com/lgbarn/chessai-go/internal/hashing"
	"github.com/lgbarn/chessai-go/internal/search"
)

// GameResult is the outcome of one arena game.
type GameResult struct {
	ID          uuid.UUID     `json:"id"`
	Index       int           `json:"index"`
	Result      string        `json:"result"`
	Status      string        `json:"status"`
	Plies       int           `json:"plies"`
	Adjudicated bool          `json:"adjudicated"`
	Duplicate   bool          `json:"duplicate"`
	Elapsed     time.Duration `json:"elapsedNs"`

	// Game is the finished game, kept for export.
	Game *engine.Game `json:"-"`
}

// Summary tallies a completed arena run. Results are ordered by game index.
type Summary struct {
	White      string        `json:"white"`
	Black      string        `json:"black"`
	Games      int           `json:"games"`
	WhiteWins  int           `json:"whiteWins"`
	BlackWins  int           `json:"blackWins"`
	Draws      int           `json:"draws"`
	Unfinished int           `json:"unfinished"`
	Duplicates int           `json:"duplicates"`
	Elapsed    time.Duration `json:"elapsedNs"`
	Results    []GameResult  `json:"results"`
}

func (s *Summary) add(r GameResult) {
	switch r.Result {
	case "1-0":
		s.WhiteWins++
	case "0-1":
		s.BlackWins++
	case "1/2-1/2":
		s.Draws++
	default:
		s.Unfinished++
	}
	if r.Duplicate {
		s.Duplicates++
	}
}

// WriteJSON writes the summary as indented JSON.
func (s *Summary) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// Arena runs self-play games between two difficulty settings.
type Arena struct {
	cfg      config.ArenaConfig
	white    search.Difficulty
	black    search.Difficulty
	startFEN string
	logger   zerolog.Logger
}

// Option configures an Arena.
type Option func(*Arena)

// WithLogger sets the logger used for per-game results.
func WithLogger(l zerolog.Logger) Option {
	return func(a *Arena) {
		a.logger = l
	}
}

// WithPlayers sets the difficulty of each side.
func WithPlayers(white, black search.Difficulty) Option {
	return func(a *Arena) {
		a.white = white
		a.black = black
	}
}

// WithStartFEN starts every game from the given position.
func WithStartFEN(fen string) Option {
	return func(a *Arena) {
		a.startFEN = fen
	}
}

// New creates an arena from the arena settings. Both sides default to
// search.DefaultDifficulty.
func New(cfg config.ArenaConfig, opts ...Option) *Arena {
	a := &Arena{
		cfg:    cfg,
		white:  search.DefaultDifficulty,
		black:  search.DefaultDifficulty,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.cfg.Concurrency < 1 {
		a.cfg.Concurrency = 1
	}
	return a
}

// Run plays every configured game and returns the tally. Each worker owns
// the games it plays; no game is shared between goroutines. The first error
// (including cancellation of ctx) stops the run.
func (a *Arena) Run(ctx context.Context) (*Summary, error) {
	start, err := a.startPosition()
	if err != nil {
		return nil, err
	}

	began := time.Now()
	a.logger.Info().
		Int("games", a.cfg.Games).
		Int("concurrency", a.cfg.Concurrency).
		Str("white", a.white.String()).
		Str("black", a.black.String()).
		Msg("arena started")

	g, ctx := errgroup.WithContext(ctx)

	indexes := make(chan int)
	results := make(chan GameResult)

	g.Go(func() error {
		defer close(indexes)
		for i := 0; i < a.cfg.Games; i++ {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case indexes <- i:
			}
		}
		return nil
	})

	seen := hashing.NewThreadSafeDuplicateDetector(true)

	var wg sync.WaitGroup
	for i := 0; i < a.cfg.Concurrency; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			for index := range indexes {
				res, err := a.PlayGame(ctx, start.Clone(), index)
				if err != nil {
					return err
				}
				res.Duplicate = seen.CheckAndAdd(res.Game)
				select {
				case <-ctx.Done():
					return ctx.Err()
				case results <- res:
				}
			}
			return nil
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(results)
		return nil
	})

	summary := &Summary{
		White:   a.white.String(),
		Black:   a.black.String(),
		Results: make([]GameResult, a.cfg.Games),
	}
	for res := range results {
		summary.Results[res.Index] = res
		summary.Games++
		summary.add(res)
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary.Elapsed = time.Since(began)
	a.logger.Info().
		Int("white_wins", summary.WhiteWins).
		Int("black_wins", summary.BlackWins).
		Int("draws", summary.Draws).
		Int("unfinished", summary.Unfinished).
		Int("duplicates", summary.Duplicates).
		Dur("elapsed", summary.Elapsed).
		Msg("arena finished")

	return summary, nil
}

func (a *Arena) startPosition() (*engine.Game, error) {
	if a.startFEN == "" {
		return engine.NewGame(), nil
	}
	return engine.NewGameFromFEN(a.startFEN)
}

// PlayGame plays one game on g, which the caller must not share. The game
// opens with the configured number of random moves, seeded by the arena
// seed and the game index, and then both sides search until the game ends
// or reaches the ply limit.
func (a *Arena) PlayGame(ctx context.Context, g *engine.Game, index int) (GameResult, error) {
	began := time.Now()
	res := GameResult{ID: uuid.New(), Index: index, Game: g}

	rng := rand.New(rand.NewPCG(a.cfg.Seed, uint64(index)))
	for i := 0; i < a.cfg.OpeningPlies && !g.IsGameOver() && g.Ply() < a.cfg.MaxPlies; i++ {
		moves := engine.GenerateAllLegalMoves(g)
		if len(moves) == 0 {
			break
		}
		m := moves[rng.IntN(len(moves))]
		g.Apply(m.From, m.To, chess.Queen)
	}

	players := [2]*search.AI{
		chess.White: search.New(search.WithDifficulty(a.white), search.WithLogger(a.logger)),
		chess.Black: search.New(search.WithDifficulty(a.black), search.WithLogger(a.logger)),
	}

	for !g.IsGameOver() {
		if g.Ply() >= a.cfg.MaxPlies {
			res.Adjudicated = true
			break
		}
		if err := ctx.Err(); err != nil {
			return res, err
		}

		m, ok := players[g.SideToMove()].BestMove(g)
		if !ok || !g.Apply(m.From, m.To, chess.Queen) {
			break
		}
	}

	res.Result = g.Result()
	res.Status = g.StatusDescription()
	res.Plies = g.Ply()
	res.Elapsed = time.Since(began)

	a.logger.Info().
		Str("id", res.ID.String()).
		Int("index", index).
		Str("result", res.Result).
		Int("plies", res.Plies).
		Bool("adjudicated", res.Adjudicated).
		Dur("elapsed", res.Elapsed).
		Msg("game finished")

	return res, nil
}
