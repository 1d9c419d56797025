// play.go - Interactive game loop on the input and output streams
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessai-go/internal/chess"
	"github.com/lgbarn/chessai-go/internal/config"
	"github.com/lgbarn/chessai-go/internal/engine"
	"github.com/lgbarn/chessai-go/internal/errors"
	"github.com/lgbarn/chessai-go/internal/output"
	"github.com/lgbarn/chessai-go/internal/search"
)

// Session is one game between the configured players.
type Session struct {
	cfg    *config.Config
	game   *engine.Game
	ais    [2]*search.AI
	in     *bufio.Scanner
	out    io.Writer
	logger zerolog.Logger
}

// NewSession sets up the starting position and a search per side.
func NewSession(cfg *config.Config, logger zerolog.Logger) (*Session, error) {
	g, err := cfg.NewGame()
	if err != nil {
		return nil, err
	}

	s := &Session{
		cfg:    cfg,
		game:   g,
		in:     bufio.NewScanner(cfg.Input),
		out:    cfg.OutputFile,
		logger: logger,
	}
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		s.ais[c] = search.New(
			search.WithDifficulty(cfg.Player(c).Difficulty),
			search.WithLogger(logger.With().Str("player", c.String()).Logger()),
		)
	}
	return s, nil
}

// Game returns the game being played.
func (s *Session) Game() *engine.Game {
	return s.game
}

// Record returns the game with its export metadata.
func (s *Session) Record() *output.Record {
	return output.NewRecord(s.game,
		s.cfg.White.DisplayName(),
		s.cfg.Black.DisplayName())
}

// Run plays until the game ends, the input is exhausted, the user quits or
// ctx is cancelled. Computer-only games stop at the configured ply limit.
func (s *Session) Run(ctx context.Context) error {
	if s.humanPlays() {
		s.showBoard()
	}

	for !s.game.IsGameOver() {
		if err := ctx.Err(); err != nil {
			return err
		}

		if s.cfg.Player(s.game.SideToMove()).Kind == config.Computer {
			if !s.humanPlays() && s.game.Ply() >= s.cfg.Arena.MaxPlies {
				fmt.Fprintf(s.out, "Stopped after %d plies.\n", s.game.Ply())
				return nil
			}
			if !s.computerMove() {
				break
			}
			continue
		}

		fmt.Fprintf(s.out, "%s> ", s.game.StatusDescription())
		if !s.in.Scan() {
			fmt.Fprintln(s.out)
			return s.in.Err()
		}
		if quit := s.command(strings.TrimSpace(s.in.Text())); quit {
			return nil
		}
	}

	s.showBoard()
	fmt.Fprintf(s.out, "%s. Result: %s\n", s.game.StatusDescription(), s.game.Result())
	return nil
}

func (s *Session) humanPlays() bool {
	return s.cfg.White.Kind == config.Human || s.cfg.Black.Kind == config.Human
}

// computerMove searches and plays a move for the side to move.
func (s *Session) computerMove() bool {
	side := s.game.SideToMove()
	r := s.ais[side].Search(s.game)
	if !r.Found || !s.game.Apply(r.Move.From, r.Move.To, chess.Queen) {
		return false
	}

	last := s.game.LastMove()
	fmt.Fprintf(s.out, "%s plays %s\n", s.cfg.Player(side).DisplayName(), last.SAN())
	s.logger.Info().
		Int("ply", s.game.Ply()).
		Str("move", last.SAN()).
		Float64("score", r.Score).
		Int("nodes", r.Nodes).
		Msg("computer move")

	if s.humanPlays() {
		s.showBoard()
	}
	return true
}

// command handles one line of input and reports whether the user quit.
func (s *Session) command(line string) bool {
	switch strings.ToLower(line) {
	case "":
	case "quit", "exit", "q":
		return true
	case "help", "?":
		fmt.Fprintln(s.out, "Enter a move (e2e4, e7e8q, Nf3, O-O) or one of: undo, board, fen, moves, hint, quit")
	case "board":
		s.showBoard()
	case "fen":
		fmt.Fprintln(s.out, s.game.FEN())
	case "moves":
		fmt.Fprintln(s.out, strings.Join(s.legalMoves(), " "))
	case "hint":
		s.hint()
	case "undo":
		s.undo()
	default:
		if err := s.game.Play(line); err != nil {
			fmt.Fprintf(s.out, "%v\n", err)
			s.logger.Debug().Err(err).Msg("move rejected")
			return false
		}
		fmt.Fprintf(s.out, "You play %s\n", s.game.LastMove().SAN())
	}
	return false
}

func (s *Session) legalMoves() []string {
	moves := engine.GenerateAllLegalMoves(s.game)
	names := make([]string, 0, len(moves))
	for _, m := range moves {
		names = append(names, engine.Notation(s.game, m.From, m.To, chess.Queen))
	}
	return names
}

func (s *Session) hint() {
	m, ok := s.ais[s.game.SideToMove()].BestMove(s.game)
	if !ok {
		fmt.Fprintln(s.out, "No legal moves.")
		return
	}
	fmt.Fprintf(s.out, "Hint: %s\n", engine.Notation(s.game, m.From, m.To, chess.Queen))
}

// undo takes back the last human move, together with the computer's reply
// if there was one.
func (s *Session) undo() {
	if !s.game.Undo() {
		fmt.Fprintf(s.out, "%v\n", errors.ErrNoHistory)
		return
	}
	for s.cfg.Player(s.game.SideToMove()).Kind == config.Computer && s.game.Undo() {
	}
	fmt.Fprintf(s.out, "Undone. %s\n", s.game.StatusDescription())
}

func (s *Session) showBoard() {
	board := s.game.Board()
	fmt.Fprint(s.out, output.BoardText(&board))
}
