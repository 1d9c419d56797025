package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessai-go/internal/chess"
	"github.com/lgbarn/chessai-go/internal/errors"
)

// ParsedMove is a move resolved against a position.
type ParsedMove struct {
	From      chess.Square
	To        chess.Square
	Promotion chess.PieceType
}

// ParseMove resolves move text in the current position. It accepts
// coordinate notation ("e2e4", "e7e8n") and standard algebraic notation
// ("Nf3", "exd5", "O-O", "e8=Q+"). The move must be legal for the side to move.
func ParseMove(g *Game, text string) (ParsedMove, error) {
	san := strings.TrimRight(strings.TrimSpace(text), "+#!?")
	if san == "" {
		return ParsedMove{}, fmt.Errorf("empty move: %w", errors.ErrIllegalMove)
	}

	if m, ok := parseCoordinate(san); ok {
		if !IsLegalMove(g, m.From, m.To) || g.board.Get(m.From).Colour != g.toMove {
			return ParsedMove{}, fmt.Errorf("%s: %w", text, errors.ErrIllegalMove)
		}
		return m, nil
	}

	if strings.Trim(san, "0-") == "" {
		san = strings.ReplaceAll(san, "0", "O")
	}
	for _, pair := range GenerateAllLegalMoves(g) {
		promotions := []chess.PieceType{chess.NoPieceType}
		if isPromotion(g.board.Get(pair.From), pair.To) {
			promotions = []chess.PieceType{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}
		}
		for _, promo := range promotions {
			if Notation(g, pair.From, pair.To, promo) == san {
				return ParsedMove{From: pair.From, To: pair.To, Promotion: promo}, nil
			}
		}
	}

	return ParsedMove{}, fmt.Errorf("%s: %w", text, errors.ErrIllegalMove)
}

// parseCoordinate parses "e2e4" or "e7e8q".
func parseCoordinate(s string) (ParsedMove, bool) {
	if len(s) != 4 && len(s) != 5 {
		return ParsedMove{}, false
	}
	from, err := chess.ParseSquare(s[0:2])
	if err != nil {
		return ParsedMove{}, false
	}
	to, err := chess.ParseSquare(s[2:4])
	if err != nil {
		return ParsedMove{}, false
	}
	m := ParsedMove{From: from, To: to}
	if len(s) == 5 {
		m.Promotion = chess.PieceTypeFromLetter(s[4])
		if !m.Promotion.IsPromotionTarget() {
			return ParsedMove{}, false
		}
	}
	return m, true
}

// Play parses and applies a move, returning a *errors.MoveError on failure.
func (g *Game) Play(text string) error {
	m, err := ParseMove(g, text)
	if err == nil && !g.Apply(m.From, m.To, m.Promotion) {
		err = errors.ErrIllegalMove
	}
	if err != nil {
		return &errors.MoveError{
			Err:      err,
			Ply:      len(g.history) + 1,
			MoveText: text,
			FEN:      g.FEN(),
		}
	}
	return nil
}

// PlayAll plays a sequence of moves, stopping at the first failure.
func (g *Game) PlayAll(moves ...string) error {
	for _, m := range moves {
		if err := g.Play(m); err != nil {
			return err
		}
	}
	return nil
}
