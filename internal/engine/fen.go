package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chessai-go/internal/chess"
	"github.com/lgbarn/chessai-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewGameFromFEN creates a game from a FEN string. Missing trailing fields
// default to White to move, no castling, no en passant and clocks "0 1".
// The resulting game has an empty history.
func NewGameFromFEN(fen string) (*Game, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	g := &Game{
		toMove:     chess.White,
		enPassant:  chess.NoSquare,
		moveNumber: 1,
	}

	if err := parsePiecePositions(g, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(g, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(g, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(g, parts); err != nil {
		return nil, err
	}
	if err := parseClocks(g, parts); err != nil {
		return nil, err
	}

	return g, nil
}

// MustGameFromFEN is NewGameFromFEN for known-good positions; it panics on error.
func MustGameFromFEN(fen string) *Game {
	g, err := NewGameFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return g
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(g *Game, positions string) error {
	row, col := 0, 0
	kings := [2]int{}

	for _, c := range positions {
		switch {
		case c == '/':
			if col != chess.BoardSize {
				return fmt.Errorf("row %d has %d squares: %w", row+1, col, errors.ErrInvalidFEN)
			}
			row++
			col = 0
		case c >= '1' && c <= '8':
			col += int(c - '0')
		default:
			pieceType := chess.PieceTypeFromLetter(byte(c))
			if pieceType == chess.NoPieceType || c > unicode.MaxASCII {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			sq := chess.Sq(row, col)
			if !sq.Valid() {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			g.board.Set(sq, chess.Piece{Colour: colour, Type: pieceType})

			if pieceType == chess.King {
				g.kings[colour] = sq
				kings[colour]++
			}
			col++
		}
		if col > chess.BoardSize {
			return fmt.Errorf("row %d overflows: %w", row+1, errors.ErrInvalidFEN)
		}
	}

	if row != chess.BoardSize-1 || col != chess.BoardSize {
		return fmt.Errorf("placement does not cover 8 rows: %w", errors.ErrInvalidFEN)
	}
	if kings[chess.White] != 1 || kings[chess.Black] != 1 {
		return fmt.Errorf("need exactly one king per side: %w", errors.ErrInvalidFEN)
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(g *Game, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		g.toMove = chess.White
	case "b":
		g.toMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(g *Game, parts []string) error {
	g.castling = chess.CastlingRights{}
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			g.castling.WhiteKingside = true
		case 'Q':
			g.castling.WhiteQueenside = true
		case 'k':
			g.castling.BlackKingside = true
		case 'q':
			g.castling.BlackQueenside = true
		default:
			return fmt.Errorf("invalid castling field: %s: %w", parts[2], errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(g *Game, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(parts[3])
	if err != nil {
		return fmt.Errorf("en passant field: %v: %w", err, errors.ErrInvalidFEN)
	}
	g.enPassant = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(g *Game, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return fmt.Errorf("invalid halfmove clock: %s: %w", parts[4], errors.ErrInvalidFEN)
		}
		g.halfmoveClock = n
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid fullmove number: %s: %w", parts[5], errors.ErrInvalidFEN)
		}
		g.moveNumber = n
	}
	return nil
}

// FEN returns the FEN string of the current position.
func (g *Game) FEN() string {
	var sb strings.Builder

	writePiecePositions(&sb, &g.board)
	sb.WriteByte(' ')
	if g.toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(g.castling.String())
	sb.WriteByte(' ')
	sb.WriteString(g.enPassant.String())
	fmt.Fprintf(&sb, " %d %d", g.halfmoveClock, g.moveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Get(chess.Sq(row, col))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.FENLetter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}
