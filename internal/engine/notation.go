package engine

import (
	"strings"

	"github.com/lgbarn/chessai-go/internal/chess"
)

// Notation returns the standard algebraic notation of the move from->to in
// the current position, before it is played. Check and mate suffixes are
// not included; see chess.Move.SAN.
func Notation(g *Game, from, to chess.Square, promotion chess.PieceType) string {
	piece := g.board.Get(from)
	if piece.IsEmpty() {
		return ""
	}

	if isCastlingMove(piece, from, to) {
		if to.Col > from.Col {
			return "O-O"
		}
		return "O-O-O"
	}

	var sb strings.Builder

	if piece.Type != chess.Pawn {
		sb.WriteByte(piece.Type.Letter())
		sb.WriteString(disambiguation(g, piece, from, to))
	}

	if !g.board.IsEmpty(to) || isEnPassantCapture(g, piece, from, to) {
		if piece.Type == chess.Pawn {
			sb.WriteByte(from.File())
		}
		sb.WriteByte('x')
	}

	sb.WriteString(to.String())

	if isPromotion(piece, to) {
		if promotion == chess.NoPieceType {
			promotion = chess.Queen
		}
		sb.WriteByte('=')
		sb.WriteByte(promotion.Letter())
	}

	return sb.String()
}

// disambiguation returns the origin qualifier needed when another piece of
// the same type and colour could also legally reach to: the file if that is
// unique, otherwise the rank if that is unique, otherwise both.
func disambiguation(g *Game, piece chess.Piece, from, to chess.Square) string {
	ambiguous, sameFile, sameRank := false, false, false

	for _, sq := range g.board.Find(piece) {
		if sq == from || !IsLegalMove(g, sq, to) {
			continue
		}
		ambiguous = true
		if sq.Col == from.Col {
			sameFile = true
		}
		if sq.Row == from.Row {
			sameRank = true
		}
	}

	switch {
	case !ambiguous:
		return ""
	case !sameFile:
		return string(from.File())
	case !sameRank:
		return string(from.Rank())
	default:
		return from.String()
	}
}
