package engine

import "github.com/lgbarn/chessai-go/internal/chess"

// canPawnMove checks pawn geometry: a single push onto an empty square, a
// double push from the starting row through two empty squares, or a
// diagonal step onto an enemy piece or the en passant target.
func canPawnMove(g *Game, colour chess.Colour, from, to chess.Square) bool {
	dir := colour.Forward()
	target := g.board.Get(to)

	if to.Col == from.Col {
		if to.Row == from.Row+dir {
			return target.IsEmpty()
		}
		if from.Row == colour.PawnRow() && to.Row == from.Row+2*dir {
			return target.IsEmpty() && g.board.IsEmpty(from.Offset(dir, 0))
		}
		return false
	}

	if abs(to.Col-from.Col) != 1 || to.Row != from.Row+dir {
		return false
	}
	if !target.IsEmpty() {
		return target.Colour != colour
	}
	return isEnPassantCapture(g, chess.Piece{Colour: colour, Type: chess.Pawn}, from, to)
}

// isEnPassantCapture reports whether moving piece from->to captures en passant:
// a pawn stepping diagonally onto the empty en passant target with an enemy
// pawn beside it.
func isEnPassantCapture(g *Game, piece chess.Piece, from, to chess.Square) bool {
	if piece.Type != chess.Pawn || !g.enPassant.Valid() || to != g.enPassant || from.Col == to.Col {
		return false
	}
	if !g.board.IsEmpty(to) {
		return false
	}
	return g.board.Get(enPassantVictim(from, to)).Is(piece.Colour.Opposite(), chess.Pawn)
}

// enPassantVictim returns the square of the pawn removed by an en passant
// capture: one row behind the target from the mover's point of view.
func enPassantVictim(from, to chess.Square) chess.Square {
	return chess.Sq(from.Row, to.Col)
}

// isPromotion reports whether a pawn move from->to reaches the far row.
func isPromotion(piece chess.Piece, to chess.Square) bool {
	return piece.Type == chess.Pawn && to.Row == piece.Colour.PromotionRow()
}
