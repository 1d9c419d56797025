package engine

import "github.com/lgbarn/chessai-go/internal/chess"

// IsLegalMove returns true if the piece on from may move to to: the movement
// rule for its type holds and, after the move, its own king is not attacked.
// The piece need not belong to the side to move.
func IsLegalMove(g *Game, from, to chess.Square) bool {
	if !from.Valid() || !to.Valid() || from == to {
		return false
	}

	piece := g.board.Get(from)
	if piece.IsEmpty() {
		return false
	}

	target := g.board.Get(to)
	if !target.IsEmpty() && target.Colour == piece.Colour {
		return false
	}

	if !canPieceMove(g, piece, from, to) {
		return false
	}

	return !leavesKingAttacked(g, piece, from, to)
}

// leavesKingAttacked plays the move on the live board, tests the mover's king
// and puts every touched square, the king cache and the en passant target
// back before returning.
func leavesKingAttacked(g *Game, piece chess.Piece, from, to chess.Square) bool {
	colour := piece.Colour
	captured := g.board.Get(to)
	savedKing := g.kings[colour]
	savedEnPassant := g.enPassant

	victimSq := chess.NoSquare
	var victim chess.Piece
	if isEnPassantCapture(g, piece, from, to) {
		victimSq = enPassantVictim(from, to)
		victim = g.board.Get(victimSq)
	}

	defer func() {
		g.board.Set(from, piece)
		g.board.Set(to, captured)
		if victimSq.Valid() {
			g.board.Set(victimSq, victim)
		}
		g.kings[colour] = savedKing
		g.enPassant = savedEnPassant
	}()

	if victimSq.Valid() {
		g.board.Set(victimSq, chess.NoPiece)
	}
	g.board.Set(to, piece)
	g.board.Set(from, chess.NoPiece)
	if piece.Type == chess.King {
		g.kings[colour] = to
	}

	return IsInCheck(g, colour)
}
