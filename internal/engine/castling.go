package engine

import "github.com/lgbarn/chessai-go/internal/chess"

// Castling geometry on the back row.
const (
	kingStartCol      = 4
	kingsideRookCol   = 7
	queensideRookCol  = 0
	kingsideKingCol   = 6
	queensideKingCol  = 2
	kingsideRookDest  = 5
	queensideRookDest = 3
)

// canCastle checks a two-column king move: the right must be held, the king
// must be on its start square and not in check, the wing's rook must be on its
// corner, the squares between king and rook must be empty, and no square the
// king passes through (origin and destination included) may be attacked.
func canCastle(g *Game, colour chess.Colour, from, to chess.Square) bool {
	row := colour.BackRow()
	if from != chess.Sq(row, kingStartCol) || to.Row != row || abs(to.Col-from.Col) != 2 {
		return false
	}

	kingside := to.Col > from.Col
	rookCol := queensideRookCol
	if kingside {
		if !g.castling.Kingside(colour) {
			return false
		}
		rookCol = kingsideRookCol
	} else if !g.castling.Queenside(colour) {
		return false
	}

	if IsSquareAttacked(g, from, colour) {
		return false
	}

	if !g.board.Get(chess.Sq(row, rookCol)).Is(colour, chess.Rook) {
		return false
	}

	if !isPathClear(&g.board, from, chess.Sq(row, rookCol)) {
		return false
	}

	step := sign(to.Col - from.Col)
	for col := from.Col; col != to.Col+step; col += step {
		if IsSquareAttacked(g, chess.Sq(row, col), colour) {
			return false
		}
	}

	return true
}

// castlingRookSquares returns the rook's origin and destination for a
// castling king move from->to.
func castlingRookSquares(from, to chess.Square) (chess.Square, chess.Square) {
	if to.Col > from.Col {
		return chess.Sq(from.Row, kingsideRookCol), chess.Sq(from.Row, kingsideRookDest)
	}
	return chess.Sq(from.Row, queensideRookCol), chess.Sq(from.Row, queensideRookDest)
}

// isCastlingMove reports whether moving piece from->to is a castling move.
func isCastlingMove(piece chess.Piece, from, to chess.Square) bool {
	return piece.Type == chess.King && from.Row == to.Row && abs(to.Col-from.Col) == 2
}

// updateCastlingRights removes rights when a king moves, or when a rook
// leaves or is captured on its corner square.
func updateCastlingRights(g *Game, piece chess.Piece, from chess.Square, captured chess.Piece, to chess.Square) {
	switch piece.Type {
	case chess.King:
		g.castling.Clear(piece.Colour)
	case chess.Rook:
		clearRookCorner(g, piece.Colour, from)
	}
	if captured.Type == chess.Rook {
		clearRookCorner(g, captured.Colour, to)
	}
}

// clearRookCorner clears the castling right tied to a rook corner square.
func clearRookCorner(g *Game, colour chess.Colour, sq chess.Square) {
	if sq.Row != colour.BackRow() {
		return
	}
	switch sq.Col {
	case kingsideRookCol:
		g.castling.ClearKingside(colour)
	case queensideRookCol:
		g.castling.ClearQueenside(colour)
	}
}
