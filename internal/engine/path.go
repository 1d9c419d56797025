package engine

import "github.com/lgbarn/chessai-go/internal/chess"

// canPieceMove checks the movement geometry of a piece, ignoring whether the
// move would leave its own king attacked.
func canPieceMove(g *Game, piece chess.Piece, from, to chess.Square) bool {
	rowDiff := abs(to.Row - from.Row)
	colDiff := abs(to.Col - from.Col)

	switch piece.Type {
	case chess.Pawn:
		return canPawnMove(g, piece.Colour, from, to)

	case chess.Knight:
		return (colDiff == 1 && rowDiff == 2) || (colDiff == 2 && rowDiff == 1)

	case chess.Bishop:
		if colDiff != rowDiff {
			return false
		}
		return isPathClear(&g.board, from, to)

	case chess.Rook:
		if colDiff != 0 && rowDiff != 0 {
			return false
		}
		return isPathClear(&g.board, from, to)

	case chess.Queen:
		if colDiff == rowDiff || colDiff == 0 || rowDiff == 0 {
			return isPathClear(&g.board, from, to)
		}
		return false

	case chess.King:
		if colDiff <= 1 && rowDiff <= 1 {
			return true
		}
		return canCastle(g, piece.Colour, from, to)
	}

	return false
}

// isPathClear checks that every square strictly between from and to is empty.
// The squares must share a row, column or diagonal.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	rowDir := sign(to.Row - from.Row)
	colDir := sign(to.Col - from.Col)

	for sq := from.Offset(rowDir, colDir); sq != to; sq = sq.Offset(rowDir, colDir) {
		if !sq.Valid() {
			return false
		}
		if !board.IsEmpty(sq) {
			return false
		}
	}

	return true
}
