package search

import "github.com/lgbarn/chessai-go/internal/chess"

// pieceSquareTable is indexed [row][col] from White's point of view, row 0
// being rank 8. Black reads the vertically mirrored square.
type pieceSquareTable [chess.BoardSize][chess.BoardSize]float64

var pawnTable = pieceSquareTable{
	{0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0},
	{5.0, 5.0, 5.0, 5.0, 5.0, 5.0, 5.0, 5.0},
	{1.0, 1.0, 2.0, 3.0, 3.0, 2.0, 1.0, 1.0},
	{0.5, 0.5, 1.0, 2.5, 2.5, 1.0, 0.5, 0.5},
	{0.0, 0.0, 0.0, 2.0, 2.0, 0.0, 0.0, 0.0},
	{0.5, -0.5, -1.0, 0.0, 0.0, -1.0, -0.5, 0.5},
	{0.5, 1.0, 1.0, -2.0, -2.0, 1.0, 1.0, 0.5},
	{0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0},
}

var knightTable = pieceSquareTable{
	{-5.0, -4.0, -3.0, -3.0, -3.0, -3.0, -4.0, -5.0},
	{-4.0, -2.0, 0.0, 0.0, 0.0, 0.0, -2.0, -4.0},
	{-3.0, 0.0, 1.0, 1.5, 1.5, 1.0, 0.0, -3.0},
	{-3.0, 0.5, 1.5, 2.0, 2.0, 1.5, 0.5, -3.0},
	{-3.0, 0.0, 1.5, 2.0, 2.0, 1.5, 0.0, -3.0},
	{-3.0, 0.5, 1.0, 1.5, 1.5, 1.0, 0.5, -3.0},
	{-4.0, -2.0, 0.0, 0.5, 0.5, 0.0, -2.0, -4.0},
	{-5.0, -4.0, -3.0, -3.0, -3.0, -3.0, -4.0, -5.0},
}

var bishopTable = pieceSquareTable{
	{-2.0, -1.0, -1.0, -1.0, -1.0, -1.0, -1.0, -2.0},
	{-1.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, -1.0},
	{-1.0, 0.0, 0.5, 1.0, 1.0, 0.5, 0.0, -1.0},
	{-1.0, 0.5, 0.5, 1.0, 1.0, 0.5, 0.5, -1.0},
	{-1.0, 0.0, 1.0, 1.0, 1.0, 1.0, 0.0, -1.0},
	{-1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, -1.0},
	{-1.0, 0.5, 0.0, 0.0, 0.0, 0.0, 0.5, -1.0},
	{-2.0, -1.0, -1.0, -1.0, -1.0, -1.0, -1.0, -2.0},
}

var rookTable = pieceSquareTable{
	{0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0},
	{0.5, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 0.5},
	{-0.5, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, -0.5},
	{-0.5, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, -0.5},
	{-0.5, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, -0.5},
	{-0.5, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, -0.5},
	{-0.5, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, -0.5},
	{0.0, 0.0, 0.0, 0.5, 0.5, 0.0, 0.0, 0.0},
}

var queenTable = pieceSquareTable{
	{-2.0, -1.0, -1.0, -0.5, -0.5, -1.0, -1.0, -2.0},
	{-1.0, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0, -1.0},
	{-1.0, 0.0, 0.5, 0.5, 0.5, 0.5, 0.0, -1.0},
	{-0.5, 0.0, 0.5, 0.5, 0.5, 0.5, 0.0, -0.5},
	{0.0, 0.0, 0.5, 0.5, 0.5, 0.5, 0.0, -0.5},
	{-1.0, 0.5, 0.5, 0.5, 0.5, 0.5, 0.0, -1.0},
	{-1.0, 0.0, 0.5, 0.0, 0.0, 0.0, 0.0, -1.0},
	{-2.0, -1.0, -1.0, -0.5, -0.5, -1.0, -1.0, -2.0},
}

var kingTable = pieceSquareTable{
	{-3.0, -4.0, -4.0, -5.0, -5.0, -4.0, -4.0, -3.0},
	{-3.0, -4.0, -4.0, -5.0, -5.0, -4.0, -4.0, -3.0},
	{-3.0, -4.0, -4.0, -5.0, -5.0, -4.0, -4.0, -3.0},
	{-3.0, -4.0, -4.0, -5.0, -5.0, -4.0, -4.0, -3.0},
	{-2.0, -3.0, -3.0, -4.0, -4.0, -3.0, -3.0, -2.0},
	{-1.0, -2.0, -2.0, -2.0, -2.0, -2.0, -2.0, -1.0},
	{2.0, 2.0, 0.0, 0.0, 0.0, 0.0, 2.0, 2.0},
	{2.0, 3.0, 1.0, 0.0, 0.0, 1.0, 3.0, 2.0},
}

// The king belongs in the centre once the heavy pieces are gone.
var kingEndgameTable = pieceSquareTable{
	{-5.0, -4.0, -3.0, -2.0, -2.0, -3.0, -4.0, -5.0},
	{-3.0, -2.0, -1.0, 0.0, 0.0, -1.0, -2.0, -3.0},
	{-3.0, -1.0, 2.0, 3.0, 3.0, 2.0, -1.0, -3.0},
	{-3.0, -1.0, 3.0, 4.0, 4.0, 3.0, -1.0, -3.0},
	{-3.0, -1.0, 3.0, 4.0, 4.0, 3.0, -1.0, -3.0},
	{-3.0, -1.0, 2.0, 3.0, 3.0, 2.0, -1.0, -3.0},
	{-3.0, -3.0, 0.0, 0.0, 0.0, 0.0, -3.0, -3.0},
	{-5.0, -3.0, -3.0, -3.0, -3.0, -3.0, -3.0, -5.0},
}

// pieceValues is the material value of each piece type.
var pieceValues = [...]float64{
	chess.NoPieceType: 0,
	chess.Pawn:        10,
	chess.Knight:      30,
	chess.Bishop:      30,
	chess.Rook:        50,
	chess.Queen:       90,
	chess.King:        900,
}

// tableFor returns the piece-square table for a piece type.
func tableFor(t chess.PieceType, endgame bool) *pieceSquareTable {
	switch t {
	case chess.Pawn:
		return &pawnTable
	case chess.Knight:
		return &knightTable
	case chess.Bishop:
		return &bishopTable
	case chess.Rook:
		return &rookTable
	case chess.Queen:
		return &queenTable
	case chess.King:
		if endgame {
			return &kingEndgameTable
		}
		return &kingTable
	}
	return nil
}
