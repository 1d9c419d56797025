package search

import (
	"github.com/lgbarn/chessai-go/internal/chess"
	"github.com/lgbarn/chessai-go/internal/engine"
)

// Scores are from White's point of view: positive favours White.
const (
	// MateScore is the value of a checkmate.
	MateScore = 9000.0

	// MobilityWeight is the bonus per legal move for the side to move.
	MobilityWeight = 0.1

	// CheckPenalty is charged against the side to move when it is in check.
	CheckPenalty = 5.0

	// EndgameHeavyPieces is the queen and rook count at or below which the
	// king uses the endgame table.
	EndgameHeavyPieces = 2
)

// Evaluate returns the static score of the position. A finished game scores
// ±MateScore for checkmate and 0 for a draw. Otherwise the score adds
// material, piece-square values, a mobility bonus for the side to move and a
// penalty if that side is in check.
func Evaluate(g *engine.Game) float64 {
	toMove := g.SideToMove()

	if g.IsGameOver() {
		if engine.IsCheckmate(g) {
			return -MateScore * colourSign(toMove)
		}
		return 0
	}

	board := g.Board()
	value := Material(&board)

	mobility := MobilityWeight * float64(engine.CountLegalMoves(g))
	value += mobility * colourSign(toMove)

	if g.IsInCheck(toMove) {
		value -= CheckPenalty * colourSign(toMove)
	}

	return value
}

// Material returns the material and piece-square score of a board.
func Material(board *chess.Board) float64 {
	endgame := isEndgame(board)

	var value float64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Get(chess.Sq(row, col))
			if piece.IsEmpty() {
				continue
			}
			value += pieceScore(piece, row, col, endgame)
		}
	}
	return value
}

// pieceScore is a piece's material plus positional value, signed by colour.
func pieceScore(piece chess.Piece, row, col int, endgame bool) float64 {
	table := tableFor(piece.Type, endgame)
	if piece.Colour == chess.Black {
		row = chess.BoardSize - 1 - row
	}
	return (pieceValues[piece.Type] + table[row][col]) * colourSign(piece.Colour)
}

// isEndgame reports whether few enough queens and rooks remain.
func isEndgame(board *chess.Board) bool {
	heavy := 0
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			switch board.Get(chess.Sq(row, col)).Type {
			case chess.Queen, chess.Rook:
				heavy++
			}
		}
	}
	return heavy <= EndgameHeavyPieces
}

func colourSign(c chess.Colour) float64 {
	if c == chess.White {
		return 1
	}
	return -1
}
