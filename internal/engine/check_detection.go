package engine

import "github.com/lgbarn/chessai-go/internal/chess"

var (
	knightOffsets   = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets     = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs    = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs    = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	pawnCaptureCols = [2]int{-1, 1}
)

// IsInCheck returns true if the given colour's king is in check.
func IsInCheck(g *Game, colour chess.Colour) bool {
	king := g.kings[colour]

	// If king position not tracked, search for it
	if !king.Valid() || !g.board.Get(king).Is(colour, chess.King) {
		king = findKing(&g.board, colour)
		if !king.Valid() {
			return false // No king found
		}
	}

	return IsSquareAttacked(g, king, colour)
}

// findKing finds the king of the given colour on the board.
func findKing(board *chess.Board, colour chess.Colour) chess.Square {
	if squares := board.Find(chess.Piece{Colour: colour, Type: chess.King}); len(squares) > 0 {
		return squares[0]
	}
	return chess.NoSquare
}

// IsSquareAttacked returns true if a piece of the colour opposing defending
// attacks the square. It is a geometric scan of the board and never
// consults move legality.
func IsSquareAttacked(g *Game, sq chess.Square, defending chess.Colour) bool {
	board := &g.board
	attacker := defending.Opposite()

	// A pawn attacks diagonally forward, so look one row behind the
	// square from the attacker's point of view.
	pawn := chess.Piece{Colour: attacker, Type: chess.Pawn}
	for _, dc := range pawnCaptureCols {
		if board.Get(sq.Offset(-attacker.Forward(), dc)) == pawn {
			return true
		}
	}

	knight := chess.Piece{Colour: attacker, Type: chess.Knight}
	for _, off := range knightOffsets {
		if board.Get(sq.Offset(off[0], off[1])) == knight {
			return true
		}
	}

	king := chess.Piece{Colour: attacker, Type: chess.King}
	for _, off := range kingOffsets {
		if board.Get(sq.Offset(off[0], off[1])) == king {
			return true
		}
	}

	queen := chess.Piece{Colour: attacker, Type: chess.Queen}
	bishop := chess.Piece{Colour: attacker, Type: chess.Bishop}
	for _, dir := range diagonalDirs {
		if p := firstPieceOnRay(board, sq, dir); p == bishop || p == queen {
			return true
		}
	}

	rook := chess.Piece{Colour: attacker, Type: chess.Rook}
	for _, dir := range straightDirs {
		if p := firstPieceOnRay(board, sq, dir); p == rook || p == queen {
			return true
		}
	}

	return false
}

// firstPieceOnRay walks from sq (exclusive) in direction dir and returns the
// first occupant, or NoPiece if the ray leaves the board.
func firstPieceOnRay(board *chess.Board, sq chess.Square, dir [2]int) chess.Piece {
	for s := sq.Offset(dir[0], dir[1]); s.Valid(); s = s.Offset(dir[0], dir[1]) {
		if p := board.Get(s); !p.IsEmpty() {
			return p
		}
	}
	return chess.NoPiece
}
