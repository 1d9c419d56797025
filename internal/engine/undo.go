package engine

import "github.com/lgbarn/chessai-go/internal/chess"

// Undo takes back the last applied move. It returns false when there is no
// move to undo.
//
// Placement, captures, the king cache and the side to move are reversed from
// the move itself. Castling rights, the en passant target, both clocks and
// the game-over flag come from the snapshot the move recorded, so the game
// is restored exactly.
func (g *Game) Undo() bool {
	n := len(g.history)
	if n == 0 {
		return false
	}

	move := g.history[n-1]
	g.history[n-1] = nil
	g.history = g.history[:n-1]
	colour := move.Piece.Colour

	// Move.Piece is the pawn for promotions, so this also demotes.
	g.board.Set(move.From, move.Piece)
	if move.EnPassant {
		g.board.Set(move.To, chess.NoPiece)
		g.board.Set(enPassantVictim(move.From, move.To), move.Captured)
	} else {
		g.board.Set(move.To, move.Captured)
	}

	if move.Castling {
		rookFrom, rookTo := castlingRookSquares(move.From, move.To)
		g.board.Set(rookFrom, g.board.Get(rookTo))
		g.board.Set(rookTo, chess.NoPiece)
	}

	if move.Piece.Type == chess.King {
		g.kings[colour] = move.From
	}

	if move.IsCapture() {
		if list := g.captured[colour]; len(list) > 0 {
			g.captured[colour] = list[:len(list)-1]
		}
	}

	g.toMove = colour
	g.restore(move.Before)
	return true
}
