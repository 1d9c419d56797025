// Package engine provides chess move validation, game state and move execution.
package engine

import "github.com/lgbarn/chessai-go/internal/chess"

// FiftyMoveLimit is the half-move clock value at which the game is drawn.
const FiftyMoveLimit = 100

// Game is the authoritative state of one chess game. It is mutated only
// through Apply and Undo and is not safe for concurrent use; use Clone to
// give another goroutine its own copy.
type Game struct {
	board chess.Board

	toMove        chess.Colour
	castling      chess.CastlingRights
	enPassant     chess.Square // NoSquare when absent
	halfmoveClock int
	moveNumber    int

	// Keep track of where the two kings are for check detection.
	kings [2]chess.Square

	history  []*chess.Move
	captured [2][]chess.Piece // indexed by capturing colour

	over bool
}

// NewGame creates a game in the standard initial position.
func NewGame() *Game {
	g := &Game{}
	g.Reset()
	return g
}

// Reset reinitializes the game to the standard starting position.
func (g *Game) Reset() {
	g.board.SetupInitialPosition()
	g.toMove = chess.White
	g.castling = chess.AllCastlingRights
	g.enPassant = chess.NoSquare
	g.halfmoveClock = 0
	g.moveNumber = 1
	g.kings[chess.White] = chess.Sq(chess.White.BackRow(), 4)
	g.kings[chess.Black] = chess.Sq(chess.Black.BackRow(), 4)
	g.history = nil
	g.captured = [2][]chess.Piece{}
	g.over = false
}

// Clone returns an independent deep copy of the game.
func (g *Game) Clone() *Game {
	c := *g
	c.history = append([]*chess.Move(nil), g.history...)
	for i := range g.captured {
		c.captured[i] = append([]chess.Piece(nil), g.captured[i]...)
	}
	return &c
}

// snapshot captures the state Undo cannot re-derive from the move itself.
func (g *Game) snapshot() chess.Snapshot {
	return chess.Snapshot{
		Castling:      g.castling,
		EnPassant:     g.enPassant,
		HalfmoveClock: g.halfmoveClock,
		MoveNumber:    g.moveNumber,
		GameOver:      g.over,
	}
}

// restore puts back a snapshot taken before a move.
func (g *Game) restore(s chess.Snapshot) {
	g.castling = s.Castling
	g.enPassant = s.EnPassant
	g.halfmoveClock = s.HalfmoveClock
	g.moveNumber = s.MoveNumber
	g.over = s.GameOver
}

// Board returns a copy of the current board.
func (g *Game) Board() chess.Board {
	return g.board
}

// PieceAt returns the piece at the given row and column, or NoPiece when
// the coordinates are off the board.
func (g *Game) PieceAt(row, col int) chess.Piece {
	return g.board.Get(chess.Sq(row, col))
}

// SideToMove returns the colour whose turn it is.
func (g *Game) SideToMove() chess.Colour {
	return g.toMove
}

// CastlingRights returns the current castling rights.
func (g *Game) CastlingRights() chess.CastlingRights {
	return g.castling
}

// EnPassantTarget returns the en passant target square and whether one is set.
func (g *Game) EnPassantTarget() (chess.Square, bool) {
	return g.enPassant, g.enPassant.Valid()
}

// HalfmoveClock returns the number of plies since the last pawn move or capture.
func (g *Game) HalfmoveClock() int {
	return g.halfmoveClock
}

// MoveNumber returns the full-move number.
func (g *Game) MoveNumber() int {
	return g.moveNumber
}

// KingSquare returns the cached king location for a colour.
func (g *Game) KingSquare(c chess.Colour) chess.Square {
	return g.kings[c]
}

// IsInCheck returns true if the given colour's king is attacked.
func (g *Game) IsInCheck(c chess.Colour) bool {
	return IsInCheck(g, c)
}

// IsGameOver reports whether the last applied move ended the game.
func (g *Game) IsGameOver() bool {
	return g.over
}

// History returns the applied moves, oldest first. The slice must not be modified.
func (g *Game) History() []*chess.Move {
	return g.history
}

// Ply returns the number of applied moves.
func (g *Game) Ply() int {
	return len(g.history)
}

// LastMove returns the most recent move, or nil if no moves have been played.
func (g *Game) LastMove() *chess.Move {
	if len(g.history) == 0 {
		return nil
	}
	return g.history[len(g.history)-1]
}

// Captured returns the pieces captured by the given colour, in capture order.
func (g *Game) Captured(c chess.Colour) []chess.Piece {
	return g.captured[c]
}

// ApplyMove applies a move given as board coordinates. The optional
// promotion type defaults to Queen. It returns false, leaving the game
// untouched, when the move is illegal or out of turn.
func (g *Game) ApplyMove(fromRow, fromCol, toRow, toCol int, promotion ...chess.PieceType) bool {
	promo := chess.Queen
	if len(promotion) > 0 {
		promo = promotion[0]
	}
	return g.Apply(chess.Sq(fromRow, fromCol), chess.Sq(toRow, toCol), promo)
}

// LegalDestinations returns every square the piece on (row, col) may legally
// move to. Only pieces of the side to move have destinations.
func (g *Game) LegalDestinations(row, col int) []chess.Square {
	return LegalDestinations(g, chess.Sq(row, col))
}
