package engine

import (
	"fmt"

	"github.com/lgbarn/chessai-go/internal/chess"
)

// Status classifies the position for the side to move.
type Status int

const (
	InProgress Status = iota
	Check
	Checkmate
	Stalemate
	DrawMaterial
	DrawFiftyMove
)

// String returns the string representation of a status.
func (s Status) String() string {
	names := []string{"InProgress", "Check", "Checkmate", "Stalemate", "DrawMaterial", "DrawFiftyMove"}
	if s >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// IsTerminal returns true for checkmate and every kind of draw.
func (s Status) IsTerminal() bool {
	switch s {
	case Checkmate, Stalemate, DrawMaterial, DrawFiftyMove:
		return true
	default:
		return false
	}
}

// IsDraw returns true for every kind of draw.
func (s Status) IsDraw() bool {
	return s.IsTerminal() && s != Checkmate
}

// Status computes the classification of the current position.
func (g *Game) Status() Status {
	inCheck := IsInCheck(g, g.toMove)
	noMoves := HasNoLegalMoves(g)

	switch {
	case inCheck && noMoves:
		return Checkmate
	case noMoves:
		return Stalemate
	case IsDrawByMaterial(g):
		return DrawMaterial
	case IsFiftyMoveDraw(g):
		return DrawFiftyMove
	case inCheck:
		return Check
	default:
		return InProgress
	}
}

// StatusDescription returns a human-readable description of the position.
func (g *Game) StatusDescription() string {
	switch g.Status() {
	case Checkmate:
		return fmt.Sprintf("%s wins by checkmate", g.toMove.Opposite())
	case Stalemate:
		return "Draw by stalemate"
	case DrawMaterial:
		return "Draw by insufficient material"
	case DrawFiftyMove:
		return "Draw by fifty-move rule"
	case Check:
		return fmt.Sprintf("%s is in check", g.toMove)
	default:
		return fmt.Sprintf("%s to move", g.toMove)
	}
}

// Result returns the PGN result string for the position: "1-0", "0-1",
// "1/2-1/2", or "*" while the game is undecided.
func (g *Game) Result() string {
	switch s := g.Status(); {
	case s == Checkmate && g.toMove == chess.Black:
		return "1-0"
	case s == Checkmate:
		return "0-1"
	case s.IsDraw():
		return "1/2-1/2"
	default:
		return "*"
	}
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(g *Game) bool {
	return IsInCheck(g, g.toMove) && HasNoLegalMoves(g)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(g *Game) bool {
	return !IsInCheck(g, g.toMove) && HasNoLegalMoves(g)
}

// IsFiftyMoveDraw returns true once a hundred plies have passed without a
// pawn move or capture.
func IsFiftyMoveDraw(g *Game) bool {
	return g.halfmoveClock >= FiftyMoveLimit
}
