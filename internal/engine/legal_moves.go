package engine

import "github.com/lgbarn/chessai-go/internal/chess"

// HasNoLegalMoves returns true if the side to move has no legal move. It
// probes every own piece against every square through IsLegalMove.
func HasNoLegalMoves(g *Game) bool {
	found := false
	forEachLegalMove(g, func(chess.MovePair) bool {
		found = true
		return false
	})
	return !found
}

// GenerateAllLegalMoves returns every legal move for the side to move,
// ordered by origin square and then destination square, row by row.
func GenerateAllLegalMoves(g *Game) []chess.MovePair {
	var moves []chess.MovePair
	forEachLegalMove(g, func(m chess.MovePair) bool {
		moves = append(moves, m)
		return true
	})
	return moves
}

// CountLegalMoves returns the number of legal moves for the side to move.
func CountLegalMoves(g *Game) int {
	n := 0
	forEachLegalMove(g, func(chess.MovePair) bool {
		n++
		return true
	})
	return n
}

// LegalDestinations returns the squares the piece on from may legally move
// to. Pieces of the side not to move have none.
func LegalDestinations(g *Game, from chess.Square) []chess.Square {
	piece := g.board.Get(from)
	if piece.IsEmpty() || piece.Colour != g.toMove {
		return nil
	}
	var squares []chess.Square
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			to := chess.Sq(row, col)
			if IsLegalMove(g, from, to) {
				squares = append(squares, to)
			}
		}
	}
	return squares
}

// forEachLegalMove calls fn for each legal move of the side to move until
// fn returns false.
func forEachLegalMove(g *Game, fn func(chess.MovePair) bool) {
	for fromRow := 0; fromRow < chess.BoardSize; fromRow++ {
		for fromCol := 0; fromCol < chess.BoardSize; fromCol++ {
			from := chess.Sq(fromRow, fromCol)
			piece := g.board.Get(from)
			if piece.IsEmpty() || piece.Colour != g.toMove {
				continue
			}
			for toRow := 0; toRow < chess.BoardSize; toRow++ {
				for toCol := 0; toCol < chess.BoardSize; toCol++ {
					to := chess.Sq(toRow, toCol)
					if !IsLegalMove(g, from, to) {
						continue
					}
					if !fn(chess.MovePair{From: from, To: to}) {
						return
					}
				}
			}
		}
	}
}
