// Package hashing provides position hashing and duplicate detection for
// chess games.
package hashing

import (
	"math/rand/v2"

	"github.com/lgbarn/chessai-go/internal/chess"
	"github.com/lgbarn/chessai-go/internal/engine"
)

// Zobrist keys. They are generated from a fixed seed so that hashes are
// stable across runs.
var (
	pieceKeys     [2][chess.King + 1][chess.BoardSize][chess.BoardSize]uint64
	blackToMove   uint64
	castlingKeys  [4]uint64
	enPassantKeys [chess.BoardSize]uint64
)

func init() {
	rng := rand.New(rand.NewPCG(0x9e3779b97f4a7c15, 0xbf58476d1ce4e5b9))
	for c := range pieceKeys {
		for t := range pieceKeys[c] {
			for r := range pieceKeys[c][t] {
				for f := range pieceKeys[c][t][r] {
					pieceKeys[c][t][r][f] = rng.Uint64()
				}
			}
		}
	}
	blackToMove = rng.Uint64()
	for i := range castlingKeys {
		castlingKeys[i] = rng.Uint64()
	}
	for i := range enPassantKeys {
		enPassantKeys[i] = rng.Uint64()
	}
}

// BoardHash hashes piece placement only.
func BoardHash(board *chess.Board) uint64 {
	var hash uint64
	for r := 0; r < chess.BoardSize; r++ {
		for f := 0; f < chess.BoardSize; f++ {
			p := board.Squares[r][f]
			if p.IsEmpty() {
				continue
			}
			hash ^= pieceKeys[p.Colour][p.Type][r][f]
		}
	}
	return hash
}

// PositionHash returns the Zobrist hash of the game's current position:
// placement, side to move, castling rights and en passant file.
func PositionHash(g *engine.Game) uint64 {
	board := g.Board()
	hash := BoardHash(&board)

	if g.SideToMove() == chess.Black {
		hash ^= blackToMove
	}

	rights := g.CastlingRights()
	for i, ok := range [4]bool{rights.WhiteKingside, rights.WhiteQueenside, rights.BlackKingside, rights.BlackQueenside} {
		if ok {
			hash ^= castlingKeys[i]
		}
	}

	if ep, ok := g.EnPassantTarget(); ok {
		hash ^= enPassantKeys[ep.Col]
	}
	return hash
}

// MoveSequenceHash hashes the moves played so far in UCI form.
func MoveSequenceHash(g *engine.Game) uint64 {
	var hash uint64
	const multiplier = 31
	for _, m := range g.History() {
		for _, c := range m.UCI() {
			hash = hash*multiplier + uint64(c)
		}
		hash = hash*multiplier + ' '
	}
	return hash
}
