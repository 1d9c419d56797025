package engine

import "github.com/lgbarn/chessai-go/internal/chess"

// IsDrawByMaterial returns true if neither side has mating material.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (bishops on the same square colour)
func IsDrawByMaterial(g *Game) bool {
	var minors [2][]chess.PieceType
	var bishopOnLight [2]bool

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Sq(row, col)
			piece := g.board.Get(sq)

			switch piece.Type {
			case chess.NoPieceType, chess.King:
				continue
			case chess.Pawn, chess.Rook, chess.Queen:
				// Any pawn, rook, or queen means sufficient material
				return false
			case chess.Bishop:
				bishopOnLight[piece.Colour] = sq.IsLight()
			}

			minors[piece.Colour] = append(minors[piece.Colour], piece.Type)
			if len(minors[piece.Colour]) > 1 {
				return false
			}
		}
	}

	white, black := minors[chess.White], minors[chess.Black]

	switch {
	case len(white) == 0 && len(black) == 0:
		return true
	case len(white) == 0 || len(black) == 0:
		// A lone knight or bishop cannot mate.
		return true
	default:
		return white[0] == chess.Bishop && black[0] == chess.Bishop &&
			bishopOnLight[chess.White] == bishopOnLight[chess.Black]
	}
}
