package output

import (
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/chessai-go/internal/chess"
)

// BoardText renders the board as eight ranks of FEN letters, '.' for an
// empty square, with rank and file labels.
func BoardText(board *chess.Board) string {
	var sb strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		sb.WriteByte(chess.Sq(row, 0).Rank())
		for col := 0; col < chess.BoardSize; col++ {
			sb.WriteByte(' ')
			sb.WriteByte(board.Get(chess.Sq(row, col)).FENLetter())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

// Diagram colours.
const (
	lightSquare     = "#f0d9b5"
	darkSquare      = "#b58863"
	highlightSquare = "#cdd26a"
)

var pieceGlyphs = map[chess.PieceType][2]string{
	chess.King:   {"♔", "♚"},
	chess.Queen:  {"♕", "♛"},
	chess.Rook:   {"♖", "♜"},
	chess.Bishop: {"♗", "♝"},
	chess.Knight: {"♘", "♞"},
	chess.Pawn:   {"♙", "♟"},
}

// SVGOptions controls the SVG diagram.
type SVGOptions struct {
	// SquareSize is the side of one square in pixels.
	SquareSize int

	// Highlight lists squares drawn in the highlight colour, such as the
	// two squares of the last move.
	Highlight []chess.Square
}

// WriteSVG draws the board as an SVG image with White at the bottom.
func WriteSVG(w io.Writer, board *chess.Board, opts SVGOptions) {
	size := opts.SquareSize
	if size <= 0 {
		size = 60
	}
	highlighted := make(map[chess.Square]bool, len(opts.Highlight))
	for _, sq := range opts.Highlight {
		highlighted[sq] = true
	}

	side := size * chess.BoardSize
	canvas := svg.New(w)
	canvas.Start(side, side)

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Sq(row, col)
			fill := darkSquare
			switch {
			case highlighted[sq]:
				fill = highlightSquare
			case sq.IsLight():
				fill = lightSquare
			}
			x, y := col*size, row*size
			canvas.Rect(x, y, size, size, "fill:"+fill)

			piece := board.Get(sq)
			if piece.IsEmpty() {
				continue
			}
			canvas.Text(x+size/2, y+size*4/5, pieceGlyphs[piece.Type][piece.Colour],
				fmt.Sprintf("font-size:%dpx;text-anchor:middle", size*4/5))
		}
	}

	label := fmt.Sprintf("font-size:%dpx;font-family:sans-serif", max(size/6, 6))
	for i := 0; i < chess.BoardSize; i++ {
		canvas.Text(i*size+2, side-2, string(rune('a'+i)), label)
		canvas.Text(side-size/6-2, i*size+size/6+2, string(rune('8'-i)), label)
	}

	canvas.End()
}
