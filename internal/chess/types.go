// Package chess provides core chess types and operations.
package chess

import (
	"fmt"

	"github.com/lgbarn/chessai-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the row delta a pawn of this colour advances by.
// White starts on row 6 and moves towards row 0.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// BackRow returns the row holding this colour's pieces in the initial position.
func (c Colour) BackRow() int {
	if c == White {
		return 7
	}
	return 0
}

// PawnRow returns the row this colour's pawns start on.
func (c Colour) PawnRow() int {
	if c == White {
		return 6
	}
	return 1
}

// PromotionRow returns the far row on which this colour's pawns promote.
func (c Colour) PromotionRow() int {
	if c == White {
		return 0
	}
	return 7
}

// PieceType represents a chess piece type.
type PieceType int

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// PieceTypes lists every real piece type in ascending value order.
var PieceTypes = [...]PieceType{Pawn, Knight, Bishop, Rook, Queen, King}

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceTypeFromLetter converts a piece letter in either case to a piece type.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoPieceType
	}
}

// IsPromotionTarget reports whether a pawn may promote to this type.
func (p PieceType) IsPromotionTarget() bool {
	return p == Knight || p == Bishop || p == Rook || p == Queen
}

// Piece is a coloured piece. The zero value is NoPiece (an empty square).
type Piece struct {
	Colour Colour
	Type   PieceType
}

// NoPiece marks an empty square.
var NoPiece = Piece{}

// W creates a white piece.
func W(t PieceType) Piece {
	return Piece{Colour: White, Type: t}
}

// B creates a black piece.
func B(t PieceType) Piece {
	return Piece{Colour: Black, Type: t}
}

// IsEmpty returns true if this is NoPiece.
func (p Piece) IsEmpty() bool {
	return p.Type == NoPieceType
}

// Is reports whether the piece has the given colour and type.
func (p Piece) Is(c Colour, t PieceType) bool {
	return p.Type == t && p.Colour == c
}

// FENLetter returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) FENLetter() byte {
	if p.IsEmpty() {
		return '.'
	}
	letter := p.Type.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a short description such as "wN".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "--"
	}
	c := byte('w')
	if p.Colour == Black {
		c = 'b'
	}
	return string([]byte{c, p.Type.Letter()})
}

// Board dimensions.
const (
	BoardSize = 8

	FileBase = 'a'
	RankBase = '1'
)

// Square is a (row, column) board coordinate. Row 0 is rank 8 and
// column 0 is the a-file.
type Square struct {
	Row int
	Col int
}

// NoSquare is an out-of-range sentinel square.
var NoSquare = Square{Row: -1, Col: -1}

// Sq creates a square from row and column.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// Valid returns true if both coordinates lie on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square shifted by the given row and column deltas.
func (s Square) Offset(dRow, dCol int) Square {
	return Square{Row: s.Row + dRow, Col: s.Col + dCol}
}

// IsLight returns true if the square is a light square.
func (s Square) IsLight() bool {
	return (s.Row+s.Col)%2 == 0
}

// File returns the file letter ('a'-'h').
func (s Square) File() byte {
	return byte(FileBase + s.Col)
}

// Rank returns the rank digit ('1'-'8').
func (s Square) Rank() byte {
	return byte(RankBase + BoardSize - 1 - s.Row)
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{s.File(), s.Rank()})
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return NoSquare, fmt.Errorf("square %q: want two characters: %w", name, errors.ErrInvalidSquare)
	}
	file, rank := name[0], name[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("square %q: out of range: %w", name, errors.ErrInvalidSquare)
	}
	return Square{Row: BoardSize - 1 - int(rank-RankBase), Col: int(file - FileBase)}, nil
}

// MustSquare parses a square name and panics if it is invalid.
// Intended for constants and tests.
func MustSquare(name string) Square {
	s, err := ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return s
}

// MovePair represents a source-destination square pair for move generation.
type MovePair struct {
	From Square
	To   Square
}

// String returns the coordinate form of the pair, e.g. "e2e4".
func (m MovePair) String() string {
	return m.From.String() + m.To.String()
}
