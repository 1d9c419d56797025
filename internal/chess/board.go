package chess

// Board is the 8x8 grid of optional pieces. It holds no legality logic.
type Board struct {
	// Squares[row][col], row 0 is rank 8.
	Squares [BoardSize][BoardSize]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// backRank is the initial piece order from the a-file to the h-file.
var backRank = [BoardSize]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()
	for col := 0; col < BoardSize; col++ {
		b.Squares[Black.BackRow()][col] = B(backRank[col])
		b.Squares[Black.PawnRow()][col] = B(Pawn)
		b.Squares[White.PawnRow()][col] = W(Pawn)
		b.Squares[White.BackRow()][col] = W(backRank[col])
	}
}

// Clear empties every square.
func (b *Board) Clear() {
	b.Squares = [BoardSize][BoardSize]Piece{}
}

// Get returns the piece on the square, or NoPiece when the square is off the board.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b.Squares[sq.Row][sq.Col]
}

// Set places a piece on the square. Off-board squares are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if !sq.Valid() {
		return
	}
	b.Squares[sq.Row][sq.Col] = piece
}

// IsEmpty returns true if the square holds no piece. Off-board squares count as empty.
func (b *Board) IsEmpty(sq Square) bool {
	return b.Get(sq).IsEmpty()
}

// Find returns every square holding the given piece, scanning row by row.
func (b *Board) Find(piece Piece) []Square {
	var squares []Square
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col] == piece {
				squares = append(squares, Square{Row: row, Col: col})
			}
		}
	}
	return squares
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}
