package chess

// CastlingRights holds the four independent castling permissions.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights is the rights set of the initial position.
var AllCastlingRights = CastlingRights{true, true, true, true}

// Kingside reports the king-side right for a colour.
func (r CastlingRights) Kingside(c Colour) bool {
	if c == White {
		return r.WhiteKingside
	}
	return r.BlackKingside
}

// Queenside reports the queen-side right for a colour.
func (r CastlingRights) Queenside(c Colour) bool {
	if c == White {
		return r.WhiteQueenside
	}
	return r.BlackQueenside
}

// ClearKingside removes the king-side right for a colour.
func (r *CastlingRights) ClearKingside(c Colour) {
	if c == White {
		r.WhiteKingside = false
	} else {
		r.BlackKingside = false
	}
}

// ClearQueenside removes the queen-side right for a colour.
func (r *CastlingRights) ClearQueenside(c Colour) {
	if c == White {
		r.WhiteQueenside = false
	} else {
		r.BlackQueenside = false
	}
}

// Clear removes both rights for a colour.
func (r *CastlingRights) Clear(c Colour) {
	r.ClearKingside(c)
	r.ClearQueenside(c)
}

// String returns the FEN castling field ("KQkq", "-", ...).
func (r CastlingRights) String() string {
	var s []byte
	if r.WhiteKingside {
		s = append(s, 'K')
	}
	if r.WhiteQueenside {
		s = append(s, 'Q')
	}
	if r.BlackKingside {
		s = append(s, 'k')
	}
	if r.BlackQueenside {
		s = append(s, 'q')
	}
	if len(s) == 0 {
		return "-"
	}
	return string(s)
}

// Snapshot is the part of the game state that a move cannot be
// re-derived from on undo.
type Snapshot struct {
	Castling      CastlingRights
	EnPassant     Square // NoSquare when absent
	HalfmoveClock int
	MoveNumber    int
	GameOver      bool
}

// Move represents a single applied move with all associated data.
type Move struct {
	// The piece being moved.
	Piece Piece

	// Source and destination squares.
	From Square
	To   Square

	// The piece captured (NoPiece if no capture).
	Captured Piece

	// The piece type promoted to (NoPieceType if not a promotion).
	Promotion PieceType

	Castling  bool
	EnPassant bool

	// Whether this move gives check or checkmate.
	Check     bool
	Checkmate bool

	// The move text without check suffix (e.g., "Nf3", "exd5", "O-O").
	Notation string

	// State before the move was applied.
	Before Snapshot
}

// IsCapture returns true if this move is a capture.
func (m *Move) IsCapture() bool {
	return !m.Captured.IsEmpty()
}

// IsPromotion returns true if this move is a pawn promotion.
func (m *Move) IsPromotion() bool {
	return m.Promotion != NoPieceType
}

// Pair returns the move's source-destination pair.
func (m *Move) Pair() MovePair {
	return MovePair{From: m.From, To: m.To}
}

// SAN returns the notation with a "+" or "#" suffix.
func (m *Move) SAN() string {
	switch {
	case m.Checkmate:
		return m.Notation + "#"
	case m.Check:
		return m.Notation + "+"
	default:
		return m.Notation
	}
}

// UCI returns the long algebraic form, e.g. "e7e8q".
func (m *Move) UCI() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	return s
}
