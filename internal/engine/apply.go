package engine

import "github.com/lgbarn/chessai-go/internal/chess"

// Apply plays the piece on from to to. A promotion type of NoPieceType
// promotes to a Queen. Apply returns false and leaves the game untouched if
// from is empty, the piece is not the side to move's, the promotion type is
// not a valid target, or the move is illegal.
//
// The game is not blocked once over: callers check IsGameOver after every
// apply.
func (g *Game) Apply(from, to chess.Square, promotion chess.PieceType) bool {
	piece := g.board.Get(from)
	if piece.IsEmpty() || piece.Colour != g.toMove {
		return false
	}
	if promotion == chess.NoPieceType {
		promotion = chess.Queen
	}
	if !promotion.IsPromotionTarget() {
		return false
	}
	if !IsLegalMove(g, from, to) {
		return false
	}

	colour := piece.Colour
	move := &chess.Move{
		Piece:    piece,
		From:     from,
		To:       to,
		Before:   g.snapshot(),
		Notation: Notation(g, from, to, promotion),
	}

	// Capture bookkeeping
	captured := g.board.Get(to)
	if isEnPassantCapture(g, piece, from, to) {
		victimSq := enPassantVictim(from, to)
		captured = g.board.Get(victimSq)
		g.board.Set(victimSq, chess.NoPiece)
		move.EnPassant = true
	}
	if !captured.IsEmpty() {
		move.Captured = captured
		g.captured[colour] = append(g.captured[colour], captured)
	}

	// Only a fresh double push leaves an en passant target behind
	g.enPassant = chess.NoSquare
	if piece.Type == chess.Pawn && abs(to.Row-from.Row) == 2 {
		g.enPassant = from.Offset(colour.Forward(), 0)
	}

	if isCastlingMove(piece, from, to) {
		rookFrom, rookTo := castlingRookSquares(from, to)
		g.board.Set(rookTo, g.board.Get(rookFrom))
		g.board.Set(rookFrom, chess.NoPiece)
		move.Castling = true
	}

	if piece.Type == chess.King {
		g.kings[colour] = to
	}

	g.board.Set(from, chess.NoPiece)
	if isPromotion(piece, to) {
		g.board.Set(to, chess.Piece{Colour: colour, Type: promotion})
		move.Promotion = promotion
	} else {
		g.board.Set(to, piece)
	}

	updateCastlingRights(g, piece, from, captured, to)

	if piece.Type == chess.Pawn || !captured.IsEmpty() {
		g.halfmoveClock = 0
	} else {
		g.halfmoveClock++
	}

	g.toMove = colour.Opposite()

	noMoves := HasNoLegalMoves(g)
	if IsInCheck(g, g.toMove) {
		move.Check = true
		if noMoves {
			move.Checkmate = true
			g.over = true
		}
	} else if noMoves {
		g.over = true
	}
	if IsDrawByMaterial(g) || IsFiftyMoveDraw(g) {
		g.over = true
	}

	if colour == chess.Black {
		g.moveNumber++
	}

	g.history = append(g.history, move)
	return true
}
