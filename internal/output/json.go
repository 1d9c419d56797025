package output

import (
	"strings"

	"github.com/lgbarn/chessai-go/internal/chess"
	"github.com/lgbarn/chessai-go/internal/config"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	ID         string            `json:"id,omitempty"`
	Tags       map[string]string `json:"tags"`
	Moves      []JSONMove        `json:"moves,omitempty"`
	Result     string            `json:"result"`
	Status     string            `json:"status"`
	PlyCount   int               `json:"plyCount"`
	InitialFEN string            `json:"initialFEN"`
	FinalFEN   string            `json:"finalFEN"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	Castling   bool   `json:"castling,omitempty"`
	EnPassant  bool   `json:"enPassant,omitempty"`
	FEN        string `json:"fen,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a record to JSON format. With cfg.OutputFEN set the
// game is replayed from its starting position to record the FEN after
// every move.
func GameToJSON(rec *Record, cfg *config.OutputConfig) *JSONGame {
	g := rec.Game
	start := startingPosition(g)

	jg := &JSONGame{
		Tags:       rec.exportTags(),
		Result:     g.Result(),
		Status:     g.StatusDescription(),
		PlyCount:   g.Ply(),
		InitialFEN: start.FEN(),
		FinalFEN:   g.FEN(),
	}
	if id, ok := jg.Tags["GameId"]; ok {
		jg.ID = id
	}

	history := g.History()
	jg.Moves = make([]JSONMove, 0, len(history))
	for _, move := range history {
		jm := convertMove(move)
		if cfg.OutputFEN && start.Apply(move.From, move.To, move.Promotion) {
			jm.FEN = start.FEN()
		}
		jg.Moves = append(jg.Moves, jm)
	}
	return jg
}

// convertMove converts a single history move.
func convertMove(move *chess.Move) JSONMove {
	jm := JSONMove{
		MoveNumber: move.Before.MoveNumber,
		Color:      strings.ToLower(move.Piece.Colour.String()),
		SAN:        move.SAN(),
		UCI:        move.UCI(),
		From:       move.From.String(),
		To:         move.To.String(),
		Piece:      pieceTypeName(move.Piece.Type),
		Castling:   move.Castling,
		EnPassant:  move.EnPassant,
	}
	if move.IsCapture() {
		jm.Captured = pieceTypeName(move.Captured.Type)
	}
	if move.IsPromotion() {
		jm.Promotion = pieceTypeName(move.Promotion)
	}
	return jm
}

// pieceTypeName returns the lowercase piece name, e.g. "knight".
func pieceTypeName(t chess.PieceType) string {
	return strings.ToLower(t.String())
}
