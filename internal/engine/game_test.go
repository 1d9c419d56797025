package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chessai-go/internal/chess"
)

// gameState compares every field of a game, including unexported ones.
var gameState = cmp.Options{
	cmp.AllowUnexported(Game{}),
	cmpopts.EquateEmpty(),
}

func sq(name string) chess.Square {
	return chess.MustSquare(name)
}

func mustPlay(t *testing.T, g *Game, moves ...string) {
	t.Helper()
	if err := g.PlayAll(moves...); err != nil {
		t.Fatalf("PlayAll(%v): %v", moves, err)
	}
}

// assertKingCache checks the cached king squares against the board.
func assertKingCache(t *testing.T, g *Game) {
	t.Helper()
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		if got := g.board.Get(g.kings[c]); !got.Is(c, chess.King) {
			t.Errorf("king cache for %s points at %s holding %v", c, g.kings[c], got)
		}
	}
}

func TestNewGame(t *testing.T) {
	g := NewGame()

	if g.SideToMove() != chess.White {
		t.Errorf("SideToMove() = %v, want White", g.SideToMove())
	}
	if g.CastlingRights() != chess.AllCastlingRights {
		t.Errorf("CastlingRights() = %v, want all", g.CastlingRights())
	}
	if _, ok := g.EnPassantTarget(); ok {
		t.Error("EnPassantTarget() set in initial position")
	}
	if g.MoveNumber() != 1 || g.HalfmoveClock() != 0 {
		t.Errorf("clocks = %d/%d, want 0/1", g.HalfmoveClock(), g.MoveNumber())
	}
	if g.IsInCheck(chess.White) || g.IsInCheck(chess.Black) {
		t.Error("a side is in check in the initial position")
	}
	if g.IsGameOver() {
		t.Error("IsGameOver() = true in initial position")
	}
	if n := CountLegalMoves(g); n != 20 {
		t.Errorf("CountLegalMoves() = %d, want 20", n)
	}
	if g.Status() != InProgress {
		t.Errorf("Status() = %v, want InProgress", g.Status())
	}
	if g.LastMove() != nil {
		t.Error("LastMove() != nil with empty history")
	}
	assertKingCache(t, g)
}

func TestApplyRejects(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		from, to  string
		promotion chess.PieceType
	}{
		{"empty origin", InitialFEN, "e4", "e5", chess.NoPieceType},
		{"wrong side", InitialFEN, "e7", "e5", chess.NoPieceType},
		{"illegal geometry", InitialFEN, "e2", "e5", chess.NoPieceType},
		{"own capture", InitialFEN, "d1", "d2", chess.NoPieceType},
		{"king promotion", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7", "a8", chess.King},
		{"pawn promotion", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7", "a8", chess.Pawn},
		{"pinned piece", "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1", "e2", "d3", chess.NoPieceType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := MustGameFromFEN(tt.fen)
			before := g.Clone()

			if g.Apply(sq(tt.from), sq(tt.to), tt.promotion) {
				t.Fatalf("Apply(%s, %s) = true, want false", tt.from, tt.to)
			}
			if diff := cmp.Diff(before, g, gameState); diff != "" {
				t.Errorf("rejected move changed the game (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplyMoveCoordinates(t *testing.T) {
	g := NewGame()

	if !g.ApplyMove(6, 4, 4, 4) {
		t.Fatal("ApplyMove(e2e4) = false")
	}
	if got := g.PieceAt(4, 4); got != chess.W(chess.Pawn) {
		t.Errorf("PieceAt(e4) = %v, want white pawn", got)
	}
	if ep, ok := g.EnPassantTarget(); !ok || ep != sq("e3") {
		t.Errorf("EnPassantTarget() = %v, %v, want e3", ep, ok)
	}
	if g.ApplyMove(6, 3, 4, 3) {
		t.Error("ApplyMove for White accepted on Black's turn")
	}
	if got := g.LegalDestinations(1, 4); len(got) != 2 {
		t.Errorf("LegalDestinations(e7) = %v, want 2 squares", got)
	}
	if got := g.LegalDestinations(6, 3); got != nil {
		t.Errorf("LegalDestinations(d2) = %v for side not to move, want nil", got)
	}
}

func TestScholarsMate(t *testing.T) {
	g := NewGame()
	mustPlay(t, g, "e4", "e5", "Bc4", "Nc6", "Qh5", "Nf6", "Qxf7#")

	if !g.IsGameOver() {
		t.Error("IsGameOver() = false after mate")
	}
	if g.Status() != Checkmate {
		t.Errorf("Status() = %v, want Checkmate", g.Status())
	}
	if g.Result() != "1-0" {
		t.Errorf("Result() = %q, want 1-0", g.Result())
	}
	if got := g.StatusDescription(); got != "White wins by checkmate" {
		t.Errorf("StatusDescription() = %q", got)
	}

	last := g.LastMove()
	if last.SAN() != "Qxf7#" || !last.Checkmate || !last.Check {
		t.Errorf("last move = %q check=%v mate=%v", last.SAN(), last.Check, last.Checkmate)
	}
	if got := g.Captured(chess.White); len(got) != 1 || got[0] != chess.B(chess.Pawn) {
		t.Errorf("Captured(White) = %v, want [bP]", got)
	}
	if g.MoveNumber() != 4 {
		t.Errorf("MoveNumber() = %d, want 4", g.MoveNumber())
	}

	if !g.Undo() {
		t.Fatal("Undo() = false")
	}
	if g.IsGameOver() {
		t.Error("IsGameOver() = true after undoing the mate")
	}
	if g.Status() != InProgress {
		t.Errorf("Status() after undo = %v, want InProgress", g.Status())
	}
}

func TestEnPassant(t *testing.T) {
	t.Run("capture immediately", func(t *testing.T) {
		g := NewGame()
		mustPlay(t, g, "e4", "a6", "e5", "d5")

		if ep, ok := g.EnPassantTarget(); !ok || ep != sq("d6") {
			t.Fatalf("EnPassantTarget() = %v, %v, want d6", ep, ok)
		}
		mustPlay(t, g, "exd6")

		last := g.LastMove()
		if !last.EnPassant || last.Captured != chess.B(chess.Pawn) {
			t.Errorf("last move EnPassant=%v Captured=%v", last.EnPassant, last.Captured)
		}
		if !g.board.IsEmpty(sq("d5")) {
			t.Errorf("d5 = %v, want empty after en passant", g.board.Get(sq("d5")))
		}
		if g.HalfmoveClock() != 0 {
			t.Errorf("HalfmoveClock() = %d, want 0", g.HalfmoveClock())
		}

		g.Undo()
		if g.board.Get(sq("d5")) != chess.B(chess.Pawn) || g.board.Get(sq("e5")) != chess.W(chess.Pawn) {
			t.Error("Undo() did not restore both pawns")
		}
		if ep, _ := g.EnPassantTarget(); ep != sq("d6") {
			t.Errorf("EnPassantTarget() after undo = %v, want d6", ep)
		}
	})

	t.Run("window closes after one ply", func(t *testing.T) {
		g := NewGame()
		mustPlay(t, g, "e4", "a6", "e5", "d5", "Nf3", "a5")

		if IsLegalMove(g, sq("e5"), sq("d6")) {
			t.Error("en passant still legal after the window closed")
		}
	})

	t.Run("no victim no capture", func(t *testing.T) {
		g := MustGameFromFEN("4k3/8/8/3P4/8/8/8/4K3 w - c6 0 1")
		if IsLegalMove(g, sq("d5"), sq("c6")) {
			t.Error("diagonal step onto an en passant square without a victim accepted")
		}
	})
}

func TestCastling(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		from, to string
		want     bool
	}{
		{"kingside", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1", "g1", true},
		{"queenside", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1", "c1", true},
		{"black kingside", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "e8", "g8", true},
		{"no right", "r3k2r/8/8/8/8/8/8/R3K2R w Qkq - 0 1", "e1", "g1", false},
		{"through attacked square", "r3k2r/8/8/8/8/8/5r2/R3K2R w KQkq - 0 1", "e1", "g1", false},
		{"other wing unaffected", "r3k2r/8/8/8/8/8/5r2/R3K2R w KQkq - 0 1", "e1", "c1", true},
		{"out of check", "r3k2r/8/8/8/8/8/4r3/R3K2R w KQkq - 0 1", "e1", "g1", false},
		{"path blocked", "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1", "e1", "c1", false},
		{"rook missing", "r3k2r/8/8/8/8/8/8/4K2R w KQkq - 0 1", "e1", "c1", false},
		{"b1 attacked is fine", "r3k2r/8/8/8/8/8/1r6/R3K2R w KQkq - 0 1", "e1", "c1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := MustGameFromFEN(tt.fen)
			if got := IsLegalMove(g, sq(tt.from), sq(tt.to)); got != tt.want {
				t.Errorf("IsLegalMove(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestCastlingMovesRook(t *testing.T) {
	g := MustGameFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	mustPlay(t, g, "O-O")

	if g.board.Get(sq("f1")) != chess.W(chess.Rook) || !g.board.IsEmpty(sq("h1")) {
		t.Error("kingside rook not moved to f1")
	}
	if g.KingSquare(chess.White) != sq("g1") {
		t.Errorf("KingSquare(White) = %v, want g1", g.KingSquare(chess.White))
	}
	if got := g.CastlingRights().String(); got != "kq" {
		t.Errorf("CastlingRights() = %q, want kq", got)
	}
	if g.LastMove().SAN() != "O-O" {
		t.Errorf("SAN = %q, want O-O", g.LastMove().SAN())
	}

	mustPlay(t, g, "O-O-O")
	if g.board.Get(sq("d8")) != chess.B(chess.Rook) || g.KingSquare(chess.Black) != sq("c8") {
		t.Error("queenside castling did not place king c8 and rook d8")
	}

	g.Undo()
	g.Undo()
	if diff := cmp.Diff(MustGameFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"), g, gameState); diff != "" {
		t.Errorf("undoing both castles (-want +got):\n%s", diff)
	}
}

func TestCastlingRightsUpdates(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves []string
		want  string
	}{
		{"king move", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", []string{"Kf1"}, "kq"},
		{"h rook move", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", []string{"Rh2"}, "Qkq"},
		{"a rook move", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", []string{"Rb1"}, "Kkq"},
		{"rook captured on corner", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", []string{"Rxa8+"}, "Kk"},
		{"rook returns", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", []string{"Rh2", "Rh7", "Rh1"}, "Qq"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := MustGameFromFEN(tt.fen)
			mustPlay(t, g, tt.moves...)
			if got := g.CastlingRights().String(); got != tt.want {
				t.Errorf("CastlingRights() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPromotion(t *testing.T) {
	tests := []struct {
		name      string
		promotion chess.PieceType
		wantSAN   string
		wantPiece chess.Piece
	}{
		{"default queen", chess.NoPieceType, "a8=Q+", chess.W(chess.Queen)},
		{"rook", chess.Rook, "a8=R+", chess.W(chess.Rook)},
		{"knight", chess.Knight, "a8=N", chess.W(chess.Knight)},
		{"bishop", chess.Bishop, "a8=B", chess.W(chess.Bishop)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := MustGameFromFEN("8/P7/8/8/8/8/8/k6K w - - 0 1")
			before := g.Clone()

			if !g.Apply(sq("a7"), sq("a8"), tt.promotion) {
				t.Fatal("Apply(a7, a8) = false")
			}
			if got := g.board.Get(sq("a8")); got != tt.wantPiece {
				t.Errorf("a8 = %v, want %v", got, tt.wantPiece)
			}
			if got := g.LastMove().SAN(); got != tt.wantSAN {
				t.Errorf("SAN = %q, want %q", got, tt.wantSAN)
			}

			g.Undo()
			if diff := cmp.Diff(before, g, gameState); diff != "" {
				t.Errorf("Undo() after promotion (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplyUndoRestoresExactly(t *testing.T) {
	moves := []string{
		"e4", "d5", "exd5", "c5", "dxc6", "Nf6", "cxb7", "e6",
		"bxa8=Q", "Be7", "Nf3", "O-O", "Qxb8", "Bb7", "Qxb7", "Qd5",
		"Ke2", "Qb5+",
	}

	g := NewGame()
	var states []*Game
	for _, m := range moves {
		states = append(states, g.Clone())
		mustPlay(t, g, m)
		assertKingCache(t, g)
	}

	for i := len(moves) - 1; i >= 0; i-- {
		if !g.Undo() {
			t.Fatalf("Undo() = false at ply %d", i+1)
		}
		if diff := cmp.Diff(states[i], g, gameState); diff != "" {
			t.Fatalf("state after undoing %s (-want +got):\n%s", moves[i], diff)
		}
		assertKingCache(t, g)
	}

	if g.Undo() {
		t.Error("Undo() = true with empty history")
	}
}

func TestLegalMovesNeverLeaveKingAttacked(t *testing.T) {
	fens := []string{
		InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			g := MustGameFromFEN(fen)
			mover := g.SideToMove()
			for _, m := range GenerateAllLegalMoves(g) {
				before := g.Clone()
				if !g.Apply(m.From, m.To, chess.Queen) {
					t.Fatalf("generated move %v rejected by Apply", m)
				}
				if IsInCheck(g, mover) {
					t.Errorf("%v leaves %s in check", m, mover)
				}
				assertKingCache(t, g)
				g.Undo()
				if diff := cmp.Diff(before, g, gameState); diff != "" {
					t.Fatalf("apply/undo of %v (-want +got):\n%s", m, diff)
				}
			}
		})
	}
}

func TestMoveCounts(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want int
	}{
		{"initial", InitialFEN, 20},
		{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 48},
		{"rook endgame", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := MustGameFromFEN(tt.fen)
			if got := CountLegalMoves(g); got != tt.want {
				t.Errorf("CountLegalMoves() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStalemate(t *testing.T) {
	g := MustGameFromFEN("7k/8/6K1/8/8/8/8/5Q2 w - - 0 1")
	mustPlay(t, g, "Qf7")

	if g.LastMove().Check {
		t.Error("stalemating move marked as check")
	}
	if !g.IsGameOver() {
		t.Error("IsGameOver() = false after stalemate")
	}
	if !IsStalemate(g) || IsCheckmate(g) {
		t.Errorf("IsStalemate=%v IsCheckmate=%v", IsStalemate(g), IsCheckmate(g))
	}
	if g.Status() != Stalemate || g.Result() != "1/2-1/2" {
		t.Errorf("Status()=%v Result()=%q", g.Status(), g.Result())
	}
}

func TestDrawByMaterialAfterCapture(t *testing.T) {
	g := MustGameFromFEN("4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	mustPlay(t, g, "Kxe2")

	if !g.IsGameOver() {
		t.Error("IsGameOver() = false with bare kings")
	}
	if g.Status() != DrawMaterial {
		t.Errorf("Status() = %v, want DrawMaterial", g.Status())
	}
	if got := g.StatusDescription(); got != "Draw by insufficient material" {
		t.Errorf("StatusDescription() = %q", got)
	}
}

func TestFiftyMoveRule(t *testing.T) {
	g := MustGameFromFEN("4k3/8/8/8/8/8/8/R3K1N1 w - - 0 1")
	cycle := []string{"Nf3", "Kd8", "Ng1", "Ke8"}

	for i := 0; i < FiftyMoveLimit; i++ {
		if g.IsGameOver() {
			t.Fatalf("game over after %d plies", i)
		}
		mustPlay(t, g, cycle[i%len(cycle)])
	}

	if g.HalfmoveClock() != FiftyMoveLimit {
		t.Errorf("HalfmoveClock() = %d, want %d", g.HalfmoveClock(), FiftyMoveLimit)
	}
	if !g.IsGameOver() || !IsFiftyMoveDraw(g) {
		t.Error("fifty-move draw not detected")
	}
	if g.Status() != DrawFiftyMove || g.Result() != "1/2-1/2" {
		t.Errorf("Status()=%v Result()=%q", g.Status(), g.Result())
	}

	g.Undo()
	if g.IsGameOver() || g.HalfmoveClock() != FiftyMoveLimit-1 {
		t.Errorf("after undo: over=%v clock=%d", g.IsGameOver(), g.HalfmoveClock())
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		fen      string
		want     Status
		terminal bool
		draw     bool
		desc     string
	}{
		{InitialFEN, InProgress, false, false, "White to move"},
		{"4k3/8/8/8/8/8/8/4K2R b - - 0 1", InProgress, false, false, "Black to move"},
		{"4k3/8/8/8/8/8/8/4R1K1 b - - 0 1", Check, false, false, "Black is in check"},
		{"R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", Checkmate, true, false, "White wins by checkmate"},
		{"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", Stalemate, true, true, "Draw by stalemate"},
		{"4k3/8/8/8/8/8/8/4KB2 w - - 0 1", DrawMaterial, true, true, "Draw by insufficient material"},
		{"4k3/8/8/8/8/8/8/R3K3 w - - 100 80", DrawFiftyMove, true, true, "Draw by fifty-move rule"},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			g := MustGameFromFEN(tt.fen)
			got := g.Status()
			if got != tt.want {
				t.Fatalf("Status() = %v, want %v", got, tt.want)
			}
			if got.IsTerminal() != tt.terminal || got.IsDraw() != tt.draw {
				t.Errorf("IsTerminal()=%v IsDraw()=%v", got.IsTerminal(), got.IsDraw())
			}
			if d := g.StatusDescription(); d != tt.desc {
				t.Errorf("StatusDescription() = %q, want %q", d, tt.desc)
			}
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGame()
	mustPlay(t, g, "e4", "d5", "exd5")

	c := g.Clone()
	mustPlay(t, c, "Qxd5")
	c.Undo()
	c.Undo()

	if g.Ply() != 3 || len(g.Captured(chess.White)) != 1 {
		t.Errorf("original changed: ply=%d captured=%v", g.Ply(), g.Captured(chess.White))
	}
	if g.board.Get(sq("d5")) != chess.W(chess.Pawn) {
		t.Error("original board changed through the clone")
	}
}

func TestReset(t *testing.T) {
	g := NewGame()
	mustPlay(t, g, "e4", "e5", "Ke2")
	g.Reset()

	if diff := cmp.Diff(NewGame(), g, gameState); diff != "" {
		t.Errorf("Reset() (-want +got):\n%s", diff)
	}
}
