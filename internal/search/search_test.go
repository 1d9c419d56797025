package search

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chessai-go/internal/chess"
	"github.com/lgbarn/chessai-go/internal/engine"
	"github.com/lgbarn/chessai-go/internal/errors"
)

func pair(from, to string) chess.MovePair {
	return chess.MovePair{From: chess.MustSquare(from), To: chess.MustSquare(to)}
}

func TestEvaluateInitialPosition(t *testing.T) {
	g := engine.NewGame()

	// Material and tables cancel; only White's 20 moves of mobility remain.
	assert.InDelta(t, 20*MobilityWeight, Evaluate(g), 1e-9)

	board := g.Board()
	assert.InDelta(t, 0, Material(&board), 1e-9)
}

func TestEvaluateSymmetry(t *testing.T) {
	white := engine.MustGameFromFEN("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	black := engine.MustGameFromFEN("4k3/4p3/8/8/8/8/8/4K3 b - - 0 1")

	wb, bb := white.Board(), black.Board()
	assert.InDelta(t, Material(&wb), -Material(&bb), 1e-9)
	assert.InDelta(t, Evaluate(white), -Evaluate(black), 1e-9)
}

func TestEvaluateMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want float64
	}{
		// Endgame king table: e1 -3, e8 mirrored -3; they cancel.
		{"bare kings", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", 0},
		// Pawn 10 + table[6][4] (-2.0).
		{"extra white pawn", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", 8},
		// Knight 30 + table[4][3] (2.0), negated for Black on d5.
		{"black knight d5", "4k3/8/8/3n4/8/8/8/4K3 w - - 0 1", -32},
		// Queen 90 + table[7][3] (-0.5).
		{"white queen d1", "4k3/8/8/8/8/8/8/3QK3 w - - 0 1", 89.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := engine.MustGameFromFEN(tt.fen).Board()
			assert.InDelta(t, tt.want, Material(&board), 1e-9)
		})
	}
}

func TestEvaluateTerminal(t *testing.T) {
	g := engine.NewGame()
	require.NoError(t, g.PlayAll("f3", "e5", "g4", "Qh4#"))
	require.True(t, g.IsGameOver())
	assert.Equal(t, MateScore, -Evaluate(g), "Black delivered mate")

	g = engine.MustGameFromFEN("4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	require.NoError(t, g.Play("Kxe2"))
	assert.Zero(t, Evaluate(g), "drawn game")
}

func TestEvaluateCheckPenalty(t *testing.T) {
	g := engine.MustGameFromFEN("4k3/8/8/8/8/8/8/4R1K1 b - - 0 1")
	board := g.Board()

	moves := float64(engine.CountLegalMoves(g))
	want := Material(&board) - moves*MobilityWeight + CheckPenalty
	assert.InDelta(t, want, Evaluate(g), 1e-9)
}

func TestIsEndgame(t *testing.T) {
	initial := engine.NewGame().Board()
	assert.False(t, isEndgame(&initial))

	rooks := engine.MustGameFromFEN("r3k3/8/8/8/8/8/8/R3K3 w - - 0 1").Board()
	assert.True(t, isEndgame(&rooks))

	three := engine.MustGameFromFEN("r3k3/8/8/8/8/8/8/R2QK3 w - - 0 1").Board()
	assert.False(t, isEndgame(&three))
}

func TestSearchDepthZeroIsEvaluate(t *testing.T) {
	g := engine.NewGame()
	assert.Equal(t, Evaluate(g), Search(g, 0, -RootWindow, RootWindow, true))
}

func TestSearchNoMoves(t *testing.T) {
	mated := engine.MustGameFromFEN("R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1")
	assert.Equal(t, MateScore, Search(mated, 3, -RootWindow, RootWindow, false))

	stalemate := engine.MustGameFromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	assert.Zero(t, Search(stalemate, 3, -RootWindow, RootWindow, false))

	_, ok := BestMove(stalemate, Easy)
	assert.False(t, ok)
}

func TestBestMoveFindsMate(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want chess.MovePair
	}{
		{"white back rank", "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", pair("a1", "a8")},
		{"black back rank", "r5k1/8/8/8/8/8/5PPP/6K1 b - - 0 1", pair("a8", "a1")},
		{"queen to the back rank", "6k1/5ppp/8/8/8/8/8/3Q2K1 w - - 0 1", pair("d1", "d8")},
	}

	for _, tt := range tests {
		for _, d := range []Difficulty{Easy, Medium} {
			t.Run(tt.name+"/"+d.String(), func(t *testing.T) {
				g := engine.MustGameFromFEN(tt.fen)
				got, ok := BestMove(g, d)
				require.True(t, ok)
				assert.Equal(t, tt.want, got)
			})
		}
	}
}

func TestBestMoveTakesHangingQueen(t *testing.T) {
	g := engine.MustGameFromFEN("4k3/8/8/3q4/8/8/3R4/4K3 w - - 0 1")
	got, ok := BestMove(g, Easy)
	require.True(t, ok)
	assert.Equal(t, pair("d2", "d5"), got)
}

func TestBestMoveIsLegal(t *testing.T) {
	fens := []string{
		engine.InitialFEN,
		"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b KQkq - 0 1",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			g := engine.MustGameFromFEN(fen)
			got, ok := New(WithDepth(1)).BestMove(g)
			require.True(t, ok)
			assert.Contains(t, engine.GenerateAllLegalMoves(g), got)
		})
	}
}

func TestSearchLeavesGameUnchanged(t *testing.T) {
	g := engine.NewGame()
	require.NoError(t, g.PlayAll("e4", "d5", "exd5", "c5"))

	fen := g.FEN()
	ply := g.Ply()
	last := *g.LastMove()
	board := g.Board()

	r := New(WithDifficulty(Easy)).Search(g)
	require.True(t, r.Found)

	assert.Equal(t, fen, g.FEN())
	assert.Equal(t, ply, g.Ply())
	assert.Equal(t, last, *g.LastMove())
	assert.Equal(t, board, g.Board())
	assert.Equal(t, chess.Sq(7, 4), g.KingSquare(chess.White))
	assert.Greater(t, r.Nodes, 0)
	assert.Equal(t, Easy.Depth(), r.Depth)
}

func TestSearchLogsStatistics(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	ai := New(WithDepth(1), WithLogger(logger))
	_, ok := ai.BestMove(engine.NewGame())
	require.True(t, ok)

	out := buf.String()
	assert.Contains(t, out, `"message":"search complete"`)
	assert.Contains(t, out, `"nodes":20`)
	assert.Contains(t, out, `"depth":1`)
}

func TestOptions(t *testing.T) {
	assert.Equal(t, Medium.Depth(), New().Depth())
	assert.Equal(t, 5, New(WithDepth(5)).Depth())
	assert.Equal(t, Medium.Depth(), New(WithDepth(0)).Depth(), "invalid depth ignored")
	assert.Equal(t, Hard.Depth(), New(WithDifficulty(Hard)).Depth())
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"easy", Easy, false},
		{"Medium", Medium, false},
		{" HARD ", Hard, false},
		{"", Medium, false},
		{"impossible", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDifficulty(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, errors.ErrInvalidDifficulty)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, 2, Easy.Depth())
	assert.Equal(t, 3, Medium.Depth())
	assert.Equal(t, 4, Hard.Depth())
	assert.Equal(t, "hard", Hard.String())
	assert.Equal(t, "depth-6", Difficulty(6).String())
}
