// arena.go - Computer self-play mode
package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessai-go/internal/arena"
	"github.com/lgbarn/chessai-go/internal/config"
	"github.com/lgbarn/chessai-go/internal/output"
)

// runArena plays the configured self-play games, prints the JSON summary
// and exports every game.
func runArena(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	a := arena.New(*cfg.Arena,
		arena.WithPlayers(cfg.White.Difficulty, cfg.Black.Difficulty),
		arena.WithStartFEN(cfg.StartFEN),
		arena.WithLogger(logger),
	)

	summary, err := a.Run(ctx)
	if err != nil {
		return fmt.Errorf("arena: %w", err)
	}
	if err := summary.WriteJSON(cfg.OutputFile); err != nil {
		return err
	}

	white := "chessai (" + summary.White + ")"
	black := "chessai (" + summary.Black + ")"
	records := make([]*output.Record, 0, len(summary.Results))
	for _, res := range summary.Results {
		rec := output.NewRecord(res.Game, white, black)
		rec.ID = res.ID
		rec.SetTag("Event", "chessai arena")
		rec.SetTag("Round", fmt.Sprint(res.Index+1))
		if res.Adjudicated {
			rec.SetTag("Termination", "unterminated")
		}
		records = append(records, rec)
	}
	return writeExports(cfg.Output, records)
}
