// export.go - Writing finished games to the configured files
package main

import (
	"fmt"
	"os"

	"github.com/lgbarn/chessai-go/internal/chess"
	"github.com/lgbarn/chessai-go/internal/config"
	"github.com/lgbarn/chessai-go/internal/output"
)

// writeExports writes the records to every configured export file. The SVG
// diagram shows the final position of the last record.
func writeExports(cfg *config.OutputConfig, records []*output.Record) error {
	if len(records) == 0 {
		return nil
	}

	if cfg.PGNPath != "" {
		if err := writeGames(cfg.PGNPath, records, func(f *os.File) output.GameWriter {
			return output.NewPGNWriter(f, cfg)
		}); err != nil {
			return err
		}
	}

	if cfg.JSONPath != "" {
		if err := writeGames(cfg.JSONPath, records, func(f *os.File) output.GameWriter {
			return output.NewJSONWriter(f, cfg)
		}); err != nil {
			return err
		}
	}

	if cfg.SVGPath != "" {
		if err := writeDiagram(cfg, records[len(records)-1]); err != nil {
			return err
		}
	}
	return nil
}

func writeGames(path string, records []*output.Record, newWriter func(*os.File) output.GameWriter) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := newWriter(f)
	for _, rec := range records {
		if err := w.WriteGame(rec); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return w.Close()
}

func writeDiagram(cfg *config.OutputConfig, rec *output.Record) (err error) {
	f, err := os.Create(cfg.SVGPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", cfg.SVGPath, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	opts := output.SVGOptions{SquareSize: cfg.SVGSquareSize}
	if last := rec.Game.LastMove(); last != nil {
		opts.Highlight = []chess.Square{last.From, last.To}
	}
	board := rec.Game.Board()
	output.WriteSVG(f, &board, opts)
	return nil
}
