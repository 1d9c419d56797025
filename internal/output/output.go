// Package output exports games as PGN or JSON and positions as text or
// SVG diagrams.
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lgbarn/chessai-go/internal/chess"
	"github.com/lgbarn/chessai-go/internal/config"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	err           error
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a token, separating it from the previous one with a space
// or a line break if the line would grow too long.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			o.print("\n")
			o.lineLength = 0
		} else {
			o.print(" ")
			o.lineLength++
		}
	}

	o.print(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	o.print("\n")
	o.lineLength = 0
	o.needsSpace = false
}

// Err returns the first write error.
func (o *OutputWriter) Err() error {
	return o.err
}

func (o *OutputWriter) print(s string) {
	if o.err != nil {
		return
	}
	_, o.err = io.WriteString(o.w, s)
}

// OutputGame writes a record as PGN: tags, a blank line, the movetext and
// a blank line.
func OutputGame(rec *Record, cfg *config.OutputConfig, w io.Writer) error {
	if err := outputTags(rec, cfg, w); err != nil {
		return err
	}
	if cfg.TagFormat != config.NoTags {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	if err := outputMoves(rec, cfg, w); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

// outputTags writes the roster tags in order, then any others sorted by name.
func outputTags(rec *Record, cfg *config.OutputConfig, w io.Writer) error {
	if cfg.TagFormat == config.NoTags {
		return nil
	}

	tags := rec.exportTags()
	for _, tag := range sevenTagRoster {
		value := tags[tag]
		if value == "" {
			value = "?"
		}
		if _, err := fmt.Fprintf(w, "[%s \"%s\"]\n", tag, escapeTagValue(value)); err != nil {
			return err
		}
	}

	if cfg.TagFormat == config.SevenTagRoster {
		return nil
	}

	extra := make([]string, 0, len(tags))
	for tag := range tags {
		if !isSevenTagRosterTag(tag) {
			extra = append(extra, tag)
		}
	}
	sort.Strings(extra)
	for _, tag := range extra {
		if _, err := fmt.Fprintf(w, "[%s \"%s\"]\n", tag, escapeTagValue(tags[tag])); err != nil {
			return err
		}
	}
	return nil
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// outputMoves writes the numbered movetext followed by the result.
func outputMoves(rec *Record, cfg *config.OutputConfig, w io.Writer) error {
	ow := NewOutputWriter(w, int(cfg.MaxLineLength))

	for i, move := range rec.Game.History() {
		if cfg.KeepMoveNumbers {
			switch {
			case move.Piece.Colour == chess.White:
				ow.Write(fmt.Sprintf("%d.", move.Before.MoveNumber))
			case i == 0:
				ow.Write(fmt.Sprintf("%d...", move.Before.MoveNumber))
			}
		}
		ow.Write(formatMove(move, cfg))
	}

	if cfg.KeepResults {
		ow.Write(rec.Game.Result())
	}
	ow.NewLine()
	return ow.Err()
}

// formatMove renders a move in the configured notation.
func formatMove(move *chess.Move, cfg *config.OutputConfig) string {
	switch cfg.Format {
	case config.LALG, config.HALG:
		sep := ""
		if cfg.Format == config.HALG {
			sep = "-"
		}
		s := move.From.String() + sep + move.To.String()
		if move.IsPromotion() {
			s += string(move.Promotion.Letter())
		}
		return s
	case config.UCI:
		return move.UCI()
	default:
		if cfg.KeepChecks {
			return move.SAN()
		}
		return move.Notation
	}
}
