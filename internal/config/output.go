package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessai-go/internal/errors"
)

// OutputFormat is the notation used for exported moves.
type OutputFormat int

const (
	SAN  OutputFormat = iota // Standard Algebraic Notation
	LALG                     // Long algebraic (e2e4)
	HALG                     // Hyphenated long algebraic (e2-e4)
	UCI                      // UCI format (e7e8q)
)

// ParseOutputFormat converts a format name to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "san", "":
		return SAN, nil
	case "lalg":
		return LALG, nil
	case "halg":
		return HALG, nil
	case "uci":
		return UCI, nil
	default:
		return SAN, fmt.Errorf("output format %q: %w", s, errors.ErrInvalidConfig)
	}
}

// TagOutputForm specifies which tags to output.
type TagOutputForm int

const (
	AllTags        TagOutputForm = 0
	SevenTagRoster TagOutputForm = 1
	NoTags         TagOutputForm = 2
)

// OutputConfig holds settings related to exporting finished games.
type OutputConfig struct {
	// Format specifies the move notation for PGN output
	Format OutputFormat

	// MaxLineLength is the maximum line length for PGN output
	MaxLineLength uint

	// TagFormat specifies which tags to output (AllTags, SevenTagRoster, NoTags)
	TagFormat TagOutputForm

	// KeepMoveNumbers controls whether move numbers are included
	KeepMoveNumbers bool

	// KeepResults controls whether game results are included
	KeepResults bool

	// KeepChecks controls whether check symbols (+, #) are included
	KeepChecks bool

	// OutputFEN adds the position after every move to JSON output
	OutputFEN bool

	// Files the finished game is written to. Empty disables that format.
	PGNPath string
	JSONPath string
	SVGPath  string

	// SVGSquareSize is the side of one board square in the SVG diagram
	SVGSquareSize int
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:          SAN,
		MaxLineLength:   80,
		TagFormat:       AllTags,
		KeepMoveNumbers: true,
		KeepResults:     true,
		KeepChecks:      true,
		OutputFEN:       true,
		SVGSquareSize:   60,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.MaxLineLength != 0 && o.MaxLineLength < 20 {
		return fmt.Errorf("line length %d is shorter than 20: %w", o.MaxLineLength, errors.ErrInvalidConfig)
	}
	if o.SVGSquareSize < 8 {
		return fmt.Errorf("svg square size %d is smaller than 8: %w", o.SVGSquareSize, errors.ErrInvalidConfig)
	}
	return nil
}
