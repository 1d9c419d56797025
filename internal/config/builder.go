package config

import (
	"io"

	"github.com/lgbarn/chessai-go/internal/search"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithWhite sets who plays White and at what difficulty.
func (b *ConfigBuilder) WithWhite(kind PlayerKind, d search.Difficulty) *ConfigBuilder {
	b.cfg.White.Kind = kind
	b.cfg.White.Difficulty = d
	return b
}

// WithBlack sets who plays Black and at what difficulty.
func (b *ConfigBuilder) WithBlack(kind PlayerKind, d search.Difficulty) *ConfigBuilder {
	b.cfg.Black.Kind = kind
	b.cfg.Black.Difficulty = d
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithLogLevel sets the log level name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.LogLevel = level
	return b
}

// WithOutputFormat sets the move notation for PGN output.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithTagFormat sets which PGN tags are written.
func (b *ConfigBuilder) WithTagFormat(form TagOutputForm) *ConfigBuilder {
	b.cfg.Output.TagFormat = form
	return b
}

// WithFiles sets the PGN, JSON and SVG export paths. Empty paths are skipped.
func (b *ConfigBuilder) WithFiles(pgn, json, svg string) *ConfigBuilder {
	b.cfg.Output.PGNPath = pgn
	b.cfg.Output.JSONPath = json
	b.cfg.Output.SVGPath = svg
	return b
}

// WithArena enables self-play of the given number of games.
func (b *ConfigBuilder) WithArena(games, concurrency int) *ConfigBuilder {
	b.cfg.Arena.Games = games
	b.cfg.Arena.Concurrency = concurrency
	return b
}

// WithMaxPlies sets the self-play ply limit.
func (b *ConfigBuilder) WithMaxPlies(plies int) *ConfigBuilder {
	b.cfg.Arena.MaxPlies = plies
	return b
}

// WithInput sets the reader moves are read from.
func (b *ConfigBuilder) WithInput(r io.Reader) *ConfigBuilder {
	b.cfg.Input = r
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}
