package output

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/lgbarn/chessai-go/internal/engine"
)

// sevenTagRoster lists the PGN tags every exported game carries, in order.
var sevenTagRoster = []string{"Event", "Site", "Date", "Round", "White", "Black", "Result"}

// isSevenTagRosterTag reports whether tag is one of the seven roster tags.
func isSevenTagRosterTag(tag string) bool {
	for _, t := range sevenTagRoster {
		if t == tag {
			return true
		}
	}
	return false
}

// Record is a game together with the metadata needed to export it.
type Record struct {
	ID   uuid.UUID
	Tags map[string]string
	Game *engine.Game
}

// NewRecord creates a record for g with a fresh ID and the roster tags
// filled in for the named players.
func NewRecord(g *engine.Game, white, black string) *Record {
	return &Record{
		ID:   uuid.New(),
		Game: g,
		Tags: map[string]string{
			"Event": "chessai game",
			"Site":  "?",
			"Date":  time.Now().Format("2006.01.02"),
			"Round": "-",
			"White": white,
			"Black": black,
		},
	}
}

// Tag returns the value of a tag, or "" if it is not set.
func (r *Record) Tag(name string) string {
	return r.Tags[name]
}

// SetTag sets a tag value.
func (r *Record) SetTag(name, value string) {
	if r.Tags == nil {
		r.Tags = make(map[string]string)
	}
	r.Tags[name] = value
}

// exportTags returns the stored tags plus the ones derived from the game:
// Result, GameId, PlyCount and, for games not started from the standard
// position, SetUp and FEN.
func (r *Record) exportTags() map[string]string {
	tags := make(map[string]string, len(r.Tags)+5)
	for k, v := range r.Tags {
		tags[k] = v
	}

	tags["Result"] = r.Game.Result()
	if r.ID != uuid.Nil {
		tags["GameId"] = r.ID.String()
	}
	tags["PlyCount"] = strconv.Itoa(r.Game.Ply())

	if start := startingPosition(r.Game).FEN(); start != engine.InitialFEN {
		tags["SetUp"] = "1"
		tags["FEN"] = start
	}
	return tags
}

// startingPosition returns a copy of g with every move taken back.
func startingPosition(g *engine.Game) *engine.Game {
	start := g.Clone()
	for start.Undo() {
	}
	return start
}
