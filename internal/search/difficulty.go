package search

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessai-go/internal/errors"
)

// Difficulty selects the fixed search depth in plies.
type Difficulty int

// Difficulty presets. The value is the search depth.
const (
	Easy   Difficulty = 2
	Medium Difficulty = 3
	Hard   Difficulty = 4
)

// DefaultDifficulty is used when none is configured.
const DefaultDifficulty = Medium

// Depth returns the number of plies searched.
func (d Difficulty) Depth() int {
	return int(d)
}

// String returns the name of a preset, or the depth for other values.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("depth-%d", int(d))
	}
}

// ParseDifficulty converts a preset name to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium", "":
		return Medium, nil
	case "hard":
		return Hard, nil
	default:
		return 0, errors.Wrapf(errors.ErrInvalidDifficulty, "%q", s)
	}
}
