// Package testutil provides shared test helpers for chessai-go: go-cmp
// backed assertions and game builders.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessai-go/internal/engine"
)

// AssertEqual compares got and want using cmp.Diff and reports differences.
// The optional msgAndArgs give the failure some context; a leading string
// is used as a format.
func AssertEqual(t *testing.T, got, want any, msgAndArgs ...any) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		fail(t, msgAndArgs, "mismatch (-want +got):\n%s", diff)
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(t *testing.T, err error, msgAndArgs ...any) {
	t.Helper()
	if err != nil {
		fail(t, msgAndArgs, "unexpected error: %v", err)
	}
}

// AssertError fails if err is nil.
func AssertError(t *testing.T, err error, msgAndArgs ...any) {
	t.Helper()
	if err == nil {
		fail(t, msgAndArgs, "expected error but got nil")
	}
}

// AssertContains fails if substr is not found in got.
func AssertContains(t *testing.T, got, substr string, msgAndArgs ...any) {
	t.Helper()
	if !strings.Contains(got, substr) {
		fail(t, msgAndArgs, "%q does not contain %q", got, substr)
	}
}

// AssertNotContains fails if substr is found in got.
func AssertNotContains(t *testing.T, got, substr string, msgAndArgs ...any) {
	t.Helper()
	if strings.Contains(got, substr) {
		fail(t, msgAndArgs, "%q should not contain %q", got, substr)
	}
}

// AssertTrue fails if condition is false.
func AssertTrue(t *testing.T, condition bool, msgAndArgs ...any) {
	t.Helper()
	if !condition {
		fail(t, msgAndArgs, "expected true but got false")
	}
}

// AssertFalse fails if condition is true.
func AssertFalse(t *testing.T, condition bool, msgAndArgs ...any) {
	t.Helper()
	if condition {
		fail(t, msgAndArgs, "expected false but got true")
	}
}

// AssertFEN fails if the game's position is not want.
func AssertFEN(t *testing.T, g *engine.Game, want string) {
	t.Helper()
	if got := g.FEN(); got != want {
		t.Errorf("FEN = %q; want %q", got, want)
	}
}

// AssertHistory compares the game's moves, in SAN, with want.
func AssertHistory(t *testing.T, g *engine.Game, want ...string) {
	t.Helper()
	got := make([]string, 0, g.Ply())
	for _, m := range g.History() {
		got = append(got, m.SAN())
	}
	if want == nil {
		want = []string{}
	}
	AssertEqual(t, got, want, "history")
}

func fail(t *testing.T, msgAndArgs []any, format string, args ...any) {
	t.Helper()
	if msg := formatMessage(msgAndArgs...); msg != "" {
		t.Errorf("%s: "+format, append([]any{msg}, args...)...)
		return
	}
	t.Errorf(format, args...)
}

// formatMessage formats optional message arguments into a string.
func formatMessage(msgAndArgs ...any) string {
	switch {
	case len(msgAndArgs) == 0:
		return ""
	case len(msgAndArgs) == 1:
		return fmt.Sprint(msgAndArgs[0])
	}
	if format, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(format, msgAndArgs[1:]...)
	}
	return fmt.Sprint(msgAndArgs[0])
}
