package statusbar

import (
	"strings"
	"testing"

	"difftrack/internal/tui/state"
)

func TestViewListsPendingFiles(t *testing.T) {
	bar := NewStatusBar()
	out := bar.View(state.UIState{}, "inline", []string{"a.go", "b.go"}, 5, 0, 10)
	for _, want := range []string{"[inline]", "2 pending", "a.go", "b.go", "0/10"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %q", want, out)
		}
	}
}

func TestViewCapsFileList(t *testing.T) {
	bar := NewStatusBar()
	files := []string{"a", "b", "c", "d", "e", "f", "g"}
	out := bar.View(state.UIState{}, "inline", files, 5, 0, 0)
	if !strings.Contains(out, "+2 more") {
		t.Fatalf("expected +2 more in %q", out)
	}
	if strings.Contains(out, "f,") || strings.HasSuffix(out, "g") {
		t.Fatalf("files over the cap must not be named: %q", out)
	}
}

func TestViewNoPending(t *testing.T) {
	bar := NewStatusBar()
	out := bar.View(state.UIState{Notice: "dismissed"}, "side-by-side", nil, 5, 3, 20)
	if !strings.Contains(out, "no pending changes") || !strings.Contains(out, "dismissed") {
		t.Fatalf("unexpected status line %q", out)
	}
}
