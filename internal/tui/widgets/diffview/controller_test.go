package diffview

import (
	"fmt"
	"testing"

	"difftrack/internal/diffcore"
)

func controllerDiff(n int) diffcore.FileDiff {
	var lines []diffcore.DiffLine
	for i := 1; i <= n; i++ {
		lines = append(lines, diffcore.ContextLine(fmt.Sprintf("l%d", i), i, i))
	}
	return diffcore.FileDiff{Path: "f.go", Lines: lines}
}

func TestControllerDefaultsToInline(t *testing.T) {
	c := NewController(nil, 0)
	if c.Mode() != ViewInline {
		t.Fatalf("default mode must be inline, got %v", c.Mode())
	}
	if !c.CanUseSideBySide(120) || c.CanUseSideBySide(119) {
		t.Fatalf("side-by-side gate must sit at the default 120 columns")
	}
}

func TestControllerToggleWidthGate(t *testing.T) {
	c := NewController(nil, 120)
	c.SetDiff(controllerDiff(10))

	if c.ToggleViewMode(119) {
		t.Fatalf("toggle must fail below the minimum width")
	}
	if c.Mode() != ViewInline {
		t.Fatalf("failed toggle must not change mode")
	}

	if !c.ToggleViewMode(120) {
		t.Fatalf("toggle must succeed at the minimum width")
	}
	if c.Mode() != ViewSideBySide {
		t.Fatalf("expected side-by-side after toggle")
	}

	// Back to inline always works, even on a narrow terminal.
	if !c.ToggleViewMode(40) {
		t.Fatalf("toggle back to inline must always succeed")
	}
	if c.Mode() != ViewInline {
		t.Fatalf("expected inline after second toggle")
	}
}

func TestControllerToggleResetsScroll(t *testing.T) {
	c := NewController(nil, 120)
	c.SetDiff(controllerDiff(30))

	c.ScrollDown(10)
	if c.Offset() != 10 {
		t.Fatalf("offset %d, want 10", c.Offset())
	}
	c.ToggleViewMode(200)
	if c.Offset() != 0 {
		t.Fatalf("mode switch must reset scroll, offset %d", c.Offset())
	}

	c.ScrollDown(5)
	c.ToggleViewMode(0)
	if c.Offset() != 0 {
		t.Fatalf("switch back must reset scroll, offset %d", c.Offset())
	}
}

func TestControllerSetViewMode(t *testing.T) {
	c := NewController(nil, 120)
	c.SetDiff(controllerDiff(30))

	// Forcing a mode ignores the width gate.
	c.SetViewMode(ViewSideBySide)
	if c.Mode() != ViewSideBySide {
		t.Fatalf("SetViewMode must switch unconditionally")
	}

	// Setting the same mode again must not touch scroll state.
	c.ScrollDown(7)
	c.SetViewMode(ViewSideBySide)
	if c.Offset() != 7 {
		t.Fatalf("same-mode set must not reset scroll, offset %d", c.Offset())
	}

	c.SetViewMode(ViewInline)
	if c.Offset() != 0 {
		t.Fatalf("mode change must reset scroll, offset %d", c.Offset())
	}
}

func TestControllerSetDiffResetsBothRenderers(t *testing.T) {
	c := NewController(nil, 120)
	c.SetDiff(controllerDiff(30))
	c.ScrollDown(12)

	c.SetDiff(controllerDiff(20))
	if c.Offset() != 0 {
		t.Fatalf("new diff must reset scroll, offset %d", c.Offset())
	}

	// The inactive renderer was rebuilt too: switching shows fresh content.
	c.SetViewMode(ViewSideBySide)
	if c.TotalLines() != 20 {
		t.Fatalf("inactive renderer stale: %d lines, want 20", c.TotalLines())
	}
}

func TestControllerDelegatesToActiveRenderer(t *testing.T) {
	c := NewController(nil, 120)
	c.SetDiff(controllerDiff(10))

	inlineRows := c.Render(80, 5)
	c.SetViewMode(ViewSideBySide)
	sideRows := c.Render(80, 5)
	if len(inlineRows) != 5 || len(sideRows) != 5 {
		t.Fatalf("expected 5 rows from each layout, got %d and %d", len(inlineRows), len(sideRows))
	}
	if inlineRows[0] == sideRows[0] {
		t.Fatalf("layouts should differ for the same diff")
	}
}
