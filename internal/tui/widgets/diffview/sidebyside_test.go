package diffview

import (
	"fmt"
	"strings"
	"testing"

	"difftrack/internal/diffcore"
	"difftrack/internal/tui/util"
)

func splitPanels(t *testing.T, plainRow string, width int) (left, right string) {
	t.Helper()
	panel := (width - 1) / 2
	runes := []rune(plainRow)
	if len(runes) < 2*panel+1 {
		t.Fatalf("row too short: %d runes for width %d", len(runes), width)
	}
	if string(runes[panel]) != columnGlyph {
		t.Fatalf("missing column divider at %d in %q", panel, plainRow)
	}
	return string(runes[:panel]), string(runes[panel+1:])
}

func TestSideBySideRemovalLeavesRightBlank(t *testing.T) {
	v := NewSideBySideView(nil)
	v.SetDiff(diffcore.FileDiff{
		Path: "f.go",
		Lines: []diffcore.DiffLine{
			diffcore.ContextLine("keep", 1, 1),
			diffcore.RemovedLine("gone", 2),
		},
	})
	rows := renderPlain(v, 81, 10)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	left, right := splitPanels(t, rows[1], 81)
	if strings.TrimSpace(right) != "" {
		t.Fatalf("right cell of a removal must be blank, got %q", right)
	}
	if !strings.Contains(left, "gone") || !strings.Contains(left, "2") {
		t.Fatalf("left cell must carry the removed line, got %q", left)
	}
}

func TestSideBySideAdditionMirrors(t *testing.T) {
	v := NewSideBySideView(nil)
	v.SetDiff(diffcore.FileDiff{
		Path: "f.go",
		Lines: []diffcore.DiffLine{
			diffcore.ContextLine("keep", 1, 1),
			diffcore.AddedLine("fresh", 2),
		},
	})
	rows := renderPlain(v, 81, 10)
	left, right := splitPanels(t, rows[1], 81)
	if strings.TrimSpace(left) != "" {
		t.Fatalf("left cell of an addition must be blank, got %q", left)
	}
	if !strings.Contains(right, "fresh") {
		t.Fatalf("right cell must carry the added line, got %q", right)
	}
}

func TestSideBySideContextInBothCells(t *testing.T) {
	v := NewSideBySideView(nil)
	v.SetDiff(diffcore.FileDiff{
		Path: "f.go",
		Lines: []diffcore.DiffLine{
			diffcore.ContextLine("same", 3, 7),
		},
	})
	rows := renderPlain(v, 81, 10)
	left, right := splitPanels(t, rows[0], 81)
	if !strings.Contains(left, "same") || !strings.Contains(left, "3") {
		t.Fatalf("left cell wrong: %q", left)
	}
	if !strings.Contains(right, "same") || !strings.Contains(right, "7") {
		t.Fatalf("right cell wrong: %q", right)
	}
}

func TestSideBySideHighlightPerCell(t *testing.T) {
	calls := 0
	hl := func(code, path string) string {
		calls++
		return code
	}
	v := NewSideBySideView(hl)
	v.SetDiff(diffcore.FileDiff{
		Path: "f.go",
		Lines: []diffcore.DiffLine{
			diffcore.ContextLine("same", 1, 1),
			diffcore.AddedLine("new", 2),
		},
	})
	// One context line, two cells; added content is never highlighted.
	if calls != 2 {
		t.Fatalf("expected 2 highlight calls, got %d", calls)
	}
}

func TestSideBySideGapTracksOldNumbers(t *testing.T) {
	v := NewSideBySideView(nil)
	v.SetDiff(diffcore.FileDiff{
		Path: "f.go",
		Lines: []diffcore.DiffLine{
			diffcore.ContextLine("a", 2, 2),
			diffcore.ContextLine("b", 10, 10),
		},
	})
	if v.TotalLines() != 3 {
		t.Fatalf("expected separator row, total %d", v.TotalLines())
	}
	rows := renderPlain(v, 81, 10)
	left, right := splitPanels(t, rows[1], 81)
	if !strings.Contains(left, gapGlyph) || !strings.Contains(right, gapGlyph) {
		t.Fatalf("separator must appear in both panels: %q / %q", left, right)
	}
}

func TestSideBySideGapFallsBackToNewNumbers(t *testing.T) {
	// Pure additions carry no old number, so the new-side track decides.
	v := NewSideBySideView(nil)
	v.SetDiff(diffcore.FileDiff{
		Path: "f.go",
		Lines: []diffcore.DiffLine{
			diffcore.AddedLine("a", 2),
			diffcore.AddedLine("b", 9),
		},
	})
	if v.TotalLines() != 3 {
		t.Fatalf("expected separator from new-side jump, total %d", v.TotalLines())
	}
}

func TestSideBySidePanelWidths(t *testing.T) {
	long := strings.Repeat("x", 200)
	v := NewSideBySideView(nil)
	v.SetDiff(diffcore.FileDiff{
		Path: "f.go",
		Lines: []diffcore.DiffLine{
			diffcore.ContextLine(long, 1, 1),
			diffcore.RemovedLine(long, 2),
			diffcore.AddedLine(long, 2),
		},
	})
	for _, width := range []int{121, 80, 41, 21} {
		panel := (width - 1) / 2
		for _, row := range renderPlain(v, width, 10) {
			if n := len([]rune(row)); n != 2*panel+1 {
				t.Fatalf("width %d: row is %d runes, want %d: %q", width, n, 2*panel+1, row)
			}
		}
	}
}

func TestSideBySideScrollClamping(t *testing.T) {
	var lines []diffcore.DiffLine
	for i := 1; i <= 8; i++ {
		lines = append(lines, diffcore.ContextLine(fmt.Sprintf("l%d", i), i, i))
	}
	v := NewSideBySideView(nil)
	v.SetDiff(diffcore.FileDiff{Path: "f.go", Lines: lines})

	v.ScrollDown(999)
	rows := v.Render(81, 3)
	if v.Offset() != 5 {
		t.Fatalf("offset %d, want 5", v.Offset())
	}
	if len(rows) != 3 {
		t.Fatalf("window %d rows, want 3", len(rows))
	}
	if stripped := util.StripEscapes(rows[2]); !strings.Contains(stripped, "l8") {
		t.Fatalf("bottom row should show the last line: %q", stripped)
	}
}
