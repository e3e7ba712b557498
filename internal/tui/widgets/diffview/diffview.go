// Package diffview renders a computed file diff into fixed-width terminal
// rows. Two layouts share one capability set behind the Renderer interface: a
// single-column inline view and a dual-column side-by-side view, selected by
// the Controller. All width math goes through the escape-aware primitives in
// internal/tui/util; no other ANSI parsing happens here.
package diffview

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"difftrack/internal/diffcore"
	"difftrack/internal/tui/util"
)

// HighlightFunc colorizes one line of source code for the given file path.
// It is treated as pure and synchronous; panics are contained by the caller
// and the raw code is used instead.
type HighlightFunc func(code, filePath string) string

// Renderer is the capability set shared by both layouts.
type Renderer interface {
	SetDiff(d diffcore.FileDiff)
	ScrollUp(n int)
	ScrollDown(n int)
	ScrollToTop()
	ScrollToBottom()
	// Render returns the visible window of terminal rows, each at most width
	// visible characters, re-clamping the scroll offset against height.
	Render(width, height int) []string
	TotalLines() int
	Offset() int
}

// renderedLine caches a styled row with its escape-stripped form so width
// math never re-scans styling.
type renderedLine struct {
	styled string
	plain  string
}

func newRenderedLine(styled string) renderedLine {
	return renderedLine{styled: styled, plain: util.StripEscapes(styled)}
}

const (
	gapGlyph    = "…"
	columnGlyph = "│"
)

var (
	palette       = util.DefaultPalette()
	addedStyle    = lipgloss.NewStyle().Foreground(palette.Added)
	removedStyle  = lipgloss.NewStyle().Foreground(palette.Removed)
	mutedStyle    = lipgloss.NewStyle().Foreground(palette.Muted)
	dimStyle      = lipgloss.NewStyle().Faint(true)
	columnDivider = dimStyle.Render(columnGlyph)
)

// safeHighlight applies fn to code, falling back to the raw code when fn is
// nil or panics. Highlight failures never surface to the renderers.
func safeHighlight(fn HighlightFunc, code, filePath string) (out string) {
	out = code
	if fn == nil {
		return
	}
	defer func() {
		if recover() != nil {
			out = code
		}
	}()
	out = fn(code, filePath)
	return
}

// numberWidth returns the digit width of the largest line number in d, with a
// minimum of one column.
func numberWidth(d diffcore.FileDiff) int {
	max := 0
	for _, dl := range d.Lines {
		if dl.OldNum > max {
			max = dl.OldNum
		}
		if dl.NewNum > max {
			max = dl.NewNum
		}
	}
	if max == 0 {
		return 1
	}
	return len(strconv.Itoa(max))
}

// digits is like numberWidth for a single maximum.
func digits(max int) int {
	if max == 0 {
		return 1
	}
	return len(strconv.Itoa(max))
}

// blankNumber renders an empty right-aligned number column of width w.
func blankNumber(w int) string {
	return fmt.Sprintf("%*s", w, "")
}

// clampOffset pins offset into [0, max(0, total-height)].
func clampOffset(offset, total, height int) int {
	max := total - height
	if max < 0 {
		max = 0
	}
	if offset > max {
		offset = max
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// visibleWindow slices the rows visible at offset for a viewport of height.
func visibleWindow(lines []renderedLine, offset, height int) []renderedLine {
	if height < 0 {
		height = 0
	}
	end := offset + height
	if end > len(lines) {
		end = len(lines)
	}
	if offset > end {
		offset = end
	}
	return lines[offset:end]
}

// scrollBy adjusts offset by delta, clamped to [0, total]. Render re-clamps
// against the viewport, so total is a safe upper bound here.
func scrollBy(offset, delta, total int) int {
	offset += delta
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	return offset
}
