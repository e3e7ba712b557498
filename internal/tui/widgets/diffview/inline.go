package diffview

import (
	"fmt"
	"strings"

	"difftrack/internal/diffcore"
	"difftrack/internal/tui/util"
)

// InlineView renders a diff as a single colorized column with a right-aligned
// line-number gutter. Elided unchanged runs between hunks show up as a dim
// ellipsis row; the gap is detected from a single evolving tracked line
// number that prefers the new-side number and falls back to the old side.
type InlineView struct {
	highlight HighlightFunc
	lines     []renderedLine
	offset    int
}

func NewInlineView(highlight HighlightFunc) *InlineView {
	return &InlineView{highlight: highlight}
}

// SetDiff rebuilds the line buffer from d and resets the scroll position.
func (v *InlineView) SetDiff(d diffcore.FileDiff) {
	v.lines = v.lines[:0]
	v.offset = 0

	numWidth := numberWidth(d)
	prev := -1
	for _, dl := range d.Lines {
		num := dl.NewNum
		if num == 0 {
			num = dl.OldNum
		}
		if prev >= 0 && num > prev+1 {
			v.lines = append(v.lines, gapRow(numWidth))
		}
		prev = num
		v.lines = append(v.lines, inlineRow(dl, numWidth, v.highlight, d.Path))
	}
}

func (v *InlineView) ScrollUp(n int) {
	if n < 0 {
		n = 0
	}
	v.offset = scrollBy(v.offset, -n, len(v.lines))
}

func (v *InlineView) ScrollDown(n int) {
	if n < 0 {
		n = 0
	}
	v.offset = scrollBy(v.offset, n, len(v.lines))
}

func (v *InlineView) ScrollToTop() { v.offset = 0 }

// ScrollToBottom moves past the end; Render clamps it against the viewport.
func (v *InlineView) ScrollToBottom() { v.offset = len(v.lines) }

func (v *InlineView) TotalLines() int { return len(v.lines) }

func (v *InlineView) Offset() int { return v.offset }

// Render re-clamps the offset, slices the visible window, and truncates each
// row to width.
func (v *InlineView) Render(width, height int) []string {
	v.offset = clampOffset(v.offset, len(v.lines), height)
	window := visibleWindow(v.lines, v.offset, height)
	out := make([]string, 0, len(window))
	for _, rl := range window {
		out = append(out, util.TruncateToWidth(rl.styled, width))
	}
	return out
}

// inlineRow renders one diff line: number column, change marker, content.
// Only context content goes through the highlight function.
func inlineRow(dl diffcore.DiffLine, numWidth int, highlight HighlightFunc, path string) renderedLine {
	num := dl.NewNum
	if num == 0 {
		num = dl.OldNum
	}
	gutter := mutedStyle.Render(fmt.Sprintf("%*d", numWidth, num))

	var marker, body string
	switch dl.Kind {
	case diffcore.Added:
		marker = addedStyle.Render("+")
		body = addedStyle.Render(dl.Content)
	case diffcore.Removed:
		marker = removedStyle.Render("-")
		body = removedStyle.Render(dl.Content)
	default:
		marker = " "
		body = mutedStyle.Render(safeHighlight(highlight, dl.Content, path))
	}
	return newRenderedLine(gutter + " " + marker + " " + body)
}

// gapRow is the synthetic separator for an elided unchanged run.
func gapRow(numWidth int) renderedLine {
	plain := strings.Repeat(" ", numWidth) + "   " + gapGlyph
	return newRenderedLine(dimStyle.Render(plain))
}
