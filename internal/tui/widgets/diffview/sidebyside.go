package diffview

import (
	"fmt"
	"strings"

	"difftrack/internal/diffcore"
	"difftrack/internal/tui/util"
)

// SideBySideView renders a diff as two panels: old content on the left, new
// content on the right. Context appears in both cells, removals left-only,
// additions right-only; the blank cell keeps its number-column padding so the
// panels stay aligned. Unlike the inline view, gap detection tracks the old
// and new line numbers independently, preferring the old side.
type SideBySideView struct {
	highlight HighlightFunc
	rows      []cellRow
	offset    int
}

// cellRow is one rendered row: an unpadded left and right cell. Cells are
// truncated and padded to the panel width at render time.
type cellRow struct {
	left  renderedLine
	right renderedLine
}

func NewSideBySideView(highlight HighlightFunc) *SideBySideView {
	return &SideBySideView{highlight: highlight}
}

// SetDiff rebuilds both cell columns from d and resets the scroll position.
// The old and new number columns are sized independently from their own
// maxima.
func (v *SideBySideView) SetDiff(d diffcore.FileDiff) {
	v.rows = v.rows[:0]
	v.offset = 0

	maxOld, maxNew := 0, 0
	for _, dl := range d.Lines {
		if dl.OldNum > maxOld {
			maxOld = dl.OldNum
		}
		if dl.NewNum > maxNew {
			maxNew = dl.NewNum
		}
	}
	oldWidth, newWidth := digits(maxOld), digits(maxNew)

	prevOld, prevNew := -1, -1
	for _, dl := range d.Lines {
		if gapBetween(dl, prevOld, prevNew) {
			v.rows = append(v.rows, cellRow{
				left:  gapCell(oldWidth),
				right: gapCell(newWidth),
			})
		}
		if dl.OldNum > 0 {
			prevOld = dl.OldNum
		}
		if dl.NewNum > 0 {
			prevNew = dl.NewNum
		}

		var row cellRow
		switch dl.Kind {
		case diffcore.Removed:
			row.left = newRenderedLine(numberCell(oldWidth, dl.OldNum) + " " + removedStyle.Render(dl.Content))
			row.right = blankCell(newWidth)
		case diffcore.Added:
			row.left = blankCell(oldWidth)
			row.right = newRenderedLine(numberCell(newWidth, dl.NewNum) + " " + addedStyle.Render(dl.Content))
		default:
			// Context is highlighted per cell; the highlight function may run
			// twice for one diff line.
			row.left = newRenderedLine(numberCell(oldWidth, dl.OldNum) + " " +
				mutedStyle.Render(safeHighlight(v.highlight, dl.Content, d.Path)))
			row.right = newRenderedLine(numberCell(newWidth, dl.NewNum) + " " +
				mutedStyle.Render(safeHighlight(v.highlight, dl.Content, d.Path)))
		}
		v.rows = append(v.rows, row)
	}
}

func (v *SideBySideView) ScrollUp(n int) {
	if n < 0 {
		n = 0
	}
	v.offset = scrollBy(v.offset, -n, len(v.rows))
}

func (v *SideBySideView) ScrollDown(n int) {
	if n < 0 {
		n = 0
	}
	v.offset = scrollBy(v.offset, n, len(v.rows))
}

func (v *SideBySideView) ScrollToTop() { v.offset = 0 }

func (v *SideBySideView) ScrollToBottom() { v.offset = len(v.rows) }

func (v *SideBySideView) TotalLines() int { return len(v.rows) }

func (v *SideBySideView) Offset() int { return v.offset }

// Render re-clamps the offset and joins each visible row's cells around a
// single column divider. Each panel gets floor((width-1)/2) columns; cells
// are truncated then padded independently so a short left cell never shifts
// the right panel.
func (v *SideBySideView) Render(width, height int) []string {
	v.offset = clampOffset(v.offset, len(v.rows), height)
	if height < 0 {
		height = 0
	}
	end := v.offset + height
	if end > len(v.rows) {
		end = len(v.rows)
	}
	panel := (width - 1) / 2
	if panel < 0 {
		panel = 0
	}
	out := make([]string, 0, end-v.offset)
	for _, row := range v.rows[v.offset:end] {
		left := util.PadToWidth(util.TruncateToWidth(row.left.styled, panel), panel)
		right := util.PadToWidth(util.TruncateToWidth(row.right.styled, panel), panel)
		out = append(out, left+columnDivider+right)
	}
	return out
}

// gapBetween reports whether a separator belongs before dl. The old-side
// track decides when dl carries an old number; only lines without one (pure
// additions) consult the new-side track.
func gapBetween(dl diffcore.DiffLine, prevOld, prevNew int) bool {
	if dl.OldNum > 0 {
		return prevOld >= 0 && dl.OldNum > prevOld+1
	}
	if dl.NewNum > 0 {
		return prevNew >= 0 && dl.NewNum > prevNew+1
	}
	return false
}

// numberCell renders a right-aligned muted line number of the given column
// width; num 0 renders as blanks so the cell keeps its gutter.
func numberCell(width, num int) string {
	if num == 0 {
		return blankNumber(width)
	}
	return mutedStyle.Render(fmt.Sprintf("%*d", width, num))
}

// blankCell is an empty cell padded through the number column and its
// trailing space.
func blankCell(numWidth int) renderedLine {
	return newRenderedLine(strings.Repeat(" ", numWidth+1))
}

// gapCell is one side of a separator row.
func gapCell(numWidth int) renderedLine {
	plain := strings.Repeat(" ", numWidth) + " " + gapGlyph
	return newRenderedLine(dimStyle.Render(plain))
}
