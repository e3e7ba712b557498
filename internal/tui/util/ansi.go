package util

import "strings"

// Reset is the SGR reset sequence appended to truncated output so styling
// never leaks into the next terminal row.
const Reset = "\x1b[0m"

const esc = '\x1b'

// TruncateToWidth cuts styled down to at most width visible characters.
// Escape sequences (ESC '[' ... 'm') pass through untouched and uncounted; an
// escape sequence in progress is always flushed even after the width budget
// is spent. If any escape was emitted and the result does not already end in
// a reset, one is appended. Malformed or unterminated sequences are flushed
// as-is and closed by the trailing reset rather than reported.
func TruncateToWidth(styled string, width int) string {
	if width < 0 {
		width = 0
	}
	var b strings.Builder
	visible := 0
	sawEscape := false
	rs := []rune(styled)
	for i := 0; i < len(rs); {
		if rs[i] == esc {
			j := escapeEnd(rs, i)
			b.WriteString(string(rs[i:j]))
			sawEscape = true
			i = j
			continue
		}
		if visible >= width {
			break
		}
		b.WriteRune(rs[i])
		visible++
		i++
	}
	out := b.String()
	if sawEscape && !strings.HasSuffix(out, Reset) {
		out += Reset
	}
	return out
}

// PadToWidth pads styled with spaces until its visible length reaches width.
// When the string ends in a reset sequence the padding goes before the reset,
// so a styled background never bleeds past the intended content. Strings
// already at or over width are returned unchanged.
func PadToWidth(styled string, width int) string {
	visible := VisibleWidth(styled)
	if visible >= width {
		return styled
	}
	pad := strings.Repeat(" ", width-visible)
	if strings.HasSuffix(styled, Reset) {
		return styled[:len(styled)-len(Reset)] + pad + Reset
	}
	return styled + pad
}

// VisibleWidth counts the characters of styled that a terminal would render,
// skipping escape sequences.
func VisibleWidth(styled string) int {
	n := 0
	rs := []rune(styled)
	for i := 0; i < len(rs); {
		if rs[i] == esc {
			i = escapeEnd(rs, i)
			continue
		}
		n++
		i++
	}
	return n
}

// StripEscapes removes all escape sequences from styled, leaving the plain
// text a terminal would show.
func StripEscapes(styled string) string {
	var b strings.Builder
	rs := []rune(styled)
	for i := 0; i < len(rs); {
		if rs[i] == esc {
			i = escapeEnd(rs, i)
			continue
		}
		b.WriteRune(rs[i])
		i++
	}
	return b.String()
}

// escapeEnd returns the index just past the escape sequence starting at i.
// Only SGR-style sequences (ESC '[' ... 'm') are recognized; an unterminated
// sequence runs to the end of the string, a bare ESC is consumed alone.
func escapeEnd(rs []rune, i int) int {
	j := i + 1
	if j >= len(rs) || rs[j] != '[' {
		return j
	}
	j++
	for j < len(rs) {
		if rs[j] == 'm' {
			return j + 1
		}
		j++
	}
	return j
}
