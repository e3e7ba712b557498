// Package diffcore computes line-level diffs between a remembered baseline
// and the current content of a file. The result is a flat, ordered sequence
// of tagged lines; elided unchanged regions are implicit in line-number
// discontinuities rather than stored as marker lines.
package diffcore

import (
	"strings"

	dmp "github.com/sergi/go-diff/diffmatchpatch"
)

// DefaultContextLines is the number of unchanged lines kept on each side of a
// change when windowing long unchanged runs.
const DefaultContextLines = 3

// LineKind tags a diff line as context, added, or removed.
type LineKind int

const (
	Context LineKind = iota
	Added
	Removed
)

// DiffLine is one line of a computed diff. OldNum/NewNum are 1-based; a zero
// value means the line has no number on that side. Use the constructors below
// rather than building literals, so invalid number combinations (an added
// line with an old-side number, etc.) never occur.
type DiffLine struct {
	Kind    LineKind
	Content string
	OldNum  int
	NewNum  int
}

// ContextLine returns an unchanged line present on both sides.
func ContextLine(content string, oldNum, newNum int) DiffLine {
	return DiffLine{Kind: Context, Content: content, OldNum: oldNum, NewNum: newNum}
}

// AddedLine returns a line present only in the current content.
func AddedLine(content string, newNum int) DiffLine {
	return DiffLine{Kind: Added, Content: content, NewNum: newNum}
}

// RemovedLine returns a line present only in the baseline content.
func RemovedLine(content string, oldNum int) DiffLine {
	return DiffLine{Kind: Removed, Content: content, OldNum: oldNum}
}

// FileDiff is the computed diff for one tracked file. It is a disposable
// value: callers consume it for a render pass and drop it.
type FileDiff struct {
	Path      string
	IsNewFile bool
	Additions int
	Deletions int
	Lines     []DiffLine
}

// Compute diffs baseline against current and returns the tagged line
// sequence, windowed so that at most contextLines unchanged lines are kept on
// each side of a change. contextLines <= 0 falls back to DefaultContextLines.
// Identical inputs yield an empty line sequence. Inputs are never mutated.
func Compute(path, baseline, current string, contextLines int) FileDiff {
	if contextLines <= 0 {
		contextLines = DefaultContextLines
	}
	fd := FileDiff{
		Path:      path,
		IsNewFile: baseline == "" && current != "",
	}
	if baseline == current {
		return fd
	}

	all := editScript(baseline, current)
	fd.Lines = window(all, contextLines)
	for _, dl := range fd.Lines {
		switch dl.Kind {
		case Added:
			fd.Additions++
		case Removed:
			fd.Deletions++
		}
	}
	return fd
}

// editScript produces the full (unwindowed) tagged line sequence using
// go-diff's line-mode trick: lines are mapped to runes so the LCS runs over
// whole lines, then mapped back.
func editScript(baseline, current string) []DiffLine {
	differ := dmp.New()
	oldRunes, newRunes, lineIndex := differ.DiffLinesToChars(baseline, current)
	diffs := differ.DiffMain(oldRunes, newRunes, false)
	diffs = differ.DiffCharsToLines(diffs, lineIndex)

	var out []DiffLine
	oldNum, newNum := 1, 1
	for _, d := range diffs {
		for _, line := range chunkLines(d.Text) {
			switch d.Type {
			case dmp.DiffEqual:
				out = append(out, ContextLine(line, oldNum, newNum))
				oldNum++
				newNum++
			case dmp.DiffDelete:
				out = append(out, RemovedLine(line, oldNum))
				oldNum++
			case dmp.DiffInsert:
				out = append(out, AddedLine(line, newNum))
				newNum++
			}
		}
	}
	return out
}

// chunkLines splits a diff chunk into its lines. Chunks carry their line
// terminators; the terminator itself is not part of the line content. A chunk
// that does not end in a newline contributes its final partial line as-is.
func chunkLines(chunk string) []string {
	if chunk == "" {
		return nil
	}
	lines := strings.Split(chunk, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// window drops context lines that are further than contextLines away from the
// nearest change. Added and removed lines are always kept.
func window(lines []DiffLine, contextLines int) []DiffLine {
	keep := make([]bool, len(lines))
	for i, dl := range lines {
		if dl.Kind == Context {
			continue
		}
		lo := i - contextLines
		if lo < 0 {
			lo = 0
		}
		hi := i + contextLines
		if hi > len(lines)-1 {
			hi = len(lines) - 1
		}
		for j := lo; j <= hi; j++ {
			keep[j] = true
		}
	}

	out := make([]DiffLine, 0, len(lines))
	for i, dl := range lines {
		if keep[i] {
			out = append(out, dl)
		}
	}
	return out
}
