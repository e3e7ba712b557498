package statusbar

import (
	"fmt"
	"strings"

	"difftrack/internal/tui/state"
)

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View composes a concise status line: layout mode, pending files (at most
// maxFiles named, the rest summarized), scroll position, and any notice.
func (StatusBar) View(s state.UIState, mode string, pending []string, maxFiles, offset, total int) string {
	parts := []string{"[" + mode + "]"}

	if len(pending) == 0 {
		parts = append(parts, "no pending changes")
	} else {
		named := pending
		extra := 0
		if maxFiles > 0 && len(named) > maxFiles {
			extra = len(named) - maxFiles
			named = named[:maxFiles]
		}
		list := strings.Join(named, ", ")
		if extra > 0 {
			list += fmt.Sprintf(" +%d more", extra)
		}
		parts = append(parts, fmt.Sprintf("%d pending: %s", len(pending), list))
	}

	parts = append(parts, fmt.Sprintf("%d/%d", offset, total))
	if s.Notice != "" {
		parts = append(parts, s.Notice)
	}
	return strings.Join(parts, "  ")
}
