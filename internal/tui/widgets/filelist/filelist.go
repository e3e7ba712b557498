package filelist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"difftrack/internal/tui/state"
	"difftrack/internal/tui/util"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	selStyle   = lipgloss.NewStyle().Foreground(util.DefaultPalette().Accent).Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

type FileList struct{}

func NewFileList() FileList { return FileList{} }

// View renders the pending-file picker for one session. Each row is padded to
// width so the list forms a clean block.
func (FileList) View(sess *state.PickerSession, width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Pending files") + "\n")
	if sess == nil || len(sess.Files) == 0 {
		b.WriteString(faintStyle.Render("  nothing pending") + "\n")
	} else {
		for i, path := range sess.Files {
			line := fmt.Sprintf("  %s", path)
			if i == sess.Cursor {
				line = selStyle.Render("> " + path)
			}
			b.WriteString(util.PadToWidth(util.TruncateToWidth(line, width), width) + "\n")
		}
	}
	b.WriteString("\n" + faintStyle.Render("enter: open   d: dismiss   esc: close") + "\n")
	return b.String()
}
