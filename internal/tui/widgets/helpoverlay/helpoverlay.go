package helpoverlay

import (
	"fmt"
	"strings"
)

type HelpOverlay struct{}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{} }

// View returns grouped keys help.
func (HelpOverlay) View() string {
	sections := []struct {
		title string
		keys  []string
	}{
		{"Scrolling", []string{"j/↓: down", "k/↑: up", "g: top", "G: bottom"}},
		{"Files", []string{"f: pick file", "n: next pending file", "d: dismiss (rebaseline)"}},
		{"View", []string{"tab: toggle inline/side-by-side", "y: copy visible diff"}},
		{"General", []string{"?: close help", "q: quit"}},
	}
	var b strings.Builder
	b.WriteString("Help\n")
	for _, sec := range sections {
		fmt.Fprintf(&b, "\n%s:\n", sec.title)
		for _, k := range sec.keys {
			fmt.Fprintf(&b, "  %s\n", k)
		}
	}
	return b.String()
}
