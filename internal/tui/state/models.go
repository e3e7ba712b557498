package state

// Overlay identifies which modal, if any, sits over the diff pane.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayPicker
	OverlayHelp
)

// UIState holds cross-widget UI state used by the status bar, diff pane, and
// overlays.
type UIState struct {
	Width  int
	Height int

	Overlay Overlay

	// Notices and ephemeral messages
	Notice string
}

// PickerSession holds all state for one open/close lifecycle of the file
// picker modal. It is created when the picker opens and dropped when it
// closes; nothing about the modal lives in globals.
type PickerSession struct {
	Files  []string
	Cursor int
}

// NewPickerSession starts a session over the given pending files.
func NewPickerSession(files []string) *PickerSession {
	return &PickerSession{Files: files}
}

// Selected returns the file under the cursor, or "" for an empty session.
func (p *PickerSession) Selected() string {
	if p == nil || len(p.Files) == 0 {
		return ""
	}
	return p.Files[p.Cursor]
}

// Move shifts the cursor by delta, clamped to the file list.
func (p *PickerSession) Move(delta int) {
	if p == nil || len(p.Files) == 0 {
		return
	}
	p.Cursor += delta
	if p.Cursor < 0 {
		p.Cursor = 0
	}
	if p.Cursor > len(p.Files)-1 {
		p.Cursor = len(p.Files) - 1
	}
}
