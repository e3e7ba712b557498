package state

// Resize records the new terminal dimensions.
func Resize(s UIState, width, height int) UIState {
	s.Width = width
	s.Height = height
	return s
}

// ToggleHelp opens or closes the help overlay. Opening it replaces any other
// overlay.
func ToggleHelp(s UIState) UIState {
	if s.Overlay == OverlayHelp {
		s.Overlay = OverlayNone
	} else {
		s.Overlay = OverlayHelp
	}
	return s
}

// OpenPicker switches to the file-picker overlay.
func OpenPicker(s UIState) UIState {
	s.Overlay = OverlayPicker
	return s
}

// CloseOverlay returns to the diff pane.
func CloseOverlay(s UIState) UIState {
	s.Overlay = OverlayNone
	return s
}

// WithNotice sets a brief status notice.
func WithNotice(s UIState, notice string) UIState {
	s.Notice = notice
	return s
}

// ClearNotice removes the notice.
func ClearNotice(s UIState) UIState {
	s.Notice = ""
	return s
}
