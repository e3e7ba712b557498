package state

import "testing"

func TestToggleHelp(t *testing.T) {
	s := UIState{}
	s = ToggleHelp(s)
	if s.Overlay != OverlayHelp {
		t.Fatalf("expected help overlay, got %v", s.Overlay)
	}
	s = ToggleHelp(s)
	if s.Overlay != OverlayNone {
		t.Fatalf("expected overlay closed, got %v", s.Overlay)
	}
}

func TestHelpReplacesPicker(t *testing.T) {
	s := OpenPicker(UIState{})
	s = ToggleHelp(s)
	if s.Overlay != OverlayHelp {
		t.Fatalf("help must replace the picker, got %v", s.Overlay)
	}
}

func TestResizeKeepsOtherState(t *testing.T) {
	s := WithNotice(OpenPicker(UIState{}), "hi")
	s = Resize(s, 80, 24)
	if s.Width != 80 || s.Height != 24 {
		t.Fatalf("size not recorded: %+v", s)
	}
	if s.Overlay != OverlayPicker || s.Notice != "hi" {
		t.Fatalf("resize clobbered state: %+v", s)
	}
}

func TestPickerSessionCursorClamping(t *testing.T) {
	p := NewPickerSession([]string{"a.go", "b.go", "c.go"})
	p.Move(-5)
	if p.Selected() != "a.go" {
		t.Fatalf("cursor must clamp at top, got %q", p.Selected())
	}
	p.Move(99)
	if p.Selected() != "c.go" {
		t.Fatalf("cursor must clamp at bottom, got %q", p.Selected())
	}
}

func TestEmptyPickerSessionIsSafe(t *testing.T) {
	p := NewPickerSession(nil)
	p.Move(1)
	if p.Selected() != "" {
		t.Fatalf("empty session must select nothing")
	}
	var nilSession *PickerSession
	nilSession.Move(1)
	if nilSession.Selected() != "" {
		t.Fatalf("nil session must select nothing")
	}
}
