package diffview

import "difftrack/internal/diffcore"

// ViewMode selects the active diff layout.
type ViewMode int

const (
	ViewInline ViewMode = iota
	ViewSideBySide
)

func (m ViewMode) String() string {
	if m == ViewSideBySide {
		return "side-by-side"
	}
	return "inline"
}

// DefaultMinSideBySideWidth is the narrowest terminal the dual-column layout
// is allowed on.
const DefaultMinSideBySideWidth = 120

// Controller owns one renderer per layout and switches between them. Both
// renderers are fully rebuilt on every SetDiff, even the inactive one, so
// toggling modes never shows stale content.
type Controller struct {
	inline   *InlineView
	side     *SideBySideView
	mode     ViewMode
	minWidth int
}

// NewController builds a controller with inline as the default mode.
// minSideBySideWidth <= 0 falls back to DefaultMinSideBySideWidth.
func NewController(highlight HighlightFunc, minSideBySideWidth int) *Controller {
	if minSideBySideWidth <= 0 {
		minSideBySideWidth = DefaultMinSideBySideWidth
	}
	return &Controller{
		inline:   NewInlineView(highlight),
		side:     NewSideBySideView(highlight),
		minWidth: minSideBySideWidth,
	}
}

// SetDiff propagates d to both renderers and resets both scroll positions.
func (c *Controller) SetDiff(d diffcore.FileDiff) {
	c.inline.SetDiff(d)
	c.side.SetDiff(d)
}

func (c *Controller) Mode() ViewMode { return c.mode }

// CanUseSideBySide reports whether the dual-column layout fits terminalWidth.
func (c *Controller) CanUseSideBySide(terminalWidth int) bool {
	return terminalWidth >= c.minWidth
}

// ToggleViewMode flips the layout. Switching away from inline only happens
// when the terminal is wide enough; switching back always succeeds. Returns
// whether the mode changed; any change resets scroll on both renderers.
func (c *Controller) ToggleViewMode(terminalWidth int) bool {
	if c.mode == ViewInline {
		if !c.CanUseSideBySide(terminalWidth) {
			return false
		}
		c.mode = ViewSideBySide
	} else {
		c.mode = ViewInline
	}
	c.resetScroll()
	return true
}

// SetViewMode forces a layout with no width check, resetting scroll only when
// the mode actually changes.
func (c *Controller) SetViewMode(m ViewMode) {
	if m == c.mode {
		return
	}
	c.mode = m
	c.resetScroll()
}

func (c *Controller) ScrollUp(n int)   { c.active().ScrollUp(n) }
func (c *Controller) ScrollDown(n int) { c.active().ScrollDown(n) }
func (c *Controller) ScrollToTop()     { c.active().ScrollToTop() }
func (c *Controller) ScrollToBottom()  { c.active().ScrollToBottom() }

func (c *Controller) Render(width, height int) []string {
	return c.active().Render(width, height)
}

func (c *Controller) TotalLines() int { return c.active().TotalLines() }

func (c *Controller) Offset() int { return c.active().Offset() }

func (c *Controller) active() Renderer {
	if c.mode == ViewSideBySide {
		return c.side
	}
	return c.inline
}

func (c *Controller) resetScroll() {
	c.inline.ScrollToTop()
	c.side.ScrollToTop()
}
