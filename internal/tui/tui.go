// Package tui is the review app around the diff core: it feeds edit
// notifications into the snapshot store, drives the view controller, and
// composites the rendered diff with a status bar and modal overlays.
package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"difftrack/internal/config"
	"difftrack/internal/diffcore"
	"difftrack/internal/highlight"
	"difftrack/internal/tracker"
	"difftrack/internal/tui/state"
	"difftrack/internal/tui/util"
	"difftrack/internal/tui/widgets/diffview"
	"difftrack/internal/tui/widgets/filelist"
	"difftrack/internal/tui/widgets/helpoverlay"
	"difftrack/internal/tui/widgets/statusbar"
)

const pollInterval = 500 * time.Millisecond

// FileEditedMsg reports that an external edit to Path was observed. The model
// tracks the path on first sight (the content at that moment becomes the
// baseline) and updates it afterwards.
type FileEditedMsg struct {
	Path    string
	Content string
}

type pollMsg time.Time

// Run starts the review TUI over the given files.
func Run(opts config.Options, paths []string) error {
	m := newModel(opts, paths)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Top        key.Binding
	Bottom     key.Binding
	ToggleView key.Binding
	Dismiss    key.Binding
	NextFile   key.Binding
	Copy       key.Binding
	Picker     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("k", "up")),
		Down:       key.NewBinding(key.WithKeys("j", "down")),
		Top:        key.NewBinding(key.WithKeys("g", "home")),
		Bottom:     key.NewBinding(key.WithKeys("G", "end")),
		ToggleView: key.NewBinding(key.WithKeys("tab")),
		Dismiss:    key.NewBinding(key.WithKeys("d")),
		NextFile:   key.NewBinding(key.WithKeys("n")),
		Copy:       key.NewBinding(key.WithKeys("y")),
		Picker:     key.NewBinding(key.WithKeys("f")),
		Help:       key.NewBinding(key.WithKeys("?")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c")),
	}
}

type model struct {
	opts  config.Options
	store *tracker.Store
	ctrl  *diffview.Controller

	// watched paths and the last content seen by the poller, so edits are
	// detected without reaching into the store's snapshots.
	paths    []string
	lastSeen map[string]string

	active   string
	lastDiff diffcore.FileDiff

	ui     state.UIState
	picker *state.PickerSession
	keys   keyMap

	bar  statusbar.StatusBar
	list filelist.FileList
	help helpoverlay.HelpOverlay
}

func newModel(opts config.Options, paths []string) model {
	var hl diffview.HighlightFunc
	if !util.NoColor(opts.NoColor) {
		hl = diffview.HighlightFunc(highlight.New(opts.HighlightStyle))
	}
	return model{
		opts:     opts,
		store:    tracker.NewStore(),
		ctrl:     diffview.NewController(hl, opts.MinSideBySideWidth),
		paths:    paths,
		lastSeen: map[string]string{},
		keys:     defaultKeyMap(),
		bar:      statusbar.NewStatusBar(),
		list:     filelist.NewFileList(),
		help:     helpoverlay.NewHelpOverlay(),
	}
}

func (m *model) Init() tea.Cmd {
	for _, path := range m.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		content := string(data)
		m.store.Track(path, content, content)
		m.lastSeen[path] = content
	}
	return pollTick()
}

func pollTick() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg { return pollMsg(t) })
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui = state.Resize(m.ui, msg.Width, msg.Height)
		return m, nil

	case pollMsg:
		m.poll()
		return m, pollTick()

	case FileEditedMsg:
		m.applyEdit(msg.Path, msg.Content)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// poll re-reads every watched file and turns content changes into edits.
func (m *model) poll() {
	for _, path := range m.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		content := string(data)
		if content == m.lastSeen[path] {
			continue
		}
		m.applyEdit(path, content)
	}
}

func (m *model) applyEdit(path, content string) {
	if !m.store.IsTracked(path) {
		m.store.Track(path, "", content)
	} else {
		m.store.Update(path, content)
	}
	m.lastSeen[path] = content
	if m.active == "" {
		m.active = path
	}
	if path == m.active {
		m.refreshDiff()
	}
}

// refreshDiff recomputes the active file's diff and rebuilds both renderers.
func (m *model) refreshDiff() {
	if m.active == "" {
		m.lastDiff = diffcore.FileDiff{}
		m.ctrl.SetDiff(m.lastDiff)
		return
	}
	d, ok := m.store.FileDiff(m.active, m.opts.ContextLines)
	if !ok {
		return
	}
	m.lastDiff = d
	m.ctrl.SetDiff(d)
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	switch m.ui.Overlay {
	case state.OverlayHelp:
		m.ui = state.CloseOverlay(m.ui)
		return m, nil

	case state.OverlayPicker:
		return m.handlePickerKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.ctrl.ScrollUp(1)
	case key.Matches(msg, m.keys.Down):
		m.ctrl.ScrollDown(1)
	case key.Matches(msg, m.keys.Top):
		m.ctrl.ScrollToTop()
	case key.Matches(msg, m.keys.Bottom):
		m.ctrl.ScrollToBottom()
	case key.Matches(msg, m.keys.ToggleView):
		if m.ctrl.ToggleViewMode(m.ui.Width) {
			m.ui = state.ClearNotice(m.ui)
		} else {
			m.ui = state.WithNotice(m.ui, fmt.Sprintf("terminal narrower than %d columns", m.opts.MinSideBySideWidth))
		}
	case key.Matches(msg, m.keys.Dismiss):
		m.dismissActive()
	case key.Matches(msg, m.keys.NextFile):
		m.nextFile()
	case key.Matches(msg, m.keys.Copy):
		m.copyVisible()
	case key.Matches(msg, m.keys.Picker):
		m.picker = state.NewPickerSession(m.store.ChangedFiles())
		m.ui = state.OpenPicker(m.ui)
	case key.Matches(msg, m.keys.Help):
		m.ui = state.ToggleHelp(m.ui)
	}
	return m, nil
}

func (m *model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.picker.Move(-1)
	case key.Matches(msg, m.keys.Down):
		m.picker.Move(1)
	case key.Matches(msg, m.keys.Dismiss):
		if path := m.picker.Selected(); path != "" {
			m.store.Dismiss(path)
			m.picker = state.NewPickerSession(m.store.ChangedFiles())
			if path == m.active {
				m.refreshDiff()
			}
		}
	case msg.String() == "enter":
		if path := m.picker.Selected(); path != "" {
			m.active = path
			m.refreshDiff()
		}
		m.picker = nil
		m.ui = state.CloseOverlay(m.ui)
	case msg.String() == "esc":
		m.picker = nil
		m.ui = state.CloseOverlay(m.ui)
	}
	return m, nil
}

func (m *model) dismissActive() {
	if m.active == "" {
		return
	}
	m.store.Dismiss(m.active)
	m.ui = state.WithNotice(m.ui, "dismissed "+m.active)
	if next := m.store.ChangedFiles(); len(next) > 0 {
		m.active = next[0]
	}
	m.refreshDiff()
}

func (m *model) nextFile() {
	changed := m.store.ChangedFiles()
	if len(changed) == 0 {
		return
	}
	next := changed[0]
	for i, path := range changed {
		if path == m.active && i+1 < len(changed) {
			next = changed[i+1]
			break
		}
	}
	m.active = next
	m.refreshDiff()
}

// copyVisible puts the escape-stripped visible window on the clipboard.
func (m *model) copyVisible() {
	rows := m.ctrl.Render(m.ui.Width, m.diffHeight())
	plain := make([]string, len(rows))
	for i, row := range rows {
		plain[i] = util.StripEscapes(row)
	}
	if err := clipboard.WriteAll(strings.Join(plain, "\n")); err != nil {
		m.ui = state.WithNotice(m.ui, "clipboard unavailable")
		return
	}
	m.ui = state.WithNotice(m.ui, "copied")
}

func (m *model) diffHeight() int {
	h := m.ui.Height - 2 // header + status bar
	if h < 0 {
		h = 0
	}
	return h
}

var headerStyle = lipgloss.NewStyle().Bold(true)

func (m *model) View() string {
	var body string
	switch m.ui.Overlay {
	case state.OverlayHelp:
		body = m.help.View()
	case state.OverlayPicker:
		body = m.list.View(m.picker, m.ui.Width)
	default:
		body = strings.Join(m.ctrl.Render(m.ui.Width, m.diffHeight()), "\n")
	}

	header := "no file selected"
	if m.active != "" {
		header = fmt.Sprintf("%s  +%d -%d", m.active, m.lastDiff.Additions, m.lastDiff.Deletions)
		if m.lastDiff.IsNewFile {
			header += "  (new file)"
		}
	}

	status := m.bar.View(m.ui, m.ctrl.Mode().String(), m.store.ChangedFiles(),
		m.opts.MaxStatusFiles, m.ctrl.Offset(), m.ctrl.TotalLines())

	return headerStyle.Render(util.TruncateToWidth(header, m.ui.Width)) + "\n" +
		body + "\n" +
		util.TruncateToWidth(status, m.ui.Width)
}
