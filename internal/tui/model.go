package tui

import (
	"fmt"
	"time"

	"aetherfm/internal/config"
	"aetherfm/internal/log"
	"aetherfm/internal/session"
	"aetherfm/internal/tui/common"
	"aetherfm/internal/tui/views"
	"aetherfm/internal/watch"
	"aetherfm/pkg/types"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// changedMsg reports that the watched directory changed on disk.
type changedMsg string

type Model struct {
	session *session.Session
	cfg     *config.Config
	watcher *watch.Watcher

	keys KeyMap

	// Core state
	mode     common.Mode
	entries  []types.Entry
	cursor   int
	showHelp bool
	status   string
	height   int

	// Prompt and confirm state
	input   textinput.Model
	pending session.Action
	target  string
}

func New(cfg *config.Config, s *session.Session) *Model {
	input := textinput.New()
	input.CharLimit = 4096

	m := &Model{
		session: s,
		cfg:     cfg,
		keys:    DefaultKeyMap(),
		mode:    common.Normal,
		input:   input,
	}
	m.refresh()
	return m
}

// Run starts the terminal interface on s and blocks until the user quits.
func Run(cfg *config.Config, s *session.Session) error {
	m := New(cfg, s)
	defer m.Close()

	if cfg.Watch.Enabled {
		if err := m.watch(); err != nil {
			log.Warnf("Directory watching disabled: %v", err)
		}
	}

	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m *Model) watch() error {
	w, err := watch.New(time.Duration(m.cfg.Watch.DebounceMS) * time.Millisecond)
	if err != nil {
		return err
	}
	m.watcher = w
	return w.Follow(m.session.Location())
}

// Close releases the directory watcher.
func (m *Model) Close() {
	if m.watcher != nil {
		_ = m.watcher.Close()
		m.watcher = nil
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return m.waitForChange()
}

func (m *Model) waitForChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	changes := m.watcher.Changes()
	return func() tea.Msg {
		dir, ok := <-changes
		if !ok {
			return nil
		}
		return changedMsg(dir)
	}
}

// View implements tea.Model
func (m *Model) View() string {
	rows := 0
	if m.height > 0 {
		// Title, location, prompt and key lines take the rest.
		rows = m.height - 12
		if rows < 3 {
			rows = 3
		}
	}
	return views.RenderMainView(m, rows)
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		return m, nil
	case changedMsg:
		if string(msg) == m.session.Location() {
			m.refresh()
		}
		return m, m.waitForChange()
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case common.Prompt:
		return m.handlePromptKeys(msg)
	case common.Confirm:
		return m.handleConfirmKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

func (m *Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case key.Matches(msg, k.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, k.GotoBottom):
		if len(m.entries) > 0 {
			m.cursor = len(m.entries) - 1
		}
	case key.Matches(msg, k.GotoTop):
		m.cursor = 0
	case key.Matches(msg, k.GoBack):
		m.run(session.ActionUp, session.Request{})
	case key.Matches(msg, k.Activate):
		m.run(session.ActionActivate, session.Request{Name: m.CurrentName()})
	case key.Matches(msg, k.Copy):
		name := m.CurrentName()
		if res := m.run(session.ActionCopy, session.Request{Name: name}); res.Err == nil {
			m.status = "Copied " + name
		}
	case key.Matches(msg, k.Paste):
		m.run(session.ActionPaste, session.Request{})
	case key.Matches(msg, k.Delete):
		name := m.CurrentName()
		if name == "" {
			break
		}
		if !m.cfg.ConfirmDelete {
			m.run(session.ActionDelete, session.Request{Name: name, Confirmed: true})
			break
		}
		m.pending, m.target = session.ActionDelete, name
		m.mode = common.Confirm
	case key.Matches(msg, k.Rename):
		if name := m.CurrentName(); name != "" {
			return m, m.startPrompt(session.ActionRename, name, name)
		}
	case key.Matches(msg, k.NewFile):
		return m, m.startPrompt(session.ActionCreateFile, "", "new_file.txt")
	case key.Matches(msg, k.NewFolder):
		return m, m.startPrompt(session.ActionCreateFolder, "", "New Folder")
	case key.Matches(msg, k.Jump):
		return m, m.startPrompt(session.ActionJump, "", m.session.Location())
	case key.Matches(msg, k.Refresh):
		m.refresh()
	case key.Matches(msg, k.Help):
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m *Model) startPrompt(action session.Action, target, initial string) tea.Cmd {
	m.mode = common.Prompt
	m.pending, m.target = action, target
	m.input.Prompt = promptLabel(action)
	m.input.SetValue(initial)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.endPrompt()
		return m, nil
	case tea.KeyEnter:
		value := m.input.Value()
		action, target := m.pending, m.target
		m.endPrompt()
		if value == "" {
			return m, nil
		}
		switch action {
		case session.ActionRename:
			if value != target {
				m.run(action, session.Request{Name: target, NewName: value})
			}
		case session.ActionJump:
			m.run(action, session.Request{Path: value})
		default:
			m.run(action, session.Request{Name: value})
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	confirmed := msg.String() == "y" || msg.String() == "Y"
	action, target := m.pending, m.target
	m.endPrompt()
	m.run(action, session.Request{Name: target, Confirmed: confirmed})
	return m, nil
}

func (m *Model) endPrompt() {
	m.mode = common.Normal
	m.pending, m.target = "", ""
	m.input.Blur()
	m.input.SetValue("")
}

// run dispatches an action and re-lists when asked to. Failures are only
// logged.
func (m *Model) run(action session.Action, req session.Request) session.Result {
	res := m.session.Dispatch(action, req)
	if res.Navigated {
		m.cursor = 0
	}
	if res.Refresh {
		m.refresh()
	}
	return res
}

func (m *Model) refresh() {
	m.entries = m.session.List()
	if m.cursor >= len(m.entries) {
		m.cursor = len(m.entries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.watcher != nil {
		if err := m.watcher.Follow(m.session.Location()); err != nil {
			log.LogWithFields(log.F("directory", m.session.Location())).Debugf("cannot watch: %v", err)
		}
	}
}

func promptLabel(action session.Action) string {
	switch action {
	case session.ActionRename:
		return "Rename to: "
	case session.ActionCreateFile:
		return "New file: "
	case session.ActionCreateFolder:
		return "New folder: "
	case session.ActionJump:
		return "Go to: "
	}
	return "> "
}

// Getters

func (m *Model) Entries() []types.Entry {
	return m.entries
}

func (m *Model) Cursor() int {
	return m.cursor
}

func (m *Model) ShowHelp() bool {
	return m.showHelp
}

func (m *Model) Mode() common.Mode {
	return m.mode
}

// CurrentDir returns the directory being shown
func (m *Model) CurrentDir() string {
	return m.session.Location()
}

// CurrentName returns the entry under the cursor, or "".
func (m *Model) CurrentName() string {
	if m.cursor >= 0 && m.cursor < len(m.entries) {
		return m.entries[m.cursor].Name
	}
	return ""
}

// PromptView renders the active prompt or confirmation question.
func (m *Model) PromptView() string {
	if m.mode == common.Confirm {
		return fmt.Sprintf("Are you sure you want to delete '%s'? (y/n)", m.target)
	}
	return m.input.View()
}

// Status returns the status line: the last message, or the clipboard.
func (m *Model) Status() string {
	if m.status != "" {
		return m.status
	}
	if clip, ok := m.session.Clipboard(); ok {
		return "Clipboard: " + clip
	}
	return ""
}

// SetCursor sets the cursor position
func (m *Model) SetCursor(pos int) {
	if pos >= 0 && pos < len(m.entries) {
		m.cursor = pos
	}
}
