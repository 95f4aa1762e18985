package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Zuo-Peng/hl7-viewer/internal/hl7"
	"github.com/Zuo-Peng/hl7-viewer/internal/open"
	"github.com/Zuo-Peng/hl7-viewer/internal/session"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tuiMode int

const (
	modeBrowse tuiMode = iota
	modeSearch
	modeOpen
)

type Options struct {
	Editor string
}

// message types

type editorFinishedMsg struct {
	err error
}

// model

type model struct {
	sess       *session.Session
	opts       Options
	mode       tuiMode
	input      textinput.Model
	fields     table.Model
	cursor     int
	selected   bool // cursor points at a chosen segment
	listOffset int
	lastTerm   string
	status     string
	statusErr  bool
	width      int
	height     int
	ready      bool
	quitting   bool
}

func initialModel(sess *session.Session, opts Options) model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = styleInputPrompt
	ti.TextStyle = styleInput
	ti.CharLimit = 1024

	m := model{
		sess:  sess,
		opts:  opts,
		input: ti,
	}
	m.fields = newFieldTable(m.detailWidth(), m.fieldTableHeight())
	if !sess.Loaded() {
		m.setStatus("No file loaded. Press C-o to open one.", false)
	}
	return m
}

// Run starts the viewer on sess and blocks until it exits.
func Run(sess *session.Session, opts Options) error {
	p := tea.NewProgram(initialModel(sess, opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func (m model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.fields.SetColumns(fieldColumns(m.detailWidth()))
		m.fields.SetWidth(m.detailWidth())
		m.fields.SetHeight(m.fieldTableHeight())
		m.adjustListScroll(m.panelHeight())
		return m, nil

	case tea.KeyMsg:
		if m.mode != modeBrowse {
			return m.updateInput(msg)
		}
		return m.updateBrowse(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg), nil

	case editorFinishedMsg:
		if msg.err != nil {
			m.setStatus("Editor: "+msg.err.Error(), true)
			return m, nil
		}
		m.reload()
		return m, nil
	}

	return m, nil
}

func (m model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		if !m.selected {
			m.selectSegment(0)
		} else if m.cursor > 0 {
			m.selectSegment(m.cursor - 1)
		}
		return m, nil

	case key.Matches(msg, keys.Down):
		if !m.selected {
			m.selectSegment(0)
		} else if m.cursor < len(m.sess.Names())-1 {
			m.selectSegment(m.cursor + 1)
		}
		return m, nil

	case key.Matches(msg, keys.Search):
		return m, m.startInput(modeSearch, "Search...", m.lastTerm)

	case key.Matches(msg, keys.Open):
		return m, m.startInput(modeOpen, "Path to HL7 file...", "")

	case key.Matches(msg, keys.Copy):
		m.copySelected()
		return m, nil

	case key.Matches(msg, keys.Edit):
		return m, m.editSelected()

	case key.Matches(msg, keys.FieldsUp):
		m.scrollFields(-m.fieldTableHeight() / 2)
		return m, nil

	case key.Matches(msg, keys.FieldsDn):
		m.scrollFields(m.fieldTableHeight() / 2)
		return m, nil

	case key.Matches(msg, keys.PageUp):
		m.scrollFields(-m.fieldTableHeight())
		return m, nil

	case key.Matches(msg, keys.PageDown):
		m.scrollFields(m.fieldTableHeight())
		return m, nil
	}
	return m, nil
}

func (m model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.ForceQ):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Cancel):
		m.endInput()
		return m, nil

	case key.Matches(msg, keys.Submit):
		value := m.input.Value()
		mode := m.mode
		m.endInput()
		switch mode {
		case modeSearch:
			m.runSearch(value)
		case modeOpen:
			m.loadFile(value)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) updateMouse(msg tea.MouseMsg) model {
	if !m.ready || len(m.sess.Names()) == 0 {
		return m
	}

	region, itemIdx := m.hitTest(msg.X, msg.Y)
	n := len(m.sess.Names())

	switch {
	case region == regionList && msg.Button == tea.MouseButtonWheelUp:
		if m.listOffset > 0 {
			m.listOffset--
		}

	case region == regionList && msg.Button == tea.MouseButtonWheelDown:
		maxOffset := n - m.panelHeight()/linesPerItem
		if maxOffset < 0 {
			maxOffset = 0
		}
		if m.listOffset < maxOffset {
			m.listOffset++
		}

	case region == regionList && msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		if itemIdx >= 0 && itemIdx < n {
			m.selectSegment(itemIdx)
		}

	case region == regionDetail && msg.Button == tea.MouseButtonWheelUp:
		m.scrollFields(-1)

	case region == regionDetail && msg.Button == tea.MouseButtonWheelDown:
		m.scrollFields(1)
	}
	return m
}

// actions

func (m *model) startInput(mode tuiMode, placeholder, value string) tea.Cmd {
	m.mode = mode
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *model) endInput() {
	m.mode = modeBrowse
	m.input.Blur()
}

func (m *model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

func (m *model) selectSegment(i int) {
	seg, ok := m.sess.Segment(i)
	if !ok {
		return
	}
	m.cursor = i
	m.selected = true
	m.adjustListScroll(m.panelHeight())
	m.fields.SetRows(fieldRows(seg))
	m.fields.GotoTop()
}

func (m *model) clearSelection() {
	m.cursor = 0
	m.selected = false
	m.listOffset = 0
	m.fields.SetRows(nil)
}

func (m model) selectedSegment() (hl7.Segment, bool) {
	if !m.selected {
		return hl7.Segment{}, false
	}
	return m.sess.Segment(m.cursor)
}

func (m *model) runSearch(term string) {
	m.lastTerm = strings.TrimSpace(term)
	idx, found, err := m.sess.Find(term)
	switch {
	case errors.Is(err, hl7.ErrEmptySearchTerm):
		m.setStatus("Enter search term.", true)
	case errors.Is(err, hl7.ErrNoMessage):
		m.setStatus("No HL7 data loaded.", true)
	case err != nil:
		m.setStatus(err.Error(), true)
	case !found:
		m.setStatus("No match found for: "+m.lastTerm, true)
	default:
		m.selectSegment(idx)
		seg, _ := m.sess.Segment(idx)
		m.setStatus(fmt.Sprintf("Found %q in segment %d (%s)", m.lastTerm, idx, seg.Name), false)
	}
}

func (m *model) loadFile(path string) {
	path = expandHome(strings.TrimSpace(path))
	if path == "" {
		return
	}
	if err := m.sess.Load(path); err != nil {
		m.setStatus("Error loading file: "+err.Error(), true)
		return
	}
	m.clearSelection()
	m.setStatus(fmt.Sprintf("Loaded %d segments from %s", len(m.sess.Names()), path), false)
}

// reload re-reads the current file after an edit, keeping the selection
// when the segment still exists.
func (m *model) reload() {
	if !m.sess.Loaded() {
		return
	}
	cursor, selected := m.cursor, m.selected
	if err := m.sess.Load(m.sess.Path()); err != nil {
		m.setStatus("Error loading file: "+err.Error(), true)
		return
	}
	m.clearSelection()
	if selected {
		m.selectSegment(cursor)
	}
	m.setStatus("Reloaded "+m.sess.Path(), false)
}

func (m *model) copySelected() {
	seg, ok := m.selectedSegment()
	if !ok {
		m.setStatus("No segment selected.", true)
		return
	}
	if err := clipboard.WriteAll(seg.Line()); err != nil {
		m.setStatus("Clipboard: "+err.Error(), true)
		return
	}
	m.setStatus("Copied "+seg.Name+" segment to clipboard", false)
}

func (m *model) editSelected() tea.Cmd {
	if !m.sess.Loaded() {
		m.setStatus("No HL7 data loaded.", true)
		return nil
	}
	seg := 0
	if m.selected {
		seg = m.cursor
	}
	line, err := open.SegmentLine(m.sess.Path(), seg)
	if err != nil {
		m.setStatus("Editor: "+err.Error(), true)
		return nil
	}
	cmd := open.EditorCommand(m.opts.Editor, m.sess.Path(), line)
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

func (m *model) scrollFields(n int) {
	if !m.selected || len(m.fields.Rows()) == 0 {
		return
	}
	if n < 0 {
		m.fields.MoveUp(-n)
	} else {
		m.fields.MoveDown(n)
	}
}

// View renders the full TUI.
func (m model) View() string {
	if m.quitting || !m.ready {
		return ""
	}

	listW := m.listWidth()
	detailW := m.detailWidth()
	panelH := m.panelHeight()

	listPanel := stylePanelBorder.
		Width(listW).
		Height(panelH).
		Render(m.renderList(listW, panelH))

	detailPanel := styleActiveBorder.
		Width(detailW).
		Height(panelH).
		Render(m.renderDetail(detailW))

	panels := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, detailPanel)

	return lipgloss.JoinVertical(lipgloss.Left, m.topRow(), panels, m.statusBar())
}

func (m model) topRow() string {
	if m.mode != modeBrowse {
		return m.input.View()
	}
	if !m.sess.Loaded() {
		return styleTitle.Render("hl7v")
	}
	h := m.sess.Header()
	return styleFileLine.Render(fmt.Sprintf("%s  [%s] %s", m.sess.Path(), h.MessageType, h.ControlID))
}

// helper methods

func (m model) listWidth() int {
	if m.width <= 0 {
		return 24
	}
	// 25% for the segment list, minus border
	w := m.width*25/100 - 2
	if w < 16 {
		w = 16
	}
	return w
}

func (m model) detailWidth() int {
	if m.width <= 0 {
		return 72
	}
	w := m.width - m.listWidth() - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) panelHeight() int {
	if m.height <= 0 {
		return 20
	}
	// Subtract top row (1) + status bar (1) + borders (2)
	h := m.height - 4
	if h < 5 {
		h = 5
	}
	return h
}

type mouseRegion int

const (
	regionNone mouseRegion = iota
	regionList
	regionDetail
)

// hitTest maps terminal coordinates to a panel region and list item index.
func (m model) hitTest(x, y int) (mouseRegion, int) {
	pH := m.panelHeight()
	contentYStart := 2 // top row (1) + top border (1)
	contentYEnd := contentYStart + pH - 1

	if y < contentYStart || y > contentYEnd {
		return regionNone, -1
	}
	relY := y - contentYStart

	lw := m.listWidth()
	listBoxRight := lw + 1 // col 0=border, 1..lw=content, lw+1=border

	if x >= 1 && x <= lw {
		return regionList, m.listOffset + relY/linesPerItem
	}

	if x > listBoxRight+1 {
		return regionDetail, -1
	}

	return regionNone, -1
}

func (m model) statusBar() string {
	var parts []string
	if m.status != "" {
		if m.statusErr {
			parts = append(parts, styleStatusError.Render(m.status))
		} else {
			parts = append(parts, styleStatusInfo.Render(m.status))
		}
	}
	parts = append(parts, fmt.Sprintf("%d segments", len(m.sess.Names())))
	switch m.mode {
	case modeBrowse:
		parts = append(parts, "up/dn select", "/ search", "C-o open", "y copy", "e edit", "q quit")
	default:
		parts = append(parts, "Enter submit", "Esc cancel")
	}
	return styleStatusBar.Render(strings.Join(parts, " | "))
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
