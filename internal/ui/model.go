package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/hypr-showkey/showkey/internal/config"
	"github.com/hypr-showkey/showkey/internal/domain"
	"github.com/hypr-showkey/showkey/internal/logging"
	"github.com/hypr-showkey/showkey/internal/ports"
	"github.com/hypr-showkey/showkey/internal/services"
	"github.com/hypr-showkey/showkey/internal/theme"
)

type uiState int

const (
	stateSearch uiState = iota
	stateHelp
)

// title (1) + search box (3) + status bar (2)
const chromeHeight = 6

// ErrNoClipboard is shown when enter is pressed without a clipboard
var ErrNoClipboard = errors.New("no clipboard available")

// Options configures a Model
type Options struct {
	Clipboard        ports.Clipboard
	InitialQuery     string
	Keys             config.KeyBindingsConfig
	NoticeDelay      time.Duration
	Report           domain.IngestReport
	ShowDescriptions bool
	ShowRaw          bool
	Styles           theme.Styles
	Usage            *services.UsageService
}

// Model is the interactive keybinding viewer
type Model struct {
	clipboard        ports.Clipboard
	grid             domain.LayoutGrid
	height           int
	helpScreen       *Dialog // Help screen dialog
	input            textinput.Model
	keys             KeyMap
	layout           services.LayoutEngine
	notices          *NoticeManager
	query            string
	report           domain.IngestReport
	results          []domain.SearchResult
	search           *services.SearchService // baseSearch narrowed to the visible fields
	baseSearch       *services.SearchService
	selected         int // rank of the selected result
	showDescriptions bool
	showRaw          bool
	state            uiState
	store            *domain.BindingStore
	styles           theme.Styles
	usage            *services.UsageService
	width            int
}

// NewModel creates the viewer over an immutable store
func NewModel(store *domain.BindingStore, search *services.SearchService, opts Options) *Model {
	input := textinput.New()
	input.Prompt = "› "
	input.Placeholder = "Type to search... (? for help, esc to quit)"
	input.PromptStyle = lipgloss.NewStyle().Foreground(opts.Styles.Palette.Key)
	input.TextStyle = lipgloss.NewStyle().Foreground(opts.Styles.Palette.SearchFg)
	input.PlaceholderStyle = lipgloss.NewStyle().Foreground(opts.Styles.Palette.Description)
	input.SetValue(opts.InitialQuery)
	input.Focus()

	m := &Model{
		clipboard:        opts.Clipboard,
		input:            input,
		keys:             NewKeyMap(opts.Keys),
		layout:           services.NewLayoutEngine(opts.ShowDescriptions),
		notices:          NewNoticeManager(opts.NoticeDelay),
		report:           opts.Report,
		baseSearch:       search,
		showDescriptions: opts.ShowDescriptions,
		showRaw:          opts.ShowRaw,
		state:            stateSearch,
		store:            store,
		styles:           opts.Styles,
		usage:            opts.Usage,
	}
	m.scopeSearch()
	m.refresh()
	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = max(10, msg.Width-8)
		m.relayout()
		if m.state == stateHelp {
			return m.updateHelp(msg)
		}
		return m, nil
	case clearNoticeMsg:
		m.notices.Clear(msg.seq)
		return m, nil
	case copiedMsg:
		return m, m.handleCopied(msg)
	}

	if m.state == stateHelp {
		return m.updateHelp(msg)
	}
	return m.updateSearch(msg)
}

func (m *Model) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, m.keys.Application.ForceQuit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Search.ClearQuery):
		if m.input.Value() == "" {
			return m, tea.Quit
		}
		m.input.SetValue("")
		m.refresh()
		return m, nil
	case key.Matches(keyMsg, m.keys.Application.Help):
		return m, m.showHelp()
	case key.Matches(keyMsg, m.keys.Search.Copy):
		return m, m.copySelected()
	case key.Matches(keyMsg, m.keys.Search.ToggleRaw):
		m.showRaw = !m.showRaw
		return m, nil
	case key.Matches(keyMsg, m.keys.Search.ToggleDescriptions):
		m.showDescriptions = !m.showDescriptions
		m.layout = services.NewLayoutEngine(m.showDescriptions)
		m.scopeSearch()
		m.refresh()
		return m, nil
	case key.Matches(keyMsg, m.keys.Navigation.Up):
		m.moveBy(-1)
		return m, nil
	case key.Matches(keyMsg, m.keys.Navigation.Down):
		m.moveBy(1)
		return m, nil
	case key.Matches(keyMsg, m.keys.Navigation.Left):
		m.moveColumn(-1)
		return m, nil
	case key.Matches(keyMsg, m.keys.Navigation.Right):
		m.moveColumn(1)
		return m, nil
	case key.Matches(keyMsg, m.keys.Navigation.PageUp):
		m.page(-1)
		return m, nil
	case key.Matches(keyMsg, m.keys.Navigation.PageDown):
		m.page(1)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != m.query {
		m.refresh()
	}
	return m, cmd
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Application.ForceQuit) {
		return m, tea.Quit
	}

	updated, cmd := m.helpScreen.Update(msg)
	m.helpScreen = updated.(*Dialog)
	if content, ok := m.helpScreen.Content().(*HelpScreen); ok && content.Completed {
		m.helpScreen = nil
		m.state = stateSearch
	}
	return m, cmd
}

func (m *Model) showHelp() tea.Cmd {
	content := NewHelpScreen(&m.keys, m.styles, m.report)
	m.helpScreen = NewDialog("Keyboard shortcuts", content, m.styles)
	m.state = stateHelp

	// Send initial WindowSizeMsg so viewport can initialize
	initCmd := m.helpScreen.Init()
	updated, sizeCmd := m.helpScreen.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	m.helpScreen = updated.(*Dialog)
	return tea.Batch(initCmd, sizeCmd)
}

// scopeSearch matches descriptions only while they are on screen
func (m *Model) scopeSearch() {
	include := m.baseSearch.Options().IncludeDescription && m.showDescriptions
	m.search = m.baseSearch.WithIncludeDescription(include)
}

// refresh reruns the search for the current query and resets the selection
func (m *Model) refresh() {
	m.query = m.input.Value()
	m.results = m.search.SearchAll(m.query, m.store)
	m.selected = 0
	m.relayout()
}

// relayout recomputes the grid for the current size, keeping the selection visible
func (m *Model) relayout() {
	m.grid = m.layout.Layout(m.results, m.width, m.gridHeight())
	if len(m.results) == 0 {
		m.selected = 0
		return
	}
	m.selected = max(0, min(m.selected, len(m.results)-1))
	m.ensureSelectedVisible()
}

func (m *Model) gridHeight() int {
	return max(1, m.height-chromeHeight)
}

func (m *Model) ensureSelectedVisible() {
	_, row := m.grid.Position(m.selected)
	m.grid = m.grid.EnsureVisible(row)
}

// moveBy moves the selection in rank order, wrapping at both ends
func (m *Model) moveBy(delta int) {
	n := len(m.results)
	if n == 0 {
		return
	}
	m.selected = ((m.selected+delta)%n + n) % n
	m.ensureSelectedVisible()
}

// moveColumn keeps the row when possible, else lands on the last row of the target column
func (m *Model) moveColumn(delta int) {
	if m.grid.Empty() {
		return
	}
	col, row := m.grid.Position(m.selected)
	target := col + delta
	if target < 0 || target >= m.grid.ColumnCount() {
		return
	}
	rank := m.grid.RankAt(target, row)
	if rank < 0 {
		rank = m.grid.RankAt(target, len(m.grid.Columns[target])-1)
	}
	m.selected = rank
	m.ensureSelectedVisible()
}

// page scrolls one screen and moves the selection by the same number of rows within its column
func (m *Model) page(direction int) {
	if m.grid.Empty() {
		return
	}
	col, row := m.grid.Position(m.selected)
	step := direction * m.grid.VisibleRows
	row = max(0, min(row+step, len(m.grid.Columns[col])-1))
	m.selected = m.grid.RankAt(col, row)
	m.grid = m.grid.ScrollTo(m.grid.ScrollOffset + step)
	m.ensureSelectedVisible()
}

func (m *Model) copySelected() tea.Cmd {
	r, ok := m.Selected()
	if !ok {
		return nil
	}
	if m.clipboard == nil {
		return m.notices.SetError(ErrNoClipboard)
	}

	clip := m.clipboard
	binding := r.Binding
	return func() tea.Msg {
		method, err := clip.Copy(binding.Raw)
		return copiedMsg{binding: binding, err: err, method: method}
	}
}

func (m *Model) handleCopied(msg copiedMsg) tea.Cmd {
	if msg.err != nil {
		logging.Logger.Warn("Copy to clipboard failed", "combo", msg.binding.Combo(), "error", msg.err)
		return m.notices.SetError(fmt.Errorf("failed to copy %s: %w", msg.binding.Combo(), msg.err))
	}

	m.usage.Track(msg.binding)
	logging.Logger.Debug("Copied binding", "combo", msg.binding.Combo(), "method", msg.method)
	return m.notices.SetInfo(fmt.Sprintf("Copied %s to %s", msg.binding.Combo(), msg.method))
}

// Query returns the current search query
func (m *Model) Query() string { return m.query }

// Results returns the ranked results for the current query
func (m *Model) Results() []domain.SearchResult { return m.results }

// Grid returns the current layout
func (m *Model) Grid() domain.LayoutGrid { return m.grid }

// Selected returns the selected result, if any
func (m *Model) Selected() (domain.SearchResult, bool) {
	if m.selected < 0 || m.selected >= len(m.results) {
		return domain.SearchResult{}, false
	}
	return m.results[m.selected], true
}

func (m *Model) View() string {
	if m.state == stateHelp && m.helpScreen != nil {
		return m.helpScreen.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTitle(),
		m.styles.Search.Width(max(1, m.width-2)).Render(m.input.View()),
		m.renderGrid(),
		m.renderStatus(),
	)
}

func (m *Model) renderTitle() string {
	title := fmt.Sprintf("Keybindings (%d/%d)", len(m.results), m.store.Len())
	if n := m.grid.ColumnCount(); n > 1 {
		title += fmt.Sprintf(" - %d columns", n)
	}
	return m.styles.Title.Render(title)
}

func (m *Model) renderGrid() string {
	height := m.gridHeight()
	if m.grid.Empty() {
		msg := "No matches"
		if m.store.Len() == 0 {
			msg = "No keybindings found\n" + m.report.Summary()
		}
		return lipgloss.Place(max(1, m.width), height, lipgloss.Center, lipgloss.Center, m.styles.NoMatches.Render(msg))
	}

	cellWidth := max(1, m.grid.ColumnWidth-1)
	columns := make([]string, 0, m.grid.ColumnCount())
	for c := range m.grid.ColumnCount() {
		var lines []string
		for i, r := range m.grid.VisibleColumn(c) {
			rank := m.grid.RankAt(c, m.grid.ScrollOffset+i)
			for _, line := range cellLines(r, m.styles, cellWidth, m.layout.RowHeight, rank == m.selected) {
				lines = append(lines, line+" ")
			}
		}
		columns = append(columns, strings.Join(lines, "\n"))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	return lipgloss.NewStyle().Height(height).MaxHeight(height).Render(body)
}

func (m *Model) renderStatus() string {
	if err := m.notices.Error(); err != nil {
		return theme.ErrorStyle.Render(formatErrorForDisplay(err, m.width))
	}

	var selection string
	if r, ok := m.Selected(); ok {
		b := r.Binding
		if m.showRaw {
			selection = "Raw: " + b.Raw
		} else {
			selection = fmt.Sprintf("Category: %s | Action: %s | %s", b.Category, b.Action(), b.Source)
		}
	} else {
		selection = "No keybindings found"
	}

	info := m.notices.Info()
	infoStyle := m.styles.Action
	if info == "" {
		info = m.report.Summary() + "  " + m.shortHelp()
		infoStyle = m.styles.Status
		if m.report.HasProblems() {
			infoStyle = infoStyle.Foreground(m.styles.Palette.Category)
		}
	}

	return m.styles.Description.Render(m.fit(selection)) + "\n" + infoStyle.Render(m.fit(info))
}

func (m *Model) shortHelp() string {
	parts := make([]string, 0, 4)
	for _, b := range m.keys.ShortHelp() {
		parts = append(parts, b.Help().Key+" "+b.Help().Desc)
	}
	return strings.Join(parts, " • ")
}

func (m *Model) fit(text string) string {
	if m.width <= 0 {
		return text
	}
	return runewidth.Truncate(text, m.width, ellipsis)
}
