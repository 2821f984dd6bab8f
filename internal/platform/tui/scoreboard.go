package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skydodo/internal/registry"
	"github.com/vovakirdan/skydodo/internal/storage"
)

// maxScores is how many runs the scoreboard loads per variant.
const maxScores = 100

// wideColumns is the terminal width from which the player column is shown.
const wideColumns = 80

// scoreboardKeys are the bindings of the scoreboard. Scrolling is handled by
// the table's own key map.
type scoreboardKeys struct {
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultScoreboardKeys = scoreboardKeys{
	Next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next mode")),
	Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("←", "prev mode")),
	Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "menu")),
	Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ScoreboardModel shows the best stored runs, one tab per variant.
type ScoreboardModel struct {
	store     *storage.Store
	variants  []registry.GameInfo
	current   int
	runs      []storage.Run
	stats     *storage.GameStats
	loadErr   error
	table     table.Model
	help      help.Model
	keys      scoreboardKeys
	width     int
	height    int
	quitting  bool
	goingBack bool
	// Standalone makes leaving quit the Bubble Tea program.
	standalone bool
}

// NewScoreboardModel creates a scoreboard sized for the terminal.
// A nil store shows a notice instead of scores.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:    store,
		variants: registry.List(),
		help:     help.New(),
		keys:     defaultScoreboardKeys,
	}
	m.resize(width, height)
	m.load()
	return m
}

// resize rebuilds the table for a new terminal size.
func (m *ScoreboardModel) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width

	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 8},
		{Title: "Lvl", Width: 4},
		{Title: "Ended", Width: 18},
		{Title: "Date", Width: 12},
	}
	if width >= wideColumns {
		cols = append(cols, table.Column{Title: "Player", Width: 12})
	}

	m.table = table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(max(height-10, 3)),
		table.WithStyles(tableStyles()),
	)
	m.fillTable()
}

// load reads the runs and stats of the current variant.
func (m *ScoreboardModel) load() {
	m.runs, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil && len(m.variants) > 0 {
		id := m.variants[m.current].ID
		if m.runs, m.loadErr = m.store.TopScores(id, maxScores); m.loadErr == nil {
			m.stats, m.loadErr = m.store.GameStats(id)
		}
	}
	m.fillTable()
}

func (m *ScoreboardModel) fillTable() {
	wide := m.width >= wideColumns
	rows := make([]table.Row, 0, len(m.runs))
	for i, r := range m.runs {
		cause := r.Cause
		if cause == "" {
			cause = "-"
		}
		row := table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Level),
			cause,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
		if wide {
			row = append(row, r.Session)
		}
		rows = append(rows, row)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, m.leave()
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, m.leave()
		case key.Matches(msg, m.keys.Next):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.cycle(-1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// cycle moves to another variant tab, wrapping around.
func (m *ScoreboardModel) cycle(delta int) {
	if n := len(m.variants); n > 0 {
		m.current = ((m.current+delta)%n + n) % n
		m.load()
	}
}

func (m ScoreboardModel) leave() tea.Cmd {
	if m.standalone {
		return tea.Quit
	}
	return nil
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.standalone && (m.quitting || m.goingBack) {
		return ""
	}

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(m.body())

	lines := []string{
		"",
		centerText(titleStyle.Render("HIGH SCORES"), m.width),
		"",
		centerText(m.tabs(), m.width),
		"",
		centerText(panel, m.width),
		centerText(m.summary(), m.width),
		"",
		dimStyle.Render(m.help.View(m.keys)),
	}
	return strings.Join(lines, "\n")
}

func (m ScoreboardModel) tabs() string {
	parts := make([]string, 0, len(m.variants))
	for i, v := range m.variants {
		if i == m.current {
			parts = append(parts, pickStyle.Padding(0, 1).Render(v.Title))
			continue
		}
		parts = append(parts, dimStyle.Padding(0, 1).Render(v.Title))
	}
	return strings.Join(parts, " ")
}

func (m ScoreboardModel) body() string {
	notice := dimStyle.Italic(true).Padding(2, 4)
	switch {
	case m.store == nil:
		return notice.Render("Score history is unavailable.")
	case m.loadErr != nil:
		return errorStyle.Padding(2, 4).Render("Could not load scores: " + m.loadErr.Error())
	case len(m.runs) == 0:
		return notice.Render("No scores recorded yet.\nGo climb!")
	}
	return m.table.View()
}

func (m ScoreboardModel) summary() string {
	if m.stats == nil || m.stats.Runs == 0 {
		return ""
	}
	return dimStyle.Render(fmt.Sprintf("%d runs  |  best %d  |  avg %.0f  |  highest level %d",
		m.stats.Runs, m.stats.HighScore, m.stats.AvgScore, m.stats.BestLevel))
}

// IsGoingBack reports whether the player asked for the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the player asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// Runs returns the runs shown on the current tab.
func (m ScoreboardModel) Runs() []storage.Run {
	return m.runs
}

// RunScoreboard shows the scoreboard until the player leaves it.
// goBack is false when the player chose to quit.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	m := NewScoreboardModel(store, width, height)
	m.standalone = true

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return false, fmt.Errorf("tui: %w", err)
	}
	sm, ok := final.(ScoreboardModel)
	return ok && sm.IsGoingBack(), nil
}
