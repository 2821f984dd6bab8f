package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skydodo/internal/core"
)

// MenuChoice is an entry of the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceZen
	ChoiceScores
	ChoiceSettings
	ChoiceQuit
)

// MenuItem is a selectable line of the main menu.
type MenuItem struct {
	Choice MenuChoice
	Title  string
	Hint   string
}

// MenuItems returns the main menu entries. Settings are local-only and are
// left out when withSettings is false.
func MenuItems(withSettings bool) []MenuItem {
	items := []MenuItem{
		{ChoicePlay, "Play", "climb, dodge, survive"},
		{ChoiceZen, "Zen", "no enemies"},
		{ChoiceScores, "High scores", ""},
	}
	if withSettings {
		items = append(items, MenuItem{ChoiceSettings, "Settings", "volume"})
	}
	return append(items, MenuItem{ChoiceQuit, "Quit", ""})
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	best      int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	chosen    MenuChoice
	// Standalone makes a choice quit the Bubble Tea program.
	standalone bool
}

// NewMenuModel creates a new menu model. best is shown under the title.
func NewMenuModel(cfg core.RuntimeConfig, best int, withSettings bool) MenuModel {
	return MenuModel{
		items:     MenuItems(withSettings),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		best:      best,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		return m.choose(ChoiceQuit)

	case MenuActionUp:
		m.cursor = (m.cursor - 1 + len(m.items)) % len(m.items)

	case MenuActionDown:
		m.cursor = (m.cursor + 1) % len(m.items)

	case MenuActionSelect:
		return m.choose(m.items[m.cursor].Choice)
	}
	return m, nil
}

func (m MenuModel) choose(c MenuChoice) (tea.Model, tea.Cmd) {
	m.chosen = c
	if m.standalone {
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu, centered in the terminal.
func (m MenuModel) View() string {
	if m.chosen != ChoiceNone && m.standalone {
		return ""
	}

	lines := []string{
		titleStyle.Render("S K Y D O D O"),
		"",
		dimStyle.Render(fmt.Sprintf("best %d", m.best)),
		"",
	}
	for i, item := range m.items {
		hint := ""
		if i != m.cursor {
			lines = append(lines, "  "+item.Title+"  ")
		} else {
			lines = append(lines, pickStyle.Render("> "+item.Title+"  "))
			hint = dimStyle.Render(item.Hint)
		}
		lines = append(lines, hint)
	}
	lines = append(lines, "", dimStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Q: Quit"))

	var b strings.Builder
	if top := (m.height - len(lines)) / 2; top > 0 {
		b.WriteString(strings.Repeat("\n", top))
	}
	for _, l := range lines {
		b.WriteString(centerText(l, m.width))
		b.WriteByte('\n')
	}
	return b.String()
}

// Chosen returns the selected entry, or ChoiceNone.
func (m MenuModel) Chosen() MenuChoice {
	return m.chosen
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	Config core.RuntimeConfig
}

// RunMenu shows the main menu and returns the player's choice.
func RunMenu(cfg core.RuntimeConfig, best int) (MenuResult, error) {
	model := NewMenuModel(cfg, best, true)
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: ChoiceQuit, Config: cfg}, fmt.Errorf("tui: %w", err)
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Chosen() == ChoiceNone {
		return MenuResult{Choice: ChoiceQuit, Config: cfg}, nil
	}
	return MenuResult{Choice: m.Chosen(), Config: m.Config()}, nil
}
