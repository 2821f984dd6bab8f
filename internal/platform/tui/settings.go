package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skydodo/internal/audio"
	"github.com/vovakirdan/skydodo/internal/persist"
)

// volumeStep is the change per key press.
const volumeStep = 0.1

// SettingsKeyMap defines the key bindings for the settings screen.
type SettingsKeyMap struct {
	Louder  key.Binding
	Quieter key.Binding
	Mute    key.Binding
	Save    key.Binding
	Cancel  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SettingsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quieter, k.Louder, k.Mute, k.Save, k.Cancel}
}

// FullHelp returns key bindings for the full help view.
func (k SettingsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultSettingsKeyMap returns default key bindings.
func DefaultSettingsKeyMap() SettingsKeyMap {
	return SettingsKeyMap{
		Louder: key.NewBinding(
			key.WithKeys("right", "d", "l", "+"),
			key.WithHelp("→", "louder"),
		),
		Quieter: key.NewBinding(
			key.WithKeys("left", "a", "h", "-"),
			key.WithHelp("←", "quieter"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Save: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "b", "q", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// SettingsModel edits the persisted settings.
type SettingsModel struct {
	settings persist.Settings
	original persist.Settings
	store    *persist.SettingsStore
	sound    *audio.SoundManager
	bar      progress.Model
	help     help.Model
	keys     SettingsKeyMap
	width    int
	saveErr  error
	done     bool
	saved    bool
	unmuted  float64
}

// NewSettingsModel creates the settings screen for the given current settings.
func NewSettingsModel(store *persist.SettingsStore, current persist.Settings, sound *audio.SoundManager, width int) SettingsModel {
	current = current.Normalize()
	unmuted := current.Volume
	if unmuted == 0 {
		unmuted = persist.DefaultVolume
	}
	return SettingsModel{
		settings: current,
		original: current,
		store:    store,
		sound:    sound,
		bar:      progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		help:     help.New(),
		keys:     DefaultSettingsKeyMap(),
		width:    width,
		unmuted:  unmuted,
	}
}

// Init initializes the settings model.
func (m SettingsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the settings screen.
func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Louder):
			m.setVolume(m.settings.Volume + volumeStep)
		case key.Matches(msg, m.keys.Quieter):
			m.setVolume(m.settings.Volume - volumeStep)
		case key.Matches(msg, m.keys.Mute):
			if m.settings.Volume > 0 {
				m.unmuted = m.settings.Volume
				m.setVolume(0)
			} else {
				m.setVolume(m.unmuted)
			}
		case key.Matches(msg, m.keys.Save):
			m.saveErr = m.store.Save(m.settings)
			if m.saveErr != nil {
				return m, nil
			}
			m.saved = true
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Cancel):
			m.setVolume(m.original.Volume)
			m.done = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	}
	return m, nil
}

// setVolume applies a new volume, rounded to whole steps, and previews it.
func (m *SettingsModel) setVolume(v float64) {
	v = math.Round(v/volumeStep) * volumeStep
	m.settings = persist.Settings{Volume: v}.Normalize()
	if m.sound != nil {
		m.sound.SetVolume(m.settings.Volume)
		m.sound.Play(audio.SoundJump)
	}
}

// View renders the settings screen.
func (m SettingsModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("SETTINGS"), m.width))
	b.WriteString("\n\n")

	label := fmt.Sprintf("Volume %3.0f%%", m.settings.Volume*100)
	if m.settings.Volume == 0 {
		label = "Volume  muted"
	}
	b.WriteString(centerText(label, m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.bar.ViewAs(m.settings.Volume), m.width))
	b.WriteString("\n\n")

	if m.sound == nil || !m.sound.Enabled() {
		b.WriteString(centerText(dimStyle.Render("(no audio device; the setting is still saved)"), m.width))
		b.WriteString("\n")
	}
	if m.saveErr != nil {
		b.WriteString(centerText(errorStyle.Render(m.saveErr.Error()), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	return b.String()
}

// Settings returns the edited settings.
func (m SettingsModel) Settings() persist.Settings {
	return m.settings
}

// Saved reports whether the player saved their changes.
func (m SettingsModel) Saved() bool {
	return m.saved
}

// RunSettings shows the settings screen and returns the settings in effect afterwards.
func RunSettings(store *persist.SettingsStore, current persist.Settings, sound *audio.SoundManager, width int) (persist.Settings, error) {
	p := tea.NewProgram(NewSettingsModel(store, current, sound, width), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return current, fmt.Errorf("tui: %w", err)
	}
	m, ok := finalModel.(SettingsModel)
	if !ok || !m.Saved() {
		return current, nil
	}
	return m.Settings(), nil
}
