package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skydodo/internal/core"
)

func sendMenu(m MenuModel, keys ...string) MenuModel {
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(MenuModel)
	}
	return m
}

func TestMenuItems(t *testing.T) {
	local := MenuItems(true)
	remote := MenuItems(false)
	if len(local) != len(remote)+1 {
		t.Fatalf("local menu has %d items, remote %d", len(local), len(remote))
	}
	for _, item := range remote {
		if item.Choice == ChoiceSettings {
			t.Error("remote menu must not offer settings")
		}
	}
	if local[len(local)-1].Choice != ChoiceQuit {
		t.Error("quit should be the last entry")
	}
}

func TestMenuNavigation(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want MenuChoice
	}{
		{"play", []string{"enter"}, ChoicePlay},
		{"zen", []string{"down", "enter"}, ChoiceZen},
		{"scores with j", []string{"j", "j", " "}, ChoiceScores},
		{"wrap up to quit", []string{"up", "enter"}, ChoiceQuit},
		{"wrap down to play", []string{"down", "down", "down", "down", "down", "enter"}, ChoicePlay},
		{"settings", []string{"up", "up", "enter"}, ChoiceSettings},
		{"quit key", []string{"q"}, ChoiceQuit},
		{"back key", []string{"esc"}, ChoiceQuit},
		{"no choice", []string{"down"}, ChoiceNone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := sendMenu(NewMenuModel(core.DefaultConfig(), 0, true), tc.keys...)
			if m.Chosen() != tc.want {
				t.Errorf("Chosen() = %v, expected %v", m.Chosen(), tc.want)
			}
		})
	}
}

func TestMenuView(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), 4321, true)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(MenuModel)

	if m.Config().ScreenW != 100 || m.Config().ScreenH != 40 {
		t.Errorf("config = %+v after resize", m.Config())
	}
	out := m.View()
	for _, want := range []string{"S K Y D O D O", "best 4321", "Play", "Settings", "climb, dodge, survive"} {
		if !strings.Contains(out, want) {
			t.Errorf("menu view missing %q", want)
		}
	}
}
