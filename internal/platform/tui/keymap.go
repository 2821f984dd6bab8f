package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skydodo/internal/core"
)

// gameKeys binds key names to in-game actions.
var gameKeys = map[string]core.Action{
	"ctrl+c": core.ActionQuit,
	"q":      core.ActionQuit,
	"a":      core.ActionLeft,
	"left":   core.ActionLeft,
	"d":      core.ActionRight,
	"right":  core.ActionRight,
	" ":      core.ActionJump,
	"w":      core.ActionJump,
	"up":     core.ActionJump,
	"p":      core.ActionPause,
	"esc":    core.ActionPause,
	"i":      core.ActionInfo,
	"enter":  core.ActionConfirm,
	"b":      core.ActionBack,
	"r":      core.ActionRestart,
}

// MenuAction is a navigation action on a menu screen.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

var menuKeys = map[string]MenuAction{
	"ctrl+c": MenuActionQuit,
	"q":      MenuActionQuit,
	"w":      MenuActionUp,
	"up":     MenuActionUp,
	"k":      MenuActionUp,
	"s":      MenuActionDown,
	"down":   MenuActionDown,
	"j":      MenuActionDown,
	"a":      MenuActionLeft,
	"left":   MenuActionLeft,
	"h":      MenuActionLeft,
	"d":      MenuActionRight,
	"right":  MenuActionRight,
	"l":      MenuActionRight,
	"enter":  MenuActionSelect,
	" ":      MenuActionSelect,
	"b":      MenuActionBack,
	"esc":    MenuActionBack,
}

// KeyMapper translates Bubble Tea key messages to actions.
type KeyMapper struct {
	game map[string]core.Action
	menu map[string]MenuAction
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{game: gameKeys, menu: menuKeys}
}

// MapKey returns the game action bound to msg (ActionNone if unbound) and
// whether it asks to quit.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	action = km.game[msg.String()]
	return action, action == core.ActionQuit
}

// MapKeyToMenuAction returns the menu action bound to msg.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	return km.menu[msg.String()]
}
