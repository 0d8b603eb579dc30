package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// gameKeys binds key names to in-game actions. The bubbletea name of the
// space bar is a single space.
var gameKeys = map[string]core.Action{
	"ctrl+c": core.ActionQuit,
	"q":      core.ActionQuit,
	"a":      core.ActionLeft,
	"h":      core.ActionLeft,
	"left":   core.ActionLeft,
	"d":      core.ActionRight,
	"l":      core.ActionRight,
	"right":  core.ActionRight,
	" ":      core.ActionLaunch,
	"w":      core.ActionLaunch,
	"up":     core.ActionLaunch,
	"enter":  core.ActionConfirm,
	"esc":    core.ActionBack,
	"b":      core.ActionBack,
	"p":      core.ActionPause,
	"r":      core.ActionRestart,
}

// KeyMapper translates Bubble Tea key messages to game and menu actions.
type KeyMapper struct {
	game map[string]core.Action
	menu map[string]MenuAction
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{game: gameKeys, menu: menuKeys}
}

// MapKey returns the action bound to msg, or ActionNone. isQuit is set for
// the quit keys.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	action, ok := km.game[msg.String()]
	if !ok {
		return core.ActionNone, false
	}
	return action, action == core.ActionQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

var menuKeys = map[string]MenuAction{
	"ctrl+c": MenuActionQuit,
	"q":      MenuActionQuit,
	"up":     MenuActionUp,
	"w":      MenuActionUp,
	"k":      MenuActionUp,
	"down":   MenuActionDown,
	"s":      MenuActionDown,
	"j":      MenuActionDown,
	"enter":  MenuActionSelect,
	" ":      MenuActionSelect,
	"esc":    MenuActionBack,
	"b":      MenuActionBack,
	"tab":    MenuActionScoreboard,
}

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	return km.menu[msg.String()]
}
