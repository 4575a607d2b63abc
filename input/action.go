// Package input maps terminal keys to game actions and emulates held keys
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Action is a game control
type Action uint8

const (
	ActionThrust Action = iota
	ActionLeft
	ActionRight
	ActionFire
	ActionStart

	actionCount
)

var actionNames = [actionCount]string{
	ActionThrust: "thrust",
	ActionLeft:   "left",
	ActionRight:  "right",
	ActionFire:   "fire",
	ActionStart:  "start",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "unknown"
}

// specialKeys binds non-rune keys
var specialKeys = map[tcell.Key]Action{
	tcell.KeyUp:    ActionThrust,
	tcell.KeyLeft:  ActionLeft,
	tcell.KeyRight: ActionRight,
	tcell.KeyEnter: ActionStart,
}

// runeKeys binds printable keys, letters in both cases
var runeKeys = map[rune]Action{
	'w': ActionThrust,
	'W': ActionThrust,
	'a': ActionLeft,
	'A': ActionLeft,
	'd': ActionRight,
	'D': ActionRight,
	' ': ActionFire,
}

// ActionFor maps a key event to its action
func ActionFor(ev *tcell.EventKey) (Action, bool) {
	if ev == nil {
		return 0, false
	}
	if ev.Key() == tcell.KeyRune {
		a, ok := runeKeys[ev.Rune()]
		return a, ok
	}
	a, ok := specialKeys[ev.Key()]
	return a, ok
}

// Confirms reports whether ev is a menu confirmation, Space or Enter
func Confirms(ev *tcell.EventKey) bool {
	a, ok := ActionFor(ev)
	return ok && (a == ActionFire || a == ActionStart)
}
