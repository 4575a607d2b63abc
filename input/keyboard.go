package input

import (
	"time"
)

// Keyboard emulates held keys on top of press-only terminal input
// A key counts as held until the hold window passes without a repeat press
// Terminals send auto-repeat presses while a key is down, so the window only has to bridge the repeat gap
type Keyboard struct {
	hold    time.Duration
	now     time.Duration
	pressed [actionCount]bool
	last    [actionCount]time.Duration
}

// NewKeyboard creates a keyboard with the given hold window
func NewKeyboard(hold time.Duration) *Keyboard {
	return &Keyboard{hold: hold}
}

// Press records a press of a at the current time
func (k *Keyboard) Press(a Action) {
	if a >= actionCount {
		return
	}
	k.pressed[a] = true
	k.last[a] = k.now
}

// Advance moves the keyboard clock forward
func (k *Keyboard) Advance(dt time.Duration) {
	k.now += dt
	for a := range k.pressed {
		if k.pressed[a] && k.now-k.last[a] > k.hold {
			k.pressed[a] = false
		}
	}
}

// Held reports whether a was pressed within the hold window
func (k *Keyboard) Held(a Action) bool {
	if a >= actionCount {
		return false
	}
	return k.pressed[a]
}

// Reset releases all keys
func (k *Keyboard) Reset() {
	k.pressed = [actionCount]bool{}
}
