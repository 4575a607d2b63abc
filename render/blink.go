package render

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/nongravitar/constant"
)

// blinkLevels is one fade-out and fade-in cycle of grey intensities
var blinkLevels = [8]int32{255, 210, 160, 110, 60, 110, 160, 210}

// Blink cycles a label through grey intensities, one step per period
type Blink struct {
	period  time.Duration
	elapsed time.Duration
	step    int
}

// NewBlink creates a blink animation advancing every period
func NewBlink(period time.Duration) *Blink {
	return &Blink{period: period}
}

// Update advances the animation
func (b *Blink) Update(dt time.Duration) {
	if b.period <= 0 {
		return
	}
	b.elapsed += dt
	for b.elapsed >= b.period {
		b.elapsed -= b.period
		b.step = (b.step + 1) % len(blinkLevels)
	}
}

// Level returns the current grey intensity
func (b *Blink) Level() int32 { return blinkLevels[b.step] }

// Style returns the label style for the current step
func (b *Blink) Style() tcell.Style {
	l := b.Level()
	return tcell.StyleDefault.Background(constant.RgbBackground).Foreground(tcell.NewRGBColor(l, l, l))
}
