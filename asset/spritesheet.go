package asset

import (
	"fmt"
	"math"
)

// SpriteSheet is a texture sliced into equally sized frames, read left to right then top to bottom
type SpriteSheet struct {
	frames        []*Texture
	width, height int
}

// NewSpriteSheet slices tex into frames of width x height cells
func NewSpriteSheet(tex *Texture, width, height int) (*SpriteSheet, error) {
	if tex == nil || width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d: %w", width, height, ErrMalformed)
	}
	if tex.Width == 0 || tex.Width%width != 0 || tex.Height%height != 0 {
		return nil, fmt.Errorf("texture %dx%d not divisible into %dx%d frames: %w",
			tex.Width, tex.Height, width, height, ErrMalformed)
	}

	s := &SpriteSheet{width: width, height: height}
	for fy := 0; fy < tex.Height; fy += height {
		for fx := 0; fx < tex.Width; fx += width {
			frame := &Texture{Width: width, Height: height, Rows: make([][]rune, height)}
			for y := 0; y < height; y++ {
				frame.Rows[y] = append([]rune(nil), tex.Rows[fy+y][fx:fx+width]...)
			}
			s.frames = append(s.frames, frame)
		}
	}
	return s, nil
}

// Len returns the number of frames
func (s *SpriteSheet) Len() int { return len(s.frames) }

// Size returns the frame size in cells
func (s *SpriteSheet) Size() (int, int) { return s.width, s.height }

// Frame returns frame i, indices wrap around
func (s *SpriteSheet) Frame(i int) *Texture {
	n := len(s.frames)
	i %= n
	if i < 0 {
		i += n
	}
	return s.frames[i]
}

// Heading returns the frame whose direction is closest to angle
// Frames are ordered clockwise starting from up
func (s *SpriteSheet) Heading(angle float64) *Texture {
	n := len(s.frames)
	step := 2 * math.Pi / float64(n)
	a := math.Mod(angle, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return s.frames[int(math.Round(a/step))%n]
}
