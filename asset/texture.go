package asset

import (
	"strings"
	"unicode/utf8"
)

// Texture is a rectangular rune grid, spaces are transparent
type Texture struct {
	Rows   [][]rune
	Width  int
	Height int
}

// ParseTexture builds a texture from text, trailing blank lines are dropped
// Short rows are padded with spaces to the widest row
func ParseTexture(src string) *Texture {
	src = strings.ReplaceAll(src, "\r", "")
	lines := strings.Split(src, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	t := &Texture{Height: len(lines)}
	for _, l := range lines {
		if n := utf8.RuneCountInString(l); n > t.Width {
			t.Width = n
		}
	}

	t.Rows = make([][]rune, len(lines))
	for i, l := range lines {
		row := make([]rune, t.Width)
		for j := range row {
			row[j] = ' '
		}
		copy(row, []rune(l))
		t.Rows[i] = row
	}
	return t
}

// Lines returns the rows as strings
func (t *Texture) Lines() []string {
	out := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = string(r)
	}
	return out
}

// At returns the rune at column x, row y, or a space outside the texture
func (t *Texture) At(x, y int) rune {
	if y < 0 || y >= t.Height || x < 0 || x >= t.Width {
		return ' '
	}
	return t.Rows[y][x]
}
