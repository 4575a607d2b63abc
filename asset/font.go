package asset

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	glyphWidth  = 3
	glyphHeight = 5
	inkRune     = '█'
)

// Font is a fixed-size block font for banner text
type Font struct {
	glyphs map[rune][]string
}

// ParseFont reads a font file made of "[X]" headers each followed by five rows of '#' and '.'
// "[space]" names the blank glyph, lines outside a glyph body are ignored
func ParseFont(src string) (*Font, error) {
	f := &Font{glyphs: make(map[rune][]string)}
	lines := strings.Split(strings.ReplaceAll(src, "\r", ""), "\n")

	for i := 0; i < len(lines); i++ {
		l := strings.TrimSpace(lines[i])
		if len(l) < 3 || l[0] != '[' || l[len(l)-1] != ']' {
			continue
		}

		name := l[1 : len(l)-1]
		var r rune
		switch {
		case name == "space":
			r = ' '
		case len([]rune(name)) == 1:
			r = []rune(name)[0]
		default:
			return nil, fmt.Errorf("line %d: bad glyph name %q: %w", i+1, name, ErrMalformed)
		}

		if i+glyphHeight >= len(lines) {
			return nil, fmt.Errorf("glyph %q truncated: %w", name, ErrMalformed)
		}
		rows := make([]string, glyphHeight)
		for y := 0; y < glyphHeight; y++ {
			row := strings.TrimSpace(lines[i+1+y])
			if len(row) != glyphWidth || strings.Trim(row, "#.") != "" {
				return nil, fmt.Errorf("glyph %q row %d: %w", name, y, ErrMalformed)
			}
			rows[y] = strings.Map(func(c rune) rune {
				if c == '#' {
					return inkRune
				}
				return ' '
			}, row)
		}
		f.glyphs[r] = rows
		i += glyphHeight
	}

	if _, ok := f.glyphs[' ']; !ok {
		return nil, fmt.Errorf("no space glyph: %w", ErrMalformed)
	}
	return f, nil
}

// Height returns the number of rows Render produces
func (f *Font) Height() int { return glyphHeight }

// Has reports whether the font defines r, letters match case-insensitively
func (f *Font) Has(r rune) bool {
	_, ok := f.glyphs[unicode.ToUpper(r)]
	return ok
}

// Render lays out text as banner rows with one blank column between glyphs
// Runes without a glyph render as blanks
func (f *Font) Render(text string) []string {
	rows := make([]strings.Builder, glyphHeight)
	for i, r := range []rune(text) {
		g, ok := f.glyphs[unicode.ToUpper(r)]
		if !ok {
			g = f.glyphs[' ']
		}
		for y := range rows {
			if i > 0 {
				rows[y].WriteByte(' ')
			}
			rows[y].WriteString(g[y])
		}
	}

	out := make([]string, glyphHeight)
	for y := range rows {
		out[y] = rows[y].String()
	}
	return out
}
