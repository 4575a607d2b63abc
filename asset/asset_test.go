package asset

import (
	"errors"
	"math"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	a, err := Load(Data)
	require.NoError(t, err)

	title := a.Texture(TextureGravitarTitle)
	assert.Greater(t, title.Width, 0)
	assert.Greater(t, title.Height, 0)

	ship := a.SpriteSheet(SpriteSheetSpaceShip)
	assert.Equal(t, 8, ship.Len())
	assert.Equal(t, 2, a.SpriteSheet(SpriteSheetBullet).Len())
	w, h := a.SpriteSheet(SpriteSheetBunker).Size()
	assert.Equal(t, 3, w)
	assert.Equal(t, 1, h)

	font := a.Font(FontMechanical)
	for _, r := range "GAME OVER YOU WON SCORE 0123456789!" {
		assert.True(t, font.Has(r), "glyph %q", r)
	}

	for _, id := range []SoundTrackID{SoundTrackMainTheme, SoundTrackAmbientStarfield} {
		tr := a.Track(id)
		assert.NotEmpty(t, tr.Notes, id.String())
		assert.Greater(t, tr.Tempo, 0)
	}
	assert.Len(t, a.Tracks(), 2)
}

func TestLoadMissing(t *testing.T) {
	fsys := fstest.MapFS{
		"data/textures/title.txt": {Data: []byte("X")},
	}
	_, err := Load(fsys)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissing))
}

func TestLoadMalformedTrack(t *testing.T) {
	fsys := fstest.MapFS{}
	for path, f := range mustMapFS(t) {
		fsys[path] = f
	}
	fsys["data/tracks/main_theme.yaml"] = &fstest.MapFile{Data: []byte("tempo: 0\nnotes: [A4]\n")}

	_, err := Load(fsys)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformed))
}

func mustMapFS(t *testing.T) fstest.MapFS {
	t.Helper()
	out := fstest.MapFS{}
	paths := []string{}
	for _, p := range texturePaths {
		paths = append(paths, p)
	}
	for _, p := range fontPaths {
		paths = append(paths, p)
	}
	for _, p := range trackPaths {
		paths = append(paths, p)
	}
	for _, p := range paths {
		raw, err := Data.ReadFile(p)
		require.NoError(t, err)
		out[p] = &fstest.MapFile{Data: raw}
	}
	return out
}

func TestUnknownIDPanics(t *testing.T) {
	a, err := Load(Data)
	require.NoError(t, err)
	assert.Panics(t, func() { a.Texture(TextureID(99)) })
	assert.Panics(t, func() { a.SpriteSheet(SpriteSheetID(99)) })
	assert.Panics(t, func() { a.Font(FontID(99)) })
	assert.Panics(t, func() { a.Track(SoundTrackID(99)) })
}

func TestParseTexture(t *testing.T) {
	tex := ParseTexture("ab\r\nc\n\n\n")
	assert.Equal(t, 2, tex.Width)
	assert.Equal(t, 2, tex.Height)
	assert.Equal(t, []string{"ab", "c "}, tex.Lines())
	assert.Equal(t, 'c', tex.At(0, 1))
	assert.Equal(t, ' ', tex.At(5, 5))
}

func TestSpriteSheet(t *testing.T) {
	sheet, err := NewSpriteSheet(ParseTexture("▲◥▶◢▼◣◀◤"), 1, 1)
	require.NoError(t, err)

	tests := []struct {
		name  string
		angle float64
		want  rune
	}{
		{"up", 0, '▲'},
		{"right", math.Pi / 2, '▶'},
		{"down", math.Pi, '▼'},
		{"left", -math.Pi / 2, '◀'},
		{"nearly up wraps", 2*math.Pi - 0.1, '▲'},
		{"up right", math.Pi/4 + 0.1, '◥'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sheet.Heading(tt.angle).At(0, 0))
		})
	}

	assert.Equal(t, '▲', sheet.Frame(8).At(0, 0))
	assert.Equal(t, '◤', sheet.Frame(-1).At(0, 0))

	_, err = NewSpriteSheet(ParseTexture("abcd"), 3, 1)
	assert.True(t, errors.Is(err, ErrMalformed))
}

func TestFontRender(t *testing.T) {
	src := "# test font\n[I]\n###\n.#.\n.#.\n.#.\n###\n[space]\n...\n...\n...\n...\n...\n"
	f, err := ParseFont(src)
	require.NoError(t, err)

	rows := f.Render("i?")
	require.Len(t, rows, 5)
	assert.Equal(t, "███    ", rows[0])
	assert.Equal(t, " █     ", rows[1])

	_, err = ParseFont("[A]\n###\n#.#\n")
	assert.True(t, errors.Is(err, ErrMalformed))
}

func TestNoteFrequency(t *testing.T) {
	tests := []struct {
		note string
		want float64
	}{
		{"A4", 440},
		{"A5", 880},
		{"C4", 261.6256},
		{"C#4", 277.1826},
		{"Bb3", 233.0819},
		{"-", 0},
	}
	for _, tt := range tests {
		t.Run(tt.note, func(t *testing.T) {
			got, err := NoteFrequency(tt.note)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}

	for _, bad := range []string{"", "H4", "A", "A9", "Ax"} {
		_, err := NoteFrequency(bad)
		assert.True(t, errors.Is(err, ErrMalformed), bad)
	}
}

func TestParseTrack(t *testing.T) {
	tr, err := ParseTrack([]byte("name: t\ntempo: 120\nnotes: [A4, \"-\"]\n"))
	require.NoError(t, err)
	assert.Equal(t, WaveSine, tr.Wave)
	assert.Equal(t, 500_000_000, int(tr.Beat()))
	assert.True(t, tr.Notes[1].Rest())

	_, err = ParseTrack([]byte("tempo: 120\nnotes: [A4]\nextra: 1\n"))
	assert.True(t, errors.Is(err, ErrMalformed))
	_, err = ParseTrack([]byte("tempo: 120\nwave: noise\nnotes: [A4]\n"))
	assert.True(t, errors.Is(err, ErrMalformed))
}
