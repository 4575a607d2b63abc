// Package asset loads the embedded game data: textures, sprite sheets, the block font and sound tracks
package asset

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
)

// Data holds the files shipped with the binary
//
//go:embed data
var Data embed.FS

var (
	// ErrMissing is returned when a required asset file does not exist
	ErrMissing = errors.New("asset missing")
	// ErrMalformed is returned when an asset file cannot be parsed
	ErrMalformed = errors.New("asset malformed")
)

type TextureID int

const (
	TextureGravitarTitle TextureID = iota
	TextureSpaceShip
	TextureBullet
	TextureBunker
)

type SpriteSheetID int

const (
	SpriteSheetSpaceShip SpriteSheetID = iota
	SpriteSheetBullet
	SpriteSheetBunker
)

type FontID int

const (
	FontMechanical FontID = iota
)

type SoundTrackID int

const (
	SoundTrackMainTheme SoundTrackID = iota
	SoundTrackAmbientStarfield
)

func (id SoundTrackID) String() string {
	switch id {
	case SoundTrackMainTheme:
		return "main_theme"
	case SoundTrackAmbientStarfield:
		return "ambient_starfield"
	default:
		return fmt.Sprintf("track(%d)", int(id))
	}
}

var texturePaths = map[TextureID]string{
	TextureGravitarTitle: "data/textures/title.txt",
	TextureSpaceShip:     "data/textures/spaceship.txt",
	TextureBullet:        "data/textures/bullet.txt",
	TextureBunker:        "data/textures/bunker.txt",
}

// sheetLayout slices a texture into frames of a fixed size
type sheetLayout struct {
	texture       TextureID
	width, height int
}

var sheetLayouts = map[SpriteSheetID]sheetLayout{
	SpriteSheetSpaceShip: {texture: TextureSpaceShip, width: 1, height: 1},
	SpriteSheetBullet:    {texture: TextureBullet, width: 1, height: 1},
	SpriteSheetBunker:    {texture: TextureBunker, width: 3, height: 1},
}

var fontPaths = map[FontID]string{
	FontMechanical: "data/fonts/mechanical.txt",
}

var trackPaths = map[SoundTrackID]string{
	SoundTrackMainTheme:        "data/tracks/main_theme.yaml",
	SoundTrackAmbientStarfield: "data/tracks/ambient_starfield.yaml",
}

// Assets is the loaded, read-only asset set
type Assets struct {
	textures map[TextureID]*Texture
	sheets   map[SpriteSheetID]*SpriteSheet
	fonts    map[FontID]*Font
	tracks   map[SoundTrackID]Track
}

// Load reads every known asset from fsys, the first failure aborts loading
func Load(fsys fs.FS) (*Assets, error) {
	a := &Assets{
		textures: make(map[TextureID]*Texture, len(texturePaths)),
		sheets:   make(map[SpriteSheetID]*SpriteSheet, len(sheetLayouts)),
		fonts:    make(map[FontID]*Font, len(fontPaths)),
		tracks:   make(map[SoundTrackID]Track, len(trackPaths)),
	}

	for id, path := range texturePaths {
		raw, err := readFile(fsys, path)
		if err != nil {
			return nil, err
		}
		a.textures[id] = ParseTexture(string(raw))
	}

	for id, layout := range sheetLayouts {
		sheet, err := NewSpriteSheet(a.textures[layout.texture], layout.width, layout.height)
		if err != nil {
			return nil, fmt.Errorf("sprite sheet %d: %w", id, err)
		}
		a.sheets[id] = sheet
	}

	for id, path := range fontPaths {
		raw, err := readFile(fsys, path)
		if err != nil {
			return nil, err
		}
		font, err := ParseFont(string(raw))
		if err != nil {
			return nil, fmt.Errorf("font %s: %w", path, err)
		}
		a.fonts[id] = font
	}

	for id, path := range trackPaths {
		raw, err := readFile(fsys, path)
		if err != nil {
			return nil, err
		}
		track, err := ParseTrack(raw)
		if err != nil {
			return nil, fmt.Errorf("track %s: %w", path, err)
		}
		a.tracks[id] = track
	}

	return a, nil
}

func readFile(fsys fs.FS, path string) ([]byte, error) {
	raw, err := fs.ReadFile(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, ErrMissing)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return raw, nil
}

// Texture returns a loaded texture, panics on an unknown id
func (a *Assets) Texture(id TextureID) *Texture {
	t, ok := a.textures[id]
	if !ok {
		panic(fmt.Sprintf("asset: unknown texture %d", id))
	}
	return t
}

// SpriteSheet returns a loaded sprite sheet, panics on an unknown id
func (a *Assets) SpriteSheet(id SpriteSheetID) *SpriteSheet {
	s, ok := a.sheets[id]
	if !ok {
		panic(fmt.Sprintf("asset: unknown sprite sheet %d", id))
	}
	return s
}

// Font returns a loaded font, panics on an unknown id
func (a *Assets) Font(id FontID) *Font {
	f, ok := a.fonts[id]
	if !ok {
		panic(fmt.Sprintf("asset: unknown font %d", id))
	}
	return f
}

// Track returns a loaded sound track, panics on an unknown id
func (a *Assets) Track(id SoundTrackID) Track {
	t, ok := a.tracks[id]
	if !ok {
		panic(fmt.Sprintf("asset: unknown track %s", id))
	}
	return t
}

// Tracks returns every loaded track keyed by id
func (a *Assets) Tracks() map[SoundTrackID]Track {
	out := make(map[SoundTrackID]Track, len(a.tracks))
	for id, t := range a.tracks {
		out[id] = t
	}
	return out
}
