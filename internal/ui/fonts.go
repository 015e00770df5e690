// internal/ui/fonts.go
package ui

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"apple-game/internal/config"
)

// Faces holds every font size the screens use.
type Faces struct {
	Title font.Face
	HUD   font.Face
	Cell  font.Face
	Small font.Face
}

// LoadFaces parses the embedded Go Regular font once and builds the faces.
func LoadFaces() (*Faces, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	newFace := func(size float64) (font.Face, error) {
		return opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}

	var f Faces
	for _, fs := range []struct {
		dst  *font.Face
		size float64
	}{
		{&f.Title, config.TitleFontSize},
		{&f.HUD, config.HUDFontSize},
		{&f.Cell, config.CellFontSize},
		{&f.Small, config.SmallFontSize},
	} {
		face, err := newFace(fs.size)
		if err != nil {
			return nil, fmt.Errorf("failed to create %vpt face: %w", fs.size, err)
		}
		*fs.dst = face
	}
	return &f, nil
}
