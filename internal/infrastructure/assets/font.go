package assets

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// NewFontSource loads the arcade font used for every label
func NewFontSource() (*text.GoTextFaceSource, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	return s, nil
}
