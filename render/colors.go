package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/vi-snake/components"
	"github.com/lixenwraith/vi-snake/constants"
)

// Parsed board colors
var (
	RgbBoard     = mustHex(constants.ColorBoard)
	RgbBorder    = mustHex(constants.ColorBorder)
	RgbSnake     = mustHex(constants.ColorSnake)
	RgbSnakeHead = mustHex(constants.ColorSnakeHead)
	RgbFood      = mustHex(constants.ColorFood)
	RgbStatus    = mustHex(constants.ColorStatus)
	RgbPanelBg   = mustHex(constants.ColorPanelBg)
	RgbPanelText = mustHex(constants.ColorPanelText)
	RgbScore     = mustHex(constants.ColorScore)
	RgbDim       = mustHex(constants.ColorDim)
)

// palette holds BackgroundPalette parsed once
var palette = func() []colorful.Color {
	p := make([]colorful.Color, len(constants.BackgroundPalette))
	for i, hex := range constants.BackgroundPalette {
		p[i] = mustHex(hex)
	}
	return p
}()

// mustHex parses a constant hex color, panicking on a malformed literal
func mustHex(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic("render: bad color constant " + hex)
	}
	return c
}

// Tcell converts a colorful color to a 24-bit tcell color
func Tcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// PaletteColor returns the background color for a palette index, wrapping cyclically
func PaletteColor(index int) colorful.Color {
	n := len(palette)
	return palette[((index%n)+n)%n]
}

// ParticleColor returns the particle's hue at full saturation, faded toward bg by its opacity
func ParticleColor(p components.ParticleComponent, bg colorful.Color) colorful.Color {
	hue := math.Mod(p.Hue, 360)
	if hue < 0 {
		hue += 360
	}
	alpha := math.Max(0, math.Min(1, p.Alpha))
	return colorful.Hsl(hue, 1, 0.5).BlendRgb(bg, 1-alpha)
}

// ParticleGlyph picks a glyph by particle radius in cells
func ParticleGlyph(radius float64) rune {
	switch {
	case radius >= constants.ParticleLargeRadius:
		return constants.ParticleLarge
	case radius >= constants.ParticleMediumRadius:
		return constants.ParticleMedium
	default:
		return constants.ParticleSmall
	}
}
