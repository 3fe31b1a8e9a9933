package ui

import (
	"strings"

	"colorfy"
)

const defaultSwatchWidth = 8

// ColorCell renders a color for display: a truecolor swatch block when rich
// output is available, otherwise the plain hex string so NO_COLOR output
// stays free of escape sequences.
func ColorCell(c colorfy.Color, width int) string {
	if !IsRich() {
		return c.Hex()
	}
	return Swatch(c, width)
}

// Swatch renders a solid block of the color: background escape plus spaces.
func Swatch(c colorfy.Color, width int) string {
	if width <= 0 {
		width = defaultSwatchWidth
	}
	return c.ANSIBackground() + strings.Repeat(" ", width) + colorfy.Reset
}

// SwatchLabel renders a block of the color with text overlaid. The text
// color is black or white, whichever contrasts with the background.
func SwatchLabel(c colorfy.Color, label string, width int) string {
	if width <= 0 {
		width = defaultSwatchWidth
	}

	fg := colorfy.Color{R: 255, G: 255, B: 255, A: 255}
	if c.IsBright() {
		fg = colorfy.Color{A: 255}
	}

	runes := []rune(label)
	if len(runes) > width {
		runes = runes[:width]
	}
	text := string(runes) + strings.Repeat(" ", width-len(runes))

	return c.ANSIBackground() + fg.ANSI() + text + colorfy.Reset
}

// Gradient returns steps colors blending evenly from a to b, endpoints
// included.
func Gradient(a, b colorfy.Color, steps int) []colorfy.Color {
	if steps < 2 {
		return []colorfy.Color{a}
	}
	out := make([]colorfy.Color, 0, steps)
	for i := 0; i < steps; i++ {
		ratio := float64(i) / float64(steps-1)
		c, err := a.Blend(b, ratio)
		if err != nil {
			// ratio is always within [0, 1] here
			c = a
		}
		out = append(out, c)
	}
	return out
}
