package ui

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colorfy"
)

// setRich pins the color-capability detection for the duration of a test.
func setRich(t *testing.T, rich bool) {
	t.Helper()
	origNo, origForce, origColor := noColor, forceColor, color.NoColor
	t.Cleanup(func() {
		noColor, forceColor, color.NoColor = origNo, origForce, origColor
	})
	noColor = !rich
	forceColor = false
	color.NoColor = !rich
}

func TestSwatch(t *testing.T) {
	c := colorfy.MustFromHex("#FF5A2D")
	s := Swatch(c, 4)
	assert.True(t, strings.HasPrefix(s, "\x1b[48;2;255;90;45m"))
	assert.True(t, strings.HasSuffix(s, colorfy.Reset))
	assert.Equal(t, 4, colorfy.VisibleWidth(s))
}

func TestSwatchDefaultWidth(t *testing.T) {
	s := Swatch(colorfy.MustFromHex("#000000"), 0)
	assert.Equal(t, defaultSwatchWidth, colorfy.VisibleWidth(s))
}

func TestSwatchLabelContrast(t *testing.T) {
	dark := colorfy.MustFromHex("#11111B")
	light := colorfy.MustFromHex("#EFF1F5")

	assert.Contains(t, SwatchLabel(dark, "x", 4), "\x1b[38;2;255;255;255m", "white text on dark")
	assert.Contains(t, SwatchLabel(light, "x", 4), "\x1b[38;2;0;0;0m", "black text on light")
}

func TestSwatchLabelTruncates(t *testing.T) {
	s := SwatchLabel(colorfy.MustFromHex("#123456"), "longlabel", 4)
	assert.Equal(t, "long", colorfy.Strip(s))
}

func TestColorCellDegradesWithoutColorSupport(t *testing.T) {
	c := colorfy.MustFromHex("#FF0000")

	setRich(t, false)
	assert.Equal(t, "#FF0000", ColorCell(c, 4), "NO_COLOR output must carry no escape sequences")
	assert.False(t, IsRich())
}

func TestColorCellRendersSwatchWhenRich(t *testing.T) {
	c := colorfy.MustFromHex("#FF0000")

	setRich(t, true)
	out := ColorCell(c, 4)
	assert.Contains(t, out, "\x1b[48;2;255;0;0m")
	assert.Equal(t, 4, colorfy.VisibleWidth(out))
	assert.True(t, IsRich())
}

func TestGradient(t *testing.T) {
	a := colorfy.MustFromHex("#000000")
	b := colorfy.MustFromHex("#FFFFFF")

	g := Gradient(a, b, 5)
	require.Len(t, g, 5)
	assert.Equal(t, a, g[0])
	assert.Equal(t, b, g[4])

	// Monotone brightening along the ramp.
	for i := 1; i < len(g); i++ {
		assert.GreaterOrEqual(t, g[i].R, g[i-1].R)
	}

	assert.Equal(t, []colorfy.Color{a}, Gradient(a, b, 1))
}

func TestRenderTableShape(t *testing.T) {
	out := RenderTable(
		[]Column{{Header: "name"}, {Header: "hex", Align: AlignRight}},
		[][]string{{"red", "#FF0000"}, {"green", "#00FF00"}},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6, "border, header, rule, two rows, border")

	width := colorfy.VisibleWidth(lines[0])
	for _, line := range lines[1:] {
		assert.Equal(t, width, colorfy.VisibleWidth(line))
	}
	assert.Contains(t, out, "#FF0000")
}

func TestRenderKeyValuesAligns(t *testing.T) {
	out := RenderKeyValues([][2]string{{"hex", "#FF0000"}, {"lightness", "50.0"}})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, colorfy.Strip(lines[0]), "hex:")
	assert.Contains(t, colorfy.Strip(lines[1]), "lightness:")
}
