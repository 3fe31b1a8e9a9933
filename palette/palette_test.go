package palette

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colorfy"
)

func TestEveryEntryParses(t *testing.T) {
	for theme, colors := range Themes {
		for name, hex := range colors {
			_, err := colorfy.FromHex(hex)
			assert.NoErrorf(t, err, "%s/%s = %q", theme, name, hex)
		}
	}
}

func TestResolve(t *testing.T) {
	c, err := Resolve("catppuccin-mocha", "mauve")
	require.NoError(t, err)
	assert.Equal(t, "#CBA6F7", c.Hex())

	_, err = Resolve("nord", "red")
	assert.Error(t, err)

	_, err = Resolve("dracula", "mauve")
	assert.Error(t, err)
}

func TestThemeNamesSorted(t *testing.T) {
	names := ThemeNames()
	require.Len(t, names, len(Themes))
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, "solarized")
}

func TestNamesSorted(t *testing.T) {
	names := Basic.Names()
	assert.Len(t, names, 8)
	assert.True(t, sort.StringsAreSorted(names))
}
