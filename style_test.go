package colorfy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrip(t *testing.T) {
	styled := MustFromHex("#FF0000").Apply("error") + " " + Stylize(Bold, "loud")
	assert.Equal(t, "error loud", Strip(styled))
	assert.Equal(t, "plain", Strip("plain"))
}

func TestVisibleWidth(t *testing.T) {
	assert.Equal(t, 5, VisibleWidth(Stylize(Underline, "hello")))
	assert.Equal(t, 2, VisibleWidth("日本"), "runes, not bytes")
	assert.Equal(t, 0, VisibleWidth(Reset+Bold))
}

func TestStylize(t *testing.T) {
	assert.Equal(t, "\x1b[3mx\x1b[0m", Stylize(Italic, "x"))
}
