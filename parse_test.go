package colorfy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	c, err := Parse("#336699")
	require.NoError(t, err)
	assert.Equal(t, "#336699", c.Hex())

	c, err = Parse("10, 20, 30, 40")
	require.NoError(t, err)
	assert.Equal(t, Color{R: 10, G: 20, B: 30, A: 40}, c)
}

func TestParseRejects(t *testing.T) {
	cases := []string{
		"",          // empty
		"red",       // neither form
		"1,2,3",     // wrong arity
		"1,2,3,4,5", // wrong arity
		"1,2,3,x",   // non-integer channel
		"300,0,0,255",
	}
	for _, bad := range cases {
		_, err := Parse(bad)
		assert.ErrorIsf(t, err, ErrInvalidFormat, "input %q", bad)
	}
}
