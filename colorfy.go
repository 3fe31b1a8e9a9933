// Package colorfy models terminal colors in RGBA and hex form and renders
// them as 24-bit ANSI escape sequences. The R, G, B, A fields are the source
// of truth; the hex string, CSS string and escape sequences are all derived
// from them. Color is a value type: every derivation returns a new Color and
// never mutates the receiver, so values can be shared freely across
// goroutines.
package colorfy

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
)

var (
	// ErrInvalidFormat reports a construction input that is neither a
	// well-formed #RRGGBB string nor four in-range channel values.
	ErrInvalidFormat = errors.New("invalid color format")

	// ErrOutOfRange reports a parameter outside its documented domain.
	ErrOutOfRange = errors.New("value out of range")
)

// Color is an RGBA color with 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

// FromHex parses a #RRGGBB string. Hex digits are case-insensitive; alpha
// defaults to 255 because the hex form does not encode it.
func FromHex(s string) (Color, error) {
	if !strings.HasPrefix(s, "#") {
		return Color{}, fmt.Errorf("%w: %q must start with '#'", ErrInvalidFormat, s)
	}
	body := strings.TrimPrefix(s, "#")
	if len(body) != 6 {
		return Color{}, fmt.Errorf("%w: %q must be #RRGGBB", ErrInvalidFormat, s)
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(body[i*2:i*2+2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q contains a non-hex pair", ErrInvalidFormat, s)
		}
		ch[i] = uint8(v)
	}
	return Color{R: ch[0], G: ch[1], B: ch[2], A: 255}, nil
}

// FromRGBA builds a Color from explicit channel values. Each value must lie
// in [0, 255].
func FromRGBA(r, g, b, a int) (Color, error) {
	for _, v := range [4]int{r, g, b, a} {
		if v < 0 || v > 255 {
			return Color{}, fmt.Errorf("%w: channel %d outside [0, 255]", ErrInvalidFormat, v)
		}
	}
	return Color{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, nil
}

// MustFromHex is FromHex for static color literals; it panics on a malformed
// string.
func MustFromHex(s string) Color {
	c, err := FromHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Rand returns a color with uniformly random R, G, B and alpha 255. It draws
// from the shared math/rand source and is not seedable by the caller.
func Rand() Color {
	return Color{
		R: uint8(rand.IntN(256)),
		G: uint8(rand.IntN(256)),
		B: uint8(rand.IntN(256)),
		A: 255,
	}
}

// Hex renders the color as #RRGGBB with uppercase digits. Alpha is not
// encoded.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// RGBA returns the four channels.
func (c Color) RGBA() (r, g, b, a int) {
	return int(c.R), int(c.G), int(c.B), int(c.A)
}

// Complement returns the color with each RGB channel inverted. Alpha is
// preserved.
func (c Color) Complement() Color {
	return Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B, A: c.A}
}

// Brighten scales each RGB channel by factor, rounding to the nearest
// integer and clamping to [0, 255]. Alpha is preserved. The factor itself is
// unconstrained; the result is always clamped, never wrapped.
func (c Color) Brighten(factor float64) Color {
	scale := func(ch uint8) uint8 {
		return clamp(math.Round(factor * float64(ch)))
	}
	return Color{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

// WithAlpha returns the color with only the alpha channel replaced.
func (c Color) WithAlpha(a int) (Color, error) {
	if a < 0 || a > 255 {
		return Color{}, fmt.Errorf("%w: alpha %d outside [0, 255]", ErrOutOfRange, a)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: uint8(a)}, nil
}

// Blend linearly interpolates toward other on all four channels, truncating
// to integers. ratio 0 yields the receiver, ratio 1 yields other.
func (c Color) Blend(other Color, ratio float64) (Color, error) {
	if ratio < 0 || ratio > 1 {
		return Color{}, fmt.Errorf("%w: ratio %v outside [0, 1]", ErrOutOfRange, ratio)
	}
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a)*(1-ratio) + float64(b)*ratio)
	}
	return Color{
		R: lerp(c.R, other.R),
		G: lerp(c.G, other.G),
		B: lerp(c.B, other.B),
		A: lerp(c.A, other.A),
	}, nil
}

// Gray converts to grayscale using the Rec. 601 luma weights, truncated to
// an integer and applied to all three RGB channels. Alpha is preserved.
func (c Color) Gray() Color {
	y := uint8(c.luma())
	return Color{R: y, G: y, B: y, A: c.A}
}

// IsBright reports whether the color's luma exceeds 128, i.e. whether dark
// text would read well on top of it.
func (c Color) IsBright() bool {
	return c.luma() > 128
}

// HSL converts to hue/saturation/lightness. Hue is in degrees [0, 360),
// saturation and lightness are percentages.
func (c Color) HSL() (h, s, l float64) {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l = (max + min) / 2

	if max == min {
		// Achromatic: hue and saturation are zero by convention.
		return 0, 0, l * 100
	}

	delta := max - min
	if l > 0.5 {
		s = delta / (2 - max - min)
	} else {
		s = delta / (max + min)
	}

	switch max {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}
	h /= 6

	return h * 360, s * 100, l * 100
}

// Distance returns the Euclidean distance to other in RGB space. Alpha is
// excluded.
func (c Color) Distance(other Color) float64 {
	dr := float64(c.R) - float64(other.R)
	dg := float64(c.G) - float64(other.G)
	db := float64(c.B) - float64(other.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// CSS renders the color as a CSS rgba() string with alpha normalized to
// [0, 1] and rounded to two decimals.
func (c Color) CSS() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %.2f)", c.R, c.G, c.B, float64(c.A)/255)
}

// ANSI returns the 24-bit foreground escape sequence for the color. Alpha
// has no terminal representation and is ignored.
func (c Color) ANSI() string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

// ANSIBackground returns the 24-bit background escape sequence.
func (c Color) ANSIBackground() string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", c.R, c.G, c.B)
}

// Apply wraps text in the foreground escape sequence and a trailing reset.
func (c Color) Apply(text string) string {
	return c.ANSI() + text + Reset
}

// String implements fmt.Stringer using the hex form.
func (c Color) String() string {
	return c.Hex()
}

func (c Color) luma() float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

// clamp pins to [0, 255] in the float domain. Converting an out-of-range
// float to an integer type first is undefined in Go, so huge factors would
// wrap instead of saturating. NaN maps to 0.
func clamp(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
