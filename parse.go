package colorfy

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse accepts either a #RRGGBB string or a comma-separated "r,g,b,a"
// channel list. It is the string-input convenience for the CLI and HTTP
// surfaces; programs constructing colors directly should prefer FromHex or
// FromRGBA. The list form requires all four channels.
func Parse(raw string) (Color, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Color{}, fmt.Errorf("%w: empty color", ErrInvalidFormat)
	}
	if strings.HasPrefix(raw, "#") {
		return FromHex(raw)
	}
	if strings.Contains(raw, ",") {
		parts := strings.Split(raw, ",")
		if len(parts) != 4 {
			return Color{}, fmt.Errorf("%w: want exactly r,g,b,a", ErrInvalidFormat)
		}
		var ch [4]int
		for i, p := range parts {
			v, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return Color{}, fmt.Errorf("%w: channel %q is not an integer", ErrInvalidFormat, p)
			}
			ch[i] = v
		}
		return FromRGBA(ch[0], ch[1], ch[2], ch[3])
	}
	return Color{}, fmt.Errorf("%w: %q is neither #RRGGBB nor a channel list", ErrInvalidFormat, raw)
}
