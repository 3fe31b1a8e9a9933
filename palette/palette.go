// Package palette ships read-only named-color tables for a handful of
// popular terminal color schemes. A Theme is a plain name-to-hex mapping
// with no behavior of its own; Resolve bridges an entry into a colorfy
// Color.
package palette

import (
	"fmt"
	"sort"

	"colorfy"
)

// Theme maps a color name to its #RRGGBB value.
type Theme map[string]string

// Basic holds the eight primary and secondary colors.
var Basic = Theme{
	"black":   "#000000",
	"white":   "#FFFFFF",
	"red":     "#FF0000",
	"green":   "#00FF00",
	"blue":    "#0000FF",
	"yellow":  "#FFFF00",
	"cyan":    "#00FFFF",
	"magenta": "#FF00FF",
}

// Catppuccin flavors, dark to light: https://catppuccin.com/palette

var CatppuccinLatte = Theme{
	"rosewater": "#dc8a78",
	"flamingo":  "#dd7878",
	"pink":      "#ea76cb",
	"mauve":     "#8839ef",
	"red":       "#d20f39",
	"maroon":    "#e64553",
	"peach":     "#fe640b",
	"yellow":    "#df8e1d",
	"green":     "#40a02b",
	"teal":      "#179299",
	"sky":       "#04a5e5",
	"sapphire":  "#209fb5",
	"blue":      "#1e66f5",
	"lavender":  "#7287fd",
	"text":      "#4c4f69",
	"subtext1":  "#5c5f77",
	"subtext0":  "#6c6f85",
	"overlay2":  "#7c7f93",
	"overlay1":  "#8c8fa1",
	"overlay0":  "#9ca0b0",
	"surface2":  "#acb0be",
	"surface1":  "#bcc0cc",
	"surface0":  "#ccd0da",
	"base":      "#eff1f5",
	"mantle":    "#e6e9ef",
	"crust":     "#dce0e8",
}

var CatppuccinFrappe = Theme{
	"rosewater": "#f2d5cf",
	"flamingo":  "#eebebe",
	"pink":      "#f4b8e4",
	"mauve":     "#ca9ee6",
	"red":       "#e78284",
	"maroon":    "#ea999c",
	"peach":     "#ef9f76",
	"yellow":    "#e5c890",
	"green":     "#a6d189",
	"teal":      "#81c8be",
	"sky":       "#99d1db",
	"sapphire":  "#85c1dc",
	"blue":      "#8caaee",
	"lavender":  "#babbf1",
	"text":      "#c6d0f5",
	"subtext1":  "#b5bfe2",
	"subtext0":  "#a5adce",
	"overlay2":  "#949cbb",
	"overlay1":  "#838ba7",
	"overlay0":  "#737994",
	"surface2":  "#626880",
	"surface1":  "#51576d",
	"surface0":  "#414559",
	"base":      "#303446",
	"mantle":    "#292c3c",
	"crust":     "#232634",
}

var CatppuccinMacchiato = Theme{
	"rosewater": "#f4dbd6",
	"flamingo":  "#f0c6c6",
	"pink":      "#f5bde6",
	"mauve":     "#c6a0f6",
	"red":       "#ed8796",
	"maroon":    "#ee99a0",
	"peach":     "#f5a97f",
	"yellow":    "#eed49f",
	"green":     "#a6da95",
	"teal":      "#8bd5ca",
	"sky":       "#91d7e3",
	"sapphire":  "#7dc4e4",
	"blue":      "#8aadf4",
	"lavender":  "#b7bdf8",
	"text":      "#cad3f5",
	"subtext1":  "#b8c0e0",
	"subtext0":  "#a5adcb",
	"overlay2":  "#939ab7",
	"overlay1":  "#8087a2",
	"overlay0":  "#6e738d",
	"surface2":  "#5b6078",
	"surface1":  "#494d64",
	"surface0":  "#363a4f",
	"base":      "#24273a",
	"mantle":    "#1e2030",
	"crust":     "#181926",
}

var CatppuccinMocha = Theme{
	"rosewater": "#f5e0dc",
	"flamingo":  "#f2cdcd",
	"pink":      "#f5c2e7",
	"mauve":     "#cba6f7",
	"red":       "#f38ba8",
	"maroon":    "#eba0ac",
	"peach":     "#fab387",
	"yellow":    "#f9e2af",
	"green":     "#a6e3a1",
	"teal":      "#94e2d5",
	"sky":       "#89dceb",
	"sapphire":  "#74c7ec",
	"blue":      "#89b4fa",
	"lavender":  "#b4befe",
	"text":      "#cdd6f4",
	"subtext1":  "#bac2de",
	"subtext0":  "#a6adc8",
	"overlay2":  "#9399b2",
	"overlay1":  "#7f849c",
	"overlay0":  "#6c7086",
	"surface2":  "#585b70",
	"surface1":  "#45475a",
	"surface0":  "#313244",
	"base":      "#1e1e2e",
	"mantle":    "#181825",
	"crust":     "#11111b",
}

var Solarized = Theme{
	"base03":  "#002b36",
	"base02":  "#073642",
	"base01":  "#586e75",
	"base00":  "#657b83",
	"base0":   "#839496",
	"base1":   "#93a1a1",
	"base2":   "#eee8d5",
	"base3":   "#fdf6e3",
	"yellow":  "#b58900",
	"orange":  "#cb4b16",
	"red":     "#dc322f",
	"magenta": "#d33682",
	"violet":  "#6c71c4",
	"blue":    "#268bd2",
	"cyan":    "#2aa198",
	"green":   "#859900",
}

var Dracula = Theme{
	"background":   "#282a36",
	"current-line": "#44475a",
	"selection":    "#44475a",
	"foreground":   "#f8f8f2",
	"comment":      "#6272a4",
	"cyan":         "#8be9fd",
	"green":        "#50fa7b",
	"orange":       "#ffb86c",
	"pink":         "#ff79c6",
	"purple":       "#bd93f9",
	"red":          "#ff5555",
	"yellow":       "#f1fa8c",
}

var DraculaPro = Theme{
	"background": "#1e1f29",
	"foreground": "#f8f8f2",
	"comment":    "#6272a4",
	"cyan":       "#8be9fd",
	"green":      "#50fa7b",
	"orange":     "#ffb86c",
	"pink":       "#ff79c6",
	"purple":     "#bd93f9",
	"red":        "#ff5555",
	"yellow":     "#f1fa8c",
}

var Monokai = Theme{
	"background": "#272822",
	"foreground": "#f8f8f2",
	"comment":    "#75715e",
	"red":        "#f92672",
	"orange":     "#fd971f",
	"yellow":     "#e6db74",
	"green":      "#a6e22e",
	"cyan":       "#66d9ef",
	"blue":       "#268bd2",
	"purple":     "#ae81ff",
}

var MonokaiPro = Theme{
	"background": "#2e2e2e",
	"foreground": "#d6d6d6",
	"comment":    "#797979",
	"red":        "#f92672",
	"orange":     "#fd971f",
	"yellow":     "#e6db74",
	"green":      "#a6e22e",
	"cyan":       "#66d9ef",
	"blue":       "#268bd2",
	"purple":     "#ae81ff",
}

// Themes is the registry of every shipped theme, keyed by the identifier
// used on the CLI and the HTTP API.
var Themes = map[string]Theme{
	"basic":                Basic,
	"catppuccin-latte":     CatppuccinLatte,
	"catppuccin-frappe":    CatppuccinFrappe,
	"catppuccin-macchiato": CatppuccinMacchiato,
	"catppuccin-mocha":     CatppuccinMocha,
	"solarized":            Solarized,
	"dracula":              Dracula,
	"dracula-pro":          DraculaPro,
	"monokai":              Monokai,
	"monokai-pro":          MonokaiPro,
}

// ThemeNames returns the registry keys in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Names returns a theme's color names in sorted order.
func (t Theme) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve looks up a named color in a theme and parses it into a Color.
func Resolve(theme, name string) (colorfy.Color, error) {
	t, ok := Themes[theme]
	if !ok {
		return colorfy.Color{}, fmt.Errorf("unknown theme %q", theme)
	}
	hex, ok := t[name]
	if !ok {
		return colorfy.Color{}, fmt.Errorf("theme %q has no color %q", theme, name)
	}
	return colorfy.FromHex(hex)
}
