package mdtty

import (
	"sort"
	"strings"

	"pkt.systems/mdtty/internal/palette"
)

// Style is an opaque terminal style token written verbatim to the sink.
// The renderer never interprets the bytes; an empty prefix is a valid
// style that writes nothing.
type Style struct {
	Prefix string
}

// Styles groups the symbolic styles the renderer requests by name.
type Styles struct {
	Bold     Style
	Italic   Style
	NoItalic Style
	Heading  Style
	Quote    Style
	Code     Style
	Link     Style
	Rule     Style
	Reset    Style
}

// Theme provides named styles for event rendering.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func stylesFromPalette(p palette.Palette) Styles {
	return Styles{
		Bold:     Style{Prefix: palette.Bold},
		Italic:   Style{Prefix: palette.Italic},
		NoItalic: Style{Prefix: palette.NoItalic},
		Heading:  Style{Prefix: p.Heading},
		Quote:    Style{Prefix: p.Quote},
		Code:     Style{Prefix: p.Code},
		Link:     Style{Prefix: p.Link},
		Rule:     Style{Prefix: p.Rule},
		Reset:    Style{Prefix: palette.Reset},
	}
}

var builtinThemes = map[string]Theme{
	"default": theme{name: "default", styles: stylesFromPalette(palette.PaletteDefault)},
	"bright":  theme{name: "bright", styles: stylesFromPalette(palette.PaletteBright)},
	"forest":  theme{name: "forest", styles: stylesFromPalette(palette.PaletteForest)},
	"mono":    theme{name: "mono", styles: stylesFromPalette(palette.PaletteMono)},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}
