// Package palette holds the raw SGR prefix tokens behind the built-in
// themes. Every token is a plain string; the renderer writes them verbatim.
package palette

// Attribute tokens shared by all palettes.
const (
	Reset    = "\x1b[0m"
	Bold     = "\x1b[1m"
	Italic   = "\x1b[3m"
	NoItalic = "\x1b[23m"
)

// Foreground color tokens.
const (
	Black         = "\x1b[30m"
	Red           = "\x1b[31m"
	Green         = "\x1b[32m"
	Yellow        = "\x1b[33m"
	Blue          = "\x1b[34m"
	Magenta       = "\x1b[35m"
	Cyan          = "\x1b[36m"
	White         = "\x1b[37m"
	BrightBlack   = "\x1b[90m"
	BrightRed     = "\x1b[91m"
	BrightGreen   = "\x1b[92m"
	BrightYellow  = "\x1b[93m"
	BrightBlue    = "\x1b[94m"
	BrightMagenta = "\x1b[95m"
	BrightCyan    = "\x1b[96m"
	BrightWhite   = "\x1b[97m"
)

// Palette assigns color tokens to the renderer's style slots. Attribute
// tokens (bold, italic) are fixed and not part of a palette.
type Palette struct {
	Heading string
	Quote   string
	Code    string
	Link    string
	Rule    string
}

// PaletteDefault matches classic pager colors: blue accents, yellow code,
// dim quotes and rules.
var PaletteDefault = Palette{
	Heading: Blue,
	Quote:   BrightBlack,
	Code:    Yellow,
	Link:    Blue,
	Rule:    BrightBlack,
}

// PaletteBright uses high-intensity variants for dark backgrounds.
var PaletteBright = Palette{
	Heading: BrightBlue,
	Quote:   BrightBlack,
	Code:    BrightYellow,
	Link:    BrightCyan,
	Rule:    BrightBlack,
}

// PaletteForest favors green and cyan accents.
var PaletteForest = Palette{
	Heading: Green,
	Quote:   BrightBlack,
	Code:    BrightGreen,
	Link:    Cyan,
	Rule:    BrightBlack,
}

// PaletteMono carries no colors at all; only the fixed attribute tokens
// remain visible.
var PaletteMono = Palette{}
