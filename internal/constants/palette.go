package constants

// Palette holds the escape codes used by the banner. It is built once and passed
// to the renderer, nothing reads it globally.
type Palette struct {
	Reset    string
	Magenta  string
	Green    string
	White    string
	Blue     string
	Red      string
	Black    string
	Yellow   string
	Cyan     string
	BgYellow string
	BgWhite  string
}

// DefaultPalette returns the bold ANSI palette.
func DefaultPalette() Palette {
	return Palette{
		Reset:    "\033[0m",
		Magenta:  "\033[1;35m",
		Green:    "\033[1;32m",
		White:    "\033[1;37m",
		Blue:     "\033[1;34m",
		Red:      "\033[1;31m",
		Black:    "\033[1;40;30m",
		Yellow:   "\033[1;33m",
		Cyan:     "\033[1;36m",
		BgYellow: "\033[1;43;33m",
		BgWhite:  "\033[1;47;37m",
	}
}

// PlainPalette returns a palette with every code empty, for --color=false and NO_COLOR.
func PlainPalette() Palette {
	return Palette{}
}

// Named returns the palette entries in a fixed order, for `show palette`.
func (p Palette) Named() []NamedColor {
	return []NamedColor{
		{"reset", p.Reset},
		{"magenta", p.Magenta},
		{"green", p.Green},
		{"white", p.White},
		{"blue", p.Blue},
		{"red", p.Red},
		{"black", p.Black},
		{"yellow", p.Yellow},
		{"cyan", p.Cyan},
		{"bgyellow", p.BgYellow},
		{"bgwhite", p.BgWhite},
	}
}

type NamedColor struct {
	Name string
	Code string
}
