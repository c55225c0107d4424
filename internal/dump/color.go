package dump

import (
	"github.com/fatih/color"
)

// Style names what a piece of text is, for decoration.
type Style int

const (
	StyleGuide Style = iota
	StyleNull
	StyleControl
	StylePrintable
	StyleOther
	StyleSidebar
)

// Colorizer decorates text according to its style. Implementations must
// leave the terminal in its default state after the returned text.
type Colorizer func(text string, style Style) string

// Plain is the Colorizer used when colors are disabled.
func Plain(text string, _ Style) string {
	return text
}

// NewColorizer returns Plain when enabled is false, otherwise a
// Colorizer emitting ANSI sequences regardless of what the output is
// attached to.
func NewColorizer(enabled bool) Colorizer {
	if !enabled {
		return Plain
	}
	palette := map[Style]*color.Color{
		StyleGuide:     color.New(color.FgGreen, color.Bold),
		StyleNull:      color.New(color.FgHiBlack),
		StyleControl:   color.New(color.FgYellow),
		StylePrintable: color.New(color.FgCyan),
		StyleSidebar:   color.New(color.FgHiBlack),
	}
	for _, c := range palette {
		c.EnableColor()
	}
	return func(text string, style Style) string {
		c, ok := palette[style]
		if !ok || text == "" {
			return text
		}
		return c.Sprint(text)
	}
}
