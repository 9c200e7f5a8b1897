package tree

import (
	"fmt"

	"golang.org/x/text/cases"
)

// Color is a display annotation on a node.
type Color string

const (
	ColorNone    Color = ""
	ColorBlack   Color = "black"
	ColorWhite   Color = "white"
	ColorDkGray  Color = "dkGray"
	ColorGray    Color = "gray"
	ColorLtGray  Color = "ltGray"
	ColorRed     Color = "red"
	ColorGreen   Color = "green"
	ColorBlue    Color = "blue"
	ColorCyan    Color = "cyan"
	ColorMagenta Color = "magenta"
	ColorYellow  Color = "yellow"
)

// Colors lists every named color in display order.
var Colors = []Color{
	ColorBlack, ColorWhite, ColorDkGray, ColorGray, ColorLtGray,
	ColorRed, ColorGreen, ColorBlue, ColorCyan, ColorMagenta, ColorYellow,
}

// ParseColor matches s against the named colors ignoring case.
// The empty string and "none" both yield ColorNone.
func ParseColor(s string) (Color, error) {
	folder := cases.Fold()
	key := folder.String(s)
	if key == "" || key == "none" {
		return ColorNone, nil
	}
	for _, c := range Colors {
		if folder.String(string(c)) == key {
			return c, nil
		}
	}
	return ColorNone, fmt.Errorf("unknown color %q", s)
}
