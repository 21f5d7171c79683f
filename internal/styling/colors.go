package styling

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

func colorfulColorToTcellColor(color colorful.Color) tcell.Color {
	r, g, b := color.RGB255()

	rgb := ((uint32(r)) << 16) | (uint32(g) << 8) | (uint32(b))

	return tcell.NewHexColor(int32(rgb))
}

// colorfulColorFromHexString parses hexadecimal or HTML color notation, e.g.
// '#ff0000', '#fff' or '#BEEF42'.
func colorfulColorFromHexString(hex string) (colorful.Color, error) {
	color, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("unable to parse color '%s' (%w)", hex, err)
	}
	return color, nil
}
