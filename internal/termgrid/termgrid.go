// Package termgrid renders pixmaps as colored text for terminal
// display. Each character cell carries two vertically stacked pixels:
// the upper half block glyph shows the top pixel in the foreground
// color and the bottom pixel in the background color, which keeps the
// aspect ratio of typical terminal fonts close to square.
package termgrid

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/gogpu/poincare"
)

const upperHalf = "▀"

// Render converts a pixmap into styled text lines using the given color
// profile. Two pixel rows collapse into one text row; for odd heights
// the last row keeps the terminal's default background under the half
// block. The Ascii profile yields unstyled glyphs.
func Render(pm *poincare.Pixmap, profile termenv.Profile) string {
	if pm == nil || pm.Width() <= 0 || pm.Height() <= 0 {
		return ""
	}

	w, h := pm.Width(), pm.Height()
	data := pm.Data()

	var b strings.Builder
	for y := 0; y < h; y += 2 {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < w; x++ {
			if profile == termenv.Ascii {
				b.WriteString(upperHalf)
				continue
			}
			cell := termenv.String(upperHalf)
			if fg := profile.Color(hexAt(data, w, x, y)); fg != nil {
				cell = cell.Foreground(fg)
			}
			if y+1 < h {
				if bg := profile.Color(hexAt(data, w, x, y+1)); bg != nil {
					cell = cell.Background(bg)
				}
			}
			b.WriteString(cell.String())
		}
	}
	return b.String()
}

// Rows returns the number of text rows Render produces for a pixmap of
// the given height.
func Rows(height int) int {
	if height <= 0 {
		return 0
	}
	return (height + 1) / 2
}

func hexAt(data []uint8, width, x, y int) string {
	i := (y*width + x) * 4
	return fmt.Sprintf("#%02x%02x%02x", data[i], data[i+1], data[i+2])
}
