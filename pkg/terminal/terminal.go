// Package terminal draws rasterized frames as colored half-block cells.
package terminal

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// halfBlock paints the upper half of a cell in the foreground color; the
// background color shows through below it.
const halfBlock = "▀"

// Render samples img into a grid of cols by rows cells using the default
// lipgloss renderer. Each cell covers two vertically stacked pixels.
func Render(img image.Image, cols, rows int) string {
	return RenderWith(lipgloss.DefaultRenderer(), img, cols, rows)
}

// RenderWith is Render with an explicit lipgloss renderer, which decides
// the color profile of the output.
func RenderWith(r *lipgloss.Renderer, img image.Image, cols, rows int) string {
	if img == nil || cols <= 0 || rows <= 0 {
		return ""
	}
	bounds := img.Bounds()
	if bounds.Empty() {
		return ""
	}

	styles := make(map[[2]string]lipgloss.Style)
	var b strings.Builder
	for cy := range rows {
		if cy > 0 {
			b.WriteByte('\n')
		}
		for cx := range cols {
			x := sample(bounds.Min.X, bounds.Dx(), cx, cols)
			top := hex(img.At(x, sample(bounds.Min.Y, bounds.Dy(), 2*cy, 2*rows)))
			bottom := hex(img.At(x, sample(bounds.Min.Y, bounds.Dy(), 2*cy+1, 2*rows)))

			key := [2]string{top, bottom}
			style, ok := styles[key]
			if !ok {
				style = r.NewStyle().
					Foreground(lipgloss.Color(top)).
					Background(lipgloss.Color(bottom))
				styles[key] = style
			}
			b.WriteString(style.Render(halfBlock))
		}
	}
	return b.String()
}

// sample maps cell index i of n onto the pixel at the middle of its span.
func sample(origin, extent, i, n int) int {
	return origin + (2*i+1)*extent/(2*n)
}

func hex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
}
