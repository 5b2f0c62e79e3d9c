package render

import (
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Color maps a single-letter color code (b, g, r, c, m, y, k, w) to a
// drawing color. Unknown codes resolve to black.
func Color(code string) drawing.Color {
	switch strings.ToLower(code) {
	case "b":
		return chart.ColorBlue
	case "g":
		return chart.ColorGreen
	case "r":
		return chart.ColorRed
	case "c":
		return drawing.Color{G: 255, B: 255, A: 255}
	case "m":
		return drawing.Color{R: 255, B: 255, A: 255}
	case "y":
		return drawing.Color{R: 255, G: 255, A: 255}
	case "w":
		return chart.ColorWhite
	default:
		return chart.ColorBlack
	}
}

// RankColor assigns a distinct color from the viridis colormap to the series
// at the given rank among total requested series.
func RankColor(rank, total int) drawing.Color {
	return chart.Viridis(float64(rank+1), 1, float64(total))
}
