package viz

import (
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/diffuse1d/internal/field"
)

const (
	plotWidth  = 80
	plotHeight = 12
)

// Plot renders a concentration profile as an ASCII graph.
func Plot(f field.Field, caption string) string {
	return asciigraph.Plot(f,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}

// PlotPair renders initial and final profiles as one overlaid graph.
func PlotPair(initial, final field.Field, caption string) string {
	return asciigraph.PlotMany([][]float64{initial, final},
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(asciigraph.Gray, asciigraph.Default),
	)
}
