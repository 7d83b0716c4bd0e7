package chartdata

import (
	"math"

	"github.com/wdaytrack/Insider-Tracker-Backend/internal/model"
)

const (
	// bubbleSpacing spreads points horizontally. The x coordinate is purely
	// layout (index times this spacing) and carries no data meaning.
	bubbleSpacing = 10.0

	// sharesPerMillion expresses the y axis in millions of shares.
	sharesPerMillion = 1_000_000.0

	// bubbleRadiusScale divides sqrt(value). Square-root scaling makes bubble
	// area, not radius, grow linearly with position value.
	bubbleRadiusScale = 2000.0
)

// ProjectBubbles maps each cluster entry at index i to a plot coordinate,
// radius and palette slot. A zero-value entry gets radius 0 but is still
// emitted, keeping the index-to-color mapping stable across the whole
// collection.
func ProjectBubbles(entries []model.ClusterEntry) model.BubbleChart {
	chart := model.BubbleChart{Points: []model.ProjectedPoint{}}
	if len(entries) == 0 {
		return chart
	}

	chart.HasData = true
	chart.Points = make([]model.ProjectedPoint, len(entries))
	for i, e := range entries {
		chart.Points[i] = model.ProjectedPoint{
			X:           float64(i) * bubbleSpacing,
			Y:           e.Shares / sharesPerMillion,
			R:           math.Sqrt(e.Value) / bubbleRadiusScale,
			Color:       palette[i%len(palette)],
			BorderColor: borderPalette[i%len(borderPalette)],
			Name:        e.Name,
			Shares:      e.Shares,
			Value:       e.Value,
			FilingDate:  e.FilingDate,
		}
	}

	return chart
}
