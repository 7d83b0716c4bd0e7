package chartdata

// Fixed ordered palettes for bubble fills and borders. Color assignment is a
// modulo-indexed lookup, so the same input order always yields the same colors
// across re-renders. Reordering the input reassigns colors; refreshing it does
// not.
var palette = []string{
	"rgba(54, 162, 235, 0.7)",
	"rgba(255, 99, 132, 0.7)",
	"rgba(255, 206, 86, 0.7)",
	"rgba(75, 192, 192, 0.7)",
	"rgba(153, 102, 255, 0.7)",
	"rgba(255, 159, 64, 0.7)",
	"rgba(199, 199, 199, 0.7)",
	"rgba(83, 102, 255, 0.7)",
}

var borderPalette = []string{
	"rgba(54, 162, 235, 1)",
	"rgba(255, 99, 132, 1)",
	"rgba(255, 206, 86, 1)",
	"rgba(75, 192, 192, 1)",
	"rgba(153, 102, 255, 1)",
	"rgba(255, 159, 64, 1)",
	"rgba(199, 199, 199, 1)",
	"rgba(83, 102, 255, 1)",
}
