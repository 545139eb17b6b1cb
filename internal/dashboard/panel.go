package dashboard

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/luki/noctua/internal/chart"
)

// Panel renders itself into a box of exactly width x height cells.
// A panel is re-rendered from its sources on every pass.
type Panel interface {
	Render(width, height int) string
}

// frame draws the rounded turquoise border every panel uses around body.
func frame(body string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(chart.Turquoise).
		Padding(0, 1).
		Width(max(width-2, 0)).
		Height(max(height-2, 0)).
		MaxWidth(width).
		MaxHeight(height).
		Render(body)
}

// innerWidth is the content width left inside frame.
func innerWidth(width int) int {
	return max(width-4, 0)
}
