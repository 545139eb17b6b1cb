package dashboard

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/luki/noctua/internal/chart"
)

const headerTitle = "Raspberry Pi s automaticky řízeným větrákem Noctua a logování do SQLite"

// HeaderPanel is the static title bar.
type HeaderPanel struct{}

func (HeaderPanel) Render(width, height int) string {
	title := chart.Stylize(headerTitle, lipgloss.NewStyle(),
		chart.Span{Start: 0, End: 10, Style: lipgloss.NewStyle().Foreground(chart.Green).Bold(true)},
		chart.Span{Start: 10, End: 13, Style: lipgloss.NewStyle().Foreground(chart.Red).Bold(true)},
		chart.Span{Start: 13, End: 65, Style: lipgloss.NewStyle().Foreground(chart.White)},
		chart.Span{Start: 65, End: chart.ToEnd, Style: lipgloss.NewStyle().Foreground(chart.White).Bold(true)},
	)
	return frame(lipgloss.PlaceHorizontal(innerWidth(width), lipgloss.Center, title), width, height)
}
