package dashboard

import (
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/luki/noctua/internal/chart"
	"github.com/luki/noctua/internal/history"
	"github.com/luki/noctua/internal/sensor"
	"github.com/luki/noctua/internal/store"
)

const historyTitle = "naměřené údaje"

var historyHeaders = []string{"ČAS", "TEPLOTA", "NOCTUA"}

// Loader is the data source of HistoryPanel.
type Loader interface {
	Load() store.Result
}

// HistoryPanel shows the most recent rows of the measurement log. A failed
// load renders an empty table; the Loader is responsible for reporting it.
type HistoryPanel struct {
	Data Loader
	Rows int
}

func (p *HistoryPanel) Render(width, height int) string {
	var rows []store.Row
	if res := p.Data.Load(); res.OK() {
		rows = history.Tail(res.Rows, p.Rows)
	}
	return frame(renderHistory(rows, innerWidth(width)), width, height)
}

func renderHistory(rows []store.Row, width int) string {
	cells := make([][]string, 0, len(rows))
	bands := make([]sensor.Band, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{r.Time, formatTemp(r.Temp), r.Fan})
		bands = append(bands, sensor.BandFor(int(math.RoundToEven(r.Temp))))
	}

	headerStyle := lipgloss.NewStyle().Foreground(chart.White).Bold(true).Align(lipgloss.Center)
	cellStyle := lipgloss.NewStyle().Foreground(chart.White).Align(lipgloss.Center)

	t := table.New().
		Border(lipgloss.DoubleBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(chart.Blue)).
		Width(width).
		Headers(historyHeaders...).
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1 && row >= 0 && row < len(bands):
				return cellStyle.Foreground(chart.BandColor(bands[row]))
			default:
				return cellStyle
			}
		})

	title := lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(chart.White).Bold(true).Render(historyTitle))

	return lipgloss.JoinVertical(lipgloss.Left, title, t.Render())
}

// formatTemp prints the shortest decimal form: 45, 45.5.
func formatTemp(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
