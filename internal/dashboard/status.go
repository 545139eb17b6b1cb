package dashboard

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/luki/noctua/internal/chart"
	"github.com/luki/noctua/internal/sensor"
)

const (
	clockLayout = "Monday 02. January 2006\n15:04:05"
	tempLabel   = "Aktuální teplota: "
	tempUnit    = " °C"
	unavailable = "N/A"
	authorLine  = "vytvořil: Milan Švarc"
)

// StatusPanel shows the clock, the current SoC temperature colored by band,
// the author line and the Raspberry Pi logo.
type StatusPanel struct {
	Now    func() time.Time
	Sensor sensor.Source
	Log    *log.Logger

	lastErr string
}

func (p *StatusPanel) Render(width, height int) string {
	inner := innerWidth(width)

	clock := lipgloss.NewStyle().
		Width(inner).
		Align(lipgloss.Right).
		Foreground(chart.White).
		Bold(true).
		Render(p.Now().Format(clockLayout))

	author := lipgloss.PlaceHorizontal(inner, lipgloss.Center, chart.Stylize(authorLine, lipgloss.NewStyle(),
		chart.Span{Start: 0, End: 9, Style: lipgloss.NewStyle().Foreground(chart.White)},
		chart.Span{Start: 10, End: chart.ToEnd, Style: lipgloss.NewStyle().Foreground(chart.BrightYellow).Bold(true)},
	))

	body := lipgloss.JoinVertical(lipgloss.Left,
		clock,
		"",
		p.temperatureLine(),
		"",
		"",
		author,
		renderArt(inner),
	)
	return frame(body, width, height)
}

// temperatureLine queries the sensor once. A failed query renders N/A
// instead of stopping the dashboard.
func (p *StatusPanel) temperatureLine() string {
	value, band := unavailable, sensor.Hot

	r, err := sensor.Read(p.Sensor)
	if err != nil {
		p.report(err)
	} else {
		p.report(nil)
		value, band = r.Display(), r.Band()
	}

	text := tempLabel + value + tempUnit
	return chart.Stylize(text, lipgloss.NewStyle().Foreground(chart.White),
		chart.Span{Start: len([]rune(tempLabel)), End: chart.ToEnd, Style: lipgloss.NewStyle().Foreground(chart.BandColor(band))},
	)
}

func (p *StatusPanel) report(err error) {
	if p.Log == nil {
		return
	}
	if err == nil {
		if p.lastErr != "" {
			p.Log.Info("sensor readable again")
		}
		p.lastErr = ""
		return
	}
	if msg := err.Error(); msg != p.lastErr {
		p.lastErr = msg
		p.Log.Error("cannot read temperature", "err", err)
	}
}
