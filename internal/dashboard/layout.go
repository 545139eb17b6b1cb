package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Region names a slot of the Layout.
type Region string

const (
	RegionHeader  Region = "nadpis"
	RegionStatus  Region = "aktualne"
	RegionHistory Region = "databaze"
)

// Fixed geometry of the screen.
const (
	HeaderHeight = 3
	BodyHeight   = 25
	StatusMin    = 35
	HistoryMin   = 45
)

// Layout is a header row over a body split into status (left) and history
// (right) panes. Panels are bound once and re-rendered on every pass.
type Layout struct {
	panels map[Region]Panel
}

// NewLayout returns an empty layout; unbound regions render as blank boxes.
func NewLayout() *Layout {
	return &Layout{panels: make(map[Region]Panel)}
}

// Bind attaches p to region r, replacing any previous panel.
func (l *Layout) Bind(r Region, p Panel) {
	l.panels[r] = p
}

// Split returns the widths of the status and history panes for a terminal
// of the given width. Each pane gets half; the history pane's minimum is
// reserved before the status pane takes its share. Only below
// StatusMin+HistoryMin does the sum exceed width, and Render crops the right.
func Split(width int) (status, hist int) {
	status = max(StatusMin, min(width/2, width-HistoryMin))
	hist = max(width-status, HistoryMin)
	return status, hist
}

// Render runs one pass over all panels and returns the screen, cropped to
// width columns.
func (l *Layout) Render(width int) string {
	statusW, historyW := Split(width)
	full := max(width, statusW+historyW)

	header := l.render(RegionHeader, full, HeaderHeight)
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		l.render(RegionStatus, statusW, BodyHeight),
		l.render(RegionHistory, historyW, BodyHeight),
	)
	screen := lipgloss.JoinVertical(lipgloss.Left, header, body)

	if full == width {
		return screen
	}
	lines := strings.Split(screen, "\n")
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, width, "")
	}
	return strings.Join(lines, "\n")
}

func (l *Layout) render(r Region, width, height int) string {
	p, ok := l.panels[r]
	if !ok {
		return lipgloss.NewStyle().Width(width).Height(height).Render("")
	}
	return p.Render(width, height)
}
