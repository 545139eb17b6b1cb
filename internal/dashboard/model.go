// Package dashboard implements the live cooling dashboard: a header, the
// current temperature and the recent measurement log, redrawn on a fixed
// cadence with BubbleTea.
package dashboard

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/luki/noctua/internal/store"
)

// ── Messages ─────────────────────────────────────────────────────────

type tickMsg time.Time

// frameMsg carries the output of one render pass.
type frameMsg string

// ── Keys ─────────────────────────────────────────────────────────────

type keyMap struct {
	Interrupt key.Binding
}

// The dashboard has no controls; ctrl+c is SIGINT delivered through the
// raw-mode terminal.
var keys = keyMap{
	Interrupt: key.NewBinding(key.WithKeys("ctrl+c")),
}

// ── Model ────────────────────────────────────────────────────────────

// Model is the BubbleTea model that drives the refresh loop. It owns the
// layout; the panels are bound before the first pass.
type Model struct {
	layout   *Layout
	interval time.Duration
	width    int
	frame    string
	diag     *Diagnostics
}

// New builds the production layout from cfg. Diagnostics go to l.
func New(cfg Config, l *log.Logger) Model {
	layout := NewLayout()
	layout.Bind(RegionHeader, HeaderPanel{})
	layout.Bind(RegionStatus, &StatusPanel{Now: cfg.Now, Sensor: cfg.Sensor, Log: l})
	layout.Bind(RegionHistory, &HistoryPanel{Data: store.NewReader(cfg.DBPath, l), Rows: cfg.HistoryRows})
	return NewWithLayout(layout, cfg.Refresh)
}

// NewWithLayout returns a model that redraws layout every interval.
func NewWithLayout(layout *Layout, interval time.Duration) Model {
	return Model{layout: layout, interval: interval}
}

// RepaintOn makes the model clear and redraw the screen after any pass
// during which d was written to. A nil d disables it.
func (m Model) RepaintOn(d *Diagnostics) Model {
	m.diag = d
	return m
}

// ── Commands ─────────────────────────────────────────────────────────

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// renderCmd performs one pass. The next tick is only scheduled once its
// frame arrives, so passes never overlap.
func (m Model) renderCmd() tea.Cmd {
	layout, width := m.layout, m.width
	return func() tea.Msg {
		return frameMsg(layout.Render(width))
	}
}

// ── Init / Update ────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	return m.renderCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		if key.Matches(msg, keys.Interrupt) {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tickMsg:
		return m, m.renderCmd()

	case frameMsg:
		m.frame = string(msg)
		if m.diag != nil && m.diag.Take() {
			return m, tea.Batch(tea.ClearScreen, tickCmd(m.interval))
		}
		return m, tickCmd(m.interval)
	}

	return m, nil
}

// ── View ─────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.frame == "" {
		return "  Initializing..."
	}
	return m.frame
}
