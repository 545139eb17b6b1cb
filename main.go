// Command noctua is a live terminal dashboard for a Raspberry Pi cooled by
// a Noctua fan: SoC temperature, clock and the fan controller's recent
// measurements from its SQLite log.
package main

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"

	"github.com/luki/noctua/internal/dashboard"
)

func main() {
	// Diagnostics go to stderr. When that is the dashboard's own terminal,
	// each log line triggers a full repaint.
	var out io.Writer = os.Stderr
	var diag *dashboard.Diagnostics
	if isatty.IsTerminal(os.Stderr.Fd()) {
		diag = dashboard.NewDiagnostics(os.Stderr)
		out = diag
	}

	logger := log.NewWithOptions(out, log.Options{
		Prefix:          "noctua",
		ReportTimestamp: true,
	})

	p := tea.NewProgram(
		dashboard.New(dashboard.DefaultConfig(), logger).RepaintOn(diag),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		logger.Fatal("dashboard stopped", "err", err)
	}
}
