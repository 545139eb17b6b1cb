package dashboard

import (
	"io"
	"sync/atomic"
)

// Diagnostics wraps the terminal the logger writes to. A log line printed
// while the dashboard owns the screen lands in the middle of it; the
// refresh loop checks Take after every pass and repaints the whole screen.
type Diagnostics struct {
	w       io.Writer
	written atomic.Bool
}

// NewDiagnostics returns a Diagnostics writing through to w.
func NewDiagnostics(w io.Writer) *Diagnostics {
	return &Diagnostics{w: w}
}

func (d *Diagnostics) Write(p []byte) (int, error) {
	d.written.Store(true)
	return d.w.Write(p)
}

// Take reports whether anything was written since the last call.
func (d *Diagnostics) Take() bool {
	return d.written.Swap(false)
}
