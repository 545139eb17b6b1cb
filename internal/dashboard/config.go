package dashboard

import (
	"time"

	"github.com/luki/noctua/internal/history"
	"github.com/luki/noctua/internal/sensor"
	"github.com/luki/noctua/internal/store"
)

// Config holds the dashboard's fixed settings. The program has no flags or
// config file; DefaultConfig is what runs on the Pi.
type Config struct {
	DBPath      string
	Refresh     time.Duration
	HistoryRows int
	Sensor      sensor.Source
	Now         func() time.Time
}

// DefaultConfig returns the production settings: the logger's database,
// two render passes per second and the last 18 measurements.
func DefaultConfig() Config {
	return Config{
		DBPath:      store.DefaultPath,
		Refresh:     500 * time.Millisecond,
		HistoryRows: history.Size,
		Sensor:      sensor.Default(),
		Now:         time.Now,
	}
}
