package sensor

import (
	"strings"

	"github.com/shirou/gopsutil/v3/host"
)

// zonePreference lists thermal sensor key prefixes from most to least
// representative of the SoC temperature.
var zonePreference = []string{
	"cpu_thermal",
	"soc_thermal",
	"bcm2835_thermal",
	"coretemp",
	"k10temp",
	"zenpower",
	"acpitz",
}

// PickZone selects the sensor to report from a gopsutil listing. Unknown
// keys are used only when nothing from zonePreference is present.
func PickZone(stats []host.TemperatureStat) (host.TemperatureStat, bool) {
	for _, prefix := range zonePreference {
		for _, s := range stats {
			if strings.HasPrefix(strings.ToLower(s.SensorKey), prefix) && s.Temperature > 0 {
				return s, true
			}
		}
	}
	for _, s := range stats {
		if s.Temperature > 0 {
			return s, true
		}
	}
	return host.TemperatureStat{}, false
}
