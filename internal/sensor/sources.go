package sensor

import (
	"os/exec"
	"strings"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v3/host"
)

// Source produces one line of sensor output in the vcgencmd format.
type Source interface {
	Query() (string, error)
}

// Read queries src once and parses its output.
func Read(src Source) (Reading, error) {
	out, err := src.Query()
	if err != nil {
		return Reading{}, err
	}
	return Parse(out)
}

// Command runs an external program and returns the first line it prints.
type Command struct {
	Name string
	Args []string
}

// MeasureTemp is the firmware query for the SoC temperature.
var MeasureTemp = Command{Name: "vcgencmd", Args: []string{"measure_temp"}}

func (c Command) Query() (string, error) {
	out, err := exec.Command(c.Name, c.Args...).Output()
	if err != nil {
		return "", errors.Wrapf(err, "run %s", c.Name)
	}
	line, _, _ := strings.Cut(string(out), "\n")
	return line + "\n", nil
}

// ThermalZone reads the kernel's thermal sensors through gopsutil and
// reports the one that best matches the SoC.
type ThermalZone struct {
	// temperatures is swapped out in tests.
	temperatures func() ([]host.TemperatureStat, error)
}

func (z ThermalZone) Query() (string, error) {
	read := z.temperatures
	if read == nil {
		read = host.SensorsTemperatures
	}
	stats, err := read()
	if len(stats) == 0 {
		if err == nil {
			err = errors.New("no thermal sensors found")
		}
		return "", errors.Wrap(err, "read thermal zones")
	}

	stat, ok := PickZone(stats)
	if !ok {
		return "", errors.New("no usable thermal sensor")
	}
	return Format(stat.Temperature), nil
}

// Default returns the vcgencmd query when the tool is installed and the
// thermal zone reader otherwise.
func Default() Source {
	if path, err := exec.LookPath(MeasureTemp.Name); err == nil && path != "" {
		return MeasureTemp
	}
	return ThermalZone{}
}
