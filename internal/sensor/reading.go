// Package sensor reads the SoC temperature of a Raspberry Pi.
// The primary source is the firmware's `vcgencmd measure_temp`; hosts
// without it fall back to the kernel thermal zones via gopsutil.
package sensor

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	outputPrefix = "temp="
	outputSuffix = "'C"
)

// ErrFormat is returned when sensor output is not of the form temp=<float>'C.
var ErrFormat = errors.New("unexpected sensor output")

// Reading is a single temperature sample. It is not persisted.
type Reading struct {
	Celsius float64 // value as reported by the sensor
	Rounded int     // Celsius rounded to the nearest integer, ties to even
}

// Display returns the rounded temperature as shown on the dashboard.
func (r Reading) Display() string {
	return strconv.Itoa(r.Rounded)
}

// Band returns the threshold band of the rounded temperature.
func (r Reading) Band() Band {
	return BandFor(r.Rounded)
}

// Parse parses a single line printed by `vcgencmd measure_temp`,
// e.g. "temp=42.3'C\n".
func Parse(output string) (Reading, error) {
	line := strings.TrimSpace(output)
	if !strings.HasPrefix(line, outputPrefix) || !strings.HasSuffix(line, outputSuffix) {
		return Reading{}, errors.Wrapf(ErrFormat, "%q", output)
	}
	value := strings.TrimSuffix(strings.TrimPrefix(line, outputPrefix), outputSuffix)

	celsius, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return Reading{}, errors.Wrapf(ErrFormat, "%q: %v", output, err)
	}
	if math.IsNaN(celsius) || math.IsInf(celsius, 0) {
		return Reading{}, errors.Wrapf(ErrFormat, "%q: not a finite value", output)
	}

	return Reading{
		Celsius: celsius,
		Rounded: int(math.RoundToEven(celsius)),
	}, nil
}

// Format renders a temperature the way vcgencmd prints it, so readings from
// other sources go through the same parser.
func Format(celsius float64) string {
	return outputPrefix + strconv.FormatFloat(celsius, 'f', 1, 64) + outputSuffix + "\n"
}
