package sensor

// Band is the color band a temperature falls into.
type Band int

const (
	Cool Band = iota // t <= 50
	Warm             // 50 < t < 65
	Hot              // t >= 65
)

// Band boundaries in whole degrees Celsius.
const (
	CoolMax = 50
	HotMin  = 65
)

// BandFor maps a rounded temperature to its band.
func BandFor(t int) Band {
	switch {
	case t <= CoolMax:
		return Cool
	case t < HotMin:
		return Warm
	default:
		return Hot
	}
}

func (b Band) String() string {
	switch b {
	case Cool:
		return "cool"
	case Warm:
		return "warm"
	default:
		return "hot"
	}
}
