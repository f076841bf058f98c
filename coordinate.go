package pixicoord

import "math"

const (
	HalfPi = math.Pi / 2
	TwoPi  = math.Pi * 2
)

// Common capabilities of every 3-D coordinate representation in pixicoord. Each
// implementation is an immutable value type; operations that change a coordinate
// return a new value rather than modifying the receiver.
type Coordinate[C any] interface {
	// The three raw components in the order they are passed to the constructor.
	Components() (float64, float64, float64)
	// A copy of the coordinate with every component rounded to the given number
	// of decimal digits, half away from zero.
	Round(precision uint) C
}

// Validated factory for a coordinate representation, e.g. NewCartesian or NewSpherical.
type Constructor[C Coordinate[C]] func(a float64, b float64, c float64) (C, error)

// The canonical origin of a coordinate representation. Every representation must
// accept (0, 0, 0), so a constructor failure here is a broken contract and panics.
func Zero[C Coordinate[C]](construct Constructor[C]) C {
	zero, err := construct(0, 0, 0)
	if err != nil {
		panic("pixicoord: origin rejected by coordinate constructor: " + err.Error())
	}
	return zero
}

func tens(precision uint) float64 {
	return math.Pow(10, float64(precision))
}

// math.Round already rounds half away from zero, so scaling by tens gives decimal rounding.
func fix(n float64, tens float64) float64 {
	return math.Round(n*tens) / tens
}
