package pixicoord

import "fmt"

// A point in 3-D space given by its distance along the x, y and z axes. No
// constraints are placed on any of the components.
type Cartesian struct {
	x float64
	y float64
	z float64
}

var _ Coordinate[Cartesian] = Cartesian{}

// Create a new cartesian coordinate. Never fails, the error is returned only so that
// the function satisfies Constructor.
func NewCartesian(x float64, y float64, z float64) (Cartesian, error) {
	return Cartesian{x, y, z}, nil
}

// The cartesian origin (0, 0, 0).
func ZeroCartesian() Cartesian {
	return Zero[Cartesian](NewCartesian)
}

func (c Cartesian) X() float64 {
	return c.x
}

func (c Cartesian) Y() float64 {
	return c.y
}

func (c Cartesian) Z() float64 {
	return c.z
}

func (c Cartesian) Components() (float64, float64, float64) {
	return c.x, c.y, c.z
}

func (c Cartesian) Round(precision uint) Cartesian {
	t := tens(precision)
	return Cartesian{
		x: fix(c.x, t),
		y: fix(c.y, t),
		z: fix(c.z, t),
	}
}

func (c Cartesian) String() string {
	return fmt.Sprintf("(x=%g, y=%g, z=%g)", c.x, c.y, c.z)
}
