package pixicoord

import (
	"fmt"
	"math"
)

// Names of the spherical components, as reported in validation errors.
const (
	RhoComponent   = "rho"
	ThetaComponent = "theta"
	PhiComponent   = "phi"
)

// A point in 3-D space given by its radial distance rho from the origin, its polar
// angle theta measured down from the positive z-axis, and its azimuthal angle phi
// measured in the x-y plane from the positive x-axis. Values built by NewSpherical
// always satisfy rho >= 0, 0 <= theta <= pi and 0 <= phi <= 2*pi.
type Spherical struct {
	rho   float64
	theta float64
	phi   float64
}

var _ Coordinate[Spherical] = Spherical{}

// Create a new spherical coordinate, validating rho, theta and phi in that order. The
// first component found out of range is reported as a ComponentOutOfBoundsError.
func NewSpherical(rho float64, theta float64, phi float64) (Spherical, error) {
	if rho < 0 {
		return Spherical{}, NewComponentOutOfBoundsError(RhoComponent, rho)
	}
	if theta < 0 || theta > math.Pi {
		return Spherical{}, NewComponentOutOfBoundsError(ThetaComponent, theta)
	}
	if phi < 0 || phi > TwoPi {
		return Spherical{}, NewComponentOutOfBoundsError(PhiComponent, phi)
	}
	return Spherical{rho, theta, phi}, nil
}

// The spherical origin (0, 0, 0).
func ZeroSpherical() Spherical {
	return Zero[Spherical](NewSpherical)
}

// Unit length point on the positive z-axis.
func VerticalUnit() Spherical {
	return Spherical{rho: 1, theta: 0, phi: 0}
}

// Unit length point on the positive x-axis.
func HorizontalUnit() Spherical {
	return Spherical{rho: 1, theta: HalfPi, phi: 0}
}

func (s Spherical) Rho() float64 {
	return s.rho
}

func (s Spherical) Theta() float64 {
	return s.theta
}

func (s Spherical) Phi() float64 {
	return s.phi
}

func (s Spherical) Components() (float64, float64, float64) {
	return s.rho, s.theta, s.phi
}

func (s Spherical) Round(precision uint) Spherical {
	t := tens(precision)
	return Spherical{
		rho:   fix(s.rho, t),
		theta: fix(s.theta, t),
		phi:   fix(s.phi, t),
	}
}

// A copy of the coordinate with phi folded into [0, 2*pi). Coordinates produced by
// Cartesian.ToSpherical may carry a negative azimuth; wrapping them brings them back
// within the range accepted by NewSpherical.
func (s Spherical) WrapAzimuth() Spherical {
	phi := math.Mod(s.phi, TwoPi)
	if phi < 0 {
		phi += TwoPi
	}
	// adding 2*pi to a tiny negative value can round up to exactly 2*pi
	if phi >= TwoPi {
		phi -= TwoPi
	}
	return Spherical{s.rho, s.theta, phi}
}

func (s Spherical) String() string {
	return fmt.Sprintf("(rho=%g, theta=%g, phi=%g)", s.rho, s.theta, s.phi)
}
