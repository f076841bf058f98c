package pixicoord

import "math"

// Convert the cartesian point into spherical form. The conversion is total: the
// origin maps to (0, 0, 0), and points on the z-axis get an azimuth of 0.
//
// The azimuth of the result is the two-argument arctangent of y and x and so lies in
// (-pi, pi]; points with negative y come back with a negative phi. The result is not
// passed through NewSpherical and does not necessarily satisfy its phi range. Call
// WrapAzimuth on the result when a phi within [0, 2*pi) is needed.
func (c Cartesian) ToSpherical() Spherical {
	delta := math.Sqrt(c.x*c.x + c.y*c.y)
	rho := math.Sqrt(c.x*c.x + c.y*c.y + c.z*c.z)

	var theta float64
	switch {
	case c.z > 0:
		theta = math.Atan2(delta, c.z)
	case c.z < 0:
		// inclination from the negative z-axis, reflected into (pi/2, pi]
		theta = math.Pi - math.Atan2(delta, -c.z)
	case delta != 0:
		theta = HalfPi
	default:
		theta = 0
	}

	var phi float64
	switch {
	case c.x != 0:
		phi = math.Atan2(c.y, c.x)
	case c.y > 0:
		phi = HalfPi
	case c.y < 0:
		phi = -HalfPi
	default:
		phi = 0
	}

	return Spherical{rho, theta, phi}
}

// Convert the spherical point into cartesian form.
func (s Spherical) ToCartesian() Cartesian {
	sinTheta := math.Sin(s.theta)
	return Cartesian{
		x: s.rho * sinTheta * math.Cos(s.phi),
		y: s.rho * sinTheta * math.Sin(s.phi),
		z: s.rho * math.Cos(s.theta),
	}
}

// The latitude and longitude, in radians, of the direction the point lies in. Latitude
// is measured up from the x-y plane and longitude lies within [-pi, pi].
func (s Spherical) Geographic() GeographicLocation {
	lon := s.WrapAzimuth().phi
	if lon > math.Pi {
		lon -= TwoPi
	}
	return GeographicLocation{
		Latitude:  HalfPi - s.theta,
		Longitude: lon,
	}
}

// Create a spherical coordinate from a latitude and longitude in radians and a radial
// distance. Negative longitudes are shifted up by 2*pi. The result is validated like
// any other spherical coordinate, so a latitude beyond the poles is reported as an
// out of bounds theta.
func FromGeographic(latitude float64, longitude float64, rho float64) (Spherical, error) {
	phi := longitude
	if phi < 0 {
		phi += TwoPi
	}
	return NewSpherical(rho, HalfPi-latitude, phi)
}
