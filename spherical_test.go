package pixicoord

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func TestNewCartesian(t *testing.T) {
	testCases := []struct {
		name    string
		x, y, z float64
	}{
		{"ones", 1, 1, 1},
		{"negative", -1, -2.5, -1e9},
		{"mixed", 3, -4, 0},
		{"huge", math.MaxFloat64, -math.MaxFloat64, math.SmallestNonzeroFloat64},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			coord, err := NewCartesian(tc.x, tc.y, tc.z)
			if err != nil {
				t.Fatal(err)
			}
			x, y, z := coord.Components()
			if x != tc.x || y != tc.y || z != tc.z {
				t.Errorf("expected (%v, %v, %v), got %v", tc.x, tc.y, tc.z, coord)
			}
			if coord.X() != tc.x || coord.Y() != tc.y || coord.Z() != tc.z {
				t.Errorf("accessors disagree with components for %v", coord)
			}
		})
	}
}

func TestNewSpherical(t *testing.T) {
	testCases := []struct {
		name            string
		rho, theta, phi float64
	}{
		{"origin", 0, 0, 0},
		{"horizontal half turn", 1, HalfPi, math.Pi},
		{"upper bounds", 5, math.Pi, TwoPi},
		{"far away", 1e9, 0, TwoPi},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			coord, err := NewSpherical(tc.rho, tc.theta, tc.phi)
			if err != nil {
				t.Fatal(err)
			}
			if coord.Rho() != tc.rho || coord.Theta() != tc.theta || coord.Phi() != tc.phi {
				t.Errorf("expected (%v, %v, %v), got %v", tc.rho, tc.theta, tc.phi, coord)
			}
		})
	}
}

func TestNewSphericalOutOfBounds(t *testing.T) {
	testCases := []struct {
		name            string
		rho, theta, phi float64
		component       string
		value           float64
	}{
		{"negative rho", -1, 0, 0, RhoComponent, -1},
		{"negative theta", 1, -0.1, 0, ThetaComponent, -0.1},
		{"theta past pi", 1, math.Pi + 0.1, 0, ThetaComponent, math.Pi + 0.1},
		{"negative phi", 1, 0, -0.1, PhiComponent, -0.1},
		{"phi past two pi", 1, 0, 7, PhiComponent, 7},
		{"all wrong reports rho", -1, 4, 7, RhoComponent, -1},
		{"theta before phi", 1, TwoPi, 3 * math.Pi, ThetaComponent, TwoPi},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSpherical(tc.rho, tc.theta, tc.phi)
			checkComponentError(t, err, tc.component, tc.value)
		})
	}
}

func TestOutOfBoundsMessage(t *testing.T) {
	_, err := NewSpherical(1, TwoPi, 3*math.Pi)
	expected := fmt.Sprintf("theta = %v is out of bounds", TwoPi)
	if err == nil || err.Error() != expected {
		t.Errorf("expected error %q, got %v", expected, err)
	}
}

func TestUnits(t *testing.T) {
	if v := VerticalUnit(); v != (Spherical{1, 0, 0}) {
		t.Errorf("expected vertical unit (1, 0, 0), got %v", v)
	}
	if h := HorizontalUnit(); h != (Spherical{1, HalfPi, 0}) {
		t.Errorf("expected horizontal unit (1, pi/2, 0), got %v", h)
	}
}

func TestWrapAzimuth(t *testing.T) {
	testCases := []struct {
		name     string
		phi      float64
		expected float64
	}{
		{"in range", 1, 1},
		{"zero", 0, 0},
		{"full turn", TwoPi, 0},
		{"negative quarter", -HalfPi, 3 * HalfPi},
		{"negative half", -math.Pi, math.Pi},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := Spherical{2, 1, tc.phi}.WrapAzimuth()
			checkClose(t, "phi", tc.expected, wrapped.Phi())
			if wrapped.Phi() < 0 || wrapped.Phi() >= TwoPi {
				t.Errorf("wrapped phi %v outside [0, 2pi)", wrapped.Phi())
			}
			if wrapped.Rho() != 2 || wrapped.Theta() != 1 {
				t.Errorf("wrapping changed rho or theta: %v", wrapped)
			}
		})
	}
}

func checkComponentError(t *testing.T, err error, component string, value float64) {
	t.Helper()
	var boundsErr ComponentOutOfBoundsError
	if err == nil || !errors.As(err, &boundsErr) {
		t.Fatalf("expected component out of bounds error, got %v", err)
	}
	if boundsErr.Component != component {
		t.Errorf("expected component %s, got %s", component, boundsErr.Component)
	}
	if boundsErr.Value != value {
		t.Errorf("expected value %v, got %v", value, boundsErr.Value)
	}
}
